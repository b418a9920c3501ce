// Command amount-total prints the total of an amount list as the bulk airdrop
// form computes it.
//
//	amount-total [-file amounts.txt] [-decimals 18]
//
// The list is read from stdin when no file is given.
package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/x-xyz/airdropper/base/amount"
	"github.com/x-xyz/airdropper/base/log"
)

func main() {
	if err := realMain(
		os.Stdin,
		os.Stdout,
		os.Args,
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func realMain(
	stdin io.Reader,
	stdout io.Writer,
	osargs []string,
) error {
	fs := pflag.NewFlagSet(osargs[0], pflag.ContinueOnError)
	var (
		file     = fs.StringP("file", "f", "", "read the amount list from this file instead of stdin")
		decimals = fs.Int32P("decimals", "d", -1, "also print the total in base units of a token with these decimals")
		skipped  = fs.Bool("skipped", false, "list the segments that are not numbers")
	)
	if err := fs.Parse(osargs[1:]); err != nil {
		return err
	}

	input := stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	raw, err := ioutil.ReadAll(input)
	if err != nil {
		return err
	}
	amounts := string(raw)

	total := amount.CalculateTotal(amounts)
	fmt.Fprintln(stdout, strconv.FormatFloat(total, 'f', -1, 64))

	if *decimals >= 0 {
		units, err := amount.SumBaseUnits(amount.Valid(amounts), *decimals)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, units.String())
	}

	if *skipped {
		for _, a := range amount.Parse(amounts) {
			if !a.Valid {
				log.Log().WithField("segment", a.Raw).Warn("not a number, skipped")
				fmt.Fprintf(stdout, "skipped: %s\n", a.Raw)
			}
		}
	}
	return nil
}
