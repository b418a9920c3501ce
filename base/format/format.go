package format

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// TokenAmount renders an amount for display, e.g. "1,234.5 USDC"
func TokenAmount(d decimal.Decimal, symbol string) string {
	s := commas(d)
	if symbol == "" {
		return s
	}
	return s + " " + symbol
}

// commas keeps every significant digit of d, which float formatting would lose
// for 18 decimal tokens.
func commas(d decimal.Decimal) string {
	s := d.String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	d = decimal.RequireFromString(intPart)
	return sign + humanize.BigComma(d.BigInt()) + fracPart
}

// Address shortens a hex address to 0x1234...5678
func Address(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}
