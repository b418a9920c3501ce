// Package amount parses the freeform amount lists typed into the bulk airdrop
// form. A list is a run of numbers separated by commas and/or newlines, e.g.
//
//	100, 200
//	300
//
// Parsing is lenient: a segment that is not a number is skipped rather than
// reported, so a partially malformed list still yields a best-effort total.
package amount

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Amount is one segment of an amount list
type Amount struct {
	Raw   string  `json:"raw"`
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

func isSeparator(r rune) bool {
	return r == ',' || r == '\n'
}

// Segments splits s on runs of commas and newlines and returns the trimmed,
// non-empty segments in order.
func Segments(s string) []string {
	fields := strings.FieldsFunc(s, isSeparator)
	res := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			res = append(res, f)
		}
	}
	return res
}

// ParseAmount reads the longest numeric prefix of segment and ignores the rest,
// so "100abc" is 100 and "abc" is not a number. NaN and infinities are never valid.
func ParseAmount(segment string) (float64, bool) {
	prefix := numericPrefix(strings.TrimSpace(segment))
	if prefix == "" {
		return 0, false
	}
	// a well formed prefix can only fail with ErrRange, which yields ±Inf or 0
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// numericPrefix returns the longest prefix of s matching
// [+-]? (digits [. digits?] | . digits) ([eE] [+-]? digits)?
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intDigits := countDigits(s[i:])
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return ""
	}

	// the exponent only counts when at least one digit follows it
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if n := countDigits(s[j:]); n > 0 {
			i = j + n
		}
	}
	return s[:i]
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// Parse returns every segment of amounts with its parsed value
func Parse(amounts string) []Amount {
	segments := Segments(amounts)
	res := make([]Amount, 0, len(segments))
	for _, seg := range segments {
		v, ok := ParseAmount(seg)
		res = append(res, Amount{Raw: seg, Value: v, Valid: ok})
	}
	return res
}

// Valid returns the values of the valid amounts in amounts, in input order
func Valid(amounts string) []float64 {
	res := []float64{}
	for _, a := range Parse(amounts) {
		if a.Valid {
			res = append(res, a.Value)
		}
	}
	return res
}

// CalculateTotal sums every valid amount in amounts. Empty input, input made
// only of separators, and segments that are not numbers all contribute nothing.
// The total is always finite: an amount whose addition would overflow the
// running sum is skipped like a segment that is not a number.
func CalculateTotal(amounts string) float64 {
	if strings.TrimSpace(amounts) == "" {
		return 0
	}

	total := float64(0)
	for _, v := range Valid(amounts) {
		if next := total + v; !math.IsInf(next, 0) {
			total = next
		}
	}
	return total
}
