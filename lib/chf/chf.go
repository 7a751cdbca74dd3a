// Package chf converts between swiss franc amounts as the disclosure
// api renders them ("CHF 1'386'630.00") and plain numbers.
package chf

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

var amountCleaner = strings.NewReplacer(
	"CHF", "",
	"'", "",
	"’", "",
	" ", "",
	"\u00a0", "",
	"\u202f", "",
)

// ParseAmount returns the numeric value of a CHF amount string.
// Forms frequently carry no declared amount, so empty or malformed
// input is 0 rather than an error. Negative results are also 0.
func ParseAmount(s string) float64 {
	cleaned := strings.TrimSpace(amountCleaner.Replace(s))
	if cleaned == "" {
		return 0
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}

// FormatAmount renders a whole-franc amount with swiss grouping,
// e.g. "CHF 1'386'630".
func FormatAmount(value float64) string {
	return "CHF " + humanize.FormatFloat("#'###.", math.Round(value))
}
