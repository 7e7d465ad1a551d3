// Package currency renders monetary amounts for display.
// Amounts are kept exact everywhere else; rounding happens only here.
package currency

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const label = "Rs."

// Format renders an amount as a fixed two-decimal value with grouping
// separators and the currency label, e.g. "Rs. 65,198.00".
func Format(amount decimal.Decimal) string {
	value, _ := amount.Round(2).Float64()

	return label + " " + humanize.FormatFloat("#,###.##", value)
}

// FormatString parses and formats an amount.
// An unparseable amount formats as zero rather than erroring.
func FormatString(amount string) string {
	parsed, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Format(decimal.Zero)
	}

	return Format(parsed)
}
