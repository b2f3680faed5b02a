package exporter

import (
	"github.com/shopspring/decimal"
)

// formatDecimal formats a decimal for CSV output with exactly 2 decimal
// places, so values like 25.5 appear as 25.50.
func formatDecimal(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// formatQuantity keeps quantities as-is: usually integers, fractional only
// when median imputation produced a half value.
func formatQuantity(d decimal.Decimal) string {
	return d.String()
}
