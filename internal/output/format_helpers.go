package output

import (
	"strconv"

	dec "github.com/rpgo/corpus-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol prefixes amounts when no symbol is configured.
const DefaultCurrencySymbol = "₹"

// FormatCurrency formats a decimal with the default symbol, digit grouping and 2 decimals.
func FormatCurrency(amount decimal.Decimal) string {
	return FormatCurrencyWith(DefaultCurrencySymbol, amount)
}

// FormatCurrencyWith formats a decimal as currency using symbol. Negative
// amounts put the sign before the symbol: -₹1,200.00.
func FormatCurrencyWith(symbol string, amount decimal.Decimal) string {
	return dec.NewMoneyFromDecimal(amount).Format(symbol)
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
