package decimal

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var groupPrinter = message.NewPrinter(language.English)

// Money represents a monetary amount in the plan currency.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the amount to two decimal places.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return m.Annualize(12)
}

// Annualize converts a per-period amount into a yearly amount given the
// number of periods in a year (12 monthly, 4 quarterly, 1 yearly).
func (m Money) Annualize(periodsPerYear int) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(int64(periodsPerYear)))}
}

// Grow compounds the amount at ratePercent for the given number of years.
func (m Money) Grow(ratePercent decimal.Decimal, years int) Money {
	return Money{m.Decimal.Mul(GrowthFactor(FromPercent(ratePercent), years))}
}

// Format renders the amount rounded to two places with symbol and thousands
// separators. The sign goes before the symbol: -₹1,200.00.
func (m Money) Format(symbol string) string {
	r := m.Round().Decimal
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	whole, frac, _ := strings.Cut(r.StringFixed(2), ".")
	return sign + symbol + groupDigits(whole) + "." + frac
}

// groupDigits groups an unsigned run of digits in threes. Runs wider than
// int64 are split so no digit passes through a float.
func groupDigits(whole string) string {
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		return groupPrinter.Sprintf("%d", n)
	}
	cut := len(whole) - 3
	return groupDigits(whole[:cut]) + "," + whole[cut:]
}
