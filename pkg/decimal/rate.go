package decimal

import (
	"github.com/shopspring/decimal"
)

// FactorPrecision is the number of decimal places kept on compound factors.
// Powers are rounded to it so repeated compounding cannot grow mantissas
// without bound.
const FactorPrecision int32 = 18

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// FromPercent converts a percentage (9 for 9%) into a fraction (0.09).
func FromPercent(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}

// MonthlyFromPercent converts an annual percentage into a monthly fraction
// by simple division (9% a year is 0.0075 a month).
func MonthlyFromPercent(percent decimal.Decimal) decimal.Decimal {
	return FromPercent(percent).Div(twelve)
}

// GrowthFactor returns (1+rate)^periods for a fractional rate. Negative
// periods discount instead of compounding, by raising the inverse of 1+rate.
// A rate of -1 has no inverse; its negative powers are reported as zero and
// callers that need a finite present value use Discount.
func GrowthFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	if periods == 0 {
		return one
	}
	base := one.Add(rate)
	if periods < 0 {
		if base.IsZero() {
			return decimal.Zero
		}
		base = one.DivRound(base, FactorPrecision)
		periods = -periods
	}
	return base.Pow(decimal.NewFromInt(int64(periods))).Round(FactorPrecision)
}

// Discount returns amount/(1+rate)^periods. ok is false when 1+rate is zero
// and periods is positive; amount is then returned undiscounted.
func Discount(amount, rate decimal.Decimal, periods int) (decimal.Decimal, bool) {
	if periods > 0 && one.Add(rate).IsZero() {
		return amount, false
	}
	return amount.Mul(GrowthFactor(rate, -periods)), true
}

// AveragePercent returns the arithmetic mean of rates, or fallback when
// rates is empty.
func AveragePercent(rates []decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if len(rates) == 0 {
		return fallback
	}
	return decimal.Avg(rates[0], rates[1:]...)
}

// WithinTolerance reports whether a and b differ by at most tol.
func WithinTolerance(a, b, tol decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(tol)
}
