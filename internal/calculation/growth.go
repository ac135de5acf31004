package calculation

import (
	dec "github.com/rpgo/corpus-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	decimalOne            = decimal.NewFromInt(1)
	defaultInflationRate  = decimal.NewFromInt(6)
	defaultInvestmentRate = decimal.NewFromInt(12)
	realRateEpsilon       = decimal.RequireFromString("0.0001")
)

// FutureValue grows value from currentYear to targetYear. Years up to and
// including retirementYear compound at preRate, later years at postRate.
// Rates are percentages. A target at or before currentYear returns value
// unchanged.
func FutureValue(value decimal.Decimal, currentYear, targetYear, retirementYear int, preRate, postRate decimal.Decimal) decimal.Decimal {
	if targetYear <= currentYear {
		return value
	}
	years := targetYear - currentYear
	if targetYear <= retirementYear {
		return compound(value, preRate, years)
	}
	if currentYear >= retirementYear {
		return compound(value, postRate, years)
	}
	atRetirement := compound(value, preRate, retirementYear-currentYear)
	return compound(atRetirement, postRate, targetYear-retirementYear)
}

// compound grows value at ratePercent for whole years.
func compound(value, ratePercent decimal.Decimal, years int) decimal.Decimal {
	return dec.NewMoneyFromDecimal(value).Grow(ratePercent, years).Decimal
}

// rateForYear is the single-year rate applied while stepping through year.
func rateForYear(year, retirementYear int, preRate, postRate decimal.Decimal) decimal.Decimal {
	if year <= retirementYear {
		return preRate
	}
	return postRate
}
