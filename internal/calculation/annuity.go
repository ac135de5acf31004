package calculation

import (
	"github.com/rpgo/corpus-planner/internal/domain"
	dec "github.com/rpgo/corpus-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FutureValueOfAnnuity is the value after periods of a payment made at the
// end of every period: PMT·((1+r)^n−1)/r, or PMT·n when the rate is zero.
func FutureValueOfAnnuity(pmt, ratePercent decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return decimal.Zero
	}
	r := dec.FromPercent(ratePercent)
	if r.IsZero() {
		return pmt.Mul(decimal.NewFromInt(int64(periods)))
	}
	return pmt.Mul(dec.GrowthFactor(r, periods).Sub(decimalOne)).Div(r)
}

// FutureValueOfAnnuityDue is FutureValueOfAnnuity for payments made at the
// start of every period, so each payment earns one more period of growth.
func FutureValueOfAnnuityDue(pmt, ratePercent decimal.Decimal, periods int) decimal.Decimal {
	return FutureValueOfAnnuity(pmt, ratePercent, periods).Mul(decimalOne.Add(dec.FromPercent(ratePercent)))
}

// AnnualContribution converts a contribution to its yearly amount.
func AnnualContribution(c domain.OngoingContribution) decimal.Decimal {
	return dec.NewMoneyFromDecimal(c.Amount).Annualize(c.Frequency.PeriodsPerYear()).Decimal
}

// ContributionFutureValue is the corpus built by contribution c by
// targetYear. Each year's payment is made at the start of the year and grows
// for that year at the pre or post rate depending on the year's position
// relative to retirementYear. Once the contribution window closes the lump
// keeps growing to targetYear. Rates are percentages.
func ContributionFutureValue(c domain.OngoingContribution, currentYear, targetYear, retirementYear int, preRate, postRate decimal.Decimal) decimal.Decimal {
	if targetYear <= currentYear {
		return decimal.Zero
	}
	endYear := c.EndYear(currentYear, retirementYear)
	if endYear <= currentYear {
		return decimal.Zero
	}
	annual := AnnualContribution(c)
	if c.StepUpPercentage.IsZero() {
		return levelContributionValue(annual, currentYear, endYear, targetYear, retirementYear, preRate, postRate)
	}
	return steppedContributionValue(annual, c.StepUpPercentage, currentYear, endYear, targetYear, retirementYear, preRate, postRate)
}

// levelContributionValue evaluates a flat contribution in closed form, one
// annuity per rate phase.
func levelContributionValue(annual decimal.Decimal, currentYear, endYear, targetYear, retirementYear int, preRate, postRate decimal.Decimal) decimal.Decimal {
	lastYear := min(endYear, targetYear)
	preYears := max(0, min(lastYear, retirementYear)-currentYear)
	postYears := lastYear - currentYear - preYears

	lump := FutureValueOfAnnuityDue(annual, preRate, preYears)
	if postYears > 0 {
		lump = compound(lump, postRate, postYears).Add(FutureValueOfAnnuityDue(annual, postRate, postYears))
	}
	return FutureValue(lump, lastYear, targetYear, retirementYear, preRate, postRate)
}

// steppedContributionValue simulates a contribution that rises by stepUp
// percent every year.
func steppedContributionValue(annual, stepUp decimal.Decimal, currentYear, endYear, targetYear, retirementYear int, preRate, postRate decimal.Decimal) decimal.Decimal {
	lastYear := min(endYear, targetYear)
	stepFactor := decimalOne.Add(dec.FromPercent(stepUp))
	corpus := decimal.Zero
	amount := annual
	for year := currentYear + 1; year <= lastYear; year++ {
		corpus = corpus.Add(amount)
		rate := rateForYear(year, retirementYear, preRate, postRate)
		corpus = corpus.Mul(decimalOne.Add(dec.FromPercent(rate))).Round(dec.FactorPrecision)
		amount = amount.Mul(stepFactor)
	}
	return FutureValue(corpus, lastYear, targetYear, retirementYear, preRate, postRate)
}
