package calculation

import (
	"github.com/rpgo/corpus-planner/internal/domain"
	dec "github.com/rpgo/corpus-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// MonthlyExpenseAtRetirement inflates today's monthly expenses to the
// retirement age using the profile's expense inflation category.
func MonthlyExpenseAtRetirement(plan *domain.FinancialPlan) decimal.Decimal {
	p := plan.Profile
	inflation := InflationRateFor(plan, p.ExpenseInflationCategoryID)
	return compound(p.CurrentMonthlyExpenses, inflation, p.YearsToRetirement())
}

// PresentValueOfAnnuity is PMT·(1−(1+r)^−n)/r for a per-period fractional
// rate r. When |r| < 0.0001, or r is -1 and nothing can be discounted, it
// degrades to PMT·n.
func PresentValueOfAnnuity(pmt, rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return decimal.Zero
	}
	if rate.Abs().LessThan(realRateEpsilon) {
		return pmt.Mul(decimal.NewFromInt(int64(periods)))
	}
	discount, ok := dec.Discount(decimalOne, rate, periods)
	if !ok {
		return pmt.Mul(decimal.NewFromInt(int64(periods)))
	}
	return pmt.Mul(decimalOne.Sub(discount)).Div(rate)
}

// RetirementCorpus is the lump sum needed at retirement to pay the inflated
// monthly expense until life expectancy. It discounts at the monthly real
// rate post/12 − inflation/12 and is zero when no retirement years remain.
func RetirementCorpus(plan *domain.FinancialPlan) decimal.Decimal {
	p := plan.Profile
	months := p.YearsInRetirement() * 12
	if months <= 0 {
		return decimal.Zero
	}
	inflation := InflationRateFor(plan, p.ExpenseInflationCategoryID)
	realRate := dec.MonthlyFromPercent(p.PostRetirementGrowthRate).Sub(dec.MonthlyFromPercent(inflation))
	return PresentValueOfAnnuity(MonthlyExpenseAtRetirement(plan), realRate, months)
}
