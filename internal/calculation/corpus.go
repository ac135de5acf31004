package calculation

import (
	"github.com/rpgo/corpus-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// GoalWithdrawal is a goal occurrence together with its inflation-adjusted
// amount in its own year.
type GoalWithdrawal struct {
	Occurrence domain.GoalOccurrence
	Amount     decimal.Decimal
}

type pricedInvestment struct {
	investment domain.Investment
	rate       decimal.Decimal
}

type pricedLumpsum struct {
	lumpsum domain.FutureLumpsumInvestment
	rate    decimal.Decimal
}

type pricedContribution struct {
	contribution domain.OngoingContribution
	rate         decimal.Decimal
}

// CorpusProjector values one plan's corpus in arbitrary target years. Rates
// and goal occurrences are resolved once at construction; disabled items are
// dropped there and never contribute.
type CorpusProjector struct {
	currentYear    int
	retirementYear int
	postRate       decimal.Decimal
	avgPreRate     decimal.Decimal

	investments   []pricedInvestment
	lumpsums      []pricedLumpsum
	contributions []pricedContribution
	withdrawals   []GoalWithdrawal
}

// NewCorpusProjector prepares plan for projection from currentYear.
func NewCorpusProjector(plan *domain.FinancialPlan, currentYear int, logger Logger) *CorpusProjector {
	if logger == nil {
		logger = NopLogger{}
	}
	rates := newRateResolver(plan, logger)
	cp := &CorpusProjector{
		currentYear:    currentYear,
		retirementYear: plan.Profile.RetirementYear(currentYear),
		postRate:       plan.Profile.PostRetirementGrowthRate,
		avgPreRate:     rates.average,
	}
	for _, inv := range plan.Investments {
		if !inv.Enabled {
			continue
		}
		cp.investments = append(cp.investments, pricedInvestment{inv, rates.investment("investment "+inv.ID, inv.CategoryID, inv.ReturnRate)})
	}
	for _, l := range plan.FutureLumpsums {
		if !l.Enabled {
			continue
		}
		cp.lumpsums = append(cp.lumpsums, pricedLumpsum{l, rates.investment("lumpsum "+l.ID, l.CategoryID, domain.CategoryRate())})
	}
	for _, c := range plan.Contributions {
		if !c.Enabled {
			continue
		}
		cp.contributions = append(cp.contributions, pricedContribution{c, rates.investment("contribution "+c.ID, c.CategoryID, c.ReturnRate)})
	}
	for _, occ := range ExpandGoals(plan, currentYear) {
		rate := rates.inflation("goal "+occ.GoalID, occ.InflationCategoryID)
		cp.withdrawals = append(cp.withdrawals, GoalWithdrawal{
			Occurrence: occ,
			Amount:     InflationAdjusted(occ.TargetAmount, rate, occ.Year-currentYear),
		})
	}
	return cp
}

// RetirementYear is the calendar year of retirement.
func (cp *CorpusProjector) RetirementYear() int { return cp.retirementYear }

// Withdrawals returns the valued goal occurrences in plan order.
func (cp *CorpusProjector) Withdrawals() []GoalWithdrawal {
	return append([]GoalWithdrawal(nil), cp.withdrawals...)
}

// HoldingsValue is the value in targetYear of every enabled investment,
// future lump sum and contribution, before any goal is paid.
func (cp *CorpusProjector) HoldingsValue(targetYear int) decimal.Decimal {
	total := decimal.Zero
	for _, p := range cp.investments {
		total = total.Add(FutureValue(p.investment.CurrentValue, cp.currentYear, targetYear, cp.retirementYear, p.rate, cp.postRate))
	}
	for _, p := range cp.lumpsums {
		total = total.Add(LumpsumFutureValue(p.lumpsum, cp.currentYear, targetYear, cp.retirementYear, p.rate, cp.postRate))
	}
	for _, p := range cp.contributions {
		total = total.Add(ContributionFutureValue(p.contribution, cp.currentYear, targetYear, cp.retirementYear, p.rate, cp.postRate))
	}
	return total
}

// GoalsImpact is the combined impact in targetYear of every goal occurrence
// due on or before targetYear. Occurrences of excludeGoalID are skipped; an
// empty id skips nothing.
func (cp *CorpusProjector) GoalsImpact(targetYear int, excludeGoalID string) decimal.Decimal {
	total := decimal.Zero
	for _, w := range cp.withdrawals {
		if w.Occurrence.Year > targetYear {
			continue
		}
		if excludeGoalID != "" && w.Occurrence.GoalID == excludeGoalID {
			continue
		}
		total = total.Add(WithdrawalImpact(w.Amount, w.Occurrence.Year, targetYear, cp.retirementYear, cp.avgPreRate, cp.postRate))
	}
	return total
}

// TotalCorpus is the corpus in targetYear after all goals due by then.
func (cp *CorpusProjector) TotalCorpus(targetYear int) decimal.Decimal {
	return cp.HoldingsValue(targetYear).Sub(cp.GoalsImpact(targetYear, ""))
}

// CorpusExcludingGoal is TotalCorpus with every occurrence of goalID ignored.
func (cp *CorpusProjector) CorpusExcludingGoal(targetYear int, goalID string) decimal.Decimal {
	return cp.HoldingsValue(targetYear).Sub(cp.GoalsImpact(targetYear, goalID))
}

// TotalCorpus projects plan's corpus in targetYear.
func TotalCorpus(plan *domain.FinancialPlan, currentYear, targetYear int) decimal.Decimal {
	return NewCorpusProjector(plan, currentYear, nil).TotalCorpus(targetYear)
}

// LumpsumFutureValue is worth nothing before the planned year, then grows
// from the planned year (or currentYear, if later) to targetYear.
func LumpsumFutureValue(l domain.FutureLumpsumInvestment, currentYear, targetYear, retirementYear int, preRate, postRate decimal.Decimal) decimal.Decimal {
	if targetYear < l.PlannedYear {
		return decimal.Zero
	}
	from := max(l.PlannedYear, currentYear)
	return FutureValue(l.PlannedAmount, from, targetYear, retirementYear, preRate, postRate)
}
