package calculation

import (
	"github.com/rpgo/corpus-planner/internal/domain"
	"github.com/rpgo/corpus-planner/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ExpandGoal turns a goal into its concrete occurrences. A one-time goal
// yields one occurrence. A recurring goal yields one occurrence per advance
// from its start age through its end age, and none when either age is
// missing. The goal itself is never modified.
func ExpandGoal(goal domain.FinancialGoal, currentYear, currentAge int) []domain.GoalOccurrence {
	switch s := goal.Schedule.(type) {
	case domain.OneTime:
		age := dateutil.AgeInYear(currentYear, currentAge, s.Year)
		return []domain.GoalOccurrence{newOccurrence(goal, s.Year, age, 1, false)}
	case domain.Recurring:
		if s.StartAge == nil || s.EndAge == nil {
			return nil
		}
		step := s.AdvanceYears()
		var out []domain.GoalOccurrence
		for age := *s.StartAge; age <= *s.EndAge; age += step {
			year := dateutil.YearForAge(currentYear, currentAge, age)
			out = append(out, newOccurrence(goal, year, age, len(out)+1, true))
		}
		return out
	default:
		return nil
	}
}

func newOccurrence(goal domain.FinancialGoal, year, age, seq int, recurring bool) domain.GoalOccurrence {
	return domain.GoalOccurrence{
		GoalID:              goal.ID,
		Name:                goal.Name,
		TargetAmount:        goal.TargetAmount,
		InflationCategoryID: goal.InflationCategoryID,
		Priority:            goal.Priority,
		Year:                year,
		Age:                 age,
		Sequence:            seq,
		Recurring:           recurring,
	}
}

// ExpandGoals expands every enabled goal of the plan in plan order.
func ExpandGoals(plan *domain.FinancialPlan, currentYear int) []domain.GoalOccurrence {
	var out []domain.GoalOccurrence
	for _, g := range plan.Goals {
		if !g.Enabled {
			continue
		}
		out = append(out, ExpandGoal(g, currentYear, plan.Profile.CurrentAge)...)
	}
	return out
}

// InflationAdjusted is amount × (1+rate/100)^years.
func InflationAdjusted(amount, ratePercent decimal.Decimal, years int) decimal.Decimal {
	return compound(amount, ratePercent, years)
}

// GoalInflationAdjusted values an occurrence in its own year using the rate
// of its inflation category (6% when the category is unknown).
func GoalInflationAdjusted(occ domain.GoalOccurrence, currentYear int, plan *domain.FinancialPlan) decimal.Decimal {
	return InflationAdjusted(occ.TargetAmount, InflationRateFor(plan, occ.InflationCategoryID), occ.Year-currentYear)
}

// WithdrawalImpact is how much a withdrawal of amount in goalYear reduces
// the corpus at evalYear: the amount itself in its own year, and afterwards
// the amount plus the growth it would have earned. Pre-retirement growth
// uses avgPreRate, the average across investment categories.
func WithdrawalImpact(amount decimal.Decimal, goalYear, evalYear, retirementYear int, avgPreRate, postRate decimal.Decimal) decimal.Decimal {
	if evalYear <= goalYear {
		return amount
	}
	return FutureValue(amount, goalYear, evalYear, retirementYear, avgPreRate, postRate)
}
