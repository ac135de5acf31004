package output

import (
	"fmt"

	calc "github.com/rpgo/corpus-planner/internal/calculation"
	"github.com/rpgo/corpus-planner/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs
// when the plan that produced an analysis is not available.
var DefaultAssumptions = []string{
	"Returns compound annually; contributions are invested at the start of each year",
	"Pre-retirement growth uses each holding's category rate, post-retirement growth the profile rate",
	"Goal withdrawals are valued at the average pre-retirement category rate",
	"Expenses and goal amounts grow with their inflation category",
	"No taxes, fees or market volatility are modeled",
}

// GenerateAssumptions creates the assumptions list from the plan's actual rates.
func GenerateAssumptions(plan *domain.FinancialPlan) []string {
	if plan == nil {
		return DefaultAssumptions
	}
	p := plan.Profile
	expenseInflation := calc.InflationRateFor(plan, p.ExpenseInflationCategoryID)
	out := []string{
		fmt.Sprintf("Retirement at age %d, planning horizon to age %d", p.RetirementAge, p.LifeExpectancy),
		fmt.Sprintf("Expense inflation: %.1f%% annually", expenseInflation.InexactFloat64()),
		fmt.Sprintf("Post-retirement growth: %.1f%% annually", p.PostRetirementGrowthRate.InexactFloat64()),
	}
	for _, c := range plan.InvestmentCategories {
		out = append(out, fmt.Sprintf("%s pre-retirement return: %.1f%% annually", c.Name, c.PreRetirementXIRR.InexactFloat64()))
	}
	for _, c := range plan.InflationCategories {
		out = append(out, fmt.Sprintf("%s inflation: %.1f%% annually", c.Name, c.Rate.InexactFloat64()))
	}
	return append(out, "No taxes, fees or market volatility are modeled")
}

func assumptionsOrDefault(opts Options) []string {
	if len(opts.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return opts.Assumptions
}
