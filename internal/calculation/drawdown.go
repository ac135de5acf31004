package calculation

import (
	dec "github.com/rpgo/corpus-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// DrawdownYear is one simulated year after retirement. Corpus is the
// closing balance and may be negative once the money has run out.
type DrawdownYear struct {
	Year            int
	Expenses        decimal.Decimal
	GoalWithdrawals decimal.Decimal
	Corpus          decimal.Decimal
}

// SimulateDrawdown steps the corpus through every year after retirementYear
// up to targetYear. Each year pays twelve months of inflated expenses and any
// goals due that year, then grows what remains at postRate. Rates are
// percentages. The balance is never clamped.
func SimulateDrawdown(start decimal.Decimal, retirementYear, targetYear int, monthlyExpenseAtRetirement, inflationRate, postRate decimal.Decimal, goals []GoalWithdrawal) []DrawdownYear {
	if targetYear <= retirementYear {
		return nil
	}
	trace := make([]DrawdownYear, 0, targetYear-retirementYear)
	corpus := start
	for year := retirementYear + 1; year <= targetYear; year++ {
		monthly := compound(monthlyExpenseAtRetirement, inflationRate, year-retirementYear-1)
		expenses := dec.NewMoneyFromDecimal(monthly).Annual().Decimal
		corpus = corpus.Sub(expenses)

		withdrawn := decimal.Zero
		for _, g := range goals {
			if g.Occurrence.Year == year {
				withdrawn = withdrawn.Add(g.Amount)
			}
		}
		corpus = compound(corpus.Sub(withdrawn), postRate, 1).Round(dec.FactorPrecision)

		trace = append(trace, DrawdownYear{Year: year, Expenses: expenses, GoalWithdrawals: withdrawn, Corpus: corpus})
	}
	return trace
}

// PostRetirementCorpus is the corpus left in targetYear after drawing down
// start from retirement. It returns start when targetYear is not after
// retirementYear.
func PostRetirementCorpus(start decimal.Decimal, retirementYear, targetYear int, monthlyExpenseAtRetirement, inflationRate, postRate decimal.Decimal, goals []GoalWithdrawal) decimal.Decimal {
	trace := SimulateDrawdown(start, retirementYear, targetYear, monthlyExpenseAtRetirement, inflationRate, postRate, goals)
	if len(trace) == 0 {
		return start
	}
	return trace[len(trace)-1].Corpus
}
