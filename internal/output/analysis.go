package output

import (
	"github.com/rpgo/corpus-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Longevity describes how long the corpus lasts through retirement.
type Longevity struct {
	FinalYear      int
	FinalAge       int
	FinalCorpus    decimal.Decimal
	LastsLifetime  bool
	LastFundedYear int // last year with a positive corpus, 0 if none
	LastFundedAge  int
	DepletionYear  int // first retired year with a corpus at or below zero, 0 if none
	DepletionAge   int
}

// AnalyzeLongevity scans the yearly projections for the year the corpus runs out.
func AnalyzeLongevity(analysis *domain.FinancialAnalysis) Longevity {
	var l Longevity
	if analysis == nil || len(analysis.YearlyProjections) == 0 {
		return l
	}
	last := analysis.YearlyProjections[len(analysis.YearlyProjections)-1]
	l.FinalYear, l.FinalAge, l.FinalCorpus = last.Year, last.Age, last.TotalCorpus
	l.LastsLifetime = last.TotalCorpus.IsPositive()

	for _, p := range analysis.YearlyProjections {
		if p.TotalCorpus.IsPositive() {
			l.LastFundedYear, l.LastFundedAge = p.Year, p.Age
		}
		if l.DepletionYear == 0 && p.IsRetired && !p.TotalCorpus.IsPositive() {
			l.DepletionYear, l.DepletionAge = p.Year, p.Age
		}
	}
	return l
}

// GoalSummary counts funded occurrences for one priority.
type GoalSummary struct {
	Priority  domain.Priority
	Funded    int
	Total     int
	Required  decimal.Decimal
	Shortfall decimal.Decimal // sum of positive shortfalls
}

// SummarizeGoals groups goal analyses by priority, must-have first.
func SummarizeGoals(analyses []domain.GoalAnalysis) []GoalSummary {
	summaries := []GoalSummary{
		{Priority: domain.PriorityMustHave},
		{Priority: domain.PriorityGoodToHave},
	}
	for _, g := range analyses {
		s := &summaries[1]
		if g.Priority == domain.PriorityMustHave {
			s = &summaries[0]
		}
		s.Total++
		s.Required = s.Required.Add(g.InflationAdjustedAmount)
		if g.IsFunded {
			s.Funded++
		} else {
			s.Shortfall = s.Shortfall.Add(g.Shortfall)
		}
	}
	return summaries
}
