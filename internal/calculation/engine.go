package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpgo/corpus-planner/internal/domain"
	"github.com/rpgo/corpus-planner/pkg/dateutil"
	dec "github.com/rpgo/corpus-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ErrNilPlan is returned when Analyze is called without a plan.
var ErrNilPlan = errors.New("financial plan is nil")

// CalculationEngine turns a plan snapshot into a FinancialAnalysis. It holds
// no per-analysis state and may be shared between goroutines.
type CalculationEngine struct {
	Debug  bool // Enable debug output for detailed calculations
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// Analyze projects plan from currentYear and returns per-goal verdicts, the
// corpus health summary and one projection per year up to life expectancy.
// The plan is only read. Errors are limited to a nil plan or a context that
// is already done.
func (ce *CalculationEngine) Analyze(ctx context.Context, plan *domain.FinancialPlan, currentYear int) (*domain.FinancialAnalysis, error) {
	if plan == nil {
		return nil, ErrNilPlan
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analyze plan: %w", err)
	}
	log := ce.logger()

	projector := NewCorpusProjector(plan, currentYear, log)
	retirementYear := projector.RetirementYear()
	if ce.Debug {
		log.Debugf("analysis: current year %d, retirement year %d, %d goal occurrences", currentYear, retirementYear, len(projector.withdrawals))
	}

	goals := analyzeGoals(projector, currentYear)
	health := corpusHealth(plan, projector, goals, log)
	if ce.Debug {
		log.Debugf("analysis: corpus at retirement %s before goals, %s after pre-retirement goals, %s required",
			health.TotalCorpusAtRetirement.StringFixed(2),
			health.CorpusAtRetirementAfterPreGoals.StringFixed(2),
			health.RetirementCorpusRequired.StringFixed(2))
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analyze plan: %w", err)
	}
	projections := yearlyProjections(plan, projector, currentYear, health, goals)

	return &domain.FinancialAnalysis{
		CurrentYear:       currentYear,
		RetirementYear:    retirementYear,
		CorpusHealth:      health,
		GoalAnalyses:      goals,
		YearlyProjections: projections,
	}, nil
}

// analyzeGoals tests every goal occurrence against the corpus in its year,
// computed without any occurrence of the same goal.
func analyzeGoals(projector *CorpusProjector, currentYear int) []domain.GoalAnalysis {
	withdrawals := projector.Withdrawals()
	out := make([]domain.GoalAnalysis, 0, len(withdrawals))
	for _, w := range withdrawals {
		occ := w.Occurrence
		available := projector.CorpusExcludingGoal(occ.Year, occ.GoalID)
		out = append(out, domain.GoalAnalysis{
			GoalID:                  occ.GoalID,
			Name:                    occ.Name,
			Priority:                occ.Priority,
			Timeline:                domain.TimelineFor(dateutil.YearsUntil(currentYear, occ.Year)),
			Year:                    occ.Year,
			Age:                     occ.Age,
			Occurrence:              occ.Sequence,
			InflationAdjustedAmount: w.Amount,
			CorpusAtGoalYear:        available,
			IsFunded:                available.GreaterThanOrEqual(w.Amount),
			Shortfall:               w.Amount.Sub(available),
		})
	}
	return out
}

func corpusHealth(plan *domain.FinancialPlan, projector *CorpusProjector, goals []domain.GoalAnalysis, log Logger) domain.CorpusHealth {
	retirementYear := projector.RetirementYear()
	postRate := plan.Profile.PostRetirementGrowthRate

	beforeGoals := projector.HoldingsValue(retirementYear)
	afterPreGoals := projector.TotalCorpus(retirementYear)
	required := RetirementCorpus(plan)

	h := domain.CorpusHealth{
		TotalCorpusAtRetirement:         beforeGoals,
		CorpusAtRetirementAfterPreGoals: afterPreGoals,
		RetirementCorpusRequired:        required,
		MonthlyExpenseAtRetirement:      MonthlyExpenseAtRetirement(plan),
		TotalMustHaveGoalsRequired:      decimal.Zero,
		TotalGoodToHaveGoalsRequired:    decimal.Zero,
		PreRetirementGoalsImpact:        beforeGoals.Sub(afterPreGoals),
		PostRetirementGoalsPV:           decimal.Zero,
	}
	for _, g := range goals {
		if g.Priority == domain.PriorityMustHave {
			h.TotalMustHaveGoalsRequired = h.TotalMustHaveGoalsRequired.Add(g.InflationAdjustedAmount)
			h.MustHaveGoalsTotal++
			if g.IsFunded {
				h.MustHaveGoalsFunded++
			}
		} else {
			h.TotalGoodToHaveGoalsRequired = h.TotalGoodToHaveGoalsRequired.Add(g.InflationAdjustedAmount)
			h.GoodToHaveGoalsTotal++
			if g.IsFunded {
				h.GoodToHaveGoalsFunded++
			}
		}
		if g.Year > retirementYear {
			pv, ok := dec.Discount(g.InflationAdjustedAmount, dec.FromPercent(postRate), g.Year-retirementYear)
			if !ok {
				log.Warnf("%s: post-retirement rate %s%% leaves no present value, counting %s undiscounted",
					g.GoalID, postRate.String(), g.InflationAdjustedAmount.StringFixed(2))
			}
			h.PostRetirementGoalsPV = h.PostRetirementGoalsPV.Add(pv)
		}
	}
	h.TotalAllGoalsRequired = h.TotalMustHaveGoalsRequired.Add(h.TotalGoodToHaveGoalsRequired)
	h.TotalRequiredIncludingRetirement = h.PreRetirementGoalsImpact.Add(h.PostRetirementGoalsPV).Add(required)

	h.CanMeetRetirement = required.LessThanOrEqual(beforeGoals)
	h.CanMeetMustHaveGoals = h.TotalMustHaveGoalsRequired.LessThanOrEqual(beforeGoals)
	h.CanMeetAllGoals = h.TotalAllGoalsRequired.LessThanOrEqual(beforeGoals)
	h.CanMeetAllIncludingRetirement = h.TotalRequiredIncludingRetirement.LessThanOrEqual(beforeGoals)
	h.OverallSurplus = beforeGoals.Sub(h.TotalRequiredIncludingRetirement)
	return h
}

// yearlyProjections covers every year from currentYear to the life
// expectancy year. Up to retirement the corpus comes from the projector;
// afterwards from the drawdown seeded with the post-goal retirement corpus.
func yearlyProjections(plan *domain.FinancialPlan, projector *CorpusProjector, currentYear int, health domain.CorpusHealth, goals []domain.GoalAnalysis) []domain.YearProjection {
	p := plan.Profile
	retirementYear := projector.RetirementYear()
	lastYear := p.LifeExpectancyYear(currentYear)

	var postGoals []GoalWithdrawal
	for _, w := range projector.Withdrawals() {
		if w.Occurrence.Year > retirementYear {
			postGoals = append(postGoals, w)
		}
	}
	trace := SimulateDrawdown(
		health.CorpusAtRetirementAfterPreGoals,
		retirementYear, lastYear,
		health.MonthlyExpenseAtRetirement,
		InflationRateFor(plan, p.ExpenseInflationCategoryID),
		p.PostRetirementGrowthRate,
		postGoals,
	)

	years := dateutil.YearRange(currentYear, lastYear)
	out := make([]domain.YearProjection, 0, len(years))
	for _, year := range years {
		yp := domain.YearProjection{
			Year:      year,
			Age:       dateutil.AgeInYear(currentYear, p.CurrentAge, year),
			IsRetired: year > retirementYear,
		}
		if year <= retirementYear {
			yp.TotalCorpus = projector.TotalCorpus(year)
		} else {
			yp.TotalCorpus = trace[year-retirementYear-1].Corpus
		}
		for _, g := range goals {
			if g.Year == year {
				yp.GoalsMaturing = append(yp.GoalsMaturing, g)
			}
		}
		out = append(out, yp)
	}
	return out
}
