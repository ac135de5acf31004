package domain

import "github.com/shopspring/decimal"

// GoalTimeline buckets a goal occurrence by how far away it is.
type GoalTimeline string

const (
	TimelineShort  GoalTimeline = "short_term"
	TimelineMedium GoalTimeline = "medium_term"
	TimelineLong   GoalTimeline = "long_term"
)

// TimelineFor classifies a goal due yearsAway years from now: under 5 is
// short term, under 10 is medium term and anything later is long term.
func TimelineFor(yearsAway int) GoalTimeline {
	switch {
	case yearsAway < 5:
		return TimelineShort
	case yearsAway < 10:
		return TimelineMedium
	default:
		return TimelineLong
	}
}

// GoalAnalysis is the funding verdict for one goal occurrence.
// Shortfall is negative when the corpus exceeds the requirement.
type GoalAnalysis struct {
	GoalID                  string          `json:"goal_id"`
	Name                    string          `json:"name"`
	Priority                Priority        `json:"priority"`
	Timeline                GoalTimeline    `json:"timeline"`
	Year                    int             `json:"year"`
	Age                     int             `json:"age"`
	Occurrence              int             `json:"occurrence"`
	InflationAdjustedAmount decimal.Decimal `json:"inflation_adjusted_amount"`
	CorpusAtGoalYear        decimal.Decimal `json:"corpus_at_goal_year"`
	IsFunded                bool            `json:"is_funded"`
	Shortfall               decimal.Decimal `json:"shortfall"`
}

// CorpusHealth aggregates the plan-wide funding verdicts. The two corpus
// figures at retirement are distinct: TotalCorpusAtRetirement ignores all
// goals, CorpusAtRetirementAfterPreGoals subtracts those due by retirement.
type CorpusHealth struct {
	TotalCorpusAtRetirement          decimal.Decimal `json:"total_corpus_at_retirement"`
	CorpusAtRetirementAfterPreGoals  decimal.Decimal `json:"corpus_at_retirement_after_pre_goals"`
	RetirementCorpusRequired         decimal.Decimal `json:"retirement_corpus_required"`
	MonthlyExpenseAtRetirement       decimal.Decimal `json:"monthly_expense_at_retirement"`
	TotalMustHaveGoalsRequired       decimal.Decimal `json:"total_must_have_goals_required"`
	TotalGoodToHaveGoalsRequired     decimal.Decimal `json:"total_good_to_have_goals_required"`
	TotalAllGoalsRequired            decimal.Decimal `json:"total_all_goals_required"`
	PreRetirementGoalsImpact         decimal.Decimal `json:"pre_retirement_goals_impact"`
	PostRetirementGoalsPV            decimal.Decimal `json:"post_retirement_goals_pv"`
	TotalRequiredIncludingRetirement decimal.Decimal `json:"total_required_including_retirement"`
	CanMeetRetirement                bool            `json:"can_meet_retirement"`
	CanMeetMustHaveGoals             bool            `json:"can_meet_must_have_goals"`
	CanMeetAllGoals                  bool            `json:"can_meet_all_goals"`
	CanMeetAllIncludingRetirement    bool            `json:"can_meet_all_including_retirement"`
	MustHaveGoalsFunded              int             `json:"must_have_goals_funded"`
	MustHaveGoalsTotal               int             `json:"must_have_goals_total"`
	GoodToHaveGoalsFunded            int             `json:"good_to_have_goals_funded"`
	GoodToHaveGoalsTotal             int             `json:"good_to_have_goals_total"`
	OverallSurplus                   decimal.Decimal `json:"overall_surplus"`
}

// YearProjection is the corpus in one calendar year. Years after retirement
// come from the drawdown simulation and may be negative.
type YearProjection struct {
	Year          int             `json:"year"`
	Age           int             `json:"age"`
	IsRetired     bool            `json:"is_retired"`
	TotalCorpus   decimal.Decimal `json:"total_corpus"`
	GoalsMaturing []GoalAnalysis  `json:"goals_maturing,omitempty"`
}

// FinancialAnalysis is the complete engine output for one snapshot.
type FinancialAnalysis struct {
	CurrentYear       int              `json:"current_year"`
	RetirementYear    int              `json:"retirement_year"`
	CorpusHealth      CorpusHealth     `json:"corpus_health"`
	GoalAnalyses      []GoalAnalysis   `json:"goal_analyses"`
	YearlyProjections []YearProjection `json:"yearly_projections"`
}

// ProjectionFor returns the projection of a calendar year.
func (fa *FinancialAnalysis) ProjectionFor(year int) (YearProjection, bool) {
	for _, p := range fa.YearlyProjections {
		if p.Year == year {
			return p, true
		}
	}
	return YearProjection{}, false
}
