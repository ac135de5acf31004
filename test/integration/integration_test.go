package integration

import (
	"context"
	"testing"

	"github.com/rpgo/corpus-planner/internal/calculation"
	"github.com/rpgo/corpus-planner/internal/config"
	"github.com/rpgo/corpus-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const planFile = "../testdata/example_plan.yaml"

func loadAndAnalyze(t *testing.T) (*domain.FinancialPlan, *domain.FinancialAnalysis) {
	t.Helper()
	plan, err := config.NewInputParser().LoadFromFile(planFile)
	require.NoError(t, err)
	analysis, err := calculation.NewCalculationEngine().Analyze(context.Background(), plan, 2025)
	require.NoError(t, err)
	return plan, analysis
}

func TestEndToEndCalculation(t *testing.T) {
	plan, analysis := loadAndAnalyze(t)

	assert.Len(t, plan.Investments, 4)
	assert.False(t, plan.Investments[3].Enabled, "gold is switched off in the file")
	assert.True(t, plan.Investments[0].Enabled, "enabled defaults to true")

	assert.Equal(t, 2025, analysis.CurrentYear)
	assert.Equal(t, 2053, analysis.RetirementYear)
	// 2025 through age 85 in 2078
	require.Len(t, analysis.YearlyProjections, 54)
	first := analysis.YearlyProjections[0]
	last := analysis.YearlyProjections[len(analysis.YearlyProjections)-1]
	assert.Equal(t, 32, first.Age)
	assert.Equal(t, 85, last.Age)
	assert.Equal(t, 2078, last.Year)
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(planFile)
	require.NoError(t, err)
	assert.NoError(t, parser.ValidatePlan(plan))

	plan.Profile.RetirementAge = 30
	assert.Error(t, parser.ValidatePlan(plan))
}

func TestGoalOccurrencesAreExpanded(t *testing.T) {
	_, analysis := loadAndAnalyze(t)

	counts := map[string]int{}
	for _, g := range analysis.GoalAnalyses {
		counts[g.GoalID]++
	}
	// ages 34, 36, ... 60
	assert.Equal(t, 14, counts["vacation"])
	assert.Equal(t, 1, counts["house"])
	assert.Equal(t, 1, counts["medical"])

	h := analysis.CorpusHealth
	assert.Equal(t, 3, h.MustHaveGoalsTotal)
	assert.Equal(t, 15, h.GoodToHaveGoalsTotal)
}

func TestCorpusHealthIdentities(t *testing.T) {
	_, analysis := loadAndAnalyze(t)
	h := analysis.CorpusHealth

	assert.True(t, h.TotalAllGoalsRequired.Equal(h.TotalMustHaveGoalsRequired.Add(h.TotalGoodToHaveGoalsRequired)))
	assert.True(t, h.TotalRequiredIncludingRetirement.Equal(
		h.PreRetirementGoalsImpact.Add(h.PostRetirementGoalsPV).Add(h.RetirementCorpusRequired)))
	assert.True(t, h.OverallSurplus.Equal(h.TotalCorpusAtRetirement.Sub(h.TotalRequiredIncludingRetirement)))
	assert.True(t, h.PreRetirementGoalsImpact.Equal(h.TotalCorpusAtRetirement.Sub(h.CorpusAtRetirementAfterPreGoals)))
	assert.True(t, h.PreRetirementGoalsImpact.IsPositive())
	assert.True(t, h.PostRetirementGoalsPV.IsPositive(), "medical reserve falls after retirement")

	for _, g := range analysis.GoalAnalyses {
		assert.Equal(t, g.CorpusAtGoalYear.GreaterThanOrEqual(g.InflationAdjustedAmount), g.IsFunded, g.GoalID)
		assert.True(t, g.Shortfall.Equal(g.InflationAdjustedAmount.Sub(g.CorpusAtGoalYear)), g.GoalID)
	}
}

func TestProjectionMatchesCorpusProjector(t *testing.T) {
	plan, analysis := loadAndAnalyze(t)

	for _, year := range []int{2025, 2032, 2040, 2053} {
		p, ok := analysis.ProjectionFor(year)
		require.True(t, ok, year)
		assert.False(t, p.IsRetired, year)
		assert.True(t, p.TotalCorpus.Equal(calculation.TotalCorpus(plan, 2025, year)), year)
	}
	retired, ok := analysis.ProjectionFor(2054)
	require.True(t, ok)
	assert.True(t, retired.IsRetired)
}

func TestDisabledItemsDoNotContribute(t *testing.T) {
	plan, analysis := loadAndAnalyze(t)

	plan.SetEnabled("gold", true)
	withGold, err := calculation.NewCalculationEngine().Analyze(context.Background(), plan, 2025)
	require.NoError(t, err)

	gain := withGold.CorpusHealth.TotalCorpusAtRetirement.Sub(analysis.CorpusHealth.TotalCorpusAtRetirement)
	// the 8% override applies instead of the hybrid category rate
	want := calculation.FutureValue(decimal.NewFromInt(250000), 2025, 2053, 2053, decimal.NewFromInt(8), decimal.NewFromInt(9))
	assert.True(t, gain.Sub(want).Abs().LessThan(decimal.New(1, -6)), "gain %s want %s", gain, want)
}
