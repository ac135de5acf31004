package planner

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rpgo/corpus-planner/internal/calculation"
	"github.com/rpgo/corpus-planner/internal/config"
	"github.com/rpgo/corpus-planner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingAnalyzer struct {
	calls  atomic.Int32
	engine *calculation.CalculationEngine
}

func (c *countingAnalyzer) Analyze(ctx context.Context, plan *domain.FinancialPlan, year int) (*domain.FinancialAnalysis, error) {
	c.calls.Add(1)
	return c.engine.Analyze(ctx, plan, year)
}

func newCounting() *countingAnalyzer {
	return &countingAnalyzer{engine: calculation.NewCalculationEngine()}
}

func examplePlan() *domain.FinancialPlan {
	return config.NewInputParser().CreateExamplePlan(2025)
}

func TestAnalyzeCachesIdenticalSnapshot(t *testing.T) {
	ctx := context.Background()
	a := newCounting()
	svc := New(a, 8, nil)

	first, err := svc.Analyze(ctx, examplePlan(), 2025)
	require.NoError(t, err)
	second, err := svc.Analyze(ctx, examplePlan(), 2025)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.EqualValues(t, 1, a.calls.Load())
	assert.Equal(t, Stats{Hits: 1, Misses: 1, Entries: 1}, svc.Stats())
}

func TestResetDropsCacheAndCounters(t *testing.T) {
	ctx := context.Background()
	a := newCounting()
	svc := New(a, 8, nil)

	_, err := svc.Analyze(ctx, examplePlan(), 2025)
	require.NoError(t, err)
	_, err = svc.Analyze(ctx, examplePlan(), 2025)
	require.NoError(t, err)

	svc.Reset()
	assert.Equal(t, Stats{}, svc.Stats())

	_, err = svc.Analyze(ctx, examplePlan(), 2025)
	require.NoError(t, err)
	assert.EqualValues(t, 2, a.calls.Load())
	assert.Equal(t, Stats{Misses: 1, Entries: 1}, svc.Stats())
}

func TestAnalyzeKeysOnYearAndContent(t *testing.T) {
	ctx := context.Background()
	a := newCounting()
	svc := New(a, 8, nil)

	_, err := svc.Analyze(ctx, examplePlan(), 2025)
	require.NoError(t, err)
	_, err = svc.Analyze(ctx, examplePlan(), 2026)
	require.NoError(t, err)

	changed := examplePlan()
	changed.Profile.RetirementAge = 58
	_, err = svc.Analyze(ctx, changed, 2025)
	require.NoError(t, err)

	assert.EqualValues(t, 3, a.calls.Load())
	assert.Equal(t, 0, svc.Stats().Hits)
}

func TestSnapshotKeyStable(t *testing.T) {
	k1, err := SnapshotKey(examplePlan(), 2025)
	require.NoError(t, err)
	k2, err := SnapshotKey(examplePlan(), 2025)
	require.NoError(t, err)
	k3, err := SnapshotKey(examplePlan(), 2024)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}

func TestCacheEvictsOldestFirst(t *testing.T) {
	ctx := context.Background()
	a := newCounting()
	svc := New(a, 2, nil)
	plan := examplePlan()

	for _, year := range []int{2025, 2026, 2027} {
		_, err := svc.Analyze(ctx, plan, year)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, svc.Stats().Entries)

	// 2025 was evicted, 2027 is still cached.
	_, err := svc.Analyze(ctx, plan, 2027)
	require.NoError(t, err)
	_, err = svc.Analyze(ctx, plan, 2025)
	require.NoError(t, err)
	assert.EqualValues(t, 4, a.calls.Load())
	assert.Equal(t, 1, svc.Stats().Hits)
}

func TestAnalyzeNilPlan(t *testing.T) {
	svc := New(newCounting(), 0, nil)
	_, err := svc.Analyze(context.Background(), nil, 2025)
	assert.ErrorIs(t, err, calculation.ErrNilPlan)
}

func TestAnalyzeDoesNotCacheErrors(t *testing.T) {
	a := newCounting()
	svc := New(a, 4, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Analyze(ctx, examplePlan(), 2025)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, svc.Stats().Entries)

	_, err = svc.Analyze(context.Background(), examplePlan(), 2025)
	require.NoError(t, err)
	assert.EqualValues(t, 2, a.calls.Load())
}

func TestConcurrentAnalyze(t *testing.T) {
	svc := New(newCounting(), 4, nil)
	plan := examplePlan()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(year int) {
			defer wg.Done()
			_, err := svc.Analyze(context.Background(), plan, year)
			assert.NoError(t, err)
		}(2025 + i%3)
	}
	wg.Wait()
	s := svc.Stats()
	assert.Equal(t, 16, s.Hits+s.Misses)
	assert.Equal(t, 3, s.Entries)
}

func TestWhatIfDisableRemovesContribution(t *testing.T) {
	svc := New(newCounting(), 8, nil)
	plan := examplePlan()

	cmp, err := svc.WhatIf(context.Background(), plan, 2025, Disable("equity-sip"))
	require.NoError(t, err)

	assert.True(t, cmp.RetirementCorpusChange().IsNegative())
	assert.True(t, cmp.SurplusChange().IsNegative())
	assert.True(t, cmp.Variant.CorpusHealth.TotalCorpusAtRetirement.LessThan(cmp.Baseline.CorpusHealth.TotalCorpusAtRetirement))

	// the caller's plan is untouched
	for _, c := range plan.Contributions {
		assert.True(t, c.Enabled, c.ID)
	}
}

func TestWhatIfDisableGoal(t *testing.T) {
	svc := New(newCounting(), 8, nil)
	cmp, err := svc.WhatIf(context.Background(), examplePlan(), 2025, Disable("house"))
	require.NoError(t, err)

	for _, g := range cmp.Variant.GoalAnalyses {
		assert.NotEqual(t, "house", g.GoalID)
	}
	assert.True(t, cmp.RetirementCorpusChange().IsZero())
	assert.True(t, cmp.Variant.CorpusHealth.CorpusAtRetirementAfterPreGoals.GreaterThan(cmp.Baseline.CorpusHealth.CorpusAtRetirementAfterPreGoals))
}

func TestWhatIfEnable(t *testing.T) {
	plan := examplePlan()
	plan.SetEnabled("bonus", false)
	svc := New(newCounting(), 8, nil)

	cmp, err := svc.WhatIf(context.Background(), plan, 2025, map[string]bool{"bonus": true})
	require.NoError(t, err)
	assert.True(t, cmp.RetirementCorpusChange().IsPositive())
}

func TestWhatIfUnknownItem(t *testing.T) {
	svc := New(newCounting(), 8, nil)
	_, err := svc.WhatIf(context.Background(), examplePlan(), 2025, Disable("nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownItem))
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestChangedGoals(t *testing.T) {
	funded := domain.GoalAnalysis{GoalID: "a", Occurrence: 1, IsFunded: true}
	unfunded := domain.GoalAnalysis{GoalID: "a", Occurrence: 1, IsFunded: false}
	same := domain.GoalAnalysis{GoalID: "b", Occurrence: 1, IsFunded: true}
	cmp := &Comparison{
		Baseline: &domain.FinancialAnalysis{GoalAnalyses: []domain.GoalAnalysis{funded, same}},
		Variant:  &domain.FinancialAnalysis{GoalAnalyses: []domain.GoalAnalysis{unfunded, same}},
	}
	changed := cmp.ChangedGoals()
	require.Len(t, changed, 1)
	assert.Equal(t, "a", changed[0].GoalID)
}
