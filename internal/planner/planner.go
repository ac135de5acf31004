// Package planner is the calling layer around the calculation engine. It
// memoizes analyses per plan snapshot and runs what-if comparisons with
// plan items toggled on or off.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/rpgo/corpus-planner/internal/calculation"
	"github.com/rpgo/corpus-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultCacheSize is used when New is given a non-positive size.
const DefaultCacheSize = 64

// ErrUnknownItem is returned by WhatIf when a toggle names no plan item.
var ErrUnknownItem = errors.New("unknown plan item")

// Analyzer runs one analysis. *calculation.CalculationEngine implements it.
type Analyzer interface {
	Analyze(ctx context.Context, plan *domain.FinancialPlan, currentYear int) (*domain.FinancialAnalysis, error)
}

// Stats reports cache effectiveness.
type Stats struct {
	Hits    int
	Misses  int
	Entries int
}

// Service memoizes analyses keyed by a hash of the plan snapshot and year.
// It is safe for concurrent use. Cached analyses are shared between callers
// and must not be modified.
type Service struct {
	analyzer Analyzer
	logger   calculation.Logger
	size     int

	mu      sync.Mutex
	entries map[uint64]*domain.FinancialAnalysis
	order   []uint64 // insertion order, oldest first
	hits    int
	misses  int
}

// New creates a Service around analyzer holding at most size analyses.
func New(analyzer Analyzer, size int, logger calculation.Logger) *Service {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Service{
		analyzer: analyzer,
		logger:   logger,
		size:     size,
		entries:  make(map[uint64]*domain.FinancialAnalysis, size),
	}
}

// SnapshotKey hashes the canonical JSON encoding of plan together with currentYear.
func SnapshotKey(plan *domain.FinancialPlan, currentYear int) (uint64, error) {
	b, err := json.Marshal(struct {
		Plan        *domain.FinancialPlan `json:"plan"`
		CurrentYear int                   `json:"current_year"`
	}{plan, currentYear})
	if err != nil {
		return 0, fmt.Errorf("encode plan snapshot: %w", err)
	}
	return xxhash.Sum64(b), nil
}

// Analyze returns the cached analysis of plan for currentYear, running the
// analyzer on a miss.
func (s *Service) Analyze(ctx context.Context, plan *domain.FinancialPlan, currentYear int) (*domain.FinancialAnalysis, error) {
	if plan == nil {
		return nil, calculation.ErrNilPlan
	}
	key, err := SnapshotKey(plan, currentYear)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if a, ok := s.entries[key]; ok {
		s.hits++
		s.mu.Unlock()
		s.logger.Debugf("planner: cache hit %016x", key)
		return a, nil
	}
	s.misses++
	s.mu.Unlock()

	a, err := s.analyzer.Analyze(ctx, plan, currentYear)
	if err != nil {
		return nil, err
	}
	s.store(key, a)
	s.logger.Debugf("planner: cached analysis %016x", key)
	return a, nil
}

func (s *Service) store(key uint64, a *domain.FinancialAnalysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; ok {
		return
	}
	for len(s.order) >= s.size {
		delete(s.entries, s.order[0])
		s.order = s.order[1:]
	}
	s.entries[key] = a
	s.order = append(s.order, key)
}

// Stats returns a snapshot of the cache counters.
func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{Hits: s.hits, Misses: s.misses, Entries: len(s.entries)}
}

// Reset drops every cached analysis and zeroes the counters.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[uint64]*domain.FinancialAnalysis, s.size)
	s.order = nil
	s.hits, s.misses = 0, 0
}

// Comparison holds a baseline analysis and the analysis of the toggled plan.
type Comparison struct {
	Toggles  map[string]bool
	Baseline *domain.FinancialAnalysis
	Variant  *domain.FinancialAnalysis
}

// SurplusChange is the variant's overall surplus minus the baseline's.
func (c *Comparison) SurplusChange() decimal.Decimal {
	return c.Variant.CorpusHealth.OverallSurplus.Sub(c.Baseline.CorpusHealth.OverallSurplus)
}

// RetirementCorpusChange is the change in corpus at retirement before goals.
func (c *Comparison) RetirementCorpusChange() decimal.Decimal {
	return c.Variant.CorpusHealth.TotalCorpusAtRetirement.Sub(c.Baseline.CorpusHealth.TotalCorpusAtRetirement)
}

// ChangedGoals lists the goal analyses whose funded verdict differs between
// baseline and variant, keyed by goal id and occurrence, in baseline order.
func (c *Comparison) ChangedGoals() []domain.GoalAnalysis {
	type occKey struct {
		id  string
		seq int
	}
	variant := make(map[occKey]bool, len(c.Variant.GoalAnalyses))
	for _, g := range c.Variant.GoalAnalyses {
		variant[occKey{g.GoalID, g.Occurrence}] = g.IsFunded
	}
	var out []domain.GoalAnalysis
	for _, g := range c.Baseline.GoalAnalyses {
		if funded, ok := variant[occKey{g.GoalID, g.Occurrence}]; ok && funded != g.IsFunded {
			out = append(out, g)
		}
	}
	return out
}

// WhatIf analyses plan as given and again with each toggled item's enabled
// flag set to the toggle value. plan itself is not modified.
func (s *Service) WhatIf(ctx context.Context, plan *domain.FinancialPlan, currentYear int, toggles map[string]bool) (*Comparison, error) {
	if plan == nil {
		return nil, calculation.ErrNilPlan
	}
	variantPlan := plan.Clone()
	ids := make([]string, 0, len(toggles))
	for id := range toggles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if !variantPlan.SetEnabled(id, toggles[id]) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownItem, id)
		}
	}

	baseline, err := s.Analyze(ctx, plan, currentYear)
	if err != nil {
		return nil, fmt.Errorf("baseline analysis: %w", err)
	}
	variant, err := s.Analyze(ctx, variantPlan, currentYear)
	if err != nil {
		return nil, fmt.Errorf("what-if analysis: %w", err)
	}
	return &Comparison{Toggles: toggles, Baseline: baseline, Variant: variant}, nil
}

// Disable builds a toggle set that switches off every id.
func Disable(ids ...string) map[string]bool {
	toggles := make(map[string]bool, len(ids))
	for _, id := range ids {
		toggles[id] = false
	}
	return toggles
}
