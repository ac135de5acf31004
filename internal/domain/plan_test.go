package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func intPtr(i int) *int { return &i }

func TestFrequencyPeriodsPerYear(t *testing.T) {
	tests := []struct {
		freq  Frequency
		want  int
		valid bool
	}{
		{FrequencyMonthly, 12, true},
		{FrequencyQuarterly, 4, true},
		{FrequencyYearly, 1, true},
		{Frequency("weekly"), 1, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.freq), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.freq.PeriodsPerYear())
			assert.Equal(t, tt.valid, tt.freq.Valid())
		})
	}
}

func TestUserProfileYears(t *testing.T) {
	p := UserProfile{CurrentAge: 32, RetirementAge: 60, LifeExpectancy: 85}
	assert.Equal(t, 28, p.YearsToRetirement())
	assert.Equal(t, 25, p.YearsInRetirement())
	assert.Equal(t, 2053, p.RetirementYear(2025))
	assert.Equal(t, 2078, p.LifeExpectancyYear(2025))
}

func TestContributionEndYear(t *testing.T) {
	untilRetirement := OngoingContribution{}
	assert.Equal(t, 2053, untilRetirement.EndYear(2025, 2053))

	fixed := OngoingContribution{DurationYears: intPtr(15)}
	assert.Equal(t, 2040, fixed.EndYear(2025, 2053))
}

func TestEnabledDefaultsToTrue(t *testing.T) {
	src := `
investments:
  - id: ppf
    name: PPF
    current_value: 800000
    category_id: debt
  - id: old
    name: Old Fund
    current_value: 1000
    category_id: equity
    enabled: false
contributions:
  - id: sip
    name: SIP
    amount: 10000
    frequency: monthly
    category_id: equity
    step_up_percentage: 10
future_lumpsums:
  - id: bonus
    name: Bonus
    planned_amount: 200000
    planned_year: 2026
    category_id: equity
goals:
  - id: emergency
    name: Emergency Fund
    target_amount: 600000
    target_year: 2026
    inflation_category_id: general
    priority: must_have
`
	var plan FinancialPlan
	require.NoError(t, yaml.Unmarshal([]byte(src), &plan))
	require.Len(t, plan.Investments, 2)
	assert.True(t, plan.Investments[0].Enabled)
	assert.False(t, plan.Investments[1].Enabled)
	assert.True(t, plan.Investments[0].CurrentValue.Equal(decimal.NewFromInt(800000)))
	assert.True(t, plan.Contributions[0].Enabled)
	assert.Nil(t, plan.Contributions[0].DurationYears)
	assert.True(t, plan.FutureLumpsums[0].Enabled)
	assert.True(t, plan.Goals[0].Enabled)
	assert.Equal(t, OneTime{Year: 2026}, plan.Goals[0].Schedule)
}

func TestCloneIsIndependent(t *testing.T) {
	plan := &FinancialPlan{
		Investments: []Investment{{ID: "a", Enabled: true}},
		Goals:       []FinancialGoal{{ID: "g", Enabled: true, Schedule: OneTime{Year: 2030}}},
	}
	cp := plan.Clone()
	assert.True(t, cp.SetEnabled("a", false))
	assert.True(t, cp.SetEnabled("g", false))
	assert.False(t, cp.SetEnabled("missing", false))

	assert.True(t, plan.Investments[0].Enabled)
	assert.True(t, plan.Goals[0].Enabled)
	assert.False(t, cp.Investments[0].Enabled)
	assert.False(t, cp.Goals[0].Enabled)
}

func TestWithoutGoals(t *testing.T) {
	plan := &FinancialPlan{Goals: []FinancialGoal{{ID: "g"}}}
	assert.Empty(t, plan.WithoutGoals().Goals)
	assert.Len(t, plan.Goals, 1)
}

func TestCategoryLookup(t *testing.T) {
	plan := &FinancialPlan{
		InflationCategories:  DefaultInflationCategories(),
		InvestmentCategories: DefaultInvestmentCategories(),
	}
	rate, ok := plan.InflationRate("education")
	assert.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromInt(8)))

	_, ok = plan.InflationRate("travel")
	assert.False(t, ok)

	rate, ok = plan.InvestmentRate("debt")
	assert.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromInt(7)))
}

func TestDefaultCategoriesAreFresh(t *testing.T) {
	a := DefaultInflationCategories()
	a[0].Rate = decimal.NewFromInt(99)
	b := DefaultInflationCategories()
	assert.True(t, b[0].Rate.Equal(decimal.NewFromInt(6)))
}

func TestTimelineFor(t *testing.T) {
	assert.Equal(t, TimelineShort, TimelineFor(0))
	assert.Equal(t, TimelineShort, TimelineFor(4))
	assert.Equal(t, TimelineMedium, TimelineFor(5))
	assert.Equal(t, TimelineMedium, TimelineFor(9))
	assert.Equal(t, TimelineLong, TimelineFor(10))
}

func TestPlanJSONIncludesOverrides(t *testing.T) {
	a := FinancialPlan{Investments: []Investment{{ID: "a", ReturnRate: CategoryRate()}}}
	b := FinancialPlan{Investments: []Investment{{ID: "a", ReturnRate: OverrideRate(decimal.NewFromInt(14))}}}
	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.NotEqual(t, string(ja), string(jb))
}
