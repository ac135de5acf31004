package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRecurringAdvanceYears(t *testing.T) {
	tests := []struct {
		months int
		want   int
	}{
		{12, 1},
		{18, 2},
		{24, 2},
		{25, 3},
		{6, 1},
		{0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Recurring{FrequencyMonths: tt.months}.AdvanceYears(), "months=%d", tt.months)
	}
}

func TestGoalYAMLSchedules(t *testing.T) {
	src := `
- id: house
  name: House Down Payment
  target_amount: 3000000
  target_year: 2033
  inflation_category_id: general
  priority: good_to_have
- id: vacation
  name: Biennial Vacation
  target_amount: 300000
  target_year: 2027
  inflation_category_id: general
  priority: good_to_have
  enabled: false
  recurring:
    frequency_months: 24
    start_age: 34
    end_age: 60
`
	var goals []FinancialGoal
	require.NoError(t, yaml.Unmarshal([]byte(src), &goals))
	require.Len(t, goals, 2)

	assert.Equal(t, OneTime{Year: 2033}, goals[0].Schedule)
	assert.False(t, goals[0].IsRecurring())
	assert.True(t, goals[0].Enabled)
	assert.Equal(t, PriorityGoodToHave, goals[0].Priority)

	rec, ok := goals[1].Schedule.(Recurring)
	require.True(t, ok)
	assert.True(t, goals[1].IsRecurring())
	assert.False(t, goals[1].Enabled)
	assert.Equal(t, 24, rec.FrequencyMonths)
	require.NotNil(t, rec.StartAge)
	require.NotNil(t, rec.EndAge)
	assert.Equal(t, 34, *rec.StartAge)
	assert.Equal(t, 60, *rec.EndAge)
}

func TestGoalYAMLRoundTrip(t *testing.T) {
	goals := []FinancialGoal{
		{ID: "edu", Name: "Child Education", TargetAmount: decimal.NewFromInt(2500000), InflationCategoryID: "education", Priority: PriorityMustHave, Enabled: true, Schedule: OneTime{Year: 2040}},
		{ID: "trip", Name: "Trip", TargetAmount: decimal.NewFromInt(300000), InflationCategoryID: "general", Priority: PriorityGoodToHave, Enabled: false, Schedule: Recurring{StartAge: intPtr(34), EndAge: intPtr(60), FrequencyMonths: 18}},
		{ID: "open", Name: "Open Ended", TargetAmount: decimal.NewFromInt(1000), Priority: PriorityGoodToHave, Enabled: true, Schedule: Recurring{FrequencyMonths: 12}},
	}
	out, err := yaml.Marshal(goals)
	require.NoError(t, err)

	var back []FinancialGoal
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Len(t, back, len(goals))
	for i := range goals {
		assert.Equal(t, goals[i].ID, back[i].ID)
		assert.Equal(t, goals[i].Enabled, back[i].Enabled)
		assert.Equal(t, goals[i].Schedule, back[i].Schedule)
		assert.True(t, goals[i].TargetAmount.Equal(back[i].TargetAmount))
	}
}

func TestGoalJSONRoundTrip(t *testing.T) {
	goal := FinancialGoal{ID: "trip", Name: "Trip", TargetAmount: decimal.NewFromInt(300000), Priority: PriorityGoodToHave, Enabled: true, Schedule: Recurring{StartAge: intPtr(34), EndAge: intPtr(60), FrequencyMonths: 24}}
	data, err := json.Marshal(goal)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"frequency_months":24`)

	var back FinancialGoal
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, goal.Schedule, back.Schedule)
	assert.True(t, back.Enabled)
}

func TestReturnRateYAML(t *testing.T) {
	type holder struct {
		Rate ReturnRate `yaml:"return_rate,omitempty"`
	}
	var withOverride holder
	require.NoError(t, yaml.Unmarshal([]byte("return_rate: 14.5\n"), &withOverride))
	assert.True(t, withOverride.Rate.IsOverride())
	assert.True(t, withOverride.Rate.Resolve(decimal.NewFromInt(12)).Equal(decimal.RequireFromString("14.5")))

	var missing holder
	require.NoError(t, yaml.Unmarshal([]byte("{}\n"), &missing))
	assert.False(t, missing.Rate.IsOverride())
	assert.True(t, missing.Rate.Resolve(decimal.NewFromInt(12)).Equal(decimal.NewFromInt(12)))

	var explicit holder
	require.NoError(t, yaml.Unmarshal([]byte("return_rate: category\n"), &explicit))
	assert.False(t, explicit.Rate.IsOverride())

	var bad holder
	assert.Error(t, yaml.Unmarshal([]byte("return_rate: lots\n"), &bad))

	out, err := yaml.Marshal(missing)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "return_rate")

	out, err = yaml.Marshal(withOverride)
	require.NoError(t, err)
	var back holder
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.True(t, back.Rate.Resolve(decimal.Zero).Equal(decimal.RequireFromString("14.5")))
}

func TestReturnRateJSON(t *testing.T) {
	data, err := json.Marshal(OverrideRate(decimal.NewFromInt(9)))
	require.NoError(t, err)
	var back ReturnRate
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.IsOverride())
	assert.Equal(t, "9%", back.String())

	data, err = json.Marshal(CategoryRate())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
	require.NoError(t, json.Unmarshal(data, &back))
	assert.False(t, back.IsOverride())
	assert.Equal(t, "category", back.String())
}
