package calculation

import (
	"testing"

	"github.com/rpgo/corpus-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFutureValueOfAnnuity(t *testing.T) {
	assertDecimalNear(t, d("2100"), FutureValueOfAnnuity(d("1000"), d("10"), 2))
	assertDecimalNear(t, d("3000"), FutureValueOfAnnuity(d("1000"), decimal.Zero, 3))
	assertDecimalNear(t, decimal.Zero, FutureValueOfAnnuity(d("1000"), d("10"), 0))
	assertDecimalNear(t, d("2310"), FutureValueOfAnnuityDue(d("1000"), d("10"), 2))
	assertDecimalNear(t, d("3000"), FutureValueOfAnnuityDue(d("1000"), decimal.Zero, 3))
}

func TestAnnualContribution(t *testing.T) {
	tests := []struct {
		freq domain.Frequency
		want decimal.Decimal
	}{
		{domain.FrequencyMonthly, d("120000")},
		{domain.FrequencyQuarterly, d("40000")},
		{domain.FrequencyYearly, d("10000")},
	}
	for _, tt := range tests {
		c := domain.OngoingContribution{Amount: d("10000"), Frequency: tt.freq}
		assert.True(t, AnnualContribution(c).Equal(tt.want), "frequency %s", tt.freq)
	}
}

func TestContributionFutureValue(t *testing.T) {
	yearly := func(amount string, duration *int, stepUp string) domain.OngoingContribution {
		return domain.OngoingContribution{
			Amount:           d(amount),
			Frequency:        domain.FrequencyYearly,
			DurationYears:    duration,
			StepUpPercentage: d(stepUp),
			Enabled:          true,
		}
	}
	tests := []struct {
		name                                string
		c                                   domain.OngoingContribution
		currentYear, targetYear, retireYear int
		pre, post                           string
		want                                string
	}{
		{"two flat years", yearly("1000", intPtr(2), "0"), 2025, 2027, 2053, "10", "9", "2310"},
		{"lump keeps growing after window", yearly("1000", intPtr(2), "0"), 2025, 2028, 2053, "10", "9", "2541"},
		{"target inside window", yearly("1000", intPtr(10), "0"), 2025, 2026, 2053, "10", "9", "1100"},
		{"crosses retirement", yearly("1000", intPtr(2), "0"), 2025, 2027, 2026, "10", "20", "2520"},
		{"step-up without growth", yearly("1000", intPtr(3), "10"), 2025, 2028, 2053, "0", "0", "3310"},
		{"step-up crossing retirement", yearly("1000", intPtr(2), "10"), 2025, 2027, 2026, "10", "20", "2640"},
		{"until retirement", yearly("1000", nil, "0"), 2025, 2030, 2027, "0", "0", "2000"},
		{"zero duration", yearly("1000", intPtr(0), "0"), 2025, 2030, 2053, "10", "9", "0"},
		{"target not after current", yearly("1000", intPtr(5), "0"), 2025, 2025, 2053, "10", "9", "0"},
		{"already past retirement without duration", yearly("1000", nil, "0"), 2025, 2030, 2020, "10", "9", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContributionFutureValue(tt.c, tt.currentYear, tt.targetYear, tt.retireYear, d(tt.pre), d(tt.post))
			assertDecimalNear(t, d(tt.want), got)
		})
	}
}

func TestClosedFormMatchesSimulationWithoutStepUp(t *testing.T) {
	annual := d("180000")
	cases := []struct {
		name                                         string
		currentYear, endYear, targetYear, retireYear int
		pre, post                                    string
	}{
		{"all pre-retirement", 2025, 2040, 2040, 2053, "12", "9"},
		{"target before end", 2025, 2053, 2035, 2053, "12", "9"},
		{"growth after window", 2025, 2040, 2060, 2053, "7", "9"},
		{"window crosses retirement", 2025, 2060, 2070, 2053, "9.6666666666666667", "9"},
		{"window crosses, target inside", 2025, 2060, 2057, 2053, "12", "8"},
		{"entirely post retirement", 2055, 2065, 2070, 2053, "12", "9"},
		{"zero rates", 2025, 2053, 2060, 2053, "0", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			closed := levelContributionValue(annual, tc.currentYear, tc.endYear, tc.targetYear, tc.retireYear, d(tc.pre), d(tc.post))
			simulated := steppedContributionValue(annual, decimal.Zero, tc.currentYear, tc.endYear, tc.targetYear, tc.retireYear, d(tc.pre), d(tc.post))
			assertDecimalNear(t, simulated, closed)
		})
	}
}

func TestStepUpIncreasesValue(t *testing.T) {
	flat := domain.OngoingContribution{Amount: d("10000"), Frequency: domain.FrequencyMonthly, StepUpPercentage: decimal.Zero}
	stepped := flat
	stepped.StepUpPercentage = d("10")

	flatValue := ContributionFutureValue(flat, 2025, 2053, 2053, d("12"), d("9"))
	steppedValue := ContributionFutureValue(stepped, 2025, 2053, 2053, d("12"), d("9"))
	assert.True(t, steppedValue.GreaterThan(flatValue))
}
