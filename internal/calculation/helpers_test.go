package calculation

import (
	"testing"

	"github.com/rpgo/corpus-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testTolerance = decimal.RequireFromString("0.000001")

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func intPtr(i int) *int { return &i }

// assertDecimalNear fails unless got is within testTolerance of want.
func assertDecimalNear(t *testing.T, want, got decimal.Decimal, msgAndArgs ...interface{}) bool {
	t.Helper()
	if want.Sub(got).Abs().GreaterThan(testTolerance) {
		return assert.Fail(t, "decimal mismatch: want "+want.String()+" got "+got.String(), msgAndArgs...)
	}
	return true
}

// scenarioPlan is a 32 year old retiring at 60 with one debt holding.
func scenarioPlan() *domain.FinancialPlan {
	return &domain.FinancialPlan{
		Profile: domain.UserProfile{
			CurrentAge:                 32,
			RetirementAge:              60,
			LifeExpectancy:             85,
			CurrentMonthlyExpenses:     decimal.NewFromInt(50000),
			ExpenseInflationCategoryID: "general",
			PostRetirementGrowthRate:   decimal.NewFromInt(9),
		},
		InflationCategories:  []domain.InflationCategory{{ID: "general", Name: "General", Rate: decimal.NewFromInt(6)}},
		InvestmentCategories: []domain.InvestmentCategory{{ID: "debt", Name: "Debt", PreRetirementXIRR: decimal.NewFromInt(7)}},
		Investments: []domain.Investment{
			{ID: "ppf", Name: "PPF", CurrentValue: decimal.NewFromInt(800000), CategoryID: "debt", Enabled: true},
		},
	}
}
