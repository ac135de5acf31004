package domain

import "github.com/shopspring/decimal"

// DefaultInflationCategories returns the standard inflation table. Each call
// returns a fresh slice.
func DefaultInflationCategories() []InflationCategory {
	return []InflationCategory{
		{ID: "general", Name: "General Inflation", Rate: decimal.NewFromInt(6)},
		{ID: "education", Name: "Education Inflation", Rate: decimal.NewFromInt(8)},
		{ID: "health", Name: "Healthcare Inflation", Rate: decimal.NewFromInt(10)},
	}
}

// DefaultInvestmentCategories returns the standard return table. Each call
// returns a fresh slice.
func DefaultInvestmentCategories() []InvestmentCategory {
	return []InvestmentCategory{
		{ID: "equity", Name: "Equity", PreRetirementXIRR: decimal.NewFromInt(12)},
		{ID: "debt", Name: "Debt", PreRetirementXIRR: decimal.NewFromInt(7)},
		{ID: "hybrid", Name: "Hybrid", PreRetirementXIRR: decimal.NewFromInt(10)},
	}
}
