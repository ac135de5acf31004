package calculation

import (
	"github.com/rpgo/corpus-planner/internal/domain"
	dec "github.com/rpgo/corpus-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// InflationRateFor returns the rate of inflation category id, or 6% when the
// plan does not define it.
func InflationRateFor(plan *domain.FinancialPlan, id string) decimal.Decimal {
	if rate, ok := plan.InflationRate(id); ok {
		return rate
	}
	return defaultInflationRate
}

// AveragePreRetirementRate is the mean pre-retirement rate across all
// investment categories, or 12% when there are none.
func AveragePreRetirementRate(categories []domain.InvestmentCategory) decimal.Decimal {
	rates := make([]decimal.Decimal, 0, len(categories))
	for _, c := range categories {
		rates = append(rates, c.PreRetirementXIRR)
	}
	return dec.AveragePercent(rates, defaultInvestmentRate)
}

// rateResolver resolves holding rates against one plan's category tables.
type rateResolver struct {
	plan    *domain.FinancialPlan
	average decimal.Decimal
	logger  Logger
}

func newRateResolver(plan *domain.FinancialPlan, logger Logger) rateResolver {
	return rateResolver{plan: plan, average: AveragePreRetirementRate(plan.InvestmentCategories), logger: logger}
}

// investment returns the pre-retirement rate for a holding in categoryID.
// An unknown category falls back to the category average.
func (r rateResolver) investment(owner, categoryID string, override domain.ReturnRate) decimal.Decimal {
	if override.IsOverride() {
		return override.Resolve(decimal.Zero)
	}
	if rate, ok := r.plan.InvestmentRate(categoryID); ok {
		return rate
	}
	r.logger.Warnf("%s: unknown investment category %q, using average rate %s%%", owner, categoryID, r.average.StringFixed(2))
	return r.average
}

// inflation returns the inflation rate for categoryID, warning on fallback.
func (r rateResolver) inflation(owner, categoryID string) decimal.Decimal {
	if rate, ok := r.plan.InflationRate(categoryID); ok {
		return rate
	}
	r.logger.Warnf("%s: unknown inflation category %q, using %s%%", owner, categoryID, defaultInflationRate.String())
	return defaultInflationRate
}
