package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rpgo/corpus-planner/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of financial plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.FinancialPlan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a plan. Missing category tables are filled
// with the default tables.
func (ip *InputParser) Parse(data []byte) (*domain.FinancialPlan, error) {
	var plan domain.FinancialPlan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(plan.InflationCategories) == 0 {
		plan.InflationCategories = domain.DefaultInflationCategories()
	}
	if len(plan.InvestmentCategories) == 0 {
		plan.InvestmentCategories = domain.DefaultInvestmentCategories()
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return &plan, nil
}

// ValidatePlan checks the invariants the engine relies on callers to enforce.
func (ip *InputParser) ValidatePlan(plan *domain.FinancialPlan) error {
	if plan == nil {
		return fmt.Errorf("no plan provided")
	}
	if err := ip.validateProfile(&plan.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	if err := ip.validateCategories(plan); err != nil {
		return err
	}

	ids := make(map[string]string)
	claim := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("%s id is required", kind)
		}
		if prev, ok := ids[id]; ok {
			return fmt.Errorf("%s id %q is already used by a %s", kind, id, prev)
		}
		ids[id] = kind
		return nil
	}

	for i, inv := range plan.Investments {
		if err := claim("investment", inv.ID); err != nil {
			return fmt.Errorf("investment %d: %w", i, err)
		}
		if inv.CurrentValue.IsNegative() {
			return fmt.Errorf("investment %s: current value cannot be negative", inv.ID)
		}
	}
	for i, l := range plan.FutureLumpsums {
		if err := claim("lumpsum", l.ID); err != nil {
			return fmt.Errorf("lumpsum %d: %w", i, err)
		}
		if l.PlannedAmount.IsNegative() {
			return fmt.Errorf("lumpsum %s: planned amount cannot be negative", l.ID)
		}
	}
	for i, c := range plan.Contributions {
		if err := claim("contribution", c.ID); err != nil {
			return fmt.Errorf("contribution %d: %w", i, err)
		}
		if err := ip.validateContribution(&c); err != nil {
			return fmt.Errorf("contribution %s validation failed: %w", c.ID, err)
		}
	}
	for i, g := range plan.Goals {
		if err := claim("goal", g.ID); err != nil {
			return fmt.Errorf("goal %d: %w", i, err)
		}
		if err := ip.validateGoal(&g); err != nil {
			return fmt.Errorf("goal %s validation failed: %w", g.ID, err)
		}
	}
	return nil
}

// validateProfile validates the personal details
func (ip *InputParser) validateProfile(p *domain.UserProfile) error {
	if p.CurrentAge < 0 {
		return fmt.Errorf("current age cannot be negative")
	}
	if p.RetirementAge < p.CurrentAge {
		return fmt.Errorf("retirement age (%d) cannot be before current age (%d)", p.RetirementAge, p.CurrentAge)
	}
	if p.LifeExpectancy < p.RetirementAge {
		return fmt.Errorf("life expectancy (%d) cannot be before retirement age (%d)", p.LifeExpectancy, p.RetirementAge)
	}
	if p.CurrentMonthlyExpenses.IsNegative() {
		return fmt.Errorf("monthly expenses cannot be negative")
	}
	if p.PostRetirementGrowthRate.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return fmt.Errorf("post-retirement growth rate must be above -100%%")
	}
	return nil
}

// validateCategories rejects duplicate or unnamed categories.
func (ip *InputParser) validateCategories(plan *domain.FinancialPlan) error {
	seen := make(map[string]bool)
	for _, c := range plan.InflationCategories {
		if c.ID == "" {
			return fmt.Errorf("inflation category id is required")
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate inflation category %q", c.ID)
		}
		seen[c.ID] = true
	}
	seen = make(map[string]bool)
	for _, c := range plan.InvestmentCategories {
		if c.ID == "" {
			return fmt.Errorf("investment category id is required")
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate investment category %q", c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}

func (ip *InputParser) validateContribution(c *domain.OngoingContribution) error {
	if c.Amount.IsNegative() {
		return fmt.Errorf("amount cannot be negative")
	}
	if !c.Frequency.Valid() {
		return fmt.Errorf("frequency %q must be monthly, quarterly or yearly", c.Frequency)
	}
	if c.DurationYears != nil && *c.DurationYears < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	if c.StepUpPercentage.IsNegative() {
		return fmt.Errorf("step-up percentage cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateGoal(g *domain.FinancialGoal) error {
	if g.TargetAmount.IsNegative() {
		return fmt.Errorf("target amount cannot be negative")
	}
	if !g.Priority.Valid() {
		return fmt.Errorf("priority %q must be must_have or good_to_have", g.Priority)
	}
	if rec, ok := g.Schedule.(domain.Recurring); ok {
		if rec.FrequencyMonths <= 0 {
			return fmt.Errorf("recurring frequency must be at least one month")
		}
		if rec.StartAge != nil && rec.EndAge != nil && *rec.EndAge < *rec.StartAge {
			return fmt.Errorf("recurring end age (%d) cannot be before start age (%d)", *rec.EndAge, *rec.StartAge)
		}
	}
	return nil
}

// MarshalPlan encodes plan as YAML in the layout Parse reads.
func MarshalPlan(plan *domain.FinancialPlan) ([]byte, error) {
	b, err := yaml.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}
	return b, nil
}

// SavePlan writes plan as YAML.
func SavePlan(plan *domain.FinancialPlan, filename string) error {
	b, err := MarshalPlan(plan)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// CreateExamplePlan creates a sample plan anchored at currentYear: a 32 year
// old with three holdings, three contributions and four goals.
func (ip *InputParser) CreateExamplePlan(currentYear int) *domain.FinancialPlan {
	intPtr := func(i int) *int { return &i }
	return &domain.FinancialPlan{
		Profile: domain.UserProfile{
			CurrentAge:                 32,
			RetirementAge:              60,
			LifeExpectancy:             85,
			CurrentMonthlyExpenses:     decimal.NewFromInt(50000),
			ExpenseInflationCategoryID: "general",
			PostRetirementGrowthRate:   decimal.NewFromInt(9),
		},
		InflationCategories:  domain.DefaultInflationCategories(),
		InvestmentCategories: domain.DefaultInvestmentCategories(),
		Investments: []domain.Investment{
			{ID: "ppf", Name: "PPF Account", CurrentValue: decimal.NewFromInt(800000), CategoryID: "debt", Enabled: true},
			{ID: "equity-mf", Name: "Equity Mutual Funds", CurrentValue: decimal.NewFromInt(1500000), CategoryID: "equity", Enabled: true},
			{ID: "epf", Name: "EPF", CurrentValue: decimal.NewFromInt(1200000), CategoryID: "hybrid", Enabled: true},
		},
		FutureLumpsums: []domain.FutureLumpsumInvestment{
			{ID: "bonus", Name: "Year-end Bonus Investment", PlannedAmount: decimal.NewFromInt(200000), PlannedYear: currentYear, CategoryID: "equity", Enabled: true},
		},
		Contributions: []domain.OngoingContribution{
			{ID: "equity-sip", Name: "Equity SIP", Amount: decimal.NewFromInt(10000), Frequency: domain.FrequencyMonthly, CategoryID: "equity", StepUpPercentage: decimal.NewFromInt(10), Enabled: true},
			{ID: "ppf-yearly", Name: "PPF Contribution", Amount: decimal.NewFromInt(150000), Frequency: domain.FrequencyYearly, CategoryID: "debt", DurationYears: intPtr(15), StepUpPercentage: decimal.Zero, Enabled: true},
			{ID: "epf-monthly", Name: "EPF Contribution", Amount: decimal.NewFromInt(15000), Frequency: domain.FrequencyMonthly, CategoryID: "hybrid", StepUpPercentage: decimal.NewFromInt(5), Enabled: true},
		},
		Goals: []domain.FinancialGoal{
			{ID: "emergency", Name: "Emergency Fund", TargetAmount: decimal.NewFromInt(600000), InflationCategoryID: "general", Priority: domain.PriorityMustHave, Enabled: true, Schedule: domain.OneTime{Year: currentYear}},
			{ID: "vacation", Name: "Biennial Vacation", TargetAmount: decimal.NewFromInt(300000), InflationCategoryID: "general", Priority: domain.PriorityGoodToHave, Enabled: true, Schedule: domain.Recurring{StartAge: intPtr(34), EndAge: intPtr(60), FrequencyMonths: 24}},
			{ID: "house", Name: "House Down Payment", TargetAmount: decimal.NewFromInt(3000000), InflationCategoryID: "general", Priority: domain.PriorityGoodToHave, Enabled: true, Schedule: domain.OneTime{Year: currentYear + 7}},
			{ID: "education", Name: "Child Education", TargetAmount: decimal.NewFromInt(2500000), InflationCategoryID: "education", Priority: domain.PriorityMustHave, Enabled: true, Schedule: domain.OneTime{Year: currentYear + 14}},
		},
	}
}
