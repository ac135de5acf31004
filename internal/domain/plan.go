package domain

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Frequency is how often an ongoing contribution is made.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// PeriodsPerYear returns how many contributions of this frequency fall in a
// year. Unknown frequencies count as a single yearly payment.
func (f Frequency) PeriodsPerYear() int {
	switch f {
	case FrequencyMonthly:
		return 12
	case FrequencyQuarterly:
		return 4
	default:
		return 1
	}
}

// Valid reports whether f is one of the supported frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// Priority ranks a goal for the funding verdicts.
type Priority string

const (
	PriorityMustHave   Priority = "must_have"
	PriorityGoodToHave Priority = "good_to_have"
)

// Valid reports whether p is a supported priority.
func (p Priority) Valid() bool {
	return p == PriorityMustHave || p == PriorityGoodToHave
}

// Label is the human readable priority name.
func (p Priority) Label() string {
	switch p {
	case PriorityMustHave:
		return "Must Have"
	case PriorityGoodToHave:
		return "Good to Have"
	}
	return string(p)
}

// UserProfile holds the personal inputs of a plan. Ages are whole years and
// rates are percentages (9 means 9%).
type UserProfile struct {
	CurrentAge                 int             `yaml:"current_age" json:"current_age"`
	RetirementAge              int             `yaml:"retirement_age" json:"retirement_age"`
	LifeExpectancy             int             `yaml:"life_expectancy" json:"life_expectancy"`
	CurrentMonthlyExpenses     decimal.Decimal `yaml:"current_monthly_expenses" json:"current_monthly_expenses"`
	ExpenseInflationCategoryID string          `yaml:"expense_inflation_category_id" json:"expense_inflation_category_id"`
	PostRetirementGrowthRate   decimal.Decimal `yaml:"post_retirement_growth_rate" json:"post_retirement_growth_rate"`
}

// YearsToRetirement is the number of years until the retirement age.
func (p UserProfile) YearsToRetirement() int { return p.RetirementAge - p.CurrentAge }

// YearsInRetirement is the number of years between retirement and life expectancy.
func (p UserProfile) YearsInRetirement() int { return p.LifeExpectancy - p.RetirementAge }

// RetirementYear maps the retirement age onto the calendar.
func (p UserProfile) RetirementYear(currentYear int) int {
	return currentYear + p.YearsToRetirement()
}

// LifeExpectancyYear maps the life expectancy onto the calendar.
func (p UserProfile) LifeExpectancyYear(currentYear int) int {
	return currentYear + (p.LifeExpectancy - p.CurrentAge)
}

// InflationCategory is a named inflation rate referenced by goals and expenses.
type InflationCategory struct {
	ID   string          `yaml:"id" json:"id"`
	Name string          `yaml:"name" json:"name"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// InvestmentCategory is a named pre-retirement return rate referenced by holdings.
type InvestmentCategory struct {
	ID                string          `yaml:"id" json:"id"`
	Name              string          `yaml:"name" json:"name"`
	PreRetirementXIRR decimal.Decimal `yaml:"pre_retirement_xirr" json:"pre_retirement_xirr"`
}

// Investment is money already held.
type Investment struct {
	ID           string          `yaml:"id" json:"id"`
	Name         string          `yaml:"name" json:"name"`
	CurrentValue decimal.Decimal `yaml:"current_value" json:"current_value"`
	CategoryID   string          `yaml:"category_id" json:"category_id"`
	ReturnRate   ReturnRate      `yaml:"return_rate,omitempty" json:"return_rate"`
	Enabled      bool            `yaml:"enabled" json:"enabled"`
}

// UnmarshalYAML decodes an investment, treating a missing enabled flag as true.
func (i *Investment) UnmarshalYAML(value *yaml.Node) error {
	type alias Investment
	aux := alias{Enabled: true}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*i = Investment(aux)
	return nil
}

// FutureLumpsumInvestment is a one-off amount planned for a future year.
type FutureLumpsumInvestment struct {
	ID            string          `yaml:"id" json:"id"`
	Name          string          `yaml:"name" json:"name"`
	PlannedAmount decimal.Decimal `yaml:"planned_amount" json:"planned_amount"`
	PlannedYear   int             `yaml:"planned_year" json:"planned_year"`
	CategoryID    string          `yaml:"category_id" json:"category_id"`
	Enabled       bool            `yaml:"enabled" json:"enabled"`
}

// UnmarshalYAML decodes a lump sum, treating a missing enabled flag as true.
func (l *FutureLumpsumInvestment) UnmarshalYAML(value *yaml.Node) error {
	type alias FutureLumpsumInvestment
	aux := alias{Enabled: true}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*l = FutureLumpsumInvestment(aux)
	return nil
}

// OngoingContribution is a recurring investment. A nil DurationYears means
// the contribution runs until retirement.
type OngoingContribution struct {
	ID               string          `yaml:"id" json:"id"`
	Name             string          `yaml:"name" json:"name"`
	Amount           decimal.Decimal `yaml:"amount" json:"amount"`
	Frequency        Frequency       `yaml:"frequency" json:"frequency"`
	CategoryID       string          `yaml:"category_id" json:"category_id"`
	DurationYears    *int            `yaml:"duration_years,omitempty" json:"duration_years,omitempty"`
	StepUpPercentage decimal.Decimal `yaml:"step_up_percentage" json:"step_up_percentage"`
	ReturnRate       ReturnRate      `yaml:"return_rate,omitempty" json:"return_rate"`
	Enabled          bool            `yaml:"enabled" json:"enabled"`
}

// UnmarshalYAML decodes a contribution, treating a missing enabled flag as true.
func (c *OngoingContribution) UnmarshalYAML(value *yaml.Node) error {
	type alias OngoingContribution
	aux := alias{Enabled: true}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*c = OngoingContribution(aux)
	return nil
}

// EndYear is the last calendar year in which the contribution is made.
func (c OngoingContribution) EndYear(currentYear, retirementYear int) int {
	if c.DurationYears != nil {
		return currentYear + *c.DurationYears
	}
	return retirementYear
}

// FinancialPlan is the complete input snapshot handed to the engine.
type FinancialPlan struct {
	Profile              UserProfile               `yaml:"profile" json:"profile"`
	InflationCategories  []InflationCategory       `yaml:"inflation_categories" json:"inflation_categories"`
	InvestmentCategories []InvestmentCategory      `yaml:"investment_categories" json:"investment_categories"`
	Investments          []Investment              `yaml:"investments" json:"investments"`
	FutureLumpsums       []FutureLumpsumInvestment `yaml:"future_lumpsums,omitempty" json:"future_lumpsums,omitempty"`
	Contributions        []OngoingContribution     `yaml:"contributions" json:"contributions"`
	Goals                []FinancialGoal           `yaml:"goals" json:"goals"`
}

// InflationRate looks up an inflation category's rate.
func (fp *FinancialPlan) InflationRate(id string) (decimal.Decimal, bool) {
	for _, c := range fp.InflationCategories {
		if c.ID == id {
			return c.Rate, true
		}
	}
	return decimal.Zero, false
}

// InvestmentRate looks up an investment category's pre-retirement rate.
func (fp *FinancialPlan) InvestmentRate(id string) (decimal.Decimal, bool) {
	for _, c := range fp.InvestmentCategories {
		if c.ID == id {
			return c.PreRetirementXIRR, true
		}
	}
	return decimal.Zero, false
}

// WithoutGoals returns a shallow copy of the plan with no goals.
func (fp *FinancialPlan) WithoutGoals() *FinancialPlan {
	cp := *fp
	cp.Goals = nil
	return &cp
}

// Clone returns a copy of the plan whose slices can be modified without
// affecting fp.
func (fp *FinancialPlan) Clone() *FinancialPlan {
	cp := *fp
	cp.InflationCategories = append([]InflationCategory(nil), fp.InflationCategories...)
	cp.InvestmentCategories = append([]InvestmentCategory(nil), fp.InvestmentCategories...)
	cp.Investments = append([]Investment(nil), fp.Investments...)
	cp.FutureLumpsums = append([]FutureLumpsumInvestment(nil), fp.FutureLumpsums...)
	cp.Contributions = append([]OngoingContribution(nil), fp.Contributions...)
	cp.Goals = append([]FinancialGoal(nil), fp.Goals...)
	return &cp
}

// SetEnabled flips the enabled flag of every item whose id matches and
// reports whether anything matched.
func (fp *FinancialPlan) SetEnabled(id string, enabled bool) bool {
	found := false
	for i := range fp.Investments {
		if fp.Investments[i].ID == id {
			fp.Investments[i].Enabled = enabled
			found = true
		}
	}
	for i := range fp.FutureLumpsums {
		if fp.FutureLumpsums[i].ID == id {
			fp.FutureLumpsums[i].Enabled = enabled
			found = true
		}
	}
	for i := range fp.Contributions {
		if fp.Contributions[i].ID == id {
			fp.Contributions[i].Enabled = enabled
			found = true
		}
	}
	for i := range fp.Goals {
		if fp.Goals[i].ID == id {
			fp.Goals[i].Enabled = enabled
			found = true
		}
	}
	return found
}
