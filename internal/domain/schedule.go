package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// GoalSchedule is when a goal falls due: either OneTime or Recurring.
type GoalSchedule interface {
	isGoalSchedule()
}

// OneTime is a goal due in a single calendar year.
type OneTime struct {
	Year int
}

// Recurring is a goal template repeated from StartAge to EndAge inclusive.
// Either age missing means the goal produces no occurrences.
type Recurring struct {
	StartAge        *int
	EndAge          *int
	FrequencyMonths int
}

func (OneTime) isGoalSchedule()   {}
func (Recurring) isGoalSchedule() {}

// AdvanceYears is the whole number of years between occurrences. Partial
// years round up, so 18 months advances 2 years. The result is at least 1.
func (r Recurring) AdvanceYears() int {
	years := r.FrequencyMonths / 12
	if r.FrequencyMonths%12 != 0 {
		years++
	}
	if years < 1 {
		return 1
	}
	return years
}

// FinancialGoal is a future expense expressed in today's money.
type FinancialGoal struct {
	ID                  string
	Name                string
	TargetAmount        decimal.Decimal
	InflationCategoryID string
	Priority            Priority
	Enabled             bool
	Schedule            GoalSchedule
}

// IsRecurring reports whether the goal is a recurring template.
func (g FinancialGoal) IsRecurring() bool {
	_, ok := g.Schedule.(Recurring)
	return ok
}

// recurrenceDocument is the serialized form of a Recurring schedule.
type recurrenceDocument struct {
	FrequencyMonths int  `yaml:"frequency_months" json:"frequency_months"`
	StartAge        *int `yaml:"start_age,omitempty" json:"start_age,omitempty"`
	EndAge          *int `yaml:"end_age,omitempty" json:"end_age,omitempty"`
}

// goalDocument is the serialized form of a FinancialGoal. A present
// recurring block selects the Recurring schedule and target_year is ignored.
type goalDocument struct {
	ID                  string              `yaml:"id" json:"id"`
	Name                string              `yaml:"name" json:"name"`
	TargetAmount        decimal.Decimal     `yaml:"target_amount" json:"target_amount"`
	TargetYear          int                 `yaml:"target_year,omitempty" json:"target_year,omitempty"`
	InflationCategoryID string              `yaml:"inflation_category_id" json:"inflation_category_id"`
	Priority            Priority            `yaml:"priority" json:"priority"`
	Enabled             *bool               `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	Recurring           *recurrenceDocument `yaml:"recurring,omitempty" json:"recurring,omitempty"`
}

func (g FinancialGoal) document() goalDocument {
	enabled := g.Enabled
	doc := goalDocument{
		ID:                  g.ID,
		Name:                g.Name,
		TargetAmount:        g.TargetAmount,
		InflationCategoryID: g.InflationCategoryID,
		Priority:            g.Priority,
		Enabled:             &enabled,
	}
	switch s := g.Schedule.(type) {
	case OneTime:
		doc.TargetYear = s.Year
	case Recurring:
		doc.Recurring = &recurrenceDocument{FrequencyMonths: s.FrequencyMonths, StartAge: s.StartAge, EndAge: s.EndAge}
	}
	return doc
}

func (g *FinancialGoal) fromDocument(doc goalDocument) {
	g.ID = doc.ID
	g.Name = doc.Name
	g.TargetAmount = doc.TargetAmount
	g.InflationCategoryID = doc.InflationCategoryID
	g.Priority = doc.Priority
	g.Enabled = doc.Enabled == nil || *doc.Enabled
	if doc.Recurring != nil {
		g.Schedule = Recurring{
			StartAge:        doc.Recurring.StartAge,
			EndAge:          doc.Recurring.EndAge,
			FrequencyMonths: doc.Recurring.FrequencyMonths,
		}
		return
	}
	g.Schedule = OneTime{Year: doc.TargetYear}
}

// UnmarshalYAML implements custom YAML unmarshaling for FinancialGoal
func (g *FinancialGoal) UnmarshalYAML(value *yaml.Node) error {
	var doc goalDocument
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	g.fromDocument(doc)
	return nil
}

// MarshalYAML implements custom YAML marshaling for FinancialGoal
func (g FinancialGoal) MarshalYAML() (interface{}, error) {
	return g.document(), nil
}

// MarshalJSON implements custom JSON marshaling for FinancialGoal
func (g FinancialGoal) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.document())
}

// UnmarshalJSON implements custom JSON unmarshaling for FinancialGoal
func (g *FinancialGoal) UnmarshalJSON(data []byte) error {
	var doc goalDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	g.fromDocument(doc)
	return nil
}

// GoalOccurrence is one realized instance of a goal in a concrete year.
// Sequence counts occurrences of the same goal from 1.
type GoalOccurrence struct {
	GoalID              string          `json:"goal_id"`
	Name                string          `json:"name"`
	TargetAmount        decimal.Decimal `json:"target_amount"`
	InflationCategoryID string          `json:"inflation_category_id"`
	Priority            Priority        `json:"priority"`
	Year                int             `json:"year"`
	Age                 int             `json:"age"`
	Sequence            int             `json:"sequence"`
	Recurring           bool            `json:"recurring"`
}
