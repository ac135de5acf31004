package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ReturnRate selects the pre-retirement rate of a holding. The zero value
// uses the holding's category rate; OverrideRate pins an explicit percentage.
type ReturnRate struct {
	override *decimal.Decimal
}

// CategoryRate returns a ReturnRate that defers to the category.
func CategoryRate() ReturnRate { return ReturnRate{} }

// OverrideRate returns a ReturnRate fixed at percent.
func OverrideRate(percent decimal.Decimal) ReturnRate {
	return ReturnRate{override: &percent}
}

// IsOverride reports whether an explicit rate is set.
func (r ReturnRate) IsOverride() bool { return r.override != nil }

// IsZero reports whether the category rate is used. yaml.v3 consults it for omitempty.
func (r ReturnRate) IsZero() bool { return r.override == nil }

// Resolve returns the override when set, otherwise categoryRate.
func (r ReturnRate) Resolve(categoryRate decimal.Decimal) decimal.Decimal {
	if r.override != nil {
		return *r.override
	}
	return categoryRate
}

func (r ReturnRate) String() string {
	if r.override == nil {
		return "category"
	}
	return r.override.String() + "%"
}

// UnmarshalYAML accepts a number, or an empty value / "category" for the
// category default.
func (r *ReturnRate) UnmarshalYAML(value *yaml.Node) error {
	v := strings.TrimSpace(value.Value)
	if value.Tag == "!!null" || v == "" || strings.EqualFold(v, "category") {
		*r = CategoryRate()
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return fmt.Errorf("invalid return rate %q: %w", v, err)
	}
	*r = OverrideRate(d)
	return nil
}

// MarshalYAML writes the override, or "category".
func (r ReturnRate) MarshalYAML() (interface{}, error) {
	if r.override == nil {
		return "category", nil
	}
	return r.override.String(), nil
}

// MarshalJSON writes the override as a decimal string, or null.
func (r ReturnRate) MarshalJSON() ([]byte, error) {
	if r.override == nil {
		return []byte("null"), nil
	}
	return json.Marshal(r.override)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (r *ReturnRate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = CategoryRate()
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("invalid return rate: %w", err)
	}
	*r = OverrideRate(d)
	return nil
}
