package entities

import "strings"

// AttributeValue is one entry of a product's typed attribute bag.
// Exactly one of the value fields is meaningful, mirroring the catalog
// schema (numeric with unit, boolean, or free text).
type AttributeValue struct {
	Numeric *float64 `json:"numeric,omitempty"`
	Unit    string   `json:"unit,omitempty"`
	Flag    *bool    `json:"flag,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// SelectionRule tags a product for condition-based matching
// (e.g. location=exterior). A product matches a condition set when any of
// its rules matches any provided condition.
type SelectionRule struct {
	ConditionType  string `json:"condition_type"`
	ConditionValue string `json:"condition_value"`
}

// Product is a read-only catalog record. The engine never mutates it.
type Product struct {
	ID           int                       `json:"id"`
	Code         string                    `json:"code"`
	Name         string                    `json:"name"`
	Brand        string                    `json:"brand"`
	CategoryID   int                       `json:"category_id"`
	CategoryName string                    `json:"category_name"`
	FamilyName   string                    `json:"family_name"`
	BasePrice    float64                   `json:"base_price"`
	CostPrice    float64                   `json:"cost_price"`
	Unit         string                    `json:"unit"`
	IsActive     bool                      `json:"is_active"`
	Attributes   map[string]AttributeValue `json:"attributes,omitempty"`
	Rules        []SelectionRule           `json:"-"`
}

// IsZero reports whether p is the "not found" zero record.
func (p Product) IsZero() bool {
	return p.ID == 0 && p.Name == ""
}

// NumericAttribute returns a numeric attribute value, false when absent or
// not numeric.
func (p Product) NumericAttribute(name string) (float64, bool) {
	av, ok := p.Attributes[name]
	if !ok || av.Numeric == nil {
		return 0, false
	}
	return *av.Numeric, true
}

func (p Product) TextAttribute(name string) string {
	return p.Attributes[name].Text
}

// Capacidade is the rated capacity in m³/h carried by pumps and filters.
func (p Product) Capacidade() float64 {
	v, _ := p.NumericAttribute("Capacidade")
	return v
}

// MatchesConditions implements the OR-across-conditions rule matching used
// by the catalog facade's condition lookup.
func (p Product) MatchesConditions(conditions map[string]string) bool {
	for _, rule := range p.Rules {
		if v, ok := conditions[rule.ConditionType]; ok && strings.EqualFold(v, rule.ConditionValue) {
			return true
		}
	}
	return false
}
