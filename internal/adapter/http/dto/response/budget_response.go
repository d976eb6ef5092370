package response

import (
	"time"

	"piscinas_xpto/internal/domain/entities"
)

// BudgetResponse is the wire form of a priced quote. Families are keyed by
// their internal names; the display map carries the labels to render.
type BudgetResponse struct {
	ID                  string                       `json:"id"`
	ClientData          map[string]string            `json:"client_data,omitempty"`
	Dimensions          entities.Dimensions          `json:"dimensions"`
	Metrics             entities.Metrics             `json:"metrics"`
	Multiplier          float64                      `json:"multiplier"`
	MultiplierBreakdown entities.MultiplierBreakdown `json:"multiplier_breakdown"`
	Transport           entities.TransportBreakdown  `json:"transport_costs"`
	Families            map[string]entities.Family   `json:"families"`
	FamilyDisplayMap    map[string]string            `json:"family_display_map"`
	FamilyTotals        map[string]float64           `json:"family_totals"`
	SubtotalProducts    float64                      `json:"subtotal_products"`
	TransportCost       float64                      `json:"transport_cost"`
	TotalPrice          float64                      `json:"total_price"`
	CreatedAt           time.Time                    `json:"created_at"`
	UpdatedAt           time.Time                    `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	families := make(map[string]entities.Family, len(b.Families))
	for k, f := range b.Families {
		families[string(k)] = f
	}
	display := make(map[string]string, len(b.FamilyDisplayMap))
	for k, name := range b.FamilyDisplayMap {
		display[string(k)] = name
	}
	totals := make(map[string]float64, len(b.FamilyTotals))
	for k, total := range b.FamilyTotals {
		totals[string(k)] = total
	}
	return BudgetResponse{
		ID:                  b.ID,
		ClientData:          b.ClientData,
		Dimensions:          b.Dimensions,
		Metrics:             b.Metrics,
		Multiplier:          b.Multiplier,
		MultiplierBreakdown: b.MultiplierBreakdown,
		Transport:           b.Transport,
		Families:            families,
		FamilyDisplayMap:    display,
		FamilyTotals:        totals,
		SubtotalProducts:    b.SubtotalProducts,
		TransportCost:       b.TransportCost,
		TotalPrice:          b.TotalPrice,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

// SwapResponse echoes the family key and returns the reordered items.
type SwapResponse struct {
	Family string          `json:"family"`
	Items  entities.Family `json:"items"`
}
