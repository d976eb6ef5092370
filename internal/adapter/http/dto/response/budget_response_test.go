package response

import (
	"testing"
	"time"

	"piscinas_xpto/internal/domain/entities"
)

func TestFromBudget(t *testing.T) {
	now := time.Now().UTC()
	b := entities.Budget{
		ID:         "b-1",
		ClientData: map[string]string{"nome": "Ana"},
		Dimensions: entities.Dimensions{Comprimento: 8, Largura: 4, ProfMin: 1, ProfMax: 2},
		Multiplier: 1.05,
		Families: map[entities.FamilyKey]entities.Family{
			entities.FamilyAquecimento: {{Key: "bomba_calor_502", Name: "Mr. Comfort 130M", Price: 2000, Quantity: 1, Role: entities.RoleIncluido}},
		},
		FamilyDisplayMap: map[entities.FamilyKey]string{entities.FamilyAquecimento: "Aquecimento"},
		FamilyTotals:     map[entities.FamilyKey]float64{entities.FamilyAquecimento: 2100},
		SubtotalProducts: 2100,
		TransportCost:    150,
		TotalPrice:       2250,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	res := FromBudget(b)
	if res.ID != "b-1" || res.TotalPrice != 2250 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.ClientData["nome"] != "Ana" {
		t.Fatalf("unexpected client data: %+v", res.ClientData)
	}
	items, ok := res.Families["aquecimento"]
	if !ok || len(items) != 1 || items[0].Key != "bomba_calor_502" {
		t.Fatalf("unexpected families: %+v", res.Families)
	}
	if res.FamilyDisplayMap["aquecimento"] != "Aquecimento" {
		t.Fatalf("unexpected display map: %+v", res.FamilyDisplayMap)
	}
	if res.FamilyTotals["aquecimento"] != 2100 {
		t.Fatalf("unexpected totals: %+v", res.FamilyTotals)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}
