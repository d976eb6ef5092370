package usecase

import (
	"testing"

	"piscinas_xpto/internal/domain/entities"
)

func baseFamily() entities.Family {
	return entities.Family{
		{Key: "tela_armada", Name: "Tela 3D Unicolor", Price: 780, Quantity: 2, Role: entities.RoleIncluido,
			Alternatives: []entities.AlternativeRef{
				{ID: 403, Name: "Tela Lisa", Price: 640},
			}},
		{Key: "perfil", Name: "Perfil Horizontal", Price: 6.40, Quantity: 13, Role: entities.RoleIncluido},
		{Key: "chapa_colaminada", Name: "Chapa Colaminada", Price: 14.20, Quantity: 13, Role: entities.RoleAlternativo, AlternativeTo: "perfil"},
	}
}

func TestSwapPreservingPosition_NoDirective(t *testing.T) {
	family := baseFamily()
	out := SwapPreservingPosition(family, "", "")
	if len(out) != len(family) {
		t.Fatalf("expected unchanged family, got %d items", len(out))
	}
}

func TestSwapPreservingPosition_UnknownPrevious(t *testing.T) {
	family := baseFamily()
	out := SwapPreservingPosition(family, "chapa_colaminada", "missing")
	if len(out) != len(family) || out[1].Key != "perfil" {
		t.Fatalf("expected unchanged family, got %+v", out)
	}
}

func TestSwapPreservingPosition_ReusesExistingSelected(t *testing.T) {
	family := baseFamily()
	out := SwapPreservingPosition(family, "chapa_colaminada", "perfil")

	if len(out) != 2 {
		t.Fatalf("expected 2 items after swap, got %d", len(out))
	}
	if out[1].Key != "chapa_colaminada" {
		t.Fatalf("expected chapa_colaminada at perfil position, got %s", out[1].Key)
	}
	if out[1].Quantity != 13 {
		t.Fatalf("expected preserved quantity 13, got %g", out[1].Quantity)
	}
	if out[1].Price != 14.20 {
		t.Fatalf("expected selected item price kept, got %g", out[1].Price)
	}
}

func TestSwapPreservingPosition_SynthesizesFromAlternatives(t *testing.T) {
	family := baseFamily()
	out := SwapPreservingPosition(family, "tela_armada_403", "tela_armada")

	if out[0].Key != "tela_armada_403" {
		t.Fatalf("expected synthesized item in place, got %s", out[0].Key)
	}
	if out[0].Name != "Tela Lisa" || out[0].Price != 640 {
		t.Fatalf("expected alternative product data, got %+v", out[0])
	}
	if out[0].Quantity != 2 {
		t.Fatalf("expected preserved quantity 2, got %g", out[0].Quantity)
	}
	if out[0].Role != entities.RoleAlternativo || out[0].AlternativeTo != "tela_armada" {
		t.Fatalf("expected alternativo role linked to previous, got %+v", out[0])
	}
}

func TestSwapPreservingPosition_ClonesPreviousAsFallback(t *testing.T) {
	family := baseFamily()
	out := SwapPreservingPosition(family, "algo_desconhecido", "perfil")

	if out[1].Key != "algo_desconhecido" {
		t.Fatalf("expected fallback clone in place, got %s", out[1].Key)
	}
	if out[1].Name != "Perfil Horizontal" || out[1].Quantity != 13 {
		t.Fatalf("expected clone of previous item, got %+v", out[1])
	}
	if out[1].Role != entities.RoleAlternativo {
		t.Fatalf("expected alternativo role, got %s", out[1].Role)
	}
}

func TestSwapPreservingPosition_DoesNotMutateInput(t *testing.T) {
	family := baseFamily()
	_ = SwapPreservingPosition(family, "chapa_colaminada", "perfil")

	if family[1].Key != "perfil" || family[2].Key != "chapa_colaminada" {
		t.Fatalf("input family mutated: %+v", family)
	}
}

func TestSwapPreservingPosition_SelectedBeforePrevious(t *testing.T) {
	family := entities.Family{
		{Key: "a", Quantity: 1, Role: entities.RoleAlternativo},
		{Key: "b", Quantity: 5, Role: entities.RoleIncluido},
		{Key: "c", Quantity: 1, Role: entities.RoleIncluido},
	}
	out := SwapPreservingPosition(family, "a", "b")

	if len(out) != 2 {
		t.Fatalf("expected duplicate removal, got %d items", len(out))
	}
	if out[0].Key != "a" || out[0].Quantity != 5 {
		t.Fatalf("expected a at b's position with quantity 5, got %+v", out[0])
	}
	if out[1].Key != "c" {
		t.Fatalf("expected c to keep its slot, got %s", out[1].Key)
	}
}

func TestSwapPreservingPosition_RoundTrip(t *testing.T) {
	family := baseFamily()

	forward := SwapPreservingPosition(family, "tela_armada_403", "tela_armada")
	back := SwapPreservingPosition(forward, "tela_armada", "tela_armada_403")

	// Position, key and quantity survive the round trip. The role does not:
	// the forward swap consumed the original row, so the reverse swap can
	// only clone the swapped-in item and every clone is an alternative.
	if back[0].Key != "tela_armada" {
		t.Fatalf("expected tela_armada restored in place, got %s", back[0].Key)
	}
	if back[0].Quantity != 2 {
		t.Fatalf("expected quantity 2 preserved, got %g", back[0].Quantity)
	}
	if back[0].Role != entities.RoleAlternativo {
		t.Fatalf("expected alternativo after round trip, got %s", back[0].Role)
	}
	if back[0].AlternativeTo != "tela_armada_403" {
		t.Fatalf("unexpected alternative_to: %s", back[0].AlternativeTo)
	}
	if len(back) != len(family) {
		t.Fatalf("expected %d items, got %d", len(family), len(back))
	}
}
