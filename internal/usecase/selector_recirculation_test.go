package usecase

import (
	"context"
	"testing"

	"piscinas_xpto/internal/adapter/persistence/repository"
	"piscinas_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectRecirculation_SkimmerLinerPool(t *testing.T) {
	uc := NewBudgetUseCase(repository.NewStaticCatalogRepository(), nil)
	dims := entities.Dimensions{Comprimento: 8, Largura: 4, ProfMin: 1, ProfMax: 2}

	family, err := uc.selectRecirculation(context.Background(), entities.Answers{}, dims)
	require.NoError(t, err)

	// 4 m wide: 2 skimmers, 3 wall inlets.
	skimmer, ok := familyItemWithPrefix(family, "skimmer_")
	require.True(t, ok)
	assert.Equal(t, 2.0, skimmer.Quantity)
	assert.Contains(t, skimmer.Name, "Liner")

	boca, ok := familyItemWithPrefix(family, "boca_impulsao_")
	require.True(t, ok)
	assert.Equal(t, 3.0, boca.Quantity)
	assert.Contains(t, boca.Name, "parede")

	tomada, ok := familyItemWithPrefix(family, "tomada_aspiracao_")
	require.True(t, ok)
	assert.Equal(t, 1.0, tomada.Quantity)

	// 1 suction sleeve + 3 inlet sleeves.
	passamuros, ok := familyItemWithPrefix(family, "passamuros_")
	require.True(t, ok)
	assert.Equal(t, 4.0, passamuros.Quantity)

	regulador, ok := familyItemWithPrefix(family, "regulador_nivel_")
	require.True(t, ok)

	packBoca, ok := familyItemWithPrefix(family, "regulador_pack_boca_")
	require.True(t, ok)
	assert.True(t, packBoca.IsPackItem)
	assert.Equal(t, regulador.Key, packBoca.PackParent)
	assert.Equal(t, "indented", packBoca.PackStyle)
	assert.Contains(t, packBoca.Name, "[Pack]")

	packPassamuro, ok := familyItemWithPrefix(family, "regulador_pack_passamuro_")
	require.True(t, ok)
	assert.Equal(t, regulador.Key, packPassamuro.PackParent)

	ralo, ok := familyItemWithPrefix(family, "ralo_fundo_")
	require.True(t, ok)
	assert.Contains(t, ralo.Name, "Liner")

	// 8 m long, 4 m wide: 3 × 100 mm cold-white projectors.
	luz, ok := familyItemWithPrefix(family, "iluminacao_")
	require.True(t, ok)
	assert.Equal(t, 3.0, luz.Quantity)
	assert.Contains(t, luz.Name, "Branca de 100mm")
}

func TestSelectRecirculation_MirrorPoolConcrete(t *testing.T) {
	uc := NewBudgetUseCase(repository.NewStaticCatalogRepository(), nil)
	dims := entities.Dimensions{Comprimento: 12, Largura: 6, ProfMin: 1.2, ProfMax: 1.8}
	answers := entities.Answers{
		"tipo_piscina": "espelho_dagua",
		"revestimento": "ceramica",
		"tipo_luzes":   "rgb",
	}

	family, err := uc.selectRecirculation(context.Background(), answers, dims)
	require.NoError(t, err)

	// Mirror pools skim over the edge: no skimmers, no level regulator.
	_, hasSkimmer := familyItemWithPrefix(family, "skimmer_")
	assert.False(t, hasSkimmer)
	_, hasRegulador := familyItemWithPrefix(family, "regulador_nivel_")
	assert.False(t, hasRegulador)

	// Floor inlets, Betão variant, and only the suction sleeve.
	boca, ok := familyItemWithPrefix(family, "boca_impulsao_")
	require.True(t, ok)
	assert.Contains(t, boca.Name, "fundo")
	assert.Contains(t, boca.Name, "Betão")
	assert.Equal(t, 4.0, boca.Quantity)

	passamuros, ok := familyItemWithPrefix(family, "passamuros_")
	require.True(t, ok)
	assert.Equal(t, 1.0, passamuros.Quantity)

	// 6 m wide: 170 mm projectors; 12 m long: 5 of them; RGB preference.
	luz, ok := familyItemWithPrefix(family, "iluminacao_")
	require.True(t, ok)
	assert.Equal(t, 5.0, luz.Quantity)
	assert.Contains(t, luz.Name, "RGB de 170mm")
}

func TestSelectRecirculation_LightCountCapsAtSeven(t *testing.T) {
	uc := NewBudgetUseCase(repository.NewStaticCatalogRepository(), nil)
	dims := entities.Dimensions{Comprimento: 25, Largura: 5, ProfMin: 1.2, ProfMax: 1.6}

	family, err := uc.selectRecirculation(context.Background(), entities.Answers{}, dims)
	require.NoError(t, err)

	luz, ok := familyItemWithPrefix(family, "iluminacao_")
	require.True(t, ok)
	assert.Equal(t, 7.0, luz.Quantity)
}
