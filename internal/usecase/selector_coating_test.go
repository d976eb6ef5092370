package usecase

import (
	"context"
	"testing"

	"piscinas_xpto/internal/adapter/persistence/repository"
	"piscinas_xpto/internal/domain/entities"
	"piscinas_xpto/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCoating_LinerStandardShape(t *testing.T) {
	uc := NewBudgetUseCase(repository.NewStaticCatalogRepository(), nil)
	dims, metrics := referencePool()

	family, err := uc.selectCoating(context.Background(), entities.Answers{}, dims, metrics)
	require.NoError(t, err)

	// (8+4)×2 + (8/1.6)×2 = 34 m → 2 rolls of 25 m.
	tela := itemByKey(t, family, "tela_armada")
	assert.Equal(t, 2.0, tela.Quantity)
	assert.Contains(t, tela.Name, "3D Unicolor")
	require.Len(t, tela.Alternatives, 2)

	// Bordadura 26 m → 13 profiles of 2 m, horizontal on a new build.
	perfil := itemByKey(t, family, "perfil")
	assert.Equal(t, 13.0, perfil.Quantity)
	assert.Contains(t, perfil.Name, "Horizontal")
	require.Len(t, perfil.Alternatives, 1)

	chapa := itemByKey(t, family, "chapa_colaminada")
	assert.Equal(t, entities.RoleAlternativo, chapa.Role)
	assert.Equal(t, "perfil", chapa.AlternativeTo)
	assert.Equal(t, 13.0, chapa.Quantity)
}

func TestSelectCoating_SlattedCoverWidensTheCut(t *testing.T) {
	uc := NewBudgetUseCase(repository.NewStaticCatalogRepository(), nil)
	dims, metrics := referencePool()
	answers := entities.Answers{
		"cobertura":              "laminas",
		"tipo_cobertura_laminas": "submersa_praia",
	}

	family, err := uc.selectCoating(context.Background(), answers, dims, metrics)
	require.NoError(t, err)

	// (8+4)×2 + 4 + 4 + (8/1.6)×4 = 52 m → 3 rolls.
	tela := itemByKey(t, family, "tela_armada")
	assert.Equal(t, 3.0, tela.Quantity)
}

func TestSelectCoating_RenovationUsesVerticalProfile(t *testing.T) {
	uc := NewBudgetUseCase(repository.NewStaticCatalogRepository(), nil)
	dims, metrics := referencePool()

	family, err := uc.selectCoating(context.Background(),
		entities.Answers{"tipo_construcao": "renovacao"}, dims, metrics)
	require.NoError(t, err)

	perfil := itemByKey(t, family, "perfil")
	assert.Contains(t, perfil.Name, "Vertical")
}

func TestSelectCoating_SpecialShapeQuotesSingleRoll(t *testing.T) {
	uc := NewBudgetUseCase(repository.NewStaticCatalogRepository(), nil)
	dims, metrics := referencePool()

	family, err := uc.selectCoating(context.Background(),
		entities.Answers{"forma": "especial"}, dims, metrics)
	require.NoError(t, err)

	require.Len(t, family, 1)
	tela := family[0]
	assert.Equal(t, "tela_armada", tela.Key)
	assert.Equal(t, 1.0, tela.Quantity)
	assert.Empty(t, tela.Alternatives)
}

func TestSelectCoating_QuantityOverrides(t *testing.T) {
	uc := NewBudgetUseCase(repository.NewStaticCatalogRepository(), nil)
	dims, metrics := referencePool()
	answers := entities.Answers{
		"quantidades": map[string]any{"tela_armada": 5.0, "perfil": "20"},
	}

	family, err := uc.selectCoating(context.Background(), answers, dims, metrics)
	require.NoError(t, err)

	assert.Equal(t, 5.0, itemByKey(t, family, "tela_armada").Quantity)
	assert.Equal(t, 20.0, itemByKey(t, family, "perfil").Quantity)
	// Reasoning still reports the computed figure.
	assert.Contains(t, itemByKey(t, family, "perfil").Reasoning, "13")
}

func TestSelectCoating_Ceramic(t *testing.T) {
	uc := NewBudgetUseCase(repository.NewStaticCatalogRepository(), nil)
	dims := entities.Dimensions{Comprimento: 8, Largura: 4, ProfMin: 1, ProfMax: 2}
	metrics := pricing.ComputeMetrics(dims)

	family, err := uc.selectCoating(context.Background(),
		entities.Answers{"revestimento": "ceramica"}, dims, metrics)
	require.NoError(t, err)
	require.Len(t, family, 2)

	// 36 m² walls + 36.96 m² floor.
	imper := itemByKey(t, family, "impermeabilizacao_ceramico")
	assert.Equal(t, 72.96, imper.Quantity)
	assert.True(t, imper.EditablePrice)
	assert.True(t, imper.EditableCost)
	assert.False(t, imper.EditableName)

	custom := itemByKey(t, family, "item_ceramico_personalizado")
	assert.Equal(t, 72.96, custom.Quantity)
	assert.True(t, custom.EditableName)
	assert.True(t, custom.EditablePrice)
}
