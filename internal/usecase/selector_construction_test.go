package usecase

import (
	"testing"

	"piscinas_xpto/internal/domain/entities"
	"piscinas_xpto/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referencePool() (entities.Dimensions, entities.Metrics) {
	dims := entities.Dimensions{Comprimento: 8, Largura: 4, ProfMin: 1.0, ProfMax: 2.0}
	return dims, pricing.ComputeMetrics(dims)
}

func itemByKey(t *testing.T, family entities.Family, key string) entities.LineItem {
	t.Helper()
	item, ok := family.Get(key)
	require.True(t, ok, "expected item %q in family", key)
	return item
}

func TestSelectConstruction_ReferencePool(t *testing.T) {
	dims, metrics := referencePool()
	answers := entities.Answers{"localidade": "Viseu"}

	family := selectConstruction(answers, dims, metrics)

	// m2Paredes=36 → ceil(360)=360 blocks at Viseu sale price 1.50.
	bloco := itemByKey(t, family, "bloco_cofragem")
	assert.Equal(t, 360.0, bloco.Quantity)
	assert.Equal(t, 1.50, bloco.Price)

	// m3Massa=11.3 → 113 cement bags, 11.3 m³ of mix.
	assert.InDelta(t, 113.0, itemByKey(t, family, "cimento").Quantity, 1e-9)
	assert.Equal(t, 11.3, itemByKey(t, family, "mistura").Quantity)

	assert.Equal(t, 36.0, itemByKey(t, family, "malha_eletrosoldada").Quantity)

	// heliaco: vertical (24/0.2)*2/6=40 + horizontal (2/0.2)*24*2/6=80 → 120.
	assert.Equal(t, 120.0, itemByKey(t, family, "heliaco").Quantity)

	arame := itemByKey(t, family, "arame_queimado")
	assert.Equal(t, 2.0, arame.Quantity)
	assert.Equal(t, 2.50, arame.Price)

	assert.Equal(t, 1.0, itemByKey(t, family, "meia_areia").Quantity)
	assert.InDelta(t, 21.6, itemByKey(t, family, "reboco_exterior").Quantity, 1e-9)

	// tela pitonada: perimetro 24 × prof média 1.5 = 36 m² at the fixed price.
	tela := itemByKey(t, family, "tela_pitonada")
	assert.Equal(t, 36.0, tela.Quantity)
	assert.Equal(t, 1.50, tela.Price)

	// brita: ceil(36.96 × 0.05) = 2.
	assert.Equal(t, 2.0, itemByKey(t, family, "brita_n2").Quantity)

	// No stairs, no beach zone.
	_, hasBloco := family.Get("bloco_normal")
	assert.False(t, hasBloco)
	_, hasVigas := family.Get("vigas")
	assert.False(t, hasVigas)
}

func TestSelectConstruction_StairsAndBeachZone(t *testing.T) {
	dims, metrics := referencePool()
	answers := entities.Answers{
		"localidade":         "Braga",
		"escadas":            "sim",
		"escadas_largura":    1.2,
		"zona_praia":         "sim",
		"zona_praia_largura": 2.0,
	}

	family := selectConstruction(answers, dims, metrics)

	// floor((1.2/0.2) × ((1.0-0.3)/0.2)): the divisions land just under
	// 6 × 3.5 in float64, so the floor lands on 20 rather than 21.
	assert.Equal(t, 20.0, itemByKey(t, family, "bloco_normal").Quantity)

	// Beach zone runs along the pool width (4 m): ((4/0.52)+1) × 2.
	vigas := itemByKey(t, family, "vigas")
	assert.InDelta(t, ((4/0.52)+1)*2, vigas.Quantity, 1e-9)

	abobadilhas := itemByKey(t, family, "abobadilhas")
	assert.InDelta(t, (2.0/0.40)*vigas.Quantity, abobadilhas.Quantity, 1e-9)
}

func TestSelectSlab(t *testing.T) {
	t.Run("no slab requested", func(t *testing.T) {
		family := selectSlab(entities.Answers{"havera_laje": "nao"})
		assert.Empty(t, family)
	})

	t.Run("slab without finish", func(t *testing.T) {
		family := selectSlab(entities.Answers{
			"havera_laje":    "sim",
			"laje_m2":        20.0,
			"laje_espessura": 0.10,
		})
		require.Len(t, family, 1)

		pavimento := family[0]
		assert.Equal(t, "pavimento_terreo", pavimento.Key)
		// (70×2 + 10×20) × 100/60 = 566.67.
		assert.Equal(t, 566.67, pavimento.Price)
		assert.Equal(t, 1.0, pavimento.Quantity)
		assert.Contains(t, pavimento.Name, "10cm de espessura")
	})

	t.Run("slab with stone finish", func(t *testing.T) {
		family := selectSlab(entities.Answers{
			"havera_laje":           "sim",
			"laje_m2":               20.0,
			"laje_espessura":        0.10,
			"revestimento_laje":     "sim",
			"material_revestimento": "granito_vila_real",
		})
		require.Len(t, family, 2)

		finish := family[1]
		assert.Equal(t, "revestimento_laje", finish.Key)
		// (15 + 13 + 35) × 20 × 100/60 = 2100.
		assert.Equal(t, 2100.0, finish.Price)
		assert.Equal(t, "Revestimento da laje em pedra natural - Granito Vila Real", finish.Name)
	})

	t.Run("ceramic material names the finish accordingly", func(t *testing.T) {
		family := selectSlab(entities.Answers{
			"havera_laje":           "sim",
			"laje_m2":               10.0,
			"laje_espessura":        0.15,
			"revestimento_laje":     "sim",
			"material_revestimento": "pedra_hijau",
		})
		require.Len(t, family, 2)
		assert.Equal(t, "Revestimento da laje em cerâmica - Pedra Hijau", family[1].Name)
	})

	t.Run("unknown material skips the finish row", func(t *testing.T) {
		family := selectSlab(entities.Answers{
			"havera_laje":           "sim",
			"laje_m2":               10.0,
			"laje_espessura":        0.15,
			"revestimento_laje":     "sim",
			"material_revestimento": "onix",
		})
		require.Len(t, family, 1)
	})
}
