package pricing

import (
	"testing"

	"piscinas_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

var refDims = entities.Dimensions{Comprimento: 8, Largura: 4, ProfMin: 1.0, ProfMax: 1.5}

func TestComplexityMultiplier_BaselineIsMarketOnly(t *testing.T) {
	final, breakdown := ComplexityMultiplier(entities.Answers{}, refDims)

	assert.InDelta(t, 1.05, final, 1e-9)
	assert.Equal(t, 1.0, breakdown.Geometrico)
	assert.Equal(t, 1.0, breakdown.Tecnologico)
	assert.Equal(t, 1.05, breakdown.Mercado)
	assert.Equal(t, 1.05, breakdown.Final)
}

func TestComplexityMultiplier_Factors(t *testing.T) {
	cases := []struct {
		name    string
		answers entities.Answers
		dims    entities.Dimensions
		geo     float64
		tech    float64
	}{
		{"special shape", entities.Answers{"forma": "especial"}, refDims, 1.15, 1.0},
		{"infinity edge", entities.Answers{"tipo_piscina": "transbordo"}, refDims, 1.20, 1.0},
		{"reflecting pool", entities.Answers{"tipo_piscina": "espelho_dagua"}, refDims, 1.08, 1.0},
		{"tiny pool", entities.Answers{}, entities.Dimensions{Comprimento: 4, Largura: 3, ProfMin: 1, ProfMax: 1.4}, 1.08, 1.0},
		{"huge pool", entities.Answers{}, entities.Dimensions{Comprimento: 14, Largura: 5, ProfMin: 1, ProfMax: 1.6}, 1.05, 1.0},
		{"domotics", entities.Answers{"domotica": "true"}, refDims, 1.0, 1.04},
		{"ceramic", entities.Answers{"revestimento": "ceramica"}, refDims, 1.0, 1.05},
		{"three phase", entities.Answers{"luz": "trifasica"}, refDims, 1.0, 1.03},
		{"excavation", entities.Answers{"escavacao": "true"}, refDims, 1.0, 1.02},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, breakdown := ComplexityMultiplier(tc.answers, tc.dims)
			assert.InDelta(t, tc.geo, breakdown.Geometrico, 0.001)
			assert.InDelta(t, tc.tech, breakdown.Tecnologico, 0.001)
		})
	}
}

func TestComplexityMultiplier_MonotonicAndCapped(t *testing.T) {
	flags := []entities.Answers{
		{},
		{"forma": "especial"},
		{"forma": "especial", "revestimento": "ceramica"},
		{"forma": "especial", "revestimento": "ceramica", "domotica": "true"},
		{"forma": "especial", "revestimento": "ceramica", "domotica": "true", "luz": "trifasica"},
		{"forma": "especial", "revestimento": "ceramica", "domotica": "true", "luz": "trifasica", "tipo_piscina": "transbordo"},
	}

	prev := 0.0
	for i, answers := range flags {
		final, _ := ComplexityMultiplier(answers, refDims)
		assert.GreaterOrEqual(t, final, prev, "step %d must not decrease", i)
		assert.LessOrEqual(t, final, 1.25)
		prev = final
	}

	// The fully-loaded configuration hits the ceiling.
	final, breakdown := ComplexityMultiplier(flags[len(flags)-1], refDims)
	assert.Equal(t, 1.25, final)
	assert.Equal(t, 1.25, breakdown.Final)
}

func TestComplexityMultiplier_UnknownEnumFallsBack(t *testing.T) {
	final, _ := ComplexityMultiplier(entities.Answers{"tipo_piscina": "olimpica", "forma": "??"}, refDims)
	assert.InDelta(t, 1.05, final, 1e-9)
}
