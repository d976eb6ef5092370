package pricing

import (
	"testing"

	"piscinas_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMetrics_ReferencePool(t *testing.T) {
	// 8x4 pool, 1.0-2.0 m deep.
	m := ComputeMetrics(entities.Dimensions{Comprimento: 8, Largura: 4, ProfMin: 1.0, ProfMax: 2.0})

	assert.Equal(t, 1.5, m.ProfMedia)
	assert.Equal(t, 48.0, m.Volume)
	assert.Equal(t, 12.0, m.M3H)
	assert.Equal(t, 36.0, m.M2Paredes) // (16+8) × 1.5
	assert.Equal(t, 24.0, m.Perimetro)
	assert.Equal(t, 36.96, m.M2Fundo) // 8.4 × 4.4
	assert.Equal(t, 11.3, m.M3Massa)  // 36.96×0.15 + 36×0.16
	assert.Equal(t, 26.0, m.MLBordadura)

	// maxDepth ≥ 1.65: liner metric unavailable, roll counts zero.
	assert.False(t, m.TelaDisponivel)
	assert.NotEmpty(t, m.ErroTela)
	assert.Zero(t, m.M2Tela)
	assert.Zero(t, m.RolosTL)
	assert.Zero(t, m.Rolos3D)
}

func TestComputeMetrics_ShallowPoolHasLinerArea(t *testing.T) {
	d := entities.Dimensions{Comprimento: 6, Largura: 3, ProfMin: 1.0, ProfMax: 1.4}
	m := ComputeMetrics(d)

	require.True(t, m.TelaDisponivel)
	// (12 + 6 + 6/1.6×3) × 1.65 = 48.2625
	assert.Equal(t, 48.26, m.M2Tela)
	assert.Equal(t, 2, m.RolosTL) // floor(48.2625/42 + 1)
	assert.Equal(t, 2, m.Rolos3D) // floor(48.2625/33 + 1)
	assert.Empty(t, m.ErroTela)
}

func TestComputeMetrics_AvgDepthAndVolumeIdentity(t *testing.T) {
	cases := []entities.Dimensions{
		{Comprimento: 5, Largura: 2.5, ProfMin: 0.9, ProfMax: 1.5},
		{Comprimento: 10, Largura: 5, ProfMin: 1.2, ProfMax: 1.6},
		{Comprimento: 12.5, Largura: 6, ProfMin: 1.1, ProfMax: 2.2},
	}
	for _, d := range cases {
		m := ComputeMetrics(d)
		want := round2((d.ProfMin + d.ProfMax) / 2)
		assert.Equal(t, want, m.ProfMedia)
		assert.Equal(t, round2(d.Comprimento*d.Largura*(d.ProfMin+d.ProfMax)/2), m.Volume)
		assert.Equal(t, round2(m.Volume/4), m.M3H)
	}
}

func TestComputeMetrics_LinerBoundary(t *testing.T) {
	base := entities.Dimensions{Comprimento: 7, Largura: 3.5, ProfMin: 1.0}

	base.ProfMax = 1.64
	assert.True(t, ComputeMetrics(base).TelaDisponivel)

	base.ProfMax = 1.65
	m := ComputeMetrics(base)
	assert.False(t, m.TelaDisponivel)
	assert.GreaterOrEqual(t, m.RolosTL, 0)
	assert.GreaterOrEqual(t, m.Rolos3D, 0)
}
