package pricing

import (
	"testing"

	"piscinas_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestTransportCost_Tiers(t *testing.T) {
	metrics := entities.Metrics{M3Massa: 10}

	t.Run("hard", func(t *testing.T) {
		b := TransportCost(entities.Answers{"acesso": "dificil"}, metrics)
		assert.Equal(t, entities.AcessoDificil, b.Nivel)
		assert.Equal(t, 600.00, b.CustoTotal) // 10×10.00 + 500.00
	})

	t.Run("medium is exactly 25% of hard", func(t *testing.T) {
		b := TransportCost(entities.Answers{"acesso": "medio"}, metrics)
		assert.Equal(t, 150.00, b.CustoTotal) // 10×2.50 + 125.00
	})

	t.Run("easy is free", func(t *testing.T) {
		b := TransportCost(entities.Answers{"acesso": "facil"}, entities.Metrics{M3Massa: 999})
		assert.Zero(t, b.CustoTotal)
		assert.Zero(t, b.CustoPorM3)
		assert.Zero(t, b.CustoFixo)
	})
}

func TestTransportCost_MediumQuarterOfHardForAnyVolume(t *testing.T) {
	for _, m3 := range []float64{0, 1.5, 7.33, 42} {
		metrics := entities.Metrics{M3Massa: m3}
		hard := TransportCost(entities.Answers{"acesso": "dificil"}, metrics)
		medium := TransportCost(entities.Answers{"acesso": "medio"}, metrics)
		assert.InDelta(t, hard.CustoTotal*0.25, medium.CustoTotal, 0.01)
	}
}

func TestTransportCost_UnknownAccessDefaultsToEasy(t *testing.T) {
	b := TransportCost(entities.Answers{"acesso": "helicoptero"}, entities.Metrics{M3Massa: 3})
	assert.Equal(t, entities.AcessoFacil, b.Nivel)
	assert.Zero(t, b.CustoTotal)
}
