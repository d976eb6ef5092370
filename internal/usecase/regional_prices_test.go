package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionalSalePrice_KnownLocality(t *testing.T) {
	// Viseu cost 0.90 → sale 0.90 × 100/60 = 1.50.
	assert.Equal(t, 1.50, regionalSalePrice("Viseu", materialBlocoCofragem))
	assert.Equal(t, 6.72, regionalSalePrice("Viseu", materialCimento))
}

func TestRegionalSalePrice_GroupedLocalities(t *testing.T) {
	group := regionalSalePrice("Porto/Maia/Matosinhos", materialViga)
	assert.Equal(t, group, regionalSalePrice("Porto", materialViga))
	assert.Equal(t, group, regionalSalePrice("Maia", materialViga))
	assert.Equal(t, group, regionalSalePrice("Matosinhos", materialViga))

	povoa := regionalSalePrice("Póvoa de Varzim/Vila do Conde", materialMistura)
	assert.Equal(t, povoa, regionalSalePrice("Vila do Conde", materialMistura))
}

func TestRegionalSalePrice_UnknownLocalityUsesMean(t *testing.T) {
	price := regionalSalePrice("Lisboa", materialMeiaAreia)
	assert.Greater(t, price, 0.0)

	// Mean must sit strictly between the cheapest and priciest regions.
	low := regionalSalePrice("Barcelos", materialMeiaAreia)
	high := regionalSalePrice("Famalicão", materialMeiaAreia)
	assert.Greater(t, price, low)
	assert.Less(t, price, high)
}

func TestRegionalSalePrice_UnknownMaterial(t *testing.T) {
	assert.Equal(t, 0.0, regionalSalePrice("Viseu", "Material Inexistente"))
	assert.Equal(t, 0.0, regionalSalePrice("Lisboa", "Material Inexistente"))
}
