package usecase

import (
	"context"
	"testing"

	"piscinas_xpto/internal/adapter/persistence/repository"
	"piscinas_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestSpecForVolume(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
		want   string
	}{
		{"in range closest to optimal", 48, "130M"},
		{"optimal exact", 35, "90M"},
		{"below all ranges picks smallest", 10, "90M"},
		{"above all ranges picks largest", 150, "240M"},
		{"upper band", 100, "240M"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bestSpecForVolume(mrComfortSpecs, tt.volume).model)
		})
	}
}

func TestSelectHeating(t *testing.T) {
	uc := NewBudgetUseCase(repository.NewStaticCatalogRepository(), nil)

	t.Run("pairs mr comfort with fairland alternative", func(t *testing.T) {
		family, err := uc.selectHeating(context.Background(), entities.Metrics{Volume: 48})
		require.NoError(t, err)
		require.Len(t, family, 2)

		principal := family[0]
		assert.Equal(t, entities.RoleIncluido, principal.Role)
		assert.Contains(t, principal.Name, "130M")

		alt := family[1]
		assert.Equal(t, entities.RoleAlternativo, alt.Role)
		assert.Contains(t, alt.Name, "X20-18")
		assert.Equal(t, principal.Key, alt.AlternativeTo)
	})

	t.Run("empty pool gets no heating", func(t *testing.T) {
		family, err := uc.selectHeating(context.Background(), entities.Metrics{Volume: 0})
		require.NoError(t, err)
		assert.Empty(t, family)
	})
}
