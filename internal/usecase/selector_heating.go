package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"piscinas_xpto/internal/adapter/persistence/repository"
	"piscinas_xpto/internal/domain/entities"
)

// heatPumpSpec ties a heat pump model to the volume band it heats
// efficiently.
type heatPumpSpec struct {
	model     string
	kw        float64
	minVolume float64
	maxVolume float64
	optimal   float64
}

var mrComfortSpecs = []heatPumpSpec{
	{"90M", 9, 20, 50, 35},
	{"130M", 12.6, 30, 60, 45},
	{"160M", 16.1, 40, 75, 57.5},
	{"200M", 20.0, 50, 90, 70},
	{"240M", 24.0, 60, 110, 85},
}

var fairlandSpecs = []heatPumpSpec{
	{"X20-14", 14, 30, 50, 40},
	{"X20-18", 18, 40, 65, 52.5},
	{"X20-22", 22, 45, 75, 60},
	{"X20-26", 26, 55, 90, 72.5},
}

// selectHeating assembles the heating family: the best-fitting Mr. Comfort
// heat pump is included and the equivalent Fairland InverX20 is offered as
// the premium alternative.
func (u *BudgetUseCase) selectHeating(ctx context.Context, metrics entities.Metrics) (entities.Family, error) {
	var family entities.Family
	volume := metrics.Volume
	if volume <= 0 {
		return family, nil
	}

	products, err := u.catalog.ProductsByFamily(ctx, repository.FamiliaAquecimento)
	if err != nil {
		return nil, err
	}

	var mrComfort, fairland []entities.Product
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.CategoryName), "bomba de calor") {
			continue
		}
		brand := strings.ToLower(p.Brand)
		switch {
		case strings.Contains(brand, "mr. comfort"):
			mrComfort = append(mrComfort, p)
		case strings.Contains(brand, "fairland"):
			fairland = append(fairland, p)
		}
	}

	principal := matchSpecProduct(mrComfort, bestSpecForVolume(mrComfortSpecs, volume))
	if principal.IsZero() {
		return family, nil
	}
	principalKey := fmt.Sprintf("bomba_calor_%d", principal.ID)
	family = append(family, entities.LineItem{
		Key:           principalKey,
		Name:          principal.Name,
		Price:         principal.BasePrice,
		Quantity:      1,
		Unit:          principal.Unit,
		Role:          entities.RoleIncluido,
		Reasoning:     fmt.Sprintf("Bomba de calor selecionada para piscina de %g m³", volume),
		CanChangeType: true,
	})

	alternative := matchSpecProduct(fairland, bestSpecForVolume(fairlandSpecs, volume))
	if !alternative.IsZero() {
		family = append(family, entities.LineItem{
			Key:           fmt.Sprintf("bomba_calor_fairland_%d", alternative.ID),
			Name:          alternative.Name,
			Price:         alternative.BasePrice,
			Quantity:      1,
			Unit:          alternative.Unit,
			Role:          entities.RoleAlternativo,
			AlternativeTo: principalKey,
			Reasoning:     fmt.Sprintf("Bomba de calor Fairland - Gama Superior alternativa para piscina de %g m³", volume),
			CanChangeType: true,
		})
	}

	return family, nil
}

// bestSpecForVolume picks the model whose operating band contains the
// volume, closest to its optimal point. Out-of-band volumes snap to the
// smallest model below the range, the largest above it, or the band with the
// nearest boundary in between.
func bestSpecForVolume(specs []heatPumpSpec, volume float64) heatPumpSpec {
	var inRange []heatPumpSpec
	for _, spec := range specs {
		if spec.minVolume <= volume && volume <= spec.maxVolume {
			inRange = append(inRange, spec)
		}
	}
	if len(inRange) > 0 {
		best := inRange[0]
		for _, spec := range inRange[1:] {
			if math.Abs(volume-spec.optimal) < math.Abs(volume-best.optimal) {
				best = spec
			}
		}
		return best
	}

	if volume < specs[0].minVolume {
		return specs[0]
	}
	if volume > specs[len(specs)-1].maxVolume {
		return specs[len(specs)-1]
	}

	best := specs[0]
	minDistance := math.Inf(1)
	for _, spec := range specs {
		var distance float64
		if volume < spec.minVolume {
			distance = spec.minVolume - volume
		} else {
			distance = volume - spec.maxVolume
		}
		if distance < minDistance {
			minDistance = distance
			best = spec
		}
	}
	return best
}

func matchSpecProduct(products []entities.Product, spec heatPumpSpec) entities.Product {
	for _, p := range products {
		if strings.Contains(p.Name, spec.model) {
			return p
		}
	}
	return entities.Product{}
}
