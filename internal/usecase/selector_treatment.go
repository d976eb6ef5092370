package usecase

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"piscinas_xpto/internal/adapter/persistence/repository"
	"piscinas_xpto/internal/domain/entities"
)

// Startup salt dose: 6 g/L, shipped in 25 kg bags.
const (
	saltGramsPerLiter = 0.006
	saltBagKg         = 25
)

var (
	volumeRatingRe = regexp.MustCompile(`(\d+)m3`)
	flowRatingRe   = regexp.MustCompile(`(\d+)m3/h`)
)

// selectTreatment assembles the water treatment family. Salt is always
// included once the pool holds water; the remaining rows depend on the
// chosen treatment tier.
func (u *BudgetUseCase) selectTreatment(ctx context.Context, answers entities.Answers, metrics entities.Metrics) (entities.Family, error) {
	var family entities.Family
	if metrics.Volume <= 0 {
		return family, nil
	}

	products, err := u.catalog.ProductsByFamily(ctx, repository.FamiliaTratamentoAgua)
	if err != nil {
		return nil, err
	}

	if sal := findByExactName(products, "sal granulado refinado"); !sal.IsZero() {
		bags := math.Ceil(metrics.Volume * 1000 * saltGramsPerLiter / saltBagKg)
		family = append(family, entities.LineItem{
			Key:       "sal_granulado_refinado",
			Name:      sal.Name,
			Price:     sal.BasePrice,
			Quantity:  bags,
			Unit:      sal.Unit,
			Role:      entities.RoleIncluido,
			Reasoning: fmt.Sprintf("Quantidade calculada para %g m³ de piscina", metrics.Volume),
		})
	}

	tier := answers.TratamentoTipo()
	switch tier {
	case entities.TratamentoCloroAutomatico:
		if doseador := findByNameFragment(products, "doseador automático rx"); !doseador.IsZero() {
			family = append(family, entities.LineItem{
				Key:       "doseador_automatico",
				Name:      doseador.Name,
				Price:     doseador.BasePrice,
				Quantity:  1,
				Unit:      doseador.Unit,
				Role:      entities.RoleIncluido,
				Reasoning: "Doseador automático selecionado",
			})
		}

	case entities.TratamentoSalino:
		if chlorinator := smallestSufficientByRating(products, "inverclear", volumeRatingRe, metrics.Volume); !chlorinator.IsZero() {
			family = append(family, entities.LineItem{
				Key:       "inverclear",
				Name:      chlorinator.Name,
				Price:     chlorinator.BasePrice,
				Quantity:  1,
				Unit:      chlorinator.Unit,
				Role:      entities.RoleIncluido,
				Reasoning: fmt.Sprintf("Clorador salino selecionado para %g m³", metrics.Volume),
			})
		}
		family = appendAnodicProtection(family, products, "Proteção anódica incluída com clorador salino")

	case entities.TratamentoSalinoPH:
		family = appendMrPure(family, products, metrics.Volume)
		family = appendAnodicProtection(family, products, "Proteção anódica incluída com clorador salino + PH")

	case entities.TratamentoSalinoPHUV:
		family = appendMrPure(family, products, metrics.Volume)
		if uv := smallestSufficientByRating(products, "uv-c titan", flowRatingRe, metrics.M3H); !uv.IsZero() {
			family = append(family, entities.LineItem{
				Key:       "uv_titan",
				Name:      uv.Name,
				Price:     uv.BasePrice,
				Quantity:  1,
				Unit:      uv.Unit,
				Role:      entities.RoleIncluido,
				Reasoning: fmt.Sprintf("Sistema UV selecionado para %g m³/h", metrics.M3H),
			})
		}
		family = appendAnodicProtection(family, products, "Proteção anódica incluída com clorador salino + PH + UV")
	}

	return family, nil
}

func appendMrPure(family entities.Family, products []entities.Product, volume float64) entities.Family {
	chlorinator := smallestSufficientByRating(products, "mr. pure", volumeRatingRe, volume)
	if chlorinator.IsZero() {
		return family
	}
	return append(family, entities.LineItem{
		Key:       "mr_pure",
		Name:      chlorinator.Name,
		Price:     chlorinator.BasePrice,
		Quantity:  1,
		Unit:      chlorinator.Unit,
		Role:      entities.RoleIncluido,
		Reasoning: fmt.Sprintf("Clorador salino + PH selecionado para %g m³", volume),
	})
}

func appendAnodicProtection(family entities.Family, products []entities.Product, reasoning string) entities.Family {
	protecao := findByNameFragment(products, "proteção anódica")
	if protecao.IsZero() {
		return family
	}
	return append(family, entities.LineItem{
		Key:       "protecao_anodica",
		Name:      protecao.Name,
		Price:     protecao.BasePrice,
		Quantity:  1,
		Unit:      protecao.Unit,
		Role:      entities.RoleIncluido,
		Reasoning: reasoning,
	})
}

// smallestSufficientByRating picks, among the products whose name contains
// fragment, the one with the smallest rating (parsed from the name with re)
// that still covers required.
func smallestSufficientByRating(products []entities.Product, fragment string, re *regexp.Regexp, required float64) entities.Product {
	var best entities.Product
	bestRating := 0
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), fragment) {
			continue
		}
		m := re.FindStringSubmatch(p.Name)
		if m == nil {
			continue
		}
		rating, err := strconv.Atoi(m[1])
		if err != nil || float64(rating) < required {
			continue
		}
		if best.IsZero() || rating < bestRating {
			best = p
			bestRating = rating
		}
	}
	return best
}

func findByExactName(products []entities.Product, lowerName string) entities.Product {
	for _, p := range products {
		if strings.ToLower(strings.TrimSpace(p.Name)) == lowerName {
			return p
		}
	}
	return entities.Product{}
}

func findByNameFragment(products []entities.Product, fragment string) entities.Product {
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), fragment) {
			return p
		}
	}
	return entities.Product{}
}
