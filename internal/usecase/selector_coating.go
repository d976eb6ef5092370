package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"piscinas_xpto/internal/adapter/persistence/repository"
	"piscinas_xpto/internal/domain/entities"
)

// Reinforced liner ships in 25 m rolls; edge profiles in 2 m lengths.
const (
	linerRollMeters = 25.0
	profileLengthM  = 2.0
)

// selectCoating assembles the coating family, liner or ceramic depending on
// the questionnaire. Liner roll count follows the cut layout formula, which
// widens when a slatted cover needs extra liner runs; special-shape pools
// always quote a single roll pending a manual survey.
func (u *BudgetUseCase) selectCoating(ctx context.Context, answers entities.Answers, dims entities.Dimensions, metrics entities.Metrics) (entities.Family, error) {
	if answers.Revestimento() == entities.RevestimentoCeramica {
		return u.selectCeramicCoating(ctx, answers, metrics)
	}
	return u.selectLinerCoating(ctx, answers, dims, metrics)
}

func (u *BudgetUseCase) selectLinerCoating(ctx context.Context, answers entities.Answers, dims entities.Dimensions, metrics entities.Metrics) (entities.Family, error) {
	var family entities.Family

	products, err := u.catalog.ProductsByFamily(ctx, repository.FamiliaRevestimento)
	if err != nil {
		return nil, err
	}

	telaPrincipal := findLinerProduct(products, func(name string) bool {
		return strings.Contains(name, "tela armada 3d unicolor")
	})

	if answers.Forma() == entities.FormaEspecial {
		// Non-rectangular pools need a manual cut plan; quote one roll.
		if !telaPrincipal.IsZero() {
			family = append(family, entities.LineItem{
				Key:           "tela_armada",
				Name:          telaPrincipal.Name,
				Price:         telaPrincipal.BasePrice,
				Quantity:      1,
				Unit:          telaPrincipal.Unit,
				Role:          entities.RoleIncluido,
				Reasoning:     "Forma especial: 1 rolo padrão",
				CanChangeType: true,
				ProductID:     telaPrincipal.ID,
			})
		}
		return family, nil
	}

	comprimento := dims.Comprimento
	largura := dims.Largura

	cobertura := answers.String("cobertura", "nao")
	tipoLaminas := answers.String("tipo_cobertura_laminas", "")
	var metrosLineares float64
	if cobertura == "laminas" && (tipoLaminas == "submersa_praia" || tipoLaminas == "fora_praia") {
		metrosLineares = (comprimento+largura)*2 + largura + largura + (comprimento/1.6)*largura
	} else {
		metrosLineares = (comprimento+largura)*2 + (comprimento/1.6)*2
	}
	rolos := 0.0
	if metrosLineares > 0 {
		rolos = math.Ceil(metrosLineares / linerRollMeters)
	}

	tela3D := findLinerProduct(products, func(name string) bool {
		return strings.Contains(name, "tela armada 3d") && !strings.Contains(name, "unicolor")
	})
	telaLisa := findLinerProduct(products, func(name string) bool {
		return strings.Contains(name, "tela armada lisa")
	})
	var telaAlternatives []entities.AlternativeRef
	if !tela3D.IsZero() {
		telaAlternatives = append(telaAlternatives, entities.AlternativeRef{ID: tela3D.ID, Name: tela3D.Name, Price: tela3D.BasePrice})
	}
	if !telaLisa.IsZero() {
		telaAlternatives = append(telaAlternatives, entities.AlternativeRef{ID: telaLisa.ID, Name: telaLisa.Name, Price: telaLisa.BasePrice})
	}

	if !telaPrincipal.IsZero() && rolos > 0 {
		qty := rolos
		if override, ok := answers.QuantityOverride("tela_armada"); ok {
			qty = override
		}
		family = append(family, entities.LineItem{
			Key:           "tela_armada",
			Name:          telaPrincipal.Name,
			Price:         telaPrincipal.BasePrice,
			Quantity:      qty,
			Unit:          telaPrincipal.Unit,
			Role:          entities.RoleIncluido,
			Reasoning:     fmt.Sprintf("Quantidade calculada: %g rolos de 25m cada", rolos),
			CanChangeType: true,
			Alternatives:  telaAlternatives,
			ProductID:     telaPrincipal.ID,
		})
	}

	// Edge profile: horizontal on new builds, vertical on renovations, with
	// the co-laminated sheet offered as the substitute.
	perfilName := "perfil horizontal"
	perfilLabel := "horizontal"
	if answers.TipoConstrucao() == entities.ConstrucaoRenovacao {
		perfilName = "perfil vertical"
		perfilLabel = "vertical"
	}
	perfil := findByNameFragment(products, perfilName)
	chapa := findByNameFragment(products, "chapa colaminada")

	if metrics.MLBordadura > 0 && !perfil.IsZero() {
		perfisQty := math.Ceil(metrics.MLBordadura / profileLengthM)
		var perfilAlternatives []entities.AlternativeRef
		if !chapa.IsZero() {
			perfilAlternatives = append(perfilAlternatives, entities.AlternativeRef{ID: chapa.ID, Name: chapa.Name, Price: chapa.BasePrice})
		}

		qty := perfisQty
		if override, ok := answers.QuantityOverride("perfil"); ok {
			qty = override
		}
		family = append(family, entities.LineItem{
			Key:           "perfil",
			Name:          perfil.Name,
			Price:         perfil.BasePrice,
			Quantity:      qty,
			Unit:          perfil.Unit,
			Role:          entities.RoleIncluido,
			Reasoning:     fmt.Sprintf("Perfil %s: %g un (2ml cada)", perfilLabel, perfisQty),
			CanChangeType: true,
			Alternatives:  perfilAlternatives,
			ProductID:     perfil.ID,
		})

		if !chapa.IsZero() {
			chapaQty := perfisQty
			if override, ok := answers.QuantityOverride("chapa_colaminada"); ok {
				chapaQty = override
			}
			family = append(family, entities.LineItem{
				Key:           "chapa_colaminada",
				Name:          chapa.Name,
				Price:         chapa.BasePrice,
				Quantity:      chapaQty,
				Unit:          chapa.Unit,
				Role:          entities.RoleAlternativo,
				Reasoning:     fmt.Sprintf("Alternativa à %s: %g un (2ml cada)", perfilLabel, perfisQty),
				AlternativeTo: "perfil",
				ProductID:     chapa.ID,
			})
		}
	}

	return family, nil
}

// selectCeramicCoating quotes the two ceramic rows, both sized by the total
// coated area (walls + floor). Prices are editable because ceramics are
// quoted per job; the custom row additionally takes a free-text name.
func (u *BudgetUseCase) selectCeramicCoating(ctx context.Context, answers entities.Answers, metrics entities.Metrics) (entities.Family, error) {
	var family entities.Family

	products, err := u.catalog.ProductsByFamily(ctx, repository.FamiliaRevestimento)
	if err != nil {
		return nil, err
	}

	var ceramicos []entities.Product
	for _, p := range products {
		if strings.EqualFold(p.CategoryName, "Cerâmica") {
			ceramicos = append(ceramicos, p)
		}
	}

	areaTotal := round2(metrics.M2Paredes + metrics.M2Fundo)

	imper := findCeramic(ceramicos, "impermeabilização", "imper")
	if !imper.IsZero() {
		qty := areaTotal
		if override, ok := answers.QuantityOverride("impermeabilizacao_ceramico"); ok {
			qty = override
		}
		family = append(family, entities.LineItem{
			Key:           "impermeabilizacao_ceramico",
			Name:          imper.Name,
			Price:         imper.BasePrice,
			Quantity:      qty,
			Unit:          imper.Unit,
			Role:          entities.RoleIncluido,
			Reasoning:     fmt.Sprintf("Impermeabilização cerâmica: %g m² (%gm² paredes + %gm² fundo)", areaTotal, metrics.M2Paredes, metrics.M2Fundo),
			CanChangeType: true,
			EditablePrice: true,
			EditableCost:  true,
			ProductID:     imper.ID,
		})
	}

	custom := findCeramic(ceramicos, "personalizado", "custom")
	if !custom.IsZero() {
		qty := areaTotal
		if override, ok := answers.QuantityOverride("item_ceramico_personalizado"); ok {
			qty = override
		}
		family = append(family, entities.LineItem{
			Key:           "item_ceramico_personalizado",
			Name:          custom.Name,
			Price:         custom.BasePrice,
			Quantity:      qty,
			Unit:          custom.Unit,
			Role:          entities.RoleIncluido,
			Reasoning:     fmt.Sprintf("Item personalizável para revestimento cerâmico: %g m² (mesma quantidade da impermeabilização)", areaTotal),
			CanChangeType: true,
			EditableName:  true,
			EditablePrice: true,
			EditableCost:  true,
			ProductID:     custom.ID,
		})
	}

	return family, nil
}

func findLinerProduct(products []entities.Product, match func(lowerName string) bool) entities.Product {
	for _, p := range products {
		name := strings.ToLower(p.Name)
		if strings.Contains(name, "cgt") && match(name) {
			return p
		}
	}
	return entities.Product{}
}

func findCeramic(products []entities.Product, nameFragment, codeFragment string) entities.Product {
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), nameFragment) ||
			strings.Contains(strings.ToLower(p.Code), codeFragment) {
			return p
		}
	}
	return entities.Product{}
}
