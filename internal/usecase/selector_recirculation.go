package usecase

import (
	"context"
	"fmt"
	"strings"

	"piscinas_xpto/internal/domain/entities"
)

// selectRecirculation assembles the recirculation & lighting family. Every
// pick is a named product resolved through the catalog facade; the counts
// scale with the pool footprint and the Liner/Betão variants follow the
// coating answer.
func (u *BudgetUseCase) selectRecirculation(ctx context.Context, answers entities.Answers, dims entities.Dimensions) (entities.Family, error) {
	var family entities.Family

	largura := dims.Largura
	comprimento := dims.Comprimento
	poolType := answers.TipoPiscina()
	coating := answers.Revestimento()
	liner := coating == entities.RevestimentoTela

	variant := func(linerName, betaoName string) string {
		if liner {
			return linerName
		}
		return betaoName
	}

	// Skimmers, only for skimmer pools. Count grows with the width.
	if poolType == entities.PiscinaSkimmer {
		qty := 3.0
		switch {
		case largura <= 3.5:
			qty = 1
		case largura <= 5.0:
			qty = 2
		}

		skimmer, err := u.catalog.ProductByNamePattern(ctx, variant(
			"Skimmer Linha de água Branco Liner", "Skimmer Linha de água Branco Betão"))
		if err != nil {
			return nil, err
		}
		if !skimmer.IsZero() {
			family = append(family, entities.LineItem{
				Key:           fmt.Sprintf("skimmer_%d", skimmer.ID),
				Name:          skimmer.Name,
				Price:         skimmer.BasePrice,
				Quantity:      qty,
				Unit:          skimmer.Unit,
				Role:          entities.RoleIncluido,
				Reasoning:     fmt.Sprintf("Skimmers para piscina %s %gm de largura", poolType, largura),
				CanChangeType: true,
			})
		}
	}

	// Return inlets. Wall-mounted for skimmer/transbordo, floor-mounted for
	// espelho d'água.
	qtdBocas := 4.0
	switch {
	case largura <= 3.0:
		qtdBocas = 2
	case largura <= 4.5:
		qtdBocas = 3
	}

	var bocaName string
	if poolType == entities.PiscinaEspelhoDagua {
		bocaName = variant("Boca de Impulsão de fundo Astralpool Liner", "Boca de Impulsão de fundo Astralpool Betão")
	} else {
		bocaName = variant("Boca de Impulsão de parede Astralpool Liner", "Boca de Impulsão de parede Astralpool Betão")
	}
	boca, err := u.catalog.ProductByNamePattern(ctx, bocaName)
	if err != nil {
		return nil, err
	}
	if !boca.IsZero() {
		family = append(family, entities.LineItem{
			Key:           fmt.Sprintf("boca_impulsao_%d", boca.ID),
			Name:          boca.Name,
			Price:         boca.BasePrice,
			Quantity:      qtdBocas,
			Unit:          boca.Unit,
			Role:          entities.RoleIncluido,
			Reasoning:     fmt.Sprintf("Bocas de impulsão para piscina %gm de largura", largura),
			CanChangeType: true,
		})
	}

	tomada, err := u.catalog.ProductByNamePattern(ctx, variant(
		"Tomada de Aspiração Astralpool Liner", "Tomada de Aspiração Astralpool Betão"))
	if err != nil {
		return nil, err
	}
	if !tomada.IsZero() {
		family = append(family, entities.LineItem{
			Key:           fmt.Sprintf("tomada_aspiracao_%d", tomada.ID),
			Name:          tomada.Name,
			Price:         tomada.BasePrice,
			Quantity:      1,
			Unit:          tomada.Unit,
			Role:          entities.RoleIncluido,
			Reasoning:     "Tomada de aspiração padrão",
			CanChangeType: true,
		})
	}

	// Wall sleeves: one for the suction intake plus one per wall inlet;
	// floor inlets pipe straight down and need none.
	qtdPassamuros := 1 + qtdBocas
	if strings.Contains(strings.ToLower(bocaName), "fundo") {
		qtdPassamuros = 1
	}
	passamuro, err := u.catalog.ProductByNamePattern(ctx, variant(
		"Passamuros Astralpool Liner", "Passamuros Astralpool Betão"))
	if err != nil {
		return nil, err
	}
	if !passamuro.IsZero() {
		family = append(family, entities.LineItem{
			Key:           fmt.Sprintf("passamuros_%d", passamuro.ID),
			Name:          passamuro.Name,
			Price:         passamuro.BasePrice,
			Quantity:      qtdPassamuros,
			Unit:          passamuro.Unit,
			Role:          entities.RoleIncluido,
			Reasoning:     fmt.Sprintf("Passamuros para instalação (%g unidades)", qtdPassamuros),
			CanChangeType: true,
		})
	}

	// Level regulator, skimmer pools only, shipping with its own inlet and
	// sleeve as indented pack rows.
	if poolType == entities.PiscinaSkimmer {
		packItems, err := u.selectLevelRegulator(ctx, liner)
		if err != nil {
			return nil, err
		}
		family = append(family, packItems...)
	}

	ralo, err := u.catalog.ProductByNamePattern(ctx, variant(
		"Ralo de fundo Kripsol Liner", "Ralo de fundo Kripsol Betão"))
	if err != nil {
		return nil, err
	}
	if !ralo.IsZero() {
		family = append(family, entities.LineItem{
			Key:           fmt.Sprintf("ralo_fundo_%d", ralo.ID),
			Name:          ralo.Name,
			Price:         ralo.BasePrice,
			Quantity:      1,
			Unit:          ralo.Unit,
			Role:          entities.RoleIncluido,
			Reasoning:     fmt.Sprintf("Ralo de fundo para piscina %.1fm² (%s)", dims.SurfaceArea(), coating),
			CanChangeType: true,
		})
	}

	// Lighting: projector size follows the width, count follows the length,
	// colour follows the questionnaire preference.
	tamanhoMM := 170
	switch {
	case largura <= 2.5:
		tamanhoMM = 50
	case largura <= 4.0:
		tamanhoMM = 100
	}

	var luzName string
	switch answers.TipoLuzes() {
	case entities.LuzesBrancoAdaptavel:
		luzName = fmt.Sprintf("Projector Led Luz Branco Adaptável de %dmm", tamanhoMM)
	case entities.LuzesRGB:
		luzName = fmt.Sprintf("Projector Led Luz RGB de %dmm", tamanhoMM)
	default:
		luzName = fmt.Sprintf("Projector Led Luz Branca de %dmm", tamanhoMM)
	}

	qtdLuzes := 7.0
	switch {
	case comprimento <= 7.0:
		qtdLuzes = 2
	case comprimento <= 9.5:
		qtdLuzes = 3
	case comprimento <= 11.0:
		qtdLuzes = 4
	case comprimento <= 13.5:
		qtdLuzes = 5
	case comprimento <= 16.0:
		qtdLuzes = 6
	}

	luz, err := u.catalog.ProductByNamePattern(ctx, luzName)
	if err != nil {
		return nil, err
	}
	if !luz.IsZero() {
		family = append(family, entities.LineItem{
			Key:           fmt.Sprintf("iluminacao_%d", luz.ID),
			Name:          luz.Name,
			Price:         luz.BasePrice,
			Quantity:      qtdLuzes,
			Unit:          luz.Unit,
			Role:          entities.RoleIncluido,
			Reasoning:     fmt.Sprintf("Iluminação para piscina %gx%gm (%s)", comprimento, largura, answers.TipoLuzes()),
			CanChangeType: true,
		})
	}

	return family, nil
}

func (u *BudgetUseCase) selectLevelRegulator(ctx context.Context, liner bool) ([]entities.LineItem, error) {
	regulador, err := u.catalog.ProductByNamePattern(ctx, "Regulador de Nível Astralpool")
	if err != nil {
		return nil, err
	}
	if regulador.IsZero() {
		return nil, nil
	}

	reguladorKey := fmt.Sprintf("regulador_nivel_%d", regulador.ID)
	items := []entities.LineItem{{
		Key:           reguladorKey,
		Name:          regulador.Name,
		Price:         regulador.BasePrice,
		Quantity:      1,
		Unit:          regulador.Unit,
		Role:          entities.RoleIncluido,
		Reasoning:     "Regulador de nível para piscina skimmer",
		CanChangeType: true,
	}}

	packBocaName := "Boca de Impulsão de parede Astralpool Betão"
	packPassamuroName := "Passamuros Astralpool Betão"
	if liner {
		packBocaName = "Boca de Impulsão de parede Astralpool Liner"
		packPassamuroName = "Passamuros Astralpool Liner"
	}

	packBoca, err := u.catalog.ProductByNamePattern(ctx, packBocaName)
	if err != nil {
		return nil, err
	}
	if !packBoca.IsZero() {
		items = append(items, entities.LineItem{
			Key:        fmt.Sprintf("regulador_pack_boca_%d", packBoca.ID),
			Name:       "    [Pack] " + packBoca.Name + " (Pack Regulador)",
			Price:      packBoca.BasePrice,
			Quantity:   1,
			Unit:       packBoca.Unit,
			Role:       entities.RoleIncluido,
			Reasoning:  "Boca impulsão adicional para regulador de nível",
			PackParent: reguladorKey,
			IsPackItem: true,
			PackStyle:  "indented",
		})
	}

	packPassamuro, err := u.catalog.ProductByNamePattern(ctx, packPassamuroName)
	if err != nil {
		return nil, err
	}
	if !packPassamuro.IsZero() {
		items = append(items, entities.LineItem{
			Key:        fmt.Sprintf("regulador_pack_passamuro_%d", packPassamuro.ID),
			Name:       "    [Pack] " + packPassamuro.Name + " (Pack Regulador)",
			Price:      packPassamuro.BasePrice,
			Quantity:   1,
			Unit:       packPassamuro.Unit,
			Role:       entities.RoleIncluido,
			Reasoning:  "Passamuro adicional para regulador de nível",
			PackParent: reguladorKey,
			IsPackItem: true,
			PackStyle:  "indented",
		})
	}

	return items, nil
}
