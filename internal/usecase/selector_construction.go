package usecase

import (
	"fmt"
	"math"

	"piscinas_xpto/internal/domain/entities"
)

// selectConstruction assembles the pool construction family from structural
// quantity formulas and the regional supplier price table. No catalog lookup
// is involved: these are raw building materials priced per locality.
func selectConstruction(answers entities.Answers, dims entities.Dimensions, metrics entities.Metrics) entities.Family {
	var family entities.Family
	localidade := answers.Localidade()

	price := func(material string) float64 {
		return regionalSalePrice(localidade, material)
	}
	add := func(key, name string, unitPrice, quantity float64, unit, reasoning string) {
		family = append(family, entities.LineItem{
			Key:           key,
			Name:          name,
			Price:         unitPrice,
			Quantity:      quantity,
			Unit:          unit,
			Role:          entities.RoleIncluido,
			Reasoning:     reasoning,
			CanChangeType: true,
		})
	}

	if metrics.M2Paredes > 0 {
		add("bloco_cofragem", materialBlocoCofragem, price(materialBlocoCofragem),
			math.Ceil(metrics.M2Paredes*10), "un",
			fmt.Sprintf("10 blocos por m² de parede (%.2f m²)", metrics.M2Paredes))
	}

	// Regular blocks only show up when the pool has masonry stairs.
	escadasLargura := answers.Float("escadas_largura", 0)
	if answers.String("escadas", "nao") == "sim" && escadasLargura > 0 {
		qty := math.Floor((escadasLargura / 0.2) * ((dims.ProfMin - 0.3) / 0.2))
		if qty > 0 {
			add("bloco_normal", materialBlocoNormal, price(materialBlocoNormal), qty, "un",
				fmt.Sprintf("Para escadas: (%g/0,2) × ((%g-0,3)/0,2)", escadasLargura, dims.ProfMin))
		}
	}

	if metrics.M3Massa > 0 {
		add("cimento", materialCimento, price(materialCimento),
			metrics.M3Massa*10, "un",
			fmt.Sprintf("10 sacos por m³ de massa (%.2f m³)", metrics.M3Massa))
		add("mistura", materialMistura, price(materialMistura),
			metrics.M3Massa, "m3",
			fmt.Sprintf("1 m³ por m³ de massa (%.2f m³)", metrics.M3Massa))
	}

	if metrics.M2Paredes > 0 {
		add("malha_eletrosoldada", materialMalha, price(materialMalha),
			metrics.M2Paredes, "m2",
			fmt.Sprintf("Igual a m² de paredes (%.2f m²)", metrics.M2Paredes))
	}

	// Rebar: vertical bars every 20 cm around the perimeter plus horizontal
	// courses every 20 cm of depth, cut from 6 m lengths.
	if metrics.Perimetro > 0 && dims.ProfMax > 0 {
		barrasVerticais := (metrics.Perimetro / 0.2) * 2 / 6
		barrasHorizontais := ((dims.ProfMax / 0.2) * metrics.Perimetro * 2) / 6
		add("heliaco", materialHeliaco, price(materialHeliaco),
			math.Ceil(barrasVerticais+barrasHorizontais), "un",
			fmt.Sprintf("Barras verticais: %.1f + Barras horizontais: %.1f", barrasVerticais, barrasHorizontais))
	}

	add("arame_queimado", "Arame Queimado", 2.50, 2, "kg", "Quantidade fixa: 2 kg")
	add("meia_areia", materialMeiaAreia, price(materialMeiaAreia), 1, "m3", "Quantidade fixa: 1 m³")

	if metrics.M2Paredes > 0 {
		add("reboco_exterior", materialReboco, price(materialReboco),
			metrics.M2Paredes*0.6, "un",
			fmt.Sprintf("0,6 sacos por m² de parede (%.2f m²)", metrics.M2Paredes))
	}

	// Beach-zone deck: beams span the pool width, vaulted blocks fill the
	// gaps between beams.
	zonaPraiaLargura := answers.Float("zona_praia_largura", 0)
	if answers.String("zona_praia", "nao") == "sim" && zonaPraiaLargura > 0 && dims.Largura > 0 {
		zonaPraiaComprimento := dims.Largura
		nVigas := ((zonaPraiaComprimento / 0.52) + 1) * zonaPraiaLargura
		add("vigas", materialViga, price(materialViga), nVigas, "m",
			fmt.Sprintf("Zona praia: ((%g/0,52)+1) × %g", zonaPraiaComprimento, zonaPraiaLargura))
		add("abobadilhas", materialAbobadilha, price(materialAbobadilha),
			(zonaPraiaLargura/0.40)*nVigas, "un",
			fmt.Sprintf("(%g/0,40) × %.1f vigas", zonaPraiaLargura, nVigas))
	}

	if metrics.Perimetro > 0 && metrics.ProfMedia > 0 {
		add("tela_pitonada", "Tela Pitonada", 1.50,
			metrics.Perimetro*metrics.ProfMedia, "m2",
			fmt.Sprintf("Perímetro × prof. média: %.2f × %.2f", metrics.Perimetro, metrics.ProfMedia))
	}

	if metrics.M2Fundo > 0 {
		add("brita_n2", materialBrita, price(materialBrita),
			math.Ceil(metrics.M2Fundo*0.05), "m3",
			fmt.Sprintf("M² fundo × 0,05: %.2f × 0,05 (arredondado)", metrics.M2Fundo))
	}

	return family
}
