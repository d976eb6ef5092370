package usecase

import (
	"fmt"

	"piscinas_xpto/internal/domain/entities"
)

// Slab pricing constants: cost per m³ of concrete, per m² of preparation,
// and the labour cost per m² of laying the finish (application + adhesive).
const (
	slabCostPerM3        = 70.0
	slabCostPerM2        = 10.0
	slabFinishLabourM2   = 15.0
	slabFinishAdhesiveM2 = 13.0
)

type slabMaterial struct {
	name       string
	pricePerM2 float64
	ceramic    bool
}

var slabMaterials = map[string]slabMaterial{
	"granito_vila_real":       {"Granito Vila Real", 35, false},
	"granito_pedras_salgadas": {"Granito Pedras Salgadas", 35, false},
	"granito_preto_angola":    {"Granito Preto Angola", 90, false},
	"granito_preto_zimbabue":  {"Granito Preto Zimbabue", 140, false},
	"marmore_branco_ibiza":    {"Mármore Branco Ibiza", 90, false},
	"travertino_turco":        {"Travertino Turco", 90, false},
	"pedra_hijau":             {"Pedra Hijau", 40, true},
}

// selectSlab assembles the surrounding slab family when the questionnaire
// asks for one: the poured deck itself, plus the optional stone or ceramic
// finish on top.
func selectSlab(answers entities.Answers) entities.Family {
	var family entities.Family

	if answers.String("havera_laje", "nao") != "sim" {
		return family
	}
	lajeM2 := answers.Float("laje_m2", 0)
	espessura := answers.Float("laje_espessura", 0)
	if lajeM2 <= 0 || espessura <= 0 {
		return family
	}

	espessuraCm := int(espessura * 100)
	lajeM3 := lajeM2 * espessura

	pavimentoCost := slabCostPerM3*lajeM3 + slabCostPerM2*lajeM2
	family = append(family, entities.LineItem{
		Key: "pavimento_terreo",
		Name: fmt.Sprintf("Fornecimento e execução do pavimento térreo com %dcm de espessura, "+
			"através de enchimento e espalhamento de brita com diâmetro de 12mm a 20mm, "+
			"colocação de camada de compressão em betão e todos os trabalhos e materiais "+
			"para o seu perfeito acabamento.", espessuraCm),
		Price:         round2(pavimentoCost * 100 / 60),
		Quantity:      1,
		Unit:          "un",
		Role:          entities.RoleIncluido,
		Reasoning:     fmt.Sprintf("Laje de %.2fm² × %dcm: (70 × %.3f + 10 × %.2f) × 100/60", lajeM2, espessuraCm, lajeM3, lajeM2),
		CanChangeType: true,
	})

	if answers.String("revestimento_laje", "nao") == "sim" {
		material, ok := slabMaterials[answers.String("material_revestimento", "")]
		if !ok {
			return family
		}

		finishCost := (slabFinishLabourM2 + slabFinishAdhesiveM2 + material.pricePerM2) * lajeM2
		kind := "pedra natural"
		if material.ceramic {
			kind = "cerâmica"
		}
		family = append(family, entities.LineItem{
			Key:           "revestimento_laje",
			Name:          fmt.Sprintf("Revestimento da laje em %s - %s", kind, material.name),
			Price:         round2(finishCost * 100 / 60),
			Quantity:      1,
			Unit:          "un",
			Role:          entities.RoleIncluido,
			Reasoning:     fmt.Sprintf("Revestimento %.2fm² com %s: (15 + 13 + %g) × %.2f × 100/60", lajeM2, material.name, material.pricePerM2, lajeM2),
			CanChangeType: true,
		})
	}

	return family
}
