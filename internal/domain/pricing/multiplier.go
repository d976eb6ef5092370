package pricing

import "piscinas_xpto/internal/domain/entities"

// Worst-case markup is bounded: the composed multiplier never exceeds this
// ceiling.
const multiplierCap = 1.25

// Yearly market adjustment, revised once per season.
const marketFactor = 1.05

var tipoPiscinaFactors = map[entities.TipoPiscina]float64{
	entities.PiscinaSkimmer:      1.0,
	entities.PiscinaEspelhoDagua: 1.08,
	entities.PiscinaTransbordo:   1.20,
}

// ComplexityMultiplier composes the independent cost-driver factors into the
// bounded markup applied to every family subtotal.
//
// Factors:
//   - geometric: shape, hydraulic pool type and plan-area proportion
//   - technical: automation, ceramic coating, three-phase supply, excavation
//   - market: fixed yearly adjustment
//
// The breakdown is user-facing (quote transparency) with each factor rounded
// to 3 decimals.
func ComplexityMultiplier(answers entities.Answers, dims entities.Dimensions) (float64, entities.MultiplierBreakdown) {
	geo := 1.0
	if answers.Forma() == entities.FormaEspecial {
		geo *= 1.15
	}
	geo *= tipoPiscinaFactors[answers.TipoPiscina()]

	// Very small and very large pools are both more complex per m².
	area := dims.SurfaceArea()
	if area < 15 {
		geo *= 1.08
	} else if area > 60 {
		geo *= 1.05
	}

	tech := 1.0
	if answers.Bool("domotica") {
		tech *= 1.04
	}
	if answers.Revestimento() == entities.RevestimentoCeramica {
		tech *= 1.05
	}
	if answers.Luz() == entities.LuzTrifasica {
		tech *= 1.03
	}
	if answers.Bool("escavacao") {
		tech *= 1.02
	}

	final := geo * tech * marketFactor
	if final > multiplierCap {
		final = multiplierCap
	}

	breakdown := entities.MultiplierBreakdown{
		Geometrico:  round3(geo),
		Tecnologico: round3(tech),
		Mercado:     round3(marketFactor),
		Final:       round3(final),
	}
	return final, breakdown
}
