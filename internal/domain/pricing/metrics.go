// Package pricing holds the pure calculators of the budget engine: derived
// pool metrics, the complexity multiplier and the transport surcharge.
// Everything here is a side-effect-free function of its inputs and safe for
// concurrent use.
package pricing

import (
	"math"

	"piscinas_xpto/internal/domain/entities"
)

// Liner area is undefined at or beyond this depth; the sheet cannot be
// welded in a single span.
const maxTelaProfundidade = 1.65

// ComputeMetrics derives every geometric metric from the pool dimensions.
// Preconditions: all four dimensions > 0 (validated by the caller).
//
// All results are rounded to 2 decimal places except integer roll counts.
func ComputeMetrics(d entities.Dimensions) entities.Metrics {
	profMedia := (d.ProfMin + d.ProfMax) / 2
	volume := d.Comprimento * d.Largura * profMedia
	m3h := volume / 4

	m2Paredes := (d.Comprimento*2 + d.Largura*2) * profMedia
	m2Fundo := (d.Comprimento + 0.4) * (d.Largura + 0.4)
	m3Massa := m2Fundo*0.15 + m2Paredes*0.16
	perimetro := 2 * (d.Comprimento + d.Largura)

	m := entities.Metrics{
		ProfMedia:   round2(profMedia),
		Volume:      round2(volume),
		M3H:         round2(m3h),
		M2Paredes:   round2(m2Paredes),
		M2Fundo:     round2(m2Fundo),
		M3Massa:     round2(m3Massa),
		Perimetro:   round2(perimetro),
		MLBordadura: round2(d.Comprimento + d.Comprimento + d.Largura + d.Largura + 0.5*4),
	}

	if d.ProfMax < maxTelaProfundidade {
		m2Tela := (d.Comprimento*2 + d.Largura*2 + d.Comprimento/1.6*d.Largura) * 1.65
		m.M2Tela = round2(m2Tela)
		m.TelaDisponivel = true
		m.RolosTL = int(math.Floor(m2Tela/42 + 1))
		m.Rolos3D = int(math.Floor(m2Tela/33 + 1))
	} else {
		// Unsupported configuration: surface the marker, leave the
		// dependent roll counts at zero.
		m.ErroTela = "Profundidade máxima >= 1,65m"
	}

	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
