package pricing

import "piscinas_xpto/internal/domain/entities"

// Transport rates per access tier. Medium is exactly 25% of the hard tier,
// both the per-m³ rate and the fixed cost.
const (
	transportDificilPorM3 = 10.00
	transportDificilFixo  = 500.00
	transportMedioPorM3   = 2.50
	transportMedioFixo    = 125.00
)

// TransportCost computes the sand/material delivery surcharge from the site
// access difficulty and the concrete-mix volume.
//
// The surcharge is deliberately additive: it is applied once after all
// family totals instead of being folded into the complexity multiplier, so
// access difficulty is never double-counted into every priced line.
func TransportCost(answers entities.Answers, metrics entities.Metrics) entities.TransportBreakdown {
	nivel := answers.Acesso()

	var porM3, fixo float64
	switch nivel {
	case entities.AcessoDificil:
		porM3, fixo = transportDificilPorM3, transportDificilFixo
	case entities.AcessoMedio:
		porM3, fixo = transportMedioPorM3, transportMedioFixo
	case entities.AcessoFacil:
		// free delivery
	}

	total := porM3*metrics.M3Massa + fixo
	return entities.TransportBreakdown{
		Nivel:      nivel,
		CustoPorM3: porM3,
		CustoFixo:  fixo,
		M3Massa:    metrics.M3Massa,
		CustoTotal: round2(total),
	}
}
