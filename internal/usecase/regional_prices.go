package usecase

import "math"

// Construction material names as priced by the regional suppliers.
const (
	materialBlocoCofragem = "Bloco Cofragem 50x20x20"
	materialBlocoNormal   = "Bloco Normal 50x20x20"
	materialCimento       = "Cimento Cimpor 32,5R"
	materialMalha         = "Malha Eletrosoldada 6mm"
	materialHeliaco       = "Heliaço 10mm 6m"
	materialMeiaAreia     = "Meia Areia"
	materialMistura       = "Mistura"
	materialBrita         = "Brita nº2"
	materialReboco        = "Reboco Exterior Cinza"
	materialViga          = "Viga"
	materialAbobadilha    = "Abobadilhas 40cm"
)

// regionalCostPrices holds supplier cost prices per locality. Sale price is
// derived from cost with the standard 60% margin factor (× 100/60).
var regionalCostPrices = map[string]map[string]float64{
	"Viseu": {
		materialBlocoCofragem: 0.90, materialBlocoNormal: 0.83, materialCimento: 4.03,
		materialMalha: 2.96, materialHeliaco: 3.28, materialMeiaAreia: 25.00,
		materialMistura: 22.00, materialBrita: 28.70, materialReboco: 2.60,
		materialViga: 2.30, materialAbobadilha: 0.71,
	},
	"Ponte Lima": {
		materialBlocoCofragem: 0.92, materialBlocoNormal: 0.88, materialCimento: 3.85,
		materialMalha: 2.07, materialHeliaco: 3.29, materialMeiaAreia: 25.00,
		materialMistura: 26.25, materialBrita: 25.00, materialReboco: 2.91,
		materialViga: 2.08, materialAbobadilha: 0.66,
	},
	"Barcelos": {
		materialBlocoCofragem: 0.85, materialBlocoNormal: 0.74, materialCimento: 3.98,
		materialMalha: 1.90, materialHeliaco: 2.94, materialMeiaAreia: 24.39,
		materialMistura: 32.52, materialBrita: 24.39, materialReboco: 2.85,
		materialViga: 1.98, materialAbobadilha: 0.63,
	},
	"Santa Maria da Feira": {
		materialBlocoCofragem: 1.12, materialBlocoNormal: 0.95, materialCimento: 3.63,
		materialMalha: 2.66, materialHeliaco: 3.30, materialMeiaAreia: 34.00,
		materialMistura: 31.00, materialBrita: 31.00, materialReboco: 2.30,
		materialViga: 3.00, materialAbobadilha: 0.60,
	},
	"Póvoa de Varzim/Vila do Conde": {
		materialBlocoCofragem: 1.09, materialBlocoNormal: 0.85, materialCimento: 3.98,
		materialMalha: 2.78, materialHeliaco: 3.77, materialMeiaAreia: 27.14,
		materialMistura: 27.14, materialBrita: 27.14, materialReboco: 2.70,
		materialViga: 2.30, materialAbobadilha: 0.71,
	},
	"Viana do Castelo": {
		materialBlocoCofragem: 1.05, materialBlocoNormal: 0.90, materialCimento: 3.95,
		materialMalha: 2.27, materialHeliaco: 3.70, materialMeiaAreia: 26.00,
		materialMistura: 33.50, materialBrita: 26.00, materialReboco: 3.00,
		materialViga: 2.67, materialAbobadilha: 0.58,
	},
	"Famalicão": {
		materialBlocoCofragem: 1.12, materialBlocoNormal: 0.98, materialCimento: 3.62,
		materialMalha: 1.89, materialHeliaco: 3.47, materialMeiaAreia: 39.27,
		materialMistura: 37.55, materialBrita: 37.55, materialReboco: 2.73,
		materialViga: 2.30, materialAbobadilha: 0.70,
	},
	"Ovar/Estarreja": {
		materialBlocoCofragem: 1.34, materialBlocoNormal: 1.10, materialCimento: 3.84,
		materialMalha: 2.72, materialHeliaco: 3.94, materialMeiaAreia: 27.24,
		materialMistura: 27.74, materialBrita: 27.24, materialReboco: 3.25,
		materialViga: 3.00, materialAbobadilha: 0.70,
	},
	"Gaia": {
		materialBlocoCofragem: 1.32, materialBlocoNormal: 1.10, materialCimento: 3.78,
		materialMalha: 3.39, materialHeliaco: 3.80, materialMeiaAreia: 35.00,
		materialMistura: 35.00, materialBrita: 35.00, materialReboco: 2.08,
		materialViga: 3.75, materialAbobadilha: 0.68,
	},
	"Braga": {
		materialBlocoCofragem: 1.13, materialBlocoNormal: 0.89, materialCimento: 3.90,
		materialMalha: 3.36, materialHeliaco: 4.50, materialMeiaAreia: 27.50,
		materialMistura: 27.50, materialBrita: 27.50, materialReboco: 2.92,
		materialViga: 3.25, materialAbobadilha: 0.73,
	},
	"Guimarães": {
		materialBlocoCofragem: 1.08, materialBlocoNormal: 0.95, materialCimento: 4.01,
		materialMalha: 3.36, materialHeliaco: 3.70, materialMeiaAreia: 35.00,
		materialMistura: 35.00, materialBrita: 34.00, materialReboco: 2.70,
		materialViga: 2.30, materialAbobadilha: 0.75,
	},
	"Porto/Maia/Matosinhos": {
		materialBlocoCofragem: 1.32, materialBlocoNormal: 1.10, materialCimento: 3.78,
		materialMalha: 3.39, materialHeliaco: 3.80, materialMeiaAreia: 35.00,
		materialMistura: 35.00, materialBrita: 35.00, materialReboco: 2.08,
		materialViga: 3.75, materialAbobadilha: 0.68,
	},
}

// localityGroups maps individual localities that share a supplier price
// region onto their group key.
var localityGroups = map[string]string{
	"Póvoa de Varzim": "Póvoa de Varzim/Vila do Conde",
	"Vila do Conde":   "Póvoa de Varzim/Vila do Conde",
	"Ovar":            "Ovar/Estarreja",
	"Estarreja":       "Ovar/Estarreja",
	"Porto":           "Porto/Maia/Matosinhos",
	"Maia":            "Porto/Maia/Matosinhos",
	"Matosinhos":      "Porto/Maia/Matosinhos",
}

// regionalSalePrice resolves the sale price of a construction material for a
// locality. An unknown locality prices at the mean across all regions, so a
// quote never comes out without construction costs.
func regionalSalePrice(localidade, material string) float64 {
	key := localidade
	if group, ok := localityGroups[key]; ok {
		key = group
	}

	var cost float64
	if region, ok := regionalCostPrices[key]; ok {
		cost = region[material]
	} else {
		var total float64
		var count int
		for _, region := range regionalCostPrices {
			if price, ok := region[material]; ok {
				total += price
				count++
			}
		}
		if count > 0 {
			cost = total / float64(count)
		}
	}

	return round2(cost * 100 / 60)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
