package repository

import "piscinas_xpto/internal/domain/entities"

// Category ids of the default dataset. They mirror the seeded catalog
// schema, so the primary store and the fallback agree on category lookups.
const (
	CategoriaBombaFiltracao    = 1
	CategoriaFiltrosAreia      = 2
	CategoriaFiltrosCartucho   = 3
	CategoriaValvulasSeletoras = 4
	CategoriaVidrosVisores     = 5
	CategoriaSkimmers          = 6
	CategoriaBocasImpulsao     = 7
	CategoriaTomadasAspiracao  = 8
	CategoriaPassamuros        = 9
	CategoriaReguladoresNivel  = 10
	CategoriaRalosFundo        = 11
	CategoriaIluminacao        = 12
	CategoriaSal               = 13
	CategoriaDoseadores        = 14
	CategoriaCloradoresSalinos = 15
	CategoriaSistemasUV        = 16
	CategoriaAcessoriosTrat    = 17
	CategoriaTelasArmadas      = 18
	CategoriaPerfisRemates     = 19
	CategoriaCeramica          = 20
	CategoriaBombaCalor        = 21
)

// Family names as stored in the catalog.
const (
	FamiliaFiltracao      = "Filtração"
	FamiliaRecirculacao   = "Recirculação e Iluminação"
	FamiliaTratamentoAgua = "Tratamento de Água"
	FamiliaRevestimento   = "Revestimento"
	FamiliaAquecimento    = "Aquecimento"
)

func numAttr(v float64, unit string) entities.AttributeValue {
	return entities.AttributeValue{Numeric: &v, Unit: unit}
}

func textAttr(s string) entities.AttributeValue {
	return entities.AttributeValue{Text: s}
}

func pump(id int, name string, price, capacidade float64, fase, tipo string) entities.Product {
	return entities.Product{
		ID: id, Name: name, Brand: "Astralpool",
		CategoryID: CategoriaBombaFiltracao, CategoryName: "Bomba de Filtração", FamilyName: FamiliaFiltracao,
		BasePrice: price, Unit: "un", IsActive: true,
		Attributes: map[string]entities.AttributeValue{
			"Capacidade": numAttr(capacidade, "m3/h"),
			"Fase":       textAttr(fase),
			"Tipo Bomba": textAttr(tipo),
		},
	}
}

func sandFilter(id int, model string, price, capacidade float64) entities.Product {
	return entities.Product{
		ID: id, Name: "Filtro Aster Astralpool " + model, Brand: "Astralpool",
		CategoryID: CategoriaFiltrosAreia, CategoryName: "Filtros de Areia", FamilyName: FamiliaFiltracao,
		BasePrice: price, Unit: "un", IsActive: true,
		Attributes: map[string]entities.AttributeValue{"Capacidade": numAttr(capacidade, "m3/h")},
		Rules:      []entities.SelectionRule{{ConditionType: "location", ConditionValue: "exterior"}},
	}
}

func cartridgeFilter(id int, model string, price, capacidade float64) entities.Product {
	return entities.Product{
		ID: id, Name: "Filtro de Cartucho Astralpool " + model, Brand: "Astralpool",
		CategoryID: CategoriaFiltrosCartucho, CategoryName: "Filtros de Cartucho", FamilyName: FamiliaFiltracao,
		BasePrice: price, Unit: "un", IsActive: true,
		Attributes: map[string]entities.AttributeValue{"Capacidade": numAttr(capacidade, "m3/h")},
		Rules:      []entities.SelectionRule{{ConditionType: "location", ConditionValue: "interior"}},
	}
}

func coded(id int, code string, categoryID int, category, family, name, brand string, price float64, unit string) entities.Product {
	p := simple(id, categoryID, category, family, name, brand, price, unit)
	p.Code = code
	return p
}

func simple(id, categoryID int, category, family, name, brand string, price float64, unit string) entities.Product {
	return entities.Product{
		ID: id, Name: name, Brand: brand,
		CategoryID: categoryID, CategoryName: category, FamilyName: family,
		BasePrice: price, Unit: unit, IsActive: true,
	}
}

// defaultProducts is the static fallback catalog. Prices are list prices in
// EUR; the dataset intentionally covers every product name pattern the
// family selectors search for.
func defaultProducts() []entities.Product {
	products := []entities.Product{
		// Bombas de filtração: standard mono/tri plus velocidade variável.
		pump(101, "Bomba Victoria Plus Silent 8 m3/h Monofásica", 388.00, 8, "monofasica", "standard"),
		pump(102, "Bomba Victoria Plus Silent 11 m3/h Monofásica", 428.00, 11, "monofasica", "standard"),
		pump(103, "Bomba Victoria Plus Silent 16 m3/h Monofásica", 492.00, 16, "monofasica", "standard"),
		pump(104, "Bomba Victoria Plus Silent 21 m3/h Monofásica", 565.00, 21, "monofasica", "standard"),
		pump(105, "Bomba Victoria Plus Silent 26 m3/h Monofásica", 648.00, 26, "monofasica", "standard"),
		pump(106, "Bomba Victoria Plus Silent 16 m3/h Trifásica", 515.00, 16, "trifasica", "standard"),
		pump(107, "Bomba Victoria Plus Silent 21 m3/h Trifásica", 588.00, 21, "trifasica", "standard"),
		pump(108, "Bomba Victoria Plus Silent 26 m3/h Trifásica", 672.00, 26, "trifasica", "standard"),
		pump(109, "Bomba Velocidade Variável Viron P320 12 m3/h Monofásica", 890.00, 12, "monofasica", "velocidade_variavel"),
		pump(110, "Bomba Velocidade Variável Viron P600 22 m3/h Monofásica", 1150.00, 22, "monofasica", "velocidade_variavel"),

		// Filtros de areia (exterior) e de cartucho (interior).
		sandFilter(121, "D.450", 310.00, 8),
		sandFilter(122, "D.500", 365.00, 10),
		sandFilter(123, "D.600", 455.00, 14),
		sandFilter(124, "D.750", 690.00, 21),
		sandFilter(125, "D.900", 1150.00, 30),
		cartridgeFilter(131, "C.450", 295.00, 8),
		cartridgeFilter(132, "C.600", 410.00, 14),
		cartridgeFilter(133, "C.750", 620.00, 21),

		// Válvulas seletoras.
		simple(141, CategoriaValvulasSeletoras, "Válvulas Seletoras", FamiliaFiltracao,
			"Válvula Seletora Manual Astralpool 1 1/2\"", "Astralpool", 78.00, "un"),
		simple(142, CategoriaValvulasSeletoras, "Válvulas Seletoras", FamiliaFiltracao,
			"Válvula Seletora Automática iWash", "Astralpool", 520.00, "un"),

		// Vidro filtrante e areias.
		simple(151, CategoriaVidrosVisores, "Vidros e Visores", FamiliaFiltracao,
			"Vidro Filtrante 0,4-1,0mm Saco 20kg", "Astralpool", 18.50, "saco"),
		simple(152, CategoriaVidrosVisores, "Vidros e Visores", FamiliaFiltracao,
			"Vidro Filtrante 1,5-3,0mm Saco 20kg", "Astralpool", 18.50, "saco"),
		simple(153, CategoriaVidrosVisores, "Vidros e Visores", FamiliaFiltracao,
			"Areia Fina 0,6-1,2mm Saco 25kg", "Sibelco", 6.80, "saco"),
		simple(154, CategoriaVidrosVisores, "Vidros e Visores", FamiliaFiltracao,
			"Areia Grossa 3,0-5,0mm Saco 25kg", "Sibelco", 6.80, "saco"),

		// Skimmers.
		simple(201, CategoriaSkimmers, "Skimmers", FamiliaRecirculacao,
			"Skimmer Linha de água Branco Liner", "Astralpool", 64.00, "un"),
		simple(202, CategoriaSkimmers, "Skimmers", FamiliaRecirculacao,
			"Skimmer Linha de água Branco Betão", "Astralpool", 58.00, "un"),

		// Bocas de impulsão.
		simple(211, CategoriaBocasImpulsao, "Bocas de Impulsão", FamiliaRecirculacao,
			"Boca de Impulsão de parede Astralpool Liner", "Astralpool", 14.50, "un"),
		simple(212, CategoriaBocasImpulsao, "Bocas de Impulsão", FamiliaRecirculacao,
			"Boca de Impulsão de parede Astralpool Betão", "Astralpool", 12.90, "un"),
		simple(213, CategoriaBocasImpulsao, "Bocas de Impulsão", FamiliaRecirculacao,
			"Boca de Impulsão de fundo Astralpool Liner", "Astralpool", 16.80, "un"),
		simple(214, CategoriaBocasImpulsao, "Bocas de Impulsão", FamiliaRecirculacao,
			"Boca de Impulsão de fundo Astralpool Betão", "Astralpool", 15.20, "un"),

		// Tomadas de aspiração.
		simple(221, CategoriaTomadasAspiracao, "Tomadas de Aspiração", FamiliaRecirculacao,
			"Tomada de Aspiração Astralpool Liner", "Astralpool", 18.40, "un"),
		simple(222, CategoriaTomadasAspiracao, "Tomadas de Aspiração", FamiliaRecirculacao,
			"Tomada de Aspiração Astralpool Betão", "Astralpool", 16.10, "un"),

		// Passamuros.
		simple(231, CategoriaPassamuros, "Passamuros", FamiliaRecirculacao,
			"Passamuros Astralpool Liner", "Astralpool", 21.30, "un"),
		simple(232, CategoriaPassamuros, "Passamuros", FamiliaRecirculacao,
			"Passamuros Astralpool Betão", "Astralpool", 19.60, "un"),

		// Regulador de nível.
		simple(241, CategoriaReguladoresNivel, "Reguladores de Nível", FamiliaRecirculacao,
			"Regulador de Nível Astralpool", "Astralpool", 96.00, "un"),

		// Ralos de fundo.
		simple(251, CategoriaRalosFundo, "Ralos de Fundo", FamiliaRecirculacao,
			"Ralo de fundo Kripsol Liner", "Kripsol", 32.50, "un"),
		simple(252, CategoriaRalosFundo, "Ralos de Fundo", FamiliaRecirculacao,
			"Ralo de fundo Kripsol Betão", "Kripsol", 29.90, "un"),

		// Sal.
		simple(301, CategoriaSal, "Sal", FamiliaTratamentoAgua,
			"Sal Granulado Refinado", "Salexpor", 9.90, "saco"),

		// Doseadores.
		simple(311, CategoriaDoseadores, "Doseadores", FamiliaTratamentoAgua,
			"Doseador Automático RX Astralpool", "Astralpool", 740.00, "un"),

		// Cloradores salinos.
		simple(321, CategoriaCloradoresSalinos, "Cloradores Salinos", FamiliaTratamentoAgua,
			"Clorador Salino Inverclear 40m3", "Idegis", 1090.00, "un"),
		simple(322, CategoriaCloradoresSalinos, "Cloradores Salinos", FamiliaTratamentoAgua,
			"Clorador Salino Inverclear 60m3", "Idegis", 1290.00, "un"),
		simple(323, CategoriaCloradoresSalinos, "Cloradores Salinos", FamiliaTratamentoAgua,
			"Clorador Salino Inverclear 90m3", "Idegis", 1590.00, "un"),
		simple(324, CategoriaCloradoresSalinos, "Cloradores Salinos", FamiliaTratamentoAgua,
			"Clorador Salino Mr. Pure 40m3 com Controlo de PH", "Idegis", 1450.00, "un"),
		simple(325, CategoriaCloradoresSalinos, "Cloradores Salinos", FamiliaTratamentoAgua,
			"Clorador Salino Mr. Pure 60m3 com Controlo de PH", "Idegis", 1690.00, "un"),
		simple(326, CategoriaCloradoresSalinos, "Cloradores Salinos", FamiliaTratamentoAgua,
			"Clorador Salino Mr. Pure 90m3 com Controlo de PH", "Idegis", 1990.00, "un"),

		// Sistemas UV.
		simple(331, CategoriaSistemasUV, "Sistemas UV", FamiliaTratamentoAgua,
			"UV-C Titan 15m3/h", "Blue Lagoon", 620.00, "un"),
		simple(332, CategoriaSistemasUV, "Sistemas UV", FamiliaTratamentoAgua,
			"UV-C Titan 25m3/h", "Blue Lagoon", 780.00, "un"),
		simple(333, CategoriaSistemasUV, "Sistemas UV", FamiliaTratamentoAgua,
			"UV-C Titan 40m3/h", "Blue Lagoon", 960.00, "un"),

		// Acessórios de tratamento.
		simple(341, CategoriaAcessoriosTrat, "Acessórios", FamiliaTratamentoAgua,
			"Proteção Anódica", "Idegis", 85.00, "un"),

		// Telas armadas.
		simple(401, CategoriaTelasArmadas, "Telas Armadas", FamiliaRevestimento,
			"Revestimento Tela Armada 3D Unicolor CGT Vg 1", "CGT", 780.00, "rolo"),
		simple(402, CategoriaTelasArmadas, "Telas Armadas", FamiliaRevestimento,
			"Revestimento Tela Armada 3D CGT Touch", "CGT", 940.00, "rolo"),
		simple(403, CategoriaTelasArmadas, "Telas Armadas", FamiliaRevestimento,
			"Revestimento Tela Armada Lisa CGT Standard", "CGT", 640.00, "rolo"),

		// Perfis e remates.
		simple(411, CategoriaPerfisRemates, "Perfis e Remates", FamiliaRevestimento,
			"Perfil Horizontal 2m", "CGT", 6.40, "un"),
		simple(412, CategoriaPerfisRemates, "Perfis e Remates", FamiliaRevestimento,
			"Perfil Vertical 2m", "CGT", 6.90, "un"),
		simple(413, CategoriaPerfisRemates, "Perfis e Remates", FamiliaRevestimento,
			"Chapa Colaminada 2m", "CGT", 14.20, "un"),

		// Cerâmica.
		coded(431, "IMPER", CategoriaCeramica, "Cerâmica", FamiliaRevestimento,
			"Impermeabilização de Suporte Cerâmico", "Weber", 28.00, "m2"),
		coded(432, "CUSTOM", CategoriaCeramica, "Cerâmica", FamiliaRevestimento,
			"Item Cerâmico Personalizado", "", 0.00, "m2"),

		// Bombas de calor.
		heatPump(501, "Bomba de Calor Mr. Comfort 90M", "Mr. Comfort", 1890.00),
		heatPump(502, "Bomba de Calor Mr. Comfort 130M", "Mr. Comfort", 2290.00),
		heatPump(503, "Bomba de Calor Mr. Comfort 160M", "Mr. Comfort", 2690.00),
		heatPump(504, "Bomba de Calor Mr. Comfort 200M", "Mr. Comfort", 3190.00),
		heatPump(505, "Bomba de Calor Mr. Comfort 240M", "Mr. Comfort", 3690.00),
		heatPump(511, "Bomba de Calor Fairland InverX20 X20-14", "Fairland", 3290.00),
		heatPump(512, "Bomba de Calor Fairland InverX20 X20-18", "Fairland", 3790.00),
		heatPump(513, "Bomba de Calor Fairland InverX20 X20-22", "Fairland", 4290.00),
		heatPump(514, "Bomba de Calor Fairland InverX20 X20-26", "Fairland", 4890.00),
	}

	products = append(products, lightingProducts()...)
	return products
}

func heatPump(id int, name, brand string, price float64) entities.Product {
	return simple(id, CategoriaBombaCalor, "Bomba de Calor", FamiliaAquecimento, name, brand, price, "un")
}

// lightingProducts covers the full size × colour grid the lighting selector
// can ask for.
func lightingProducts() []entities.Product {
	type variant struct {
		id    int
		name  string
		price float64
	}
	variants := []variant{
		{261, "Projector Led Luz Branca de 50mm", 92.00},
		{262, "Projector Led Luz Branca de 100mm", 128.00},
		{263, "Projector Led Luz Branca de 170mm", 176.00},
		{264, "Projector Led Luz Branco Adaptável de 50mm", 118.00},
		{265, "Projector Led Luz Branco Adaptável de 100mm", 156.00},
		{266, "Projector Led Luz Branco Adaptável de 170mm", 204.00},
		{267, "Projector Led Luz RGB de 50mm", 134.00},
		{268, "Projector Led Luz RGB de 100mm", 172.00},
		{269, "Projector Led Luz RGB de 170mm", 228.00},
	}
	out := make([]entities.Product, 0, len(variants))
	for _, v := range variants {
		out = append(out, simple(v.id, CategoriaIluminacao, "Iluminação", FamiliaRecirculacao,
			v.name, "Astralpool", v.price, "un"))
	}
	return out
}
