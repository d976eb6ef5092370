package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"piscinas_xpto/internal/adapter/persistence/repository"
	"piscinas_xpto/internal/domain/entities"
)

// sandCapacityKg maps the Aster filter model (detected in the product name)
// to the mass of filtering media it holds.
var sandCapacityKg = map[string]float64{
	"D.450": 70,
	"D.500": 90,
	"D.600": 125,
	"D.750": 210,
	"D.900": 515,
}

const (
	glassBagKg = 20
	sandBagKg  = 25
	// Glass media packs denser than sand, so converting a sand load needs
	// only 75% of the mass.
	glassConversionFactor = 0.75
)

// selectFiltration assembles the filtration family: pump (plus the
// variable-speed alternative on single-phase installs), selector valve pair,
// the smallest sufficient filter for the machine-room location, and the
// filtering media split (glass included, sand as the cheaper alternative).
func (u *BudgetUseCase) selectFiltration(ctx context.Context, answers entities.Answers, metrics entities.Metrics) (entities.Family, error) {
	var family entities.Family

	pumps, err := u.suitablePumps(ctx, metrics.M3H, answers.Luz())
	if err != nil {
		return nil, err
	}

	var mainPumpKey string
	for i, pump := range pumps {
		quantity := 1.0
		if cap := pump.product.Capacidade(); cap > 0 && metrics.M3H > 0 {
			quantity = math.Ceil(metrics.M3H / cap)
		}
		if quantity < 1 {
			quantity = 1
		}

		key := fmt.Sprintf("pump_%02d_%d", i+1, pump.product.ID)
		item := entities.LineItem{
			Key:           key,
			Name:          pump.product.Name,
			Price:         pump.product.BasePrice,
			Quantity:      quantity,
			Unit:          pump.product.Unit,
			Role:          entities.RoleIncluido,
			Reasoning:     fmt.Sprintf("Bomba padrão: %gm³/h (%s)", pump.product.Capacidade(), answers.Luz()),
			CanChangeType: true,
			ProductID:     pump.product.ID,
		}
		// Variable-speed models are always the alternative, even when no
		// standard pump covers the flow.
		if pump.variableSpeed {
			item.Name = pump.product.Name + " (ALTERNATIVO)"
			item.Role = entities.RoleAlternativo
			item.AlternativeTo = mainPumpKey
			item.Reasoning = fmt.Sprintf("Eficiência energética: %gm³/h (velocidade variável)", pump.product.Capacidade())
		} else if mainPumpKey == "" {
			mainPumpKey = key
		}
		family = append(family, item)
	}

	valves, err := u.suitableValves(ctx, answers.Bool("domotica"))
	if err != nil {
		return nil, err
	}
	var mainValveKey string
	for i, valve := range valves {
		key := fmt.Sprintf("valve_%02d_%d", i+1, valve.product.ID)
		item := entities.LineItem{
			Key:           key,
			Name:          valve.product.Name,
			Price:         valve.product.BasePrice,
			Quantity:      1,
			Unit:          valve.product.Unit,
			Role:          valve.role,
			Reasoning:     valve.reasoning,
			CanChangeType: true,
			ProductID:     valve.product.ID,
		}
		if valve.role == entities.RoleIncluido && mainValveKey == "" {
			mainValveKey = key
		}
		if valve.role == entities.RoleAlternativo {
			item.Name = valve.product.Name + " (ALTERNATIVO)"
			item.AlternativeTo = mainValveKey
		}
		family = append(family, item)
	}

	filterItems, err := u.selectFilterAndMedia(ctx, answers.Localizacao(), metrics.M3H)
	if err != nil {
		return nil, err
	}
	family = append(family, filterItems...)

	return dedupeFamily(family), nil
}

// pumpChoice tags a selected pump with its drive kind so the line-item role
// does not depend on list position.
type pumpChoice struct {
	product       entities.Product
	variableSpeed bool
}

// suitablePumps returns the smallest sufficient standard pump for the phase,
// followed by the smallest sufficient variable-speed pump when the install
// is single-phase (variable-speed models only exist in mono).
func (u *BudgetUseCase) suitablePumps(ctx context.Context, requiredM3H float64, phase entities.Luz) ([]pumpChoice, error) {
	products, err := u.catalog.ProductsByFamily(ctx, repository.FamiliaFiltracao)
	if err != nil {
		return nil, err
	}

	var standard, variable []entities.Product
	for _, p := range products {
		if !strings.EqualFold(p.CategoryName, "Bomba de Filtração") {
			continue
		}
		if p.Capacidade() < requiredM3H {
			continue
		}
		if strings.EqualFold(p.TextAttribute("Tipo Bomba"), "velocidade_variavel") {
			variable = append(variable, p)
		} else {
			standard = append(standard, p)
		}
	}
	byCapacity := func(list []entities.Product) {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Capacidade() < list[j].Capacidade() })
	}
	byCapacity(standard)
	byCapacity(variable)

	var out []pumpChoice
	for _, p := range standard {
		if strings.Contains(strings.ToLower(p.TextAttribute("Fase")), string(phase)) {
			out = append(out, pumpChoice{product: p})
			break
		}
	}
	if phase == entities.LuzMonofasica {
		for _, p := range variable {
			if strings.Contains(strings.ToLower(p.TextAttribute("Fase")), string(entities.LuzMonofasica)) {
				out = append(out, pumpChoice{product: p, variableSpeed: true})
				break
			}
		}
	}
	return out, nil
}

type valveChoice struct {
	product   entities.Product
	role      entities.ItemRole
	reasoning string
}

// suitableValves pairs the manual and automatic selector valves, flipping
// which one is included when the install carries home automation. When only
// one kind exists in the catalog it becomes the principal regardless.
func (u *BudgetUseCase) suitableValves(ctx context.Context, hasDomotics bool) ([]valveChoice, error) {
	products, err := u.catalog.ProductsByFamily(ctx, repository.FamiliaFiltracao)
	if err != nil {
		return nil, err
	}

	var manual, auto []entities.Product
	for _, p := range products {
		if !strings.EqualFold(p.CategoryName, "Válvulas Seletoras") {
			continue
		}
		name := strings.ToLower(p.Name)
		switch {
		case strings.Contains(name, "manual"):
			manual = append(manual, p)
		case strings.Contains(name, "iwash"), strings.Contains(name, "automática"), strings.Contains(name, "automatica"):
			auto = append(auto, p)
		}
	}

	var out []valveChoice
	if hasDomotics {
		if len(auto) > 0 {
			for _, p := range auto {
				out = append(out, valveChoice{p, entities.RoleIncluido, "Válvula automática para integração domótica"})
			}
			for _, p := range manual {
				out = append(out, valveChoice{p, entities.RoleAlternativo, "Alternativa manual"})
			}
		} else {
			for _, p := range manual {
				out = append(out, valveChoice{p, entities.RoleIncluido, "Válvula manual padrão (sem automática disponível)"})
			}
		}
		return out, nil
	}

	if len(manual) > 0 {
		for _, p := range manual {
			out = append(out, valveChoice{p, entities.RoleIncluido, "Válvula manual padrão"})
		}
		for _, p := range auto {
			out = append(out, valveChoice{p, entities.RoleAlternativo, "Upgrade automático alternativo"})
		}
	} else {
		for _, p := range auto {
			out = append(out, valveChoice{p, entities.RoleIncluido, "Válvula automática (sem manual disponível)"})
		}
	}
	return out, nil
}

// selectFilterAndMedia picks the smallest filter that covers the required
// flow for the machine-room location and, for sand filters with a known
// media capacity, derives the glass/sand media items: the sand load splits
// 70% fine / 30% coarse, glass replaces sand at 75% of the mass, glass ships
// in 20kg bags and sand in 25kg bags.
func (u *BudgetUseCase) selectFilterAndMedia(ctx context.Context, location string, requiredM3H float64) ([]entities.LineItem, error) {
	candidates, err := u.catalog.ProductsMatchingConditions(ctx, map[string]string{"location": location})
	if err != nil {
		return nil, err
	}

	var filters []entities.Product
	for _, p := range candidates {
		if p.CategoryName != "Filtros de Areia" && p.CategoryName != "Filtros de Cartucho" {
			continue
		}
		if p.Capacidade() >= requiredM3H {
			filters = append(filters, p)
		}
	}
	if len(filters) == 0 {
		return nil, nil
	}
	sort.SliceStable(filters, func(i, j int) bool { return filters[i].Capacidade() < filters[j].Capacidade() })

	best := filters[0]
	filterKey := fmt.Sprintf("filter_01_%d", best.ID)
	items := []entities.LineItem{{
		Key:           filterKey,
		Name:          best.Name,
		Price:         best.BasePrice,
		Quantity:      1,
		Unit:          best.Unit,
		Role:          entities.RoleIncluido,
		Reasoning:     fmt.Sprintf("Filtro selecionado para piscina %s com capacidade %g m³/h", location, requiredM3H),
		CanChangeType: true,
		ProductID:     best.ID,
	}}

	var mediaCapacityKg float64
	for model, kg := range sandCapacityKg {
		if strings.Contains(best.Name, model) {
			mediaCapacityKg = kg
			break
		}
	}
	if mediaCapacityKg == 0 {
		return items, nil
	}

	media, err := u.catalog.ProductsByCategory(ctx, repository.CategoriaVidrosVisores)
	if err != nil {
		return nil, err
	}
	var vidroFino, vidroGrosso, areiaFina, areiaGrossa entities.Product
	for _, p := range media {
		switch {
		case strings.Contains(p.Name, "0,4-1,0mm"):
			vidroFino = p
		case strings.Contains(p.Name, "1,5-3,0mm") || strings.Contains(p.Name, "1.5-3.0mm"):
			vidroGrosso = p
		case strings.Contains(p.Name, "0,6-1,2mm") && strings.Contains(p.Name, "Areia"):
			areiaFina = p
		case strings.Contains(p.Name, "Grossa") && strings.Contains(p.Name, "Areia"):
			areiaGrossa = p
		}
	}
	if vidroFino.IsZero() || vidroGrosso.IsZero() || areiaFina.IsZero() || areiaGrossa.IsZero() {
		return items, nil
	}

	areiaFinaKg := mediaCapacityKg * 0.7
	areiaGrossaKg := mediaCapacityKg * 0.3
	vidroFinoBags := math.Ceil(areiaFinaKg * glassConversionFactor / glassBagKg)
	vidroGrossoBags := math.Ceil(areiaGrossaKg * glassConversionFactor / glassBagKg)
	areiaFinaBags := math.Ceil(areiaFinaKg / sandBagKg)
	areiaGrossaBags := math.Ceil(areiaGrossaKg / sandBagKg)

	vidroFinoKey := fmt.Sprintf("vidro_fino_%d_%s", vidroFino.ID, filterKey)
	vidroGrossoKey := fmt.Sprintf("vidro_grosso_%d_%s", vidroGrosso.ID, filterKey)

	items = append(items,
		entities.LineItem{
			Key:       vidroFinoKey,
			Name:      vidroFino.Name,
			Price:     vidroFino.BasePrice,
			Quantity:  vidroFinoBags,
			Unit:      vidroFino.Unit,
			Role:      entities.RoleIncluido,
			Reasoning: fmt.Sprintf("Vidro filtrante fino: %g sacos (70%% do total de vidro)", vidroFinoBags),
			ProductID: vidroFino.ID,
		},
		entities.LineItem{
			Key:           fmt.Sprintf("areia_fina_%d_%s", areiaFina.ID, filterKey),
			Name:          areiaFina.Name,
			Price:         areiaFina.BasePrice,
			Quantity:      areiaFinaBags,
			Unit:          areiaFina.Unit,
			Role:          entities.RoleAlternativo,
			Reasoning:     fmt.Sprintf("Alternativa ao vidro filtrante fino: %g sacos (areia fina)", areiaFinaBags),
			AlternativeTo: vidroFinoKey,
			ProductID:     areiaFina.ID,
		},
		entities.LineItem{
			Key:       vidroGrossoKey,
			Name:      vidroGrosso.Name,
			Price:     vidroGrosso.BasePrice,
			Quantity:  vidroGrossoBags,
			Unit:      vidroGrosso.Unit,
			Role:      entities.RoleIncluido,
			Reasoning: fmt.Sprintf("Vidro filtrante grosso: %g sacos (30%% do total de vidro)", vidroGrossoBags),
			ProductID: vidroGrosso.ID,
		},
		entities.LineItem{
			Key:           fmt.Sprintf("areia_grossa_%d_%s", areiaGrossa.ID, filterKey),
			Name:          areiaGrossa.Name,
			Price:         areiaGrossa.BasePrice,
			Quantity:      areiaGrossaBags,
			Unit:          areiaGrossa.Unit,
			Role:          entities.RoleAlternativo,
			Reasoning:     fmt.Sprintf("Alternativa ao vidro filtrante grosso: %g sacos (areia grossa)", areiaGrossaBags),
			AlternativeTo: vidroGrossoKey,
			ProductID:     areiaGrossa.ID,
		},
	)
	return items, nil
}

// dedupeFamily drops repeated rows, by product id when present, otherwise by
// the (name, price, unit, role) signature. First occurrence wins so display
// order is preserved.
func dedupeFamily(family entities.Family) entities.Family {
	type signature struct {
		name  string
		price float64
		unit  string
		role  entities.ItemRole
	}
	seenIDs := make(map[int]bool)
	seenSigs := make(map[signature]bool)

	out := make(entities.Family, 0, len(family))
	for _, item := range family {
		if item.ProductID != 0 {
			if seenIDs[item.ProductID] {
				continue
			}
			seenIDs[item.ProductID] = true
		} else {
			sig := signature{item.Name, item.Price, item.Unit, item.Role}
			if seenSigs[sig] {
				continue
			}
			seenSigs[sig] = true
		}
		out = append(out, item)
	}
	return out
}
