package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"piscinas_xpto/internal/domain/entities"
	"piscinas_xpto/internal/domain/pricing"
	"piscinas_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBudgetNotFound    = errors.New("budget not found")
	ErrInvalidBudgetID   = errors.New("invalid budget id")
	ErrInvalidDimensions = errors.New("invalid pool dimensions")
)

// IBudgetUseCase exposes the budget engine operations.

type IBudgetUseCase interface {
	GenerateBudget(ctx context.Context, clientData map[string]string, dims entities.Dimensions, answers entities.Answers) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	SwapFamily(family entities.Family, selectedKey, previousKey string) entities.Family
}

type BudgetUseCase struct {
	catalog interfaces.ICatalogRepository
	budgets interfaces.IBudgetRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(catalog interfaces.ICatalogRepository, budgets interfaces.IBudgetRepository) *BudgetUseCase {
	return &BudgetUseCase{catalog: catalog, budgets: budgets}
}

// GenerateBudget runs the full pricing pipeline: derived metrics, complexity
// multiplier and transport surcharge, one selector per family, the per-family
// swap directives carried in the answers, and finally the totals. The priced
// document is persisted before it is returned.
func (u *BudgetUseCase) GenerateBudget(ctx context.Context, clientData map[string]string, dims entities.Dimensions, answers entities.Answers) (entities.Budget, error) {
	if !dims.Valid() {
		return entities.Budget{}, ErrInvalidDimensions
	}
	if answers == nil {
		answers = entities.Answers{}
	}

	metrics := pricing.ComputeMetrics(dims)
	multiplier, breakdown := pricing.ComplexityMultiplier(answers, dims)
	transport := pricing.TransportCost(answers, metrics)

	families := make(map[entities.FamilyKey]entities.Family)

	filtracao, err := u.selectFiltration(ctx, answers, metrics)
	if err != nil {
		return entities.Budget{}, err
	}
	families[entities.FamilyFiltracao] = sortByKeyPrefix(filtracao, filtracaoOrder)

	recirculacao, err := u.selectRecirculation(ctx, answers, dims)
	if err != nil {
		return entities.Budget{}, err
	}
	families[entities.FamilyRecirculacao] = sortByKeyPrefix(recirculacao, recirculacaoOrder)

	tratamento, err := u.selectTreatment(ctx, answers, metrics)
	if err != nil {
		return entities.Budget{}, err
	}
	families[entities.FamilyTratamentoAgua] = tratamento

	revestimento, err := u.selectCoating(ctx, answers, dims, metrics)
	if err != nil {
		return entities.Budget{}, err
	}
	families[entities.FamilyRevestimento] = revestimento

	aquecimento, err := u.selectHeating(ctx, metrics)
	if err != nil {
		return entities.Budget{}, err
	}
	families[entities.FamilyAquecimento] = aquecimento

	families[entities.FamilyConstrucao] = selectConstruction(answers, dims, metrics)
	families[entities.FamilyConstrucaoLaje] = selectSlab(answers)

	// Swap directives arrive as "<family>_selected" / "<family>_previous"
	// answer pairs; families without a directive pass through untouched.
	for key, family := range families {
		if len(family) == 0 {
			delete(families, key)
			continue
		}
		selected := answers.String(string(key)+"_selected", "")
		previous := answers.String(string(key)+"_previous", "")
		families[key] = SwapPreservingPosition(family, selected, previous)
	}

	familyTotals := make(map[entities.FamilyKey]float64, len(families))
	var subtotal float64
	for key, family := range families {
		var total float64
		for _, item := range family {
			if item.CountsTowardsTotal() {
				total += item.Price * item.Quantity
			}
		}
		familyTotals[key] = round2(total * multiplier)
		subtotal += familyTotals[key]
	}

	now := time.Now().UTC()
	budget := entities.Budget{
		ID:                  uuid.NewString(),
		ClientData:          clientData,
		Dimensions:          dims,
		Metrics:             metrics,
		Answers:             answers,
		Multiplier:          multiplier,
		MultiplierBreakdown: breakdown,
		Transport:           transport,
		Families:            families,
		FamilyDisplayMap:    entities.FamilyDisplayNames,
		FamilyTotals:        familyTotals,
		SubtotalProducts:    round2(subtotal),
		TransportCost:       transport.CustoTotal,
		TotalPrice:          round2(subtotal + transport.CustoTotal),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	return u.budgets.Create(ctx, budget)
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	budget, err := u.budgets.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if budget.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return budget, nil
}

// SwapFamily exposes the swap transform for already-rendered families.
func (u *BudgetUseCase) SwapFamily(family entities.Family, selectedKey, previousKey string) entities.Family {
	return SwapPreservingPosition(family, selectedKey, previousKey)
}

// Display order inside the filtration and recirculation families, by line
// item key prefix. Unknown prefixes sink to the end, keeping their relative
// order.
var (
	filtracaoOrder    = []string{"filter", "valve", "pump", "vidro", "quadro"}
	recirculacaoOrder = []string{"skimmer", "boca_impulsao", "tomada_aspiracao", "passamuros", "regulador_nivel", "regulador_pack", "ralo_fundo", "iluminacao"}
)

func sortByKeyPrefix(family entities.Family, order []string) entities.Family {
	rank := func(key string) int {
		for i, prefix := range order {
			if strings.HasPrefix(key, prefix) {
				return i
			}
		}
		return len(order)
	}
	sort.SliceStable(family, func(i, j int) bool {
		return rank(family[i].Key) < rank(family[j].Key)
	})
	return family
}
