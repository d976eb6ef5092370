package repository

import (
	"context"
	"sort"
	"strings"

	"piscinas_xpto/internal/domain/entities"
	"piscinas_xpto/internal/usecase/interfaces"
)

// StaticCatalogRepository serves the immutable fallback dataset. It backs
// the catalog facade whenever the primary store is unavailable or empty, and
// doubles as the deterministic fixture catalog in tests.
//
// The dataset is injected at construction; NewStaticCatalogRepository loads
// the built-in default products.
type StaticCatalogRepository struct {
	products []entities.Product
}

var _ interfaces.ICatalogRepository = (*StaticCatalogRepository)(nil)

func NewStaticCatalogRepository() *StaticCatalogRepository {
	return &StaticCatalogRepository{products: defaultProducts()}
}

// NewStaticCatalogRepositoryWith builds a repository over a custom dataset.
func NewStaticCatalogRepositoryWith(products []entities.Product) *StaticCatalogRepository {
	return &StaticCatalogRepository{products: products}
}

func (r *StaticCatalogRepository) ProductsByFamily(_ context.Context, familyName string) ([]entities.Product, error) {
	var out []entities.Product
	for _, p := range r.products {
		if p.IsActive && strings.EqualFold(p.FamilyName, familyName) {
			out = append(out, p)
		}
	}
	sortByCategoryThenName(out)
	return out, nil
}

func (r *StaticCatalogRepository) ProductsByCategory(_ context.Context, categoryID int) ([]entities.Product, error) {
	var out []entities.Product
	for _, p := range r.products {
		if p.IsActive && p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	sortByCategoryThenName(out)
	return out, nil
}

func (r *StaticCatalogRepository) ProductByID(_ context.Context, id int) (entities.Product, error) {
	for _, p := range r.products {
		if p.IsActive && p.ID == id {
			return p, nil
		}
	}
	return entities.Product{}, nil
}

func (r *StaticCatalogRepository) ProductsMatchingConditions(_ context.Context, conditions map[string]string) ([]entities.Product, error) {
	var out []entities.Product
	for _, p := range r.products {
		if p.IsActive && p.MatchesConditions(conditions) {
			out = append(out, p)
		}
	}
	sortByCategoryThenName(out)
	return out, nil
}

func (r *StaticCatalogRepository) ProductByNamePattern(_ context.Context, pattern string) (entities.Product, error) {
	for _, p := range r.products {
		if p.IsActive && strings.EqualFold(p.Name, pattern) {
			return p, nil
		}
	}
	lowered := strings.ToLower(pattern)
	for _, p := range r.products {
		if p.IsActive && strings.Contains(strings.ToLower(p.Name), lowered) {
			return p, nil
		}
	}
	return entities.Product{}, nil
}

func sortByCategoryThenName(products []entities.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].CategoryID != products[j].CategoryID {
			return products[i].CategoryID < products[j].CategoryID
		}
		return products[i].Name < products[j].Name
	})
}
