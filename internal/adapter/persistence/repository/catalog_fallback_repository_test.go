package repository

import (
	"context"
	"errors"
	"testing"

	"piscinas_xpto/internal/domain/entities"
	"piscinas_xpto/internal/usecase/interfaces"
)

// failingCatalog always reports the primary store as unreachable.
type failingCatalog struct{}

var _ interfaces.ICatalogRepository = failingCatalog{}

func (failingCatalog) ProductsByFamily(context.Context, string) ([]entities.Product, error) {
	return nil, errors.New("dynamo unreachable")
}

func (failingCatalog) ProductsByCategory(context.Context, int) ([]entities.Product, error) {
	return nil, errors.New("dynamo unreachable")
}

func (failingCatalog) ProductByID(context.Context, int) (entities.Product, error) {
	return entities.Product{}, errors.New("dynamo unreachable")
}

func (failingCatalog) ProductsMatchingConditions(context.Context, map[string]string) ([]entities.Product, error) {
	return nil, errors.New("dynamo unreachable")
}

func (failingCatalog) ProductByNamePattern(context.Context, string) (entities.Product, error) {
	return entities.Product{}, errors.New("dynamo unreachable")
}

func TestFallbackCatalogRepository_PrimaryError(t *testing.T) {
	repo := NewFallbackCatalogRepository(failingCatalog{}, NewStaticCatalogRepository())
	ctx := context.Background()

	products, err := repo.ProductsByFamily(ctx, FamiliaAquecimento)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected fallback heating products")
	}

	product, err := repo.ProductByNamePattern(ctx, "Sal Granulado Refinado")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.IsZero() {
		t.Fatal("expected fallback salt product")
	}
}

func TestFallbackCatalogRepository_PrimaryEmpty(t *testing.T) {
	// A healthy but empty primary must still yield the fallback dataset.
	repo := NewFallbackCatalogRepository(NewStaticCatalogRepositoryWith(nil), NewStaticCatalogRepository())
	ctx := context.Background()

	products, err := repo.ProductsByCategory(ctx, CategoriaBombaFiltracao)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected fallback pumps for an empty primary")
	}

	product, err := repo.ProductByID(ctx, 103)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.IsZero() {
		t.Fatal("expected fallback product 103")
	}
}

func TestFallbackCatalogRepository_PrimaryHealthy(t *testing.T) {
	primaryOnly := entities.Product{
		ID: 9001, Name: "Bomba Primária", CategoryID: CategoriaBombaFiltracao,
		FamilyName: FamiliaFiltracao, BasePrice: 10, IsActive: true,
	}
	repo := NewFallbackCatalogRepository(
		NewStaticCatalogRepositoryWith([]entities.Product{primaryOnly}),
		NewStaticCatalogRepository(),
	)
	ctx := context.Background()

	products, err := repo.ProductsByFamily(ctx, FamiliaFiltracao)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].ID != 9001 {
		t.Fatalf("expected primary result only, got %+v", products)
	}

	product, err := repo.ProductByID(ctx, 9001)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Name != "Bomba Primária" {
		t.Fatalf("expected primary product, got %+v", product)
	}
}
