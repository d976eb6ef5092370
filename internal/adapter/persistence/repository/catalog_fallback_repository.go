package repository

import (
	"context"
	"log"

	"piscinas_xpto/internal/domain/entities"
	"piscinas_xpto/internal/usecase/interfaces"
)

// FallbackCatalogRepository decorates a primary catalog store with a
// secondary one. Every read goes to the primary first; on error or on an
// empty result the same read is retried against the fallback. Selectors see
// a single always-available catalog.
type FallbackCatalogRepository struct {
	primary  interfaces.ICatalogRepository
	fallback interfaces.ICatalogRepository
}

var _ interfaces.ICatalogRepository = (*FallbackCatalogRepository)(nil)

func NewFallbackCatalogRepository(primary, fallback interfaces.ICatalogRepository) *FallbackCatalogRepository {
	return &FallbackCatalogRepository{primary: primary, fallback: fallback}
}

func (r *FallbackCatalogRepository) ProductsByFamily(ctx context.Context, familyName string) ([]entities.Product, error) {
	products, err := r.primary.ProductsByFamily(ctx, familyName)
	if err != nil || len(products) == 0 {
		r.logFallback("ProductsByFamily", err)
		return r.fallback.ProductsByFamily(ctx, familyName)
	}
	return products, nil
}

func (r *FallbackCatalogRepository) ProductsByCategory(ctx context.Context, categoryID int) ([]entities.Product, error) {
	products, err := r.primary.ProductsByCategory(ctx, categoryID)
	if err != nil || len(products) == 0 {
		r.logFallback("ProductsByCategory", err)
		return r.fallback.ProductsByCategory(ctx, categoryID)
	}
	return products, nil
}

func (r *FallbackCatalogRepository) ProductByID(ctx context.Context, id int) (entities.Product, error) {
	product, err := r.primary.ProductByID(ctx, id)
	if err != nil || product.IsZero() {
		r.logFallback("ProductByID", err)
		return r.fallback.ProductByID(ctx, id)
	}
	return product, nil
}

func (r *FallbackCatalogRepository) ProductsMatchingConditions(ctx context.Context, conditions map[string]string) ([]entities.Product, error) {
	products, err := r.primary.ProductsMatchingConditions(ctx, conditions)
	if err != nil || len(products) == 0 {
		r.logFallback("ProductsMatchingConditions", err)
		return r.fallback.ProductsMatchingConditions(ctx, conditions)
	}
	return products, nil
}

func (r *FallbackCatalogRepository) ProductByNamePattern(ctx context.Context, pattern string) (entities.Product, error) {
	product, err := r.primary.ProductByNamePattern(ctx, pattern)
	if err != nil || product.IsZero() {
		r.logFallback("ProductByNamePattern", err)
		return r.fallback.ProductByNamePattern(ctx, pattern)
	}
	return product, nil
}

func (r *FallbackCatalogRepository) logFallback(operation string, err error) {
	if err != nil {
		log.Printf("[catalog] primary store failed on %s, serving fallback: %v", operation, err)
	}
}
