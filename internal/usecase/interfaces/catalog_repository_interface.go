package interfaces

import (
	"context"
	"errors"

	"piscinas_xpto/internal/domain/entities"
)

// ErrCatalogUnavailable is returned by a catalog store that cannot serve
// reads at all (transport failure, missing table). The fallback decorator
// absorbs it; selectors never see it.
var ErrCatalogUnavailable = errors.New("catalog store unavailable")

// ICatalogRepository abstracts read access to the product catalog.
//
// Contract shared by every implementation:
//   - only active products are returned
//   - an empty result is a valid, expected outcome, never an error
//   - ProductByID / ProductByNamePattern return the zero Product when no
//     record matches
//
//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/catalog_repository_mock.go -package=mock_interfaces

type ICatalogRepository interface {
	ProductsByFamily(ctx context.Context, familyName string) ([]entities.Product, error)
	ProductsByCategory(ctx context.Context, categoryID int) ([]entities.Product, error)
	ProductByID(ctx context.Context, id int) (entities.Product, error)
	// ProductsMatchingConditions returns products whose selection rules
	// match any of the provided conditions (OR semantics).
	ProductsMatchingConditions(ctx context.Context, conditions map[string]string) ([]entities.Product, error)
	// ProductByNamePattern tries an exact, case-insensitive name match
	// first, then a substring match.
	ProductByNamePattern(ctx context.Context, pattern string) (entities.Product, error)
}
