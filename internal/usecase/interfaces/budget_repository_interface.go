package interfaces

import (
	"context"

	"piscinas_xpto/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for priced budgets.
//
// The engine itself never persists: the orchestration layer stores the
// document it produced so the frontend can fetch and render it later.
//
//go:generate mockgen -source=budget_repository_interface.go -destination=mocks/budget_repository_mock.go -package=mock_interfaces

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
}
