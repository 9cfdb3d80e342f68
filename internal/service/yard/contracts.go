//go:generate mockgen -source=contracts.go -destination=mocks_test.go -package=yard_test

package yard

import (
	"context"

	"yard-console/internal/domain"
)

type yardRepository interface {
	Get(ctx context.Context, id int64) (*domain.Yard, error)
	List(ctx context.Context) ([]domain.Yard, error)
	Create(ctx context.Context, in domain.YardInput) (int64, error)
	Update(ctx context.Context, id int64, in domain.YardInput) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// branchLookup resolves the branch a yard refers to.
type branchLookup interface {
	Get(ctx context.Context, id int64) (*domain.Branch, error)
}
