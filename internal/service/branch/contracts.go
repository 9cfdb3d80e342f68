package branch

import (
	"context"

	"yard-console/internal/domain"
)

// branchRepository defines storage operations required by the branch service.
type branchRepository interface {
	Get(ctx context.Context, id int64) (*domain.Branch, error)
	List(ctx context.Context) ([]domain.Branch, error)
	Create(ctx context.Context, in domain.BranchInput) (int64, error)
	Update(ctx context.Context, id int64, in domain.BranchInput) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
