package handlers

import (
	"context"
	"io"

	"yard-console/internal/domain"
)

// BranchReader is the read-only branch capability used by the yard console.
type BranchReader interface {
	List(ctx context.Context) ([]domain.Branch, error)
	Get(ctx context.Context, id int64) (*domain.Branch, error)
}

// BranchStore is the branch service consumed by the branch console.
type BranchStore interface {
	BranchReader
	Create(ctx context.Context, in domain.BranchInput) (*domain.Branch, error)
	Update(ctx context.Context, id int64, in domain.BranchInput) (*domain.Branch, error)
	Delete(ctx context.Context, id int64) error
}

// YardStore is the yard service consumed by the yard console.
type YardStore interface {
	List(ctx context.Context) ([]domain.Yard, error)
	Get(ctx context.Context, id int64) (*domain.Yard, error)
	Create(ctx context.Context, in domain.YardInput) (*domain.Yard, error)
	Update(ctx context.Context, id int64, in domain.YardInput) (*domain.Yard, error)
	Delete(ctx context.Context, id int64) error
}

// Renderer writes a named view.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}
