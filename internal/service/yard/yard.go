// Package yard implements validation and persistence orchestration for yards.
package yard

import (
	"context"
	"errors"
	"time"

	"yard-console/internal/apperr"
	"yard-console/internal/domain"
)

// Service coordinates yard business rules and repository calls.
type Service struct {
	repo             yardRepository
	branches         branchLookup
	operationTimeout time.Duration
}

// NewService creates a yard Service; non-positive timeouts fall back to 3s.
func NewService(r yardRepository, branches branchLookup, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, branches: branches, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validate(in domain.YardInput) error {
	if in.Capacity <= 0 {
		return apperr.Invalidf("capacity must be positive")
	}
	if in.Number < 0 {
		return apperr.Invalidf("yard number must not be negative")
	}
	if in.BranchID <= 0 {
		return apperr.Invalidf("branch is required")
	}
	return nil
}

// ensureBranch rejects references to branches that do not exist at call time.
func (s *Service) ensureBranch(ctx context.Context, id int64) error {
	b, err := s.branches.Get(ctx, id)
	if err != nil && !errors.Is(err, apperr.NotFound) {
		return err
	}
	if b == nil {
		return apperr.Invalidf("branch %d does not exist", id)
	}
	return nil
}

// Get returns a yard by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Yard, error) {
	if id <= 0 {
		return nil, apperr.NotFoundf("yard %d", id)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	y, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if y == nil {
		return nil, apperr.NotFoundf("yard %d", id)
	}
	return y, nil
}

// List returns every yard, unpaged.
func (s *Service) List(ctx context.Context) ([]domain.Yard, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx)
}

// Create validates and persists a new yard.
func (s *Service) Create(ctx context.Context, in domain.YardInput) (*domain.Yard, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.ensureBranch(ctx, in.BranchID); err != nil {
		return nil, err
	}
	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return &domain.Yard{ID: id, Capacity: in.Capacity, Number: in.Number, BranchID: in.BranchID}, nil
}

// Update replaces capacity, number and branch of an existing yard.
func (s *Service) Update(ctx context.Context, id int64, in domain.YardInput) (*domain.Yard, error) {
	if id <= 0 {
		return nil, apperr.NotFoundf("yard %d", id)
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.ensureBranch(ctx, in.BranchID); err != nil {
		return nil, err
	}
	ok, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFoundf("yard %d", id)
	}
	return &domain.Yard{ID: id, Capacity: in.Capacity, Number: in.Number, BranchID: in.BranchID}, nil
}

// Delete removes a yard.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.NotFoundf("yard %d", id)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFoundf("yard %d", id)
	}
	return nil
}
