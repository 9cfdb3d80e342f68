// Package branch implements validation and persistence orchestration for branches.
package branch

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"yard-console/internal/apperr"
	"yard-console/internal/domain"
)

const maxFieldLen = 255

// Service coordinates branch business rules and repository calls.
type Service struct {
	repo             branchRepository
	operationTimeout time.Duration
}

// NewService creates a branch Service; non-positive timeouts fall back to 3s.
func NewService(r branchRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func normalize(in domain.BranchInput) domain.BranchInput {
	return domain.BranchInput{
		Name:    strings.TrimSpace(in.Name),
		Country: strings.TrimSpace(in.Country),
		Street:  strings.TrimSpace(in.Street),
	}
}

func validate(in domain.BranchInput) error {
	fields := []struct{ name, value string }{
		{"name", in.Name},
		{"country", in.Country},
		{"street", in.Street},
	}
	for _, f := range fields {
		if f.value == "" {
			return apperr.Invalidf("%s is required", f.name)
		}
		if utf8.RuneCountInString(f.value) > maxFieldLen {
			return apperr.Invalidf("%s must be at most %d characters", f.name, maxFieldLen)
		}
	}
	return nil
}

// Get returns a branch by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Branch, error) {
	if id <= 0 {
		return nil, apperr.NotFoundf("branch %d", id)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperr.NotFoundf("branch %d", id)
	}
	return b, nil
}

// List returns every branch, unpaged.
func (s *Service) List(ctx context.Context) ([]domain.Branch, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx)
}

// Create validates and persists a new branch.
func (s *Service) Create(ctx context.Context, in domain.BranchInput) (*domain.Branch, error) {
	in = normalize(in)
	if err := validate(in); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return &domain.Branch{ID: id, Name: in.Name, Country: in.Country, Street: in.Street}, nil
}

// Update replaces name, country and street of an existing branch.
func (s *Service) Update(ctx context.Context, id int64, in domain.BranchInput) (*domain.Branch, error) {
	if id <= 0 {
		return nil, apperr.NotFoundf("branch %d", id)
	}
	in = normalize(in)
	if err := validate(in); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFoundf("branch %d", id)
	}
	return &domain.Branch{ID: id, Name: in.Name, Country: in.Country, Street: in.Street}, nil
}

// Delete removes a branch. Branches still owning yards are rejected by the repository.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.NotFoundf("branch %d", id)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFoundf("branch %d", id)
	}
	return nil
}
