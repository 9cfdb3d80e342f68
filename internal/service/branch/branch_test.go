package branch

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"yard-console/internal/apperr"
	"yard-console/internal/domain"
)

type mockBranchRepo struct {
	getFn    func(ctx context.Context, id int64) (*domain.Branch, error)
	listFn   func(ctx context.Context) ([]domain.Branch, error)
	createFn func(ctx context.Context, in domain.BranchInput) (int64, error)
	updateFn func(ctx context.Context, id int64, in domain.BranchInput) (bool, error)
	deleteFn func(ctx context.Context, id int64) (bool, error)
}

func (m *mockBranchRepo) Get(ctx context.Context, id int64) (*domain.Branch, error) {
	return m.getFn(ctx, id)
}

func (m *mockBranchRepo) List(ctx context.Context) ([]domain.Branch, error) {
	return m.listFn(ctx)
}

func (m *mockBranchRepo) Create(ctx context.Context, in domain.BranchInput) (int64, error) {
	return m.createFn(ctx, in)
}

func (m *mockBranchRepo) Update(ctx context.Context, id int64, in domain.BranchInput) (bool, error) {
	return m.updateFn(ctx, id, in)
}

func (m *mockBranchRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return m.deleteFn(ctx, id)
}

func TestNewService_Timeouts(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3*time.Second, NewService(&mockBranchRepo{}, 0).operationTimeout)
	require.Equal(t, 3*time.Second, NewService(&mockBranchRepo{}, -time.Second).operationTimeout)
	require.Equal(t, 5*time.Second, NewService(&mockBranchRepo{}, 5*time.Second).operationTimeout)
}

func TestService_Get(t *testing.T) {
	t.Parallel()

	want := &domain.Branch{ID: 7, Name: "Centro", Country: "BR", Street: "Rua A"}
	repo := &mockBranchRepo{
		getFn: func(ctx context.Context, id int64) (*domain.Branch, error) {
			_, hasDeadline := ctx.Deadline()
			require.True(t, hasDeadline)
			if id == want.ID {
				return want, nil
			}
			return nil, nil
		},
	}
	s := NewService(repo, time.Second)

	got, err := s.Get(context.Background(), 7)
	require.NoError(t, err)
	require.Same(t, want, got)

	_, err = s.Get(context.Background(), 8)
	require.True(t, errors.Is(err, apperr.NotFound))

	_, err = s.Get(context.Background(), 0)
	require.True(t, errors.Is(err, apperr.NotFound))
}

func TestService_Get_RepoError(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	s := NewService(&mockBranchRepo{
		getFn: func(context.Context, int64) (*domain.Branch, error) { return nil, boom },
	}, time.Second)

	_, err := s.Get(context.Background(), 1)
	require.ErrorIs(t, err, boom)
}

func TestService_List(t *testing.T) {
	t.Parallel()

	want := []domain.Branch{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	s := NewService(&mockBranchRepo{
		listFn: func(context.Context) ([]domain.Branch, error) { return want, nil },
	}, time.Second)

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_Create_TrimsAndPersists(t *testing.T) {
	t.Parallel()

	var got domain.BranchInput
	s := NewService(&mockBranchRepo{
		createFn: func(_ context.Context, in domain.BranchInput) (int64, error) {
			got = in
			return 11, nil
		},
	}, time.Second)

	b, err := s.Create(context.Background(), domain.BranchInput{Name: " Centro ", Country: "BR\t", Street: " Rua A"})
	require.NoError(t, err)
	require.Equal(t, domain.BranchInput{Name: "Centro", Country: "BR", Street: "Rua A"}, got)
	require.Equal(t, &domain.Branch{ID: 11, Name: "Centro", Country: "BR", Street: "Rua A"}, b)
}

func TestService_Create_Validation(t *testing.T) {
	t.Parallel()

	s := NewService(&mockBranchRepo{
		createFn: func(context.Context, domain.BranchInput) (int64, error) {
			require.FailNow(t, "repository must not be called for invalid input")
			return 0, nil
		},
	}, time.Second)

	cases := map[string]domain.BranchInput{
		"name":    {Name: "  ", Country: "BR", Street: "Rua A"},
		"country": {Name: "Centro", Street: "Rua A"},
		"street":  {Name: "Centro", Country: "BR"},
		"at most": {Name: strings.Repeat("x", maxFieldLen+1), Country: "BR", Street: "Rua A"},
	}
	for want, in := range cases {
		_, err := s.Create(context.Background(), in)
		require.True(t, errors.Is(err, apperr.Invalid), "case %s: %v", want, err)
		require.Contains(t, err.Error(), want)
	}
}

func TestService_Update(t *testing.T) {
	t.Parallel()

	s := NewService(&mockBranchRepo{
		updateFn: func(_ context.Context, id int64, in domain.BranchInput) (bool, error) {
			return id == 3, nil
		},
	}, time.Second)

	b, err := s.Update(context.Background(), 3, domain.BranchInput{Name: "N", Country: "C", Street: "S"})
	require.NoError(t, err)
	require.Equal(t, int64(3), b.ID)

	_, err = s.Update(context.Background(), 4, domain.BranchInput{Name: "N", Country: "C", Street: "S"})
	require.True(t, errors.Is(err, apperr.NotFound))

	_, err = s.Update(context.Background(), 3, domain.BranchInput{Name: "N"})
	require.True(t, errors.Is(err, apperr.Invalid))
}

func TestService_Delete(t *testing.T) {
	t.Parallel()

	conflict := apperr.Conflictf("branch still has yards")
	s := NewService(&mockBranchRepo{
		deleteFn: func(_ context.Context, id int64) (bool, error) {
			switch id {
			case 1:
				return true, nil
			case 2:
				return false, conflict
			default:
				return false, nil
			}
		},
	}, time.Second)

	require.NoError(t, s.Delete(context.Background(), 1))
	require.ErrorIs(t, s.Delete(context.Background(), 2), apperr.Conflict)
	require.ErrorIs(t, s.Delete(context.Background(), 3), apperr.NotFound)
	require.ErrorIs(t, s.Delete(context.Background(), -1), apperr.NotFound)
}
