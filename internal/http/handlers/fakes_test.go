package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"yard-console/internal/apperr"
	"yard-console/internal/domain"
	"yard-console/internal/http/flash"
	"yard-console/internal/http/handlers"
	"yard-console/internal/logx"
)

type rendered struct {
	name string
	data any
}

// stubRenderer records the last view instead of executing templates.
type stubRenderer struct {
	calls []rendered
	err   error
}

func (s *stubRenderer) Render(w io.Writer, name string, data any) error {
	if s.err != nil {
		return s.err
	}
	s.calls = append(s.calls, rendered{name: name, data: data})
	_, err := io.WriteString(w, name)
	return err
}

func (s *stubRenderer) last() rendered {
	if len(s.calls) == 0 {
		return rendered{}
	}
	return s.calls[len(s.calls)-1]
}

// memFlash keeps one pending message in memory.
type memFlash struct {
	pending *flash.Message
}

func (m *memFlash) Put(_ http.ResponseWriter, _ *http.Request, msg flash.Message) error {
	m.pending = &msg
	return nil
}

func (m *memFlash) Pop(_ http.ResponseWriter, _ *http.Request) (flash.Message, bool, error) {
	if m.pending == nil {
		return flash.Message{}, false, nil
	}
	msg := *m.pending
	m.pending = nil
	return msg, true, nil
}

type memBranches struct {
	mu      sync.Mutex
	nextID  int64
	rows    map[int64]domain.Branch
	listErr error
	getErr  error
}

func newMemBranches(seed ...domain.Branch) *memBranches {
	s := &memBranches{rows: map[int64]domain.Branch{}}
	for _, b := range seed {
		s.rows[b.ID] = b
		if b.ID > s.nextID {
			s.nextID = b.ID
		}
	}
	return s
}

func (s *memBranches) List(context.Context) ([]domain.Branch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.Branch, 0, len(s.rows))
	for _, b := range s.rows {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memBranches) Get(_ context.Context, id int64) (*domain.Branch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	b, ok := s.rows[id]
	if !ok {
		return nil, apperr.NotFoundf("branch %d", id)
	}
	return &b, nil
}

func (s *memBranches) Create(_ context.Context, in domain.BranchInput) (*domain.Branch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.Name == "" {
		return nil, apperr.Invalidf("name is required")
	}
	s.nextID++
	b := domain.Branch{ID: s.nextID, Name: in.Name, Country: in.Country, Street: in.Street}
	s.rows[b.ID] = b
	return &b, nil
}

func (s *memBranches) Update(_ context.Context, id int64, in domain.BranchInput) (*domain.Branch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return nil, apperr.NotFoundf("branch %d", id)
	}
	if in.Name == "" {
		return nil, apperr.Invalidf("name is required")
	}
	b := domain.Branch{ID: id, Name: in.Name, Country: in.Country, Street: in.Street}
	s.rows[id] = b
	return &b, nil
}

func (s *memBranches) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return apperr.NotFoundf("branch %d", id)
	}
	delete(s.rows, id)
	return nil
}

func (s *memBranches) snapshot() map[int64]domain.Branch {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]domain.Branch, len(s.rows))
	for k, v := range s.rows {
		out[k] = v
	}
	return out
}

type memYards struct {
	mu       sync.Mutex
	nextID   int64
	rows     map[int64]domain.Yard
	branches *memBranches
	listErr  error
}

func newMemYards(branches *memBranches, seed ...domain.Yard) *memYards {
	s := &memYards{rows: map[int64]domain.Yard{}, branches: branches}
	for _, y := range seed {
		s.rows[y.ID] = y
		if y.ID > s.nextID {
			s.nextID = y.ID
		}
	}
	return s
}

func (s *memYards) List(context.Context) ([]domain.Yard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.Yard, 0, len(s.rows))
	for _, y := range s.rows {
		out = append(out, y)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memYards) Get(_ context.Context, id int64) (*domain.Yard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	y, ok := s.rows[id]
	if !ok {
		return nil, apperr.NotFoundf("yard %d", id)
	}
	return &y, nil
}

func (s *memYards) check(ctx context.Context, in domain.YardInput) error {
	if in.Capacity <= 0 {
		return apperr.Invalidf("capacity must be positive")
	}
	if _, err := s.branches.Get(ctx, in.BranchID); err != nil {
		return apperr.Invalidf("branch %d does not exist", in.BranchID)
	}
	return nil
}

func (s *memYards) Create(ctx context.Context, in domain.YardInput) (*domain.Yard, error) {
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	y := domain.Yard{ID: s.nextID, Capacity: in.Capacity, Number: in.Number, BranchID: in.BranchID}
	s.rows[y.ID] = y
	return &y, nil
}

func (s *memYards) Update(ctx context.Context, id int64, in domain.YardInput) (*domain.Yard, error) {
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return nil, apperr.NotFoundf("yard %d", id)
	}
	y := domain.Yard{ID: id, Capacity: in.Capacity, Number: in.Number, BranchID: in.BranchID}
	s.rows[id] = y
	return &y, nil
}

func (s *memYards) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return apperr.NotFoundf("yard %d", id)
	}
	delete(s.rows, id)
	return nil
}

func (s *memYards) snapshot() map[int64]domain.Yard {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]domain.Yard, len(s.rows))
	for k, v := range s.rows {
		out[k] = v
	}
	return out
}

type fixture struct {
	views   *stubRenderer
	flashes *memFlash
	base    *handlers.Handlers
}

func newFixture(logger logx.Logger) *fixture {
	views := &stubRenderer{}
	flashes := &memFlash{}
	return &fixture{
		views:   views,
		flashes: flashes,
		base:    handlers.New(logger, views, flashes, nil),
	}
}

func withID(req *http.Request, id string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func getReq(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
