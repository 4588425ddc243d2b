package mocks

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/lawdept/justice-api/internal/domain"
	"github.com/lawdept/justice-api/internal/store"
)

// MockCaseStore implements store.CaseStore for testing.
type MockCaseStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, c *domain.Case) (int64, error)
	ListFn        func(ctx context.Context) ([]*domain.Case, error)
	SearchFn      func(ctx context.Context, query string) ([]*domain.Case, error)
	GetByIDFn     func(ctx context.Context, id int64) (*domain.Case, error)
	GetByCaseNoFn func(ctx context.Context, caseNo string) (*domain.Case, error)
	UpdateFn      func(ctx context.Context, c *domain.Case) error
	DeleteFn      func(ctx context.Context, id int64) error

	// Data for the default implementation, keyed by id
	Cases  map[int64]*domain.Case
	NextID int64
}

// Ensure MockCaseStore implements store.CaseStore interface
var _ store.CaseStore = (*MockCaseStore)(nil)

// NewMockCaseStore creates a new mock store with initialized defaults.
func NewMockCaseStore() *MockCaseStore {
	return &MockCaseStore{
		Cases:  make(map[int64]*domain.Case),
		NextID: 1,
	}
}

// Create implements the CaseStore interface.
func (m *MockCaseStore) Create(ctx context.Context, c *domain.Case) (int64, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}

	if c.CaseNo != "" {
		for _, existing := range m.Cases {
			if existing.CaseNo == c.CaseNo {
				return 0, store.ErrCaseNumberExists
			}
		}
	}

	c.ApplyDefaults()

	stored := *c
	stored.ID = m.NextID
	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt
	m.Cases[stored.ID] = &stored
	m.NextID++
	return stored.ID, nil
}

// List implements the CaseStore interface.
func (m *MockCaseStore) List(ctx context.Context) ([]*domain.Case, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.collect(func(*domain.Case) bool { return true }), nil
}

// Search implements the CaseStore interface.
func (m *MockCaseStore) Search(ctx context.Context, query string) ([]*domain.Case, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, query)
	}

	q := strings.ToLower(query)
	return m.collect(func(c *domain.Case) bool {
		return strings.Contains(strings.ToLower(c.CaseNo), q) ||
			strings.Contains(strings.ToLower(c.CustomerName), q) ||
			strings.Contains(strings.ToLower(c.ComplainantName), q)
	}), nil
}

// GetByID implements the CaseStore interface.
func (m *MockCaseStore) GetByID(ctx context.Context, id int64) (*domain.Case, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	c, ok := m.Cases[id]
	if !ok {
		return nil, store.ErrCaseNotFound
	}
	return c, nil
}

// GetByCaseNo implements the CaseStore interface.
func (m *MockCaseStore) GetByCaseNo(ctx context.Context, caseNo string) (*domain.Case, error) {
	if m.GetByCaseNoFn != nil {
		return m.GetByCaseNoFn(ctx, caseNo)
	}

	for _, c := range m.Cases {
		if c.CaseNo == caseNo {
			return c, nil
		}
	}
	return nil, store.ErrCaseNotFound
}

// Update implements the CaseStore interface. Like the real store it replaces
// the stored row wholesale.
func (m *MockCaseStore) Update(ctx context.Context, c *domain.Case) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, c)
	}

	existing, ok := m.Cases[c.ID]
	if !ok {
		return store.ErrCaseNotFound
	}

	updated := *c
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	m.Cases[c.ID] = &updated
	return nil
}

// Delete implements the CaseStore interface.
func (m *MockCaseStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Cases[id]; !ok {
		return store.ErrCaseNotFound
	}
	delete(m.Cases, id)
	return nil
}

// collect returns matching cases ordered by creation time, newest first,
// matching the store contract.
func (m *MockCaseStore) collect(match func(*domain.Case) bool) []*domain.Case {
	cases := []*domain.Case{}
	for _, c := range m.Cases {
		if match(c) {
			cases = append(cases, c)
		}
	}
	sort.Slice(cases, func(i, j int) bool {
		if cases[i].CreatedAt.Equal(cases[j].CreatedAt) {
			return cases[i].ID > cases[j].ID
		}
		return cases[i].CreatedAt.After(cases[j].CreatedAt)
	})
	return cases
}
