package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/knowledge"
	"github.com/Harshitk-cp/logos/internal/reasoning"
	"github.com/Harshitk-cp/logos/internal/store"
	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestEngine(t *testing.T) *reasoning.Engine {
	t.Helper()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	e := reasoning.NewEngine(knowledge.Default(), reasoning.NewKeyedSource(7), zap.NewNop(),
		reasoning.WithClock(func() time.Time { return fixed }))
	t.Cleanup(e.Close)
	return e
}

// mockCaseStore implements domain.CaseStore for testing.
type mockCaseStore struct {
	mu    sync.Mutex
	cases []domain.CaseRecord
}

func newMockCaseStore() *mockCaseStore {
	return &mockCaseStore{}
}

func (m *mockCaseStore) Create(ctx context.Context, c *domain.CaseRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.cases {
		if existing.ID == c.ID {
			return store.ErrConflict
		}
	}
	m.cases = append(m.cases, *c)
	return nil
}

func (m *mockCaseStore) FindSimilar(ctx context.Context, topicVector []float32, limit int) ([]domain.CaseWithScore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.CaseWithScore
	for i := len(m.cases) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, domain.CaseWithScore{CaseRecord: m.cases[i]})
	}
	return out, nil
}

func (m *mockCaseStore) ListRecent(ctx context.Context, limit int) ([]domain.CaseRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.CaseRecord
	for i := len(m.cases) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.cases[i])
	}
	return out, nil
}

func (m *mockCaseStore) DeleteAll(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := int64(len(m.cases))
	m.cases = nil
	return n, nil
}

func (m *mockCaseStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cases)
}

// mockProfileStore implements domain.ProfileStore for testing.
type mockProfileStore struct {
	mu       sync.Mutex
	profiles map[string]*domain.UserProfile
}

func newMockProfileStore() *mockProfileStore {
	return &mockProfileStore{profiles: make(map[string]*domain.UserProfile)}
}

func (m *mockProfileStore) Upsert(ctx context.Context, p *domain.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.UserID] = p.Clone()
	return nil
}

func (m *mockProfileStore) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return p.Clone(), nil
}

func (m *mockProfileStore) DeleteAll(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := int64(len(m.profiles))
	m.profiles = make(map[string]*domain.UserProfile)
	return n, nil
}

var errStoreDown = errors.New("store down")

// failingCaseStore is a testify mock for asserting store calls and failures.
type failingCaseStore struct {
	mock.Mock
}

func (m *failingCaseStore) Create(ctx context.Context, c *domain.CaseRecord) error {
	return m.Called(ctx, c).Error(0)
}

func (m *failingCaseStore) FindSimilar(ctx context.Context, topicVector []float32, limit int) ([]domain.CaseWithScore, error) {
	args := m.Called(ctx, topicVector, limit)
	cases, _ := args.Get(0).([]domain.CaseWithScore)
	return cases, args.Error(1)
}

func (m *failingCaseStore) ListRecent(ctx context.Context, limit int) ([]domain.CaseRecord, error) {
	args := m.Called(ctx, limit)
	cases, _ := args.Get(0).([]domain.CaseRecord)
	return cases, args.Error(1)
}

func (m *failingCaseStore) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return int64(args.Int(0)), args.Error(1)
}
