package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/sakif/confession-wall/internal/apperror"
	"github.com/sakif/confession-wall/internal/model"
)

// mockRepo is an in-memory stand-in for both repositories.
// Setting failWith makes every call return that error, which is how tests
// simulate a database outage.
type mockRepo struct {
	mu          sync.Mutex
	advice      []model.Advice
	confessions map[int64]*model.Confession
	nextID      int64
	calls       int
	failWith    error
}

func newMockRepo() *mockRepo {
	return &mockRepo{confessions: make(map[int64]*model.Confession)}
}

func (m *mockRepo) CreateAdvice(_ context.Context, a *model.Advice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.failWith != nil {
		return m.failWith
	}
	m.nextID++
	a.ID = m.nextID
	a.Likes = 0
	a.CreatedAt = time.Now().UTC()
	m.advice = append(m.advice, *a)
	return nil
}

func (m *mockRepo) ListAdvice(_ context.Context) ([]model.Advice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	return append([]model.Advice{}, m.advice...), nil
}

func (m *mockRepo) GetAdvice(_ context.Context, id int64) (*model.Advice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	for _, a := range m.advice {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, apperror.NotFound("advice", id)
}

func (m *mockRepo) IncrementConfessionLikes(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.failWith != nil {
		return m.failWith
	}
	c, ok := m.confessions[id]
	if !ok {
		return apperror.NotFound("confession", id)
	}
	c.Likes++
	return nil
}

func (m *mockRepo) CreateConfession(_ context.Context, c *model.Confession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.failWith != nil {
		return m.failWith
	}
	m.nextID++
	c.ID = m.nextID
	c.Likes = 0
	stored := *c
	m.confessions[c.ID] = &stored
	return nil
}

func (m *mockRepo) ListConfessions(_ context.Context) ([]model.Confession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	list := make([]model.Confession, 0, len(m.confessions))
	for _, c := range m.confessions {
		list = append(list, *c)
	}
	return list, nil
}

func (m *mockRepo) GetConfession(_ context.Context, id int64) (*model.Confession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	c, ok := m.confessions[id]
	if !ok {
		return nil, apperror.NotFound("confession", id)
	}
	found := *c
	return &found, nil
}

var errDatabaseDown = apperror.Storage("mock: database down", errors.New("connection refused"))

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAdviceService(t *testing.T, opts Options) (*AdviceService, *mockRepo) {
	t.Helper()
	repo := newMockRepo()
	return NewAdviceService(repo, opts, discardLogger()), repo
}

func newTestConfessionService(t *testing.T, opts Options) (*ConfessionService, *mockRepo) {
	t.Helper()
	repo := newMockRepo()
	return NewConfessionService(repo, opts, discardLogger()), repo
}
