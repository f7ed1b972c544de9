package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"real-estate-platform/services/properties-service/internal/core/domain"

	"github.com/google/uuid"
)

type mockStorage struct {
	FindFunc   func(ctx context.Context, predicate domain.Predicate) ([]domain.Property, error)
	CreateFunc func(ctx context.Context, payload json.RawMessage) (*domain.Property, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
	PingFunc   func(ctx context.Context) error
}

func (m *mockStorage) Find(ctx context.Context, predicate domain.Predicate) ([]domain.Property, error) {
	return m.FindFunc(ctx, predicate)
}

func (m *mockStorage) Create(ctx context.Context, payload json.RawMessage) (*domain.Property, error) {
	return m.CreateFunc(ctx, payload)
}

func (m *mockStorage) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockStorage) Ping(ctx context.Context) error {
	if m.PingFunc == nil {
		return nil
	}
	return m.PingFunc(ctx)
}

type mockNotifier struct {
	mu       sync.Mutex
	calls    []domain.Property
	ctxErrs  []error
	NotifyFn func(ctx context.Context, property domain.Property) error
}

func (m *mockNotifier) NotifyPropertyCreated(ctx context.Context, property domain.Property) error {
	m.mu.Lock()
	m.calls = append(m.calls, property)
	m.ctxErrs = append(m.ctxErrs, ctx.Err())
	m.mu.Unlock()
	if m.NotifyFn == nil {
		return nil
	}
	return m.NotifyFn(ctx, property)
}

// memoryStorage хранилище в памяти, фильтрует через domain.Predicate.Matches
type memoryStorage struct {
	items []domain.Property
}

func (s *memoryStorage) Find(_ context.Context, predicate domain.Predicate) ([]domain.Property, error) {
	out := []domain.Property{}
	for _, p := range s.items {
		if predicate.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memoryStorage) Create(_ context.Context, payload json.RawMessage) (*domain.Property, error) {
	var p domain.Property
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, &domain.ValidationError{Details: []string{err.Error()}}
	}
	p.ID = uuid.New()
	s.items = append(s.items, p)
	return &p, nil
}

func (s *memoryStorage) Delete(_ context.Context, id uuid.UUID) error {
	for i, p := range s.items {
		if p.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *memoryStorage) Ping(context.Context) error { return nil }
