package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/okian/closet/internal/domain/wardrobe"
	"github.com/okian/closet/pkg/metrics"
)

// InMemoryStore keeps items in a map plus an insertion-order index.
type InMemoryStore struct {
	mu    sync.RWMutex
	items map[string]wardrobe.Item
	order []string
}

var _ Store = (*InMemoryStore)(nil)

// NewInMemoryStore creates an empty store and applies options.
func NewInMemoryStore(_ context.Context, opts ...Option) *InMemoryStore {
	s := &InMemoryStore{items: make(map[string]wardrobe.Item)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns clones of every item in insertion order.
func (s *InMemoryStore) List(_ context.Context) ([]wardrobe.Item, error) {
	defer observe("list", time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]wardrobe.Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id].Clone())
	}
	return out, nil
}

// Get returns a clone of the item with id.
func (s *InMemoryStore) Get(_ context.Context, id string) (wardrobe.Item, error) {
	defer observe("get", time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[id]
	if !ok {
		return wardrobe.Item{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return it.Clone(), nil
}

// Put inserts or replaces an item, keeping the original position on replace.
func (s *InMemoryStore) Put(_ context.Context, item wardrobe.Item) error {
	defer observe("put", time.Now())
	if err := validate(item); err != nil {
		return err
	}
	s.mu.Lock()
	s.put(item)
	n := len(s.order)
	s.mu.Unlock()
	metrics.UpdateRepositoryRecordsTotal(n)
	return nil
}

// Delete removes the item with id.
func (s *InMemoryStore) Delete(_ context.Context, id string) error {
	defer observe("delete", time.Now())
	s.mu.Lock()
	if _, ok := s.items[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.items, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	n := len(s.order)
	s.mu.Unlock()
	metrics.UpdateRepositoryRecordsTotal(n)
	return nil
}

// Count returns the number of stored items.
func (s *InMemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// put requires s.mu held for writing.
func (s *InMemoryStore) put(item wardrobe.Item) {
	if _, ok := s.items[item.ID]; !ok {
		s.order = append(s.order, item.ID)
	}
	s.items[item.ID] = item.Clone()
}

func validate(item wardrobe.Item) error {
	if item.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidItem)
	}
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidItem, item.ID, err)
	}
	return nil
}

func observe(op string, start time.Time) {
	metrics.RecordRepositoryLatency(op, float64(time.Since(start).Microseconds())/1000)
}
