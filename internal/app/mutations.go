package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/okian/closet/internal/adapters/repository"
	"github.com/okian/closet/internal/domain/wardrobe"
	"github.com/okian/closet/pkg/logger"
	"github.com/okian/closet/pkg/metrics"
)

// AddItem stores a new item, or replaces the item with the same ID, in the
// store and the engine.
func (s *Service) AddItem(ctx context.Context, item wardrobe.Item) (wardrobe.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return wardrobe.Item{}, ErrNotStarted
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := s.store.Put(ctx, item); err != nil {
		metrics.RecordErrorByComponent("service", "add_item")
		return wardrobe.Item{}, fmt.Errorf("add item: %w", err)
	}
	stored := s.engine.AddItem(item)
	s.afterMutation(ctx, "add", stored.ID)
	return stored, nil
}

// UpdateItem applies patch to the item id.
func (s *Service) UpdateItem(ctx context.Context, id string, patch wardrobe.ItemPatch) (wardrobe.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return wardrobe.Item{}, ErrNotStarted
	}
	return s.update(ctx, "update", id, func(wardrobe.Item) wardrobe.ItemPatch { return patch })
}

// RemoveItem deletes the item id.
func (s *Service) RemoveItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return ErrNotStarted
	}

	if !s.engine.RemoveItem(id) {
		return fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	if err := s.store.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		metrics.RecordErrorByComponent("service", "remove_item")
		s.logger.Error(ctx, "store delete failed", logger.String("item_id", id), logger.Error(err))
	}
	s.afterMutation(ctx, "remove", id)
	return nil
}

// update requires s.mu held for writing. The store is written before the
// engine so a failed write leaves both unchanged.
func (s *Service) update(ctx context.Context, op, id string, build func(cur wardrobe.Item) wardrobe.ItemPatch) (wardrobe.Item, error) {
	cur, ok := s.engine.Get(id)
	if !ok {
		return wardrobe.Item{}, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	patch := build(cur)
	next := patch.Apply(cur)
	next.ID = id
	if err := s.store.Put(ctx, next); err != nil {
		metrics.RecordErrorByComponent("service", op)
		return wardrobe.Item{}, fmt.Errorf("%s item %s: %w", op, id, err)
	}
	updated, _ := s.engine.UpdateItem(id, patch)
	s.afterMutation(ctx, op, id)
	return updated, nil
}

func (s *Service) afterMutation(ctx context.Context, op, id string) {
	metrics.RecordItemMutation(op)
	metrics.UpdateItemsTotal(s.engine.Len())
	s.logger.Debug(ctx, "item mutated", logger.String("operation", op), logger.String("item_id", id))
}
