// Package repository defines the item store port and its in-memory adapter.
package repository

import (
	"context"

	"github.com/okian/closet/internal/domain/wardrobe"
)

// Store provides read/write access to persisted wardrobe items.
type Store interface {
	// List returns every item in insertion order.
	List(ctx context.Context) ([]wardrobe.Item, error)

	// Get returns the item with id or ErrNotFound.
	Get(ctx context.Context, id string) (wardrobe.Item, error)

	// Put inserts or replaces an item. Items without an ID or with
	// negative numbers are rejected with ErrInvalidItem.
	Put(ctx context.Context, item wardrobe.Item) error

	// Delete removes the item with id or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Count returns the number of stored items.
	Count(ctx context.Context) int
}
