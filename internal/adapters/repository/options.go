package repository

import "github.com/okian/closet/internal/domain/wardrobe"

// Option applies a configuration option to the InMemoryStore.
type Option func(*InMemoryStore)

// WithItems preloads the store. Invalid items are skipped.
func WithItems(items []wardrobe.Item) Option {
	return func(s *InMemoryStore) {
		for _, it := range items {
			if validate(it) == nil {
				s.put(it)
			}
		}
	}
}
