package service

import (
	"context"

	"github.com/okian/closet/internal/domain/wardrobe"
	"github.com/okian/closet/pkg/metrics"
)

// Stats is a point-in-time view of the service for monitoring.
type Stats struct {
	Started       bool                 `json:"started"`
	Items         int                  `json:"items"`
	StoredItems   int                  `json:"stored_items"`
	WorkerCount   int                  `json:"worker_count"`
	QueueLength   int                  `json:"queue_length"`
	QueueCapacity int                  `json:"queue_capacity"`
	DedupeEntries int64                `json:"dedupe_entries"`
	Asymmetries   []wardrobe.StylePair `json:"style_asymmetries"`
}

// GetStats returns service statistics and refreshes the matching gauges.
func (s *Service) GetStats(ctx context.Context) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		Started:       s.started,
		WorkerCount:   s.workerCount,
		QueueCapacity: s.queueSize,
		Asymmetries:   append([]wardrobe.StylePair{}, s.asymmetries...),
	}
	if s.engine != nil {
		st.Items = s.engine.Len()
		metrics.UpdateItemsTotal(st.Items)
	}
	if s.store != nil {
		st.StoredItems = s.store.Count(ctx)
	}
	if s.queue != nil {
		st.QueueLength = s.queue.Len(ctx)
	}
	if s.deduper != nil {
		st.DedupeEntries = s.deduper.Size()
	}
	return st
}
