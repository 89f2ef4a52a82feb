package service

import (
	"context"
	"fmt"

	"github.com/okian/closet/internal/domain/model"
	"github.com/okian/closet/internal/domain/wardrobe"
	"github.com/okian/closet/pkg/logger"
	"github.com/okian/closet/pkg/metrics"
)

// SubmitWear deduplicates e by EventID and queues it for the workers. It
// reports duplicate=true, with no error, for an event seen before. Queue
// errors (queue.ErrFull, queue.ErrClosed) are wrapped and the event ID is
// forgotten so the client may retry.
func (s *Service) SubmitWear(ctx context.Context, e model.WearEvent) (duplicate bool, err error) {
	s.mu.RLock()
	started, deduper, queue, now := s.started, s.deduper, s.queue, s.now
	s.mu.RUnlock()
	if !started {
		return false, ErrNotStarted
	}
	if err := e.Validate(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	e = e.WithDefaultTime(now())

	if deduper.SeenAndRecord(ctx, e.EventID) {
		s.logger.Debug(ctx, "duplicate wear event", logger.String("event_id", e.EventID))
		return true, nil
	}
	if err := queue.Enqueue(ctx, e); err != nil {
		deduper.Unrecord(ctx, e.EventID)
		return false, fmt.Errorf("enqueue wear event %s: %w", e.EventID, err)
	}
	metrics.RecordWearEventAccepted()
	return false, nil
}

// RecordWear applies one wear event: the wear count goes up by one and the
// last-worn date only moves forward. It is called by the wear workers and
// keeps working while Stop drains the queue.
func (s *Service) RecordWear(ctx context.Context, e model.WearEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return ErrNotStarted
	}
	_, err := s.update(ctx, "wear", e.ItemID, func(cur wardrobe.Item) wardrobe.ItemPatch {
		times := cur.TimesWorn + 1
		patch := wardrobe.ItemPatch{TimesWorn: &times}
		if cur.DateLastWorn == nil || e.WornAt.After(*cur.DateLastWorn) {
			worn := e.WornAt
			patch.DateLastWorn = &worn
		}
		return patch
	})
	if err != nil {
		return fmt.Errorf("record wear %s: %w", e.EventID, err)
	}
	return nil
}
