// Package model contains the messages passed between the HTTP layer, the
// wear queue and its workers.
package model

import (
	"errors"
	"time"
)

// Validation errors for WearEvent.
var (
	ErrMissingEventID = errors.New("event_id is required")
	ErrMissingItemID  = errors.New("item_id is required")
)

// WearEvent records that an item was worn. EventID makes submission
// idempotent.
type WearEvent struct {
	EventID string    `json:"event_id"`
	ItemID  string    `json:"item_id"`
	WornAt  time.Time `json:"worn_at"`
}

// Validate checks that the identifiers are present.
func (e WearEvent) Validate() error {
	switch {
	case e.EventID == "":
		return ErrMissingEventID
	case e.ItemID == "":
		return ErrMissingItemID
	}
	return nil
}

// WithDefaultTime returns a copy whose zero WornAt is replaced by now.
func (e WearEvent) WithDefaultTime(now time.Time) WearEvent {
	if e.WornAt.IsZero() {
		e.WornAt = now
	}
	return e
}
