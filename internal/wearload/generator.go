package wearload

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/okian/closet/pkg/logger"
)

// maxBackdate bounds how far in the past a generated worn_at may be.
const maxBackdate = 30 * 24 * time.Hour

// randomIndex returns a uniform index in [0, n).
func randomIndex(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

// generateEvents creates cfg.NumEvents events for random items, then appends
// repeats of a DuplicateRatio share of them.
func generateEvents(ctx context.Context, cfg *Config, items []Item, now time.Time) ([]Event, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	events := make([]Event, 0, cfg.NumEvents)
	for range cfg.NumEvents {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context cancelled during event generation: %w", err)
		}
		backdate := time.Duration(randomIndex(int(maxBackdate / time.Minute))) * time.Minute
		events = append(events, Event{
			EventID: uuid.NewString(),
			ItemID:  items[randomIndex(len(items))].ID,
			WornAt:  now.Add(-backdate).UTC().Truncate(time.Second),
		})
	}

	repeats := int(float64(len(events)) * clampRatio(cfg.DuplicateRatio))
	for i := range repeats {
		events = append(events, events[i])
	}

	logger.Get().Info(ctx, "generated wear events",
		logger.Int("distinct", cfg.NumEvents),
		logger.Int("repeats", repeats))
	return events, nil
}

func clampRatio(r float64) float64 {
	return min(max(r, 0), 1)
}
