package service

import (
	"time"

	"github.com/okian/closet/internal/adapters/repository"
	"github.com/okian/closet/internal/domain/engine"
	"github.com/okian/closet/internal/domain/scoring"
	"github.com/okian/closet/internal/domain/wardrobe"
	"github.com/okian/closet/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of wear workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the capacity of the wear queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize bounds how many wear event IDs are remembered. Zero keeps
// every ID.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size >= 0 {
			s.dedupeSize = size
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRules replaces the default lookup tables.
func WithRules(r wardrobe.Rules) Option {
	return func(s *Service) {
		s.rules = r.Clone()
	}
}

// WithWeights replaces the default score weights.
func WithWeights(w scoring.Weights) Option {
	return func(s *Service) {
		s.weights = w
	}
}

// WithOutfitLimits overrides the outfit enumeration caps.
func WithOutfitLimits(l engine.OutfitLimits) Option {
	return func(s *Service) {
		s.limits = l
	}
}

// WithStore sets the persistence port. An in-memory store is used otherwise.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithSeedItems writes items to the store on Start before the snapshot is
// taken. Items without an ID receive one.
func WithSeedItems(items []wardrobe.Item) Option {
	return func(s *Service) {
		s.seed = append(s.seed, items...)
	}
}

// WithClock sets the time source for recency checks and default wear times.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}
