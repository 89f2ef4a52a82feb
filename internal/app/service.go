// Package service wires the recommendation engine to its store, the wear
// event pipeline and the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	eventqueue "github.com/okian/closet/internal/adapters/mq/queue"
	workerpool "github.com/okian/closet/internal/adapters/mq/worker"
	"github.com/okian/closet/internal/adapters/repository"
	"github.com/okian/closet/internal/domain/dedupe"
	"github.com/okian/closet/internal/domain/engine"
	"github.com/okian/closet/internal/domain/scoring"
	"github.com/okian/closet/internal/domain/wardrobe"
	"github.com/okian/closet/pkg/logger"
	"github.com/okian/closet/pkg/metrics"
)

// Service owns one engine and serializes access to it: queries hold the
// read lock, mutations the write lock.
type Service struct {
	mu sync.RWMutex

	engine  *engine.Engine
	store   repository.Store
	deduper dedupe.Deduper
	queue   eventqueue.Queue
	pool    *workerpool.Pool

	workerCount int
	queueSize   int
	dedupeSize  int
	rules       wardrobe.Rules
	weights     scoring.Weights
	limits      engine.OutfitLimits
	seed        []wardrobe.Item
	now         func() time.Time

	started     bool
	asymmetries []wardrobe.StylePair
	cancel      context.CancelFunc

	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU(),
		queueSize:   10_000,
		dedupeSize:  50_000,
		rules:       wardrobe.DefaultRules(),
		weights:     scoring.DefaultWeights(),
		limits:      engine.DefaultOutfitLimits(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start seeds the store, builds the engine from the stored items and starts
// the wear workers.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	if s.store == nil {
		s.store = repository.NewInMemoryStore(ctx)
	}
	s.logger.Info(ctx, "starting closet service...")

	for _, it := range s.seed {
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if err := s.store.Put(ctx, it); err != nil {
			return fmt.Errorf("seed item %q: %w", it.Name, err)
		}
	}
	items, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}

	scorer := scoring.NewScorer(scoring.WithRules(s.rules), scoring.WithWeights(s.weights))
	s.engine = engine.New(items,
		engine.WithRules(s.rules),
		engine.WithScorer(scorer),
		engine.WithOutfitLimits(s.limits),
		engine.WithClock(s.now),
	)
	metrics.UpdateItemsTotal(s.engine.Len())

	s.asymmetries = s.rules.StyleGraph().Asymmetries()
	for _, p := range s.asymmetries {
		s.logger.Warn(ctx, "style adjacency is one-way",
			logger.String("from", p.From),
			logger.String("to", p.To),
		)
	}

	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	s.queue = eventqueue.NewInMemoryQueue(eventqueue.WithCapacity(s.queueSize))

	// Workers outlive the caller's context so Stop can drain them.
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.pool = workerpool.NewPool(s.workerCount, s.queue, s, workerpool.WithPoolLogger(s.logger.Named("wear")))
	s.pool.Start(runCtx)

	s.started = true
	s.logger.Info(ctx, "closet service started",
		logger.Int("items", s.engine.Len()),
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
	)
	return nil
}

// Stop stops accepting wear events, drains the queue and stops the workers.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = false
	pool, cancel := s.pool, s.cancel
	s.mu.Unlock()

	s.logger.Info(ctx, "stopping closet service...")
	// Workers take the write lock in RecordWear, so the drain runs unlocked.
	err := pool.Shutdown(ctx)
	cancel()
	if err != nil {
		s.logger.Warn(ctx, "wear queue not fully drained", logger.Error(err))
	}
	s.logger.Info(ctx, "closet service stopped")
	return err
}

// read runs fn under the read lock and records the query metrics.
func read[T any](ctx context.Context, s *Service, op string, fn func(e *engine.Engine) T) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	if !s.started {
		return zero, ErrNotStarted
	}
	start := time.Now()
	out := fn(s.engine)
	elapsed := time.Since(start)
	metrics.RecordQuery(op, float64(elapsed.Microseconds())/1000)
	s.logger.Debug(ctx, "query served",
		logger.String("operation", op),
		logger.Int("results", resultSize(out)),
		logger.Duration("took", elapsed))
	return out, nil
}

// resultSize reports the length of list results and 1 for anything else.
func resultSize(v any) int {
	switch r := v.(type) {
	case []wardrobe.Item:
		return len(r)
	case []engine.Match:
		return len(r)
	case []engine.Outfit:
		return len(r)
	case []string:
		return len(r)
	default:
		return 1
	}
}
