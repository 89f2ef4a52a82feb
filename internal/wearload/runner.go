package wearload

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/closet/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0o750
	filePermission      = 0o600
)

// Percentage multiplier for the final report.
const percentageMultiplier = 100

type outcome int

const (
	outcomeAccepted outcome = iota
	outcomeDuplicate
	outcomeRejected
	outcomeFailed
)

// Run executes one load run and returns its statistics.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	if cfg.NumEvents <= 0 || cfg.Workers <= 0 {
		return nil, fmt.Errorf("%w: events and workers must be positive", ErrInvalidConfig)
	}
	log := logger.Get()
	stats := &Stats{StartTime: time.Now()}
	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)

	log.Info(ctx, "starting wear load",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("events", cfg.NumEvents),
		logger.Int("workers", cfg.Workers),
		logger.Float64("duplicateRatio", cfg.DuplicateRatio),
		logger.Duration("timeout", cfg.Timeout))

	if err := client.getJSON(ctx, "/healthz", nil); err != nil {
		return nil, fmt.Errorf("service health check failed: %w", err)
	}

	var items []Item
	if err := client.getJSON(ctx, "/items", &items); err != nil {
		return nil, fmt.Errorf("item retrieval failed: %w", err)
	}
	stats.ItemsFetched = len(items)

	events, err := generateEvents(ctx, cfg, items, time.Now())
	if err != nil {
		return nil, fmt.Errorf("event generation failed: %w", err)
	}
	stats.EventsGenerated = len(events)

	submitEvents(ctx, cfg, client, events, stats)

	if cfg.SettleDelay > 0 {
		log.Info(ctx, "waiting for events to be processed", logger.Duration("delay", cfg.SettleDelay))
		select {
		case <-ctx.Done():
			return stats, fmt.Errorf("context cancelled while settling: %w", ctx.Err())
		case <-time.After(cfg.SettleDelay):
		}
	}

	if err := client.getJSON(ctx, "/stats", &stats.Service); err != nil {
		log.Warn(ctx, "failed to read service stats", logger.Error(err))
	}

	if cfg.OutputFile != "" {
		if err := saveEvents(cfg.OutputFile, events); err != nil {
			log.Warn(ctx, "failed to save events to file", logger.Error(err))
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)
	return stats, nil
}

// submitEvents posts events from cfg.Workers goroutines and tallies the answers.
func submitEvents(ctx context.Context, cfg *Config, client *HTTPClient, events []Event, stats *Stats) {
	var accepted, duplicate, rejected, failed, submitted atomic.Int64

	eventChan := make(chan Event, cfg.Workers*2)
	var wg sync.WaitGroup
	for range cfg.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for e := range eventChan {
				if ctx.Err() != nil {
					return
				}
				submitted.Add(1)
				switch submitOne(ctx, client, e, cfg.Verbose) {
				case outcomeAccepted:
					accepted.Add(1)
				case outcomeDuplicate:
					duplicate.Add(1)
				case outcomeRejected:
					rejected.Add(1)
				case outcomeFailed:
					failed.Add(1)
				}
			}
		}()
	}

	go func() {
		defer close(eventChan)
		for _, e := range events {
			select {
			case <-ctx.Done():
				return
			case eventChan <- e:
			}
		}
	}()
	wg.Wait()

	stats.EventsSubmitted = int(submitted.Load())
	stats.EventsAccepted = int(accepted.Load())
	stats.EventsDuplicate = int(duplicate.Load())
	stats.EventsRejected = int(rejected.Load())
	stats.EventsFailed = int(failed.Load())
}

func submitOne(ctx context.Context, client *HTTPClient, e Event, verbose bool) outcome {
	status, body, err := client.postJSON(ctx, "/wear", e)
	if err != nil {
		if verbose {
			logger.Get().Warn(ctx, "wear submission failed", logger.String("event_id", e.EventID), logger.Error(err))
		}
		return outcomeFailed
	}
	switch status {
	case http.StatusAccepted:
		return outcomeAccepted
	case http.StatusOK:
		var ack AckResponse
		if json.Unmarshal(body, &ack) == nil && ack.Duplicate {
			return outcomeDuplicate
		}
		return outcomeFailed
	case http.StatusTooManyRequests:
		return outcomeRejected
	default:
		if verbose {
			logger.Get().Warn(ctx, "wear submission rejected",
				logger.String("event_id", e.EventID),
				logger.Int("status", status),
				logger.String("body", string(body)))
		}
		return outcomeFailed
	}
}

// saveEvents writes the generated events as a JSON array.
func saveEvents(filename string, events []Event) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal events: %w", err)
	}
	if err := os.WriteFile(filename, data, filePermission); err != nil {
		return fmt.Errorf("failed to write events: %w", err)
	}
	return nil
}

// displayFinalStats logs the run summary.
func displayFinalStats(ctx context.Context, stats *Stats) {
	var acceptRate, eventsPerSecond float64
	if stats.EventsSubmitted > 0 {
		acceptRate = float64(stats.EventsAccepted) / float64(stats.EventsSubmitted) * percentageMultiplier
	}
	if stats.Duration > 0 {
		eventsPerSecond = float64(stats.EventsSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(ctx, "final statistics",
		logger.Int("itemsFetched", stats.ItemsFetched),
		logger.Int("eventsGenerated", stats.EventsGenerated),
		logger.Int("eventsSubmitted", stats.EventsSubmitted),
		logger.Int("eventsAccepted", stats.EventsAccepted),
		logger.Int("eventsDuplicate", stats.EventsDuplicate),
		logger.Int("eventsRejected", stats.EventsRejected),
		logger.Int("eventsFailed", stats.EventsFailed),
		logger.Int("serviceQueueLength", stats.Service.QueueLength),
		logger.Int("serviceDedupeEntries", stats.Service.DedupeEntries),
		logger.Duration("duration", stats.Duration),
		logger.Float64("acceptRate", acceptRate),
		logger.Float64("eventsPerSecond", eventsPerSecond))
}
