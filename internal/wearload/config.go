// Package wearload drives a running closet service with wear events: it
// reads the collection, posts randomized events from concurrent workers and
// reports how the service answered.
package wearload

import (
	"time"

	"github.com/okian/closet/internal/domain/model"
)

// Config holds configuration for a load run.
type Config struct {
	BaseURL        string        // Base URL of the service
	NumEvents      int           // Number of distinct wear events to generate
	DuplicateRatio float64       // Share of events that are sent a second time, 0..1
	Workers        int           // Number of concurrent workers
	Timeout        time.Duration // HTTP request timeout
	SettleDelay    time.Duration // Wait before reading stats after submission
	OutputFile     string        // Optional JSON file with the generated events
	Verbose        bool          // Enable verbose logging
}

// Event is the body of POST /wear.
type Event = model.WearEvent

// Item is the subset of an item the generator needs.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AckResponse represents the response from a wear submission.
type AckResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

// ServiceStats is the subset of GET /stats the report uses.
type ServiceStats struct {
	Items         int `json:"items"`
	QueueLength   int `json:"queue_length"`
	QueueCapacity int `json:"queue_capacity"`
	DedupeEntries int `json:"dedupe_entries"`
}

// Stats holds run statistics.
type Stats struct {
	ItemsFetched    int
	EventsGenerated int
	EventsSubmitted int
	EventsAccepted  int
	EventsDuplicate int
	EventsRejected  int // 429 backpressure
	EventsFailed    int
	Service         ServiceStats
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
}
