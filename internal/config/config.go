// Package config defines service configuration and its defaults.
//
// Values are layered by Load: defaults from New, then an optional YAML file,
// then CLOSET_ environment variables.
package config

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/okian/closet/internal/domain/engine"
	"github.com/okian/closet/internal/domain/scoring"
	"github.com/okian/closet/internal/domain/wardrobe"
	"github.com/okian/closet/pkg/metrics"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log output.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SeedFile is an optional YAML file with an items list loaded at start.
	SeedFile string `koanf:"seed_file"`

	// EventQueueSize bounds the in-memory wear event queue.
	EventQueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of wear event workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize bounds how many wear event IDs are remembered.
	DedupeSize int `koanf:"dedupe_size"`

	// MaxResults caps limit query parameters on list endpoints.
	MaxResults int `koanf:"max_results"`

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	Outfit  engine.OutfitLimits `koanf:"outfit"`
	Weights scoring.Weights     `koanf:"weights"`

	// Rules overrides the built-in rule tables. Empty fields keep the defaults.
	Rules RulesConfig `koanf:"rules"`

	Metrics MetricsConfig `koanf:"metrics"`
}

// MetricsConfig holds histogram bucket boundaries.
type MetricsConfig struct {
	LatencyBuckets []float64 `koanf:"latency_buckets"`
	OutfitBuckets  []float64 `koanf:"outfit_buckets"`
}

// Options returns the metrics options for the configured buckets.
func (m MetricsConfig) Options() []metrics.Option {
	return []metrics.Option{
		metrics.WithHistogramBuckets(m.LatencyBuckets),
		metrics.WithOutfitBuckets(m.OutfitBuckets),
	}
}

// RulesConfig holds optional replacements for wardrobe.DefaultRules.
type RulesConfig struct {
	NeutralColors       []string            `koanf:"neutral_colors"`
	ComplementaryColors [][]string          `koanf:"complementary_colors"`
	StyleAdjacency      map[string][]string `koanf:"style_adjacency"`
	EssentialCategories []string            `koanf:"essential_categories"`
	EssentialColors     []string            `koanf:"essential_colors"`
	EssentialStyles     []string            `koanf:"essential_styles"`
	TopCategories       []string            `koanf:"top_categories"`
	BottomCategories    []string            `koanf:"bottom_categories"`
	ShoeCategories      []string            `koanf:"shoe_categories"`
}

// New returns a Config populated with defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		Addr:            ":9080",
		EventQueueSize:  10_000,
		WorkerCount:     runtime.NumCPU(),
		DedupeSize:      50_000,
		MaxResults:      100,
		ShutdownTimeout: 10 * time.Second,
		Outfit:          engine.DefaultOutfitLimits(),
		Weights:         scoring.DefaultWeights(),
		Metrics: MetricsConfig{
			LatencyBuckets: metrics.DefaultLatencyBuckets(),
			OutfitBuckets:  metrics.DefaultOutfitBuckets(),
		},
	}
}

// Validate reports the first invalid setting wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	case c.EventQueueSize <= 0:
		return fmt.Errorf("%w: queue_size must be positive", ErrInvalidConfig)
	case c.WorkerCount <= 0:
		return fmt.Errorf("%w: worker_count must be positive", ErrInvalidConfig)
	case c.DedupeSize < 0:
		return fmt.Errorf("%w: dedupe_size must not be negative", ErrInvalidConfig)
	case c.MaxResults <= 0:
		return fmt.Errorf("%w: max_results must be positive", ErrInvalidConfig)
	case c.Outfit.MaxTops <= 0 || c.Outfit.MaxBottoms <= 0 || c.Outfit.MaxOutfits <= 0:
		return fmt.Errorf("%w: outfit limits must be positive", ErrInvalidConfig)
	case c.Weights.ValueDivisor <= 0:
		return fmt.Errorf("%w: weights.value_divisor must be positive", ErrInvalidConfig)
	case !increasing(c.Metrics.LatencyBuckets):
		return fmt.Errorf("%w: metrics.latency_buckets must be non-empty and increasing", ErrInvalidConfig)
	case !increasing(c.Metrics.OutfitBuckets):
		return fmt.Errorf("%w: metrics.outfit_buckets must be non-empty and increasing", ErrInvalidConfig)
	}
	for _, pair := range c.Rules.ComplementaryColors {
		if len(pair) != 2 {
			return fmt.Errorf("%w: complementary_colors entries need two colors, got %v", ErrInvalidConfig, pair)
		}
	}
	return nil
}

// WardrobeRules merges the configured overrides into the default rules.
func (c *Config) WardrobeRules() wardrobe.Rules {
	r := wardrobe.DefaultRules()
	o := c.Rules
	replace(&r.NeutralColors, o.NeutralColors)
	replace(&r.EssentialCategories, o.EssentialCategories)
	replace(&r.EssentialColors, o.EssentialColors)
	replace(&r.EssentialStyles, o.EssentialStyles)
	replace(&r.TopCategories, o.TopCategories)
	replace(&r.BottomCategories, o.BottomCategories)
	replace(&r.ShoeCategories, o.ShoeCategories)
	if len(o.ComplementaryColors) > 0 {
		r.ComplementaryColors = make([][2]string, 0, len(o.ComplementaryColors))
		for _, p := range o.ComplementaryColors {
			if len(p) == 2 {
				r.ComplementaryColors = append(r.ComplementaryColors, [2]string{p[0], p[1]})
			}
		}
	}
	if len(o.StyleAdjacency) > 0 {
		r.StyleAdjacency = make(map[string][]string, len(o.StyleAdjacency))
		for k, v := range o.StyleAdjacency {
			r.StyleAdjacency[k] = append([]string(nil), v...)
		}
	}
	return r
}

func increasing(buckets []float64) bool {
	if len(buckets) == 0 {
		return false
	}
	for i := 1; i < len(buckets); i++ {
		if buckets[i] <= buckets[i-1] {
			return false
		}
	}
	return true
}

func replace(dst *[]string, src []string) {
	if len(src) > 0 {
		*dst = append([]string(nil), src...)
	}
}
