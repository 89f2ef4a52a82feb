package engine

import (
	"time"

	"github.com/okian/closet/internal/domain/scoring"
	"github.com/okian/closet/internal/domain/wardrobe"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithRules replaces the default lookup tables. The engine keeps its own copy.
func WithRules(r wardrobe.Rules) Option {
	return func(e *Engine) {
		e.rules = r.Clone()
	}
}

// WithScorer sets the compatibility scorer. Without it the engine builds one
// from its rules with the default weights.
func WithScorer(s *scoring.Scorer) Option {
	return func(e *Engine) {
		if s != nil {
			e.scorer = s
		}
	}
}

// WithOutfitLimits overrides the outfit enumeration caps. Non-positive
// fields keep their defaults.
func WithOutfitLimits(l OutfitLimits) Option {
	return func(e *Engine) {
		if l.MaxTops > 0 {
			e.limits.MaxTops = l.MaxTops
		}
		if l.MaxBottoms > 0 {
			e.limits.MaxBottoms = l.MaxBottoms
		}
		if l.MaxOutfits > 0 {
			e.limits.MaxOutfits = l.MaxOutfits
		}
	}
}

// WithClock sets the time source used for recent-wear checks.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}
