// Package scoring computes pairwise and whole-outfit compatibility scores
// between wardrobe items.
package scoring

import (
	"github.com/okian/closet/internal/domain/wardrobe"
)

// Default score weights.
const (
	defaultColorWeight        = 3
	defaultStyleWeight        = 2
	defaultBrandWeight        = 1
	defaultValueDivisor       = 20
	defaultCompletenessWeight = 2
)

// Weights holds the additive score components. The score is a heuristic,
// not a probability; larger is better and there is no upper bound.
type Weights struct {
	// Color is added when the two items' primary colors complement.
	Color float64 `koanf:"color"`
	// Style is added when the two items' styles are compatible.
	Style float64 `koanf:"style"`
	// Brand is added when both items share a brand.
	Brand float64 `koanf:"brand"`
	// ValueDivisor scales the summed value scores of a pair.
	ValueDivisor float64 `koanf:"value_divisor"`
	// Completeness is added per item when scoring a whole outfit.
	Completeness float64 `koanf:"completeness"`
}

// DefaultWeights returns the stock weights.
func DefaultWeights() Weights {
	return Weights{
		Color:        defaultColorWeight,
		Style:        defaultStyleWeight,
		Brand:        defaultBrandWeight,
		ValueDivisor: defaultValueDivisor,
		Completeness: defaultCompletenessWeight,
	}
}

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithRules indexes the palette and style tables of r.
func WithRules(r wardrobe.Rules) Option {
	return func(s *Scorer) {
		s.palette = r.Palette()
		s.styles = r.StyleGraph()
	}
}

// WithWeights overrides the score weights. A non-positive ValueDivisor keeps
// the current one.
func WithWeights(w Weights) Option {
	return func(s *Scorer) {
		if w.ValueDivisor <= 0 {
			w.ValueDivisor = s.weights.ValueDivisor
		}
		s.weights = w
	}
}

// Scorer scores item pairs and outfits. It is immutable after construction
// and safe for concurrent use.
type Scorer struct {
	palette wardrobe.Palette
	styles  wardrobe.StyleGraph
	weights Weights
}

// NewScorer creates a scorer over the default rules unless overridden.
func NewScorer(opts ...Option) *Scorer {
	rules := wardrobe.DefaultRules()
	s := &Scorer{
		palette: rules.Palette(),
		styles:  rules.StyleGraph(),
		weights: DefaultWeights(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Weights returns the weights in use.
func (s *Scorer) Weights() Weights { return s.weights }

// ColorsComplement reports whether c1 and c2 go together.
func (s *Scorer) ColorsComplement(c1, c2 string) bool {
	return s.palette.Complement(c1, c2)
}

// StylesCompatible reports whether s1 and s2 can be worn together.
func (s *Scorer) StylesCompatible(s1, s2 string) bool {
	return s.styles.Compatible(s1, s2)
}

// Compatibility scores a pair of items.
func (s *Scorer) Compatibility(a, b wardrobe.Item) float64 {
	score := 0.0
	if s.ColorsComplement(a.PrimaryColor, b.PrimaryColor) {
		score += s.weights.Color
	}
	if s.StylesCompatible(a.Style, b.Style) {
		score += s.weights.Style
	}
	score += float64(wardrobe.CountOverlap(a.Occasion, b.Occasion))
	score += float64(wardrobe.CountOverlap(a.Season, b.Season))
	if a.Brand == b.Brand {
		score += s.weights.Brand
	}
	score += (a.ValueScore + b.ValueScore) / s.weights.ValueDivisor
	return score
}

// Outfit scores a whole outfit: the mean pairwise compatibility, plus a
// completeness bonus per item, plus the mean value score.
func (s *Scorer) Outfit(items []wardrobe.Item) float64 {
	n := len(items)
	if n == 0 {
		return 0
	}
	var pairSum float64
	pairs := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairSum += s.Compatibility(items[i], items[j])
			pairs++
		}
	}
	var valueSum float64
	for _, it := range items {
		valueSum += it.ValueScore
	}
	score := s.weights.Completeness * float64(n)
	if pairs > 0 {
		score += pairSum / float64(pairs)
	}
	return score + valueSum/float64(n)
}
