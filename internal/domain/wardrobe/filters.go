package wardrobe

import (
	"slices"
	"time"
)

// FloatRange is an inclusive [Min, Max] bound.
type FloatRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies within the range.
func (r FloatRange) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// IntRange is an inclusive [Min, Max] bound.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v lies within the range.
func (r IntRange) Contains(v int) bool { return v >= r.Min && v <= r.Max }

// DateRange is an inclusive [Start, End] bound.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t lies within the range.
func (r DateRange) Contains(t time.Time) bool { return !t.Before(r.Start) && !t.After(r.End) }

// SearchFilters is a conjunction of optional constraints. A nil or empty
// field places no restriction on that dimension. Colors and weather tags
// compare without regard to case; other fields match exactly.
type SearchFilters struct {
	Categories  []string    `json:"categories,omitempty"`
	Colors      []string    `json:"colors,omitempty"`
	Styles      []string    `json:"styles,omitempty"`
	Seasons     []string    `json:"seasons,omitempty"`
	Occasions   []string    `json:"occasions,omitempty"`
	Brands      []string    `json:"brands,omitempty"`
	Price       *FloatRange `json:"price,omitempty"`
	TimesWorn   *IntRange   `json:"times_worn,omitempty"`
	Frequency   Frequency   `json:"frequency,omitempty"`
	DateAdded   *DateRange  `json:"date_added,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	ValueScore  *FloatRange `json:"value_score,omitempty"`
	WeatherTags []string    `json:"weather_tags,omitempty"`
	Fits        []Fit       `json:"fits,omitempty"`
	Conditions  []Condition `json:"conditions,omitempty"`
}

// IsZero reports whether no constraint is active.
func (f SearchFilters) IsZero() bool {
	return len(f.Categories) == 0 && len(f.Colors) == 0 && len(f.Styles) == 0 &&
		len(f.Seasons) == 0 && len(f.Occasions) == 0 && len(f.Brands) == 0 &&
		f.Price == nil && f.TimesWorn == nil && f.Frequency == "" && f.DateAdded == nil &&
		len(f.Tags) == 0 && f.ValueScore == nil && len(f.WeatherTags) == 0 &&
		len(f.Fits) == 0 && len(f.Conditions) == 0
}

// Matches reports whether item satisfies every active constraint. now is
// used by the recent-wear bucket.
func (f SearchFilters) Matches(item Item, now time.Time) bool {
	checks := [...]bool{
		len(f.Categories) == 0 || slices.Contains(f.Categories, item.Category),
		len(f.Colors) == 0 || hasAnyFold(item.Colors(), f.Colors),
		len(f.Styles) == 0 || slices.Contains(f.Styles, item.Style),
		len(f.Seasons) == 0 || Intersects(f.Seasons, item.Season),
		len(f.Occasions) == 0 || Intersects(f.Occasions, item.Occasion),
		len(f.Brands) == 0 || slices.Contains(f.Brands, item.Brand),
		f.Price == nil || f.Price.Contains(item.Price),
		f.TimesWorn == nil || f.TimesWorn.Contains(item.TimesWorn),
		f.Frequency == "" || f.Frequency.Matches(item, now),
		f.DateAdded == nil || f.DateAdded.Contains(item.DateAdded),
		len(f.Tags) == 0 || Intersects(f.Tags, item.Tags),
		f.ValueScore == nil || f.ValueScore.Contains(item.ValueScore),
		len(f.WeatherTags) == 0 || hasAnyFold(item.WeatherTags, f.WeatherTags),
		len(f.Fits) == 0 || slices.Contains(f.Fits, item.Fit),
		len(f.Conditions) == 0 || slices.Contains(f.Conditions, item.Condition),
	}
	for _, ok := range checks {
		if !ok {
			return false
		}
	}
	return true
}
