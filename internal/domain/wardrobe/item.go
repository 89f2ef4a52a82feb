// Package wardrobe contains the clothing item model, search filters and the
// lookup tables the recommendation engine reasons over.
package wardrobe

import (
	"slices"
	"time"
)

// Fit describes how a garment sits on the body.
type Fit string

// Known fits. An empty Fit means unknown.
const (
	FitTight     Fit = "tight"
	FitFitted    Fit = "fitted"
	FitRegular   Fit = "regular"
	FitLoose     Fit = "loose"
	FitOversized Fit = "oversized"
)

// Condition describes the wear state of a garment.
type Condition string

// Known conditions. An empty Condition means unknown.
const (
	ConditionNew       Condition = "new"
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

// Seasons lists the four seasons in calendar order.
var Seasons = []string{"Spring", "Summer", "Fall", "Winter"} //nolint:gochecknoglobals // fixed vocabulary

// Item is one owned piece of clothing.
// Category and Style are expected to come from the closed vocabularies in
// Rules; values outside them are accepted but never match anything.
type Item struct {
	ID              string     `json:"id" koanf:"id"`
	Name            string     `json:"name" koanf:"name"`
	Category        string     `json:"category" koanf:"category"`
	Brand           string     `json:"brand" koanf:"brand"`
	PrimaryColor    string     `json:"primary_color" koanf:"primary_color"`
	SecondaryColors []string   `json:"secondary_colors" koanf:"secondary_colors"`
	Style           string     `json:"style" koanf:"style"`
	Season          []string   `json:"season" koanf:"season"`
	Occasion        []string   `json:"occasion" koanf:"occasion"`
	Price           float64    `json:"price" koanf:"price"`
	TimesWorn       int        `json:"times_worn" koanf:"times_worn"`
	DateAdded       time.Time  `json:"date_added" koanf:"date_added"`
	DateLastWorn    *time.Time `json:"date_last_worn,omitempty" koanf:"date_last_worn"`
	Tags            []string   `json:"tags" koanf:"tags"`
	WeatherTags     []string   `json:"weather_tags" koanf:"weather_tags"`
	MaterialTags    []string   `json:"material_tags" koanf:"material_tags"`
	ValueScore      float64    `json:"value_score" koanf:"value_score"`
	Fit             Fit        `json:"fit,omitempty" koanf:"fit"`
	Condition       Condition  `json:"condition,omitempty" koanf:"condition"`
}

// CostPerWear returns price divided by the wear count, treating an unworn
// item as worn once.
func (i Item) CostPerWear() float64 {
	return i.Price / float64(max(i.TimesWorn, 1))
}

// HasSeason reports whether the item is marked for season.
func (i Item) HasSeason(season string) bool {
	return slices.Contains(i.Season, season)
}

// HasOccasion reports whether the item is marked for occasion.
func (i Item) HasOccasion(occasion string) bool {
	return slices.Contains(i.Occasion, occasion)
}

// Colors returns the primary color followed by the secondary colors.
func (i Item) Colors() []string {
	out := make([]string, 0, 1+len(i.SecondaryColors))
	out = append(out, i.PrimaryColor)
	return append(out, i.SecondaryColors...)
}

// Clone returns a deep copy so callers cannot alias the owner's slices.
func (i Item) Clone() Item {
	c := i
	c.SecondaryColors = slices.Clone(i.SecondaryColors)
	c.Season = slices.Clone(i.Season)
	c.Occasion = slices.Clone(i.Occasion)
	c.Tags = slices.Clone(i.Tags)
	c.WeatherTags = slices.Clone(i.WeatherTags)
	c.MaterialTags = slices.Clone(i.MaterialTags)
	if i.DateLastWorn != nil {
		t := *i.DateLastWorn
		c.DateLastWorn = &t
	}
	return c
}

// Validate checks the numeric invariants of an item.
func (i Item) Validate() error {
	switch {
	case i.Price < 0:
		return ErrNegativePrice
	case i.TimesWorn < 0:
		return ErrNegativeWearCount
	}
	return nil
}

// CountOverlap returns the number of distinct values present in both a and b.
func CountOverlap(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	n := 0
	for _, v := range b {
		if _, ok := set[v]; ok {
			n++
			delete(set, v)
		}
	}
	return n
}

// Intersects reports whether a and b share at least one value.
func Intersects(a, b []string) bool {
	for _, v := range b {
		if slices.Contains(a, v) {
			return true
		}
	}
	return false
}
