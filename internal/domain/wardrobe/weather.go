package wardrobe

import (
	"slices"
	"strings"
)

// Conditions is the sky/precipitation state of a weather reading.
type Conditions string

// Known weather conditions.
const (
	ConditionsSunny  Conditions = "sunny"
	ConditionsCloudy Conditions = "cloudy"
	ConditionsRainy  Conditions = "rainy"
	ConditionsSnowy  Conditions = "snowy"
	ConditionsWindy  Conditions = "windy"
)

// ParseConditions converts a name into Conditions.
func ParseConditions(s string) (Conditions, bool) {
	c := Conditions(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case ConditionsSunny, ConditionsCloudy, ConditionsRainy, ConditionsSnowy, ConditionsWindy:
		return c, true
	}
	return "", false
}

// WeatherConditions is the ambient weather an outfit has to cope with.
// Temperature is in degrees Fahrenheit.
type WeatherConditions struct {
	Temperature float64    `json:"temperature"`
	Conditions  Conditions `json:"conditions"`
	Season      string     `json:"season"`
}

// WeatherRules maps temperature bands and conditions to the weather tags an
// item needs. Bands are half-open: t < ColdBelow is cold, t < CoolBelow is
// cool, t < MildBelow is mild, anything else is hot.
type WeatherRules struct {
	ColdBelow float64
	CoolBelow float64
	MildBelow float64

	Cold []string
	Cool []string
	Mild []string
	Hot  []string

	Rainy []string
	Windy []string
	Snowy []string
}

// Compatible reports whether item suits the weather. Items without weather
// tags suit any weather. Tags compare case-insensitively.
func (w WeatherRules) Compatible(item Item, wc WeatherConditions) bool {
	if len(item.WeatherTags) == 0 {
		return true
	}
	if !hasAnyFold(item.WeatherTags, w.band(wc.Temperature)) {
		return false
	}
	if need := w.conditionTags(wc.Conditions); need != nil && !hasAnyFold(item.WeatherTags, need) {
		return false
	}
	return item.HasSeason(wc.Season)
}

func (w WeatherRules) band(t float64) []string {
	switch {
	case t < w.ColdBelow:
		return w.Cold
	case t < w.CoolBelow:
		return w.Cool
	case t < w.MildBelow:
		return w.Mild
	default:
		return w.Hot
	}
}

// conditionTags returns nil when the conditions add no requirement.
func (w WeatherRules) conditionTags(c Conditions) []string {
	switch c {
	case ConditionsRainy:
		return w.Rainy
	case ConditionsWindy:
		return w.Windy
	case ConditionsSnowy:
		return w.Snowy
	}
	return nil
}

func hasAnyFold(tags, want []string) bool {
	return slices.ContainsFunc(tags, func(t string) bool {
		return slices.ContainsFunc(want, func(w string) bool { return strings.EqualFold(t, w) })
	})
}
