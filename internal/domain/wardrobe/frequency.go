package wardrobe

import (
	"strings"
	"time"
)

// Frequency names a wear-frequency bucket.
type Frequency string

// Wear-frequency buckets. Recent is independent of the count buckets, so an
// item can be both FrequencyLow and FrequencyRecent.
const (
	FrequencyNever  Frequency = "never"
	FrequencyLow    Frequency = "low"
	FrequencyMedium Frequency = "medium"
	FrequencyHigh   Frequency = "high"
	FrequencyRecent Frequency = "recent"
)

// Bucket bounds.
const (
	lowWearMax    = 3
	mediumWearMax = 10
	recentWindow  = 7 * 24 * time.Hour
)

// ParseFrequency converts a bucket name into a Frequency.
func ParseFrequency(s string) (Frequency, bool) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FrequencyNever, FrequencyLow, FrequencyMedium, FrequencyHigh, FrequencyRecent:
		return f, true
	}
	return "", false
}

// Matches reports whether item falls into the bucket as of now.
// Unknown buckets match nothing.
func (f Frequency) Matches(item Item, now time.Time) bool {
	switch f {
	case FrequencyNever:
		return item.TimesWorn == 0
	case FrequencyLow:
		return item.TimesWorn >= 1 && item.TimesWorn <= lowWearMax
	case FrequencyMedium:
		return item.TimesWorn > lowWearMax && item.TimesWorn <= mediumWearMax
	case FrequencyHigh:
		return item.TimesWorn > mediumWearMax
	case FrequencyRecent:
		return item.DateLastWorn != nil && now.Sub(*item.DateLastWorn) <= recentWindow
	}
	return false
}
