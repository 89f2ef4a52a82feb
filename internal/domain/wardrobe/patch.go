package wardrobe

import (
	"slices"
	"time"
)

// ItemPatch carries a partial update. Nil fields are left untouched; the ID
// is never patched.
type ItemPatch struct {
	Name            *string    `json:"name,omitempty"`
	Category        *string    `json:"category,omitempty"`
	Brand           *string    `json:"brand,omitempty"`
	PrimaryColor    *string    `json:"primary_color,omitempty"`
	SecondaryColors []string   `json:"secondary_colors,omitempty"`
	Style           *string    `json:"style,omitempty"`
	Season          []string   `json:"season,omitempty"`
	Occasion        []string   `json:"occasion,omitempty"`
	Price           *float64   `json:"price,omitempty"`
	TimesWorn       *int       `json:"times_worn,omitempty"`
	DateAdded       *time.Time `json:"date_added,omitempty"`
	DateLastWorn    *time.Time `json:"date_last_worn,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	WeatherTags     []string   `json:"weather_tags,omitempty"`
	MaterialTags    []string   `json:"material_tags,omitempty"`
	ValueScore      *float64   `json:"value_score,omitempty"`
	Fit             *Fit       `json:"fit,omitempty"`
	Condition       *Condition `json:"condition,omitempty"`
}

// Apply returns a copy of item with the patch applied.
func (p ItemPatch) Apply(item Item) Item {
	out := item.Clone()
	setIf(&out.Name, p.Name)
	setIf(&out.Category, p.Category)
	setIf(&out.Brand, p.Brand)
	setIf(&out.PrimaryColor, p.PrimaryColor)
	setIf(&out.Style, p.Style)
	setIf(&out.Price, p.Price)
	setIf(&out.TimesWorn, p.TimesWorn)
	setIf(&out.DateAdded, p.DateAdded)
	setIf(&out.ValueScore, p.ValueScore)
	setIf(&out.Fit, p.Fit)
	setIf(&out.Condition, p.Condition)
	if p.DateLastWorn != nil {
		t := *p.DateLastWorn
		out.DateLastWorn = &t
	}
	replaceIf(&out.SecondaryColors, p.SecondaryColors)
	replaceIf(&out.Season, p.Season)
	replaceIf(&out.Occasion, p.Occasion)
	replaceIf(&out.Tags, p.Tags)
	replaceIf(&out.WeatherTags, p.WeatherTags)
	replaceIf(&out.MaterialTags, p.MaterialTags)
	return out
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func replaceIf(dst *[]string, v []string) {
	if v != nil {
		*dst = slices.Clone(v)
	}
}
