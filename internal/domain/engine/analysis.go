package engine

import (
	"cmp"
	"slices"

	"github.com/okian/closet/internal/domain/wardrobe"
)

// Underutilization thresholds: items worn fewer than underusedWearBelow
// times that cost more than underusedPriceAbove.
const (
	underusedWearBelow  = 3
	underusedPriceAbove = 50
)

// FindUnderutilizedItems returns expensive, rarely worn items, highest
// cost-per-wear first, cut to limit.
func (e *Engine) FindUnderutilizedItems(limit int) []wardrobe.Item {
	out := e.filter(e.items, func(it wardrobe.Item) bool {
		return it.TimesWorn < underusedWearBelow && it.Price > underusedPriceAbove
	})
	slices.SortStableFunc(out, func(a, b wardrobe.Item) int {
		return cmp.Compare(b.CostPerWear(), a.CostPerWear())
	})
	if limit < 0 {
		limit = 0
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return cloneAll(out)
}

// SeasonGap lists the essential categories absent for one season.
type SeasonGap struct {
	Season            string   `json:"season"`
	MissingCategories []string `json:"missing_categories"`
}

// GapReport describes what an essential wardrobe has that this one lacks.
type GapReport struct {
	MissingCategories []string    `json:"missing_categories"`
	ColorGaps         []string    `json:"color_gaps"`
	StyleGaps         []string    `json:"style_gaps"`
	SeasonalGaps      []SeasonGap `json:"seasonal_gaps"`
}

// AnalyzeWardrobeGaps compares the owned categories, primary colors and
// styles against the essential lists. Seasonal gaps only include seasons
// with at least one missing category, in calendar order.
func (e *Engine) AnalyzeWardrobeGaps() GapReport {
	categories := make(map[string]struct{})
	colors := make(map[string]struct{})
	styles := make(map[string]struct{})
	bySeason := make(map[string]map[string]struct{}, len(wardrobe.Seasons))
	for _, s := range wardrobe.Seasons {
		bySeason[s] = make(map[string]struct{})
	}

	for _, it := range e.items {
		categories[it.Category] = struct{}{}
		colors[it.PrimaryColor] = struct{}{}
		styles[it.Style] = struct{}{}
		for _, s := range it.Season {
			if set, ok := bySeason[s]; ok {
				set[it.Category] = struct{}{}
			}
		}
	}

	report := GapReport{
		MissingCategories: missing(e.rules.EssentialCategories, categories),
		ColorGaps:         missing(e.rules.EssentialColors, colors),
		StyleGaps:         missing(e.rules.EssentialStyles, styles),
		SeasonalGaps:      make([]SeasonGap, 0),
	}
	for _, s := range wardrobe.Seasons {
		if gaps := missing(e.rules.EssentialCategories, bySeason[s]); len(gaps) > 0 {
			report.SeasonalGaps = append(report.SeasonalGaps, SeasonGap{Season: s, MissingCategories: gaps})
		}
	}
	return report
}

func missing(essentials []string, owned map[string]struct{}) []string {
	out := make([]string, 0)
	for _, v := range essentials {
		if _, ok := owned[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}
