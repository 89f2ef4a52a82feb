package engine

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/okian/closet/internal/domain/wardrobe"
)

// ValueOrder selects the direction of a cost-per-wear ranking.
type ValueOrder string

// Value orders.
const (
	// ValueBest ranks the lowest cost-per-wear first.
	ValueBest ValueOrder = "best"
	// ValueWorst ranks the highest cost-per-wear first.
	ValueWorst ValueOrder = "worst"
)

// ParseValueOrder converts a name into a ValueOrder.
func ParseValueOrder(s string) (ValueOrder, bool) {
	o := ValueOrder(strings.ToLower(strings.TrimSpace(s)))
	switch o {
	case ValueBest, ValueWorst:
		return o, true
	}
	return "", false
}

// Search returns, in collection order, the items whose text fields contain
// every whitespace-separated token of query (case-insensitively) and that
// satisfy filters. An empty query matches every item.
func (e *Engine) Search(query string, filters wardrobe.SearchFilters) []wardrobe.Item {
	tokens := strings.Fields(foldText(query))
	now := e.now()
	return cloneAll(e.filter(e.items, func(it wardrobe.Item) bool {
		return matchesTokens(it, tokens) && filters.Matches(it, now)
	}))
}

// Filter applies filters alone.
func (e *Engine) Filter(filters wardrobe.SearchFilters) []wardrobe.Item {
	return e.Search("", filters)
}

// SearchByFrequency returns the items in the wear-frequency bucket.
func (e *Engine) SearchByFrequency(f wardrobe.Frequency) []wardrobe.Item {
	now := e.now()
	return cloneAll(e.filter(e.items, func(it wardrobe.Item) bool {
		return f.Matches(it, now)
	}))
}

// SearchByValue returns every item ranked by cost-per-wear. Ties keep
// collection order. Unknown orders fall back to ValueBest.
func (e *Engine) SearchByValue(order ValueOrder) []wardrobe.Item {
	out := e.Items()
	slices.SortStableFunc(out, func(a, b wardrobe.Item) int {
		if order == ValueWorst {
			return cmp.Compare(b.CostPerWear(), a.CostPerWear())
		}
		return cmp.Compare(a.CostPerWear(), b.CostPerWear())
	})
	return out
}

// SearchByWeather returns the items suited to wc.
func (e *Engine) SearchByWeather(wc wardrobe.WeatherConditions) []wardrobe.Item {
	return cloneAll(e.filter(e.items, func(it wardrobe.Item) bool {
		return e.rules.Weather.Compatible(it, wc)
	}))
}

func matchesTokens(it wardrobe.Item, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	haystack := foldText(searchText(it))
	for _, t := range tokens {
		if !strings.Contains(haystack, t) {
			return false
		}
	}
	return true
}

func searchText(it wardrobe.Item) string {
	parts := []string{it.Name, it.Category, it.Brand, it.Style, it.PrimaryColor}
	parts = append(parts, it.SecondaryColors...)
	parts = append(parts, it.Season...)
	parts = append(parts, it.Occasion...)
	parts = append(parts, it.Tags...)
	parts = append(parts, it.WeatherTags...)
	parts = append(parts, it.MaterialTags...)
	return strings.Join(parts, " ")
}

// foldText normalizes s for case-insensitive comparison.
func foldText(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
