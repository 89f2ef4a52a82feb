package engine

import (
	"cmp"
	"slices"

	"github.com/okian/closet/internal/domain/wardrobe"
)

// Default outfit enumeration caps. The search is greedy: it looks at the
// first MaxTops tops and MaxBottoms bottoms in collection order and keeps
// the first shoe that fits each pair.
const (
	DefaultMaxTops    = 5
	DefaultMaxBottoms = 3
	DefaultMaxOutfits = 10
)

// OutfitLimits bounds outfit enumeration.
type OutfitLimits struct {
	MaxTops    int `koanf:"max_tops"`
	MaxBottoms int `koanf:"max_bottoms"`
	MaxOutfits int `koanf:"max_results"`
}

// DefaultOutfitLimits returns the stock caps.
func DefaultOutfitLimits() OutfitLimits {
	return OutfitLimits{MaxTops: DefaultMaxTops, MaxBottoms: DefaultMaxBottoms, MaxOutfits: DefaultMaxOutfits}
}

// OutfitContext narrows recommendation candidates. Zero fields are ignored.
type OutfitContext struct {
	Occasion string                      `json:"occasion,omitempty"`
	Weather  *wardrobe.WeatherConditions `json:"weather,omitempty"`
}

// Outfit is a recommended top, bottom and shoe combination.
type Outfit struct {
	Items []wardrobe.Item `json:"items"`
	Score float64         `json:"score"`
}

// GenerateRecommendations enumerates top/bottom/shoe outfits from the items
// that fit ctx and returns the best ones, highest score first.
func (e *Engine) GenerateRecommendations(ctx OutfitContext) []Outfit {
	candidates := e.items
	if ctx.Occasion != "" {
		candidates = e.filter(candidates, func(it wardrobe.Item) bool { return it.HasOccasion(ctx.Occasion) })
	}
	if ctx.Weather != nil {
		wc := *ctx.Weather
		candidates = e.filter(candidates, func(it wardrobe.Item) bool { return e.rules.Weather.Compatible(it, wc) })
	}

	var tops, bottoms, shoes []wardrobe.Item
	for _, it := range candidates {
		switch e.slots.Of(it.Category) {
		case wardrobe.SlotTop:
			tops = append(tops, it)
		case wardrobe.SlotBottom:
			bottoms = append(bottoms, it)
		case wardrobe.SlotShoes:
			shoes = append(shoes, it)
		case wardrobe.SlotNone:
		}
	}
	tops = tops[:min(len(tops), e.limits.MaxTops)]
	bottoms = bottoms[:min(len(bottoms), e.limits.MaxBottoms)]

	outfits := make([]Outfit, 0)
	for _, top := range tops {
		for _, bottom := range bottoms {
			if !e.scorer.ColorsComplement(top.PrimaryColor, bottom.PrimaryColor) ||
				!e.scorer.StylesCompatible(top.Style, bottom.Style) {
				continue
			}
			shoe, ok := e.firstShoe(shoes, top, bottom)
			if !ok {
				continue
			}
			items := []wardrobe.Item{top.Clone(), bottom.Clone(), shoe.Clone()}
			outfits = append(outfits, Outfit{Items: items, Score: e.scorer.Outfit(items)})
		}
	}

	slices.SortStableFunc(outfits, func(a, b Outfit) int { return cmp.Compare(b.Score, a.Score) })
	if len(outfits) > e.limits.MaxOutfits {
		outfits = outfits[:e.limits.MaxOutfits]
	}
	return outfits
}

func (e *Engine) firstShoe(shoes []wardrobe.Item, top, bottom wardrobe.Item) (wardrobe.Item, bool) {
	for _, s := range shoes {
		if !e.scorer.StylesCompatible(s.Style, top.Style) {
			continue
		}
		if e.scorer.ColorsComplement(s.PrimaryColor, top.PrimaryColor) ||
			e.scorer.ColorsComplement(s.PrimaryColor, bottom.PrimaryColor) {
			return s, true
		}
	}
	return wardrobe.Item{}, false
}
