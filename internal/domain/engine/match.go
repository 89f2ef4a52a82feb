package engine

import (
	"cmp"
	"slices"

	"github.com/okian/closet/internal/domain/wardrobe"
)

// Match is a candidate piece with its compatibility score against the
// selected item.
type Match struct {
	Item  wardrobe.Item `json:"item"`
	Score float64       `json:"score"`
}

// FindMatchingPieces ranks the items that can be worn with selected: colors
// complement, styles are compatible, occasions and seasons overlap, and the
// category differs. Results are sorted by score, highest first, and cut to
// maxResults.
func (e *Engine) FindMatchingPieces(selected wardrobe.Item, maxResults int) []Match {
	matches := make([]Match, 0)
	if maxResults <= 0 {
		return matches
	}
	for _, cand := range e.items {
		if cand.ID == selected.ID || !e.pairs(selected, cand) {
			continue
		}
		matches = append(matches, Match{Item: cand, Score: e.scorer.Compatibility(selected, cand)})
	}
	slices.SortStableFunc(matches, func(a, b Match) int { return cmp.Compare(b.Score, a.Score) })
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	for i := range matches {
		matches[i].Item = matches[i].Item.Clone()
	}
	return matches
}

func (e *Engine) pairs(selected, cand wardrobe.Item) bool {
	return cand.Category != selected.Category &&
		e.scorer.ColorsComplement(selected.PrimaryColor, cand.PrimaryColor) &&
		e.scorer.StylesCompatible(selected.Style, cand.Style) &&
		wardrobe.Intersects(selected.Occasion, cand.Occasion) &&
		wardrobe.Intersects(selected.Season, cand.Season)
}
