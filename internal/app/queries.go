package service

import (
	"context"
	"fmt"

	"github.com/okian/closet/internal/domain/engine"
	"github.com/okian/closet/internal/domain/wardrobe"
	"github.com/okian/closet/pkg/metrics"
)

// Items returns the whole collection in order.
func (s *Service) Items(ctx context.Context) ([]wardrobe.Item, error) {
	return read(ctx, s, "items", func(e *engine.Engine) []wardrobe.Item { return e.Items() })
}

// Item returns one item or ErrUnknownItem.
func (s *Service) Item(ctx context.Context, id string) (wardrobe.Item, error) {
	type result struct {
		item wardrobe.Item
		ok   bool
	}
	r, err := read(ctx, s, "item", func(e *engine.Engine) result {
		it, ok := e.Get(id)
		return result{it, ok}
	})
	if err != nil {
		return wardrobe.Item{}, err
	}
	if !r.ok {
		return wardrobe.Item{}, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	return r.item, nil
}

// Search runs a text query plus attribute filters.
func (s *Service) Search(ctx context.Context, query string, filters wardrobe.SearchFilters) ([]wardrobe.Item, error) {
	return read(ctx, s, "search", func(e *engine.Engine) []wardrobe.Item { return e.Search(query, filters) })
}

// SearchByFrequency returns the items in one wear-frequency bucket.
func (s *Service) SearchByFrequency(ctx context.Context, f wardrobe.Frequency) ([]wardrobe.Item, error) {
	return read(ctx, s, "search_frequency", func(e *engine.Engine) []wardrobe.Item { return e.SearchByFrequency(f) })
}

// SearchByValue orders the collection by cost per wear.
func (s *Service) SearchByValue(ctx context.Context, order engine.ValueOrder) ([]wardrobe.Item, error) {
	return read(ctx, s, "search_value", func(e *engine.Engine) []wardrobe.Item { return e.SearchByValue(order) })
}

// SearchByWeather returns the items suited to wc.
func (s *Service) SearchByWeather(ctx context.Context, wc wardrobe.WeatherConditions) ([]wardrobe.Item, error) {
	return read(ctx, s, "search_weather", func(e *engine.Engine) []wardrobe.Item { return e.SearchByWeather(wc) })
}

// FindMatchingPieces scores every piece that pairs with the item id.
func (s *Service) FindMatchingPieces(ctx context.Context, id string, limit int) ([]engine.Match, error) {
	type result struct {
		matches []engine.Match
		ok      bool
	}
	r, err := read(ctx, s, "matches", func(e *engine.Engine) result {
		selected, ok := e.Get(id)
		if !ok {
			return result{}
		}
		return result{e.FindMatchingPieces(selected, limit), true}
	})
	if err != nil {
		return nil, err
	}
	if !r.ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	return r.matches, nil
}

// GenerateRecommendations builds ranked outfits for oc.
func (s *Service) GenerateRecommendations(ctx context.Context, oc engine.OutfitContext) ([]engine.Outfit, error) {
	return read(ctx, s, "recommendations", func(e *engine.Engine) []engine.Outfit {
		out := e.GenerateRecommendations(oc)
		metrics.RecordRecommendations(len(out))
		return out
	})
}

// FindUnderutilizedItems returns expensive, rarely worn items.
func (s *Service) FindUnderutilizedItems(ctx context.Context, limit int) ([]wardrobe.Item, error) {
	return read(ctx, s, "underutilized", func(e *engine.Engine) []wardrobe.Item { return e.FindUnderutilizedItems(limit) })
}

// AnalyzeWardrobeGaps reports missing essentials.
func (s *Service) AnalyzeWardrobeGaps(ctx context.Context) (engine.GapReport, error) {
	return read(ctx, s, "gaps", func(e *engine.Engine) engine.GapReport { return e.AnalyzeWardrobeGaps() })
}

// GetSuggestions completes a partial search term.
func (s *Service) GetSuggestions(ctx context.Context, partial string, limit int) ([]string, error) {
	return read(ctx, s, "suggestions", func(e *engine.Engine) []string { return e.GetSuggestions(partial, limit) })
}
