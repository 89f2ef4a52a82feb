package engine

import (
	"strings"

	"github.com/okian/closet/internal/domain/wardrobe"
)

// GetSuggestions returns up to limit distinct field values (name, brand,
// category, primary color, style and tags) that contain partial,
// case-insensitively, in the order they are first met. A blank partial
// yields no suggestions.
func (e *Engine) GetSuggestions(partial string, limit int) []string {
	out := make([]string, 0)
	needle := foldText(strings.TrimSpace(partial))
	if needle == "" || limit <= 0 {
		return out
	}
	seen := make(map[string]struct{})
	for _, it := range e.items {
		for _, v := range suggestionFields(it) {
			if v == "" || !strings.Contains(foldText(v), needle) {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}

func suggestionFields(it wardrobe.Item) []string {
	fields := []string{it.Name, it.Brand, it.Category, it.PrimaryColor, it.Style}
	return append(fields, it.Tags...)
}
