package repository

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/closet/internal/domain/wardrobe"
)

// LoadSeed reads the "items" list from a YAML file. Timestamps use RFC 3339.
func LoadSeed(_ context.Context, path string) ([]wardrobe.Item, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrLoadSeed, path, err)
	}
	var items []wardrobe.Item
	if err := k.UnmarshalWithConf("items", &items, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrLoadSeed, path, err)
	}
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("%w: item %d (%s): %w", ErrLoadSeed, i, it.ID, err)
		}
	}
	return items, nil
}
