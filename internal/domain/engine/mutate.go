package engine

import (
	"github.com/google/uuid"

	"github.com/okian/closet/internal/domain/wardrobe"
)

// AddItem stores item and returns the stored copy. An empty ID is replaced
// by a fresh UUID; an existing ID is replaced in place.
func (e *Engine) AddItem(item wardrobe.Item) wardrobe.Item {
	item = item.Clone()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	e.put(item)
	return item.Clone()
}

// UpdateItem applies patch to the item with id. It reports false and changes
// nothing when id is unknown.
func (e *Engine) UpdateItem(id string, patch wardrobe.ItemPatch) (wardrobe.Item, bool) {
	i, ok := e.index[id]
	if !ok {
		return wardrobe.Item{}, false
	}
	updated := patch.Apply(e.items[i])
	updated.ID = id
	e.items[i] = updated
	return updated.Clone(), true
}

// RemoveItem deletes the item with id. It reports false when id is unknown.
func (e *Engine) RemoveItem(id string) bool {
	i, ok := e.index[id]
	if !ok {
		return false
	}
	e.items = append(e.items[:i], e.items[i+1:]...)
	delete(e.index, id)
	for j := i; j < len(e.items); j++ {
		e.index[e.items[j].ID] = j
	}
	return true
}

func (e *Engine) put(item wardrobe.Item) {
	if i, ok := e.index[item.ID]; ok {
		e.items[i] = item
		return
	}
	e.index[item.ID] = len(e.items)
	e.items = append(e.items, item)
}
