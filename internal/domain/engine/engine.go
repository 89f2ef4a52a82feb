// Package engine implements the outfit compatibility and recommendation
// engine over one in-memory wardrobe snapshot.
//
// An Engine owns its collection and performs no I/O. It is not safe for
// concurrent use: callers that share one engine between goroutines must
// serialize access, or build independent engines with WithItems.
package engine

import (
	"time"

	"github.com/okian/closet/internal/domain/scoring"
	"github.com/okian/closet/internal/domain/wardrobe"
)

// Engine holds a wardrobe snapshot and answers queries over it.
type Engine struct {
	items []wardrobe.Item
	index map[string]int

	rules  wardrobe.Rules
	slots  wardrobe.Slots
	scorer *scoring.Scorer
	limits OutfitLimits
	now    func() time.Time
}

// New creates an engine owning a copy of items. Items are loaded as by
// AddItem, so later duplicates of an ID replace earlier ones in place.
func New(items []wardrobe.Item, opts ...Option) *Engine {
	e := &Engine{
		rules:  wardrobe.DefaultRules(),
		limits: DefaultOutfitLimits(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.slots = e.rules.Slots()
	if e.scorer == nil {
		e.scorer = scoring.NewScorer(scoring.WithRules(e.rules))
	}
	e.load(items)
	return e
}

// WithItems returns an independent engine over items that shares this
// engine's rules, scorer, limits and clock.
func (e *Engine) WithItems(items []wardrobe.Item) *Engine {
	c := &Engine{
		rules:  e.rules,
		slots:  e.slots,
		scorer: e.scorer,
		limits: e.limits,
		now:    e.now,
	}
	c.load(items)
	return c
}

func (e *Engine) load(items []wardrobe.Item) {
	e.items = make([]wardrobe.Item, 0, len(items))
	e.index = make(map[string]int, len(items))
	for _, it := range items {
		e.AddItem(it)
	}
}

// Rules returns the lookup tables in use.
func (e *Engine) Rules() wardrobe.Rules { return e.rules.Clone() }

// Scorer returns the compatibility scorer in use.
func (e *Engine) Scorer() *scoring.Scorer { return e.scorer }

// Len returns the number of items in the collection.
func (e *Engine) Len() int { return len(e.items) }

// Items returns a copy of the collection in order.
func (e *Engine) Items() []wardrobe.Item {
	return cloneAll(e.items)
}

// Get returns the item with id.
func (e *Engine) Get(id string) (wardrobe.Item, bool) {
	i, ok := e.index[id]
	if !ok {
		return wardrobe.Item{}, false
	}
	return e.items[i].Clone(), true
}

func cloneAll(items []wardrobe.Item) []wardrobe.Item {
	out := make([]wardrobe.Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// filter returns the items keep accepts, in collection order, without
// copying them.
func (e *Engine) filter(src []wardrobe.Item, keep func(wardrobe.Item) bool) []wardrobe.Item {
	out := make([]wardrobe.Item, 0, len(src))
	for _, it := range src {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
