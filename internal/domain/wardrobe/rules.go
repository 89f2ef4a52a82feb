package wardrobe

import (
	"slices"
	"sort"
	"strings"
)

// Rules bundles the curated lookup tables the engine consults. A Rules value
// is treated as immutable once handed to an engine.
type Rules struct {
	// NeutralColors pair with every color.
	NeutralColors []string
	// ComplementaryColors lists unordered color pairs that go together.
	ComplementaryColors [][2]string
	// StyleAdjacency lists, per style, the styles that can be worn with it.
	// Lookups are tried in both directions.
	StyleAdjacency map[string][]string

	EssentialCategories []string
	EssentialColors     []string
	EssentialStyles     []string

	TopCategories    []string
	BottomCategories []string
	ShoeCategories   []string

	Weather WeatherRules
}

// DefaultRules returns the built-in tables.
func DefaultRules() Rules {
	return Rules{
		NeutralColors: []string{"Black", "White", "Gray", "Beige", "Brown", "Navy", "Cream"},
		ComplementaryColors: [][2]string{
			{"Blue", "Orange"},
			{"Red", "Green"},
			{"Purple", "Yellow"},
			{"Pink", "Green"},
			{"Teal", "Coral"},
			{"Burgundy", "Olive"},
			{"Blue", "Yellow"},
			{"Mustard", "Purple"},
			{"Khaki", "Blue"},
		},
		StyleAdjacency: map[string][]string{
			"Casual":          {"Smart Casual", "Streetwear", "Athleisure", "Bohemian", "Minimalist"},
			"Smart Casual":    {"Casual", "Business Casual", "Minimalist"},
			"Business Casual": {"Smart Casual", "Business Formal"},
			"Business Formal": {"Business Casual", "Formal"},
			"Formal":          {"Business Formal"},
			"Streetwear":      {"Casual", "Athleisure"},
			"Athleisure":      {"Athletic", "Casual"},
			"Athletic":        {"Athleisure"},
			"Bohemian":        {"Vintage"},
			"Vintage":         {"Bohemian", "Preppy"},
			"Preppy":          {"Smart Casual"},
			"Minimalist":      {"Casual", "Business Casual"},
		},
		EssentialCategories: []string{"tops", "bottoms", "outerwear", "shoes", "accessories"},
		EssentialColors:     []string{"Black", "White", "Navy", "Gray", "Beige"},
		EssentialStyles:     []string{"Casual", "Business Casual", "Formal"},
		TopCategories:       []string{"tops", "shirts", "t-shirts", "blouses", "sweaters"},
		BottomCategories:    []string{"bottoms", "pants", "jeans", "skirts", "shorts"},
		ShoeCategories:      []string{"shoes", "sneakers", "boots", "sandals", "heels"},
		Weather: WeatherRules{
			ColdBelow: 40,
			CoolBelow: 60,
			MildBelow: 80,
			Cold:      []string{"cold", "winter", "warm", "insulated"},
			Cool:      []string{"cool", "layering", "transitional"},
			Mild:      []string{"mild", "comfortable", "versatile"},
			Hot:       []string{"hot", "summer", "breathable", "lightweight"},
			Rainy:     []string{"waterproof", "water-resistant", "rain"},
			Windy:     []string{"wind-resistant", "fitted", "secure"},
			Snowy:     []string{"snow", "waterproof", "warm", "insulated"},
		},
	}
}

// Palette answers color-complement questions. Color names compare
// case-insensitively.
type Palette struct {
	neutrals map[string]struct{}
	pairs    map[[2]string]struct{}
}

// NewPalette indexes neutrals and complementary pairs.
func NewPalette(neutrals []string, pairs [][2]string) Palette {
	p := Palette{
		neutrals: make(map[string]struct{}, len(neutrals)),
		pairs:    make(map[[2]string]struct{}, len(pairs)),
	}
	for _, c := range neutrals {
		p.neutrals[colorKey(c)] = struct{}{}
	}
	for _, pair := range pairs {
		p.pairs[pairKey(pair[0], pair[1])] = struct{}{}
	}
	return p
}

// IsNeutral reports whether c pairs with everything.
func (p Palette) IsNeutral(c string) bool {
	_, ok := p.neutrals[colorKey(c)]
	return ok
}

// Complement reports whether c1 and c2 go together. The relation is
// symmetric.
func (p Palette) Complement(c1, c2 string) bool {
	if p.IsNeutral(c1) || p.IsNeutral(c2) {
		return true
	}
	_, ok := p.pairs[pairKey(c1, c2)]
	return ok
}

func colorKey(c string) string { return strings.ToLower(strings.TrimSpace(c)) }

func pairKey(a, b string) [2]string {
	a, b = colorKey(a), colorKey(b)
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// StyleGraph answers style-compatibility questions.
type StyleGraph struct {
	adjacent map[string]map[string]struct{}
}

// StylePair is a directed adjacency entry.
type StylePair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// NewStyleGraph indexes an adjacency table.
func NewStyleGraph(adjacency map[string][]string) StyleGraph {
	g := StyleGraph{adjacent: make(map[string]map[string]struct{}, len(adjacency))}
	for from, tos := range adjacency {
		set := make(map[string]struct{}, len(tos))
		for _, to := range tos {
			set[to] = struct{}{}
		}
		g.adjacent[from] = set
	}
	return g
}

// Compatible reports whether s1 and s2 can be worn together: equal styles,
// or either listed under the other.
func (g StyleGraph) Compatible(s1, s2 string) bool {
	return s1 == s2 || g.lists(s1, s2) || g.lists(s2, s1)
}

func (g StyleGraph) lists(from, to string) bool {
	_, ok := g.adjacent[from][to]
	return ok
}

// Asymmetries returns entries whose reverse is missing, sorted for stable
// output. The table is looked up both ways, so these only flag data to audit.
func (g StyleGraph) Asymmetries() []StylePair {
	var out []StylePair
	for from, tos := range g.adjacent {
		for to := range tos {
			if !g.lists(to, from) {
				out = append(out, StylePair{From: from, To: to})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// Slot is the role a category plays when assembling an outfit.
type Slot int

// Outfit slots.
const (
	SlotNone Slot = iota
	SlotTop
	SlotBottom
	SlotShoes
)

// Slots maps categories to outfit slots.
type Slots map[string]Slot

// NewSlots indexes the three category partitions. A category listed in more
// than one partition keeps its first assignment.
func NewSlots(tops, bottoms, shoes []string) Slots {
	s := make(Slots, len(tops)+len(bottoms)+len(shoes))
	for slot, cats := range map[Slot][]string{SlotTop: tops, SlotBottom: bottoms, SlotShoes: shoes} {
		for _, c := range cats {
			if cur, ok := s[c]; !ok || cur > slot {
				s[c] = slot
			}
		}
	}
	return s
}

// Of returns the slot for category, SlotNone when it has none.
func (s Slots) Of(category string) Slot { return s[category] }

// Palette builds the color index for these rules.
func (r Rules) Palette() Palette { return NewPalette(r.NeutralColors, r.ComplementaryColors) }

// StyleGraph builds the style index for these rules.
func (r Rules) StyleGraph() StyleGraph { return NewStyleGraph(r.StyleAdjacency) }

// Slots builds the category partition for these rules.
func (r Rules) Slots() Slots { return NewSlots(r.TopCategories, r.BottomCategories, r.ShoeCategories) }

// Clone returns a deep copy of the tables.
func (r Rules) Clone() Rules {
	c := r
	c.NeutralColors = slices.Clone(r.NeutralColors)
	c.ComplementaryColors = slices.Clone(r.ComplementaryColors)
	c.StyleAdjacency = make(map[string][]string, len(r.StyleAdjacency))
	for k, v := range r.StyleAdjacency {
		c.StyleAdjacency[k] = slices.Clone(v)
	}
	c.EssentialCategories = slices.Clone(r.EssentialCategories)
	c.EssentialColors = slices.Clone(r.EssentialColors)
	c.EssentialStyles = slices.Clone(r.EssentialStyles)
	c.TopCategories = slices.Clone(r.TopCategories)
	c.BottomCategories = slices.Clone(r.BottomCategories)
	c.ShoeCategories = slices.Clone(r.ShoeCategories)
	w := r.Weather
	w.Cold, w.Cool, w.Mild, w.Hot = slices.Clone(w.Cold), slices.Clone(w.Cool), slices.Clone(w.Mild), slices.Clone(w.Hot)
	w.Rainy, w.Windy, w.Snowy = slices.Clone(w.Rainy), slices.Clone(w.Windy), slices.Clone(w.Snowy)
	c.Weather = w
	return c
}
