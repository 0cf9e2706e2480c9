package items

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

type Catalog struct {
	items map[string]Item
}

func NewCatalog() *Catalog {
	return &Catalog{items: make(map[string]Item)}
}

// DefaultCatalog returns the starter items every player can hold.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	c.Register(DefaultPickaxe)
	c.Register(Item{Name: "Iron Pickaxe", Icon: "assets/icons/iron-pickaxe.png", Rarity: Uncommon, Tool: true})
	c.Register(Item{Name: "Diamond Drill", Icon: "assets/icons/diamond-drill.png", Rarity: Epic, Tool: true})
	c.Register(Item{Name: "Dynamite", Icon: "assets/icons/dynamite.png", Rarity: Rare, HoldIcon: CursorDrag})
	c.Register(Item{Name: "Conveyor Belt", Icon: "assets/icons/conveyor-belt.png", Rarity: Common, HoldIcon: CursorDrag})
	c.Register(Item{Name: "Ore Furnace", Icon: "assets/icons/ore-furnace.png", Rarity: Uncommon, HoldIcon: CursorDrag})
	return c
}

func (c *Catalog) Register(it Item) {
	key := it.Key()
	if key == "" {
		return
	}
	c.items[key] = it
}

// ByName looks an item up by display name or key.
func (c *Catalog) ByName(name string) (Item, bool) {
	it, ok := c.items[Key(name)]
	return it, ok
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// Names returns the display names sorted by key.
func (c *Catalog) Names() []string {
	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, c.items[k].Name)
	}
	return names
}

// Suggest returns the display name of the closest registered item, if any is
// within a third of the key length (at least 2 edits).
func (c *Catalog) Suggest(name string) (string, bool) {
	key := Key(name)
	if key == "" {
		return "", false
	}
	limit := max(2, len(key)/3)

	bestKey := ""
	bestDist := limit + 1
	for k := range c.items {
		d := levenshtein.ComputeDistance(key, k)
		if d < bestDist || (d == bestDist && k < bestKey) {
			bestKey, bestDist = k, d
		}
	}
	if bestKey == "" || bestDist > limit {
		return "", false
	}
	return c.items[bestKey].Name, true
}
