package items

import (
	"strings"

	"github.com/appengine-ltd/deep-mine/internal/format"
)

type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	Epic
	Legendary
)

func (r Rarity) String() string {
	switch r {
	case Common:
		return "common"
	case Uncommon:
		return "uncommon"
	case Rare:
		return "rare"
	case Epic:
		return "epic"
	case Legendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// Cursor is the mouse icon shown while an item is held.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorDrag
)

type Item struct {
	Name     string
	Icon     string
	Rarity   Rarity
	HoldIcon Cursor
	Tool     bool
}

// Key is the catalog key for a display name: "Default Pickaxe" -> "default-pickaxe".
func Key(name string) string {
	return strings.ReplaceAll(format.SnakeCase(name), "_", "-")
}

func (it Item) Key() string {
	return Key(it.Name)
}

var DefaultPickaxe = Item{
	Name:     "Default Pickaxe",
	Icon:     "assets/icons/default-pickaxe.png",
	Rarity:   Common,
	HoldIcon: CursorDefault,
	Tool:     true,
}
