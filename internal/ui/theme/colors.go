package theme

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/deep-mine/internal/items"
	"github.com/appengine-ltd/deep-mine/internal/settings"
)

// Palette for the mine HUD.
var (
	BG          = rl.NewColor(0x12, 0x14, 0x18, 255) // #121418
	Panel       = rl.NewColor(0x1E, 0x22, 0x2A, 255) // #1E222A
	PanelRaised = rl.NewColor(0x27, 0x2C, 0x36, 255) // #272C36
	Border      = rl.NewColor(0x3A, 0x41, 0x4D, 255) // #3A414D
	TextPrimary = rl.NewColor(0xEE, 0xEA, 0xE2, 255) // #EEEAE2
	TextMuted   = rl.NewColor(0x8A, 0x90, 0x99, 255) // #8A9099
	AccentGold  = rl.NewColor(0xFC, 0xE3, 0x45, 255) // #FCE345
	AccentOre   = rl.NewColor(0xC2, 0x6B, 0x2E, 255) // #C26B2E
	EmptySlot   = rl.NewColor(0x17, 0x1A, 0x20, 200)
)

var rarityColors = map[items.Rarity]rl.Color{
	items.Common:    rl.NewColor(0x9D, 0xA3, 0xA8, 255),
	items.Uncommon:  rl.NewColor(0x4C, 0xAF, 0x50, 255),
	items.Rare:      rl.NewColor(0x2F, 0x80, 0xED, 255),
	items.Epic:      rl.NewColor(0x9B, 0x51, 0xE0, 255),
	items.Legendary: rl.NewColor(0xF2, 0x99, 0x4A, 255),
}

// RarityColor is the slot background for an item of rarity r.
func RarityColor(r items.Rarity) rl.Color {
	if c, ok := rarityColors[r]; ok {
		return c
	}
	return Panel
}

// FromHex converts "#RRGGBB" to an opaque colour.
func FromHex(hex string) (rl.Color, error) {
	r, g, b, err := settings.HexColor(hex)
	if err != nil {
		return rl.Color{}, fmt.Errorf("colour %q: %w", hex, err)
	}
	return rl.NewColor(r, g, b, 255), nil
}
