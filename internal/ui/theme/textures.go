package theme

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Skin holds the nine-slice backgrounds. Zero-value slices draw flat.
var Skin skinAssets

type skinAssets struct {
	Panel NineSlice
	Slot  NineSlice

	loaded bool
}

const (
	panelSlice = int32(8)
	slotSlice  = int32(6)
)

var icons = map[string]rl.Texture2D{}

// InitSkin loads skin textures. Call once after rl.InitWindow.
func InitSkin() {
	if Skin.loaded {
		return
	}
	Skin.loaded = true
	Skin.Panel = loadNineSlice("assets/ui/panel_9slice.png", panelSlice)
	Skin.Slot = loadNineSlice("assets/ui/slot_9slice.png", slotSlice)
}

// Icon returns the texture at path, loading it on first use. Missing files
// yield a zero texture which the draw helpers skip.
func Icon(path string) rl.Texture2D {
	if path == "" {
		return rl.Texture2D{}
	}
	if tex, ok := icons[path]; ok {
		return tex
	}
	tex := rl.Texture2D{}
	if _, err := os.Stat(path); err == nil {
		tex = rl.LoadTexture(path)
		if tex.ID != 0 {
			rl.SetTextureFilter(tex, rl.FilterBilinear)
		}
	}
	icons[path] = tex
	return tex
}

// Unload releases every texture. Call before rl.CloseWindow.
func Unload() {
	unloadTex(&Skin.Panel.Tex)
	unloadTex(&Skin.Slot.Tex)
	Skin.loaded = false
	for path, tex := range icons {
		unloadTex(&tex)
		delete(icons, path)
	}
}

func loadNineSlice(path string, border int32) NineSlice {
	ns := NineSlice{Left: border, Right: border, Top: border, Bottom: border}
	if _, err := os.Stat(path); err != nil {
		return ns
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return ns
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	ns.Tex = tex
	return ns
}

func unloadTex(t *rl.Texture2D) {
	if t != nil && t.ID != 0 {
		rl.UnloadTexture(*t)
		*t = rl.Texture2D{}
	}
}
