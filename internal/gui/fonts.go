package gui

import (
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/deep-mine/internal/ui/theme"
)

type fontState struct {
	hud  rl.Font
	owns bool
}

var hudFont fontState

func initFonts() {
	hudFont.hud = rl.GetFontDefault()

	candidates := []string{
		filepath.Join("assets", "fonts", "Rubik-Medium.ttf"),
		filepath.Join("assets", "fonts", "Inter-Regular.ttf"),
	}
	if f, ok := loadFontFromCandidates(candidates, 32); ok {
		hudFont.hud = f
		hudFont.owns = true
	}
	rl.SetTextureFilter(hudFont.hud.Texture, rl.FilterBilinear)
	theme.SetTextRenderer(drawText, measureText)
}

func shutdownFonts() {
	if hudFont.owns && hudFont.hud.Texture.ID != 0 {
		rl.UnloadFont(hudFont.hud)
	}
	hudFont = fontState{}
}

func loadFontFromCandidates(candidates []string, fontSize int32) (rl.Font, bool) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontSize, nil, 0)
		if font.Texture.ID == 0 {
			continue
		}
		return font, true
	}
	return rl.Font{}, false
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	if !hudFont.owns {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(hudFont.hud, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

func measureText(text string, fontSize int32) int32 {
	if !hudFont.owns {
		return int32(rl.MeasureText(text, fontSize))
	}
	return int32(math.Round(float64(rl.MeasureTextEx(hudFont.hud, text, float32(fontSize), 1).X)))
}
