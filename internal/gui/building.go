package gui

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/deep-mine/internal/ui/theme"
)

// BuildingHotbar tracks whether the player is placing structures.
type BuildingHotbar struct {
	active bool
	logger *slog.Logger
}

func NewBuildingHotbar(logger *slog.Logger) *BuildingHotbar {
	if logger == nil {
		logger = slog.Default()
	}
	return &BuildingHotbar{logger: logger}
}

func (b *BuildingHotbar) EnterBuildMode() {
	if b.active {
		return
	}
	b.active = true
	b.logger.Debug("build mode entered")
}

func (b *BuildingHotbar) ExitBuildMode() {
	if !b.active {
		return
	}
	b.active = false
	b.logger.Debug("build mode exited")
}

func (b *BuildingHotbar) Active() bool {
	return b.active
}

func (b *BuildingHotbar) Draw(screenW int32) {
	if !b.active {
		return
	}
	const label = "BUILD MODE"
	w := theme.MeasureText(label, theme.Type.Header)
	rect := rl.NewRectangle(float32(screenW-w)/2-theme.PaddingM, theme.PaddingM, float32(w)+2*theme.PaddingM, float32(theme.Type.Header)+2*theme.PaddingS)
	theme.DrawPanel(rect)
	theme.DrawText(label, int32(rect.X+theme.PaddingM), int32(rect.Y+theme.PaddingS), theme.Type.Header, theme.AccentGold)
}
