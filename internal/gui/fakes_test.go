package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/deep-mine/internal/geom"
)

type fakePointer struct {
	pos      rl.Vector2
	delta    rl.Vector2
	wheel    float32
	pinch    float32
	pressed  bool
	released bool
	ray      geom.Ray

	cursor  MouseIcon
	visible bool
	locked  bool
}

func (p *fakePointer) Position() rl.Vector2              { return p.pos }
func (p *fakePointer) Delta() rl.Vector2                 { return p.delta }
func (p *fakePointer) Wheel() float32                    { return p.wheel }
func (p *fakePointer) Pinch() float32                    { return p.pinch }
func (p *fakePointer) Pressed() bool                     { return p.pressed }
func (p *fakePointer) Released() bool                    { return p.released }
func (p *fakePointer) ScreenRay(pos rl.Vector2) geom.Ray { return p.ray }
func (p *fakePointer) SetCursor(icon MouseIcon)          { p.cursor = icon }
func (p *fakePointer) SetCursorVisible(visible bool)     { p.visible = visible }
func (p *fakePointer) SetLocked(locked bool)             { p.locked = locked }

type fakeKeys map[int32]bool

func (k fakeKeys) KeyPressed(key int32) bool { return k[key] }

type fakeBuilding struct {
	exits int
}

func (b *fakeBuilding) ExitBuildMode() { b.exits++ }

type fakeCursor struct {
	icons []MouseIcon
}

func (c *fakeCursor) Set(icon MouseIcon) { c.icons = append(c.icons, icon) }
