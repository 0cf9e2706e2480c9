package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/appengine-ltd/deep-mine/internal/geom"
)

// Pointer is the mouse/touch device the controllers read from.
type Pointer interface {
	Position() rl.Vector2
	Delta() rl.Vector2
	// Wheel is the scroll amount this frame, positive away from the user.
	Wheel() float32
	// Pinch is the pinch amount this frame: positive when fingers close.
	Pinch() float32
	Pressed() bool
	Released() bool
	ScreenRay(pos rl.Vector2) geom.Ray
	SetCursor(icon MouseIcon)
	SetCursorVisible(visible bool)
	SetLocked(locked bool)
}

// KeyInput reports key presses for the current frame.
type KeyInput interface {
	KeyPressed(key int32) bool
}

type raylibKeys struct{}

func (raylibKeys) KeyPressed(key int32) bool {
	if !hotkeysEnabled() {
		return false
	}
	return rl.IsKeyPressed(key)
}

// hotkeysEnabled blocks number-key bindings while a modifier is held so
// shortcuts such as Ctrl+1 do not also switch slots.
func hotkeysEnabled() bool {
	return !ctrlDown() && !altDown()
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}

func altDown() bool {
	return rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt)
}

type raylibPointer struct {
	camera  *rl.Camera3D
	locked  bool
	visible bool
}

func newRaylibPointer(camera *rl.Camera3D) *raylibPointer {
	return &raylibPointer{camera: camera, visible: true}
}

func (p *raylibPointer) Position() rl.Vector2 { return rl.GetMousePosition() }
func (p *raylibPointer) Delta() rl.Vector2    { return rl.GetMouseDelta() }
func (p *raylibPointer) Wheel() float32       { return rl.GetMouseWheelMove() }

func (p *raylibPointer) Pinch() float32 {
	switch {
	case rl.IsGestureDetected(rl.GesturePinchIn):
		return rl.Vector2Length(rl.GetGesturePinchVector())
	case rl.IsGestureDetected(rl.GesturePinchOut):
		return -rl.Vector2Length(rl.GetGesturePinchVector())
	default:
		return 0
	}
}

// raylib reports the first touch point as the left button.
func (p *raylibPointer) Pressed() bool  { return rl.IsMouseButtonPressed(rl.MouseButtonLeft) }
func (p *raylibPointer) Released() bool { return rl.IsMouseButtonReleased(rl.MouseButtonLeft) }

func (p *raylibPointer) ScreenRay(pos rl.Vector2) geom.Ray {
	r := rl.GetScreenToWorldRay(pos, *p.camera)
	return geom.Ray{
		Origin:    mgl32.Vec3{r.Position.X, r.Position.Y, r.Position.Z},
		Direction: mgl32.Vec3{r.Direction.X, r.Direction.Y, r.Direction.Z},
	}
}

func (p *raylibPointer) SetCursor(icon MouseIcon) {
	switch icon {
	case MouseIconDrag:
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	default:
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

func (p *raylibPointer) SetCursorVisible(visible bool) {
	if visible == p.visible {
		return
	}
	p.visible = visible
	if visible {
		rl.ShowCursor()
	} else {
		rl.HideCursor()
	}
}

func (p *raylibPointer) SetLocked(locked bool) {
	if locked == p.locked {
		return
	}
	p.locked = locked
	if locked {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
}
