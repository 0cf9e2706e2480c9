package gui

import (
	"log/slog"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/appengine-ltd/deep-mine/internal/geom"
	"github.com/appengine-ltd/deep-mine/internal/items"
)

// MouseIcon is the cursor shape; items carry the one shown while held.
type MouseIcon = items.Cursor

const (
	MouseIconDefault = items.CursorDefault
	MouseIconDrag    = items.CursorDrag
)

type MouseBehavior int

const (
	BehaviorDefault MouseBehavior = iota
	BehaviorLockCenter
	BehaviorLockCurrentPosition
)

func (b MouseBehavior) String() string {
	switch b {
	case BehaviorDefault:
		return "default"
	case BehaviorLockCenter:
		return "lock_center"
	case BehaviorLockCurrentPosition:
		return "lock_current_position"
	default:
		return "unknown"
	}
}

// DefaultRayDistance is how far the mouse ray reaches when no distance is given.
const DefaultRayDistance = float32(1000)

type MouseOptions struct {
	RayDistance  float32
	InvertScroll bool
	Logger       *slog.Logger
}

type clickListener struct {
	id uuid.UUID
	fn func()
}

type scrollListener struct {
	id uuid.UUID
	fn func(direction float32)
}

// MouseController turns raw pointer input into click and scroll callbacks and
// answers what the cursor points at in the scene.
type MouseController struct {
	pointer Pointer
	scene   *geom.Scene
	logger  *slog.Logger

	rayDistance  float32
	invertScroll bool

	down         bool
	behavior     MouseBehavior
	icon         MouseIcon
	targetFilter []string

	clicks  []clickListener
	scrolls []scrollListener
}

func NewMouseController(pointer Pointer, scene *geom.Scene, opts MouseOptions) *MouseController {
	if opts.RayDistance <= 0 {
		opts.RayDistance = DefaultRayDistance
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if scene == nil {
		scene = geom.NewScene()
	}
	return &MouseController{
		pointer:      pointer,
		scene:        scene,
		logger:       opts.Logger,
		rayDistance:  opts.RayDistance,
		invertScroll: opts.InvertScroll,
	}
}

// OnClick registers fn for primary clicks and touches. When predicate is
// non-nil fn only runs while it reports true. The returned func removes the
// listener.
func (m *MouseController) OnClick(fn func(), predicate func() bool) func() {
	id := uuid.New()
	m.clicks = append(m.clicks, clickListener{id: id, fn: func() {
		if predicate != nil && !predicate() {
			return
		}
		fn()
	}})
	return func() {
		m.clicks = slices.DeleteFunc(m.clicks, func(l clickListener) bool { return l.id == id })
	}
}

// OnScroll registers fn for wheel and pinch input. Positive directions zoom
// out. The returned func removes the listener.
func (m *MouseController) OnScroll(fn func(direction float32)) func() {
	id := uuid.New()
	m.scrolls = append(m.scrolls, scrollListener{id: id, fn: fn})
	return func() {
		m.scrolls = slices.DeleteFunc(m.scrolls, func(l scrollListener) bool { return l.id == id })
	}
}

// Update polls the pointer once per frame and dispatches listeners.
func (m *MouseController) Update() {
	if m.pointer.Pressed() {
		m.down = true
		// listeners may cancel themselves while running
		for _, l := range slices.Clone(m.clicks) {
			l.fn()
		}
	}
	if m.pointer.Released() {
		m.down = false
	}

	direction := -m.pointer.Wheel()
	if pinch := m.pointer.Pinch(); pinch != 0 {
		direction = pinch
	}
	if direction == 0 {
		return
	}
	if m.invertScroll {
		direction = -direction
	}
	for _, l := range slices.Clone(m.scrolls) {
		l.fn(direction)
	}
}

// Render applies the current behavior to the cursor. Call once per frame.
func (m *MouseController) Render() {
	m.pointer.SetLocked(m.behavior != BehaviorDefault)
}

func (m *MouseController) Down() bool {
	return m.down
}

func (m *MouseController) Position() rl.Vector2 {
	return m.pointer.Position()
}

func (m *MouseController) Delta() rl.Vector2 {
	return m.pointer.Delta()
}

func (m *MouseController) ToggleIcon(on bool) {
	m.pointer.SetCursorVisible(on)
}

func (m *MouseController) SetIcon(icon MouseIcon) {
	m.icon = icon
	m.pointer.SetCursor(icon)
}

func (m *MouseController) Icon() MouseIcon {
	return m.icon
}

func (m *MouseController) SetBehavior(b MouseBehavior) {
	if b != m.behavior {
		m.logger.Debug("mouse behavior changed", "from", m.behavior, "to", b)
	}
	m.behavior = b
}

func (m *MouseController) Behavior() MouseBehavior {
	return m.behavior
}

// SetTargetFilter makes raycasts ignore the named parts.
func (m *MouseController) SetTargetFilter(names ...string) {
	m.targetFilter = append([]string(nil), names...)
}

// WorldPosition returns where the cursor ray hits the scene, or the point
// distance along the ray when nothing is hit. distance <= 0 uses the
// configured ray distance.
func (m *MouseController) WorldPosition(distance float32) mgl32.Vec3 {
	distance = m.distance(distance)
	ray := m.ray()
	if hit, ok := m.scene.Raycast(ray, distance, m.targetFilter...); ok {
		return hit.Position
	}
	return ray.At(distance)
}

// Target returns the part under the cursor within distance.
func (m *MouseController) Target(distance float32) (*geom.Part, bool) {
	hit, ok := m.scene.Raycast(m.ray(), m.distance(distance), m.targetFilter...)
	if !ok {
		return nil, false
	}
	return hit.Part, true
}

func (m *MouseController) distance(d float32) float32 {
	if d <= 0 {
		return m.rayDistance
	}
	return d
}

func (m *MouseController) ray() geom.Ray {
	ray := m.pointer.ScreenRay(m.pointer.Position())
	if ray.Direction.Len() != 0 {
		ray.Direction = ray.Direction.Normalize()
	}
	return ray
}

func (m *MouseController) SetRayDistance(d float32) {
	if d > 0 {
		m.rayDistance = d
	}
}

func (m *MouseController) SetInvertScroll(on bool) {
	m.invertScroll = on
}
