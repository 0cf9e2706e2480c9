package gui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/appengine-ltd/deep-mine/internal/geom"
)

func TestOnClickFiresAndCancels(t *testing.T) {
	p := &fakePointer{}
	m := NewMouseController(p, nil, MouseOptions{})

	calls := 0
	cancel := m.OnClick(func() { calls++ }, nil)

	p.pressed = true
	m.Update()
	if calls != 1 || !m.Down() {
		t.Fatalf("expected one click and down state, got calls=%d down=%v", calls, m.Down())
	}

	p.pressed, p.released = false, true
	m.Update()
	if m.Down() {
		t.Fatalf("expected release to clear down state")
	}

	cancel()
	p.pressed, p.released = true, false
	m.Update()
	if calls != 1 {
		t.Fatalf("expected cancelled listener to stay quiet, got %d calls", calls)
	}
}

func TestOnClickPredicateGates(t *testing.T) {
	p := &fakePointer{pressed: true}
	m := NewMouseController(p, nil, MouseOptions{})

	allow := false
	calls := 0
	m.OnClick(func() { calls++ }, func() bool { return allow })

	m.Update()
	if calls != 0 {
		t.Fatalf("expected predicate to block click")
	}
	allow = true
	m.Update()
	if calls != 1 {
		t.Fatalf("expected click once predicate allows, got %d", calls)
	}
}

func TestOnClickListenerMayCancelItself(t *testing.T) {
	p := &fakePointer{pressed: true}
	m := NewMouseController(p, nil, MouseOptions{})

	var cancel func()
	first, second := 0, 0
	cancel = m.OnClick(func() {
		first++
		cancel()
	}, nil)
	m.OnClick(func() { second++ }, nil)

	m.Update()
	m.Update()
	if first != 1 || second != 2 {
		t.Fatalf("expected first=1 second=2, got first=%d second=%d", first, second)
	}
}

func TestOnScrollDirection(t *testing.T) {
	tests := []struct {
		name   string
		wheel  float32
		pinch  float32
		invert bool
		want   float32
	}{
		{name: "wheel up zooms in", wheel: 1, want: -1},
		{name: "wheel down zooms out", wheel: -2, want: 2},
		{name: "inverted", wheel: 1, invert: true, want: 1},
		{name: "pinch wins", wheel: 1, pinch: 0.5, want: 0.5},
	}
	for _, tc := range tests {
		p := &fakePointer{wheel: tc.wheel, pinch: tc.pinch}
		m := NewMouseController(p, nil, MouseOptions{InvertScroll: tc.invert})
		var got []float32
		m.OnScroll(func(d float32) { got = append(got, d) })
		m.Update()
		if len(got) != 1 || got[0] != tc.want {
			t.Fatalf("%s: expected [%v], got %v", tc.name, tc.want, got)
		}
	}
}

func TestOnScrollQuietWithoutInput(t *testing.T) {
	p := &fakePointer{}
	m := NewMouseController(p, nil, MouseOptions{})
	calls := 0
	cancel := m.OnScroll(func(float32) { calls++ })
	m.Update()
	cancel()
	p.wheel = 3
	m.Update()
	if calls != 0 {
		t.Fatalf("expected no scroll callbacks, got %d", calls)
	}
}

func TestWorldPositionAndTarget(t *testing.T) {
	scene := geom.NewScene()
	scene.Add(&geom.Part{Name: "ore", Region: geom.Region{Min: mgl32.Vec3{-1, -1, 9}, Max: mgl32.Vec3{1, 1, 11}}})
	p := &fakePointer{ray: geom.Ray{Direction: mgl32.Vec3{0, 0, 5}}}
	m := NewMouseController(p, scene, MouseOptions{RayDistance: 50})

	pos := m.WorldPosition(0)
	if pos != (mgl32.Vec3{0, 0, 9}) {
		t.Fatalf("expected hit at z=9, got %v", pos)
	}
	part, ok := m.Target(0)
	if !ok || part.Name != "ore" {
		t.Fatalf("expected ore target, got %+v %v", part, ok)
	}

	if _, ok := m.Target(5); ok {
		t.Fatalf("expected no target within 5 units")
	}
	if pos := m.WorldPosition(5); pos != (mgl32.Vec3{0, 0, 5}) {
		t.Fatalf("expected fallback point at distance 5, got %v", pos)
	}

	m.SetTargetFilter("ore")
	if _, ok := m.Target(0); ok {
		t.Fatalf("expected filtered part to be ignored")
	}
	if pos := m.WorldPosition(0); pos != (mgl32.Vec3{0, 0, 50}) {
		t.Fatalf("expected fallback at configured distance, got %v", pos)
	}
}

func TestRenderAppliesBehavior(t *testing.T) {
	p := &fakePointer{}
	m := NewMouseController(p, nil, MouseOptions{})

	m.SetBehavior(BehaviorLockCenter)
	m.Render()
	if !p.locked {
		t.Fatalf("expected lock-center to lock the cursor")
	}
	m.SetBehavior(BehaviorDefault)
	m.Render()
	if p.locked {
		t.Fatalf("expected default behavior to release the cursor")
	}
}

func TestIconAndVisibility(t *testing.T) {
	p := &fakePointer{}
	m := NewMouseController(p, nil, MouseOptions{})
	c := NewCrosshair(m)

	c.Set(MouseIconDrag)
	if p.cursor != MouseIconDrag || m.Icon() != MouseIconDrag || c.Current() != MouseIconDrag {
		t.Fatalf("expected drag icon everywhere, got pointer=%v mouse=%v", p.cursor, m.Icon())
	}
	m.ToggleIcon(true)
	if !p.visible {
		t.Fatalf("expected cursor to be visible")
	}
}
