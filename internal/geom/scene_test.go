package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testScene() *Scene {
	s := NewScene()
	s.Add(&Part{Name: "near", Region: Region{Min: mgl32.Vec3{-1, -1, 4}, Max: mgl32.Vec3{1, 1, 6}}})
	s.Add(&Part{Name: "far", Region: Region{Min: mgl32.Vec3{-1, -1, 19}, Max: mgl32.Vec3{1, 1, 21}}})
	return s
}

func TestSceneRaycastPicksClosest(t *testing.T) {
	s := testScene()
	hit, ok := s.Raycast(Ray{Direction: mgl32.Vec3{0, 0, 2}}, 100)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if hit.Part.Name != "near" {
		t.Fatalf("expected near part, got %q", hit.Part.Name)
	}
	if !approx(hit.Distance, 4) || !approx(hit.Position.Z(), 4) {
		t.Fatalf("expected hit at z=4, got %+v", hit)
	}
}

func TestSceneRaycastHonoursIgnoreAndDistance(t *testing.T) {
	s := testScene()
	hit, ok := s.Raycast(Ray{Direction: mgl32.Vec3{0, 0, 1}}, 100, "near")
	if !ok || hit.Part.Name != "far" {
		t.Fatalf("expected far part when near is ignored, got %+v %v", hit, ok)
	}
	if _, ok := s.Raycast(Ray{Direction: mgl32.Vec3{0, 0, 1}}, 10, "near"); ok {
		t.Fatalf("expected miss beyond max distance")
	}
}

func TestSceneRemove(t *testing.T) {
	s := testScene()
	s.Remove("near")
	if len(s.Parts()) != 1 || s.Parts()[0].Name != "far" {
		t.Fatalf("expected only far part left, got %+v", s.Parts())
	}
	if _, ok := s.Raycast(Ray{Direction: mgl32.Vec3{}}, 100); ok {
		t.Fatalf("expected zero direction to never hit")
	}
}
