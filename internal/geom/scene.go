package geom

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Part is a named solid the mouse can point at.
type Part struct {
	Name   string
	Region Region
}

type Hit struct {
	Part     *Part
	Position mgl32.Vec3
	Distance float32
}

// Scene is the set of parts considered by mouse raycasts. It is owned by the
// render loop and is not safe for concurrent mutation.
type Scene struct {
	parts []*Part
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) Add(p *Part) {
	if p == nil {
		return
	}
	s.parts = append(s.parts, p)
}

func (s *Scene) Remove(name string) {
	s.parts = slices.DeleteFunc(s.parts, func(p *Part) bool { return p.Name == name })
}

func (s *Scene) Parts() []*Part {
	return append([]*Part(nil), s.parts...)
}

// Raycast returns the closest part hit within maxDistance along ray. Parts
// whose name is listed in ignore are skipped.
func (s *Scene) Raycast(ray Ray, maxDistance float32, ignore ...string) (Hit, bool) {
	dir := ray.Direction
	if dir.Len() == 0 {
		return Hit{}, false
	}
	unit := Ray{Origin: ray.Origin, Direction: dir.Normalize()}

	var best Hit
	found := false
	for _, p := range s.parts {
		if slices.Contains(ignore, p.Name) {
			continue
		}
		t, ok := p.Region.IntersectRay(unit)
		if !ok || t > maxDistance {
			continue
		}
		if !found || t < best.Distance {
			best = Hit{Part: p, Position: unit.At(t), Distance: t}
			found = true
		}
	}
	return best, found
}
