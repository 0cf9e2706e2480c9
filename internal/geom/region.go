package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Region is an axis-aligned box in world space.
type Region struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// RegionFromPart returns the axis-aligned bounds of a box with the given
// centre, rotation and size. shrink pulls the X and Z faces inwards so
// neighbouring parts that only touch do not overlap.
func RegionFromPart(position mgl32.Vec3, rotation mgl32.Mat3, size mgl32.Vec3, shrink float32) Region {
	sx, sy, sz := size.X(), size.Y(), size.Z()
	abs := func(v float32) float32 { return float32(math.Abs(float64(v))) }

	wsx := 0.5 * (abs(rotation.At(0, 0))*sx + abs(rotation.At(0, 1))*sy + abs(rotation.At(0, 2))*sz)
	wsy := 0.5 * (abs(rotation.At(1, 0))*sx + abs(rotation.At(1, 1))*sy + abs(rotation.At(1, 2))*sz)
	wsz := 0.5 * (abs(rotation.At(2, 0))*sx + abs(rotation.At(2, 1))*sy + abs(rotation.At(2, 2))*sz)

	x, y, z := position.X(), position.Y(), position.Z()
	return Region{
		Min: mgl32.Vec3{x - wsx + shrink, y - wsy, z - wsz + shrink},
		Max: mgl32.Vec3{x + wsx - shrink, y + wsy, z + wsz - shrink},
	}
}

func (r Region) Size() mgl32.Vec3 {
	return r.Max.Sub(r.Min)
}

func (r Region) Center() mgl32.Vec3 {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Region) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < r.Min[i] || p[i] > r.Max[i] {
			return false
		}
	}
	return true
}

// IntersectRay reports the ray parameter of the first point where ray enters
// the region. A ray starting inside the region hits at 0.
func (r Region) IntersectRay(ray Ray) (float32, bool) {
	tMin := float32(0)
	tMax := float32(math.Inf(1))
	for i := 0; i < 3; i++ {
		o, d := ray.Origin[i], ray.Direction[i]
		if d == 0 {
			if o < r.Min[i] || o > r.Max[i] {
				return 0, false
			}
			continue
		}
		t1 := (r.Min[i] - o) / d
		t2 := (r.Max[i] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
