package bezier3

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// An AABB is an axis-aligned box in 3D space, defined by its center and its
// half-extents per axis. All components of Dims are non-negative.
type AABB struct {
	Center mgl64.Vec3
	Dims   mgl64.Vec3
}

// NewAABBFromPoints returns the smallest box containing all the given
// points. It panics when called with no points.
func NewAABBFromPoints(pts ...mgl64.Vec3) AABB {
	if len(pts) == 0 {
		panic("NewAABBFromPoints called with no points")
	}
	lo := pts[0]
	hi := pts[0]
	for _, pt := range pts[1:] {
		for i := range 3 {
			lo[i] = min(lo[i], pt[i])
			hi[i] = max(hi[i], pt[i])
		}
	}
	return AABB{
		Center: hi.Add(lo).Mul(0.5),
		Dims:   hi.Sub(lo).Mul(0.5),
	}
}

// Min returns the corner of the box with the smallest coordinates.
func (b AABB) Min() mgl64.Vec3 { return b.Center.Sub(b.Dims) }

// Max returns the corner of the box with the largest coordinates.
func (b AABB) Max() mgl64.Vec3 { return b.Center.Add(b.Dims) }

// Contains reports whether pt lies inside the box or on its boundary.
func (b AABB) Contains(pt mgl64.Vec3) bool {
	for i := range 3 {
		if math.Abs(pt[i]-b.Center[i]) > b.Dims[i] {
			return false
		}
	}
	return true
}

// Intersects reports whether the boxes b and o overlap after inflating both
// by tolerance. It uses a per-axis separating-axis test: the boxes are
// disjoint as soon as the distance of their centers along one axis exceeds
// the sum of their half-extents plus tolerance.
func (b AABB) Intersects(o AABB, tolerance float64) bool {
	for i := range 3 {
		if math.Abs(b.Center[i]-o.Center[i]) > b.Dims[i]+o.Dims[i]+tolerance {
			return false
		}
	}
	return true
}
