package bezier3

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// A Plane is an infinite plane in 3D space, described in Hesse normal form:
// it consists of all points p for which Normal·p = Distance. Normal has unit
// length.
type Plane struct {
	Normal   mgl64.Vec3
	Distance float64
}

// SignedDistance returns the distance of pt from the plane. It is positive
// on the side the normal points to and negative on the other.
func (p Plane) SignedDistance(pt mgl64.Vec3) float64 {
	return p.Normal.Dot(pt) - p.Distance
}

// A Circle is a circle in 3D space. Center lies on Plane and all points of
// the circle have distance Radius from it.
type Circle struct {
	Plane  Plane
	Center mgl64.Vec3
	Radius float64
}

// Area returns the area of the circle.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Circumference returns the circumference of the circle.
func (c Circle) Circumference() float64 {
	return math.Abs(2.0 * math.Pi * c.Radius)
}

// Circumcircle returns the unique circle passing through the three points a,
// b, and c. The circle's plane normal is the unit normal of the triangle
// abc.
//
// If the points are collinear the triangle has zero area and no finite
// circle exists; ok is false in that case.
func Circumcircle(a, b, c mgl64.Vec3) (circle Circle, ok bool) {
	// Barycentric coordinates of the circumcenter, see
	// https://en.wikipedia.org/wiki/Circumscribed_circle#Cartesian_coordinates_from_cross-_and_dot-products
	dirBA := a.Sub(b)
	dirCB := b.Sub(c)
	dirAC := c.Sub(a)
	normal := dirBA.Cross(dirCB)
	normLen2 := normal.Dot(normal)
	if normLen2 == 0.0 {
		return Circle{}, false
	}
	factor := -1.0 / (2.0 * normLen2)
	alpha := dirBA.Dot(dirAC) * dirCB.Dot(dirCB) * factor
	beta := dirBA.Dot(dirCB) * dirAC.Dot(dirAC) * factor
	gamma := dirAC.Dot(dirCB) * dirBA.Dot(dirBA) * factor
	center := a.Mul(alpha).Add(b.Mul(beta)).Add(c.Mul(gamma))
	normLen := math.Sqrt(normLen2)
	radius := math.Sqrt(dirBA.Dot(dirBA)*dirCB.Dot(dirCB)*dirAC.Dot(dirAC)) / (2.0 * normLen)
	unit := normal.Mul(1.0 / normLen)
	return Circle{
		Plane:  Plane{Normal: unit, Distance: center.Dot(unit)},
		Center: center,
		Radius: radius,
	}, true
}
