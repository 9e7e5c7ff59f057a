package bezier3

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// A CubicBez is a single cubic Bézier segment in 3D space, defined by its
// endpoints P0 and P3 and its handles P1 and P2. The segment is traversed
// for parameters t in [0, 1].
type CubicBez struct {
	P0, P1, P2, P3 mgl64.Vec3
}

func (c CubicBez) Start() mgl64.Vec3 {
	return c.P0
}

func (c CubicBez) End() mgl64.Vec3 {
	return c.P3
}

func (cb CubicBez) Eval(t float64) mgl64.Vec3 {
	mt := 1.0 - t
	a := cb.P0.Mul(mt * mt * mt)
	b := cb.P1.Mul(mt * mt * 3.0)
	c := cb.P2.Mul(mt * 3.0)
	d := cb.P3
	return a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
}

// Tangent returns the tangent vector at parameter t. It points in the
// direction of travel and has one third the length of the curve's
// derivative, so that handles can be displaced by it directly: the handles
// of a cubic are exactly its endpoints offset by the endpoint tangents.
func (cb CubicBez) Tangent(t float64) mgl64.Vec3 {
	mt := 1.0 - t
	d0 := cb.P1.Sub(cb.P0).Mul(mt * mt)
	d1 := cb.P2.Sub(cb.P1).Mul(2.0 * mt * t)
	d2 := cb.P3.Sub(cb.P2).Mul(t * t)
	return d0.Add(d1).Add(d2)
}

// Subsegment returns the curve restricted to the parameter range [t0, t1],
// re-parameterized as a new cubic over [0, 1]. The sub-curve traces the same
// points as the original does on [t0, t1].
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := t1 - t0
	p1 := p0.Add(c.Tangent(t0).Mul(scale))
	p2 := p3.Sub(c.Tangent(t1).Mul(scale))
	return CubicBez{p0, p1, p2, p3}
}

// Arclen returns the arc length of the curve restricted to [t0, t1],
// computed with the composite trapezoidal rule over samples equal
// subintervals (samples+1 speed evaluations). If samples is zero or less,
// [DefaultArclenSamples] is used.
//
// The error of the trapezoidal rule shrinks quadratically with the sample
// count.
func (c CubicBez) Arclen(t0, t1 float64, samples int) float64 {
	if samples <= 0 {
		samples = DefaultArclenSamples
	}
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	dot00 := d0.Dot(d0)
	dot01 := d0.Dot(d1)
	dot02 := d0.Dot(d2)
	dot11 := d1.Dot(d1)
	dot12 := d1.Dot(d2)
	dot22 := d2.Dot(d2)
	// |Tangent(t)|² expanded as a quartic in t.
	f0 := dot00
	f1 := 4.0 * (dot01 - dot00)
	f2 := 6.0*dot00 + 4.0*dot11 + 2.0*dot02 - 12.0*dot01
	f3 := 12.0*dot01 + 4.0*(dot12-dot00-dot02) - 8.0*dot11
	f4 := dot00 + dot22 + 2.0*dot02 + 4.0*(dot11-dot01-dot12)
	speed := func(t float64) float64 {
		return math.Sqrt((((f4*t+f3)*t+f2)*t+f1)*t + f0)
	}
	h := (t1 - t0) / float64(samples)
	sum := 0.5 * (speed(t0) + speed(t1))
	for i := 1; i < samples; i++ {
		sum += speed(t0 + float64(i)*h)
	}
	// Tangent carries a third of the derivative.
	return 3.0 * sum * h
}

// Extrema returns the parameters at which one of the curve's coordinates
// attains a local extremum, in increasing order. Only parameters strictly
// inside (0, 1) are reported.
func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// three calls to oneCoord, up to 2 roots per call, for a total of 6
	// possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X(), d1.X(), d2.X())
	oneCoord(d0.Y(), d1.Y(), d2.Y())
	oneCoord(d0.Z(), d1.Z(), d2.Z())
	sort.Float64s(out[:outN])
	return out, outN
}

// ControlBox returns the bounding box of the control points. It contains
// the curve by the convex hull property, but is not necessarily tight.
func (c CubicBez) ControlBox() AABB {
	return NewAABBFromPoints(c.P0, c.P1, c.P2, c.P3)
}

// BoundingBox returns the smallest axis-aligned box containing the curve.
func (c CubicBez) BoundingBox() AABB {
	pts := [2 + MaxExtrema]mgl64.Vec3{c.P0, c.P3}
	n := 2
	extrema, nExtrema := c.Extrema()
	for _, t := range extrema[:nExtrema] {
		pts[n] = c.Eval(t)
		n++
	}
	return NewAABBFromPoints(pts[:n]...)
}

// Transform applies the homogeneous transformation m to all four control
// points.
func (c CubicBez) Transform(m mgl64.Mat4) CubicBez {
	return CubicBez{
		P0: mgl64.TransformCoordinate(c.P0, m),
		P1: mgl64.TransformCoordinate(c.P1, m),
		P2: mgl64.TransformCoordinate(c.P2, m),
		P3: mgl64.TransformCoordinate(c.P3, m),
	}
}
