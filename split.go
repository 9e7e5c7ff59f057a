package bezier3

import "github.com/go-gl/mathgl/mgl64"

// SubdivisionPoints returns the control points that split the curve at the
// given parameters without changing its shape. params must be ascending and
// lie strictly inside (0, 1); an empty params yields nil.
//
// The returned slice holds, in order: the adjusted handle of the original
// start point, then for every parameter the triple (left handle, point on
// the curve, right handle) of the new control point, and finally the
// adjusted handle of the original end point. The original endpoints stay in
// place and are not repeated. The layout suits hosts that insert control
// points into an existing curve: 3 entries per split point plus the 2
// boundary handles.
func (c CubicBez) SubdivisionPoints(params []float64) []mgl64.Vec3 {
	if len(params) == 0 {
		return nil
	}
	out := make([]mgl64.Vec3, 0, 3*len(params)+2)
	out = append(out, c.P0.Add(c.P1.Sub(c.P0).Mul(params[0])))
	for i, param := range params {
		paramLeft := param
		if i > 0 {
			paramLeft -= params[i-1]
		}
		paramRight := -param
		if i == len(params)-1 {
			paramRight += 1.0
		} else {
			paramRight += params[i+1]
		}
		point := c.Eval(param)
		tangent := c.Tangent(param)
		out = append(out,
			point.Sub(tangent.Mul(paramLeft)),
			point,
			point.Add(tangent.Mul(paramRight)),
		)
	}
	last := params[len(params)-1]
	out = append(out, c.P3.Sub(c.P3.Sub(c.P2).Mul(1.0-last)))
	return out
}

// SplitAt splits the curve at the given ascending parameters in (0, 1) and
// returns the len(params)+1 sub-curves, whose concatenation traces the same
// points as the original. Without parameters the result is the curve itself.
func (c CubicBez) SplitAt(params ...float64) []CubicBez {
	if len(params) == 0 {
		return []CubicBez{c}
	}
	pts := c.SubdivisionPoints(params)
	out := make([]CubicBez, 0, len(params)+1)
	start := c.P0
	startHandle := pts[0]
	for i := range params {
		left := pts[3*i+1]
		point := pts[3*i+2]
		right := pts[3*i+3]
		out = append(out, CubicBez{start, startHandle, left, point})
		start = point
		startHandle = right
	}
	return append(out, CubicBez{start, startHandle, pts[len(pts)-1], c.P3})
}
