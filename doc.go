// Package bezier3 provides primitives and routines for cubic Bézier curves
// in 3D space. It was designed to serve spline editors that need to find and
// materialize curve-curve intersections, but the primitives are general
// enough to be useful on their own.
//
// Positions and directions are mgl64.Vec3 values from
// github.com/go-gl/mathgl, so results plug directly into code that already
// works with that package's vectors and matrices.
//
// # Features
//
// We provide the following notable features:
//
//   - Curve evaluation, tangents, and slicing (see [CubicBez])
//   - Arc length by numeric integration (see [CubicBez.Arclen])
//   - Control-point and tight bounding boxes (see [CubicBez.BoundingBox])
//   - Circumscribed circles of point triples (see [Circumcircle])
//   - Curve-curve intersection finding (see [Intersections])
//   - Shape-preserving subdivision (see [CubicBez.SubdivisionPoints])
//
// # Curves
//
// [CubicBez] is the curve type everything else builds on. It is a value type
// holding four control points, evaluated at t ∈ [0, 1]. Curves are never
// mutated; operations like [CubicBez.Subsegment] and [CubicBez.Transform]
// return new curves. Curves of lower degree are expressed as cubics with
// collinear control points, such as the line-shaped curves in the package
// examples.
//
// # Intersections
//
// [Intersections] locates all parameter pairs at which two cubics pass
// within a distance tolerance of each other. The search runs in two phases.
// The broad phase recursively quarters the joint parameter square and prunes
// quarters whose curve slices have disjoint control boxes, which never
// discards a true intersection because a control box always contains its
// curve. The narrow phase contracts each surviving region onto its locally
// closest point pair with a derivative-free quadrisection descent. A
// deduplication pass then reduces clusters of estimates that describe the
// same physical intersection.
//
// # Hosts
//
// The package owns no editable curve state. A host editor holding live
// spline data passes raw control points in and applies the returned
// parameters and control points itself; [CubicBez.SubdivisionPoints] lays
// out its result in the order hosts typically insert control points.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [Circumscribed circle]
//   - [Trapezoidal rule]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Circumscribed circle]: https://en.wikipedia.org/wiki/Circumscribed_circle#Cartesian_coordinates_from_cross-_and_dot-products
// [Trapezoidal rule]: https://en.wikipedia.org/wiki/Trapezoidal_rule
package bezier3
