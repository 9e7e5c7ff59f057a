package bezier3

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCircumcircle(t *testing.T) {
	approxEqual := func(a, b float64) bool {
		return math.Abs(a-b) < 1e-9
	}
	verify := func(a, b, c mgl64.Vec3) {
		t.Helper()
		circle, ok := Circumcircle(a, b, c)
		if !ok {
			t.Fatalf("no circumcircle for %v, %v, %v", a, b, c)
		}
		if circle.Radius < 0.0 {
			t.Errorf("negative radius %v", circle.Radius)
		}
		if l := circle.Plane.Normal.Len(); !approxEqual(l, 1.0) {
			t.Errorf("plane normal has length %v, want 1", l)
		}
		if d := circle.Plane.SignedDistance(circle.Center); !approxEqual(d, 0.0) {
			t.Errorf("center is %v away from the circle's plane", d)
		}
		for _, pt := range []mgl64.Vec3{a, b, c} {
			if d := pt.Sub(circle.Center).Len(); !approxEqual(d, circle.Radius) {
				t.Errorf("point %v is %v away from the center, want radius %v", pt, d, circle.Radius)
			}
			if d := circle.Plane.SignedDistance(pt); !approxEqual(d, 0.0) {
				t.Errorf("point %v is %v away from the circle's plane", pt, d)
			}
		}
	}

	verify(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 0, 0}, mgl64.Vec3{0, 2, 0})
	verify(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{4, -2, 5}, mgl64.Vec3{-3, 0, 2})
	verify(mgl64.Vec3{0.1, 0, 0}, mgl64.Vec3{0, 0.1, 0}, mgl64.Vec3{0, 0, 0.1})
	verify(mgl64.Vec3{10, 20, -5}, mgl64.Vec3{-7, 3, 14}, mgl64.Vec3{2, 2, 2})
}

func TestCircumcircleKnown(t *testing.T) {
	// Right triangle in the z=1 plane; the circumcenter is the midpoint of
	// the hypotenuse.
	circle, ok := Circumcircle(
		mgl64.Vec3{0, 0, 1},
		mgl64.Vec3{4, 0, 1},
		mgl64.Vec3{0, 3, 1},
	)
	if !ok {
		t.Fatal("no circumcircle for a right triangle")
	}
	opt := cmpopts.EquateApprox(0, 1e-12)
	diff(t, mgl64.Vec3{2, 1.5, 1}, circle.Center, opt)
	diff(t, 2.5, circle.Radius, opt)
	diff(t, mgl64.Vec3{0, 0, 1}, circle.Plane.Normal, opt)
	diff(t, 1.0, circle.Plane.Distance, opt)
	diff(t, math.Pi*2.5*2.5, circle.Area(), opt)
	diff(t, math.Pi*5.0, circle.Circumference(), opt)
}

func TestCircumcircleEquilateral(t *testing.T) {
	// Equilateral triangle in a tilted plane; the circumcenter is the
	// centroid.
	circle, ok := Circumcircle(
		mgl64.Vec3{0.1, 0, 0},
		mgl64.Vec3{0, 0.1, 0},
		mgl64.Vec3{0, 0, 0.1},
	)
	if !ok {
		t.Fatal("no circumcircle for an equilateral triangle")
	}
	opt := cmpopts.EquateApprox(0, 1e-12)
	diff(t, mgl64.Vec3{1.0 / 30.0, 1.0 / 30.0, 1.0 / 30.0}, circle.Center, opt)
	diff(t, math.Sqrt(6.0)/30.0, circle.Radius, opt)
	diff(t, mgl64.Vec3{1, 1, 1}.Mul(1.0/math.Sqrt(3.0)), circle.Plane.Normal, opt)
	diff(t, 0.1/math.Sqrt(3.0), circle.Plane.Distance, opt)
}

func TestCircumcircleRigidMotion(t *testing.T) {
	// Rigid motions preserve the radius and map center and normal along.
	a := mgl64.Vec3{0, 0, 1}
	b := mgl64.Vec3{4, 0, 1}
	c := mgl64.Vec3{0, 3, 1}
	circle, ok := Circumcircle(a, b, c)
	if !ok {
		t.Fatal("no circumcircle for a right triangle")
	}
	m := mgl64.Translate3D(2, -7, 3).
		Mul4(mgl64.HomogRotate3D(0.9, mgl64.Vec3{1, -2, 2}.Normalize()))
	moved, ok := Circumcircle(
		mgl64.TransformCoordinate(a, m),
		mgl64.TransformCoordinate(b, m),
		mgl64.TransformCoordinate(c, m),
	)
	if !ok {
		t.Fatal("no circumcircle for the moved triangle")
	}
	opt := cmpopts.EquateApprox(0, 1e-9)
	diff(t, circle.Radius, moved.Radius, opt)
	diff(t, mgl64.TransformCoordinate(circle.Center, m), moved.Center, opt)
	wantNormal := mgl64.TransformCoordinate(circle.Center.Add(circle.Plane.Normal), m).
		Sub(mgl64.TransformCoordinate(circle.Center, m))
	diff(t, wantNormal, moved.Plane.Normal, opt)
}

func TestCircumcircleCollinear(t *testing.T) {
	tests := [][3]mgl64.Vec3{
		{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}},
		{{0, 0, 0}, {0, 0, 0}, {1, 2, 3}},
		{{5, 0, 0}, {5, 0, 0}, {5, 0, 0}},
		{{1, 2, 3}, {1, 2, 3.5}, {1, 2, 9}},
	}
	for i, tt := range tests {
		if _, ok := Circumcircle(tt[0], tt[1], tt[2]); ok {
			t.Errorf("%d: got a circle for collinear points %v, %v, %v", i, tt[0], tt[1], tt[2])
		}
	}
}

func TestPlaneSignedDistance(t *testing.T) {
	p := Plane{Normal: mgl64.Vec3{0, 0, 1}, Distance: 2}
	tests := []struct {
		pt   mgl64.Vec3
		want float64
	}{
		{mgl64.Vec3{7, -3, 5}, 3},
		{mgl64.Vec3{0, 0, -1}, -3},
		{mgl64.Vec3{1, 1, 2}, 0},
	}
	for i, tt := range tests {
		if got := p.SignedDistance(tt.pt); got != tt.want {
			t.Errorf("%d: got distance %v for %v, want %v", i, got, tt.pt, tt.want)
		}
	}
}
