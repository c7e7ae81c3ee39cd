package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestConicRadiusBounds(t *testing.T) {
	cases := []struct {
		name string
		a, e float64
	}{
		{"mercury", 35, 0.205},
		{"earth", 70, 0.017},
		{"circle", 100, 0},
		{"elongated", 50, 0.95},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lo := tc.a * (1 - tc.e)
			hi := tc.a * (1 + tc.e)
			for i := 0; i < 720; i++ {
				theta := float64(i) / 720 * TwoPi
				r := ConicRadius(tc.a, tc.e, theta)
				if r <= 0 {
					t.Fatalf("radius not positive at θ=%f: %f", theta, r)
				}
				if r < lo-eps || r > hi+eps {
					t.Fatalf("radius %f outside [%f, %f] at θ=%f", r, lo, hi, theta)
				}
			}
		})
	}
}

func TestConicRadiusExtremes(t *testing.T) {
	a, e := 90.0, 0.094
	if got := ConicRadius(a, e, 0); math.Abs(got-a*(1-e)) > eps {
		t.Errorf("periapsis: got %f, want %f", got, a*(1-e))
	}
	if got := ConicRadius(a, e, math.Pi); math.Abs(got-a*(1+e)) > eps {
		t.Errorf("apoapsis: got %f, want %f", got, a*(1+e))
	}
}

func TestConicPathClosed(t *testing.T) {
	pts := ConicPath(70, 0.017, 128)
	if len(pts) != 129 {
		t.Fatalf("expected 129 points, got %d", len(pts))
	}
	if !V3FApproxEqual(pts[0], pts[128], 1e-9) {
		t.Errorf("path not closed: %v vs %v", pts[0], pts[128])
	}
	for i, p := range pts {
		if p.Y != 0 {
			t.Fatalf("point %d off the orbital plane: %v", i, p)
		}
	}
}

func TestEaseInOutCubic(t *testing.T) {
	if EaseInOutCubic(0) != 0 {
		t.Errorf("ease(0) = %f", EaseInOutCubic(0))
	}
	if EaseInOutCubic(1) != 1 {
		t.Errorf("ease(1) = %f", EaseInOutCubic(1))
	}
	if math.Abs(EaseInOutCubic(0.5)-0.5) > eps {
		t.Errorf("ease(0.5) = %f", EaseInOutCubic(0.5))
	}
	if EaseInOutCubic(-1) != 0 || EaseInOutCubic(2) != 1 {
		t.Error("ease input not clamped")
	}

	prev := 0.0
	for i := 0; i <= 1000; i++ {
		v := EaseInOutCubic(float64(i) / 1000)
		if v < prev {
			t.Fatalf("ease not monotonic at %d: %f < %f", i, v, prev)
		}
		prev = v
	}
}

func TestWrapAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{TwoPi, 0},
		{TwoPi + 1, 1},
		{-1, TwoPi - 1},
		{3*TwoPi + 0.5, 0.5},
	}
	for _, tc := range cases {
		got := WrapAngle(tc.in)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("WrapAngle(%f) = %f, want %f", tc.in, got, tc.want)
		}
		if got < 0 || got >= TwoPi {
			t.Errorf("WrapAngle(%f) = %f outside [0, 2π)", tc.in, got)
		}
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	v := Vec3F{30, 50, 200}
	s := SphericalFromV3F(v)
	if math.Abs(s.Radius-V3FMag(v)) > eps {
		t.Errorf("radius %f, want %f", s.Radius, V3FMag(v))
	}
	back := s.V3F()
	if !V3FApproxEqual(v, back, 1e-9) {
		t.Errorf("round trip: %v -> %v", v, back)
	}
}

func TestRayIntersectSphere(t *testing.T) {
	r := Ray{Origin: Vec3F{0, 0, 100}, Dir: Vec3F{0, 0, -1}}

	tHit, ok := r.IntersectSphere(Vec3F{}, 10)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(tHit-90) > eps {
		t.Errorf("t = %f, want 90", tHit)
	}

	if _, ok := r.IntersectSphere(Vec3F{50, 0, 0}, 10); ok {
		t.Error("expected miss")
	}

	// Sphere behind the origin
	if _, ok := r.IntersectSphere(Vec3F{0, 0, 200}, 10); ok {
		t.Error("sphere behind ray should miss")
	}
}

func TestRayDistanceToSegment(t *testing.T) {
	r := Ray{Origin: Vec3F{0, 10, 0}, Dir: Vec3F{0, -1, 0}}

	d, tRay := r.DistanceToSegment(Vec3F{-5, 0, 0.5}, Vec3F{5, 0, 0.5})
	if math.Abs(d-0.5) > 1e-9 {
		t.Errorf("distance = %f, want 0.5", d)
	}
	if math.Abs(tRay-10) > 1e-9 {
		t.Errorf("t = %f, want 10", tRay)
	}

	// Closest point clamped to segment end
	d, _ = r.DistanceToSegment(Vec3F{3, 0, 0}, Vec3F{8, 0, 0})
	if math.Abs(d-3) > 1e-9 {
		t.Errorf("clamped distance = %f, want 3", d)
	}
}

func TestV3FRotateY(t *testing.T) {
	got := V3FRotateY(Vec3F{1, 0, 0}, math.Pi/2)
	if !V3FApproxEqual(got, Vec3F{0, 0, -1}, 1e-12) {
		t.Errorf("rotate +X by π/2 = %v, want (0,0,-1)", got)
	}
}

func TestTraverseSupercover(t *testing.T) {
	type cell struct{ x, y int }
	var cells []cell
	var last float64
	Traverse(0.5, 0.5, 3.5, 1.5, func(x, y int, tt float64) bool {
		if tt < last {
			t.Errorf("t decreased: %f after %f", tt, last)
		}
		last = tt
		cells = append(cells, cell{x, y})
		return true
	})

	if cells[0] != (cell{0, 0}) || cells[len(cells)-1] != (cell{3, 1}) {
		t.Fatalf("endpoints = %v ... %v", cells[0], cells[len(cells)-1])
	}
	for i := 1; i < len(cells); i++ {
		dx := cells[i].x - cells[i-1].x
		dy := cells[i].y - cells[i-1].y
		if dx < 0 || dy < 0 || dx > 1 || dy > 1 {
			t.Errorf("non-adjacent step %v -> %v", cells[i-1], cells[i])
		}
	}
	if last > 1 {
		t.Errorf("t overshoot: %f", last)
	}

	n := 0
	Traverse(0, 0, 100, 0, func(x, y int, _ float64) bool {
		n++
		return n < 5
	})
	if n != 5 {
		t.Errorf("early stop visited %d cells, want 5", n)
	}

	n = 0
	Traverse(2.2, 2.7, 2.9, 2.1, func(x, y int, _ float64) bool {
		n++
		return true
	})
	if n != 1 {
		t.Errorf("single-cell segment visited %d cells", n)
	}
}
