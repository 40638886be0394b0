package geom

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestAngle(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"unit x", UnitX, 0},
		{"unit y", UnitY, math.Pi / 2},
		{"negative x", Pt(-1, 0), math.Pi},
		{"diagonal", Pt(1, -1), -math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Angle(tt.p); !near(got, tt.want) {
				t.Errorf("Angle(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestWithLength(t *testing.T) {
	got := WithLength(Pt(3, 4), 10)
	if !near(got.X, 6) || !near(got.Y, 8) {
		t.Errorf("WithLength = %v, want (6, 8)", got)
	}
	if zero := WithLength(Point{}, 5); zero != (Point{}) {
		t.Errorf("WithLength(zero) = %v, want zero", zero)
	}
}

func TestWithAngle(t *testing.T) {
	got := WithAngle(Pt(0, 2), math.Pi)
	if !near(got.X, -2) || !near(got.Y, 0) {
		t.Errorf("WithAngle = %v, want (-2, 0)", got)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want Point
	}{
		{"finite", Pt(1, 2), Pt(1, 2)},
		{"nan", Pt(math.NaN(), 1), Point{}},
		{"inf", Pt(1, math.Inf(-1)), Point{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.p); got != tt.want {
				t.Errorf("Sanitize(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRandomVector(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		if l := RandomUnit(rng).Length(); !near(l, 1) {
			t.Fatalf("RandomUnit length = %v, want 1", l)
		}
		if l := RandomVector(rng, 9).Length(); l < 0 || l >= 9 {
			t.Fatalf("RandomVector length = %v, want [0, 9)", l)
		}
	}
}

func TestCartesian(t *testing.T) {
	m := Cartesian(35, Pt(400, 300))
	got := m.TransformPoint(Pt(1, 1))
	if !near(got.X, 435) || !near(got.Y, 265) {
		t.Errorf("TransformPoint = %v, want (435, 265)", got)
	}
	back := m.Invert().TransformPoint(got)
	if !near(back.X, 1) || !near(back.Y, 1) {
		t.Errorf("inverse = %v, want (1, 1)", back)
	}
}

func TestBoundsInside(t *testing.T) {
	b := Square(15)
	if !b.Inside(Pt(0, 14.9)) {
		t.Error("expected point inside")
	}
	for _, p := range []Point{Pt(15, 0), Pt(0, -15), Pt(-20, 3)} {
		if b.Inside(p) {
			t.Errorf("Inside(%v) = true, want false", p)
		}
	}
}
