package plot

import (
	"image/color"
	"math"
	"testing"

	"github.com/olivierh59500/vector-flow/internal/field"
	"github.com/olivierh59500/vector-flow/internal/geom"
	"github.com/olivierh59500/vector-flow/internal/glyph"
	"github.com/olivierh59500/vector-flow/internal/render"
)

var arrows = glyph.ArrowFactory(5, render.DefaultStyle)

func TestGrid(t *testing.T) {
	pts := Grid(6, 3, 3)
	if len(pts) != 9 {
		t.Fatalf("len = %d, want 9", len(pts))
	}
	want := []geom.Point{
		geom.Pt(-3, -1.5), geom.Pt(-1, -1.5), geom.Pt(1, -1.5),
		geom.Pt(-3, -0.5), geom.Pt(-1, -0.5), geom.Pt(1, -0.5),
		geom.Pt(-3, 0.5), geom.Pt(-1, 0.5), geom.Pt(1, 0.5),
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("pts[%d] = %v, want %v", i, pts[i], want[i])
		}
	}
	if Grid(10, 10, 0) != nil {
		t.Error("zero density should yield no points")
	}
}

func TestAddPointPlacesThroughMatrix(t *testing.T) {
	p := New(field.New(field.Identity), geom.Cartesian(10, geom.Pt(100, 100)))
	g := p.AddPoint(geom.Pt(1, 2), arrows)
	if got := g.Pivot(); got != geom.Pt(110, 80) {
		t.Errorf("Pivot = %v, want (110, 80)", got)
	}
	if p.Len() != 1 {
		t.Errorf("Len = %d, want 1", p.Len())
	}
}

func TestCalculateWithoutNormalization(t *testing.T) {
	p := New(field.New(field.Identity), geom.Cartesian(35, geom.Pt(400, 300)))
	p.Normalize = false
	p.FillWithPoints(20, 20, 3, arrows)
	p.Calculate()

	n := 0
	p.Each(func(pt geom.Point, g glyph.Glyph) {
		n++
		if want := geom.FlipY(pt); g.Vector() != want {
			t.Errorf("glyph at %v drawn for %v, want %v", pt, g.Vector(), want)
		}
	})
	if n != 9 {
		t.Errorf("visited %d glyphs, want 9", n)
	}
}

func TestNormalization(t *testing.T) {
	tests := []struct {
		name    string
		max     float64
		amount  float64
		vector  geom.Point
		wantLen float64
	}{
		{"within maximum scales linearly", 2, 10, geom.Pt(1, 0), 5},
		{"at maximum", 2, 10, geom.Pt(0, 2), 10},
		{"above maximum clamps", 2, 10, geom.Pt(3, 4), 10},
		{"no maximum clamps", 0, 15, geom.Pt(0.3, 0.4), 15},
		{"no maximum long vector", 0, 15, geom.Pt(30, 40), 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(field.New(field.Constant(tt.vector)), geom.Matrix{})
			p.VectorMaximum = tt.max
			p.NormalizeAmount = tt.amount

			got := p.VectorFor(geom.Point{})
			if math.Abs(got.Length()-tt.wantLen) > 1e-9 {
				t.Errorf("length = %v, want %v", got.Length(), tt.wantLen)
			}
			want := geom.Angle(geom.FlipY(tt.vector))
			if math.Abs(geom.Angle(got)-want) > 1e-9 {
				t.Errorf("angle = %v, want %v", geom.Angle(got), want)
			}
		})
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	p := New(field.New(field.SinX), geom.Cartesian(35, geom.Pt(0, 0)))
	p.VectorMaximum = 2
	p.FillWithPoints(20, 20, 5, arrows)
	p.Calculate()
	var first []geom.Point
	p.Each(func(_ geom.Point, g glyph.Glyph) { first = append(first, g.Vector()) })
	p.Calculate()
	i := 0
	p.Each(func(_ geom.Point, g glyph.Glyph) {
		if g.Vector() != first[i] {
			t.Errorf("glyph %d changed: %v -> %v", i, first[i], g.Vector())
		}
		i++
	})
}

func TestDraw(t *testing.T) {
	p := New(field.New(field.Unit), geom.Cartesian(35, geom.Pt(0, 0)))
	p.FillWithPoints(4, 4, 2, glyph.DotFactory(2, color.Black, nil))
	p.Calculate()
	rec := render.NewRecorder(10, 10)
	p.Draw(rec)
	if got := rec.Count("circle"); got != 4 {
		t.Errorf("circles = %d, want 4", got)
	}
}

func TestRunning(t *testing.T) {
	p := New(field.New(nil), geom.Matrix{})
	if p.Running() {
		t.Fatal("new plotter should be stopped")
	}
	p.Start()
	if !p.Running() {
		t.Error("Start did not run")
	}
	p.Stop()
	if p.Running() {
		t.Error("Stop did not stop")
	}
}
