package sketch

import (
	"math/rand"
	"testing"

	"github.com/olivierh59500/vector-flow/internal/config"
	"github.com/olivierh59500/vector-flow/internal/geom"
	"github.com/olivierh59500/vector-flow/internal/glyph"
	"github.com/olivierh59500/vector-flow/internal/render"
	"github.com/olivierh59500/vector-flow/internal/scene"
)

func build(t *testing.T, conf *config.Config) *scene.Manager {
	t.Helper()
	return Build(conf, rand.New(rand.NewSource(42)), nil)
}

func TestBuildDefault(t *testing.T) {
	m := build(t, config.Default())
	if m.Len() != len(Names()) {
		t.Fatalf("Len = %d, want %d", m.Len(), len(Names()))
	}
	if m.Index() != 0 || m.Active().Name != "flow1" {
		t.Errorf("active = %v, want flow1", m.Active())
	}

	tests := []struct {
		name      string
		glyphs    int
		particles int
	}{
		{"flow1", 1600, 100},
		{"flow2", 400, 300},
		{"sin", 1600, 0},
		{"flow3", 400, 300},
		{"noise", 900, 400},
		{"zones", 576, 200},
	}
	for _, tt := range tests {
		s := m.Scene(m.Lookup(tt.name))
		if s == nil {
			t.Errorf("scene %s missing", tt.name)
			continue
		}
		if s.Plotter.Len() != tt.glyphs || len(s.Mover.Particles()) != tt.particles {
			t.Errorf("%s: glyphs=%d particles=%d, want %d and %d",
				tt.name, s.Plotter.Len(), len(s.Mover.Particles()), tt.glyphs, tt.particles)
		}
	}
}

func TestBuildHonoursConfig(t *testing.T) {
	conf := config.Default()
	sc := conf.Scenes["flow1"]
	sc.Disabled = true
	conf.Scenes["flow1"] = sc
	conf.Start = "flow3"

	m := build(t, conf)
	if m.Lookup("flow1") != -1 {
		t.Error("disabled scene was built")
	}
	if m.Active().Name != "flow3" {
		t.Errorf("active = %s, want flow3", m.Active().Name)
	}

	conf.Start = "missing"
	if m := build(t, conf); m.Index() != 0 {
		t.Errorf("unknown start scene should fall back to 0, got %d", m.Index())
	}
}

func TestFlow1RespawnsPastRightEdge(t *testing.T) {
	m := build(t, config.Default())
	s := m.Active()
	p := s.Mover.Particles()[0]
	p.SetPosition(geom.Pt(12, 0))
	m.Frame(scene.FrameEvent{Delta: 1.0 / 60})

	got := p.Position()
	if got.X >= 10 {
		t.Errorf("particle left at %v", got)
	}
}

func TestFlow2FollowsCursor(t *testing.T) {
	m := build(t, config.Default())
	m.Solo(m.Lookup("flow2"))
	s := m.Active()

	cursor := s.Plotter.Matrix().TransformPoint(geom.Pt(3, -2))
	m.MouseMove(cursor)

	at := geom.Pt(0, 0)
	before := s.Field.VectorAt(at)
	if before.Length() < 3.6 || before.Length() > 3.61 {
		t.Errorf("follow vector length = %v, want distance to cursor", before.Length())
	}
	m.KeyDown("right")
	if after := s.Field.VectorAt(at); after == before {
		t.Error("rate key did not change the field")
	}

	// a particle far outside the window respawns near the cursor
	p := s.Mover.Particles()[0]
	p.SetPosition(geom.Pt(40, 40))
	m.Frame(scene.FrameEvent{Delta: 1.0 / 60})
	if d := p.Position().Distance(geom.Pt(3, -2)); d > 10 {
		t.Errorf("respawned %v from cursor", d)
	}
}

func TestRespawnScripts(t *testing.T) {
	tests := []struct {
		name   string
		scene  string
		cursor *geom.Point
		from   geom.Point
		center geom.Point
		radius float64
	}{
		{"flow2 stagnant at cursor", "flow2", &geom.Point{X: 3, Y: -2}, geom.Pt(3, -2), geom.Pt(3, -2), 9},
		{"flow3 outside window", "flow3", nil, geom.Pt(20, 0), geom.Pt(-12.5, -12.5), 3.6},
		{"noise outside window", "noise", nil, geom.Pt(40, 40), geom.Point{}, spawnSize},
		{"zones outside window", "zones", nil, geom.Pt(40, 40), geom.Point{}, spawnSize},
		{"zones sink centre", "zones", nil, geom.Pt(4, -4), geom.Point{}, spawnSize},
		{"zones still base", "zones", nil, geom.Point{}, geom.Point{}, spawnSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := build(t, config.Default())
			m.Solo(m.Lookup(tt.scene))
			s := m.Active()
			if tt.cursor != nil {
				m.MouseMove(s.Plotter.Matrix().TransformPoint(*tt.cursor))
			}

			p := s.Mover.Particles()[0]
			p.SetPosition(tt.from)
			s.OnFrame(s, scene.FrameEvent{Delta: 1.0 / 60, Time: 1, Count: 1})

			got := p.Position()
			if got == tt.from {
				t.Fatalf("particle stayed at %v", got)
			}
			if d := got.Distance(tt.center); d >= tt.radius {
				t.Errorf("respawned at %v, %v from %v, want < %v", got, d, tt.center, tt.radius)
			}
		})
	}
}

func TestSinAnimates(t *testing.T) {
	m := build(t, config.Default())
	m.Solo(m.Lookup("sin"))
	s := m.Active()

	var g glyph.Glyph
	s.Plotter.Each(func(pt geom.Point, gl glyph.Glyph) {
		if pt == (geom.Point{}) {
			g = gl
		}
	})
	if g == nil {
		t.Fatal("no glyph at the origin")
	}
	m.Frame(scene.FrameEvent{Delta: 0.5, Time: 0.5})
	first := g.Vector()
	m.Frame(scene.FrameEvent{Delta: 0.5, Time: 1.3})
	if g.Vector() == first {
		t.Error("live plotter did not follow the animated field")
	}
}

func TestSwitchingPausesScenes(t *testing.T) {
	m := build(t, config.Default())
	flow1 := m.Scene(m.Lookup("flow1"))
	m.Next()
	before := flow1.Mover.Steps()
	m.Frame(scene.FrameEvent{Delta: 1})
	if flow1.Mover.Steps() != before {
		t.Error("paused scene kept stepping")
	}
}

func TestDrawActiveScene(t *testing.T) {
	m := build(t, config.Default())
	rec := render.NewRecorder(800, 800)
	m.Draw(rec)
	// 1600 arrows of 3 strokes, 100 particles
	if rec.Count("line") != 4800 || rec.Count("circle") != 100 {
		t.Errorf("lines=%d circles=%d", rec.Count("line"), rec.Count("circle"))
	}
}

func TestFitScale(t *testing.T) {
	if got := FitScale(640, 440); got != 20 {
		t.Errorf("FitScale = %v, want 20", got)
	}
}
