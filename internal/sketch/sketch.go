// Package sketch scripts the scenes of the visualizer: which field each one
// shows, how densely it is sampled, how many particles flow through it and
// how they respawn.
package sketch

import (
	"image/color"
	"log/slog"
	"math/rand"

	"github.com/olivierh59500/vector-flow/internal/config"
	"github.com/olivierh59500/vector-flow/internal/field"
	"github.com/olivierh59500/vector-flow/internal/flow"
	"github.com/olivierh59500/vector-flow/internal/geom"
	"github.com/olivierh59500/vector-flow/internal/glyph"
	"github.com/olivierh59500/vector-flow/internal/render"
	"github.com/olivierh59500/vector-flow/internal/scene"
)

// Logical extent of every plotted grid, in field units.
const (
	gridSize  = 20
	headSize  = 5
	spawnSize = 10
)

// builder carries what every scene script needs.
type builder struct {
	matrix     geom.Matrix
	background color.Color
	style      render.Style
	particle   color.Color
	rng        *rand.Rand
	seed       int64
}

type script struct {
	name  string
	build func(b *builder, sc config.SceneConfig) *scene.Scene
}

// scripts lists the scenes in display order.
var scripts = []script{
	{"flow1", buildFlow1},
	{"flow2", buildFlow2},
	{"sin", buildSin},
	{"flow3", buildFlow3},
	{"noise", buildNoise},
	{"zones", buildZones},
}

// Names returns every scene name in display order.
func Names() []string {
	names := make([]string, len(scripts))
	for i, s := range scripts {
		names[i] = s.name
	}
	return names
}

// Build creates every enabled scene and activates the configured start
// scene, or the first one.
func Build(conf *config.Config, rng *rand.Rand, logger *slog.Logger) *scene.Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	bg, stroke, particle := conf.Colors()
	b := &builder{
		matrix:     geom.Cartesian(conf.Scale, geom.Pt(float64(conf.Width)/2, float64(conf.Height)/2)),
		background: bg,
		style:      render.Style{StrokeWidth: conf.StrokeWidth, StrokeColor: stroke},
		particle:   particle,
		rng:        rng,
		seed:       rng.Int63(),
	}

	m := scene.NewManager(logger)
	for _, s := range scripts {
		sc := conf.Scene(s.name)
		if sc.Disabled {
			logger.Debug("scene disabled", "name", s.name)
			continue
		}
		m.Add(s.build(b, sc))
	}

	start := 0
	if conf.Start != "" {
		if i := m.Lookup(conf.Start); i >= 0 {
			start = i
		} else {
			logger.Warn("unknown start scene", "name", conf.Start)
		}
	}
	m.Solo(start)
	return m
}

func (b *builder) newScene(name string, f *field.Field) *scene.Scene {
	return scene.New(name, f, b.matrix, b.background)
}

// plotterSetup samples the grid, applies normalization settings and draws
// the first frame.
func (b *builder) plotterSetup(s *scene.Scene, factory glyph.Factory, sc config.SceneConfig) {
	p := s.Plotter
	p.FillWithPoints(gridSize, gridSize, sc.Density, factory)
	if sc.NormalizeAmount > 0 {
		p.NormalizeAmount = sc.NormalizeAmount
	}
	p.VectorMaximum = sc.VectorMaximum
	p.Calculate()
}

// moverSetup scatters particles around the origin.
func (b *builder) moverSetup(s *scene.Scene, sc config.SceneConfig) {
	m := s.Mover
	m.Color = b.particle
	if sc.TimeStep > 0 {
		m.TimeStep = sc.TimeStep
	}
	if sc.TimeScale > 0 {
		m.TimeScale = sc.TimeScale
	}
	for i := 0; i < sc.Particles; i++ {
		m.Add(flow.NewParticle(geom.RandomVector(b.rng, spawnSize), b.matrix))
	}
}

func (b *builder) arrows() glyph.Factory {
	return glyph.ArrowFactory(headSize, b.style)
}

// FitScale returns the pixels per field unit that fit the plotted grid, with
// a margin, inside a w×h surface.
func FitScale(w, h int) float64 {
	return float64(min(w, h)) / (gridSize + 2)
}
