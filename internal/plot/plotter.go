// Package plot draws a vector field as a grid of glyphs.
package plot

import (
	"github.com/olivierh59500/vector-flow/internal/field"
	"github.com/olivierh59500/vector-flow/internal/geom"
	"github.com/olivierh59500/vector-flow/internal/glyph"
	"github.com/olivierh59500/vector-flow/internal/render"
)

// Plotter defaults.
const (
	DefaultNormalizeAmount = 15.0
	DefaultScale           = 35.0
)

type binding struct {
	point geom.Point
	glyph glyph.Glyph
}

// Plotter owns a fixed set of sample points, each bound to a glyph, and
// redraws every glyph from the field on Calculate.
type Plotter struct {
	Field *field.Field

	// Normalize caps every vector to NormalizeAmount screen units. When
	// VectorMaximum is positive, vectors up to that length are scaled
	// linearly into [0, NormalizeAmount] instead.
	Normalize       bool
	NormalizeAmount float64
	VectorMaximum   float64

	// Live asks the owning scene to recalculate on every frame while running.
	Live bool

	matrix   geom.Matrix
	bindings []binding
	running  bool
}

// New returns a plotter over f projecting through matrix.
func New(f *field.Field, matrix geom.Matrix) *Plotter {
	return &Plotter{
		Field:           f,
		Normalize:       true,
		NormalizeAmount: DefaultNormalizeAmount,
		matrix:          matrix,
	}
}

// Matrix returns the logical-to-screen transform.
func (p *Plotter) Matrix() geom.Matrix { return p.matrix }

// AddPoint binds a new glyph from factory to the logical point pt.
func (p *Plotter) AddPoint(pt geom.Point, factory glyph.Factory) glyph.Glyph {
	g := factory()
	g.Place(p.matrix.TransformPoint(pt))
	p.bindings = append(p.bindings, binding{point: pt, glyph: g})
	return g
}

// FillWithPoints adds a density×density grid covering width×height,
// starting at the bottom-left corner (-width/2, -height/2).
func (p *Plotter) FillWithPoints(width, height float64, density int, factory glyph.Factory) {
	for _, pt := range Grid(width, height, density) {
		p.AddPoint(pt, factory)
	}
}

// Grid returns density points per axis spaced width/density and
// height/density apart, row by row.
func Grid(width, height float64, density int) []geom.Point {
	if density <= 0 {
		return nil
	}
	origin := geom.Pt(-width/2, -height/2)
	dx, dy := width/float64(density), height/float64(density)
	pts := make([]geom.Point, 0, density*density)
	for j := 0; j < density; j++ {
		for i := 0; i < density; i++ {
			pts = append(pts, geom.Pt(origin.X+float64(i)*dx, origin.Y+float64(j)*dy))
		}
	}
	return pts
}

// Calculate evaluates the field at every sample point and updates its glyph.
func (p *Plotter) Calculate() {
	for _, b := range p.bindings {
		b.glyph.Update(p.VectorFor(b.point))
	}
}

// VectorFor returns the screen vector drawn for the logical point pt.
func (p *Plotter) VectorFor(pt geom.Point) geom.Point {
	v := geom.FlipY(p.Field.VectorAt(pt))
	if !p.Normalize {
		return v
	}
	if p.VectorMaximum > 0 && v.Length() <= p.VectorMaximum {
		return v.Mul(p.NormalizeAmount / p.VectorMaximum)
	}
	return geom.WithLength(v, p.NormalizeAmount)
}

// Len returns the number of sample points.
func (p *Plotter) Len() int { return len(p.bindings) }

// Each calls fn for every sample point and its glyph in insertion order.
func (p *Plotter) Each(fn func(pt geom.Point, g glyph.Glyph)) {
	for _, b := range p.bindings {
		fn(b.point, b.glyph)
	}
}

// Draw paints every glyph.
func (p *Plotter) Draw(c render.Canvas) {
	for _, b := range p.bindings {
		b.glyph.Draw(c)
	}
}

// Start lets the owning scene recalculate a Live plotter.
func (p *Plotter) Start() {
	p.running = true
}

// Stop freezes a Live plotter.
func (p *Plotter) Stop() {
	p.running = false
}

// Running reports whether the plotter is started.
func (p *Plotter) Running() bool {
	return p.running
}
