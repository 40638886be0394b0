package glyph

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/vector-flow/internal/geom"
	"github.com/olivierh59500/vector-flow/internal/render"
)

// Colorer picks a fill colour for a vector.
type Colorer func(v geom.Point) color.Color

// HSLColorer encodes direction and magnitude as lightness at a fixed hue:
// lightness drops by 2% per unit of |x| and of |y|.
func HSLColorer(hue float64) Colorer {
	return func(v geom.Point) color.Color {
		l := (100 - abs(v.Y*2) - abs(v.X*2)) / 100
		return colorful.Hsl(hue, 0.99, l).Clamped()
	}
}

// Dot is a filled circle held away from its pivot by the current vector.
type Dot struct {
	pivot    geom.Point
	center   geom.Point
	vector   geom.Point
	rotation float64
	Radius   float64
	Color    color.Color
	Colorer  Colorer
}

// NewDot returns a dot offset one unit along +X.
func NewDot(radius float64, clr color.Color) *Dot {
	return &Dot{
		center: geom.UnitX,
		vector: geom.UnitX,
		Radius: radius,
		Color:  clr,
	}
}

// DotFactory returns a Factory for dots. colorer may be nil.
func DotFactory(radius float64, clr color.Color, colorer Colorer) Factory {
	return func() Glyph {
		d := NewDot(radius, clr)
		d.Colorer = colorer
		return d
	}
}

// Place moves the whole dot, keeping its offset from the pivot.
func (d *Dot) Place(p geom.Point) {
	d.center = d.center.Add(p.Sub(d.pivot))
	d.pivot = p
}

// Pivot returns the sample point the dot hangs from.
func (d *Dot) Pivot() geom.Point {
	return d.pivot
}

// Center returns the dot centre, pivot plus vector.
func (d *Dot) Center() geom.Point {
	return d.center
}

// Vector returns the last applied vector.
func (d *Dot) Vector() geom.Point {
	return d.vector
}

// Rotation returns the angle of the vector in radians.
func (d *Dot) Rotation() float64 {
	return d.rotation
}

// Update shifts the centre by the change in vector and recolours the dot.
func (d *Dot) Update(v geom.Point) {
	v = geom.Sanitize(v)
	d.center = d.center.Sub(d.vector).Add(v)
	d.vector = v
	d.rotation = geom.Angle(v)
	if d.Colorer != nil {
		d.Color = d.Colorer(v)
	}
}

// Draw fills the dot.
func (d *Dot) Draw(c render.Canvas) {
	c.FillCircle(d.center, d.Radius, d.Color)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
