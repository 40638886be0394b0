// Package glyph provides the visual tokens a plotter places at each sample
// point. Every variant redraws itself from a single vector.
package glyph

import (
	"github.com/olivierh59500/vector-flow/internal/geom"
	"github.com/olivierh59500/vector-flow/internal/render"
)

// Glyph is a visual token that can be redrawn from a vector. Vectors are in
// screen orientation (Y down) and screen units.
type Glyph interface {
	// Place moves the glyph so its pivot sits at p.
	Place(p geom.Point)
	// Pivot returns the anchor point set by Place.
	Pivot() geom.Point
	// Update redraws the glyph for v. Updating twice with the same vector
	// leaves the glyph unchanged.
	Update(v geom.Point)
	// Vector returns the vector the glyph was last drawn for.
	Vector() geom.Point
	Draw(c render.Canvas)
}

// Factory builds a fresh glyph for one sample point.
type Factory func() Glyph
