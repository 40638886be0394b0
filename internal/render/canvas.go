// Package render defines the drawing surface glyphs and particles paint on,
// and the backends that implement it.
package render

import (
	"image/color"

	"github.com/olivierh59500/vector-flow/internal/geom"
)

// Canvas is a screen-space drawing surface. Coordinates are pixels with the
// origin at the top left.
type Canvas interface {
	Size() (width, height int)
	Fill(clr color.Color)
	StrokeLine(from, to geom.Point, width float64, clr color.Color)
	FillCircle(center geom.Point, radius float64, clr color.Color)
}

// Style is the stroke used for line glyphs.
type Style struct {
	StrokeWidth float64
	StrokeColor color.Color
}

// DefaultStyle is a thin red stroke.
var DefaultStyle = Style{
	StrokeWidth: 0.75,
	StrokeColor: color.RGBA{0xe4, 0x14, 0x1b, 0xff},
}
