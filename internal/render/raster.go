package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/olivierh59500/vector-flow/internal/geom"
)

// Raster draws onto an offscreen gg context. It backs PNG snapshots.
type Raster struct {
	dc *gg.Context
}

// NewRaster returns a raster canvas of w×h pixels.
func NewRaster(w, h int) *Raster {
	return &Raster{dc: gg.NewContext(w, h)}
}

// Size returns the image size in pixels.
func (r *Raster) Size() (int, int) {
	return r.dc.Width(), r.dc.Height()
}

// Fill paints the whole image.
func (r *Raster) Fill(clr color.Color) {
	r.dc.SetColor(clr)
	r.dc.DrawRectangle(0, 0, float64(r.dc.Width()), float64(r.dc.Height()))
	_ = r.dc.Fill()
}

// StrokeLine strokes a straight line.
func (r *Raster) StrokeLine(from, to geom.Point, width float64, clr color.Color) {
	r.dc.SetColor(clr)
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	_ = r.dc.Stroke()
}

// FillCircle fills a disc.
func (r *Raster) FillCircle(center geom.Point, radius float64, clr color.Color) {
	r.dc.SetColor(clr)
	r.dc.DrawCircle(center.X, center.Y, radius)
	_ = r.dc.Fill()
}

// Image returns the rendered pixels.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// SavePNG writes the rendered pixels to path.
func (r *Raster) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}

// Close releases the context.
func (r *Raster) Close() error { return r.dc.Close() }
