package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/vector-flow/internal/geom"
)

// screenCanvas adapts an ebiten image to render.Canvas.
type screenCanvas struct {
	img *ebiten.Image
}

// Size returns the image bounds.
func (c screenCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill clears the image to clr.
func (c screenCanvas) Fill(clr color.Color) {
	c.img.Fill(clr)
}

// StrokeLine draws an anti-aliased line.
func (c screenCanvas) StrokeLine(from, to geom.Point, width float64, clr color.Color) {
	vector.StrokeLine(c.img, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), clr, true)
}

// FillCircle draws an anti-aliased disc.
func (c screenCanvas) FillCircle(center geom.Point, radius float64, clr color.Color) {
	vector.DrawFilledCircle(c.img, float32(center.X), float32(center.Y), float32(radius), clr, true)
}
