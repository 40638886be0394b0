package glyph

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/olivierh59500/vector-flow/internal/geom"
	"github.com/olivierh59500/vector-flow/internal/render"
)

// headAngle is the angle between the shaft and each side of the chevron.
const headAngle = 135 * math.Pi / 180

// Arrow is a shaft with a chevron head. Rotation and shaft length are kept
// as separate transforms so the head never stretches with the magnitude.
type Arrow struct {
	pivot    geom.Point
	rotation float64
	length   float64
	headSize float64
	vector   geom.Point
	Style    render.Style
}

// NewArrow returns a unit arrow pointing along +X.
func NewArrow(headSize float64, style render.Style) *Arrow {
	return &Arrow{
		length:   1,
		headSize: headSize,
		vector:   geom.UnitX,
		Style:    style,
	}
}

// ArrowFactory returns a Factory for arrows with the given head size.
func ArrowFactory(headSize float64, style render.Style) Factory {
	return func() Glyph { return NewArrow(headSize, style) }
}

// Place moves the arrow tail to p.
func (a *Arrow) Place(p geom.Point) {
	a.pivot = p
}

// Pivot returns the arrow tail.
func (a *Arrow) Pivot() geom.Point {
	return a.pivot
}

// Vector returns the last applied vector.
func (a *Arrow) Vector() geom.Point {
	return a.vector
}

// Rotation returns the shaft angle in radians.
func (a *Arrow) Rotation() float64 {
	return a.rotation
}

// Length returns the shaft length.
func (a *Arrow) Length() float64 {
	return a.length
}

// HeadSize returns the barb length.
func (a *Arrow) HeadSize() float64 {
	return a.headSize
}

// Update turns and stretches the shaft to v. The head keeps its size.
func (a *Arrow) Update(v geom.Point) {
	v = geom.Sanitize(v)
	a.rotation = geom.Angle(v)
	a.length = v.Length()
	a.vector = v
}

// orient is the rotation about the pivot.
func (a *Arrow) orient() gg.Matrix {
	return gg.Translate(a.pivot.X, a.pivot.Y).Multiply(gg.Rotate(a.rotation))
}

// Tip returns the end of the shaft in screen coordinates.
func (a *Arrow) Tip() geom.Point {
	return a.orient().Multiply(gg.Scale(a.length, 1)).TransformPoint(geom.UnitX)
}

// Head returns the two outer points of the chevron.
func (a *Arrow) Head() (left, right geom.Point) {
	m := a.orient().Multiply(gg.Translate(a.length-1, 0))
	barb := geom.UnitX.Mul(a.headSize)
	left = m.TransformPoint(geom.UnitX.Add(barb.Rotate(headAngle)))
	right = m.TransformPoint(geom.UnitX.Add(barb.Rotate(-headAngle)))
	return left, right
}

// Draw strokes the shaft and both barbs.
func (a *Arrow) Draw(c render.Canvas) {
	tip := a.Tip()
	left, right := a.Head()
	c.StrokeLine(a.pivot, tip, a.Style.StrokeWidth, a.Style.StrokeColor)
	c.StrokeLine(left, tip, a.Style.StrokeWidth, a.Style.StrokeColor)
	c.StrokeLine(tip, right, a.Style.StrokeWidth, a.Style.StrokeColor)
}
