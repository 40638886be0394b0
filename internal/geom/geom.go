// Package geom holds the 2D point helpers shared by fields, glyphs and particles.
//
// Positions and vectors share one representation, gg.Point. Logical coordinates
// are cartesian (Y up); screen coordinates follow the render surface (Y down).
package geom

import (
	"math"
	"math/rand"

	"github.com/gogpu/gg"
)

// Point is a 2D position or displacement.
type Point = gg.Point

// Matrix is a 2D affine transform.
type Matrix = gg.Matrix

var (
	// UnitX is the unit vector along the logical X axis.
	UnitX = Point{X: 1}
	// UnitY is the unit vector along the logical Y axis.
	UnitY = Point{Y: 1}
)

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return gg.Pt(x, y)
}

// Angle returns the polar angle of p in radians.
func Angle(p Point) float64 {
	return math.Atan2(p.Y, p.X)
}

// WithLength returns p rescaled to length l. The zero vector stays zero.
func WithLength(p Point, l float64) Point {
	return p.Normalize().Mul(l)
}

// WithAngle returns a vector of p's length pointing at angle (radians).
func WithAngle(p Point, angle float64) Point {
	return UnitX.Rotate(angle).Mul(p.Length())
}

// FlipY mirrors p across the X axis.
func FlipY(p Point) Point {
	return Point{X: p.X, Y: -p.Y}
}

// Finite reports whether both components are neither NaN nor infinite.
func Finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Sanitize returns p, or the zero vector when p is not finite.
func Sanitize(p Point) Point {
	if !Finite(p) {
		return Point{}
	}
	return p
}

// RandomUnit returns a unit vector with a uniformly random direction.
func RandomUnit(rng *rand.Rand) Point {
	return UnitX.Rotate(rng.Float64()*2*math.Pi - math.Pi)
}

// RandomVector returns a random direction scaled by a length in [0, size).
func RandomVector(rng *rand.Rand, size float64) Point {
	return RandomUnit(rng).Mul(rng.Float64() * size)
}

// RandomInSquare returns a point with both components uniform in [0, size).
func RandomInSquare(rng *rand.Rand, size float64) Point {
	return Point{X: rng.Float64() * size, Y: rng.Float64() * size}
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Cartesian returns the logical-to-screen transform: scale units to pixels,
// invert Y and move the origin to center.
func Cartesian(scale float64, center Point) Matrix {
	return Matrix{
		A: scale, B: 0, C: center.X,
		D: 0, E: -scale, F: center.Y,
	}
}

// Bounds is an axis-aligned rectangle in logical coordinates.
type Bounds struct {
	Min, Max Point
}

// Square returns the bounds [-half, half] on both axes.
func Square(half float64) Bounds {
	return Bounds{Min: Pt(-half, -half), Max: Pt(half, half)}
}

// Inside reports whether p lies strictly within b.
func (b Bounds) Inside(p Point) bool {
	return p.X > b.Min.X && p.X < b.Max.X && p.Y > b.Min.Y && p.Y < b.Max.Y
}
