package field

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/vector-flow/internal/geom"
)

func vec(p geom.Point) r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// RectZone is an axis-aligned rectangle, edges included.
type RectZone struct {
	box r2.Box
}

// NewRectZone returns the rectangle spanned by two opposite corners.
func NewRectZone(a, b geom.Point) RectZone {
	return RectZone{box: r2.Box{
		Min: r2.Vec{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: r2.Vec{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}}
}

// Contains implements Zone.
func (z RectZone) Contains(p geom.Point) bool {
	v := vec(p)
	return v.X >= z.box.Min.X && v.X <= z.box.Max.X &&
		v.Y >= z.box.Min.Y && v.Y <= z.box.Max.Y
}

// CircleZone is a closed disc.
type CircleZone struct {
	Center geom.Point
	Radius float64
}

// Contains implements Zone.
func (z CircleZone) Contains(p geom.Point) bool {
	return r2.Norm(r2.Sub(vec(p), vec(z.Center))) <= z.Radius
}

// PolygonZone is a simple polygon tested with the even-odd rule.
type PolygonZone struct {
	vertices []r2.Vec
}

// NewPolygonZone returns a polygon over the given vertices. Fewer than three
// vertices yield an empty zone.
func NewPolygonZone(vertices ...geom.Point) PolygonZone {
	vs := make([]r2.Vec, len(vertices))
	for i, p := range vertices {
		vs[i] = vec(p)
	}
	return PolygonZone{vertices: vs}
}

// Contains implements Zone.
func (z PolygonZone) Contains(p geom.Point) bool {
	n := len(z.vertices)
	if n < 3 {
		return false
	}
	q := vec(p)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := z.vertices[i], z.vertices[j]
		if (a.Y > q.Y) == (b.Y > q.Y) {
			continue
		}
		// X of the edge at the ray's height.
		x := a.X + (q.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if q.X < x {
			inside = !inside
		}
	}
	return inside
}

// ZoneFunc adapts a predicate to Zone.
type ZoneFunc func(p geom.Point) bool

// Contains implements Zone.
func (f ZoneFunc) Contains(p geom.Point) bool { return f(p) }
