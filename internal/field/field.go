// Package field evaluates 2D vector fields built from a base function and
// optional zone overrides.
package field

import (
	"github.com/olivierh59500/vector-flow/internal/geom"
)

// Func maps a point to a vector.
type Func func(p geom.Point) geom.Point

// Zone is a region predicate. A zone registered on a field overrides the
// base function for every point it contains.
type Zone interface {
	Contains(p geom.Point) bool
}

type override struct {
	zone Zone
	fn   Func
}

// Field is a total function from points to vectors. Zones are checked in
// registration order and the first containing zone wins.
type Field struct {
	base  Func
	zones []override
}

// New returns a field with base function f and no zones.
func New(f Func) *Field {
	return &Field{base: f}
}

// SetBase replaces the base function.
func (f *Field) SetBase(fn Func) {
	f.base = fn
}

// AddZone registers fn as the override for points inside z.
func (f *Field) AddZone(z Zone, fn Func) {
	f.zones = append(f.zones, override{zone: z, fn: fn})
}

// Zones returns the registered zones in order.
func (f *Field) Zones() []Zone {
	zs := make([]Zone, len(f.zones))
	for i, o := range f.zones {
		zs[i] = o.zone
	}
	return zs
}

// VectorAt evaluates the field at p.
func (f *Field) VectorAt(p geom.Point) geom.Point {
	for _, o := range f.zones {
		if o.zone.Contains(p) {
			return o.fn(p)
		}
	}
	if f.base == nil {
		return geom.Point{}
	}
	return f.base(p)
}
