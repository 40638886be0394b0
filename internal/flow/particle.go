// Package flow moves particles through a vector field on a fixed timestep.
package flow

import (
	"github.com/olivierh59500/vector-flow/internal/geom"
)

// Particle is a point mass in logical coordinates with a cached screen
// position.
type Particle struct {
	point    geom.Point
	screen   geom.Point
	matrix   geom.Matrix
	Velocity geom.Point
}

// NewParticle returns a resting particle at start.
func NewParticle(start geom.Point, matrix geom.Matrix) *Particle {
	p := &Particle{matrix: matrix}
	p.SetPosition(start)
	return p
}

// SetPosition moves the particle and reprojects its screen position.
func (p *Particle) SetPosition(pt geom.Point) {
	p.point = pt
	p.screen = p.matrix.TransformPoint(pt)
}

// Position returns the logical position.
func (p *Particle) Position() geom.Point { return p.point }

// Screen returns the projected screen position.
func (p *Particle) Screen() geom.Point { return p.screen }
