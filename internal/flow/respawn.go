package flow

import (
	"math/rand"

	"github.com/olivierh59500/vector-flow/internal/field"
	"github.com/olivierh59500/vector-flow/internal/geom"
)

// Respawner relocates a particle when it should leave the flow. It reports
// whether the particle moved.
type Respawner func(p *Particle) bool

// Respawn runs the respawners in order on every particle, so a later one
// sees where an earlier one put it. It returns how many particles moved.
func Respawn(ps []*Particle, rs ...Respawner) int {
	n := 0
	for _, p := range ps {
		moved := false
		for _, r := range rs {
			if r(p) {
				moved = true
			}
		}
		if moved {
			n++
		}
	}
	return n
}

// SpawnFunc returns the point a respawned particle restarts from.
type SpawnFunc func() geom.Point

// Near returns a SpawnFunc placing particles at *center plus an offset with
// both components in [0, radius). center is read on every call.
func Near(rng *rand.Rand, center *geom.Point, radius float64) SpawnFunc {
	return func() geom.Point {
		return center.Add(geom.RandomInSquare(rng, radius))
	}
}

// Around returns a SpawnFunc placing particles within radius of *center in
// a random direction.
func Around(rng *rand.Rand, center *geom.Point, radius float64) SpawnFunc {
	return func() geom.Point {
		return center.Add(geom.RandomVector(rng, radius))
	}
}

// Window respawns particles that leave bounds.
func Window(bounds geom.Bounds, spawn SpawnFunc) Respawner {
	return func(p *Particle) bool {
		if bounds.Inside(p.point) {
			return false
		}
		p.SetPosition(spawn())
		return true
	}
}

// Stagnant respawns particles where the field is weaker than threshold.
func Stagnant(f *field.Field, threshold float64, spawn SpawnFunc) Respawner {
	return func(p *Particle) bool {
		if f.VectorAt(p.point).Length() >= threshold {
			return false
		}
		p.SetPosition(spawn())
		return true
	}
}

// PastX respawns particles whose X reaches limit.
func PastX(limit float64, spawn SpawnFunc) Respawner {
	return func(p *Particle) bool {
		if p.point.X < limit {
			return false
		}
		p.SetPosition(spawn())
		return true
	}
}
