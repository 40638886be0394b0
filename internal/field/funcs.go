package field

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/olivierh59500/vector-flow/internal/geom"
)

// Identity returns p itself: a source spreading out from the origin.
func Identity(p geom.Point) geom.Point { return p }

// Pow2 squares each component.
func Pow2(p geom.Point) geom.Point {
	return geom.Pt(p.X*p.X, p.Y*p.Y)
}

// Unit is a constant flow along X.
func Unit(geom.Point) geom.Point {
	return geom.UnitX.Mul(20)
}

// SinX produces a lattice of counter-rotating cells.
func SinX(p geom.Point) geom.Point {
	return geom.Pt(2*math.Sin(p.Y), -2*math.Sin(p.X))
}

// Swirl maps (x, y) to (y², x²).
func Swirl(p geom.Point) geom.Point {
	return geom.Pt(p.Y*p.Y, p.X*p.X)
}

// Constant returns a function that always yields v.
func Constant(v geom.Point) Func {
	return func(geom.Point) geom.Point { return v }
}

// Sink pulls every point towards center with the given strength.
func Sink(center geom.Point, strength float64) Func {
	return func(p geom.Point) geom.Point {
		return center.Sub(p).Mul(strength)
	}
}

// Vortex circles counter-clockwise around center.
func Vortex(center geom.Point, strength float64) Func {
	return func(p geom.Point) geom.Point {
		d := p.Sub(center)
		return geom.Pt(-d.Y, d.X).Mul(strength)
	}
}

// Follow points every vector at target, bent by rate degrees per unit of
// half the distance so flows spiral in.
func Follow(target geom.Point, rate float64) Func {
	return func(p geom.Point) geom.Point {
		d := target.Sub(p)
		bend := geom.Radians(d.Length() / 2 * rate)
		return geom.WithAngle(d, geom.Angle(d)+bend)
	}
}

// AnimSin is a sine interference pattern that evolves with t seconds.
func AnimSin(t float64) Func {
	return func(p geom.Point) geom.Point {
		return geom.Pt(
			10*math.Sin((p.Y*(t/10)+t)*2),
			10*math.Sin((p.X*(t/10)+t)*2),
		)
	}
}

// Noise steers vectors of length strength by a perlin noise volume sampled
// at (x*scale, y*scale, t*drift).
type Noise struct {
	noise    *perlin.Perlin
	Scale    float64
	Strength float64
	Drift    float64
}

// NewNoise returns a noise field seeded with seed.
func NewNoise(seed int64, scale, strength, drift float64) *Noise {
	return &Noise{
		noise:    perlin.NewPerlin(2, 2, 3, seed),
		Scale:    scale,
		Strength: strength,
		Drift:    drift,
	}
}

// At returns the noise field frozen at time t.
func (n *Noise) At(t float64) Func {
	return func(p geom.Point) geom.Point {
		v := n.noise.Noise3D(p.X*n.Scale, p.Y*n.Scale, t*n.Drift)
		return geom.UnitX.Rotate(v * 2 * math.Pi).Mul(n.Strength)
	}
}
