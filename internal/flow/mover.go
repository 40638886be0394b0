package flow

import (
	"image/color"

	"github.com/olivierh59500/vector-flow/internal/field"
	"github.com/olivierh59500/vector-flow/internal/geom"
	"github.com/olivierh59500/vector-flow/internal/render"
)

// DefaultTimeStep is the simulation rate in steps per second.
const DefaultTimeStep = 60

// Mover integrates its particles at TimeStep steps per second regardless
// of the frame rate. At most one step runs per frame.
type Mover struct {
	Field     *field.Field
	TimeStep  float64
	TimeScale float64

	// Particle appearance.
	Radius float64
	Color  color.Color

	particles []*Particle
	remaining float64
	running   bool
	steps     int
}

// NewMover returns a stopped mover over f.
func NewMover(f *field.Field) *Mover {
	return &Mover{
		Field:     f,
		TimeStep:  DefaultTimeStep,
		TimeScale: 1,
		Radius:    2,
		Color:     color.RGBA{0xff, 0, 0, 0xff},
	}
}

// Add appends particles to the mover.
func (m *Mover) Add(ps ...*Particle) {
	m.particles = append(m.particles, ps...)
}

// Particles returns the particles in insertion order.
func (m *Mover) Particles() []*Particle { return m.particles }

// Steps returns how many integration steps have run.
func (m *Mover) Steps() int { return m.steps }

// Frame advances the accumulator by delta seconds and runs one step when
// it is due. It reports whether a step ran.
func (m *Mover) Frame(delta float64) bool {
	if !m.running || !m.ready(delta) {
		return false
	}
	m.Step()
	return true
}

func (m *Mover) ready(delta float64) bool {
	m.remaining -= delta
	if m.remaining > 0 {
		return false
	}
	m.remaining = 1 / m.TimeStep
	return true
}

// Step moves every particle by its velocity and resamples the velocity
// from the field at the new position.
func (m *Mover) Step() {
	dt := m.TimeScale / m.TimeStep
	for _, p := range m.particles {
		p.SetPosition(p.point.Add(p.Velocity.Mul(dt)))
		if m.Field != nil {
			p.Velocity = geom.Sanitize(m.Field.VectorAt(p.point))
		}
	}
	m.steps++
}

// Draw paints every particle as a filled dot.
func (m *Mover) Draw(c render.Canvas) {
	for _, p := range m.particles {
		c.FillCircle(p.screen, m.Radius, m.Color)
	}
}

// Start resumes integration.
func (m *Mover) Start() {
	m.running = true
}

// Stop pauses integration; Frame becomes a no-op.
func (m *Mover) Stop() {
	m.running = false
}

// Running reports whether the mover integrates on Frame.
func (m *Mover) Running() bool {
	return m.running
}
