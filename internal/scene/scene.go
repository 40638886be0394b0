// Package scene bundles a field, plotter and mover into switchable layers.
package scene

import (
	"image/color"

	"github.com/olivierh59500/vector-flow/internal/field"
	"github.com/olivierh59500/vector-flow/internal/flow"
	"github.com/olivierh59500/vector-flow/internal/geom"
	"github.com/olivierh59500/vector-flow/internal/plot"
	"github.com/olivierh59500/vector-flow/internal/render"
)

// FrameEvent is delivered once per rendered frame.
type FrameEvent struct {
	Delta float64 // seconds since the previous frame
	Time  float64 // seconds since start
	Count int
}

// Key names a pressed key: "left", "right", "up", "down" or a single
// character.
type Key string

// Scene is one independently visible layer.
type Scene struct {
	Name       string
	Background color.Color
	Field      *field.Field
	Plotter    *plot.Plotter
	Mover      *flow.Mover

	// Script hooks, called only while the scene is active. OnFrame runs
	// after the mover's step and before a live plotter recalculates.
	OnFrame     func(s *Scene, ev FrameEvent)
	OnMouseMove func(s *Scene, screen geom.Point)
	OnKeyDown   func(s *Scene, key Key)

	visible bool
}

// New returns a hidden scene whose plotter and mover share f.
func New(name string, f *field.Field, matrix geom.Matrix, background color.Color) *Scene {
	return &Scene{
		Name:       name,
		Background: background,
		Field:      f,
		Plotter:    plot.New(f, matrix),
		Mover:      flow.NewMover(f),
	}
}

// Logical converts a screen position to field coordinates.
func (s *Scene) Logical(screen geom.Point) geom.Point {
	return s.Plotter.Matrix().Invert().TransformPoint(screen)
}

// Activate shows the scene and starts its plotter and mover.
func (s *Scene) Activate() {
	s.visible = true
	s.Plotter.Start()
	s.Mover.Start()
}

// Deactivate hides the scene and pauses it.
func (s *Scene) Deactivate() {
	s.visible = false
	s.Plotter.Stop()
	s.Mover.Stop()
}

// Visible reports whether the scene is drawn.
func (s *Scene) Visible() bool {
	return s.visible
}

// Active reports whether the scene is visible and running.
func (s *Scene) Active() bool {
	return s.visible && s.Plotter.Running() && s.Mover.Running()
}

// Frame steps the mover, runs the frame script, then recalculates a live
// plotter.
func (s *Scene) Frame(ev FrameEvent) {
	s.Mover.Frame(ev.Delta)
	if s.OnFrame != nil && s.Active() {
		s.OnFrame(s, ev)
	}
	if s.Plotter.Live && s.Plotter.Running() {
		s.Plotter.Calculate()
	}
}

// MouseMove forwards a cursor position to the scene script.
func (s *Scene) MouseMove(screen geom.Point) {
	if s.OnMouseMove != nil && s.Active() {
		s.OnMouseMove(s, screen)
	}
}

// KeyDown forwards a key press to the scene script.
func (s *Scene) KeyDown(key Key) {
	if s.OnKeyDown != nil && s.Active() {
		s.OnKeyDown(s, key)
	}
}

// Draw paints background, glyphs and particles when the scene is visible.
func (s *Scene) Draw(c render.Canvas) {
	if !s.visible {
		return
	}
	if s.Background != nil {
		c.Fill(s.Background)
	}
	s.Plotter.Draw(c)
	s.Mover.Draw(c)
}
