package render

import (
	"image/color"

	"github.com/olivierh59500/vector-flow/internal/geom"
)

// Op is one recorded drawing call.
type Op struct {
	Kind   string // "fill", "line" or "circle"
	From   geom.Point
	To     geom.Point
	Radius float64
	Width  float64
	Color  color.Color
}

// Recorder is a Canvas that keeps every call instead of drawing.
type Recorder struct {
	W, H int
	Ops  []Op
}

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

// Size returns the recorded surface size.
func (r *Recorder) Size() (int, int) {
	return r.W, r.H
}

// Fill records a background fill.
func (r *Recorder) Fill(clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill", Color: clr})
}

// StrokeLine records a line.
func (r *Recorder) StrokeLine(from, to geom.Point, width float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "line", From: from, To: to, Width: width, Color: clr})
}

// FillCircle records a circle.
func (r *Recorder) FillCircle(center geom.Point, radius float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "circle", From: center, Radius: radius, Color: clr})
}

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops every recorded op.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
