package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/olivierh59500/vector-flow/internal/geom"
	"github.com/olivierh59500/vector-flow/internal/render"
	"github.com/olivierh59500/vector-flow/internal/scene"
)

// Visualizer runs the scenes inside an ebiten window.
type Visualizer struct {
	Width, Height int
	Scenes        *scene.Manager
	Controls      scene.Controls
	Paused        bool
	ShowHUD       bool

	logger   *slog.Logger
	start    time.Time
	last     time.Time
	frames   int
	cursor   scene.Cursor
	hudColor color.Color
}

// NewVisualizer wraps scenes for a window of w×h pixels.
func NewVisualizer(w, h int, scenes *scene.Manager, logger *slog.Logger) *Visualizer {
	now := time.Now()
	return &Visualizer{
		Width:    w,
		Height:   h,
		Scenes:   scenes,
		Controls: scenes,
		ShowHUD:  true,
		logger:   logger,
		start:    now,
		last:     now,
		hudColor: color.Gray{Y: 0x40},
	}
}

// Update is called each tick by Ebitengine
func (v *Visualizer) Update() error {
	v.handleInput()

	now := time.Now()
	delta := now.Sub(v.last).Seconds()
	v.last = now
	if v.Paused {
		return nil
	}

	v.frames++
	v.Scenes.Frame(scene.FrameEvent{
		Delta: delta,
		Time:  now.Sub(v.start).Seconds(),
		Count: v.frames,
	})
	return nil
}

// Draw is called each frame by Ebitengine
func (v *Visualizer) Draw(screen *ebiten.Image) {
	v.Scenes.Draw(screenCanvas{img: screen})
	if !v.ShowHUD {
		return
	}

	name := "-"
	if s := v.Scenes.Active(); s != nil {
		name = s.Name
	}
	status := fmt.Sprintf("%s  [%d/%d]", name, v.Scenes.Index()+1, v.Scenes.Len())
	if v.Paused {
		status += "  paused"
	}
	face := basicfont.Face7x13
	text.Draw(screen, status, face, 10, 20, v.hudColor)
	text.Draw(screen, "N/P: scene  arrows: tweak  space: pause  S: snapshot  H: hud", face, 10, v.Height-10, v.hudColor)
}

// Layout returns the screen size
func (v *Visualizer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.Width, v.Height
}

// handleInput processes keyboard and mouse input
func (v *Visualizer) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		v.Controls.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		v.Controls.Prev()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.Paused = !v.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		v.ShowHUD = !v.ShowHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.saveSnapshot()
	}

	for key, name := range arrowKeys {
		if inpututil.IsKeyJustPressed(key) {
			v.Scenes.KeyDown(name)
		}
	}

	if mx, my := ebiten.CursorPosition(); v.cursor.Moved(mx, my) {
		v.Scenes.MouseMove(geom.Pt(float64(mx), float64(my)))
	}
}
