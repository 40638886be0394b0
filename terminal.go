package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/vector-flow/internal/render"
	"github.com/olivierh59500/vector-flow/internal/scene"
)

// Terminal cells stand for this many window pixels.
const (
	cellW = 8
	cellH = 16
)

// Terminal runs the scenes on a tcell screen.
type Terminal struct {
	screen   tcell.Screen
	canvas   *render.Cells
	scenes   *scene.Manager
	controls scene.Controls
	logger   *slog.Logger
	tps      int
	paused   bool
}

// NewTerminal opens the terminal screen. Attach scenes before Run.
func NewTerminal(tps int, logger *slog.Logger) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	return &Terminal{
		screen: screen,
		canvas: render.NewCells(screen, cellW, cellH),
		logger: logger,
		tps:    tps,
	}, nil
}

// Size returns the screen size in window pixels.
func (t *Terminal) Size() (int, int) { return t.canvas.Size() }

// Attach sets the scenes to run. Scene switching keys go through Controls.
func (t *Terminal) Attach(scenes *scene.Manager) {
	t.scenes = scenes
	t.controls = scenes
}

// handleInput reports false when the user asked to quit.
func (t *Terminal) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyPgDn:
			t.controls.Next()
		case tcell.KeyPgUp:
			t.controls.Prev()
		case tcell.KeyLeft:
			t.scenes.KeyDown("left")
		case tcell.KeyRight:
			t.scenes.KeyDown("right")
		case tcell.KeyUp:
			t.scenes.KeyDown("up")
		case tcell.KeyDown:
			t.scenes.KeyDown("down")
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'n':
				t.controls.Next()
			case 'p':
				t.controls.Prev()
			case ' ':
				t.paused = !t.paused
			default:
				t.scenes.KeyDown(scene.Key(string(ev.Rune())))
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		t.scenes.MouseMove(t.canvas.ToPixel(x, y))

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *Terminal) draw() {
	t.screen.Clear()
	t.scenes.Draw(t.canvas)

	status := "-"
	if s := t.scenes.Active(); s != nil {
		status = fmt.Sprintf("%s [%d/%d]  n/p scene  q quit", s.Name, t.scenes.Index()+1, t.scenes.Len())
	}
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range status {
		t.screen.SetContent(i, 0, r, nil, style)
	}
	t.screen.Show()
}

// Run drives frames from a ticker until the user quits.
func (t *Terminal) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(t.tps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	start := time.Now()
	last := start
	frames := 0
	for {
		select {
		case ev := <-eventChan:
			if ev == nil {
				return
			}
			if !t.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			if !t.paused {
				frames++
				t.scenes.Frame(scene.FrameEvent{
					Delta: now.Sub(last).Seconds(),
					Time:  now.Sub(start).Seconds(),
					Count: frames,
				})
			}
			last = now
			t.draw()
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
	t.logger.Debug("terminal closed")
}
