package scene

import (
	"log/slog"

	"github.com/olivierh59500/vector-flow/internal/geom"
	"github.com/olivierh59500/vector-flow/internal/render"
)

// Controls is the surface hosts bind to UI outside the canvas.
type Controls interface {
	Next() bool
	Prev() bool
}

// Manager owns an indexed list of scenes with exactly one active.
type Manager struct {
	scenes []*Scene
	index  int
	logger *slog.Logger

	// OnSwitch is called after a successful Solo.
	OnSwitch func(s *Scene, index int)
}

var _ Controls = (*Manager)(nil)

// NewManager returns an empty manager. A nil logger discards output.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{logger: logger}
}

// Add appends scenes. New scenes start hidden.
func (m *Manager) Add(ss ...*Scene) {
	for _, s := range ss {
		s.Deactivate()
		m.scenes = append(m.scenes, s)
	}
}

// Len returns the number of scenes.
func (m *Manager) Len() int {
	return len(m.scenes)
}

// Index returns the active scene index.
func (m *Manager) Index() int {
	return m.index
}

// Scene returns the scene at i, or nil when out of range.
func (m *Manager) Scene(i int) *Scene {
	if i < 0 || i >= len(m.scenes) {
		return nil
	}
	return m.scenes[i]
}

// Scenes returns every scene in order.
func (m *Manager) Scenes() []*Scene {
	return append([]*Scene(nil), m.scenes...)
}

// Active returns the active scene, or nil before the first Solo.
func (m *Manager) Active() *Scene {
	s := m.Scene(m.index)
	if s == nil || !s.Active() {
		return nil
	}
	return s
}

// Lookup returns the index of the scene called name, or -1.
func (m *Manager) Lookup(name string) int {
	for i, s := range m.scenes {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// Solo deactivates every scene and activates the one at i. Out-of-range
// indexes are ignored.
func (m *Manager) Solo(i int) bool {
	if i < 0 || i >= len(m.scenes) {
		m.logger.Debug("solo ignored", "index", i, "scenes", len(m.scenes))
		return false
	}
	for _, s := range m.scenes {
		s.Deactivate()
	}
	m.index = i
	s := m.scenes[i]
	s.Activate()
	m.logger.Info("scene active", "name", s.Name, "index", i)
	if m.OnSwitch != nil {
		m.OnSwitch(s, i)
	}
	return true
}

// Next activates the following scene. It does nothing on the last scene.
func (m *Manager) Next() bool {
	if m.index >= len(m.scenes)-1 {
		return false
	}
	return m.Solo(m.index + 1)
}

// Prev activates the preceding scene. It does nothing on the first scene.
func (m *Manager) Prev() bool {
	if m.index <= 0 {
		return false
	}
	return m.Solo(m.index - 1)
}

// Frame delivers ev to every scene; paused scenes ignore it.
func (m *Manager) Frame(ev FrameEvent) {
	for _, s := range m.scenes {
		s.Frame(ev)
	}
}

// MouseMove forwards the cursor to the active scene.
func (m *Manager) MouseMove(screen geom.Point) {
	if s := m.Active(); s != nil {
		s.MouseMove(screen)
	}
}

// KeyDown forwards a key to the active scene.
func (m *Manager) KeyDown(key Key) {
	if s := m.Active(); s != nil {
		s.KeyDown(key)
	}
}

// Draw paints the active scene.
func (m *Manager) Draw(c render.Canvas) {
	if s := m.Active(); s != nil {
		s.Draw(c)
	}
}
