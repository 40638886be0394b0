// Package chime plays a short tone when the active scene changes.
package chime

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Chime plays tones through the default audio device.
type Chime struct {
	ready bool
}

// New opens the speaker. A Chime is returned even on error; it then stays
// silent.
func New() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Chime{}, fmt.Errorf("open speaker: %w", err)
	}
	return &Chime{ready: true}, nil
}

// Tone returns the pitch for scene index i: a pentatonic step per scene.
func Tone(i int) float64 {
	steps := []float64{0, 2, 4, 7, 9}
	octave := i / len(steps)
	semis := steps[i%len(steps)] + float64(12*octave)
	return 440 * math.Pow(2, semis/12)
}

// Play sounds the tone for scene index i.
func (c *Chime) Play(i int) {
	if !c.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, Tone(i))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(80*time.Millisecond), sine))
}

// Close releases the speaker.
func (c *Chime) Close() {
	if c.ready {
		speaker.Close()
	}
}
