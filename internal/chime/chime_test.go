package chime

import (
	"math"
	"testing"
)

func TestTone(t *testing.T) {
	tests := []struct {
		index int
		want  float64
	}{
		{0, 440},
		{3, 440 * math.Pow(2, 7.0/12)},
		{5, 880},
	}
	for _, tt := range tests {
		if got := Tone(tt.index); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Tone(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestSilentChime(t *testing.T) {
	c := &Chime{}
	c.Play(1)
	c.Close()
}
