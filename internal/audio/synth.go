package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// sweep is a sine tone gliding linearly from one frequency to another with
// an exponential decay. It ends after its duration.
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	decay    float64 // Amplitude falloff per second
	total    int
	pos      int
	phase    float64
}

func newSweep(rate beep.SampleRate, from, to float64, d time.Duration, decay float64) *sweep {
	return &sweep{rate: rate, from: from, to: to, decay: decay, total: rate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		t := float64(s.pos) / float64(s.rate)

		// Short linear attack avoids a click at the start.
		attack := math.Min(float64(s.pos)/float64(s.rate.N(5*time.Millisecond)+1), 1)
		val := attack * math.Exp(-s.decay*t) * math.Sin(2*math.Pi*s.phase)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// themeNotes is the looping background arpeggio in Hz.
var themeNotes = []float64{220.00, 261.63, 329.63, 261.63, 196.00, 246.94, 293.66, 246.94}

const themeNoteLen = 180 * time.Millisecond

// theme is an endless arpeggio with a bass drone. It never ends on its own;
// callers pause it through a beep.Ctrl.
type theme struct {
	rate    beep.SampleRate
	noteLen int
	pos     int
	phase   float64
	bass    float64
}

func newTheme(rate beep.SampleRate) *theme {
	return &theme{rate: rate, noteLen: rate.N(themeNoteLen)}
}

func (g *theme) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := (g.pos / g.noteLen) % len(themeNotes)
		inNote := g.pos % g.noteLen
		freq := themeNotes[note]

		env := math.Exp(-6 * float64(inNote) / float64(g.rate))
		lead := 0.5 * env * math.Sin(2*math.Pi*g.phase)
		drone := 0.2 * math.Sin(2*math.Pi*g.bass)
		val := lead + drone

		samples[i][0] = val
		samples[i][1] = val

		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.bass += themeNotes[0] / 2 / float64(g.rate)
		g.bass -= math.Floor(g.bass)
		g.pos++
	}
	return len(samples), true
}

func (g *theme) Err() error { return nil }

// Cue generators.

func eatSound(rate beep.SampleRate) beep.Streamer {
	return newSweep(rate, 880, 1320, 120*time.Millisecond, 12)
}

func turnSound(rate beep.SampleRate) beep.Streamer {
	return newSweep(rate, 520, 480, 40*time.Millisecond, 30)
}

func gameOverSound(rate beep.SampleRate) beep.Streamer {
	return newSweep(rate, 440, 110, 700*time.Millisecond, 2)
}

// withVolume scales s by vol in 0..1. Zero is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
