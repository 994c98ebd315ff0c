package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the number of samples produced.
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := range n {
			if math.Abs(buf[i][0]) > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d = %v, expected mono within [-1, 1]", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	return total
}

func TestCueSoundsEnd(t *testing.T) {
	tests := []struct {
		name   string
		stream beep.Streamer
		length time.Duration
	}{
		{"eat", eatSound(sampleRate), 120 * time.Millisecond},
		{"turn", turnSound(sampleRate), 40 * time.Millisecond},
		{"game over", gameOverSound(sampleRate), 700 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := sampleRate.N(tc.length)
			got := drain(t, tc.stream, want*2)
			if got != want {
				t.Errorf("%s produced %d samples, expected %d", tc.name, got, want)
			}
			if err := tc.stream.Err(); err != nil {
				t.Errorf("Err() = %v", err)
			}
		})
	}
}

func TestSweepExhaustedReportsDone(t *testing.T) {
	s := newSweep(sampleRate, 440, 440, time.Millisecond, 0)
	drain(t, s, sampleRate.N(time.Second))

	n, ok := s.Stream(make([][2]float64, 16))
	if n != 0 || ok {
		t.Errorf("Stream() after the end = %d, %v, expected 0, false", n, ok)
	}
}

func TestThemeNeverEnds(t *testing.T) {
	g := newTheme(sampleRate)
	limit := sampleRate.N(3 * time.Second)

	if got := drain(t, g, limit); got < limit {
		t.Errorf("theme stopped after %d samples", got)
	}
}

func TestWithVolumeSilence(t *testing.T) {
	s := withVolume(newSweep(sampleRate, 440, 440, 10*time.Millisecond, 0), 0)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := range n {
		if buf[i][0] != 0 {
			t.Fatalf("sample %d = %v, expected silence", i, buf[i][0])
		}
	}
}
