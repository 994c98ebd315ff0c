package window

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-snake/internal/game"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestExitTransform(t *testing.T) {
	const w, h = 600, 400
	const x, y = 16.0, 44.0
	turn := exitTurn * math.Pi / 180

	tests := []struct {
		name  string
		e     float64
		drop  float64
		angle float64
		alpha float32
	}{
		{"start", 0, 0, 0, 1},
		{"halfway", 0.5, exitDrop / 2, turn / 2, 0.5},
		{"end", 1, exitDrop, turn, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			op := &ebiten.DrawImageOptions{}
			exitTransform(op, w, h, x, y, tc.e)

			// The canvas center only falls
			cx, cy := op.GeoM.Apply(w/2, h/2)
			if !near(cx, x+w/2) || !near(cy, y+h/2+tc.drop) {
				t.Errorf("center = (%v, %v), expected (%v, %v)", cx, cy, x+w/2, y+h/2+tc.drop)
			}

			// The middle of the right edge swings around the center
			rx, ry := op.GeoM.Apply(w, h/2)
			wantX := x + w/2 + w/2*math.Cos(tc.angle)
			wantY := y + h/2 + tc.drop + w/2*math.Sin(tc.angle)
			if !near(rx, wantX) || !near(ry, wantY) {
				t.Errorf("right edge = (%v, %v), expected (%v, %v)", rx, ry, wantX, wantY)
			}

			if a := op.ColorScale.A(); math.Abs(float64(a-tc.alpha)) > 1e-6 {
				t.Errorf("alpha = %v, expected %v", a, tc.alpha)
			}
		})
	}
}

func TestCountdownStyle(t *testing.T) {
	tests := []struct {
		pulse float64
		scale float64
		alpha float32
	}{
		{0, 0.01, 1},
		{0.5, digitScale / 2, 0.5},
		{1, digitScale, 0},
		{1.5, digitScale, 0},
		{-1, 0.01, 1},
	}

	for _, tc := range tests {
		scale, alpha := countdownStyle(tc.pulse)
		if !near(scale, tc.scale) {
			t.Errorf("countdownStyle(%v) scale = %v, expected %v", tc.pulse, scale, tc.scale)
		}
		if alpha != tc.alpha {
			t.Errorf("countdownStyle(%v) alpha = %v, expected %v", tc.pulse, alpha, tc.alpha)
		}
	}
}

func TestFitWindow(t *testing.T) {
	top := game.Layout{CanvasW: 1920, CanvasH: 900, Scale: 30}
	small := game.Layout{CanvasW: 690, CanvasH: 390, Scale: 15}

	tests := []struct {
		name       string
		layout     game.Layout
		monW, monH int
		wantW      int
		wantH      int
	}{
		{"fits", small, 1280, 720, 690 + 2*margin, 390 + 2*margin + hudHeight},
		{"too wide", top, 1920, 1080, 1920, 960 * 1920 / 1952},
		{"too tall", small, 2000, 300, (690 + 2*margin) * 300 / (390 + 2*margin + hudHeight), 300},
		{"unknown monitor", top, 0, 0, 1952, 960},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := fitWindow(tc.layout, tc.monW, tc.monH)
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("fitWindow() = %dx%d, expected %dx%d", w, h, tc.wantW, tc.wantH)
			}
			if tc.monW > 0 && (w > tc.monW || h > tc.monH) {
				t.Errorf("window %dx%d exceeds the %dx%d monitor", w, h, tc.monW, tc.monH)
			}
		})
	}
}
