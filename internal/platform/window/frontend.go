package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// fallbackMonitor is assumed when the monitor size is unknown.
const fallbackW, fallbackH = 1280, 720

// Frontend plays the game in a desktop window.
type Frontend struct{}

func init() {
	registry.Register("window", func() registry.Frontend {
		return Frontend{}
	})
}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "window" }

// Title returns the display name.
func (Frontend) Title() string { return "Window" }

// Run sizes the canvas from the monitor and plays until the window closes.
func (Frontend) Run(opts registry.Options) error {
	w, h := fallbackW, fallbackH
	if m := ebiten.Monitor(); m != nil {
		if mw, mh := m.Size(); mw > 0 && mh > 0 {
			w, h = mw, mh
		}
	}

	layout := game.SelectLayout(w, h, opts.Config.Layout.Window)
	settings, err := game.SettingsFor(opts.Config, layout.Grid)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	opts.Logger.Info("starting", "frontend", "window", "monitor", fmt.Sprintf("%dx%d", w, h),
		"canvas", fmt.Sprintf("%dx%d", layout.CanvasW, layout.CanvasH), "scale", layout.Scale,
		"grid", fmt.Sprintf("%dx%d", layout.Grid.Cols, layout.Grid.Rows))

	player := audio.New(opts.Config.Audio, opts.Logger)
	defer player.Close()

	g := newGame(settings, layout, player, opts.Seed, opts.Logger)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowSize(fitWindow(layout, w, h))
	if opts.FPS > 0 {
		ebiten.SetTPS(opts.FPS)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
