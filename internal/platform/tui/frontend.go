package tui

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// rowUnits is how many layout units one terminal row spans. Rows are about
// twice as tall as columns are wide.
const rowUnits = 2

// Frontend plays the game in the terminal.
type Frontend struct{}

func init() {
	registry.Register("terminal", func() registry.Frontend {
		return Frontend{}
	})
}

// ID returns the frontend identifier.
func (Frontend) ID() string { return "terminal" }

// Title returns the display name.
func (Frontend) Title() string { return "Terminal" }

// Run picks a board for the current terminal size and plays until quit.
func (Frontend) Run(opts registry.Options) error {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	if opts.FPS > 0 {
		cfg.TickRate = opts.FPS
	}
	cfg.Seed = opts.Seed

	layout := game.SelectLayout(cfg.ScreenW, cfg.ScreenH*rowUnits, opts.Config.Layout.Terminal)
	settings, err := game.SettingsFor(opts.Config, layout.Grid)
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	opts.Logger.Info("starting", "frontend", "terminal", "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH),
		"grid", fmt.Sprintf("%dx%d", layout.Grid.Cols, layout.Grid.Rows))

	player := audio.New(opts.Config.Audio, opts.Logger)
	defer player.Close()

	return Run(settings, player, cfg, opts.Logger)
}
