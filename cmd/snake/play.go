package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Play the game",
	Long: `Start a game in the terminal (default) or in a desktop window.

Controls:
  Arrows/WASD  - Steer
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot (terminal)
  Q/Esc        - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - Default speeds
  hard   - Fast start, steep speed-up
  fixed  - Speed never changes

Examples:
  snake play
  snake play window
  snake play --difficulty easy
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	frontendID := "terminal"
	if len(args) == 1 {
		frontendID = args[0]
	}

	if !registry.Exists(frontendID) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", frontendID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available frontends.")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(frontendID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	frontend, err := registry.Create(frontendID)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := frontend.Run(registry.Options{
		Config: cfg,
		Seed:   flagSeed,
		FPS:    flagFPS,
		Logger: logger,
	})

	// Close the log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadConfig resolves the configuration from the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagMute {
		cfg.Audio.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
