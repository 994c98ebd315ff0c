// snake is a countdown Snake game for the terminal and the desktop.
//
// Usage:
//
//	snake play [frontend]  - Play in the terminal (default) or a window
//	snake menu             - Pick a frontend and difficulty interactively
//	snake list             - List available frontends
//	snake config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>           - Redraw rate (default: 60)
//	--seed <value>         - RNG seed for reproducible apple placement
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--mute                 - Disable sound
//	--log-file <path>      - Write logs to a file
//	--log-level <level>    - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-snake/internal/platform/tui"
	_ "github.com/vovakirdan/tui-snake/internal/platform/window"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game with a countdown",
	Long: `Snake starts with a 3-2-1 countdown, then the snake moves on its own.
Steer it to the apples, avoid the walls and your own tail. Every apple
makes the snake a little faster.

Available commands:
  play     - Play in the terminal or in a window
  menu     - Pick a frontend and difficulty, then play
  list     - Show the available frontends
  config   - Print the default configuration

Examples:
  snake play
  snake play window
  snake play --difficulty hard
  snake play --seed 42 --log-file snake.log`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal logs are discarded otherwise)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
