package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a frontend and difficulty, then play",
	Long: `Start with an interactive picker for the frontend and the difficulty.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Esc          - Back
  Q            - Quit

Examples:
  snake menu
  snake menu --seed 42`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	selection, err := tui.RunMenu(registry.List(), width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if selection == nil {
		return
	}

	flagDifficulty = string(selection.Difficulty)
	runPlay(cmd, []string{selection.Frontend})
}
