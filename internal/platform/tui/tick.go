// Package tui provides the Bubble Tea frontend for the snake game.
// It handles the terminal UI loop, input mapping and the session timer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// stepMsg is sent when the session timer elapses. It carries the token of
// the schedule that produced it; stale firings are dropped.
type stepMsg struct {
	token core.TimerToken
}

// frameMsg triggers a redraw so animations progress between steps.
type frameMsg time.Time

// stepCmd returns a command that delivers one stepMsg after d.
func stepCmd(tok core.TimerToken, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return stepMsg{token: tok}
	})
}

// frameCmd returns a command that sends frame messages at the specified rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
