package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Settings are the parameters of one session: the board and the lifecycle timing.
type Settings struct {
	Board             snake.Settings
	CountdownFrom     int
	CountdownInterval time.Duration
	StartDelay        time.Duration
	ExitDuration      time.Duration
}

// SettingsFor builds session settings from the configuration for a grid.
// The starting snake must fit the grid; the apple start may not, in which
// case a random cell is used.
func SettingsFor(cfg config.Config, grid snake.Grid) (Settings, error) {
	dir, err := snake.ParseDirection(cfg.Board.Direction)
	if err != nil {
		return Settings{}, fmt.Errorf("game: %w", err)
	}

	body := make([]snake.Point, 0, len(cfg.Board.SnakeStart))
	for _, seg := range cfg.Board.SnakeStart {
		p := snake.Point{X: seg[0], Y: seg[1]}
		if !grid.Contains(p) {
			return Settings{}, fmt.Errorf("game: snake start %v does not fit a %dx%d grid", p, grid.Cols, grid.Rows)
		}
		body = append(body, p)
	}
	if len(body) == 0 {
		return Settings{}, fmt.Errorf("game: empty snake start")
	}

	t := cfg.Timing
	return Settings{
		Board: snake.Settings{
			Grid:         grid,
			SnakeStart:   body,
			AppleStart:   snake.Point{X: cfg.Board.AppleStart[0], Y: cfg.Board.AppleStart[1]},
			Direction:    dir,
			InitialSpeed: t.InitialSpeed,
			SpeedStep:    t.SpeedStep,
			MinSpeed:     t.MinSpeed,
		},
		CountdownFrom:     t.CountdownFrom,
		CountdownInterval: t.CountdownInterval,
		StartDelay:        t.StartDelay,
		ExitDuration:      t.ExitDuration,
	}, nil
}
