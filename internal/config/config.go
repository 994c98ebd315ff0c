// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all configuration for the game.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Audio  AudioConfig  `yaml:"audio"`
	Layout LayoutConfig `yaml:"layout"`
}

// BoardConfig defines the starting position of a game.
type BoardConfig struct {
	SnakeStart [][2]int `yaml:"snake_start"` // Head first
	AppleStart [2]int   `yaml:"apple_start"`
	Direction  string   `yaml:"direction"` // left, up, right or down
}

// TimingConfig defines the countdown, start delay and tick speeds.
type TimingConfig struct {
	CountdownFrom     int           `yaml:"countdown_from"`
	CountdownInterval time.Duration `yaml:"countdown_interval"`
	StartDelay        time.Duration `yaml:"start_delay"`
	InitialSpeed      time.Duration `yaml:"initial_speed"` // Tick interval at start
	SpeedStep         time.Duration `yaml:"speed_step"`    // Interval reduction per apple
	MinSpeed          time.Duration `yaml:"min_speed"`     // Interval floor
	ExitDuration      time.Duration `yaml:"exit_duration"` // Game over transition length
}

// AudioConfig defines sound settings.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	ThemeVolume   float64 `yaml:"theme_volume"`   // 0.0 - 1.0
	EffectsVolume float64 `yaml:"effects_volume"` // 0.0 - 1.0
}

// LayoutConfig holds the viewport breakpoint tables of each frontend.
type LayoutConfig struct {
	Window   []Breakpoint `yaml:"window"`
	Terminal []Breakpoint `yaml:"terminal"`
}

// Breakpoint maps a viewport larger than MinWidth×MinHeight to a canvas size
// and the size of one grid cell on that canvas.
type Breakpoint struct {
	MinWidth     int `yaml:"min_width"`
	MinHeight    int `yaml:"min_height"`
	CanvasWidth  int `yaml:"canvas_width"`
	CanvasHeight int `yaml:"canvas_height"`
	Scale        int `yaml:"scale"`
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error

	if len(c.Board.SnakeStart) == 0 {
		errs = append(errs, errors.New("board.snake_start must have at least one segment"))
	}
	seen := make(map[[2]int]bool, len(c.Board.SnakeStart))
	for i, seg := range c.Board.SnakeStart {
		if seg[0] < 0 || seg[1] < 0 {
			errs = append(errs, fmt.Errorf("board.snake_start[%d] %v is negative", i, seg))
		}
		if seen[seg] {
			errs = append(errs, fmt.Errorf("board.snake_start[%d] %v overlaps another segment", i, seg))
		}
		seen[seg] = true
	}
	switch c.Board.Direction {
	case "left", "up", "right", "down":
	default:
		errs = append(errs, fmt.Errorf("board.direction %q is not one of left, up, right, down", c.Board.Direction))
	}

	t := c.Timing
	if t.CountdownFrom < 0 {
		errs = append(errs, fmt.Errorf("timing.countdown_from %d is negative", t.CountdownFrom))
	}
	if t.CountdownInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.countdown_interval %v must be positive", t.CountdownInterval))
	}
	if t.StartDelay <= 0 {
		errs = append(errs, fmt.Errorf("timing.start_delay %v must be positive", t.StartDelay))
	}
	if t.MinSpeed <= 0 {
		errs = append(errs, fmt.Errorf("timing.min_speed %v must be positive", t.MinSpeed))
	}
	if t.InitialSpeed < t.MinSpeed {
		errs = append(errs, fmt.Errorf("timing.initial_speed %v is below min_speed %v", t.InitialSpeed, t.MinSpeed))
	}
	if t.SpeedStep < 0 {
		errs = append(errs, fmt.Errorf("timing.speed_step %v is negative", t.SpeedStep))
	}
	if t.ExitDuration < 0 {
		errs = append(errs, fmt.Errorf("timing.exit_duration %v is negative", t.ExitDuration))
	}

	if c.Audio.ThemeVolume < 0 || c.Audio.ThemeVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.theme_volume %v is outside 0..1", c.Audio.ThemeVolume))
	}
	if c.Audio.EffectsVolume < 0 || c.Audio.EffectsVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.effects_volume %v is outside 0..1", c.Audio.EffectsVolume))
	}

	errs = append(errs, validateBreakpoints("layout.window", c.Layout.Window)...)
	errs = append(errs, validateBreakpoints("layout.terminal", c.Layout.Terminal)...)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

func validateBreakpoints(name string, table []Breakpoint) []error {
	if len(table) == 0 {
		return []error{fmt.Errorf("%s needs at least one breakpoint", name)}
	}
	var errs []error
	for i, bp := range table {
		if bp.Scale <= 0 {
			errs = append(errs, fmt.Errorf("%s[%d].scale %d must be positive", name, i, bp.Scale))
		}
		if bp.CanvasWidth < bp.Scale || bp.CanvasHeight < bp.Scale {
			errs = append(errs, fmt.Errorf("%s[%d] canvas %dx%d is smaller than one cell", name, i, bp.CanvasWidth, bp.CanvasHeight))
		}
	}
	return errs
}
