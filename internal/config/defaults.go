package config

import (
	_ "embed"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the embedded default configuration.
func DefaultConfig() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return builtinConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}

// builtinConfig mirrors defaults/snake.yaml.
func builtinConfig() Config {
	return Config{
		Board: BoardConfig{
			SnakeStart: [][2]int{{9, 8}, {8, 8}},
			AppleStart: [2]int{10, 20},
			Direction:  "right",
		},
		Timing: TimingConfig{
			CountdownFrom:     3,
			CountdownInterval: time.Second,
			StartDelay:        time.Second,
			InitialSpeed:      100 * time.Millisecond,
			SpeedStep:         time.Millisecond,
			MinSpeed:          40 * time.Millisecond,
			ExitDuration:      time.Second,
		},
		Audio: AudioConfig{
			Enabled:       true,
			ThemeVolume:   0.15,
			EffectsVolume: 0.8,
		},
		Layout: LayoutConfig{
			Window: []Breakpoint{
				{MinWidth: 1919, MinHeight: 1079, CanvasWidth: 1920, CanvasHeight: 900, Scale: 30},
				{MinWidth: 1536, MinHeight: 864, CanvasWidth: 1500, CanvasHeight: 720, Scale: 25},
				{MinWidth: 1279, MinHeight: 719, CanvasWidth: 1200, CanvasHeight: 600, Scale: 20},
				{MinWidth: 767, MinHeight: 431, CanvasWidth: 690, CanvasHeight: 390, Scale: 15},
				{MinWidth: 0, MinHeight: 0, CanvasWidth: 900, CanvasHeight: 600, Scale: 18},
			},
			Terminal: []Breakpoint{
				{MinWidth: 199, MinHeight: 119, CanvasWidth: 196, CanvasHeight: 112, Scale: 2},
				{MinWidth: 159, MinHeight: 99, CanvasWidth: 156, CanvasHeight: 92, Scale: 2},
				{MinWidth: 119, MinHeight: 67, CanvasWidth: 116, CanvasHeight: 60, Scale: 2},
				{MinWidth: 0, MinHeight: 0, CanvasWidth: 76, CanvasHeight: 42, Scale: 2},
			},
		},
	}
}
