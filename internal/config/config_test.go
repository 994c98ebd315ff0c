package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigMatchesBuiltin(t *testing.T) {
	cfg := DefaultConfig()
	builtin := builtinConfig()

	if cfg.Timing != builtin.Timing {
		t.Errorf("embedded timing %+v differs from builtin %+v", cfg.Timing, builtin.Timing)
	}
	if cfg.Audio != builtin.Audio {
		t.Errorf("embedded audio %+v differs from builtin %+v", cfg.Audio, builtin.Audio)
	}
	if cfg.Board.Direction != "right" || cfg.Board.AppleStart != [2]int{10, 20} {
		t.Errorf("unexpected board %+v", cfg.Board)
	}
	if len(cfg.Board.SnakeStart) != 2 || cfg.Board.SnakeStart[0] != [2]int{9, 8} {
		t.Errorf("unexpected snake start %v", cfg.Board.SnakeStart)
	}
	if len(cfg.Layout.Window) != len(builtin.Layout.Window) || len(cfg.Layout.Terminal) != len(builtin.Layout.Terminal) {
		t.Fatalf("layout tables differ: %+v", cfg.Layout)
	}
	for i := range cfg.Layout.Window {
		if cfg.Layout.Window[i] != builtin.Layout.Window[i] {
			t.Errorf("window breakpoint %d = %+v, expected %+v", i, cfg.Layout.Window[i], builtin.Layout.Window[i])
		}
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	data := `
timing:
  initial_speed: 120ms
  min_speed: 50ms
board:
  direction: down
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timing.InitialSpeed != 120*time.Millisecond {
		t.Errorf("InitialSpeed = %v, expected 120ms", cfg.Timing.InitialSpeed)
	}
	if cfg.Timing.MinSpeed != 50*time.Millisecond {
		t.Errorf("MinSpeed = %v, expected 50ms", cfg.Timing.MinSpeed)
	}
	if cfg.Board.Direction != "down" {
		t.Errorf("Direction = %q, expected down", cfg.Board.Direction)
	}
	// Untouched keys keep their defaults
	if cfg.Timing.CountdownFrom != 3 {
		t.Errorf("CountdownFrom = %d, expected default 3", cfg.Timing.CountdownFrom)
	}
	if cfg.Audio.ThemeVolume != 0.15 {
		t.Errorf("ThemeVolume = %v, expected default 0.15", cfg.Audio.ThemeVolume)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom file")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("timing: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load() error = %v, expected a parse error", err)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	data := `
board:
  direction: sideways
timing:
  min_speed: 0s
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should reject invalid values")
	}
	for _, want := range []string{"board.direction", "timing.min_speed"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty snake", func(c *Config) { c.Board.SnakeStart = nil }, "snake_start"},
		{"overlapping snake", func(c *Config) { c.Board.SnakeStart = [][2]int{{1, 1}, {1, 1}} }, "overlaps"},
		{"negative segment", func(c *Config) { c.Board.SnakeStart = [][2]int{{-1, 1}} }, "negative"},
		{"initial below floor", func(c *Config) { c.Timing.InitialSpeed = 10 * time.Millisecond }, "below min_speed"},
		{"zero countdown interval", func(c *Config) { c.Timing.CountdownInterval = 0 }, "countdown_interval"},
		{"loud theme", func(c *Config) { c.Audio.ThemeVolume = 2 }, "theme_volume"},
		{"no breakpoints", func(c *Config) { c.Layout.Terminal = nil }, "layout.terminal"},
		{"zero scale", func(c *Config) { c.Layout.Window[0].Scale = 0 }, "scale"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.want)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		initial time.Duration
		step    time.Duration
	}{
		{DifficultyEasy, 150 * time.Millisecond, time.Millisecond},
		{DifficultyNormal, 100 * time.Millisecond, time.Millisecond},
		{DifficultyHard, 70 * time.Millisecond, 2 * time.Millisecond},
		{DifficultyFixed, 100 * time.Millisecond, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Timing.InitialSpeed != tc.initial {
				t.Errorf("InitialSpeed = %v, expected %v", cfg.Timing.InitialSpeed, tc.initial)
			}
			if cfg.Timing.SpeedStep != tc.step {
				t.Errorf("SpeedStep = %v, expected %v", cfg.Timing.SpeedStep, tc.step)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced an invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}
