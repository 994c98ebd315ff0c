package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "keep the config as is".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset modifies the timing based on a difficulty preset.
// Fixed keeps the initial speed for the whole game.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	t := &cfg.Timing
	switch preset {
	case DifficultyEasy:
		t.InitialSpeed = 150 * time.Millisecond
		t.SpeedStep = time.Millisecond
		t.MinSpeed = 60 * time.Millisecond
	case DifficultyNormal:
		t.InitialSpeed = 100 * time.Millisecond
		t.SpeedStep = time.Millisecond
		t.MinSpeed = 40 * time.Millisecond
	case DifficultyHard:
		t.InitialSpeed = 70 * time.Millisecond
		t.SpeedStep = 2 * time.Millisecond
		t.MinSpeed = 30 * time.Millisecond
	case DifficultyFixed:
		t.SpeedStep = 0
	}
	if t.MinSpeed > t.InitialSpeed {
		t.MinSpeed = t.InitialSpeed
	}
}
