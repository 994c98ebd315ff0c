// Package audio plays the game's sound cues: an eat chirp, a turn blip, a
// game over sweep and a looping background theme. All sounds are
// synthesized. When the audio device is unavailable the player stays silent.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// Player implements game.Cues on top of the system speaker.
type Player struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	theme    *beep.Ctrl
	themeVol float64
	fxVol    float64
	ready    bool
}

// Silent returns a player that ignores every cue.
func Silent() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// New opens the speaker and returns a player for cfg. Audio failures are
// logged and produce a silent player; they never stop the game.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	p := Silent()
	p.themeVol = cfg.ThemeVolume
	p.fxVol = cfg.EffectsVolume

	if !cfg.Enabled {
		logger.Debug("audio disabled")
		return p
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return p
	}
	speaker.Play(p.mixer)
	p.ready = true
	logger.Debug("audio ready", "rate", int(sampleRate), "theme", p.themeVol, "effects", p.fxVol)
	return p
}

// Ready reports whether sounds reach the speaker.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Turned plays the direction change blip.
func (p *Player) Turned() {
	p.play(turnSound(sampleRate))
}

// AppleEaten plays the eat chirp.
func (p *Player) AppleEaten() {
	p.play(eatSound(sampleRate))
}

// GameOver plays the descending game over sweep.
func (p *Player) GameOver() {
	p.play(gameOverSound(sampleRate))
}

// ThemeStart starts the background theme from the beginning.
func (p *Player) ThemeStart() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if p.theme != nil {
		p.theme.Paused = true
		p.theme.Streamer = nil
	}
	p.theme = &beep.Ctrl{Streamer: withVolume(newTheme(sampleRate), p.themeVol)}
	p.mixer.Add(p.theme)
}

// ThemeStop pauses the theme. The next ThemeStart restarts it from the top.
func (p *Player) ThemeStop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready || p.theme == nil {
		return
	}

	speaker.Lock()
	p.theme.Paused = true
	p.theme.Streamer = nil // Drained by the mixer
	speaker.Unlock()
	p.theme = nil
}

// Close stops all sound and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
	p.theme = nil
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}

	speaker.Lock()
	p.mixer.Add(withVolume(s, p.fxVol))
	speaker.Unlock()
}
