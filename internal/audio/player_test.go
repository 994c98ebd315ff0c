package audio

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// TestSilentPlayerIgnoresCues verifies cues are safe without a speaker.
func TestSilentPlayerIgnoresCues(t *testing.T) {
	p := Silent()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("silent player panicked: %v", r)
		}
	}()

	p.ThemeStart()
	p.Turned()
	p.AppleEaten()
	p.ThemeStop()
	p.GameOver()
	p.Close()

	if p.Ready() {
		t.Error("silent player should not be ready")
	}
}

func TestDisabledAudioStaysSilent(t *testing.T) {
	cfg := config.DefaultConfig().Audio
	cfg.Enabled = false

	p := New(cfg, log.New(io.Discard))

	if p.Ready() {
		t.Error("disabled audio should not open the speaker")
	}
	p.AppleEaten()
	p.Close()
}
