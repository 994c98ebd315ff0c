package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Model is the Bubble Tea model for a snake session.
type Model struct {
	session  *game.Session
	settings game.Settings
	cues     game.Cues
	config   core.RuntimeConfig
	fixed    bool // Seed came from the user; restarts replay it

	timer   *core.Timer
	armedAt time.Time // When the current timer period started
	diedAt  time.Time

	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	showHelp bool
	logger   *log.Logger
	now      func() time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model and arms the session timer.
func NewModel(settings game.Settings, cues game.Cues, cfg core.RuntimeConfig, logger *log.Logger) Model {
	fixed := cfg.Seed != 0
	// Use time-based seed if not specified
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		session:  game.NewSession(settings, cues, cfg.Seed),
		settings: settings,
		cues:     cues,
		config:   cfg,
		fixed:    fixed,
		timer:    &core.Timer{},
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		now:      time.Now,
	}
	m.fit(cfg.ScreenW, cfg.ScreenH)
	m.timer.Arm(m.session.Interval())
	m.armedAt = m.now()
	return m
}

// Init starts the session timer and the redraw loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		stepCmd(m.timer.Token(), m.timer.Period()),
		frameCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.fit(msg.Width, msg.Height)
		return m, nil

	case stepMsg:
		return m.handleStep(msg)

	case frameMsg:
		return m, frameCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.timer.Stop()
		return m, tea.Quit

	case action == core.ActionScreenshot:
		m.saveScreenshot()

	case action == core.ActionRestart:
		if m.session.Phase() == game.PhaseDead {
			return m, m.restart()
		}

	case action.IsDirectional():
		if d, ok := game.DirectionFor(action); ok {
			m.session.Steer(d)
		}
	}

	return m, nil
}

// handleStep advances the session when its timer fires.
func (m Model) handleStep(msg stepMsg) (tea.Model, tea.Cmd) {
	if !m.timer.Live(msg.token) {
		return m, nil
	}

	out := m.session.Advance()
	if out.Died {
		m.diedAt = m.now()
		m.logger.Info("game over", "score", m.session.Score(), "collision", out.Collision, "ticks", m.session.Ticks())
	}
	if out.Rearm {
		m.logger.Debug("timer re-armed", "phase", out.Phase, "interval", m.session.Interval())
		return m, m.arm()
	}

	m.armedAt = m.now()
	return m, stepCmd(msg.token, m.timer.Period())
}

// arm restarts the timer with the session's current interval.
func (m *Model) arm() tea.Cmd {
	interval := m.session.Interval()
	tok := m.timer.Arm(interval)
	m.armedAt = m.now()
	if !m.timer.Armed() {
		return nil
	}
	return stepCmd(tok, interval)
}

// restart replaces the finished session with a fresh one.
func (m *Model) restart() tea.Cmd {
	if !m.fixed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.session = game.NewSession(m.settings, m.cues, m.config.Seed)
	m.diedAt = time.Time{}
	m.logger.Info("restart", "seed", m.config.Seed)
	return m.arm()
}

// fit sizes the screen buffer for a terminal of w×h cells. The help line is
// shown only when there is a spare row below the board.
func (m *Model) fit(w, h int) {
	m.config.ScreenW = w
	m.config.ScreenH = h

	_, needH := game.BoardSize(m.settings.Board.Grid)
	m.showHelp = h > needH
	if m.showHelp {
		h--
	}
	m.screen.Resize(w, h)
	m.help.Width = w
}

// effects converts elapsed time into animation progress for the renderer.
func (m Model) effects() game.Effects {
	now := m.now()
	var fx game.Effects
	if p := m.timer.Period(); p > 0 {
		fx.Pulse = core.Clamp(float64(now.Sub(m.armedAt))/float64(p), 0, 1)
	}
	if m.session.Phase() == game.PhaseDead {
		fx.Exit = 1
		if d := m.settings.ExitDuration; d > 0 {
			fx.Exit = core.Clamp(float64(now.Sub(m.diedAt))/float64(d), 0, 1)
		}
	}
	return fx
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	game.Render(m.screen, m.session, m.effects())

	dir := filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	game.Render(m.screen, m.session, m.effects())
	view := RenderScreen(m.screen)
	if m.showHelp {
		view += "\n" + m.help.View(m.keys)
	}
	return view
}

// Run starts the Bubble Tea program for one terminal session.
func Run(settings game.Settings, cues game.Cues, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(settings, cues, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
