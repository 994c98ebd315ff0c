// Package window provides the Ebitengine frontend: the board is drawn on a
// pixel canvas sized from the monitor.
package window

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

const (
	margin    = 16 // Pixels around the canvas
	hudHeight = 28
)

// Game implements ebiten.Game for one window.
type Game struct {
	driver   *game.Driver
	settings game.Settings
	cues     game.Cues
	layout   game.Layout
	seed     int64
	fixed    bool
	logger   *log.Logger

	canvas *ebiten.Image
	glyph  *ebiten.Image
}

func newGame(settings game.Settings, layout game.Layout, cues game.Cues, seed int64, logger *log.Logger) *Game {
	g := &Game{
		settings: settings,
		cues:     cues,
		layout:   layout,
		seed:     seed,
		fixed:    seed != 0,
		logger:   logger,
		canvas:   ebiten.NewImage(layout.CanvasW, layout.CanvasH),
		glyph:    ebiten.NewImage(glyphW, glyphH),
	}
	if !g.fixed {
		g.seed = time.Now().UnixNano()
	}
	g.driver = game.NewDriver(game.NewSession(settings, cues, g.seed))
	return g
}

// Update handles input and advances the session by one frame.
func (g *Game) Update() error {
	switch action := g.action(); {
	case action == core.ActionQuit:
		return ebiten.Termination
	case action == core.ActionRestart:
		if g.driver.Session().Phase() == game.PhaseDead {
			g.restart()
		}
	case action.IsDirectional():
		if d, ok := game.DirectionFor(action); ok {
			g.driver.Session().Steer(d)
		}
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	for _, out := range g.driver.Update(dt) {
		if out.Died {
			s := g.driver.Session()
			g.logger.Info("game over", "score", s.Score(), "collision", out.Collision, "ticks", s.Ticks())
		}
	}
	return nil
}

func (g *Game) restart() {
	if !g.fixed {
		g.seed = time.Now().UnixNano()
	}
	g.driver.Replace(game.NewSession(g.settings, g.cues, g.seed))
	g.logger.Info("restart", "seed", g.seed)
}

// Draw renders the HUD and the canvas.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	s := g.driver.Session()
	fx := g.driver.Effects()

	text.Draw(screen, scoreLine(s), basicfont.Face7x13, margin, margin+glyphBase, hudColor)

	if s.Phase() == game.PhaseDead && fx.Exit >= 1 {
		drawGameOver(screen, s)
		return
	}

	drawBoard(g.canvas, s.State(), g.layout.Scale)
	if p := s.Phase(); p == game.PhaseCounting || p == game.PhaseStarting {
		drawCountdown(g.canvas, g.glyph, s.Countdown(), fx.Pulse)
	}

	op := &ebiten.DrawImageOptions{}
	exitTransform(op, g.layout.CanvasW, g.layout.CanvasH, margin, margin+hudHeight, fx.Exit)
	screen.DrawImage(g.canvas, op)
}

// Layout keeps a fixed logical size; the layout is chosen once at start.
func (g *Game) Layout(_, _ int) (int, int) {
	return windowSize(g.layout)
}

func windowSize(l game.Layout) (int, int) {
	return l.CanvasW + 2*margin, l.CanvasH + 2*margin + hudHeight
}

// fitWindow shrinks the window size to the monitor, keeping the aspect
// ratio. Layout still reports the full size so the canvas is scaled down.
func fitWindow(l game.Layout, monW, monH int) (int, int) {
	w, h := windowSize(l)
	if monW <= 0 || monH <= 0 || (w <= monW && h <= monH) {
		return w, h
	}
	if monW*h <= monH*w {
		return monW, h * monW / w
	}
	return w * monH / h, monH
}

func scoreLine(s *game.Session) string {
	return fmt.Sprintf("Score: %d", s.Score())
}
