// Package game drives one Snake session through its lifecycle: the
// countdown, the start delay, the running simulation and game over. It owns
// no clock; frontends arm a timer with Interval and call Advance when it
// fires.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Phase is a lifecycle stage of a session.
type Phase int

const (
	PhaseCounting Phase = iota // Countdown digits are shown
	PhaseStarting              // Countdown done, waiting for the start delay
	PhaseRunning               // Snake is moving
	PhaseDead                  // Game over, board frozen
)

func (p Phase) String() string {
	switch p {
	case PhaseCounting:
		return "counting"
	case PhaseStarting:
		return "starting"
	case PhaseRunning:
		return "running"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Outcome reports what one Advance did.
type Outcome struct {
	Phase     Phase // Phase after the advance
	Ate       bool
	Died      bool
	Collision snake.Collision
	Rearm     bool // Interval changed; the caller must re-arm its timer
}

// Session is one game from countdown to game over. Restarting means
// building a new Session.
type Session struct {
	settings Settings
	cues     Cues
	rng      *rand.Rand

	phase     Phase
	countdown int
	state     *snake.State
	ticks     uint64 // Simulation steps taken
	final     int    // Score frozen at death
}

// NewSession creates a session in the counting phase. A nil cues means
// silence. The same seed yields the same apple sequence.
func NewSession(settings Settings, cues Cues, seed int64) *Session {
	if cues == nil {
		cues = NopCues{}
	}
	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		settings:  settings,
		cues:      cues,
		rng:       rng,
		phase:     PhaseCounting,
		countdown: settings.CountdownFrom,
		state:     snake.NewState(settings.Board, rng),
	}
	if s.countdown <= 0 {
		s.countdown = 0
		s.phase = PhaseStarting
	}
	return s
}

// Interval returns how long the caller should wait before the next Advance.
// Zero means no further advances are expected.
func (s *Session) Interval() time.Duration {
	switch s.phase {
	case PhaseCounting:
		return s.settings.CountdownInterval
	case PhaseStarting:
		return s.settings.StartDelay
	case PhaseRunning:
		return s.state.Speed()
	default:
		return 0
	}
}

// Advance performs one timer firing worth of work for the current phase.
func (s *Session) Advance() Outcome {
	switch s.phase {
	case PhaseCounting:
		s.countdown--
		if s.countdown > 0 {
			return Outcome{Phase: s.phase}
		}
		s.countdown = 0
		s.phase = PhaseStarting
		return Outcome{Phase: s.phase, Rearm: true}

	case PhaseStarting:
		// The board is rebuilt so the run starts from the configured layout.
		s.state = snake.NewState(s.settings.Board, s.rng)
		s.phase = PhaseRunning
		s.cues.ThemeStart()
		return Outcome{Phase: s.phase, Rearm: true}

	case PhaseRunning:
		s.ticks++
		res := s.state.Step()
		out := Outcome{Phase: s.phase, Ate: res.Ate, Rearm: res.SpeedChanged}
		if res.Ate {
			s.cues.AppleEaten()
		}
		if res.Died {
			s.phase = PhaseDead
			s.final = s.state.Score()
			s.cues.ThemeStop()
			s.cues.GameOver()
			out.Phase = s.phase
			out.Died = true
			out.Collision = res.Collision
			out.Rearm = true
		}
		return out

	default:
		return Outcome{Phase: s.phase}
	}
}

// Steer forwards a direction change to the simulation. Input outside the
// running phase is ignored.
func (s *Session) Steer(d snake.Direction) bool {
	if s.phase != PhaseRunning {
		return false
	}
	if !s.state.Steer(d) {
		return false
	}
	s.cues.Turned()
	return true
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Countdown returns the digit currently shown. It is 0 once counting is over.
func (s *Session) Countdown() int {
	return s.countdown
}

// State exposes the simulation for rendering. Callers must not mutate it.
func (s *Session) State() *snake.State {
	return s.state
}

// Settings returns the session settings.
func (s *Session) Settings() Settings {
	return s.settings
}

// Score returns the live score while running and the final score after death.
func (s *Session) Score() int {
	if s.phase == PhaseDead {
		return s.final
	}
	return s.state.Score()
}

// Ticks returns the number of simulation steps taken.
func (s *Session) Ticks() uint64 {
	return s.ticks
}
