package game

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Driver advances a session from frame deltas. It serves frontends with a
// fixed update rate instead of timer callbacks.
type Driver struct {
	session *Session
	timer   core.Timer
	token   core.TimerToken
	elapsed time.Duration // Time into the current period
	dead    time.Duration // Time since game over
}

// NewDriver arms a timer for s.
func NewDriver(s *Session) *Driver {
	d := &Driver{}
	d.Replace(s)
	return d
}

// Replace swaps in a new session, discarding the old schedule.
func (d *Driver) Replace(s *Session) {
	d.session = s
	d.dead = 0
	d.rearm()
}

// Session returns the driven session.
func (d *Driver) Session() *Session {
	return d.session
}

// Update accounts dt of frame time and advances the session for every period
// that elapsed. It returns the outcomes in order.
func (d *Driver) Update(dt time.Duration) []Outcome {
	if d.session.Phase() == PhaseDead {
		d.dead += dt
	}

	var outs []Outcome
	d.elapsed += dt
	for d.timer.Live(d.token) && d.elapsed >= d.timer.Period() {
		d.elapsed -= d.timer.Period()
		out := d.session.Advance()
		outs = append(outs, out)
		if out.Rearm {
			d.rearm()
		}
	}
	return outs
}

// Effects returns animation progress for the renderer.
func (d *Driver) Effects() Effects {
	var fx Effects
	if p := d.timer.Period(); p > 0 {
		fx.Pulse = core.Clamp(float64(d.elapsed)/float64(p), 0, 1)
	}
	if d.session.Phase() == PhaseDead {
		fx.Exit = 1
		if exit := d.session.Settings().ExitDuration; exit > 0 {
			fx.Exit = core.Clamp(float64(d.dead)/float64(exit), 0, 1)
		}
	}
	return fx
}

func (d *Driver) rearm() {
	d.token = d.timer.Arm(d.session.Interval())
	d.elapsed = 0
}
