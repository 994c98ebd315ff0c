package core

import "time"

// TimerToken identifies one schedule of a Timer. Firings carrying a token
// from an older schedule are stale and must be dropped.
type TimerToken uint64

// Timer is a cancellable periodic schedule owned by a frontend.
//
// It does not run anything itself: the frontend's event loop delivers
// firings (a Bubble Tea message, an Ebitengine frame) tagged with the token
// returned by Arm, and asks Live whether the firing still belongs to the
// current schedule. Re-arming or stopping invalidates every outstanding token.
type Timer struct {
	gen    uint64
	period time.Duration
	armed  bool
}

// Arm cancels any outstanding schedule and starts a new one with the given
// period. A non-positive period is the same as Stop.
func (t *Timer) Arm(period time.Duration) TimerToken {
	t.gen++
	if period <= 0 {
		t.armed = false
		t.period = 0
		return TimerToken(t.gen)
	}
	t.armed = true
	t.period = period
	return TimerToken(t.gen)
}

// Stop cancels the current schedule.
func (t *Timer) Stop() {
	t.gen++
	t.armed = false
	t.period = 0
}

// Live reports whether a firing tagged with tok belongs to the current schedule.
func (t *Timer) Live(tok TimerToken) bool {
	return t.armed && uint64(tok) == t.gen
}

// Armed reports whether a schedule is active.
func (t *Timer) Armed() bool {
	return t.armed
}

// Period returns the period of the current schedule, or 0 when stopped.
func (t *Timer) Period() time.Duration {
	return t.period
}

// Token returns the token of the current schedule.
func (t *Timer) Token() TimerToken {
	return TimerToken(t.gen)
}
