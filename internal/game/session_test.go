package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// recordingCues remembers the order in which cues fired.
type recordingCues struct {
	events []string
}

func (r *recordingCues) Turned()     { r.events = append(r.events, "turned") }
func (r *recordingCues) AppleEaten() { r.events = append(r.events, "eaten") }
func (r *recordingCues) ThemeStart() { r.events = append(r.events, "theme_start") }
func (r *recordingCues) ThemeStop()  { r.events = append(r.events, "theme_stop") }
func (r *recordingCues) GameOver()   { r.events = append(r.events, "game_over") }

func (r *recordingCues) count(name string) int {
	n := 0
	for _, e := range r.events {
		if e == name {
			n++
		}
	}
	return n
}

func testSettings() Settings {
	return Settings{
		Board:             snake.DefaultSettings(snake.Grid{Cols: 38, Rows: 21}),
		CountdownFrom:     3,
		CountdownInterval: time.Second,
		StartDelay:        time.Second,
		ExitDuration:      time.Second,
	}
}

// startRunning advances a fresh session through the countdown and start delay.
func startRunning(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; s.Phase() != PhaseRunning; i++ {
		if i > 10 {
			t.Fatalf("session stuck in phase %v", s.Phase())
		}
		s.Advance()
	}
}

// runUntilDead advances until the snake dies and returns the final outcome.
func runUntilDead(t *testing.T, s *Session) Outcome {
	t.Helper()
	for range 1000 {
		if out := s.Advance(); out.Died {
			return out
		}
	}
	t.Fatal("snake never died")
	return Outcome{}
}

func TestCountdownPhases(t *testing.T) {
	s := NewSession(testSettings(), nil, 1)

	if s.Phase() != PhaseCounting || s.Countdown() != 3 {
		t.Fatalf("new session = %v/%d, expected counting from 3", s.Phase(), s.Countdown())
	}
	if s.Interval() != time.Second {
		t.Errorf("Interval() = %v, expected 1s", s.Interval())
	}

	for _, want := range []int{2, 1} {
		out := s.Advance()
		if out.Phase != PhaseCounting || out.Rearm {
			t.Errorf("Advance() = %+v, expected counting without rearm", out)
		}
		if s.Countdown() != want {
			t.Errorf("Countdown() = %d, expected %d", s.Countdown(), want)
		}
	}

	out := s.Advance()
	if out.Phase != PhaseStarting || !out.Rearm {
		t.Errorf("Advance() = %+v, expected starting with rearm", out)
	}
	if s.Countdown() != 0 {
		t.Errorf("Countdown() = %d, expected 0", s.Countdown())
	}

	out = s.Advance()
	if out.Phase != PhaseRunning || !out.Rearm {
		t.Errorf("Advance() = %+v, expected running with rearm", out)
	}
	if s.Interval() != 100*time.Millisecond {
		t.Errorf("Interval() = %v, expected the initial speed", s.Interval())
	}
}

func TestZeroCountdownSkipsCounting(t *testing.T) {
	settings := testSettings()
	settings.CountdownFrom = 0
	s := NewSession(settings, nil, 1)

	if s.Phase() != PhaseStarting {
		t.Errorf("Phase() = %v, expected starting", s.Phase())
	}
}

func TestSteerIgnoredOutsideRunning(t *testing.T) {
	cues := &recordingCues{}
	s := NewSession(testSettings(), cues, 1)

	if s.Steer(snake.Up) {
		t.Error("Steer() during the countdown should be ignored")
	}
	startRunning(t, s)
	if !s.Steer(snake.Up) {
		t.Error("Steer() while running should be accepted")
	}
	if s.Steer(snake.Left) {
		t.Error("reversal should be rejected")
	}
	if cues.count("turned") != 1 {
		t.Errorf("turned cue fired %d times, expected 1", cues.count("turned"))
	}

	runUntilDead(t, s)
	if s.Steer(snake.Down) {
		t.Error("Steer() after death should be ignored")
	}
}

func TestEatingRearmsAndCues(t *testing.T) {
	settings := testSettings()
	settings.Board.AppleStart = snake.Point{X: 10, Y: 8}
	cues := &recordingCues{}
	s := NewSession(settings, cues, 1)
	startRunning(t, s)

	out := s.Advance()
	if !out.Ate || !out.Rearm {
		t.Fatalf("Advance() = %+v, expected eat with rearm", out)
	}
	if s.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", s.Score())
	}
	if s.Interval() != 99*time.Millisecond {
		t.Errorf("Interval() = %v, expected 99ms", s.Interval())
	}
	if cues.count("eaten") != 1 {
		t.Errorf("eaten cue fired %d times, expected 1", cues.count("eaten"))
	}
}

func TestDeathStopsTimerAndCues(t *testing.T) {
	cues := &recordingCues{}
	s := NewSession(testSettings(), cues, 1)
	startRunning(t, s)

	out := runUntilDead(t, s)

	if out.Phase != PhaseDead || out.Collision != snake.CollisionWall || !out.Rearm {
		t.Errorf("death outcome = %+v", out)
	}
	if s.Interval() != 0 {
		t.Errorf("Interval() = %v, expected 0 after death", s.Interval())
	}

	want := []string{"theme_start", "theme_stop", "game_over"}
	if len(cues.events) != len(want) {
		t.Fatalf("cues = %v, expected %v", cues.events, want)
	}
	for i := range want {
		if cues.events[i] != want[i] {
			t.Errorf("cue %d = %s, expected %s", i, cues.events[i], want[i])
		}
	}

	before := s.Snapshot()
	if out := s.Advance(); out != (Outcome{Phase: PhaseDead}) {
		t.Errorf("Advance() after death = %+v, expected a no-op", out)
	}
	if s.Snapshot() != before {
		t.Error("dead session should be frozen")
	}
	if cues.count("game_over") != 1 {
		t.Error("game over cue should fire exactly once")
	}
}

func TestStartResetsBoard(t *testing.T) {
	s := NewSession(testSettings(), nil, 1)
	startRunning(t, s)

	snap := s.Snapshot()
	if snap.Head != (snake.Point{X: 9, Y: 8}) || snap.SnakeLen != 2 || snap.Score != 0 {
		t.Errorf("running session starts at %+v, expected the configured layout", snap)
	}
	if snap.Heading != snake.Right || snap.Speed != 100*time.Millisecond {
		t.Errorf("running session heading/speed = %v/%v", snap.Heading, snap.Speed)
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() []Snapshot {
		settings := testSettings()
		settings.Board.AppleStart = snake.Point{X: 10, Y: 8}
		s := NewSession(settings, nil, 42)
		startRunning(t, s)

		turns := []snake.Direction{snake.Down, snake.Right, snake.Up, snake.Right}
		var snaps []Snapshot
		for i := range 40 {
			if i%5 == 0 {
				s.Steer(turns[(i/5)%len(turns)])
			}
			s.Advance()
			snaps = append(snaps, s.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		PhaseCounting: "counting",
		PhaseStarting: "starting",
		PhaseRunning:  "running",
		PhaseDead:     "dead",
		Phase(99):     "unknown",
	}
	for p, want := range tests {
		if p.String() != want {
			t.Errorf("Phase(%d).String() = %q, expected %q", int(p), p.String(), want)
		}
	}
}

func TestDirectionFor(t *testing.T) {
	tests := map[core.Action]snake.Direction{
		core.ActionLeft:  snake.Left,
		core.ActionUp:    snake.Up,
		core.ActionRight: snake.Right,
		core.ActionDown:  snake.Down,
	}
	for action, want := range tests {
		got, ok := DirectionFor(action)
		if !ok || got != want {
			t.Errorf("DirectionFor(%v) = %v, %v, expected %v", action, got, ok, want)
		}
	}
	if _, ok := DirectionFor(core.ActionRestart); ok {
		t.Error("restart is not a direction")
	}
}
