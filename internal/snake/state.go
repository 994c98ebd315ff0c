// Package snake implements the Snake simulation: the board state, the
// per-tick step and the direction controller. It has no notion of time
// sources, rendering or sound; callers drive it and react to StepResult.
package snake

import (
	"math/rand"
	"slices"
	"time"
)

// Settings are the fixed parameters of a game.
type Settings struct {
	Grid         Grid
	SnakeStart   []Point // Head first
	AppleStart   Point
	Direction    Direction
	InitialSpeed time.Duration // Tick interval at start
	SpeedStep    time.Duration // Interval reduction per apple
	MinSpeed     time.Duration // Interval floor
}

// DefaultSettings returns the classic starting layout on the given grid.
func DefaultSettings(grid Grid) Settings {
	return Settings{
		Grid:         grid,
		SnakeStart:   []Point{{X: 9, Y: 8}, {X: 8, Y: 8}},
		AppleStart:   Point{X: 10, Y: 20},
		Direction:    Right,
		InitialSpeed: 100 * time.Millisecond,
		SpeedStep:    time.Millisecond,
		MinSpeed:     40 * time.Millisecond,
	}
}

// Collision describes what ended the game.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "none"
	}
}

// StepResult reports what happened during one step.
type StepResult struct {
	Moved        bool
	Ate          bool
	Died         bool
	Collision    Collision
	SpeedChanged bool
}

// State is the mutable game state.
type State struct {
	settings Settings
	rng      *rand.Rand

	snake    []Point // Head at index 0
	apple    Point
	hasApple bool
	heading  Direction // Direction applied by the last step
	pending  Direction // Direction the next step will apply
	speed    time.Duration
	score    int
	alive    bool
}

// NewState builds the initial state for settings. rng drives apple placement.
func NewState(settings Settings, rng *rand.Rand) *State {
	s := &State{
		settings: settings,
		rng:      rng,
		snake:    slices.Clone(settings.SnakeStart),
		heading:  settings.Direction,
		pending:  settings.Direction,
		speed:    settings.InitialSpeed,
		alive:    true,
	}

	if settings.Grid.Contains(settings.AppleStart) && !s.Occupies(settings.AppleStart) {
		s.apple = settings.AppleStart
		s.hasApple = true
	} else {
		s.placeApple()
	}
	return s
}

// Step advances the snake by one cell.
func (s *State) Step() StepResult {
	if !s.alive || len(s.snake) == 0 {
		return StepResult{}
	}

	s.heading = s.pending
	head := s.snake[0].Add(s.heading)

	if !s.settings.Grid.Contains(head) {
		s.alive = false
		return StepResult{Died: true, Collision: CollisionWall}
	}
	if s.Occupies(head) {
		s.alive = false
		return StepResult{Died: true, Collision: CollisionSelf}
	}

	s.snake = slices.Insert(s.snake, 0, head)
	result := StepResult{Moved: true}

	if s.hasApple && head == s.apple {
		s.score++
		result.Ate = true

		next := max(s.speed-s.settings.SpeedStep, s.settings.MinSpeed)
		result.SpeedChanged = next != s.speed
		s.speed = next

		s.placeApple()
		return result
	}

	s.snake = s.snake[:len(s.snake)-1]
	return result
}

// Steer sets the direction for the next step. The turn is rejected when it
// keeps the current heading, reverses it, or repeats the pending turn.
// Between two steps the last accepted turn wins.
func (s *State) Steer(d Direction) bool {
	if !s.alive || !d.Valid() {
		return false
	}
	if d == s.heading || d == s.heading.Opposite() || d == s.pending {
		return false
	}
	s.pending = d
	return true
}

// Occupies reports whether any snake segment is on p.
func (s *State) Occupies(p Point) bool {
	return slices.Contains(s.snake, p)
}

// Snake returns a copy of the body, head first.
func (s *State) Snake() []Point {
	return slices.Clone(s.snake)
}

// Head returns the head position.
func (s *State) Head() Point {
	if len(s.snake) == 0 {
		return Point{}
	}
	return s.snake[0]
}

// Len returns the number of segments.
func (s *State) Len() int {
	return len(s.snake)
}

// Apple returns the apple position and whether an apple is on the board.
func (s *State) Apple() (Point, bool) {
	return s.apple, s.hasApple
}

// Heading returns the direction applied by the last step.
func (s *State) Heading() Direction {
	return s.heading
}

// Pending returns the direction the next step will apply.
func (s *State) Pending() Direction {
	return s.pending
}

// Speed returns the current tick interval.
func (s *State) Speed() time.Duration {
	return s.speed
}

// Score returns the number of apples eaten.
func (s *State) Score() int {
	return s.score
}

// Alive reports whether the game is still in progress.
func (s *State) Alive() bool {
	return s.alive
}

// Grid returns the playing field.
func (s *State) Grid() Grid {
	return s.settings.Grid
}
