package game

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Snapshot captures the observable session state for determinism testing
// and debug logging.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Countdown int
	Score     int
	SnakeLen  int
	Head      snake.Point
	Heading   snake.Direction
	Apple     snake.Point
	HasApple  bool
	Speed     time.Duration
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	apple, ok := s.state.Apple()
	return Snapshot{
		Tick:      s.ticks,
		Phase:     s.phase,
		Countdown: s.countdown,
		Score:     s.Score(),
		SnakeLen:  s.state.Len(),
		Head:      s.state.Head(),
		Heading:   s.state.Heading(),
		Apple:     apple,
		HasApple:  ok,
		Speed:     s.state.Speed(),
	}
}
