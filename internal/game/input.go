package game

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// DirectionFor maps a directional action to a snake direction.
func DirectionFor(a core.Action) (snake.Direction, bool) {
	switch a {
	case core.ActionLeft:
		return snake.Left, true
	case core.ActionUp:
		return snake.Up, true
	case core.ActionRight:
		return snake.Right, true
	case core.ActionDown:
		return snake.Down, true
	}
	return snake.Direction{}, false
}
