package game

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Layout is the drawable area chosen for a viewport.
type Layout struct {
	CanvasW int // Canvas width in frontend units
	CanvasH int // Canvas height in frontend units
	Scale   int // Units per grid cell
	Grid    snake.Grid
}

// SelectLayout picks the first breakpoint whose minimums the viewport
// strictly exceeds. The last breakpoint is the fallback. The layout is chosen
// once when a frontend starts and is not re-evaluated afterwards.
func SelectLayout(viewW, viewH int, table []config.Breakpoint) Layout {
	if len(table) == 0 {
		return Layout{}
	}
	bp := table[len(table)-1]
	for _, candidate := range table[:len(table)-1] {
		if viewW > candidate.MinWidth && viewH > candidate.MinHeight {
			bp = candidate
			break
		}
	}
	return Layout{
		CanvasW: bp.CanvasWidth,
		CanvasH: bp.CanvasHeight,
		Scale:   bp.Scale,
		Grid:    snake.GridFor(bp.CanvasWidth, bp.CanvasHeight, bp.Scale),
	}
}
