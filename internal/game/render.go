package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// CellW is the number of terminal columns one grid cell occupies.
const CellW = 2

const (
	hudHeight  = 1
	exitSlide  = 3 // Rows the board slides down during the exit transition
	glyphW     = 3
	glyphH     = 5
	headGlyph  = "██"
	bodyGlyph  = "▓▓"
	appleGlyph = "()"
)

// Effects carries frontend time into the renderer. Both fields are
// fractions in [0, 1].
type Effects struct {
	Pulse float64 // Progress through the current countdown digit
	Exit  float64 // Progress through the game over transition
}

// BoardSize returns the screen size in cells needed to draw grid, including
// the border and the HUD line.
func BoardSize(grid snake.Grid) (w, h int) {
	return grid.Cols*CellW + 2, grid.Rows + 2 + hudHeight
}

// Render draws the session onto dst. It never mutates the session.
func Render(dst *core.Screen, s *Session, fx Effects) {
	dst.Clear()

	grid := s.State().Grid()
	needW, needH := BoardSize(grid)
	if dst.Width() < needW || dst.Height() < needH {
		renderTooSmall(dst, needW, needH)
		return
	}

	renderHUD(dst, s)

	boardW, boardH := needW, needH-hudHeight
	board := core.NewRect((dst.Width()-boardW)/2, hudHeight+(dst.Height()-needH)/2, boardW, boardH)

	if s.Phase() == PhaseDead {
		exit := core.Clamp(fx.Exit, 0, 1)
		if exit >= 1 {
			renderGameOver(dst, s)
			return
		}
		board.Y += int(math.Round(exit * exitSlide))
		renderBoard(dst, s, board)
		dst.Recolor(board, fadeColor(exit))
		return
	}

	renderBoard(dst, s, board)

	// Starting keeps the final 0 on screen until the start delay runs out.
	if s.Phase() == PhaseCounting || s.Phase() == PhaseStarting {
		renderCountdown(dst, board, s.Countdown(), fx.Pulse)
	}
}

func renderHUD(dst *core.Screen, s *Session) {
	hud := fmt.Sprintf(" Snake  Score: %d", s.Score())
	if s.Phase() == PhaseRunning {
		hud += fmt.Sprintf("  Speed: %dms", s.State().Speed().Milliseconds())
	}
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
}

func renderBoard(dst *core.Screen, s *Session, board core.Rect) {
	dst.DrawBox(board, core.ColorGray)

	originX, originY := board.X+1, board.Y+1
	st := s.State()

	if apple, ok := st.Apple(); ok {
		dst.DrawText(originX+apple.X*CellW, originY+apple.Y, appleGlyph, core.ColorRed)
	}

	// Body first so the head stays visible on a folded frame.
	body := st.Snake()
	for i := len(body) - 1; i >= 0; i-- {
		seg := body[i]
		glyph, color := bodyGlyph, core.ColorGreen
		if i == 0 {
			glyph, color = headGlyph, core.ColorBrightGreen
		}
		dst.DrawText(originX+seg.X*CellW, originY+seg.Y, glyph, color)
	}
}

// renderCountdown draws n as a large digit in the middle of the board. The
// digit is bright during the first half of each second and dim afterwards.
func renderCountdown(dst *core.Screen, board core.Rect, n int, pulse float64) {
	color := core.ColorBrightYellow
	if pulse >= 0.5 {
		color = core.ColorYellow
	}

	glyph, ok := digitGlyphs[n]
	if !ok {
		dst.DrawTextCentered(board, board.Y+board.H/2, fmt.Sprint(n), color)
		return
	}

	area := board.Centered(glyphW*CellW, glyphH)
	for row, line := range glyph {
		for col, on := range line {
			if on != '#' {
				continue
			}
			dst.DrawText(area.X+col*CellW, area.Y+row, headGlyph, color)
		}
	}
}

func renderGameOver(dst *core.Screen, s *Session) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", s.Score()),
		"",
		"Press R to restart",
	}
	panel := dst.Bounds().Centered(24, len(lines)+4)
	dst.DrawRect(panel, ' ', core.ColorDefault)
	dst.DrawBox(panel, core.ColorRed)
	for i, line := range lines {
		color := core.ColorBrightWhite
		if i == 0 {
			color = core.ColorBrightRed
		}
		dst.DrawTextCentered(panel, panel.Y+2+i, line, color)
	}
}

func renderTooSmall(dst *core.Screen, needW, needH int) {
	_, cy := dst.Bounds().Center()
	y := cy - 1
	dst.DrawTextCentered(dst.Bounds(), y, "Window too small", core.ColorBrightYellow)
	dst.DrawTextCentered(dst.Bounds(), y+1, fmt.Sprintf("Need %dx%d", needW, needH), core.ColorGray)
}

// fadeColor maps exit progress to the dimming stage of the board.
func fadeColor(exit float64) core.Color {
	switch {
	case exit < 1.0/3:
		return core.ColorWhite
	case exit < 2.0/3:
		return core.ColorGray
	default:
		return core.ColorDarkGray
	}
}

// digitGlyphs is a 3×5 font for the countdown digits.
var digitGlyphs = map[int][glyphH]string{
	0: {"###", "#.#", "#.#", "#.#", "###"},
	1: {".#.", "##.", ".#.", ".#.", "###"},
	2: {"###", "..#", "###", "#..", "###"},
	3: {"###", "..#", "###", "..#", "###"},
	4: {"#.#", "#.#", "###", "..#", "..#"},
	5: {"###", "#..", "###", "..#", "###"},
	6: {"###", "#..", "###", "#.#", "###"},
	7: {"###", "..#", "..#", "..#", "..#"},
	8: {"###", "#.#", "###", "#.#", "###"},
	9: {"###", "#.#", "###", "..#", "###"},
}
