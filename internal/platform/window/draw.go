package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	bgColor     = color.RGBA{15, 15, 20, 255}
	boardColor  = color.RGBA{24, 26, 34, 255}
	gridColor   = color.RGBA{32, 34, 44, 255}
	headColor   = color.RGBA{100, 255, 150, 255}
	bodyColor   = color.RGBA{70, 200, 120, 255}
	eyeColor    = color.RGBA{15, 15, 20, 255}
	appleColor  = color.RGBA{255, 80, 80, 255}
	hudColor    = color.RGBA{220, 220, 230, 255}
	digitColor  = color.RGBA{255, 215, 0, 255}
	titleColor  = color.RGBA{255, 90, 90, 255}
	subtleColor = color.RGBA{160, 160, 175, 255}
)

const (
	exitDrop   = 200.0 // Pixels the canvas falls during the exit animation
	exitTurn   = 10.0  // Degrees the canvas rotates during the exit animation
	digitScale = 7.0   // Peak countdown digit magnification
	glyphW     = 7     // basicfont.Face7x13 advance
	glyphH     = 13
	glyphBase  = 11 // Baseline offset inside a glyph cell
)

// drawBoard paints the grid, the apple and the snake onto the canvas.
func drawBoard(dst *ebiten.Image, st *snake.State, scale int) {
	dst.Fill(boardColor)
	s := float32(scale)
	grid := st.Grid()

	for x := 1; x < grid.Cols; x++ {
		vector.StrokeLine(dst, float32(x)*s, 0, float32(x)*s, float32(grid.Rows)*s, 1, gridColor, false)
	}
	for y := 1; y < grid.Rows; y++ {
		vector.StrokeLine(dst, 0, float32(y)*s, float32(grid.Cols)*s, float32(y)*s, 1, gridColor, false)
	}

	if apple, ok := st.Apple(); ok {
		cx := (float32(apple.X) + 0.5) * s
		cy := (float32(apple.Y) + 0.5) * s
		vector.DrawFilledCircle(dst, cx, cy, s*0.4, appleColor, true)
	}

	body := st.Snake()
	for i := len(body) - 1; i >= 1; i-- {
		p := body[i]
		vector.DrawFilledRect(dst, float32(p.X)*s+1, float32(p.Y)*s+1, s-2, s-2, bodyColor, false)
	}
	if len(body) > 0 {
		drawHead(dst, body[0], st.Heading(), s)
	}
}

// drawHead draws the head square with two eyes looking along the heading.
func drawHead(dst *ebiten.Image, p snake.Point, heading snake.Direction, s float32) {
	x, y := float32(p.X)*s, float32(p.Y)*s
	vector.DrawFilledRect(dst, x, y, s, s, headColor, false)

	cx, cy := x+s/2, y+s/2
	fx, fy := float32(heading.DX), float32(heading.DY)
	// Eyes sit forward of center, spread along the perpendicular axis.
	px, py := -fy, fx
	r := max(s/8, 1)
	for _, side := range []float32{-1, 1} {
		ex := cx + fx*s/5 + px*side*s/4
		ey := cy + fy*s/5 + py*side*s/4
		vector.DrawFilledCircle(dst, ex, ey, r, eyeColor, true)
	}
}

// drawCountdown draws n centered on dst. The digit grows from nothing to
// digitScale times its size while fading out over each period.
func drawCountdown(dst, glyph *ebiten.Image, n int, pulse float64) {
	glyph.Clear()
	text.Draw(glyph, string(rune('0'+n%10)), basicfont.Face7x13, 0, glyphBase, digitColor)

	scale, alpha := countdownStyle(pulse)
	b := dst.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-glyphW/2.0, -glyphH/2.0)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(b.Dx())/2, float64(b.Dy())/2)
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(glyph, op)
}

// countdownStyle returns the digit magnification and opacity at pulse.
func countdownStyle(pulse float64) (float64, float32) {
	pulse = math.Min(math.Max(pulse, 0), 1)
	return math.Max(digitScale*pulse, 0.01), float32(1 - pulse)
}

// exitTransform places the canvas at (x, y) on the screen, applying the
// exit animation at progress e.
func exitTransform(op *ebiten.DrawImageOptions, w, h int, x, y, e float64) {
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Rotate(exitTurn * e * math.Pi / 180)
	op.GeoM.Translate(x+float64(w)/2, y+float64(h)/2+exitDrop*e)
	op.ColorScale.ScaleAlpha(float32(1 - e))
}

// drawCentered writes s horizontally centered on dst at baseline y.
func drawCentered(dst *ebiten.Image, s string, y int, clr color.Color) {
	x := (dst.Bounds().Dx() - len(s)*glyphW) / 2
	text.Draw(dst, s, basicfont.Face7x13, x, y, clr)
}

// drawGameOver shows the final score once the board is gone.
func drawGameOver(dst *ebiten.Image, s *game.Session) {
	mid := dst.Bounds().Dy() / 2
	drawCentered(dst, "GAME OVER", mid-20, titleColor)
	drawCentered(dst, scoreLine(s), mid, hudColor)
	drawCentered(dst, "Press R to restart, Esc to quit", mid+30, subtleColor)
}
