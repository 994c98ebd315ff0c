package snake

import "fmt"

// Point represents a cell on the grid (X = column, Y = row).
type Point struct {
	X, Y int
}

// Add returns p moved one step in direction d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

func (p Point) String() string {
	return fmt.Sprintf("[%d,%d]", p.X, p.Y)
}

// Direction is a unit step on the grid. It is a small comparable value,
// so directions are compared with ==.
type Direction struct {
	DX, DY int
}

// The four directions the snake can travel.
var (
	Left  = Direction{DX: -1, DY: 0}
	Up    = Direction{DX: 0, DY: -1}
	Right = Direction{DX: 1, DY: 0}
	Down  = Direction{DX: 0, DY: 1}
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Valid reports whether d is one of the four unit directions.
func (d Direction) Valid() bool {
	return d == Left || d == Up || d == Right || d == Down
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// ParseDirection converts a direction name to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return Left, nil
	case "up":
		return Up, nil
	case "right":
		return Right, nil
	case "down":
		return Down, nil
	}
	return Direction{}, fmt.Errorf("snake: unknown direction %q", s)
}

// Grid is the playing field measured in cells.
type Grid struct {
	Cols, Rows int
}

// GridFor derives the grid from a canvas and its cell scale. A cell belongs to
// the grid when its index times scale is still inside the canvas, so partial
// cells at the right and bottom edges count.
func GridFor(canvasW, canvasH, scale int) Grid {
	if scale <= 0 {
		return Grid{}
	}
	return Grid{
		Cols: (canvasW + scale - 1) / scale,
		Rows: (canvasH + scale - 1) / scale,
	}
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Cols && p.Y >= 0 && p.Y < g.Rows
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Cols * g.Rows
}
