package snake

// samplingFactor bounds rejection sampling to this many tries per grid cell
// before falling back to enumerating the free cells.
const samplingFactor = 4

// placeApple puts the apple on a uniformly random free cell. With no free
// cell left the board has no apple.
func (s *State) placeApple() {
	grid := s.settings.Grid
	cells := grid.Cells()
	if cells == 0 || len(s.snake) >= cells {
		s.hasApple = false
		return
	}

	for range samplingFactor * cells {
		p := Point{X: s.rng.Intn(grid.Cols), Y: s.rng.Intn(grid.Rows)}
		if !s.Occupies(p) {
			s.apple = p
			s.hasApple = true
			return
		}
	}

	free := s.freeCells()
	if len(free) == 0 {
		s.hasApple = false
		return
	}
	s.apple = free[s.rng.Intn(len(free))]
	s.hasApple = true
}

// freeCells lists every cell not covered by the snake, row by row.
func (s *State) freeCells() []Point {
	grid := s.settings.Grid
	taken := make(map[Point]bool, len(s.snake))
	for _, seg := range s.snake {
		taken[seg] = true
	}

	free := make([]Point, 0, max(grid.Cells()-len(taken), 0))
	for y := range grid.Rows {
		for x := range grid.Cols {
			p := Point{X: x, Y: y}
			if !taken[p] {
				free = append(free, p)
			}
		}
	}
	return free
}
