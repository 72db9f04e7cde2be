package model

// Pattern is a set of live cell offsets relative to a top-left anchor
type Pattern [][2]int

var (
	// Blinker is a period-2 oscillator, vertical in this phase
	Blinker = Pattern{{1, 0}, {1, 1}, {1, 2}}

	// Glider travels one cell diagonally every four generations
	Glider = Pattern{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

	// Block is the smallest still life
	Block = Pattern{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
)

// Place stamps the live cells of p with its anchor at (x, y). Cells falling off the grid are dropped.
func (w *World) Place(p Pattern, x, y int) {
	for _, off := range p {
		w.Set(x+off[0], y+off[1], Alive)
	}
}

// SeedPatterns adds a few gliders and blinkers to a world large enough to hold them
func (w *World) SeedPatterns() {
	if w.width < 10 || w.height < 10 {
		return
	}

	w.Place(Glider, 5, 5)
	if w.width >= 20 && w.height >= 15 {
		w.Place(Glider, w.width-8, 5)
	}

	w.Place(Blinker, w.width/4, w.height/4)
	if w.width >= 30 {
		w.Place(Blinker, 3*w.width/4, 3*w.height/4)
	}
}
