package model

import "testing"

func TestPlaceClipsAtEdges(t *testing.T) {
	w := mustNew(t, 3, 3, make([]Cell, 9))
	w.Place(Block, 2, 2)

	if got := w.Population(); got != 1 {
		t.Errorf("population = %d, want 1 after clipping", got)
	}
	if c, _ := w.Cell(2, 2); c != Alive {
		t.Errorf("anchor cell not placed")
	}
}

func TestGliderMoves(t *testing.T) {
	w := mustNew(t, 8, 8, make([]Cell, 64))
	w.Place(Glider, 1, 1)
	start := w.Cells()

	for range 4 {
		w.Tick()
	}

	moved := mustNew(t, 8, 8, make([]Cell, 64))
	moved.Place(Glider, 2, 2)

	if w.String() != moved.String() {
		t.Errorf("glider after 4 ticks:\n%s\nwant:\n%s", w.String(), moved.String())
	}
	if w.Population() != len(Glider) || len(start) != 64 {
		t.Errorf("glider population = %d", w.Population())
	}
}

func TestSeedPatterns(t *testing.T) {
	small := mustNew(t, 5, 5, make([]Cell, 25))
	small.SeedPatterns()
	if small.Population() != 0 {
		t.Errorf("small world seeded with %d cells", small.Population())
	}

	big := mustNew(t, 40, 20, make([]Cell, 800))
	big.SeedPatterns()
	want := 2*len(Glider) + 2*len(Blinker)
	if got := big.Population(); got != want {
		t.Errorf("seeded population = %d, want %d", got, want)
	}
}
