package rules

// MaxNeighbors is the size of a full Moore neighbourhood.
const MaxNeighbors = 8

/*
Conway reports whether a cell is alive in the next generation.

B3/S23: a live cell with fewer than two or more than three live neighbours dies,
a dead cell with exactly three live neighbours is born, every other cell keeps its state.
*/
func Conway(alive bool, neighbors int) bool {
	switch {
	case alive && (neighbors < 2 || neighbors > 3):
		return false
	case !alive && neighbors == 3:
		return true
	default:
		return alive
	}
}
