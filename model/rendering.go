package model

import (
	"fmt"
	"io"
)

const (
	// home the cursor and erase the display
	ansiClear = "\033[H\033[2J"
)

// TerminalRenderer writes text frames to a terminal
type TerminalRenderer struct {
	Out io.Writer
}

// Display writes the text projection of the world followed by a newline
func (r *TerminalRenderer) Display(w *World) {
	fmt.Fprintln(r.Out, w.String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.Out, ansiClear)
}

// Status writes a one-line summary of the current generation
func (r *TerminalRenderer) Status(generation int, w *World) {
	size := w.Width() * w.Height()
	population := w.Population()
	fmt.Fprintf(r.Out, "Gen: %d | Living: %d | Density: %.1f%%\n",
		generation, population, float64(population)/float64(size)*100)
}
