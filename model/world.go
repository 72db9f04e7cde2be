package model

import (
	"crypto/md5"
	"fmt"
	"image/color"
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// DefaultAliveProbability is the share of cells that start alive in a random world
const DefaultAliveProbability = 0.1

// ErrShapeMismatch is returned when explicit cells do not fill width*height exactly
var ErrShapeMismatch = errors.New("cell count does not match world shape")

// moore lists the eight neighbour offsets around a cell
var moore = [rules.MaxNeighbors][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// World is a bounded Game of Life grid stored in row-major order
type World struct {
	width  int
	height int
	cells  []Cell
	next   []Cell // scratch buffer for Tick, swapped with cells

	aliveProbability float64
	rng              *rand.Rand
}

// New creates a world from explicit row-major cells. The slice is copied.
func New(width, height int, cells []Cell) (*World, error) {
	if width <= 0 || height <= 0 || len(cells) != width*height {
		return nil, errors.Wrapf(ErrShapeMismatch, "[New] %dx%d world needs %d cells, got %d",
			width, height, max(width, 0)*max(height, 0), len(cells))
	}

	w := newWorld(width, height, DefaultAliveProbability, nil)
	copy(w.cells, cells)
	return w, nil
}

// NewRandom creates a world where each cell is alive with probability aliveProbability.
// Width and height must be positive.
func NewRandom(width, height int, aliveProbability float64) *World {
	return NewRandomWithSource(width, height, aliveProbability, nil)
}

// NewRandomWithSource is NewRandom drawing from rng; a nil rng uses the global source
func NewRandomWithSource(width, height int, aliveProbability float64, rng *rand.Rand) *World {
	w := newWorld(width, height, aliveProbability, rng)
	w.Refresh()
	return w
}

func newWorld(width, height int, aliveProbability float64, rng *rand.Rand) *World {
	return &World{
		width:            width,
		height:           height,
		cells:            make([]Cell, width*height),
		next:             make([]Cell, width*height),
		aliveProbability: aliveProbability,
		rng:              rng,
	}
}

// Width returns the number of columns
func (w *World) Width() int {
	return w.width
}

// Height returns the number of rows
func (w *World) Height() int {
	return w.height
}

// AliveProbability returns the probability used by Refresh
func (w *World) AliveProbability() float64 {
	return w.aliveProbability
}

// IndexOf maps (x, y) to its storage index. ok is false when the position is off the grid.
func (w *World) IndexOf(x, y int) (index int, ok bool) {
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		return 0, false
	}
	return y*w.width + x, true
}

// PositionOf maps a storage index back to (x, y). It panics if index is out of range.
func (w *World) PositionOf(index int) (x, y int) {
	if index < 0 || index >= len(w.cells) {
		panic(fmt.Sprintf("model: index %d out of range [0, %d)", index, len(w.cells)))
	}
	return index % w.width, index / w.width
}

// Cell returns the cell at (x, y); ok is false off the grid
func (w *World) Cell(x, y int) (Cell, bool) {
	i, ok := w.IndexOf(x, y)
	if !ok {
		return Dead, false
	}
	return w.cells[i], true
}

// Set changes the cell at (x, y). Positions off the grid are ignored and report false.
func (w *World) Set(x, y int, c Cell) bool {
	i, ok := w.IndexOf(x, y)
	if ok {
		w.cells[i] = c
	}
	return ok
}

// Cells returns a copy of the current generation in row-major order
func (w *World) Cells() []Cell {
	out := make([]Cell, len(w.cells))
	copy(out, w.cells)
	return out
}

// CountAliveNeighbors counts live cells in the Moore neighbourhood of (x, y).
// Neighbours that fall off the grid do not exist and are never counted.
func (w *World) CountAliveNeighbors(x, y int) int {
	count := 0
	for _, d := range moore {
		i, ok := w.IndexOf(x+d[0], y+d[1])
		if !ok {
			continue
		}
		if w.cells[i].IsAlive() {
			count++
		}
	}
	return count
}

// Tick advances the world by one generation.
// Every neighbour count is taken from the current generation before any cell changes.
func (w *World) Tick() {
	for i, c := range w.cells {
		x, y := w.PositionOf(i)
		w.next[i] = cellOf(rules.Conway(c.IsAlive(), w.CountAliveNeighbors(x, y)))
	}
	w.cells, w.next = w.next, w.cells
}

// Refresh discards the grid and fills it with fresh random cells
func (w *World) Refresh() {
	for i := range w.cells {
		w.cells[i] = cellOf(w.draw() < w.aliveProbability)
	}
}

func (w *World) draw() float64 {
	if w.rng != nil {
		return w.rng.Float64()
	}
	return rand.Float64()
}

// Clear kills every cell
func (w *World) Clear() {
	for i := range w.cells {
		w.cells[i] = Dead
	}
}

// Population returns the number of live cells
func (w *World) Population() (count int) {
	for _, c := range w.cells {
		if c.IsAlive() {
			count++
		}
	}
	return
}

// Hash returns an MD5 fingerprint of the current generation
func (w *World) Hash() string {
	buf := make([]byte, len(w.cells))
	for i, c := range w.cells {
		buf[i] = byte(c)
	}
	return fmt.Sprintf("%x", md5.Sum(buf))
}

// String renders one glyph per cell, rows joined by newlines with no trailing newline
func (w *World) String() string {
	if len(w.cells) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(w.cells) + w.height - 1)
	for y := range w.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range w.cells[y*w.width : (y+1)*w.width] {
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}

// Color returns the pixel colour at (x, y). It panics if the position is off the grid.
func (w *World) Color(x, y int) color.RGBA {
	i, ok := w.IndexOf(x, y)
	if !ok {
		panic(fmt.Sprintf("model: position (%d,%d) outside %dx%d world", x, y, w.width, w.height))
	}
	return w.cells[i].Color()
}

// CopyTo overwrites dst with this world's dimensions and cells, reusing dst storage when it fits
func (w *World) CopyTo(dst *World) {
	dst.width = w.width
	dst.height = w.height
	dst.aliveProbability = w.aliveProbability
	n := len(w.cells)
	if cap(dst.cells) < n || cap(dst.next) < n {
		dst.cells = make([]Cell, n)
		dst.next = make([]Cell, n)
	}
	dst.cells = dst.cells[:n]
	dst.next = dst.next[:n]
	copy(dst.cells, w.cells)
}
