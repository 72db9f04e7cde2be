package model

import "image/color"

// Cell is the state of a single grid position
type Cell uint8

const (
	// Dead is the zero value so freshly allocated storage is an empty grid
	Dead Cell = iota
	Alive
)

const (
	glyphAlive = "#"
	glyphDead  = " "
)

var (
	colorAlive = color.RGBA{R: 0, G: 0, B: 0, A: 0xff}
	colorDead  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// IsAlive reports whether the cell is Alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

// String returns the single glyph used in the text projection
func (c Cell) String() string {
	if c.IsAlive() {
		return glyphAlive
	}
	return glyphDead
}

// Color returns the pixel colour of the cell: black when alive, white when dead
func (c Cell) Color() color.RGBA {
	if c.IsAlive() {
		return colorAlive
	}
	return colorDead
}

func cellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}
