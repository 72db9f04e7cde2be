// Package render turns a world's colour projection into pixels: raw RGBA buffers,
// scaled images and PNG frames, plus an ebiten window when built with the ebiten tag.
package render

import (
	"image"
	"image/png"
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// FillRGBA writes one RGBA pixel per cell into buf, which must hold 4*width*height bytes
func FillRGBA(buf []byte, w *model.World) {
	n := w.Width() * w.Height()
	for i := range n {
		x, y := w.PositionOf(i)
		c := w.Color(x, y)
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// Image renders the world with every cell drawn as a scale x scale square
func Image(w *model.World, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w.Width()*scale, w.Height()*scale))
	for i := range w.Width() * w.Height() {
		x, y := w.PositionOf(i)
		c := w.Color(x, y)
		for py := y * scale; py < (y+1)*scale; py++ {
			for px := x * scale; px < (x+1)*scale; px++ {
				img.SetRGBA(px, py, c)
			}
		}
	}
	return img
}

// EncodePNG writes the scaled world image to out as a PNG
func EncodePNG(out io.Writer, w *model.World, scale int) error {
	if err := png.Encode(out, Image(w, scale)); err != nil {
		return errors.Wrapf(err, "[EncodePNG] failed to encode %dx%d world", w.Width(), w.Height())
	}
	return nil
}
