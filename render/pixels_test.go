package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/sheikhrachel/go-life/model"
)

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func testWorld(t *testing.T) *model.World {
	t.Helper()
	w, err := model.New(3, 2, []model.Cell{
		model.Alive, model.Dead, model.Dead,
		model.Dead, model.Dead, model.Alive,
	})
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestFillRGBA(t *testing.T) {
	w := testWorld(t)
	buf := make([]byte, 4*6)

	FillRGBA(buf, w)

	for i := range 6 {
		x, y := w.PositionOf(i)
		want := w.Color(x, y)
		got := color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
		if got != want {
			t.Errorf("pixel %d = %v, want %v", i, got, want)
		}
	}
	if buf[0] != 0 || buf[4] != 0xff {
		t.Errorf("alive/dead pixels not black/white: % x", buf[:8])
	}
}

func TestImageScales(t *testing.T) {
	img := Image(testWorld(t), 4)

	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("bounds = %v, want 12x8", b)
	}

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, black},
		{3, 3, black},
		{4, 0, white},
		{11, 7, black},
		{8, 4, black},
		{7, 7, white},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestImageMinimumScale(t *testing.T) {
	img := Image(testWorld(t), 0)
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 3x2", b)
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, testWorld(t), 2); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Errorf("bounds = %v, want 6x4", b)
	}
}
