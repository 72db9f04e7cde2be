//go:build ebiten

package render

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Window draws a shared world into an ebiten window, ticking it once per frame
type Window struct {
	world *model.SharedWorld
	pool  *model.FramePool
	scale int

	canvas *ebiten.Image
	pixels []byte

	// OnFrame, when set, is called after every tick; returning true closes the window
	OnFrame func(generation int) bool
	// OnRefresh, when set, replaces the plain world refresh on the R key
	OnRefresh func()
}

// NewWindow builds a window for world with cells drawn scale pixels wide
func NewWindow(world *model.SharedWorld, pool *model.FramePool, scale int) *Window {
	return &Window{world: world, pool: pool, scale: scale}
}

// Update advances the world and handles quit and refresh keys
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if w.OnRefresh != nil {
			w.OnRefresh()
		} else {
			w.world.Refresh()
		}
	}

	generation := w.world.Tick()
	if w.OnFrame != nil && w.OnFrame(generation) {
		return ebiten.Termination
	}
	return nil
}

// Draw blits the current generation
func (w *Window) Draw(screen *ebiten.Image) {
	snap, _ := w.world.Snapshot(w.pool)
	defer w.pool.Put(snap)

	if w.canvas == nil {
		w.canvas = ebiten.NewImage(snap.Width(), snap.Height())
		w.pixels = make([]byte, 4*snap.Width()*snap.Height())
	}
	FillRGBA(w.pixels, snap)
	w.canvas.WritePixels(w.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.scale), float64(w.scale))
	screen.DrawImage(w.canvas, op)
}

// Layout returns the logical screen size
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	width, height := 0, 0
	w.world.View(func(world *model.World, _ int) {
		width, height = world.Width(), world.Height()
	})
	return width * w.scale, height * w.scale
}

// RunWindow opens the window and blocks until it is closed
func RunWindow(title string, win *Window, frameRate time.Duration) error {
	width, height := win.Layout(0, 0)

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(max(1, int(time.Second/frameRate)))

	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
