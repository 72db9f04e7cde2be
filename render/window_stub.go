//go:build !ebiten

package render

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// ErrWindowUnavailable is returned when the binary was built without the ebiten tag
var ErrWindowUnavailable = errors.New("pixel window requires building with -tags ebiten")

// Window is a placeholder for the ebiten window in headless builds
type Window struct {
	OnFrame   func(generation int) bool
	OnRefresh func()
}

// NewWindow returns a placeholder window
func NewWindow(*model.SharedWorld, *model.FramePool, int) *Window {
	return &Window{}
}

// RunWindow always fails in headless builds
func RunWindow(string, *Window, time.Duration) error {
	return ErrWindowUnavailable
}
