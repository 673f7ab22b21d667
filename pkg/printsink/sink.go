// Package printsink opens the surface the printable document is written to
// and triggers printing. The browser-backed surface stands in for a print
// window: the page is written to a file and handed to a browser, and the
// page's own script opens the print dialog.
package printsink

import (
	"context"
	"errors"
)

// ErrSurfaceUnavailable reports that no rendering surface could be obtained
// (no browser command, unwritable destination). Callers tell the user to fix
// the environment and try again.
var ErrSurfaceUnavailable = errors.New("printsink: rendering surface unavailable")

// Viewport is the requested window size in pixels.
type Viewport struct {
	Width  int
	Height int
}

// DefaultViewport matches a landscape print preview.
var DefaultViewport = Viewport{Width: 1000, Height: 800}

// Opener obtains a fresh surface for one document.
type Opener interface {
	Open(ctx context.Context, viewport Viewport) (Surface, error)
}

// Surface receives the full markup once and then prints it.
type Surface interface {
	Write(markup []byte) error
	// Print triggers printing without waiting for the outcome.
	Print(ctx context.Context) error
	// Location describes where the markup lives (usually a file path).
	Location() string
	// Discard releases what Open created when the document is abandoned
	// before Print.
	Discard() error
}
