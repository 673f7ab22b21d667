package render

import (
	"context"

	"github.com/goliatone/go-epiform/pkg/model"
)

// Renderer converts a form snapshot into a byte representation (the printable
// HTML document, the terminal table, ...). Renderers only read the snapshot.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, snapshot model.Snapshot, options RenderOptions) ([]byte, error)
}
