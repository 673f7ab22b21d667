package epiform

import (
	"io/fs"

	"github.com/goliatone/go-epiform/pkg/renderers/document"
)

// EmbeddedTemplates exposes the built-in document templates so callers can
// copy and adapt them (see document.WithTemplatesDir).
func EmbeddedTemplates() fs.FS {
	return document.TemplatesFS()
}

// PrintAssetsFS exposes the embedded print stylesheet.
func PrintAssetsFS() fs.FS {
	return document.AssetsFS()
}
