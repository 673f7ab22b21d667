package template

import (
	"io"
)

// TemplateRenderer is the seam document renderers use to execute templates.
type TemplateRenderer interface {
	// RenderTemplate executes the named template and copies the result to
	// every writer in out.
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	// GlobalContext merges data into the values every template sees.
	GlobalContext(data any) error
}
