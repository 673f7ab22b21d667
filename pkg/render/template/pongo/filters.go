package pongo

import (
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var filtersOnce sync.Once

// pongo2 filters are process-wide.
func registerFilters() {
	filtersOnce.Do(func() {
		if !pongo2.FilterExists("blank") {
			_ = pongo2.RegisterFilter("blank", filterBlank)
		}
	})
}

// filterBlank replaces empty or whitespace-only input with param underscores,
// e.g. {{ value|blank:20 }}.
func filterBlank(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	text := ""
	if !in.IsNil() {
		text = in.String()
	}
	if strings.TrimSpace(text) != "" {
		return pongo2.AsValue(text), nil
	}
	width := 0
	if param != nil && param.IsInteger() {
		width = param.Integer()
	}
	if width <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.Repeat("_", width)), nil
}
