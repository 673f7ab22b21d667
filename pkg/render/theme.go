package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// LoadTheme reads a go-theme manifest (JSON or YAML, by extension) from path.
// A non-empty variant must exist in the manifest.
func LoadTheme(path, variant string) (*theme.Manifest, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("render: theme path is required")
	}
	manifest, err := theme.LoadFile(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("render: load theme: %w", err)
	}
	if variant = strings.TrimSpace(variant); variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("render: theme %q has no variant %q", manifest.Name, variant)
		}
	}
	return manifest, nil
}
