package printsink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileOpener writes the document to a fixed path. Printing is left to whoever
// opens the file; the page prints itself once loaded.
type FileOpener struct {
	Path string
}

// NewFileOpener returns an opener writing to path.
func NewFileOpener(path string) *FileOpener {
	return &FileOpener{Path: path}
}

func (o *FileOpener) Open(ctx context.Context, _ Viewport) (Surface, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if o == nil || o.Path == "" {
		return nil, fmt.Errorf("%w: output path is empty", ErrSurfaceUnavailable)
	}
	dir := filepath.Dir(o.Path)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: output directory %s: %v", ErrSurfaceUnavailable, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSurfaceUnavailable, dir)
	}
	return &fileSurface{path: o.Path}, nil
}

type fileSurface struct {
	path string
}

func (s *fileSurface) Write(markup []byte) error {
	if err := os.WriteFile(s.path, markup, 0o644); err != nil {
		return fmt.Errorf("printsink: write %s: %w", s.path, err)
	}
	return nil
}

func (s *fileSurface) Print(context.Context) error {
	return nil
}

func (s *fileSurface) Location() string {
	return s.path
}

// Discard is a no-op: Open creates nothing and a failed write leaves any
// previous document in place.
func (s *fileSurface) Discard() error {
	return nil
}
