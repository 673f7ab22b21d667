package printsink

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileOpener(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termo.html")

	surface, err := NewFileOpener(path).Open(context.Background(), DefaultViewport)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := surface.Write([]byte("ok")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := surface.Print(context.Background()); err != nil {
		t.Fatalf("print: %v", err)
	}
	if surface.Location() != path {
		t.Fatalf("location = %s", surface.Location())
	}
	if data, _ := os.ReadFile(path); string(data) != "ok" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestFileOpener_Unavailable(t *testing.T) {
	dir := t.TempDir()
	notDir := filepath.Join(dir, "file")
	if err := os.WriteFile(notDir, nil, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	for _, path := range []string{
		"",
		filepath.Join(dir, "missing", "termo.html"),
		filepath.Join(notDir, "termo.html"),
	} {
		if _, err := NewFileOpener(path).Open(context.Background(), DefaultViewport); !errors.Is(err, ErrSurfaceUnavailable) {
			t.Fatalf("path %q: expected ErrSurfaceUnavailable, got %v", path, err)
		}
	}
}
