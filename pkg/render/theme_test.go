package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const printTheme = `name: print
version: "1"
tokens:
  font-size: 10px
  border-color: "#000"
variants:
  compact:
    tokens:
      font-size: 8px
`

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(printTheme), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}

	manifest, err := LoadTheme(path, "compact")
	if err != nil {
		t.Fatalf("load theme: %v", err)
	}
	opts := RenderOptions{Theme: manifest, ThemeVariant: "compact"}
	want := map[string]string{"font-size": "8px", "border-color": "#000"}
	if diff := cmp.Diff(want, opts.ThemeTokens()); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}

	if _, err := LoadTheme(path, "poster"); err == nil || !strings.Contains(err.Error(), "poster") {
		t.Fatalf("expected unknown variant error, got %v", err)
	}
	if _, err := LoadTheme(filepath.Join(filepath.Dir(path), "missing.yaml"), ""); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadTheme_RejectsInvalidManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte(`{"tokens":{"font-size":"9px"}}`), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	if _, err := LoadTheme(path, ""); err == nil {
		t.Fatalf("expected validation error for manifest without name and version")
	}
}
