package printsink

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type recordedStart struct {
	name string
	args []string
}

func newTestOpener(t *testing.T, command string, starts *[]recordedStart) *BrowserOpener {
	t.Helper()
	return NewBrowserOpener(
		WithCommand(command),
		WithTempDir(t.TempDir()),
		WithLookPath(func(name string) (string, error) {
			if name == "missing-browser" {
				return "", errors.New("executable file not found in $PATH")
			}
			return "/usr/bin/" + name, nil
		}),
		WithStarter(func(name string, args ...string) error {
			*starts = append(*starts, recordedStart{name: name, args: args})
			return nil
		}),
	)
}

func TestBrowserOpener_WritesAndLaunches(t *testing.T) {
	var starts []recordedStart
	opener := newTestOpener(t, `chromium --window-size={width},{height} "--app=file://{file}"`, &starts)

	surface, err := opener.Open(context.Background(), Viewport{Width: 1000, Height: 800})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := surface.Write([]byte("<html></html>")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(starts) != 0 {
		t.Fatalf("browser must not start before Print")
	}
	if err := surface.Print(context.Background()); err != nil {
		t.Fatalf("print: %v", err)
	}

	path := surface.Location()
	if filepath.Ext(path) != ".html" {
		t.Fatalf("expected html file, got %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "<html></html>" {
		t.Fatalf("unexpected file content %q (%v)", data, err)
	}

	want := []recordedStart{{
		name: "/usr/bin/chromium",
		args: []string{"--window-size=1000,800", "--app=file://" + path},
	}}
	if diff := cmp.Diff(want, starts, cmp.AllowUnexported(recordedStart{})); diff != "" {
		t.Fatalf("start mismatch (-want +got):\n%s", diff)
	}
}

func TestBrowserSurface_Discard(t *testing.T) {
	var starts []recordedStart
	opener := newTestOpener(t, "chromium", &starts)

	surface, err := opener.Open(context.Background(), DefaultViewport)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := os.Stat(surface.Location()); err != nil {
		t.Fatalf("expected temp file after open: %v", err)
	}
	if err := surface.Discard(); err != nil {
		t.Fatalf("discard: %v", err)
	}
	if _, err := os.Stat(surface.Location()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected temp file to be removed, got %v", err)
	}
	if err := surface.Discard(); err != nil {
		t.Fatalf("second discard should be a no-op: %v", err)
	}
}

func TestBrowserOpener_AppendsFileWithoutPlaceholder(t *testing.T) {
	var starts []recordedStart
	opener := newTestOpener(t, "firefox --new-window", &starts)

	surface, err := opener.Open(context.Background(), DefaultViewport)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := surface.Print(context.Background()); err != nil {
		t.Fatalf("print: %v", err)
	}
	if len(starts) != 1 {
		t.Fatalf("expected one start, got %d", len(starts))
	}
	args := starts[0].args
	if len(args) != 2 || args[0] != "--new-window" || args[1] != surface.Location() {
		t.Fatalf("unexpected args %q", args)
	}
}

func TestBrowserOpener_Unavailable(t *testing.T) {
	tests := map[string]string{
		"missing command": "missing-browser {file}",
		"bad quoting":     `chromium "--app={file}`,
	}
	for name, command := range tests {
		t.Run(name, func(t *testing.T) {
			var starts []recordedStart
			_, err := newTestOpener(t, command, &starts).Open(context.Background(), DefaultViewport)
			if !errors.Is(err, ErrSurfaceUnavailable) {
				t.Fatalf("expected ErrSurfaceUnavailable, got %v", err)
			}
		})
	}
}

func TestBrowserOpener_MissingTempDir(t *testing.T) {
	var starts []recordedStart
	opener := newTestOpener(t, "chromium", &starts)
	opener.tempDir = filepath.Join(t.TempDir(), "missing")

	if _, err := opener.Open(context.Background(), DefaultViewport); !errors.Is(err, ErrSurfaceUnavailable) {
		t.Fatalf("expected ErrSurfaceUnavailable, got %v", err)
	}
}

func TestDefaultCommand(t *testing.T) {
	cases := map[string]string{
		"linux":   "xdg-open {file}",
		"darwin":  "open {file}",
		"windows": "rundll32 url.dll,FileProtocolHandler {file}",
	}
	for goos, want := range cases {
		if got := DefaultCommand(goos); got != want {
			t.Fatalf("DefaultCommand(%s) = %q, want %q", goos, got, want)
		}
	}

	var starts []recordedStart
	opener := NewBrowserOpener(
		WithTempDir(t.TempDir()),
		WithLookPath(func(name string) (string, error) { return "/bin/" + name, nil }),
		WithStarter(func(name string, args ...string) error {
			starts = append(starts, recordedStart{name: name, args: args})
			return nil
		}),
	)
	opener.goos = "linux"
	surface, err := opener.Open(context.Background(), DefaultViewport)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := surface.Print(context.Background()); err != nil {
		t.Fatalf("print: %v", err)
	}
	if starts[0].name != "/bin/xdg-open" || starts[0].args[0] != surface.Location() {
		t.Fatalf("unexpected default launch %+v", starts[0])
	}
}
