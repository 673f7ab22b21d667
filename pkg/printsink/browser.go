package printsink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

const (
	placeholderFile   = "{file}"
	placeholderWidth  = "{width}"
	placeholderHeight = "{height}"
)

// BrowserOption configures a BrowserOpener.
type BrowserOption func(*BrowserOpener)

// WithCommand sets the browser command line. It is split with shell quoting
// rules; {file}, {width} and {height} are substituted per argument. When
// {file} is absent the file path is appended.
func WithCommand(command string) BrowserOption {
	return func(o *BrowserOpener) {
		o.command = strings.TrimSpace(command)
	}
}

// WithTempDir sets where document files are created. Defaults to os.TempDir.
func WithTempDir(dir string) BrowserOption {
	return func(o *BrowserOpener) {
		o.tempDir = dir
	}
}

// WithLookPath replaces exec.LookPath, mainly for tests.
func WithLookPath(fn func(string) (string, error)) BrowserOption {
	return func(o *BrowserOpener) {
		if fn != nil {
			o.lookPath = fn
		}
	}
}

// WithStarter replaces the process launcher, mainly for tests.
func WithStarter(fn func(name string, args ...string) error) BrowserOption {
	return func(o *BrowserOpener) {
		if fn != nil {
			o.start = fn
		}
	}
}

// BrowserOpener writes documents to temporary HTML files and opens them with
// a browser command.
type BrowserOpener struct {
	command  string
	tempDir  string
	goos     string
	lookPath func(string) (string, error)
	start    func(name string, args ...string) error
}

// NewBrowserOpener builds an opener. Without WithCommand the platform's
// default opener is used.
func NewBrowserOpener(options ...BrowserOption) *BrowserOpener {
	o := &BrowserOpener{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		start:    startDetached,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	return o
}

// DefaultCommand returns the opener command for goos.
func DefaultCommand(goos string) string {
	switch goos {
	case "darwin":
		return "open {file}"
	case "windows":
		return "rundll32 url.dll,FileProtocolHandler {file}"
	default:
		return "xdg-open {file}"
	}
}

// Open resolves the browser command and creates the temp file backing the
// surface. The browser is not launched until Print.
func (o *BrowserOpener) Open(ctx context.Context, viewport Viewport) (Surface, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	command := o.command
	if command == "" {
		command = DefaultCommand(o.goos)
	}
	args, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("%w: parse browser command %q: %v", ErrSurfaceUnavailable, command, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: browser command is empty", ErrSurfaceUnavailable)
	}
	program, err := o.lookPath(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: browser %q not found: %v", ErrSurfaceUnavailable, args[0], err)
	}

	file, err := os.CreateTemp(o.tempDir, "epiform-*.html")
	if err != nil {
		return nil, fmt.Errorf("%w: create document file: %v", ErrSurfaceUnavailable, err)
	}
	path := file.Name()
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("%w: create document file: %v", ErrSurfaceUnavailable, err)
	}

	return &browserSurface{
		path:    path,
		program: program,
		args:    expandArgs(args[1:], path, viewport),
		start:   o.start,
	}, nil
}

func expandArgs(args []string, path string, viewport Viewport) []string {
	replacer := strings.NewReplacer(
		placeholderFile, path,
		placeholderWidth, strconv.Itoa(viewport.Width),
		placeholderHeight, strconv.Itoa(viewport.Height),
	)
	out := make([]string, 0, len(args)+1)
	hasFile := false
	for _, arg := range args {
		if strings.Contains(arg, placeholderFile) {
			hasFile = true
		}
		out = append(out, replacer.Replace(arg))
	}
	if !hasFile {
		out = append(out, path)
	}
	return out
}

type browserSurface struct {
	path    string
	program string
	args    []string
	start   func(name string, args ...string) error
}

func (s *browserSurface) Write(markup []byte) error {
	if err := os.WriteFile(s.path, markup, 0o600); err != nil {
		return fmt.Errorf("printsink: write %s: %w", s.path, err)
	}
	return nil
}

// Print launches the browser and returns once the process has started.
func (s *browserSurface) Print(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.start(s.program, s.args...); err != nil {
		return fmt.Errorf("printsink: start %s: %w", s.program, err)
	}
	return nil
}

func (s *browserSurface) Location() string {
	return s.path
}

// Discard removes the temp file.
func (s *browserSurface) Discard() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("printsink: remove %s: %w", s.path, err)
	}
	return nil
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
