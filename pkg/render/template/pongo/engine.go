// Package pongo implements template.TemplateRenderer on top of a pongo2
// template set. Templates come from a directory, an fs.FS or both (the
// directory is searched first) and are cached after the first parse.
package pongo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-epiform/pkg/render/template"
)

// DefaultExtension is appended to template names given without one.
const DefaultExtension = ".tmpl"

type Option func(*Engine)

// WithBaseDir searches dir before any fs.FS source.
func WithBaseDir(dir string) Option {
	return func(e *Engine) {
		e.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from files.
func WithFS(files fs.FS) Option {
	return func(e *Engine) {
		e.files = files
	}
}

// WithExtension overrides DefaultExtension.
func WithExtension(ext string) Option {
	return func(e *Engine) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		e.ext = ext
	}
}

// Engine is a pongo2-backed TemplateRenderer. It is safe for concurrent use.
type Engine struct {
	baseDir string
	files   fs.FS
	ext     string

	mu    sync.RWMutex
	set   *pongo2.TemplateSet
	cache map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an Engine. WithBaseDir or WithFS is required.
func New(options ...Option) (*Engine, error) {
	e := &Engine{
		ext:   DefaultExtension,
		cache: make(map[string]*pongo2.Template),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.baseDir == "" && e.files == nil {
		return nil, errors.New("pongo: a template directory or fs.FS is required")
	}

	var loaders []pongo2.TemplateLoader
	if e.baseDir != "" {
		local, err := pongo2.NewLocalFileSystemLoader(e.baseDir)
		if err != nil {
			return nil, fmt.Errorf("pongo: template dir %s: %w", e.baseDir, err)
		}
		loaders = append(loaders, local)
	}
	if e.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(e.files))
	}

	registerFilters()
	e.set = pongo2.NewSet("epiform", loaders...)
	e.set.Globals = pongo2.Context{}
	return e, nil
}

// RenderTemplate renders the named template; the extension may be omitted.
// Struct values are addressed by their json names.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	if !strings.HasSuffix(name, e.ext) {
		name += e.ext
	}

	tmpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}
	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("pongo: template %q data: %w", name, err)
	}

	var buf bytes.Buffer
	e.mu.RLock()
	err = tmpl.ExecuteWriter(ctx, &buf)
	e.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("pongo: execute %q: %w", name, err)
	}

	rendered := buf.String()
	for _, w := range out {
		if w == nil {
			continue
		}
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

// GlobalContext merges data into the template set globals.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.set == nil {
		return errors.New("pongo: engine is nil")
	}
	globals, err := toContext(data)
	if err != nil {
		return fmt.Errorf("pongo: global data: %w", err)
	}

	e.mu.Lock()
	e.set.Globals.Update(globals)
	e.mu.Unlock()
	return nil
}

func (e *Engine) lookup(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.cache[name]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.cache[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("pongo: load template %q: %w", name, err)
	}
	e.cache[name] = tmpl
	return tmpl, nil
}

// toContext round-trips data through JSON so templates only ever see maps,
// slices and scalars keyed by json names.
func toContext(data any) (pongo2.Context, error) {
	if data == nil {
		return pongo2.Context{}, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	ctx := pongo2.Context{}
	if err := json.Unmarshal(raw, &ctx); err != nil {
		return nil, fmt.Errorf("expected an object: %w", err)
	}
	return ctx, nil
}
