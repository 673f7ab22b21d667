// Package document renders the printable liability document (the "document"
// variant) as a self-contained HTML page.
package document

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-epiform/pkg/model"
	"github.com/goliatone/go-epiform/pkg/render"
	rendertemplate "github.com/goliatone/go-epiform/pkg/render/template"
	"github.com/goliatone/go-epiform/pkg/render/template/pongo"
)

// Name is the registry key of the renderer.
const Name = "document"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
	stylesheet       string
	autoPrint        bool
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// templates/document.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir searches a directory on disk before the template bundle,
// so a directory holding only templates/document.tmpl overrides the page.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet replaces the embedded print stylesheet.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = css
	}
}

// WithAutoPrint controls the window.print() call appended to the page.
// Enabled by default.
func WithAutoPrint(enabled bool) Option {
	return func(cfg *config) {
		cfg.autoPrint = enabled
	}
}

const pageTitle = "Termo de Responsabilidade de EPI"

type column struct {
	Label string `json:"label"`
	Width string `json:"width"`
}

var columns = []column{
	{Label: "Data Entrega", Width: "12%"},
	{Label: "QTD", Width: "8%"},
	{Label: "Descrição", Width: "20%"},
	{Label: "Certificado de Aprovação (CA)", Width: "15%"},
	{Label: "Nome Comercial do produto", Width: "25%"},
	{Label: "Assinatura do Colaborador", Width: "20%"},
}

type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	stylesheet string
	autoPrint  bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the document renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		stylesheet: defaultStylesheet(),
		autoPrint:  true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithBaseDir(cfg.templateDir),
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("document renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	if err := renderer.GlobalContext(map[string]any{
		"page_title": pageTitle,
		"columns":    columns,
	}); err != nil {
		return nil, fmt.Errorf("document renderer: template globals: %w", err)
	}

	return &Renderer{
		templates:  renderer,
		stylesheet: cfg.stylesheet,
		autoPrint:  cfg.autoPrint,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the full HTML page for snapshot.
func (r *Renderer) Render(ctx context.Context, snapshot model.Snapshot, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("document renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := options.WithDefaults()
	doc := render.Project(snapshot, opts)

	result, err := r.templates.RenderTemplate(TemplateName, map[string]any{
		"doc":        doc,
		"stylesheet": r.stylesheet,
		"theme_vars": cssVars(opts.ThemeTokens()),
		"auto_print": r.autoPrint,
	})
	if err != nil {
		return nil, fmt.Errorf("document renderer: render template: %w", err)
	}
	return []byte(result), nil
}
