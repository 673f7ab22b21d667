// Package generate turns a form snapshot into a printed document: it opens a
// print surface, renders the document variant into it and triggers printing.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-epiform/pkg/model"
	"github.com/goliatone/go-epiform/pkg/printsink"
	"github.com/goliatone/go-epiform/pkg/render"
)

// FailureNotice is shown when no print surface can be opened.
const FailureNotice = "Não foi possível abrir a janela de impressão. Por favor, desabilite o bloqueador de pop-ups ou configure o navegador (EPIFORM_BROWSER) e tente novamente."

// Notifier delivers user-facing messages.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, message string) error

func (f NotifierFunc) Notify(ctx context.Context, message string) error {
	return f(ctx, message)
}

type Option func(*Generator)

func WithNotifier(notifier Notifier) Option {
	return func(g *Generator) {
		if notifier != nil {
			g.notifier = notifier
		}
	}
}

func WithRenderOptions(options render.RenderOptions) Option {
	return func(g *Generator) {
		g.renderOptions = options
	}
}

// WithViewport overrides the 1000x800 landscape window.
func WithViewport(viewport printsink.Viewport) Option {
	return func(g *Generator) {
		if viewport.Width > 0 && viewport.Height > 0 {
			g.viewport = viewport
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Generator produces documents. It never mutates form state; it only sees
// snapshots.
type Generator struct {
	opener        printsink.Opener
	renderer      render.Renderer
	notifier      Notifier
	renderOptions render.RenderOptions
	viewport      printsink.Viewport
	logger        *slog.Logger
}

// New builds a Generator writing renderer output to surfaces from opener.
func New(opener printsink.Opener, renderer render.Renderer, options ...Option) (*Generator, error) {
	if opener == nil {
		return nil, errors.New("generate: print surface opener is required")
	}
	if renderer == nil {
		return nil, errors.New("generate: renderer is required")
	}
	g := &Generator{
		opener:   opener,
		renderer: renderer,
		viewport: printsink.DefaultViewport,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	return g, nil
}

// Generate renders snapshot into a fresh surface and asks it to print. When no
// surface is available the user is notified and the error, wrapping
// printsink.ErrSurfaceUnavailable, is returned; nothing is rendered in that
// case.
func (g *Generator) Generate(ctx context.Context, snapshot model.Snapshot) error {
	surface, err := g.opener.Open(ctx, g.viewport)
	if err != nil {
		if errors.Is(err, printsink.ErrSurfaceUnavailable) {
			g.logger.Warn("print surface unavailable", "error", err)
			if g.notifier != nil {
				if nerr := g.notifier.Notify(ctx, FailureNotice); nerr != nil {
					g.logger.Error("notify user", "error", nerr)
				}
			}
		}
		return fmt.Errorf("generate: open surface: %w", err)
	}

	markup, err := g.renderer.Render(ctx, snapshot.Clone(), g.renderOptions)
	if err != nil {
		g.discard(surface)
		return fmt.Errorf("generate: render %s: %w", g.renderer.Name(), err)
	}
	if err := surface.Write(markup); err != nil {
		g.discard(surface)
		return fmt.Errorf("generate: write surface: %w", err)
	}
	g.logger.Debug("document written", "location", surface.Location(), "rows", len(snapshot.Rows), "bytes", len(markup))

	if err := surface.Print(ctx); err != nil {
		return fmt.Errorf("generate: print: %w", err)
	}
	g.logger.Info("print requested", "location", surface.Location())
	return nil
}

func (g *Generator) discard(surface printsink.Surface) {
	if err := surface.Discard(); err != nil {
		g.logger.Warn("discard surface", "location", surface.Location(), "error", err)
	}
}

// Render returns the document markup without opening a surface.
func (g *Generator) Render(ctx context.Context, snapshot model.Snapshot) ([]byte, error) {
	return g.renderer.Render(ctx, snapshot.Clone(), g.renderOptions)
}
