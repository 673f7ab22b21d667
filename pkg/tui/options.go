package tui

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-epiform/pkg/render"
)

// Theme captures optional prefixes the session applies to messages. Keep
// minimal to avoid coupling session logic to ANSI specifics.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithTableRenderer sets the renderer used for the on-screen table printed
// after every change.
func WithTableRenderer(renderer render.Renderer) Option {
	return func(s *Session) {
		if renderer != nil {
			s.table = renderer
		}
	}
}

// WithRenderOptions forwards render settings to the table renderer.
func WithRenderOptions(options render.RenderOptions) Option {
	return func(s *Session) {
		s.renderOptions = options
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithLogger sets the session logger. Logs are discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
