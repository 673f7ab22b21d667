// Package epiform generates the EPI liability document (Termo de
// Responsabilidade de EPI): a form with the employee identification and the
// equipment delivered, printed on a fixed legal template.
//
// The root package wires the default pieces together; the pkg/ packages can be
// used directly for finer control.
package epiform

import (
	"context"
	"fmt"

	"github.com/goliatone/go-epiform/pkg/form"
	"github.com/goliatone/go-epiform/pkg/generate"
	"github.com/goliatone/go-epiform/pkg/model"
	"github.com/goliatone/go-epiform/pkg/printsink"
	"github.com/goliatone/go-epiform/pkg/render"
	"github.com/goliatone/go-epiform/pkg/renderers/document"
	"github.com/goliatone/go-epiform/pkg/renderers/table"
)

// RenderOptions aliases render.RenderOptions for callers of the root package.
type RenderOptions = render.RenderOptions

// Snapshot aliases model.Snapshot.
type Snapshot = model.Snapshot

// NewForm creates a form with one blank equipment row.
func NewForm(options ...form.Option) *form.Form {
	return form.New(options...)
}

// NewRegistry returns a registry holding the document and table renderers.
func NewRegistry(options ...document.Option) (*render.Registry, error) {
	doc, err := document.New(options...)
	if err != nil {
		return nil, fmt.Errorf("epiform: document renderer: %w", err)
	}
	registry := render.NewRegistry()
	registry.MustRegister(doc)
	registry.MustRegister(table.New())
	return registry, nil
}

// RenderDocument renders the printable HTML page for snapshot with the
// embedded templates.
func RenderDocument(ctx context.Context, snapshot Snapshot, options RenderOptions) ([]byte, error) {
	doc, err := document.New()
	if err != nil {
		return nil, err
	}
	return doc.Render(ctx, snapshot, options)
}

// NewGenerator builds a document generator writing to surfaces from opener.
func NewGenerator(opener printsink.Opener, options ...generate.Option) (*generate.Generator, error) {
	doc, err := document.New()
	if err != nil {
		return nil, fmt.Errorf("epiform: document renderer: %w", err)
	}
	return generate.New(opener, doc, options...)
}
