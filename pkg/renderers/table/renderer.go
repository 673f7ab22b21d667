// Package table renders the editable on-screen view of the form as aligned
// plain text. It is printed after every change in the interactive session.
package table

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goliatone/go-epiform/pkg/model"
	"github.com/goliatone/go-epiform/pkg/render"
)

// Name is the registry key of the renderer.
const Name = "table"

// emptyCell marks blank values so columns stay readable.
const emptyCell = "-"

type Option func(*Renderer)

// WithPadding sets the number of spaces between columns.
func WithPadding(padding int) Option {
	return func(r *Renderer) {
		if padding > 0 {
			r.padding = padding
		}
	}
}

// WithRowIDs adds the row id column, useful when rows are edited by id.
func WithRowIDs(enabled bool) Option {
	return func(r *Renderer) {
		r.showIDs = enabled
	}
}

type Renderer struct {
	padding int
	showIDs bool
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{padding: 2}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes the identification block followed by the equipment table.
// Values are shown as typed; required fields carry a "*" marker.
func (r *Renderer) Render(ctx context.Context, snapshot model.Snapshot, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, r.padding, ' ', 0)

	fmt.Fprintln(tw, "QUALIFICAÇÃO DO FUNCIONÁRIO")
	for _, field := range model.EmployeeFields {
		label := field.Label()
		if field.Required() {
			label += " *"
		}
		fmt.Fprintf(tw, "  %s\t%s\n", label, cell(snapshot.Employee.Get(field)))
	}
	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("table renderer: flush employee block: %w", err)
	}

	fmt.Fprintf(&buf, "\nEPIs (%d)\n", len(snapshot.Rows))
	r.writeRows(tw, snapshot.Rows)
	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("table renderer: flush equipment table: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeRows(w io.Writer, rows []model.EquipmentRow) {
	header := []string{"#"}
	if r.showIDs {
		header = append(header, "ID")
	}
	for _, field := range model.RowFields {
		header = append(header, field.Label())
	}
	fmt.Fprintln(w, "  "+strings.Join(header, "\t"))

	for idx, row := range rows {
		cells := []string{fmt.Sprint(idx + 1)}
		if r.showIDs {
			cells = append(cells, row.ID)
		}
		for _, field := range model.RowFields {
			cells = append(cells, cell(row.Get(field)))
		}
		fmt.Fprintln(w, "  "+strings.Join(cells, "\t"))
	}
}

func cell(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return emptyCell
	}
	// tabs and newlines would break the column layout
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", "").Replace(value)
}
