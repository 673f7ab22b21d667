package table_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-epiform/pkg/model"
	"github.com/goliatone/go-epiform/pkg/render"
	"github.com/goliatone/go-epiform/pkg/renderers/table"
)

func TestRenderer_Layout(t *testing.T) {
	snap := model.Snapshot{
		Employee: model.EmployeeInfo{Colaborador: "Maria Souza", Admissao: "2023-01-10"},
		Rows: []model.EquipmentRow{
			{ID: "row-1", Qtd: "2", Descricao: "LUVA", CertificadoCA: "44396", NomeComercial: "MEDIX"},
			{ID: "row-2", Descricao: "item\tcom tab"},
		},
	}

	out, err := table.New().Render(context.Background(), snap, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := string(out)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	// title + 8 fields + blank + heading + header + 2 rows
	if len(lines) != 14 {
		t.Fatalf("expected 14 lines, got %d:\n%s", len(lines), text)
	}
	if lines[0] != "QUALIFICAÇÃO DO FUNCIONÁRIO" {
		t.Fatalf("unexpected title %q", lines[0])
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[1]), "Colaborador *") || !strings.HasSuffix(lines[1], "Maria Souza") {
		t.Fatalf("unexpected name line %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "-") {
		t.Fatalf("empty value should print a dash: %q", lines[2])
	}
	if strings.Contains(lines[8], "*") {
		t.Fatalf("dismissal date is optional: %q", lines[8])
	}
	if lines[10] != "EPIs (2)" {
		t.Fatalf("unexpected heading %q", lines[10])
	}
	if fields := strings.Fields(lines[12]); fields[0] != "1" || fields[2] != "2" || fields[3] != "LUVA" || fields[4] != "44396" || fields[5] != "MEDIX" {
		t.Fatalf("unexpected first row %q", lines[12])
	}
	if !strings.Contains(lines[13], "item com tab") {
		t.Fatalf("tab should be flattened: %q", lines[13])
	}

	// header and rows share column offsets
	qtd := strings.Index(lines[11], "QTD")
	if qtd < 0 || lines[12][qtd:qtd+1] != "2" {
		t.Fatalf("columns not aligned:\n%s\n%s", lines[11], lines[12])
	}
}

func TestRenderer_RowIDs(t *testing.T) {
	snap := model.Snapshot{Rows: []model.EquipmentRow{{ID: "abc-123"}}}

	out, err := table.New(table.WithRowIDs(true)).Render(context.Background(), snap, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "abc-123") {
		t.Fatalf("expected row id in output:\n%s", out)
	}

	out, err = table.New().Render(context.Background(), snap, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "abc-123") {
		t.Fatalf("row id should be hidden by default")
	}
}

func TestRenderer_Contract(t *testing.T) {
	r := table.New()
	if r.Name() != "table" || r.ContentType() != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected contract %q %q", r.Name(), r.ContentType())
	}
}

func TestRenderer_WithPadding(t *testing.T) {
	snap := model.Snapshot{Rows: []model.EquipmentRow{{ID: "row-1", Qtd: "1"}}}

	for _, tc := range []struct {
		padding int
		want    string
	}{
		{padding: 0, want: "#  Data Entrega"},
		{padding: 6, want: "#      Data Entrega"},
	} {
		out, err := table.New(table.WithPadding(tc.padding)).Render(context.Background(), snap, render.RenderOptions{})
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if !strings.Contains(string(out), tc.want) {
			t.Fatalf("padding %d: expected %q in:\n%s", tc.padding, tc.want, out)
		}
	}
}
