package form

import (
	"errors"
	"testing"
)

func TestSet_EmployeePaths(t *testing.T) {
	f := newTestForm(t)

	if err := f.Set("colaborador", "Ana"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := f.Set("employee.cpf", "000.000.000-00"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, ok := f.Get("employee.colaborador"); !ok || got != "Ana" {
		t.Fatalf("get colaborador = %q (ok=%v)", got, ok)
	}
	if got, ok := f.Get("cpf"); !ok || got != "000.000.000-00" {
		t.Fatalf("get cpf = %q (ok=%v)", got, ok)
	}
}

func TestSet_RowByIndexAppends(t *testing.T) {
	f := newTestForm(t)

	if err := f.Set("rows.1.descricao", "LUVA"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if f.Len() != 2 {
		t.Fatalf("expected appended row, got %d rows", f.Len())
	}
	if got, _ := f.Get("rows.1.certificadoCA"); got != "44396" {
		t.Fatalf("expected auto-filled CA, got %q", got)
	}
	if got, _ := f.Get("rows.row-2.nomeComercial"); got != "MEDIX" {
		t.Fatalf("expected lookup by id, got %q", got)
	}
}

func TestSet_RowByID(t *testing.T) {
	f := newTestForm(t)
	if err := f.Set("rows.row-1.qtd", "2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if row, _ := f.RowAt(0); row.Qtd != "2" {
		t.Fatalf("expected qtd 2, got %q", row.Qtd)
	}
}

func TestSet_InvalidPaths(t *testing.T) {
	paths := []string{
		"",
		"nome",
		"employee.nome",
		"rows.0.id",
		"rows.5.qtd",
		"rows.-1.qtd",
		"rows.unknown.qtd",
		"rows..qtd",
		"rows.0.qtd.extra",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			f := newTestForm(t)
			err := f.Set(path, "x")
			if !errors.Is(err, ErrInvalidPath) {
				t.Fatalf("expected ErrInvalidPath, got %v", err)
			}
			if f.Len() != 1 {
				t.Fatalf("invalid path must not add rows")
			}
			if _, ok := f.Get(path); ok {
				t.Fatalf("get %q should fail", path)
			}
		})
	}
}
