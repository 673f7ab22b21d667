package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-epiform/pkg/model"
)

func TestMissingEmployeeFields(t *testing.T) {
	f := newTestForm(t)

	want := []model.EmployeeField{
		model.FieldColaborador,
		model.FieldCPF,
		model.FieldUnidade,
		model.FieldAdmissao,
		model.FieldCargo,
		model.FieldSetor,
		model.FieldSupervisor,
	}
	if diff := cmp.Diff(want, f.MissingEmployeeFields()); diff != "" {
		t.Fatalf("missing fields mismatch (-want +got):\n%s", diff)
	}

	f.SetEmployeeField(model.FieldColaborador, "Ana")
	f.SetEmployeeField(model.FieldCPF, "   ")
	f.SetEmployeeField(model.FieldUnidade, "Manaus")
	f.SetEmployeeField(model.FieldAdmissao, "2024-01-02")
	f.SetEmployeeField(model.FieldCargo, "Técnica")
	f.SetEmployeeField(model.FieldSetor, "Lab")
	f.SetEmployeeField(model.FieldSupervisor, "João")

	if diff := cmp.Diff([]model.EmployeeField{model.FieldCPF}, f.MissingEmployeeFields()); diff != "" {
		t.Fatalf("missing fields mismatch (-want +got):\n%s", diff)
	}

	f.SetEmployeeField(model.FieldCPF, "123")
	if got := f.MissingEmployeeFields(); len(got) != 0 {
		t.Fatalf("expected no missing fields, got %v", got)
	}
	if f.Employee().CPF != "123" {
		t.Fatalf("presence check must not alter state")
	}
}
