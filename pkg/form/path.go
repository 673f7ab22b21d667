package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-epiform/pkg/model"
)

// ErrInvalidPath is returned by Set and Get for paths that do not address a
// field of the form.
var ErrInvalidPath = errors.New("form: invalid path")

const (
	employeeSegment = "employee"
	rowsSegment     = "rows"
)

// Set writes value using a dotted path. Accepted shapes:
//
//	colaborador               identification field
//	employee.cpf              identification field
//	rows.0.qtd                row by 0-based position; position == Len() appends a row
//	rows.<id>.descricao       row by id
//
// Descriptions keep their catalog auto-fill semantics.
func (f *Form) Set(path, value string) error {
	segments := splitPath(path)
	switch {
	case len(segments) == 1:
		return f.setEmployee(path, segments[0], value)
	case len(segments) == 2 && segments[0] == employeeSegment:
		return f.setEmployee(path, segments[1], value)
	case len(segments) == 3 && segments[0] == rowsSegment:
		field := model.RowField(segments[2])
		if !field.Valid() {
			return fmt.Errorf("%w: %q: unknown row field %q", ErrInvalidPath, path, segments[2])
		}
		id, err := f.resolveRow(path, segments[1], true)
		if err != nil {
			return err
		}
		f.SetRowField(id, field, value)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
}

// Get resolves a dotted path (see Set) without creating rows.
func (f *Form) Get(path string) (string, bool) {
	segments := splitPath(path)
	switch {
	case len(segments) == 1:
		return f.getEmployee(segments[0])
	case len(segments) == 2 && segments[0] == employeeSegment:
		return f.getEmployee(segments[1])
	case len(segments) == 3 && segments[0] == rowsSegment:
		field := model.RowField(segments[2])
		if !field.Valid() {
			return "", false
		}
		id, err := f.resolveRow(path, segments[1], false)
		if err != nil {
			return "", false
		}
		row, ok := f.Row(id)
		if !ok {
			return "", false
		}
		return row.Get(field), true
	default:
		return "", false
	}
}

func (f *Form) setEmployee(path, name, value string) error {
	field := model.EmployeeField(name)
	if !field.Valid() {
		return fmt.Errorf("%w: %q: unknown employee field %q", ErrInvalidPath, path, name)
	}
	f.SetEmployeeField(field, value)
	return nil
}

func (f *Form) getEmployee(name string) (string, bool) {
	field := model.EmployeeField(name)
	if !field.Valid() {
		return "", false
	}
	return f.employee.Get(field), true
}

// resolveRow maps a row segment (position or id) to a row id. When create is
// set, the position one past the end appends a new row.
func (f *Form) resolveRow(path, segment string, create bool) (string, error) {
	if idx, err := strconv.Atoi(segment); err == nil {
		switch {
		case idx < 0:
			return "", fmt.Errorf("%w: %q: negative row index", ErrInvalidPath, path)
		case idx < len(f.rows):
			return f.rows[idx].ID, nil
		case idx == len(f.rows) && create:
			return f.AddRow().ID, nil
		default:
			return "", fmt.Errorf("%w: %q: row index %d out of range (rows: %d)", ErrInvalidPath, path, idx, len(f.rows))
		}
	}
	if f.indexOf(segment) < 0 {
		return "", fmt.Errorf("%w: %q: unknown row id %q", ErrInvalidPath, path, segment)
	}
	return segment, nil
}

func splitPath(path string) []string {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		segments[i] = strings.TrimSpace(segment)
		if segments[i] == "" {
			return nil
		}
	}
	return segments
}
