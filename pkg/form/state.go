package form

import (
	"github.com/goliatone/go-epiform/pkg/catalog"
	"github.com/goliatone/go-epiform/pkg/model"
)

// Option configures a Form at construction time.
type Option func(*Form)

// WithCatalog overrides the equipment catalog used for auto-fill.
func WithCatalog(c *catalog.Catalog) Option {
	return func(f *Form) {
		if c != nil {
			f.catalog = c
		}
	}
}

// WithIDGenerator overrides the row id generator.
func WithIDGenerator(ids IDGenerator) Option {
	return func(f *Form) {
		if ids != nil {
			f.ids = ids
		}
	}
}

// Form is the form state manager.
type Form struct {
	employee model.EmployeeInfo
	rows     []model.EquipmentRow
	catalog  *catalog.Catalog
	ids      IDGenerator
}

// New builds a form with an empty identification block and one blank row.
// When no catalog is supplied the embedded default is used; if that cannot be
// loaded the form still works, it just never auto-fills.
func New(options ...Option) *Form {
	f := &Form{ids: UUIDGenerator{}}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.catalog == nil {
		if c, err := catalog.Default(); err == nil {
			f.catalog = c
		}
	}
	f.rows = []model.EquipmentRow{f.blankRow()}
	return f
}

// Catalog returns the catalog backing description auto-fill.
func (f *Form) Catalog() *catalog.Catalog {
	return f.catalog
}

// SetEmployeeField overwrites one identification attribute. Unknown field
// names are ignored.
func (f *Form) SetEmployeeField(field model.EmployeeField, value string) {
	f.employee.Set(field, value)
}

// SetRowField overwrites one attribute of the row identified by id. It
// returns false, leaving the state untouched, when no row has that id or the
// field is unknown. Descriptions go through SetRowDescription so the derived
// fields stay consistent.
func (f *Form) SetRowField(id string, field model.RowField, value string) bool {
	if field == model.RowDescricao {
		return f.SetRowDescription(id, value)
	}
	idx := f.indexOf(id)
	if idx < 0 {
		return false
	}
	return f.rows[idx].Set(field, value)
}

// SetRowDescription sets the row's equipment type. A catalog hit overwrites
// the commercial name and CA, discarding manual edits; anything else,
// including the empty selection, clears both.
func (f *Form) SetRowDescription(id, typeName string) bool {
	idx := f.indexOf(id)
	if idx < 0 {
		return false
	}
	row := &f.rows[idx]
	row.Descricao = typeName
	if entry, ok := f.catalog.Lookup(typeName); ok {
		row.NomeComercial = entry.NomeComercial
		row.CertificadoCA = entry.CertificadoCA
		return true
	}
	row.NomeComercial = ""
	row.CertificadoCA = ""
	return true
}

// AddRow appends a blank row with a fresh id and returns it.
func (f *Form) AddRow() model.EquipmentRow {
	row := f.blankRow()
	f.rows = append(f.rows, row)
	return row
}

// RemoveRow deletes the row identified by id. The last remaining row cannot
// be removed; such attempts, like unknown ids, return false.
func (f *Form) RemoveRow(id string) bool {
	if !f.CanRemoveRow() {
		return false
	}
	idx := f.indexOf(id)
	if idx < 0 {
		return false
	}
	f.rows = append(f.rows[:idx], f.rows[idx+1:]...)
	return true
}

// CanRemoveRow reports whether a removal would be accepted. Interfaces use it
// to hide or disable the removal control.
func (f *Form) CanRemoveRow() bool {
	return len(f.rows) > 1
}

// Employee returns a copy of the identification block.
func (f *Form) Employee() model.EmployeeInfo {
	return f.employee
}

// Rows returns a copy of the rows in list order.
func (f *Form) Rows() []model.EquipmentRow {
	return append([]model.EquipmentRow(nil), f.rows...)
}

// Row returns a copy of the row identified by id.
func (f *Form) Row(id string) (model.EquipmentRow, bool) {
	idx := f.indexOf(id)
	if idx < 0 {
		return model.EquipmentRow{}, false
	}
	return f.rows[idx], true
}

// RowAt returns a copy of the row at position idx (0-based).
func (f *Form) RowAt(idx int) (model.EquipmentRow, bool) {
	if idx < 0 || idx >= len(f.rows) {
		return model.EquipmentRow{}, false
	}
	return f.rows[idx], true
}

// Len reports the number of rows. It is always at least one.
func (f *Form) Len() int {
	return len(f.rows)
}

// Snapshot returns a detached copy of the whole state for rendering.
func (f *Form) Snapshot() model.Snapshot {
	return model.Snapshot{
		Employee: f.employee,
		Rows:     f.Rows(),
	}
}

func (f *Form) blankRow() model.EquipmentRow {
	return model.EquipmentRow{ID: f.ids.NewID()}
}

func (f *Form) indexOf(id string) int {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return i
		}
	}
	return -1
}
