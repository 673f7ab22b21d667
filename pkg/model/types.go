package model

// EmployeeField names one attribute of EmployeeInfo.
type EmployeeField string

const (
	FieldColaborador  EmployeeField = "colaborador"
	FieldCPF          EmployeeField = "cpf"
	FieldUnidade      EmployeeField = "unidade"
	FieldAdmissao     EmployeeField = "admissao"
	FieldCargo        EmployeeField = "cargo"
	FieldSetor        EmployeeField = "setor"
	FieldSupervisor   EmployeeField = "supervisor"
	FieldDataDemissao EmployeeField = "dataDemissao"
)

// EmployeeFields lists the identification fields in on-screen order.
var EmployeeFields = []EmployeeField{
	FieldColaborador,
	FieldCPF,
	FieldUnidade,
	FieldAdmissao,
	FieldCargo,
	FieldSetor,
	FieldSupervisor,
	FieldDataDemissao,
}

var employeeLabels = map[EmployeeField]string{
	FieldColaborador:  "Colaborador",
	FieldCPF:          "CPF",
	FieldUnidade:      "Unidade",
	FieldAdmissao:     "Admissão",
	FieldCargo:        "Cargo",
	FieldSetor:        "Setor",
	FieldSupervisor:   "Supervisor (a)",
	FieldDataDemissao: "Data da Demissão",
}

// Label returns the printed caption for the field.
func (f EmployeeField) Label() string {
	return employeeLabels[f]
}

// Valid reports whether f is one of the known identification fields.
func (f EmployeeField) Valid() bool {
	_, ok := employeeLabels[f]
	return ok
}

// IsDate reports whether the field carries a date.
func (f EmployeeField) IsDate() bool {
	return f == FieldAdmissao || f == FieldDataDemissao
}

// Required reports whether the field is marked with `*` on screen. Only the
// dismissal date is optional.
func (f EmployeeField) Required() bool {
	return f.Valid() && f != FieldDataDemissao
}

// RowField names one editable attribute of EquipmentRow. The id is not
// editable and therefore has no RowField.
type RowField string

const (
	RowDataEntrega   RowField = "dataEntrega"
	RowQtd           RowField = "qtd"
	RowDescricao     RowField = "descricao"
	RowCertificadoCA RowField = "certificadoCA"
	RowNomeComercial RowField = "nomeComercial"
	RowAssinatura    RowField = "assinatura"
)

// RowFields lists the equipment table columns in printed order.
var RowFields = []RowField{
	RowDataEntrega,
	RowQtd,
	RowDescricao,
	RowCertificadoCA,
	RowNomeComercial,
	RowAssinatura,
}

var rowLabels = map[RowField]string{
	RowDataEntrega:   "Data Entrega",
	RowQtd:           "QTD",
	RowDescricao:     "Descrição",
	RowCertificadoCA: "Certificado CA",
	RowNomeComercial: "Nome Comercial",
	RowAssinatura:    "Assinatura",
}

// Label returns the on-screen column caption.
func (f RowField) Label() string {
	return rowLabels[f]
}

// Valid reports whether f is one of the editable row fields.
func (f RowField) Valid() bool {
	_, ok := rowLabels[f]
	return ok
}

// EmployeeInfo is the identification block of the document. Every value is
// free text; Admissao and DataDemissao hold dates as typed by the user.
// Required tags mark the fields flagged with `*` on screen; they are advisory.
type EmployeeInfo struct {
	Colaborador  string `json:"colaborador" yaml:"colaborador" validate:"required"`
	CPF          string `json:"cpf" yaml:"cpf" validate:"required"`
	Unidade      string `json:"unidade" yaml:"unidade" validate:"required"`
	Admissao     string `json:"admissao" yaml:"admissao" validate:"required"`
	Cargo        string `json:"cargo" yaml:"cargo" validate:"required"`
	Setor        string `json:"setor" yaml:"setor" validate:"required"`
	Supervisor   string `json:"supervisor" yaml:"supervisor" validate:"required"`
	DataDemissao string `json:"dataDemissao" yaml:"dataDemissao"`
}

// Get returns the value stored for field. Unknown fields yield "".
func (e EmployeeInfo) Get(field EmployeeField) string {
	switch field {
	case FieldColaborador:
		return e.Colaborador
	case FieldCPF:
		return e.CPF
	case FieldUnidade:
		return e.Unidade
	case FieldAdmissao:
		return e.Admissao
	case FieldCargo:
		return e.Cargo
	case FieldSetor:
		return e.Setor
	case FieldSupervisor:
		return e.Supervisor
	case FieldDataDemissao:
		return e.DataDemissao
	default:
		return ""
	}
}

// Set overwrites field with value and reports whether the field is known.
func (e *EmployeeInfo) Set(field EmployeeField, value string) bool {
	switch field {
	case FieldColaborador:
		e.Colaborador = value
	case FieldCPF:
		e.CPF = value
	case FieldUnidade:
		e.Unidade = value
	case FieldAdmissao:
		e.Admissao = value
	case FieldCargo:
		e.Cargo = value
	case FieldSetor:
		e.Setor = value
	case FieldSupervisor:
		e.Supervisor = value
	case FieldDataDemissao:
		e.DataDemissao = value
	default:
		return false
	}
	return true
}

// EquipmentRow records one equipment issuance. ID is assigned by the form
// state manager and stays stable for the row's lifetime.
type EquipmentRow struct {
	ID            string `json:"id" yaml:"id"`
	DataEntrega   string `json:"dataEntrega" yaml:"dataEntrega"`
	Qtd           string `json:"qtd" yaml:"qtd"`
	Descricao     string `json:"descricao" yaml:"descricao"`
	CertificadoCA string `json:"certificadoCA" yaml:"certificadoCA"`
	NomeComercial string `json:"nomeComercial" yaml:"nomeComercial"`
	Assinatura    string `json:"assinatura" yaml:"assinatura"`
}

// Get returns the value stored for field. Unknown fields yield "".
func (r EquipmentRow) Get(field RowField) string {
	switch field {
	case RowDataEntrega:
		return r.DataEntrega
	case RowQtd:
		return r.Qtd
	case RowDescricao:
		return r.Descricao
	case RowCertificadoCA:
		return r.CertificadoCA
	case RowNomeComercial:
		return r.NomeComercial
	case RowAssinatura:
		return r.Assinatura
	default:
		return ""
	}
}

// Set overwrites field with value and reports whether the field is known.
func (r *EquipmentRow) Set(field RowField, value string) bool {
	switch field {
	case RowDataEntrega:
		r.DataEntrega = value
	case RowQtd:
		r.Qtd = value
	case RowDescricao:
		r.Descricao = value
	case RowCertificadoCA:
		r.CertificadoCA = value
	case RowNomeComercial:
		r.NomeComercial = value
	case RowAssinatura:
		r.Assinatura = value
	default:
		return false
	}
	return true
}

// Snapshot is a detached copy of the form state handed to renderers.
type Snapshot struct {
	Employee EmployeeInfo   `json:"employee"`
	Rows     []EquipmentRow `json:"rows"`
}

// Clone returns a deep copy so callers can hand the snapshot around freely.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Employee: s.Employee,
		Rows:     append([]EquipmentRow(nil), s.Rows...),
	}
}
