package render

import (
	"strings"

	"github.com/goliatone/go-epiform/pkg/model"
)

const (
	documentTitle    = "TERMO DE RESPONSABILIDADE"
	documentSubtitle = "FORNECIMENTO E USO DE EPI - EQUIPAMENTO DE PROTEÇÃO INDIVIDUAL DE USO ÚNICO"
)

// Cell is a captioned value printed inside a grid or table cell.
type Cell struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CompanyBlock is the company-details grid, split into its two columns.
type CompanyBlock struct {
	Left      []Cell `json:"left"`
	Right     []Cell `json:"right"`
	LegalName string `json:"legalName"`
	LogoSVG   string `json:"logoSvg,omitempty"`
}

// EquipmentLine is one printed row of the equipment table.
type EquipmentLine struct {
	DataEntrega   string `json:"dataEntrega"`
	Qtd           string `json:"qtd"`
	Descricao     string `json:"descricao"`
	CertificadoCA string `json:"certificadoCA"`
	NomeComercial string `json:"nomeComercial"`
	Assinatura    string `json:"assinatura"`
}

// Cells returns the line in printed column order.
func (l EquipmentLine) Cells() []string {
	return []string{l.DataEntrega, l.Qtd, l.Descricao, l.CertificadoCA, l.NomeComercial, l.Assinatura}
}

// Document is the structured description of the printable form. Only
// Employee and Equipment depend on user input.
type Document struct {
	Title     string          `json:"title"`
	Subtitle  string          `json:"subtitle"`
	Company   CompanyBlock    `json:"company"`
	Employee  [][]Cell        `json:"employee"`
	Equipment []EquipmentLine `json:"equipment"`
	Revision  string          `json:"revision"`
	Locale    string          `json:"locale"`
}

// employeeGrid is the printed 2x4 arrangement of the identification table.
var employeeGrid = [][]model.EmployeeField{
	{model.FieldColaborador, model.FieldCPF, model.FieldUnidade, model.FieldAdmissao},
	{model.FieldCargo, model.FieldSetor, model.FieldSupervisor, model.FieldDataDemissao},
}

// Project maps snapshot onto the printable Document. It is a pure function of
// its inputs.
func Project(snapshot model.Snapshot, options RenderOptions) Document {
	opts := options.WithDefaults()

	doc := Document{
		Title:     documentTitle,
		Subtitle:  documentSubtitle,
		Company:   projectCompany(opts),
		Employee:  make([][]Cell, 0, len(employeeGrid)),
		Equipment: make([]EquipmentLine, 0, len(snapshot.Rows)),
		Revision:  opts.Revision,
		Locale:    opts.Locale,
	}

	for _, line := range employeeGrid {
		cells := make([]Cell, 0, len(line))
		for _, field := range line {
			cells = append(cells, Cell{
				Label: field.Label(),
				Value: EmployeeValue(snapshot.Employee, field, opts.Locale),
			})
		}
		doc.Employee = append(doc.Employee, cells)
	}

	for _, row := range snapshot.Rows {
		doc.Equipment = append(doc.Equipment, ProjectRow(row, opts.Locale))
	}
	return doc
}

// EmployeeValue renders one identification field with its placeholder rule.
func EmployeeValue(info model.EmployeeInfo, field model.EmployeeField, locale string) string {
	value := info.Get(field)
	switch {
	case field.IsDate():
		return FormatDate(value, locale)
	case field == model.FieldColaborador:
		return orPlaceholder(value, NamePlaceholderWidth)
	default:
		return orPlaceholder(value, FieldPlaceholderWidth)
	}
}

// ProjectRow renders one equipment row. Text cells are copied verbatim.
func ProjectRow(row model.EquipmentRow, locale string) EquipmentLine {
	return EquipmentLine{
		DataEntrega:   FormatDate(row.DataEntrega, locale),
		Qtd:           row.Qtd,
		Descricao:     row.Descricao,
		CertificadoCA: row.CertificadoCA,
		NomeComercial: row.NomeComercial,
		Assinatura:    row.Assinatura,
	}
}

func projectCompany(opts RenderOptions) CompanyBlock {
	p := opts.Company
	return CompanyBlock{
		Left: []Cell{
			{Label: "Empresa", Value: p.Empresa},
			{Label: "Endereço", Value: p.Endereco},
			{Label: "Cidade", Value: p.Cidade},
		},
		Right: []Cell{
			{Label: "CNPJ", Value: p.CNPJ},
			{Label: "Bairro", Value: p.Bairro},
			{Label: "UF", Value: p.UF},
		},
		LegalName: p.LegalName(),
		LogoSVG:   strings.TrimSpace(p.SanitizedLogo()),
	}
}
