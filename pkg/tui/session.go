// Package tui runs the interactive terminal session: it edits the form
// through prompts, prints the equipment table after each change and hands
// snapshots to the document generator.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goliatone/go-epiform/pkg/form"
	"github.com/goliatone/go-epiform/pkg/model"
	"github.com/goliatone/go-epiform/pkg/printsink"
	"github.com/goliatone/go-epiform/pkg/render"
	"github.com/goliatone/go-epiform/pkg/renderers/table"
)

// Menu labels.
const (
	actionEmployee = "Editar dados do colaborador"
	actionAddRow   = "Adicionar EPI"
	actionEditRow  = "Editar EPI"
	actionRemove   = "Remover EPI"
	actionGenerate = "Gerar PDF"
	actionQuit     = "Sair"
)

// otherDescription lets the user type a description outside the catalog.
const otherDescription = "Outro (digitar)"

const dateHelp = "AAAA-MM-DD ou DD/MM/AAAA; deixe em branco para imprimir ____"

// Generator produces the printable document for a snapshot.
type Generator interface {
	Generate(ctx context.Context, snapshot model.Snapshot) error
}

// Session owns one form for the lifetime of the terminal session.
type Session struct {
	form          *form.Form
	driver        PromptDriver
	table         render.Renderer
	renderOptions render.RenderOptions
	theme         Theme
	logger        *slog.Logger
}

// New builds a session editing f.
func New(f *form.Form, options ...Option) *Session {
	if f == nil {
		f = form.New()
	}
	s := &Session{
		form:   f,
		table:  table.New(),
		logger: discardLogger(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s
}

// Form returns the edited form.
func (s *Session) Form() *form.Form {
	return s.form
}

// Notify shows message to the user. It lets the session act as the
// generator's notifier.
func (s *Session) Notify(ctx context.Context, message string) error {
	return s.driver.Info(ctx, s.theme.ErrorPrefix+message)
}

// Run loops over the main menu until the user quits. Interrupts return
// ErrAborted.
func (s *Session) Run(ctx context.Context, generator Generator) error {
	if generator == nil {
		return ErrNoGenerator
	}
	if err := s.showTable(ctx); err != nil {
		return err
	}

	for {
		actions := s.menu()
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message: "O que deseja fazer?",
			Options: actions,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(actions) {
			continue
		}

		switch actions[idx] {
		case actionEmployee:
			err = s.editEmployee(ctx)
		case actionAddRow:
			err = s.addRow(ctx)
		case actionEditRow:
			err = s.editRow(ctx)
		case actionRemove:
			err = s.removeRow(ctx)
		case actionGenerate:
			err = s.generate(ctx, generator)
		case actionQuit:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) menu() []string {
	actions := []string{actionEmployee, actionAddRow, actionEditRow}
	if s.form.CanRemoveRow() {
		actions = append(actions, actionRemove)
	}
	return append(actions, actionGenerate, actionQuit)
}

func (s *Session) editEmployee(ctx context.Context) error {
	current := s.form.Employee()
	for _, field := range model.EmployeeFields {
		cfg := InputConfig{
			Message: field.Label(),
			Default: current.Get(field),
		}
		if field.Required() {
			cfg.Message += " *"
		}
		if field.IsDate() {
			cfg.Help = dateHelp
			cfg.Validator = validateDate
		}
		value, err := s.driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		s.form.SetEmployeeField(field, strings.TrimSpace(value))
	}
	return s.showTable(ctx)
}

func (s *Session) addRow(ctx context.Context) error {
	row := s.form.AddRow()
	s.logger.Debug("row added", "id", row.ID, "rows", s.form.Len())
	return s.editRowFields(ctx, row.ID)
}

func (s *Session) editRow(ctx context.Context) error {
	id, ok, err := s.pickRow(ctx, "Qual EPI deseja editar?")
	if err != nil || !ok {
		return err
	}
	return s.editRowFields(ctx, id)
}

func (s *Session) editRowFields(ctx context.Context, id string) error {
	row, ok := s.form.Row(id)
	if !ok {
		return nil
	}

	value, err := s.driver.Input(ctx, InputConfig{
		Message:   model.RowDataEntrega.Label(),
		Default:   row.DataEntrega,
		Help:      dateHelp,
		Validator: validateDate,
	})
	if err != nil {
		return err
	}
	s.form.SetRowField(id, model.RowDataEntrega, strings.TrimSpace(value))

	if value, err = s.driver.Input(ctx, InputConfig{Message: model.RowQtd.Label(), Default: row.Qtd}); err != nil {
		return err
	}
	s.form.SetRowField(id, model.RowQtd, strings.TrimSpace(value))

	description, err := s.askDescription(ctx, row.Descricao)
	if err != nil {
		return err
	}
	s.form.SetRowDescription(id, description)

	// defaults reflect the catalog autofill applied above
	row, _ = s.form.Row(id)
	for _, field := range []model.RowField{model.RowCertificadoCA, model.RowNomeComercial, model.RowAssinatura} {
		value, err := s.driver.Input(ctx, InputConfig{Message: field.Label(), Default: row.Get(field)})
		if err != nil {
			return err
		}
		s.form.SetRowField(id, field, strings.TrimSpace(value))
	}
	return s.showTable(ctx)
}

func (s *Session) askDescription(ctx context.Context, current string) (string, error) {
	names := s.form.Catalog().Names()
	options := append(append([]string(nil), names...), otherDescription)

	defaultIdx := indexOf(names, current)
	if defaultIdx < 0 {
		defaultIdx = len(names)
	}
	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:      model.RowDescricao.Label(),
		Options:      options,
		DefaultIndex: defaultIdx,
		Help:         "Itens do catálogo preenchem CA e nome comercial automaticamente",
	})
	if err != nil {
		return "", err
	}
	if idx >= 0 && idx < len(names) {
		return names[idx], nil
	}

	value, err := s.driver.Input(ctx, InputConfig{Message: model.RowDescricao.Label(), Default: current})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (s *Session) removeRow(ctx context.Context) error {
	if !s.form.CanRemoveRow() {
		return s.driver.Info(ctx, s.theme.InfoPrefix+"O formulário precisa de pelo menos um EPI.")
	}
	id, ok, err := s.pickRow(ctx, "Qual EPI deseja remover?")
	if err != nil || !ok {
		return err
	}
	confirmed, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Remover este EPI?"})
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}
	if s.form.RemoveRow(id) {
		s.logger.Debug("row removed", "id", id, "rows", s.form.Len())
	}
	return s.showTable(ctx)
}

// pickRow asks for a row when there is more than one.
func (s *Session) pickRow(ctx context.Context, message string) (string, bool, error) {
	rows := s.form.Rows()
	if len(rows) == 1 {
		return rows[0].ID, true, nil
	}
	options := make([]string, 0, len(rows))
	for i, row := range rows {
		options = append(options, rowLabel(i, row))
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: message, Options: options})
	if err != nil {
		return "", false, err
	}
	if idx < 0 || idx >= len(rows) {
		return "", false, nil
	}
	return rows[idx].ID, true, nil
}

func (s *Session) generate(ctx context.Context, generator Generator) error {
	if missing := s.form.MissingEmployeeFields(); len(missing) > 0 {
		labels := make([]string, 0, len(missing))
		for _, field := range missing {
			labels = append(labels, field.Label())
		}
		if err := s.driver.Info(ctx, s.theme.InfoPrefix+"Campos obrigatórios em branco: "+strings.Join(labels, ", ")); err != nil {
			return err
		}
		proceed, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Gerar o documento mesmo assim?"})
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}
	}

	err := generator.Generate(ctx, s.form.Snapshot())
	switch {
	case err == nil:
		return s.driver.Info(ctx, s.theme.InfoPrefix+"Documento enviado para impressão.")
	case errors.Is(err, printsink.ErrSurfaceUnavailable):
		// the generator already notified the user; the form stays as is
		s.logger.Warn("document not generated", "error", err)
		return nil
	case errors.Is(err, context.Canceled):
		return err
	default:
		s.logger.Error("generate document", "error", err)
		return s.driver.Info(ctx, s.theme.ErrorPrefix+fmt.Sprintf("Falha ao gerar o documento: %v", err))
	}
}

func (s *Session) showTable(ctx context.Context) error {
	out, err := s.table.Render(ctx, s.form.Snapshot(), s.renderOptions)
	if err != nil {
		return fmt.Errorf("tui: render table: %w", err)
	}
	return s.driver.Info(ctx, string(out))
}

func rowLabel(idx int, row model.EquipmentRow) string {
	desc := row.Descricao
	if strings.TrimSpace(desc) == "" {
		desc = "(sem descrição)"
	}
	if row.Qtd != "" {
		return fmt.Sprintf("%d. %s x%s", idx+1, desc, row.Qtd)
	}
	return fmt.Sprintf("%d. %s", idx+1, desc)
}

func validateDate(value string) error {
	if !render.ValidDateInput(value) {
		return fmt.Errorf("data inválida: use %s", dateHelp)
	}
	return nil
}
