// Package editor drives an interactive terminal loop over a layout session.
// Every prompt round maps onto exactly one session mutation, so the audit
// trail mirrors what the user did.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-layoutmock/pkg/layout"
	"github.com/goliatone/go-layoutmock/pkg/session"
)

const (
	actionAddSection     = "Add section"
	actionRemoveSection  = "Remove section"
	actionReorderSection = "Reorder section"
	actionAddField       = "Add field"
	actionRemoveField    = "Remove field"
	actionToggleField    = "Hide/show field"
	actionRestoreField   = "Restore hidden field"
	actionMoveField      = "Move field"
	actionSwapFields     = "Swap fields"
	actionUpdateValue    = "Update field value"
	actionUpdateLabel    = "Update field label"
	actionLint           = "Check values"
	actionQuit           = "Quit"
)

var menu = []string{
	actionAddSection,
	actionRemoveSection,
	actionReorderSection,
	actionAddField,
	actionRemoveField,
	actionToggleField,
	actionRestoreField,
	actionMoveField,
	actionSwapFields,
	actionUpdateValue,
	actionUpdateLabel,
	actionLint,
	actionQuit,
}

// Editor runs the interactive loop against a session.
type Editor struct {
	session *session.Session
	driver  PromptDriver
}

// Option customises editor construction.
type Option func(*Editor)

// WithDriver swaps out the default survey-backed prompt driver.
func WithDriver(driver PromptDriver) Option {
	return func(e *Editor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// New constructs an editor for the given session.
func New(sess *session.Session, options ...Option) (*Editor, error) {
	if sess == nil {
		return nil, errors.New("editor: session is required")
	}
	e := &Editor{
		session: sess,
		driver:  newSurveyDriver(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e, nil
}

// Run loops the action menu until the user quits or aborts. Mutation errors
// are reported and the loop continues; only driver failures end the run.
func (e *Editor) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := e.driver.Select(ctx, SelectConfig{
			Message:  fmt.Sprintf("%s layout", e.session.Document().ObjectType()),
			Options:  menu,
			PageSize: len(menu),
		})
		if err != nil {
			if errors.Is(err, ErrAborted) {
				return nil
			}
			return err
		}
		if choice < 0 || choice >= len(menu) {
			continue
		}

		action := menu[choice]
		if action == actionQuit {
			return nil
		}
		if err := e.dispatch(ctx, action); err != nil {
			if errors.Is(err, ErrAborted) {
				continue
			}
			if isLayoutErr(err) {
				if infoErr := e.driver.Info(ctx, "error: "+err.Error()); infoErr != nil {
					return infoErr
				}
				continue
			}
			return err
		}
	}
}

func isLayoutErr(err error) bool {
	return errors.Is(err, layout.ErrNotFound) ||
		errors.Is(err, layout.ErrInvalidOperation) ||
		errors.Is(err, layout.ErrMalformedInput)
}

func (e *Editor) dispatch(ctx context.Context, action string) error {
	switch action {
	case actionAddSection:
		return e.addSection(ctx)
	case actionRemoveSection:
		return e.removeSection(ctx)
	case actionReorderSection:
		return e.reorderSection(ctx)
	case actionAddField:
		return e.addField(ctx)
	case actionRemoveField:
		return e.removeField(ctx)
	case actionToggleField:
		return e.toggleField(ctx)
	case actionRestoreField:
		return e.restoreField(ctx)
	case actionMoveField:
		return e.moveField(ctx)
	case actionSwapFields:
		return e.swapFields(ctx)
	case actionUpdateValue:
		return e.updateValue(ctx)
	case actionUpdateLabel:
		return e.updateLabel(ctx)
	case actionLint:
		return e.lint(ctx)
	default:
		return nil
	}
}

func (e *Editor) addSection(ctx context.Context) error {
	title, err := e.driver.Input(ctx, InputConfig{
		Message:   "Section title",
		Validator: notBlank,
	})
	if err != nil {
		return err
	}
	section, err := e.session.AddSection(title)
	if err != nil {
		return err
	}
	return e.driver.Info(ctx, fmt.Sprintf("added section %s (%s)", section.Title, section.ID))
}

func (e *Editor) removeSection(ctx context.Context) error {
	section, err := e.pickSection(ctx, "Remove which section?")
	if err != nil {
		return err
	}
	confirmed, err := e.driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Delete %q and its %d fields?", section.Title, len(section.Fields)),
	})
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}
	return e.session.RemoveSection(section.ID)
}

func (e *Editor) reorderSection(ctx context.Context) error {
	section, err := e.pickSection(ctx, "Move which section?")
	if err != nil {
		return err
	}
	count := len(e.session.Document().Sections())
	raw, err := e.driver.Input(ctx, InputConfig{
		Message:   fmt.Sprintf("New position (0-%d)", count-1),
		Default:   strconv.Itoa(section.Order),
		Validator: isInteger,
	})
	if err != nil {
		return err
	}
	index, _ := strconv.Atoi(strings.TrimSpace(raw))
	return e.session.ReorderSection(section.ID, index)
}

func (e *Editor) addField(ctx context.Context) error {
	section, err := e.pickSection(ctx, "Add field to which section?")
	if err != nil {
		return err
	}
	label, err := e.driver.Input(ctx, InputConfig{
		Message:   "Field label",
		Validator: notBlank,
	})
	if err != nil {
		return err
	}

	types := layout.FieldTypes()
	typeNames := make([]string, len(types))
	for i, ft := range types {
		typeNames[i] = string(ft)
	}
	choice, err := e.driver.Select(ctx, SelectConfig{
		Message:  "Field type",
		Options:  typeNames,
		PageSize: len(typeNames),
	})
	if err != nil {
		return err
	}
	spec := layout.FieldSpec{Label: label}
	if choice >= 0 && choice < len(types) {
		spec.Type = types[choice]
	}

	value, err := e.driver.Input(ctx, InputConfig{Message: "Initial value (optional)"})
	if err != nil {
		return err
	}
	spec.Value = value

	field, err := e.session.AddField(section.ID, spec)
	if err != nil {
		return err
	}
	return e.driver.Info(ctx, fmt.Sprintf("added field %s (%s)", field.Label, field.ID))
}

func (e *Editor) removeField(ctx context.Context) error {
	field, err := e.pickField(ctx, "Remove which field?", allFields)
	if err != nil {
		return err
	}
	confirmed, err := e.driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Delete %q permanently? Hidden fields can come back, deleted ones cannot.", field.Label),
	})
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}
	return e.session.RemoveField(field.ID)
}

func (e *Editor) toggleField(ctx context.Context) error {
	field, err := e.pickField(ctx, "Toggle which field?", allFields)
	if err != nil {
		return err
	}
	return e.session.SetVisibility(field.ID, !field.Visible)
}

// restoreField lists only the hidden fields, mirroring a restore panel, and
// flips the chosen one back to visible.
func (e *Editor) restoreField(ctx context.Context) error {
	hidden := e.session.Document().HiddenFields()
	if len(hidden) == 0 {
		return e.driver.Info(ctx, "no hidden fields to restore")
	}
	options := make([]string, len(hidden))
	for i, field := range hidden {
		options[i] = field.Label
	}
	choice, err := e.driver.Select(ctx, SelectConfig{
		Message:  "Restore which field?",
		Options:  options,
		PageSize: len(options),
	})
	if err != nil {
		return err
	}
	if choice < 0 || choice >= len(hidden) {
		return ErrAborted
	}
	return e.session.SetVisibility(hidden[choice].ID, true)
}

func (e *Editor) moveField(ctx context.Context) error {
	field, err := e.pickField(ctx, "Move which field?", allFields)
	if err != nil {
		return err
	}
	choice, err := e.driver.Select(ctx, SelectConfig{
		Message: "Direction",
		Options: []string{"up", "down"},
	})
	if err != nil {
		return err
	}
	dir := layout.DirectionUp
	if choice == 1 {
		dir = layout.DirectionDown
	}
	return e.session.MoveField(field.ID, dir)
}

func (e *Editor) swapFields(ctx context.Context) error {
	first, err := e.pickField(ctx, "Swap which field?", allFields)
	if err != nil {
		return err
	}
	second, err := e.pickField(ctx, "Swap with?", func(f *layout.Field) bool {
		return f.ID != first.ID
	})
	if err != nil {
		return err
	}
	return e.session.SwapFields(first.ID, second.ID)
}

func (e *Editor) updateValue(ctx context.Context) error {
	field, err := e.pickField(ctx, "Update which field?", allFields)
	if err != nil {
		return err
	}
	value, err := e.driver.Input(ctx, InputConfig{
		Message: fmt.Sprintf("New value for %s", field.Label),
		Default: field.Value,
	})
	if err != nil {
		return err
	}
	if err := e.session.UpdateFieldValue(field.ID, value); err != nil {
		return err
	}
	if issueErr := layout.ValidateValue(field.Type, value); issueErr != nil {
		return e.driver.Info(ctx, "warning: "+issueErr.Error())
	}
	return nil
}

func (e *Editor) updateLabel(ctx context.Context) error {
	field, err := e.pickField(ctx, "Relabel which field?", allFields)
	if err != nil {
		return err
	}
	label, err := e.driver.Input(ctx, InputConfig{
		Message:   "New label",
		Default:   field.Label,
		Validator: notBlank,
	})
	if err != nil {
		return err
	}
	return e.session.UpdateFieldLabel(field.ID, label)
}

func (e *Editor) lint(ctx context.Context) error {
	issues := e.session.Lint()
	if len(issues) == 0 {
		return e.driver.Info(ctx, "no issues found")
	}
	lines := make([]string, 0, len(issues)+1)
	lines = append(lines, fmt.Sprintf("%d issue(s):", len(issues)))
	for _, issue := range issues {
		lines = append(lines, "  "+issue.String())
	}
	return e.driver.Info(ctx, strings.Join(lines, "\n"))
}

func (e *Editor) pickSection(ctx context.Context, message string) (*layout.Section, error) {
	sections := e.session.Document().Sections()
	if len(sections) == 0 {
		return nil, fmt.Errorf("editor: layout has no sections: %w", layout.ErrInvalidOperation)
	}
	options := make([]string, len(sections))
	for i, s := range sections {
		options[i] = fmt.Sprintf("%s (%d fields)", s.Title, len(s.Fields))
	}
	choice, err := e.driver.Select(ctx, SelectConfig{
		Message:  message,
		Options:  options,
		PageSize: len(options),
	})
	if err != nil {
		return nil, err
	}
	if choice < 0 || choice >= len(sections) {
		return nil, ErrAborted
	}
	return sections[choice], nil
}

func allFields(*layout.Field) bool { return true }

func (e *Editor) pickField(ctx context.Context, message string, keep func(*layout.Field) bool) (*layout.Field, error) {
	var fields []*layout.Field
	var options []string
	for _, section := range e.session.Document().Sections() {
		for _, field := range section.Fields {
			if !keep(field) {
				continue
			}
			state := ""
			if !field.Visible {
				state = " [hidden]"
			}
			fields = append(fields, field)
			options = append(options, fmt.Sprintf("%s / %s%s", section.Title, field.Label, state))
		}
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("editor: layout has no fields: %w", layout.ErrInvalidOperation)
	}
	choice, err := e.driver.Select(ctx, SelectConfig{
		Message:  message,
		Options:  options,
		PageSize: len(options),
	})
	if err != nil {
		return nil, err
	}
	if choice < 0 || choice >= len(fields) {
		return nil, ErrAborted
	}
	return fields[choice], nil
}

func notBlank(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("value cannot be blank")
	}
	return nil
}

func isInteger(value string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(value)); err != nil {
		return errors.New("enter a whole number")
	}
	return nil
}
