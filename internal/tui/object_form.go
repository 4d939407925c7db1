// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/acheiapp/achei/internal/api"
	"github.com/acheiapp/achei/internal/i18n"
	"github.com/acheiapp/achei/internal/logging"
	"github.com/acheiapp/achei/internal/model"
)

const (
	objFieldName = iota
	objFieldCategory
	objFieldDescription
	objFieldSerial
	objFieldCount
)

type objectSavedMsg struct {
	err error
}

type draftSavedMsg struct {
	err error
}

// objectFormModel registers a new belonging. Ctrl+S saves the form as a
// local draft instead of submitting, for use without connectivity.
type objectFormModel struct {
	deps Deps

	inputs     []textinput.Model
	focused    int
	submitting bool
	errMsg     string
	notice     string
}

func newObjectFormModel(deps Deps) objectFormModel {
	m := objectFormModel{deps: deps, inputs: make([]textinput.Model, objFieldCount)}
	placeholders := []string{
		i18n.T("objects.form.name"),
		i18n.T("objects.form.category"),
		i18n.T("objects.form.description"),
		i18n.T("objects.form.serial"),
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 128
		in.Width = 40
		m.inputs[i] = in
	}
	m.inputs[0].Focus()
	return m
}

func (m objectFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m objectFormModel) payload() api.NewObject {
	return api.NewObject{
		Name:         m.inputs[objFieldName].Value(),
		Category:     m.inputs[objFieldCategory].Value(),
		Description:  m.inputs[objFieldDescription].Value(),
		SerialNumber: m.inputs[objFieldSerial].Value(),
	}
}

func (m objectFormModel) submitCmd() tea.Cmd {
	apiClient := m.deps.API
	obj := m.payload()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_, err := apiClient.AddObject(ctx, obj)
		return objectSavedMsg{err: err}
	}
}

func (m objectFormModel) saveDraftCmd() tea.Cmd {
	cache := m.deps.Cache
	obj := m.payload()
	return func() tea.Msg {
		if cache == nil {
			// No local database, nothing to save the draft into.
			return draftSavedMsg{err: errors.New(i18n.T("objects.draft_unavailable"))}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, err := cache.SaveDraft(ctx, model.ObjectDraft{
			Name:         obj.Name,
			Category:     obj.Category,
			Description:  obj.Description,
			SerialNumber: obj.SerialNumber,
			CreatedAt:    time.Now(),
		})
		if err != nil {
			logging.Warnf("object draft not saved: %v", err)
		}
		return draftSavedMsg{err: err}
	}
}

func (m objectFormModel) Update(msg tea.Msg) (objectFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case objectSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.notice = i18n.T("objects.added")
		m = m.cleared()
		return m, nil

	case draftSavedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.notice = i18n.T("objects.draft_saved")
		m = m.cleared()
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "tab", "down":
			m.setFocus((m.focused + 1) % objFieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focused + objFieldCount - 1) % objFieldCount)
			return m, nil
		case "ctrl+s":
			return m, m.saveDraftCmd()
		case "enter":
			if m.focused < objFieldCount-1 {
				m.setFocus(m.focused + 1)
				return m, nil
			}
			if m.inputs[objFieldName].Value() == "" {
				m.errMsg = i18n.T("objects.form.error.name_required")
				return m, nil
			}
			m.errMsg = ""
			m.notice = ""
			m.submitting = true
			return m, m.submitCmd()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m objectFormModel) cleared() objectFormModel {
	m.errMsg = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.setFocus(objFieldName)
	return m
}

func (m *objectFormModel) setFocus(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

func (m objectFormModel) View() string {
	s := titleStyle.Render(i18n.T("objects.form.title")) + "\n\n"
	for i := range m.inputs {
		s += m.inputs[i].View() + "\n"
	}
	switch {
	case m.submitting:
		s += "\n" + specialStyle.Render(i18n.T("common.sending")) + "\n"
	case m.errMsg != "":
		s += "\n" + errorStyle.Render(m.errMsg) + "\n"
	case m.notice != "":
		s += "\n" + successStyle.Render(m.notice) + "\n"
	}
	s += "\n" + helpStyle.Render(i18n.T("objects.form.help"))
	return s
}
