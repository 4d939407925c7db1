// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/acheiapp/achei/internal/i18n"
	"github.com/acheiapp/achei/internal/model"
)

type objectsLoadedMsg struct {
	objects []model.RegisteredObject
	err     error
}

type objectDeletedMsg struct {
	id  int64
	err error
}

// objectsModel lists the citizen's registered belongings and allows
// deleting entries.
type objectsModel struct {
	deps Deps

	loading bool
	objects []model.RegisteredObject
	cursor  int
	errMsg  string
	notice  string
}

func newObjectsModel(deps Deps) objectsModel {
	return objectsModel{deps: deps, loading: true}
}

func (m objectsModel) Init() tea.Cmd {
	apiClient := m.deps.API
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		objs, err := apiClient.ListObjects(ctx)
		return objectsLoadedMsg{objects: objs, err: err}
	}
}

func (m objectsModel) deleteCmd(id int64) tea.Cmd {
	apiClient := m.deps.API
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return objectDeletedMsg{id: id, err: apiClient.DeleteObject(ctx, id)}
	}
}

func (m objectsModel) Update(msg tea.Msg) (objectsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case objectsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.objects = msg.objects
		if m.cursor >= len(m.objects) {
			m.cursor = 0
		}
		return m, nil

	case objectDeletedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.notice = i18n.T("objects.deleted")
		m.loading = true
		return m, m.Init()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.objects)-1 {
				m.cursor++
			}
		case "d":
			if !m.loading && len(m.objects) > 0 {
				m.errMsg = ""
				m.notice = ""
				return m, m.deleteCmd(m.objects[m.cursor].ID)
			}
		case "r":
			m.loading = true
			m.errMsg = ""
			m.notice = ""
			return m, m.Init()
		}
	}
	return m, nil
}

func (m objectsModel) View() string {
	s := titleStyle.Render(i18n.T("objects.title")) + "\n\n"
	if m.loading {
		return s + i18n.T("common.loading")
	}
	if m.errMsg != "" {
		s += errorStyle.Render(m.errMsg) + "\n\n"
	}
	if m.notice != "" {
		s += successStyle.Render(m.notice) + "\n\n"
	}
	if len(m.objects) == 0 {
		s += i18n.T("objects.empty") + "\n"
	}
	for i, o := range m.objects {
		line := fmt.Sprintf("%s (%s)", o.Name, o.Category)
		if o.SerialNumber != "" {
			line += "  " + i18n.T("objects.serial") + " " + o.SerialNumber
		}
		if i == m.cursor {
			s += selectedItemStyle.Render("> "+line) + "\n"
		} else {
			s += itemStyle.Render("  "+line) + "\n"
		}
	}
	s += "\n" + helpStyle.Render(i18n.T("objects.help"))
	return s
}
