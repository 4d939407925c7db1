// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/acheiapp/achei/internal/i18n"
	"github.com/acheiapp/achei/internal/model"
)

// Menu entry identifiers. Stable across language changes, unlike labels.
const (
	menuDashboard     = "dashboard"
	menuObjects       = "objects"
	menuObjectForm    = "object_form"
	menuCases         = "cases"
	menuPoliceCases   = "police_cases"
	menuMap           = "map"
	menuNotifications = "notifications"
	menuReports       = "reports"
	menuSettings      = "settings"
	menuQuit          = "quit"
)

// menuSelectedMsg asks the router to open the chosen entry.
type menuSelectedMsg struct {
	id string
}

type menuEntry struct {
	id    string
	label string
}

// menuModel holds the state for a portal menu. The same model serves both
// portals; only the entry list differs.
type menuModel struct {
	user    model.User
	entries []menuEntry
	cursor  int
}

func newMenuModel(user model.User) menuModel {
	var entries []menuEntry
	if user.Type == model.UserOfficer {
		entries = []menuEntry{
			{menuPoliceCases, i18n.T("menu.police_cases")},
			{menuMap, i18n.T("menu.map")},
			{menuReports, i18n.T("menu.reports")},
			{menuSettings, i18n.T("menu.settings")},
			{menuQuit, i18n.T("menu.quit")},
		}
	} else {
		entries = []menuEntry{
			{menuDashboard, i18n.T("menu.dashboard")},
			{menuObjects, i18n.T("menu.objects")},
			{menuObjectForm, i18n.T("menu.object_form")},
			{menuCases, i18n.T("menu.cases")},
			{menuMap, i18n.T("menu.map")},
			{menuNotifications, i18n.T("menu.notifications")},
			{menuSettings, i18n.T("menu.settings")},
			{menuQuit, i18n.T("menu.quit")},
		}
	}
	return menuModel{user: user, entries: entries}
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter":
			id := m.entries[m.cursor].id
			return m, func() tea.Msg { return menuSelectedMsg{id: id} }
		case "q", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	title := i18n.T("menu.title.citizen")
	if m.user.Type == model.UserOfficer {
		title = i18n.T("menu.title.police")
	}
	s := mainTitleStyle.Render("Achei") + "\n"
	s += titleStyle.Render(title) + "\n\n"
	for i, e := range m.entries {
		if i == m.cursor {
			s += selectedItemStyle.Render("> "+e.label) + "\n"
		} else {
			s += itemStyle.Render("  "+e.label) + "\n"
		}
	}
	s += "\n" + statusBar(&model.Session{User: m.user})
	s += "\n" + helpStyle.Render(i18n.T("menu.help"))
	return s
}
