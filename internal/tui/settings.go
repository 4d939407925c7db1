// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"os"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/acheiapp/achei/internal/export"
	"github.com/acheiapp/achei/internal/i18n"
	"github.com/acheiapp/achei/internal/logging"
	"github.com/acheiapp/achei/internal/model"
)

type logoutDoneMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

// settingsModel covers language selection, the data export and logout.
type settingsModel struct {
	deps Deps

	locales     map[string]string
	orderedKeys []string
	cursor      int
	notice      string
	errMsg      string
}

func newSettingsModel(deps Deps) settingsModel {
	locales := i18n.GetAvailableLocales()
	keys := make([]string, 0, len(locales))
	for k := range locales {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cursor := 0
	for i, k := range keys {
		if k == i18n.GetLang() {
			cursor = i
		}
	}
	return settingsModel{deps: deps, locales: locales, orderedKeys: keys, cursor: cursor}
}

func (m settingsModel) Init() tea.Cmd { return nil }

func (m settingsModel) logoutCmd() tea.Cmd {
	sessions := m.deps.Sessions
	return func() tea.Msg {
		return logoutDoneMsg{err: sessions.Logout()}
	}
}

// exportCmd pulls the citizen's data from the API and writes the
// compressed archive into the working directory.
func (m settingsModel) exportCmd() tea.Cmd {
	apiClient := m.deps.API
	sessions := m.deps.Sessions
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		objects, err := apiClient.ListObjects(ctx)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		cases, err := apiClient.ListCases(ctx, "")
		if err != nil {
			return exportDoneMsg{err: err}
		}
		var user model.User
		if sess := sessions.Current(); sess != nil {
			user = sess.User
		}
		archive := export.Archive{
			GeneratedAt: time.Now(),
			User:        user,
			Objects:     objects,
			Cases:       cases,
		}
		path := export.DefaultFilename(time.Now())
		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		if err := export.Write(f, archive); err != nil {
			f.Close()
			return exportDoneMsg{err: err}
		}
		if err := f.Close(); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func (m settingsModel) Update(msg tea.Msg) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case logoutDoneMsg:
		if msg.err != nil {
			// The in-memory session is gone either way; surface the file
			// problem but still fall back to login.
			logging.Warnf("session file not removed: %v", msg.err)
		}
		return m, func() tea.Msg { return loggedOutMsg{} }

	case exportDoneMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.notice = i18n.Tf("export.done", map[string]any{"Path": msg.path})
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.orderedKeys)-1 {
				m.cursor++
			}
		case "enter":
			langCode := m.orderedKeys[m.cursor]
			i18n.SetLang(langCode)
			if m.deps.SaveConfig != nil {
				if err := m.deps.SaveConfig(); err != nil {
					logging.Warnf("language preference not saved: %v", err)
				}
			}
			return m, func() tea.Msg { return languageChangedMsg{} }
		case "e":
			m.errMsg = ""
			m.notice = i18n.T("export.running")
			return m, m.exportCmd()
		case "l":
			return m, m.logoutCmd()
		}
	}
	return m, nil
}

func (m settingsModel) View() string {
	s := titleStyle.Render(i18n.T("settings.title")) + "\n\n"
	s += i18n.T("settings.language") + "\n"
	for i, code := range m.orderedKeys {
		line := m.locales[code]
		if code == i18n.GetLang() {
			line += " ✓"
		}
		if i == m.cursor {
			s += selectedItemStyle.Render("> "+line) + "\n"
		} else {
			s += itemStyle.Render("  "+line) + "\n"
		}
	}
	if m.errMsg != "" {
		s += "\n" + errorStyle.Render(m.errMsg) + "\n"
	} else if m.notice != "" {
		s += "\n" + successStyle.Render(m.notice) + "\n"
	}
	s += "\n" + helpStyle.Render(i18n.T("settings.help"))
	return s
}
