// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/acheiapp/achei/internal/i18n"
	"github.com/acheiapp/achei/internal/logging"
	"github.com/acheiapp/achei/internal/model"
	"github.com/acheiapp/achei/internal/store"
)

type casesLoadedMsg struct {
	cases   []model.Case
	offline bool
	err     error
}

type caseStatusUpdatedMsg struct {
	protocol string
	status   model.CaseStatus
	err      error
}

type protocolCopiedMsg struct {
	err error
}

// casesModel lists theft/loss cases. Citizens see their own cases; officers
// see the precinct queue and can advance case statuses.
type casesModel struct {
	deps    Deps
	officer bool

	loading bool
	offline bool
	cases   []model.Case
	cursor  int
	filter  model.CaseStatus
	errMsg  string
	notice  string
}

func newCasesModel(deps Deps, officer bool) casesModel {
	return casesModel{deps: deps, officer: officer, loading: true}
}

// loadCasesCmd fetches from the API and refreshes the local cache. When the
// API is unreachable the cache serves a stale copy, flagged as offline.
func loadCasesCmd(apiClient interface {
	ListCases(ctx context.Context, status model.CaseStatus) ([]model.Case, error)
}, cache store.Store, filter model.CaseStatus) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		cases, err := apiClient.ListCases(ctx, filter)
		if err == nil {
			if cache != nil && filter == "" {
				if cerr := cache.ReplaceCachedCases(ctx, cases); cerr != nil {
					logging.Warnf("case cache not refreshed: %v", cerr)
				}
			}
			return casesLoadedMsg{cases: cases}
		}

		if cache == nil {
			return casesLoadedMsg{err: err}
		}
		cached, cerr := cache.ListCachedCases(ctx)
		if cerr != nil || len(cached) == 0 {
			return casesLoadedMsg{err: err}
		}
		if filter != "" {
			filtered := cached[:0]
			for _, c := range cached {
				if c.Status == filter {
					filtered = append(filtered, c)
				}
			}
			cached = filtered
		}
		return casesLoadedMsg{cases: cached, offline: true}
	}
}

func (m casesModel) Init() tea.Cmd {
	return loadCasesCmd(m.deps.API, m.deps.Cache, m.filter)
}

func (m casesModel) updateStatusCmd(protocol string, status model.CaseStatus) tea.Cmd {
	apiClient := m.deps.API
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		err := apiClient.UpdateCaseStatus(ctx, protocol, status)
		return caseStatusUpdatedMsg{protocol: protocol, status: status, err: err}
	}
}

func copyProtocolCmd(protocol string) tea.Cmd {
	return func() tea.Msg {
		return protocolCopiedMsg{err: clipboard.WriteAll(protocol)}
	}
}

func (m casesModel) Update(msg tea.Msg) (casesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case casesLoadedMsg:
		m.loading = false
		m.offline = msg.offline
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.cases = msg.cases
		if m.cursor >= len(m.cases) {
			m.cursor = 0
		}
		return m, nil

	case caseStatusUpdatedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.notice = i18n.Tf("cases.status_updated", map[string]any{
			"Protocol": msg.protocol,
			"Status":   string(msg.status),
		})
		m.loading = true
		return m, m.Init()

	case protocolCopiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.notice = i18n.T("cases.copied")
		}
		return m, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "esc", "q":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.cases)-1 {
				m.cursor++
			}
		case "c":
			if len(m.cases) > 0 {
				return m, copyProtocolCmd(m.cases[m.cursor].Protocol)
			}
		case "f":
			m.filter = nextFilter(m.filter)
			m.loading = true
			m.errMsg = ""
			m.notice = ""
			return m, m.Init()
		case "r":
			m.loading = true
			m.errMsg = ""
			m.notice = ""
			return m, m.Init()
		case "1", "2", "3", "4", "5":
			if !m.officer || len(m.cases) == 0 {
				return m, nil
			}
			statuses := model.AllStatuses()
			idx := int(key[0] - '1')
			if idx >= len(statuses) {
				return m, nil
			}
			m.errMsg = ""
			m.notice = ""
			return m, m.updateStatusCmd(m.cases[m.cursor].Protocol, statuses[idx])
		}
	}
	return m, nil
}

// nextFilter cycles no-filter and each known status.
func nextFilter(cur model.CaseStatus) model.CaseStatus {
	statuses := model.AllStatuses()
	if cur == "" {
		return statuses[0]
	}
	for i, s := range statuses {
		if s == cur {
			if i == len(statuses)-1 {
				return ""
			}
			return statuses[i+1]
		}
	}
	return ""
}

func (m casesModel) View() string {
	title := i18n.T("cases.title")
	if m.officer {
		title = i18n.T("cases.police_title")
	}
	s := titleStyle.Render(title) + "\n\n"
	if m.loading {
		return s + i18n.T("common.loading")
	}
	if m.offline {
		s += specialStyle.Render(i18n.T("common.offline")) + "\n\n"
	}
	if m.errMsg != "" {
		s += errorStyle.Render(m.errMsg) + "\n\n"
	}
	if m.notice != "" {
		s += successStyle.Render(m.notice) + "\n\n"
	}
	if m.filter != "" {
		s += helpStyle.Render(i18n.T("cases.filter")+": "+string(m.filter)) + "\n\n"
	}
	if len(m.cases) == 0 {
		s += i18n.T("cases.empty") + "\n"
	}
	for i, c := range m.cases {
		line := fmt.Sprintf("%s  %-12s  %s (%s)", c.Protocol, c.Status, c.ObjectName, c.Neighborhood)
		if i == m.cursor {
			s += selectedItemStyle.Render("> "+line) + "\n"
		} else {
			s += itemStyle.Render("  "+line) + "\n"
		}
	}
	if m.officer {
		s += "\n" + helpStyle.Render(i18n.T("cases.help.police"))
	} else {
		s += "\n" + helpStyle.Render(i18n.T("cases.help"))
	}
	return s
}
