// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/acheiapp/achei/internal/i18n"
	"github.com/acheiapp/achei/internal/model"
)

type reportsLoadedMsg struct {
	cases []model.Case
	err   error
}

// reportsModel shows the precinct workload summary: case counts per status
// and per neighborhood, derived from the full case list.
type reportsModel struct {
	deps Deps

	loading bool
	cases   []model.Case
	errMsg  string
}

func newReportsModel(deps Deps) reportsModel {
	return reportsModel{deps: deps, loading: true}
}

func (m reportsModel) Init() tea.Cmd {
	apiClient := m.deps.API
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		cases, err := apiClient.ListCases(ctx, "")
		return reportsLoadedMsg{cases: cases, err: err}
	}
}

func (m reportsModel) Update(msg tea.Msg) (reportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.cases = msg.cases
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "r":
			m.loading = true
			m.errMsg = ""
			return m, m.Init()
		}
	}
	return m, nil
}

func (m reportsModel) View() string {
	s := titleStyle.Render(i18n.T("reports.title")) + "\n\n"
	if m.loading {
		return s + i18n.T("common.loading")
	}
	if m.errMsg != "" {
		return s + errorStyle.Render(m.errMsg) + "\n"
	}

	s += specialStyle.Render(i18n.T("reports.by_status")) + "\n"
	byStatus := make(map[model.CaseStatus]int)
	for _, c := range m.cases {
		byStatus[c.Status]++
	}
	for _, status := range model.AllStatuses() {
		s += itemStyle.Render(fmt.Sprintf("%-12s %d", status, byStatus[status])) + "\n"
	}

	byHood := make(map[string]int)
	for _, c := range m.cases {
		if c.Neighborhood != "" {
			byHood[c.Neighborhood]++
		}
	}
	if len(byHood) > 0 {
		hoods := make([]string, 0, len(byHood))
		for h := range byHood {
			hoods = append(hoods, h)
		}
		sort.Slice(hoods, func(i, j int) bool {
			if byHood[hoods[i]] != byHood[hoods[j]] {
				return byHood[hoods[i]] > byHood[hoods[j]]
			}
			return hoods[i] < hoods[j]
		})
		s += "\n" + specialStyle.Render(i18n.T("reports.by_neighborhood")) + "\n"
		for _, h := range hoods {
			s += itemStyle.Render(fmt.Sprintf("%-20s %d", h, byHood[h])) + "\n"
		}
	}

	s += "\n" + helpStyle.Render(i18n.T("common.help.list"))
	return s
}
