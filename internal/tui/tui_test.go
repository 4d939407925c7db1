// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/acheiapp/achei/internal/i18n"
	"github.com/acheiapp/achei/internal/model"
	"github.com/acheiapp/achei/internal/session"
)

func testDeps(t *testing.T) Deps {
	t.Helper()
	store := session.NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
	return Deps{Sessions: session.NewManager(store)}
}

func citizenSession() model.Session {
	return model.Session{
		Token: "tok-1",
		User:  model.User{ID: 1, Name: "Maria Silva", Document: "111.444.777-35", Type: model.UserCitizen},
	}
}

func officerSession() model.Session {
	return model.Session{
		Token: "tok-2",
		User:  model.User{ID: 2, Name: "Sgt. Souza", Document: "PM-12345", Type: model.UserOfficer},
	}
}

func TestGuard_ChecksBeforeRouting(t *testing.T) {
	i18n.Init("en")
	m := newMainModel(testDeps(t))

	if m.state != checkingView {
		t.Fatalf("expected checkingView initially, got %v", m.state)
	}
	view := m.View()
	if !strings.Contains(view, i18n.T("session.loading")) {
		t.Errorf("checking view should show the loading line, got %q", view)
	}
	// Nothing protected and no login form may render while unresolved.
	if strings.Contains(view, i18n.T("menu.dashboard")) {
		t.Error("protected menu leaked into the checking view")
	}
	if strings.Contains(view, i18n.T("login.password")) {
		t.Error("login form rendered before the session resolved")
	}
}

func TestGuard_AnonymousGoesToLogin(t *testing.T) {
	i18n.Init("en")
	m := newMainModel(testDeps(t))

	mi, _ := m.Update(sessionResolvedMsg{sess: nil})
	m = mi.(mainModel)
	if m.state != loginView {
		t.Fatalf("expected loginView for anonymous resolve, got %v", m.state)
	}
}

func TestGuard_ResolvedSessionOpensPortal(t *testing.T) {
	i18n.Init("en")

	tests := []struct {
		name string
		sess model.Session
		want viewState
	}{
		{"citizen", citizenSession(), citizenMenuView},
		{"officer", officerSession(), policeMenuView},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMainModel(testDeps(t))
			sess := tt.sess
			mi, _ := m.Update(sessionResolvedMsg{sess: &sess})
			m = mi.(mainModel)
			if m.state != tt.want {
				t.Fatalf("expected state %v, got %v", tt.want, m.state)
			}
		})
	}
}

func TestGuard_LateResolveDoesNotUnseatPortal(t *testing.T) {
	i18n.Init("en")
	m := newMainModel(testDeps(t))
	sess := citizenSession()

	mi, _ := m.Update(sessionResolvedMsg{sess: &sess})
	m = mi.(mainModel)
	mi, _ = m.Update(sessionResolvedMsg{sess: nil})
	m = mi.(mainModel)
	if m.state != citizenMenuView {
		t.Fatalf("duplicate resolve changed state to %v", m.state)
	}
}

func TestLogout_ReturnsToLogin(t *testing.T) {
	i18n.Init("en")
	deps := testDeps(t)
	if err := deps.Sessions.Login(citizenSession()); err != nil {
		t.Fatal(err)
	}
	m := newMainModel(deps)
	sess := deps.Sessions.Current()

	mi, _ := m.Update(sessionResolvedMsg{sess: sess})
	m = mi.(mainModel)
	mi, _ = m.Update(loggedOutMsg{})
	m = mi.(mainModel)
	if m.state != loginView {
		t.Fatalf("expected loginView after logout, got %v", m.state)
	}
}

func TestLogin_ValidationBeforeNetwork(t *testing.T) {
	i18n.Init("en")
	// No API client is wired; reaching the network would panic, so this
	// also proves invalid input never leaves the form.
	m := newLoginModel(Deps{})
	m.inputs[loginFieldIdentifier].SetValue("111.444.777-35")
	m.inputs[loginFieldPassword].SetValue("")
	m.focused = loginFieldPassword

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("expected no command for invalid input")
	}
	if want := i18n.T("login.error.password_required"); m.errMsg != want {
		t.Errorf("expected %q, got %q", want, m.errMsg)
	}
	if m.submitting {
		t.Error("form must not enter submitting state on validation failure")
	}
}

func TestLogin_BadCPFRejectedLocally(t *testing.T) {
	i18n.Init("en")
	m := newLoginModel(Deps{})
	m.inputs[loginFieldIdentifier].SetValue("123.456.789-00")
	m.inputs[loginFieldPassword].SetValue("senha123")
	m.focused = loginFieldPassword

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("expected no command for an invalid CPF")
	}
	if want := i18n.T("login.error.invalid_cpf"); m.errMsg != want {
		t.Errorf("expected %q, got %q", want, m.errMsg)
	}
}

func TestLogin_IgnoresKeysWhileSubmitting(t *testing.T) {
	i18n.Init("en")
	m := newLoginModel(Deps{})
	m.submitting = true

	m2, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("a second enter while submitting must not start another request")
	}
	if !m2.submitting {
		t.Error("submitting flag dropped by a stray key")
	}
}

func TestLogin_SuccessSchedulesNavigation(t *testing.T) {
	i18n.Init("en")
	m := newLoginModel(Deps{})
	m.submitting = true

	m, cmd := m.Update(loginResultMsg{})
	if !m.succeeded {
		t.Error("expected success state")
	}
	if cmd == nil {
		t.Fatal("expected a delayed navigation command")
	}
	if !strings.Contains(m.View(), i18n.T("login.success")) {
		t.Error("success banner missing from the view")
	}
}

func TestLogin_TabTogglesPortal(t *testing.T) {
	i18n.Init("en")
	m := newLoginModel(Deps{})
	if m.userType != model.UserCitizen {
		t.Fatalf("expected citizen default, got %v", m.userType)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.userType != model.UserOfficer {
		t.Fatalf("expected officer after tab, got %v", m.userType)
	}
	if ph := m.inputs[loginFieldIdentifier].Placeholder; ph != i18n.T("login.matricula") {
		t.Errorf("placeholder not updated, got %q", ph)
	}
}

func TestMenu_EntriesPerUserType(t *testing.T) {
	i18n.Init("en")

	citizen := newMenuModel(citizenSession().User)
	for _, e := range citizen.entries {
		if e.id == menuPoliceCases || e.id == menuReports {
			t.Errorf("citizen menu must not contain %q", e.id)
		}
	}

	officer := newMenuModel(officerSession().User)
	var hasQueue, hasDashboard bool
	for _, e := range officer.entries {
		if e.id == menuPoliceCases {
			hasQueue = true
		}
		if e.id == menuDashboard {
			hasDashboard = true
		}
	}
	if !hasQueue {
		t.Error("officer menu missing the district case queue")
	}
	if hasDashboard {
		t.Error("officer menu must not contain the citizen dashboard")
	}
}

func TestMenu_EnterSelectsEntry(t *testing.T) {
	i18n.Init("en")
	m := newMenuModel(citizenSession().User)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a selection command")
	}
	msg, ok := cmd().(menuSelectedMsg)
	if !ok {
		t.Fatalf("expected menuSelectedMsg, got %T", cmd())
	}
	if msg.id != m.entries[0].id {
		t.Errorf("expected %q, got %q", m.entries[0].id, msg.id)
	}
}

func TestObjectForm_DraftWithoutCacheFails(t *testing.T) {
	i18n.Init("en")
	m := newObjectFormModel(Deps{})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("ctrl+s produced no command")
	}
	saved, ok := cmd().(draftSavedMsg)
	if !ok {
		t.Fatal("expected a draftSavedMsg")
	}
	if saved.err == nil {
		t.Fatal("draft reported saved although no cache is wired")
	}

	m, _ = m.Update(saved)
	if m.notice != "" {
		t.Errorf("success notice shown without a cache: %q", m.notice)
	}
	if m.errMsg == "" {
		t.Error("expected the cache-unavailable message")
	}
}

func TestCases_StatusKeysIgnoredForCitizens(t *testing.T) {
	i18n.Init("en")
	m := newCasesModel(Deps{}, false)
	m.loading = false
	m.cases = []model.Case{{Protocol: "BO-2026-0001", Status: model.StatusAnalysis}}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	if cmd != nil {
		t.Fatal("citizens must not be able to change case status")
	}
}

func TestNextFilter_CyclesThroughStatuses(t *testing.T) {
	seen := map[model.CaseStatus]bool{}
	cur := model.CaseStatus("")
	for i := 0; i <= len(model.AllStatuses()); i++ {
		cur = nextFilter(cur)
		if cur == "" {
			break
		}
		seen[cur] = true
	}
	if cur != "" {
		t.Fatalf("filter cycle did not return to no-filter, stuck at %q", cur)
	}
	if len(seen) != len(model.AllStatuses()) {
		t.Errorf("cycle visited %d statuses, want %d", len(seen), len(model.AllStatuses()))
	}
}

func TestRenderGrid_MarksDensestCell(t *testing.T) {
	points := []model.MapPoint{
		{Latitude: -23.55, Longitude: -46.63, Weight: 9},
		{Latitude: -23.55, Longitude: -46.63, Weight: 9},
		{Latitude: -23.50, Longitude: -46.60, Weight: 1},
	}
	grid := renderGrid(points)
	if !strings.ContainsRune(grid, '#') {
		t.Error("densest cell should use the strongest glyph")
	}
	if !strings.ContainsRune(grid, '\n') {
		t.Error("grid should span multiple rows")
	}
}

func TestRenderGrid_EmptyShowsPlaceholder(t *testing.T) {
	i18n.Init("en")
	if got := renderGrid(nil); got != i18n.T("map.empty") {
		t.Errorf("expected empty placeholder, got %q", got)
	}
}
