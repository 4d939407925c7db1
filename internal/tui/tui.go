// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

// This file, tui.go, is the main entry point for the portal TUI, containing
// the top-level model that acts as a router to all other sub-views. The
// router doubles as the auth guard: until the session manager resolves it
// renders a neutral checking screen, then it routes to the login view or to
// the portal matching the user type. Protected views are never constructed
// while the session is unresolved or absent.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/acheiapp/achei/internal/api"
	"github.com/acheiapp/achei/internal/cep"
	"github.com/acheiapp/achei/internal/i18n"
	"github.com/acheiapp/achei/internal/logging"
	"github.com/acheiapp/achei/internal/model"
	"github.com/acheiapp/achei/internal/session"
	"github.com/acheiapp/achei/internal/store"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	// checkingView is the guard state while the session store is read.
	checkingView viewState = iota
	loginView
	citizenMenuView
	dashboardView
	objectsView
	objectFormView
	casesView
	mapView
	notificationsView
	settingsView
	policeMenuView
	reportsView
)

// Deps bundles the injected collaborators. There are no package-level
// singletons; everything the views need comes through here.
type Deps struct {
	Sessions *session.Manager
	API      *api.Client
	CEP      *cep.Client
	// Cache may be nil when the local database could not be opened; views
	// then skip offline fallbacks.
	Cache store.Store
	// SaveConfig persists the current preferences (language) to the config
	// file. Nil when the caller has no persisted configuration.
	SaveConfig func() error
}

// sessionResolvedMsg carries the guard decision input: the session loaded
// from durable storage, or nil for anonymous.
type sessionResolvedMsg struct {
	sess *model.Session
}

// loginNavigateMsg signals that the post-login success banner has been
// shown long enough and the portal should open.
type loginNavigateMsg struct{}

// loggedOutMsg signals that the session was cleared and the UI must fall
// back to the login screen.
type loggedOutMsg struct{}

// languageChangedMsg signals that the language changed and menus must be
// rebuilt with fresh translations.
type languageChangedMsg struct{}

// backToMenuMsg returns from a sub-view to the active portal menu.
type backToMenuMsg struct{}

// mainModel is the top-level model for the TUI. It acts as a state machine
// and router, delegating updates and view rendering to the currently active
// sub-model.
type mainModel struct {
	deps  Deps
	state viewState

	login         loginModel
	menu          menuModel
	dashboard     dashboardModel
	objects       objectsModel
	objectForm    objectFormModel
	cases         casesModel
	mapview       mapModel
	notifications notificationsModel
	settings      settingsModel
	reports       reportsModel

	width  int
	height int
}

func newMainModel(deps Deps) mainModel {
	return mainModel{
		deps:  deps,
		state: checkingView,
		login: newLoginModel(deps),
	}
}

func (m mainModel) Init() tea.Cmd {
	return resolveSessionCmd(m.deps.Sessions)
}

// resolveSessionCmd performs the one-time durable read off the UI loop.
func resolveSessionCmd(mgr *session.Manager) tea.Cmd {
	return func() tea.Msg {
		mgr.Resolve()
		return sessionResolvedMsg{sess: mgr.Current()}
	}
}

// portalFor maps the session's user type to its menu state.
func portalFor(sess *model.Session) viewState {
	if sess != nil && sess.User.Type == model.UserOfficer {
		return policeMenuView
	}
	return citizenMenuView
}

// enterPortal routes to the menu for the given session. This is the single
// door into protected views; a nil session falls back to the login view.
func (m mainModel) enterPortal(sess *model.Session) (mainModel, tea.Cmd) {
	if sess == nil {
		m.state = loginView
		m.login = newLoginModel(m.deps)
		return m, m.login.Init()
	}
	m.state = portalFor(sess)
	m.menu = newMenuModel(sess.User)
	return m, nil
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case sessionResolvedMsg:
		// Guard decision. Never taken before the resolve completes, so a
		// protected view cannot flash while loading.
		if m.state != checkingView {
			return m, nil
		}
		if msg.sess == nil {
			m.state = loginView
			return m, m.login.Init()
		}
		return m.enterPortal(msg.sess)

	case loginNavigateMsg:
		return m.enterPortal(m.deps.Sessions.Current())

	case loggedOutMsg:
		m.state = loginView
		m.login = newLoginModel(m.deps)
		return m, m.login.Init()

	case languageChangedMsg:
		// Rebuild the menu with the new translations; stay on settings.
		if sess := m.deps.Sessions.Current(); sess != nil {
			m.menu = newMenuModel(sess.User)
		}
		return m, nil

	case backToMenuMsg:
		m.state = portalFor(m.deps.Sessions.Current())
		return m, nil

	case menuSelectedMsg:
		return m.openMenuEntry(msg.id)
	}

	return m.updateActive(msg)
}

// openMenuEntry switches to the chosen sub-view and kicks off its loads.
func (m mainModel) openMenuEntry(id string) (tea.Model, tea.Cmd) {
	deps := m.deps
	switch id {
	case menuDashboard:
		m.state = dashboardView
		m.dashboard = newDashboardModel(deps)
		return m, m.dashboard.Init()
	case menuObjects:
		m.state = objectsView
		m.objects = newObjectsModel(deps)
		return m, m.objects.Init()
	case menuObjectForm:
		m.state = objectFormView
		m.objectForm = newObjectFormModel(deps)
		return m, m.objectForm.Init()
	case menuCases:
		m.state = casesView
		m.cases = newCasesModel(deps, false)
		return m, m.cases.Init()
	case menuPoliceCases:
		m.state = casesView
		m.cases = newCasesModel(deps, true)
		return m, m.cases.Init()
	case menuMap:
		m.state = mapView
		m.mapview = newMapModel(deps)
		return m, m.mapview.Init()
	case menuNotifications:
		m.state = notificationsView
		m.notifications = newNotificationsModel(deps)
		return m, m.notifications.Init()
	case menuReports:
		m.state = reportsView
		m.reports = newReportsModel(deps)
		return m, m.reports.Init()
	case menuSettings:
		m.state = settingsView
		m.settings = newSettingsModel(deps)
		return m, m.settings.Init()
	case menuQuit:
		return m, tea.Quit
	}
	logging.Warnf("tui: unknown menu entry %q", id)
	return m, nil
}

// updateActive delegates to the sub-model for the current state.
func (m mainModel) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case loginView:
		m.login, cmd = m.login.Update(msg)
	case citizenMenuView, policeMenuView:
		m.menu, cmd = m.menu.Update(msg)
	case dashboardView:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case objectsView:
		m.objects, cmd = m.objects.Update(msg)
	case objectFormView:
		m.objectForm, cmd = m.objectForm.Update(msg)
	case casesView:
		m.cases, cmd = m.cases.Update(msg)
	case mapView:
		m.mapview, cmd = m.mapview.Update(msg)
	case notificationsView:
		m.notifications, cmd = m.notifications.Update(msg)
	case settingsView:
		m.settings, cmd = m.settings.Update(msg)
	case reportsView:
		m.reports, cmd = m.reports.Update(msg)
	}
	return m, cmd
}

func (m mainModel) View() string {
	var body string
	switch m.state {
	case checkingView:
		body = titleStyle.Render("Achei") + "\n" + i18n.T("session.loading")
	case loginView:
		body = m.login.View()
	case citizenMenuView, policeMenuView:
		body = m.menu.View()
	case dashboardView:
		body = m.dashboard.View()
	case objectsView:
		body = m.objects.View()
	case objectFormView:
		body = m.objectForm.View()
	case casesView:
		body = m.cases.View()
	case mapView:
		body = m.mapview.View()
	case notificationsView:
		body = m.notifications.View()
	case settingsView:
		body = m.settings.View()
	case reportsView:
		body = m.reports.View()
	}
	return docStyle.Render(body)
}

// Run starts the portal TUI and blocks until the user quits.
func Run(deps Deps) error {
	p := tea.NewProgram(newMainModel(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// statusBar renders the session line shown at the bottom of portal views.
func statusBar(sess *model.Session) string {
	if sess == nil {
		return ""
	}
	label := i18n.T("login.cpf")
	if sess.User.Type == model.UserOfficer {
		label = i18n.T("login.matricula")
	}
	return statusBarStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Top, sess.User.Name, "  ·  ", label, " ", sess.User.Document),
	)
}
