package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/config"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Vertical chrome: header line plus footer line
const ChromeHeight = 2

// SessionPersister keeps the session across program runs
type SessionPersister interface {
	SaveSession(session domain.Session) error
	ClearSession() error
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Routing
	Route    Route
	gate     Gate
	returnTo Route // Where to go after a redirected login
	Ready    bool

	// Services
	CatalogSvc *catalog.Service
	Auth       domain.AuthRepository
	Store      domain.Store
	Sessions   SessionPersister
	ui         config.UIConfig

	// Screens
	Dashboard Dashboard
	Login     Login
	Profile   Profile

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
	ShowHelp    bool
	help        help.Model
}

// NewModel creates a new application model. The first route is resolved
// through the gate, so a missing session starts on the login screen.
func NewModel(
	catalogSvc *catalog.Service,
	auth domain.AuthRepository,
	store domain.Store,
	sessions SessionPersister,
	ui config.UIConfig,
) Model {
	m := Model{
		gate:       NewGate(store),
		CatalogSvc: catalogSvc,
		Auth:       auth,
		Store:      store,
		Sessions:   sessions,
		ui:         ui,
		Dashboard:  NewDashboard(catalogSvc, ui),
		Login:      NewLogin(auth),
		Profile:    NewProfile(store, sessions),
		help:       help.New(),
	}
	m.navigate(RouteDashboard)
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	if m.Route == RouteLogin {
		return nil
	}
	return m.Dashboard.Init()
}

// navigate asks the gate for target and applies its decision
func (m *Model) navigate(target Route) tea.Cmd {
	decision := m.gate.Check(target)
	m.Route = decision.Route

	if decision.Redirect {
		m.returnTo = decision.From
		return m.Login.Reset()
	}
	return nil
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.help.Width = msg.Width
		m.Dashboard.SetSize(msg.Width, msg.Height-ChromeHeight)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case NavigateMsg:
		cmd := m.navigate(msg.Route)
		return m, cmd

	case LoginResultMsg:
		if msg.Error != nil {
			m.Login.Fail(msg.Error)
			return m, nil
		}
		m.Store.SaveSession(*msg.Session)
		if m.Sessions != nil {
			if err := m.Sessions.SaveSession(*msg.Session); err != nil {
				m.StatusMsg = fmt.Sprintf("Signed in, but the session was not saved: %v", err)
				m.StatusIsErr = true
				cmds = append(cmds, ClearStatusCmd(5*time.Second))
			}
		}
		target := m.returnTo
		if target == RouteLogin {
			target = RouteDashboard
		}
		cmds = append(cmds, m.navigate(target), m.Dashboard.StartLoad())
		return m, tea.Batch(cmds...)

	case LogoutCompleteMsg:
		if msg.Error != nil {
			m.StatusMsg = fmt.Sprintf("Logout failed: %v", msg.Error)
			m.StatusIsErr = true
			return m, ClearStatusCmd(5 * time.Second)
		}
		m.Dashboard = NewDashboard(m.CatalogSvc, m.ui)
		m.Dashboard.SetSize(m.Width, m.Height-ChromeHeight)
		m.returnTo = RouteDashboard
		cmd := m.navigate(RouteDashboard)
		return m, cmd

	case MoviesLoadedMsg, spinner.TickMsg:
		var cmd tea.Cmd
		m.Dashboard, cmd = m.Dashboard.Update(msg)
		return m, cmd

	case MovieSavedMsg:
		m.Dashboard, _ = m.Dashboard.Update(msg)
		verb := "Added"
		if msg.Update {
			verb = "Updated"
		}
		m.StatusMsg = verb + ": " + msg.Movie.DisplayTitle()
		m.StatusIsErr = false
		return m, ClearStatusCmd(3 * time.Second)

	case MovieDeletedMsg:
		m.Dashboard, _ = m.Dashboard.Update(msg)
		m.StatusMsg = "Deleted: " + msg.Title
		m.StatusIsErr = false
		return m, ClearStatusCmd(3 * time.Second)

	case ErrMsg:
		m.Dashboard, _ = m.Dashboard.Update(msg)
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		cmds = append(cmds, ClearStatusCmd(5*time.Second))
		return m, tea.Batch(cmds...)

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		cmds = append(cmds, ClearStatusCmd(3*time.Second))
		return m, tea.Batch(cmds...)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m.delegate(msg)
}

// delegate forwards msg to the screen on the current route
func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.Route {
	case RouteDashboard:
		m.Dashboard, cmd = m.Dashboard.Update(msg)
	case RouteProfile:
		m.Profile, cmd = m.Profile.Update(msg)
	case RouteLogin:
		m.Login, cmd = m.Login.Update(msg)
	}
	return m, cmd
}

// capturing reports whether the current screen is consuming raw keys
func (m Model) capturing() bool {
	switch m.Route {
	case RouteDashboard:
		return m.Dashboard.Capturing()
	case RouteProfile:
		return m.Profile.Capturing()
	default:
		return true
	}
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}

	if !m.capturing() {
		switch {
		case key.Matches(msg, Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, Keys.Help):
			m.ShowHelp = true
			return m, nil
		}
	}

	return m.delegate(msg)
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	bodyHeight := m.Height - ChromeHeight
	var body string
	switch m.Route {
	case RouteDashboard:
		body = m.Dashboard.View()
	case RouteProfile:
		body = m.Profile.View(m.Width, bodyHeight)
	case RouteLogin:
		body = lipgloss.Place(m.Width, bodyHeight, lipgloss.Center, lipgloss.Center, m.Login.View())
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

// renderHeader renders the title bar with the profile link
func (m Model) renderHeader() string {
	left := styles.AccentStyle.Bold(true).Render("MARQUEE") + styles.DimStyle.Render("  movie catalog")

	var right string
	if session, ok := m.Store.GetSession(); ok {
		switch m.Route {
		case RouteDashboard:
			right = styles.LinkStyle.Render("@"+session.Username) + styles.DimStyle.Render(" (p)")
		case RouteProfile:
			right = styles.DimStyle.Render("@" + session.Username)
		}
	}

	gap := max(1, m.Width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.SuccessStyle.Render(m.StatusMsg)
		}
	} else if m.Route == RouteDashboard {
		left = m.help.ShortHelpView(Keys.ShortHelp())
	}

	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")
	if m.Route == RouteLogin {
		right = ""
	}

	gap := max(0, m.Width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Keys"),
		m.help.FullHelpView(Keys.FullHelp()),
		"",
		styles.DimStyle.Render("Press any key to return..."),
	)

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(content))
}
