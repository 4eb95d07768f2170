package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Profile shows the signed-in user and offers logout
type Profile struct {
	store    domain.Store
	sessions SessionPersister
	confirm  components.ConfirmModal
}

// NewProfile creates a profile screen
func NewProfile(store domain.Store, sessions SessionPersister) Profile {
	return Profile{store: store, sessions: sessions, confirm: components.NewConfirmModal()}
}

// Capturing reports whether the logout prompt is open
func (p Profile) Capturing() bool {
	return p.confirm.IsVisible()
}

// Update handles profile keys
func (p Profile) Update(msg tea.Msg) (Profile, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if p.confirm.IsVisible() {
		if _, confirmed := p.confirm.HandleKey(keyMsg.String()); confirmed {
			return p, LogoutCmd(p.store, p.sessions)
		}
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, Keys.Logout):
		p.confirm.Show("Log out?", "This clears your session and cached catalog.")
	case key.Matches(keyMsg, Keys.Back):
		return p, NavigateCmd(RouteDashboard)
	}
	return p, nil
}

// View renders the profile card
func (p Profile) View(width, height int) string {
	if p.confirm.IsVisible() {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, p.confirm.View())
	}

	session, _ := p.store.GetSession()
	movies, loaded := p.store.GetMovies()

	row := func(label, value string) string {
		return styles.LabelStyle.Width(10).Render(label) + styles.TitleStyle.Render(value)
	}

	catalogLine := "not loaded"
	if loaded {
		catalogLine = pluralize(len(movies), "movie", "movies")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Profile"),
		row("User", session.Username),
		row("User ID", session.UserID),
		row("Catalog", catalogLine),
		"",
		styles.AccentStyle.Render("L")+styles.DimStyle.Render(" log out   ")+
			styles.AccentStyle.Render("b")+styles.DimStyle.Render(" back to catalog"),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styles.ModalStyle.Render(content))
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
