package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Login is the sign-in screen the gate redirects to
type Login struct {
	auth       domain.AuthRepository
	username   textinput.Model
	password   textinput.Model
	submitting bool
	err        string
}

// NewLogin creates a login screen
func NewLogin(auth domain.AuthRepository) Login {
	username := textinput.New()
	username.Prompt = ""
	username.Placeholder = "username"
	username.PlaceholderStyle = styles.DimStyle
	username.CharLimit = 64
	username.Width = 28

	password := textinput.New()
	password.Prompt = ""
	password.Placeholder = "password"
	password.PlaceholderStyle = styles.DimStyle
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = 28

	l := Login{auth: auth, username: username, password: password}
	l.username.Focus()
	return l
}

// Reset clears the form and focuses the username
func (l *Login) Reset() tea.Cmd {
	l.username.SetValue("")
	l.password.SetValue("")
	l.password.Blur()
	l.submitting = false
	l.err = ""
	return l.username.Focus()
}

// Fail records a rejected attempt
func (l *Login) Fail(err error) {
	l.submitting = false
	l.password.SetValue("")
	switch {
	case errors.Is(err, domain.ErrAuthFailed):
		l.err = "Invalid username or password"
	case errors.Is(err, domain.ErrServerOffline):
		l.err = "Server is unreachable"
	default:
		l.err = err.Error()
	}
}

// Submitting reports whether a login request is in flight
func (l Login) Submitting() bool {
	return l.submitting
}

// Error returns the message shown under the form
func (l Login) Error() string {
	return l.err
}

// Update handles login messages
func (l Login) Update(msg tea.Msg) (Login, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if l.submitting {
			return l, nil
		}
		switch keyMsg.String() {
		case "tab", "shift+tab", "up", "down":
			cmd := l.toggleFocus()
			return l, cmd
		case "enter":
			if l.username.Focused() {
				cmd := l.toggleFocus()
				return l, cmd
			}
			return l.submit()
		}
	}

	var cmd tea.Cmd
	if l.password.Focused() {
		l.password, cmd = l.password.Update(msg)
	} else {
		l.username, cmd = l.username.Update(msg)
	}
	return l, cmd
}

func (l *Login) toggleFocus() tea.Cmd {
	if l.username.Focused() {
		l.username.Blur()
		return l.password.Focus()
	}
	l.password.Blur()
	return l.username.Focus()
}

func (l Login) submit() (Login, tea.Cmd) {
	username := strings.TrimSpace(l.username.Value())
	if username == "" || l.password.Value() == "" {
		l.err = "Username and password are required"
		return l, nil
	}

	l.submitting = true
	l.err = ""
	return l, LoginCmd(l.auth, username, l.password.Value())
}

// View renders the login form
func (l Login) View() string {
	label := func(text string, focused bool) string {
		if focused {
			return styles.LabelFocusedStyle.Width(10).Render(text)
		}
		return styles.LabelStyle.Width(10).Render(text)
	}

	lines := []string{
		styles.ModalTitleStyle.Render("Sign in to Marquee"),
		label("Username", l.username.Focused()) + l.username.View(),
		label("Password", l.password.Focused()) + l.password.View(),
		"",
	}

	switch {
	case l.submitting:
		lines = append(lines, styles.DimStyle.Render("Signing in..."))
	case l.err != "":
		lines = append(lines, styles.ErrorStyle.Render(l.err))
	default:
		lines = append(lines, styles.DimStyle.Render("enter to continue · tab to switch"))
	}

	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
