package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// ConfirmModal is a yes/no prompt
type ConfirmModal struct {
	visible bool
	title   string
	body    string
}

// NewConfirmModal creates a new confirm modal
func NewConfirmModal() ConfirmModal {
	return ConfirmModal{}
}

// Show displays the modal
func (m *ConfirmModal) Show(title, body string) {
	m.visible = true
	m.title = title
	m.body = body
}

// Hide dismisses the modal
func (m *ConfirmModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m ConfirmModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, confirmed).
// Any answer hides the modal.
func (m *ConfirmModal) HandleKey(key string) (handled bool, confirmed bool) {
	if !m.visible {
		return false, false
	}

	switch key {
	case "y", "Y":
		m.Hide()
		return true, true
	case "n", "N", "esc":
		m.Hide()
		return true, false
	}
	// Swallow everything else while open
	return true, false
}

// View renders the modal
func (m ConfirmModal) View() string {
	if !m.visible {
		return ""
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.ModalTitleStyle.Render(m.title),
		styles.SubtitleStyle.Render(m.body),
		"",
		styles.AccentStyle.Render("[Y]")+styles.DimStyle.Render(" Yes      ")+
			styles.AccentStyle.Render("[N]")+styles.DimStyle.Render(" No"),
	)

	return styles.ModalStyle.Render(content)
}
