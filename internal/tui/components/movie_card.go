package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// RenderMovieCard renders one movie as a bordered card.
// The selected card shows its edit and delete affordances.
func RenderMovieCard(movie domain.Movie, selected bool, width int) string {
	inner := max(10, width-4)

	title := styles.TitleStyle.Render(styles.Truncate(movie.Title, inner-7))
	year := styles.AccentStyle.Render(fmt.Sprintf(" (%d)", movie.Year))
	poster := styles.DimStyle.Render(styles.Truncate(movie.PosterURL, inner))

	actions := styles.DimStyle.Render(" ")
	style := styles.CardStyle
	if selected {
		actions = styles.AccentStyle.Render("e") + styles.DimStyle.Render(" edit  ") +
			styles.AccentStyle.Render("x") + styles.DimStyle.Render(" delete")
		style = styles.CardSelectedStyle
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title+year, poster, actions)
	return style.Width(inner + 2).Render(content)
}
