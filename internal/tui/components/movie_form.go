package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// FormAction is what a key press asked the form to do
type FormAction int

const (
	FormNone FormAction = iota
	FormSubmit
	FormLeave // focus goes back to the list, the draft is kept
)

var formLabels = [...]string{
	catalog.FieldTitle:  "Title",
	catalog.FieldYear:   "Year",
	catalog.FieldPoster: "Poster",
}

// MovieForm renders the three inputs behind a catalog.Draft
type MovieForm struct {
	inputs  [3]textinput.Model
	focus   catalog.Field
	focused bool
	editing bool
	errors  map[catalog.Field]string
	width   int
}

// NewMovieForm creates an empty form in create mode
func NewMovieForm() MovieForm {
	var f MovieForm
	placeholders := [...]string{"The Matrix", "1999", "https://..."}
	limits := [...]int{120, 4, 500}

	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Width = 30
		ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
		ti.PlaceholderStyle = styles.DimStyle
		f.inputs[i] = ti
	}
	f.errors = map[catalog.Field]string{}
	return f
}

// Load copies draft values into the inputs and clears errors
func (f *MovieForm) Load(d catalog.Draft) {
	f.inputs[catalog.FieldTitle].SetValue(d.Title)
	f.inputs[catalog.FieldYear].SetValue(d.Year)
	f.inputs[catalog.FieldPoster].SetValue(d.Poster)
	f.editing = d.IsEditing()
	f.errors = map[catalog.Field]string{}
}

// Apply writes the input values into the draft
func (f MovieForm) Apply(d *catalog.Draft) {
	d.Title = f.inputs[catalog.FieldTitle].Value()
	d.Year = f.inputs[catalog.FieldYear].Value()
	d.Poster = f.inputs[catalog.FieldPoster].Value()
}

// SetErrors shows per-field validation messages
func (f *MovieForm) SetErrors(errs map[catalog.Field]string) {
	f.errors = errs
	// Jump to the first broken field
	for i := range f.inputs {
		if _, ok := errs[catalog.Field(i)]; ok {
			f.focusField(catalog.Field(i))
			return
		}
	}
}

// Focus moves keyboard focus into the form, on the first field
func (f *MovieForm) Focus() tea.Cmd {
	f.focused = true
	return f.focusField(catalog.FieldTitle)
}

// Blur removes keyboard focus from the form
func (f *MovieForm) Blur() {
	f.focused = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// Focused reports whether the form owns keyboard input
func (f MovieForm) Focused() bool {
	return f.focused
}

// SetWidth sets the width of the input boxes
func (f *MovieForm) SetWidth(width int) {
	f.width = width
	for i := range f.inputs {
		f.inputs[i].Width = max(10, width-12)
	}
}

func (f *MovieForm) focusField(field catalog.Field) tea.Cmd {
	f.focus = field
	var cmd tea.Cmd
	for i := range f.inputs {
		if catalog.Field(i) == field && f.focused {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

// Update handles input events, returns (form, cmd, action)
func (f MovieForm) Update(msg tea.Msg) (MovieForm, tea.Cmd, FormAction) {
	if !f.focused {
		return f, nil, FormNone
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return f, nil, FormLeave
		case "ctrl+s":
			return f, nil, FormSubmit
		case "enter":
			if f.focus == catalog.FieldPoster {
				return f, nil, FormSubmit
			}
			return f, f.focusField(f.focus + 1), FormNone
		case "tab", "down":
			return f, f.focusField((f.focus + 1) % 3), FormNone
		case "shift+tab", "up":
			return f, f.focusField((f.focus + 2) % 3), FormNone
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, FormNone
}

// View renders the form panel. disabled greys out the save button.
func (f MovieForm) View(disabled bool) string {
	heading := "Add movie"
	if f.editing {
		heading = "Edit movie"
	}

	var lines []string
	lines = append(lines, styles.ModalTitleStyle.Render(heading))

	for i, input := range f.inputs {
		field := catalog.Field(i)
		label := styles.LabelStyle.Render(formLabels[field])
		if f.focused && field == f.focus {
			label = styles.LabelFocusedStyle.Render(formLabels[field])
		}
		lines = append(lines, label+input.View())
		if msg, ok := f.errors[field]; ok {
			lines = append(lines, strings.Repeat(" ", 8)+styles.ErrorStyle.Render(msg))
		} else {
			lines = append(lines, "")
		}
	}

	button := styles.ButtonStyle.Render("Save")
	hint := styles.DimStyle.Render("  enter on poster / ctrl+s")
	if disabled {
		button = styles.ButtonDisabledStyle.Render("Save")
		hint = styles.DimStyle.Render("  waiting for catalog...")
	}
	lines = append(lines, button+hint)
	if f.focused {
		lines = append(lines, styles.DimStyle.Render("tab next field · esc back to list"))
	}

	border := styles.InactiveBorder
	if f.focused {
		border = styles.ActiveBorder
	}
	return border.Width(max(20, f.width-2)).Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
