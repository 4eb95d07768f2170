package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/config"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/tui/components"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// Pane is the part of the dashboard that owns the keyboard
type Pane int

const (
	PaneList Pane = iota
	PaneSearch
	PaneForm
)

// Dashboard is the catalog view: a searchable, sortable, paged list of
// movie cards next to the create/edit form.
type Dashboard struct {
	svc      *catalog.Service
	pipeline *catalog.Pipeline

	movies      []domain.Movie
	query       catalog.Query
	page        catalog.Page
	suggestions []catalog.Suggestion
	cursor      int

	draft   catalog.Draft
	form    components.MovieForm
	search  textinput.Model
	confirm components.ConfirmModal
	pending *domain.Movie // Awaiting delete confirmation

	focus   Pane
	loading bool
	spinner spinner.Model

	width  int
	height int
}

// NewDashboard creates a dashboard. It starts in the loading state since
// its first Init always fetches the catalog.
func NewDashboard(svc *catalog.Service, ui config.UIConfig) Dashboard {
	search := textinput.New()
	search.Prompt = "/ "
	search.PromptStyle = styles.FilterPromptStyle
	search.Placeholder = "search titles"
	search.PlaceholderStyle = styles.DimStyle
	search.CharLimit = 100
	search.Width = 30

	d := Dashboard{
		svc:      svc,
		pipeline: catalog.NewPipeline(ui.Locale).WithPageSize(ui.PageSize),
		query:    catalog.Query{Sort: catalog.SortTitle, Page: 1},
		draft:    catalog.NewDraft(),
		form:     components.NewMovieForm(),
		search:   search,
		confirm:  components.NewConfirmModal(),
		loading:  true,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.SpinnerStyle)),
	}
	if movies, ok := svc.Movies(); ok {
		d.movies = movies
	}
	d.refresh()
	return d
}

// Init issues the fetch-all
func (d Dashboard) Init() tea.Cmd {
	return tea.Batch(LoadMoviesCmd(d.svc), d.spinner.Tick)
}

// StartLoad marks the view as loading and issues the fetch-all
func (d *Dashboard) StartLoad() tea.Cmd {
	d.loading = true
	return d.Init()
}

// Loading reports whether a fetch-all is pending
func (d Dashboard) Loading() bool {
	return d.loading
}

// Page returns the visible page
func (d Dashboard) Page() catalog.Page {
	return d.page
}

// Query returns the current search, sort, and page
func (d Dashboard) Query() catalog.Query {
	return d.query
}

// Draft returns the form draft
func (d Dashboard) Draft() catalog.Draft {
	return d.draft
}

// Suggestions returns the "did you mean" titles for an empty search result
func (d Dashboard) Suggestions() []catalog.Suggestion {
	return d.suggestions
}

// Capturing reports whether keys are going into a text input or modal
func (d Dashboard) Capturing() bool {
	return d.focus != PaneList || d.confirm.IsVisible()
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.form.SetWidth(d.formWidth())
	d.search.Width = max(10, d.listWidth()-14)
}

// refresh re-derives the visible page from the snapshot and query.
// A page left past the end by a shrinking result set is clamped.
func (d *Dashboard) refresh() {
	d.page = d.pipeline.Derive(d.movies, d.query)
	if clamped := catalog.Clamp(d.query.Page, d.page.TotalPages); clamped != d.query.Page {
		d.query.Page = clamped
		d.page = d.pipeline.Derive(d.movies, d.query)
	}

	if d.cursor >= len(d.page.Movies) {
		d.cursor = max(0, len(d.page.Movies)-1)
	}

	d.suggestions = nil
	if d.page.FilteredCount == 0 && strings.TrimSpace(d.query.Search) != "" {
		d.suggestions = catalog.Suggest(d.movies, d.query.Search)
	}
}

// syncFromStore re-reads the shared snapshot
func (d *Dashboard) syncFromStore() {
	if movies, ok := d.svc.Movies(); ok {
		d.movies = movies
	}
	d.refresh()
}

// Update handles dashboard messages
func (d Dashboard) Update(msg tea.Msg) (Dashboard, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !d.loading {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd

	case MoviesLoadedMsg:
		d.loading = false
		d.movies = msg.Movies
		d.refresh()
		return d, nil

	case MovieSavedMsg, MovieDeletedMsg:
		d.syncFromStore()
		return d, nil

	case ErrMsg:
		// Stale list stays; only the pending flag changes
		if msg.Context == ctxLoadMovies {
			d.loading = false
		}
		d.refresh()
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	// Cursor blink and other input plumbing
	var cmd tea.Cmd
	switch d.focus {
	case PaneSearch:
		d.search, cmd = d.search.Update(msg)
	case PaneForm:
		d.form, cmd, _ = d.form.Update(msg)
	}
	return d, cmd
}

func (d Dashboard) handleKey(msg tea.KeyMsg) (Dashboard, tea.Cmd) {
	if d.confirm.IsVisible() {
		_, confirmed := d.confirm.HandleKey(msg.String())
		if d.confirm.IsVisible() {
			return d, nil
		}
		movie := d.pending
		d.pending = nil
		if confirmed && movie != nil {
			return d, DeleteMovieCmd(d.svc, *movie)
		}
		return d, nil
	}

	switch d.focus {
	case PaneSearch:
		return d.handleSearchKey(msg)
	case PaneForm:
		return d.handleFormKey(msg)
	}
	return d.handleListKey(msg)
}

func (d Dashboard) handleListKey(msg tea.KeyMsg) (Dashboard, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Up):
		if d.cursor > 0 {
			d.cursor--
		}
	case key.Matches(msg, Keys.Down):
		if d.cursor < len(d.page.Movies)-1 {
			d.cursor++
		}
	case key.Matches(msg, Keys.PrevPage):
		d.Paginate(d.query.Page - 1)
	case key.Matches(msg, Keys.NextPage):
		d.Paginate(d.query.Page + 1)
	case key.Matches(msg, Keys.JumpPage):
		d.Paginate(int(msg.Runes[0] - '0'))
	case key.Matches(msg, Keys.Sort):
		d.query.Sort = d.query.Sort.Next()
		d.refresh()
	case key.Matches(msg, Keys.Search):
		d.focus = PaneSearch
		cmd := d.search.Focus()
		return d, cmd
	case key.Matches(msg, Keys.Refresh):
		if d.loading {
			return d, nil
		}
		cmd := d.StartLoad()
		return d, cmd
	case key.Matches(msg, Keys.New):
		// An edit in progress is only left by submitting it
		if !d.draft.IsEditing() {
			d.draft.Reset()
			d.form.Load(d.draft)
		}
		d.focus = PaneForm
		cmd := d.form.Focus()
		return d, cmd
	case key.Matches(msg, Keys.Edit):
		if movie, ok := d.selected(); ok {
			cmd := d.BeginEdit(movie)
			return d, cmd
		}
	case key.Matches(msg, Keys.Delete):
		if movie, ok := d.selected(); ok {
			d.RequestDelete(movie)
		}
	case key.Matches(msg, Keys.Profile):
		return d, NavigateCmd(RouteProfile)
	}
	return d, nil
}

func (d Dashboard) handleSearchKey(msg tea.KeyMsg) (Dashboard, tea.Cmd) {
	switch msg.String() {
	case "enter":
		d.search.Blur()
		d.focus = PaneList
		return d, nil
	case "esc":
		d.search.SetValue("")
		d.search.Blur()
		d.focus = PaneList
		d.SetSearch("")
		return d, nil
	}

	var cmd tea.Cmd
	d.search, cmd = d.search.Update(msg)
	if d.search.Value() != d.query.Search {
		d.SetSearch(d.search.Value())
	}
	return d, cmd
}

func (d Dashboard) handleFormKey(msg tea.KeyMsg) (Dashboard, tea.Cmd) {
	var cmd tea.Cmd
	var action components.FormAction
	d.form, cmd, action = d.form.Update(msg)

	switch action {
	case components.FormLeave:
		d.form.Apply(&d.draft)
		d.form.Blur()
		d.focus = PaneList
		return d, nil
	case components.FormSubmit:
		d.form.Apply(&d.draft)
		return d.Submit()
	}
	return d, cmd
}

// SetSearch replaces the search text and re-derives the page
func (d *Dashboard) SetSearch(search string) {
	d.query.Search = search
	d.refresh()
}

// Paginate moves to target when it names an existing page
func (d *Dashboard) Paginate(target int) {
	next := catalog.Paginate(d.query.Page, target, d.page.TotalPages)
	if next != d.query.Page {
		d.query.Page = next
		d.cursor = 0
		d.refresh()
	}
}

// BeginEdit loads movie into the form in edit mode and focuses it
func (d *Dashboard) BeginEdit(movie domain.Movie) tea.Cmd {
	d.draft.BeginEdit(movie)
	d.form.Load(d.draft)
	d.focus = PaneForm
	return d.form.Focus()
}

// RequestDelete opens the confirmation for movie
func (d *Dashboard) RequestDelete(movie domain.Movie) {
	d.pending = &movie
	d.confirm.Show("Delete movie?", movie.DisplayTitle())
}

// Submit validates the draft and dispatches it. The form resets as soon
// as the command is issued; the outcome arrives later as a message.
func (d Dashboard) Submit() (Dashboard, tea.Cmd) {
	if d.loading {
		return d, func() tea.Msg {
			return StatusMsg{Message: "Catalog is still loading"}
		}
	}

	sub, err := d.draft.Submit()
	if err != nil {
		d.form.SetErrors(catalog.FieldErrors(err))
		return d, nil
	}

	d.form.Load(d.draft)
	d.form.Blur()
	d.focus = PaneList
	return d, SubmitMovieCmd(d.svc, sub)
}

func (d Dashboard) selected() (domain.Movie, bool) {
	if d.cursor < 0 || d.cursor >= len(d.page.Movies) {
		return domain.Movie{}, false
	}
	return d.page.Movies[d.cursor], true
}

func (d Dashboard) listWidth() int {
	return max(30, d.width-d.formWidth()-2)
}

func (d Dashboard) formWidth() int {
	return max(36, d.width*2/5)
}

// View renders the dashboard body
func (d Dashboard) View() string {
	if d.confirm.IsVisible() {
		return lipgloss.Place(d.width, d.height,
			lipgloss.Center, lipgloss.Center,
			d.confirm.View())
	}

	list := lipgloss.JoinVertical(lipgloss.Left,
		d.renderToolbar(),
		"",
		d.renderList(),
		"",
		components.RenderPageBar(d.page),
	)
	list = lipgloss.NewStyle().Width(d.listWidth()).Render(list)

	return lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", d.form.View(d.loading))
}

func (d Dashboard) renderToolbar() string {
	sort := styles.DimStyle.Render("sort: ") + styles.AccentStyle.Render(d.query.Sort.String())
	count := styles.DimStyle.Render(fmt.Sprintf("  %d of %d", d.page.FilteredCount, len(d.movies)))
	return d.search.View() + "  " + sort + count
}

func (d Dashboard) renderList() string {
	if d.loading {
		return d.spinner.View() + " " + styles.DimStyle.Render("Loading movies...")
	}

	if len(d.page.Movies) == 0 {
		lines := []string{styles.SubtitleStyle.Render("No movies found.")}
		if len(d.suggestions) > 0 {
			var titles []string
			for _, s := range d.suggestions {
				titles = append(titles, styles.HighlightMatches(s.Movie.Title, s.MatchedIndexes))
			}
			lines = append(lines, styles.DimStyle.Render("Did you mean: ")+strings.Join(titles, styles.DimStyle.Render(", ")))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	cards := make([]string, len(d.page.Movies))
	for i, movie := range d.page.Movies {
		cards[i] = components.RenderMovieCard(movie, d.focus == PaneList && i == d.cursor, d.listWidth())
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
