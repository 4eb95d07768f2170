package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
)

// Mode is the form's tagged state: Creating or Editing
type Mode interface {
	isMode()
}

// Creating is the idle form; submitting it creates a new movie
type Creating struct{}

// Editing carries the movie being edited; submitting it updates that movie
type Editing struct {
	Movie domain.Movie
}

func (Creating) isMode() {}
func (Editing) isMode()  {}

// Field names a form input
type Field int

const (
	FieldTitle Field = iota
	FieldYear
	FieldPoster
)

// FieldError is a validation failure on one input
type FieldError struct {
	Field   Field
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return domain.ErrInvalidMovie
}

// Draft holds the in-progress form values
type Draft struct {
	Mode   Mode
	Title  string
	Year   string
	Poster string
}

// NewDraft returns an empty draft in Creating mode
func NewDraft() Draft {
	return Draft{Mode: Creating{}}
}

// BeginEdit copies movie into the draft and switches to Editing
func (d *Draft) BeginEdit(movie domain.Movie) {
	d.Mode = Editing{Movie: movie}
	d.Title = movie.Title
	d.Year = strconv.Itoa(movie.Year)
	d.Poster = movie.PosterURL
}

// Reset clears the draft back to Creating
func (d *Draft) Reset() {
	*d = NewDraft()
}

// IsEditing reports whether the draft targets an existing movie
func (d Draft) IsEditing() bool {
	_, ok := d.Mode.(Editing)
	return ok
}

// ID returns the identifier of the edited movie, or "" when creating
func (d Draft) ID() string {
	if e, ok := d.Mode.(Editing); ok {
		return e.Movie.ID
	}
	return ""
}

// Validate checks every field and returns the failures joined
func (d Draft) Validate() error {
	var errs []error

	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, &FieldError{Field: FieldTitle, Message: "title is required"})
	}

	year, err := strconv.Atoi(strings.TrimSpace(d.Year))
	switch {
	case strings.TrimSpace(d.Year) == "":
		errs = append(errs, &FieldError{Field: FieldYear, Message: "year is required"})
	case err != nil:
		errs = append(errs, &FieldError{Field: FieldYear, Message: "year must be a whole number"})
	case year < domain.MinYear || year > domain.MaxYear:
		errs = append(errs, &FieldError{
			Field:   FieldYear,
			Message: fmt.Sprintf("year must be between %d and %d", domain.MinYear, domain.MaxYear),
		})
	}

	poster := strings.TrimSpace(d.Poster)
	if poster == "" {
		errs = append(errs, &FieldError{Field: FieldPoster, Message: "poster URL is required"})
	} else if u, err := url.Parse(poster); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, &FieldError{Field: FieldPoster, Message: "poster must be an http(s) URL"})
	}

	return errors.Join(errs...)
}

// FieldErrors flattens a Validate error into per-field messages
func FieldErrors(err error) map[Field]string {
	out := make(map[Field]string)
	if err == nil {
		return out
	}

	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}
	for _, e := range errs {
		var fe *FieldError
		if errors.As(e, &fe) {
			if _, seen := out[fe.Field]; !seen {
				out[fe.Field] = fe.Message
			}
		}
	}
	return out
}

// Movie builds the record the draft describes. The draft must be valid.
func (d Draft) Movie() domain.Movie {
	year, _ := strconv.Atoi(strings.TrimSpace(d.Year))
	return domain.Movie{
		ID:        d.ID(),
		Title:     strings.TrimSpace(d.Title),
		Year:      year,
		PosterURL: strings.TrimSpace(d.Poster),
	}
}

// Submission is the command a submitted draft turns into
type Submission struct {
	Movie  domain.Movie
	Update bool // true: update keyed by Movie.ID; false: create
}

// Submit validates the draft, resets it, and returns the command to dispatch.
// An invalid draft is left untouched and no command is produced.
func (d *Draft) Submit() (Submission, error) {
	if err := d.Validate(); err != nil {
		return Submission{}, err
	}

	sub := Submission{Movie: d.Movie(), Update: d.IsEditing()}
	d.Reset()
	return sub, nil
}
