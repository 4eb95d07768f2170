package catalog

import (
	"sort"
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PageSize is the default number of movies per page
const PageSize = 4

// SortKey selects the ordering of the derived list
type SortKey int

const (
	SortTitle SortKey = iota
	SortYear
)

// String returns the display name for the sort key
func (k SortKey) String() string {
	switch k {
	case SortTitle:
		return "Title"
	case SortYear:
		return "Year"
	default:
		return "Unknown"
	}
}

// Next cycles to the other sort key
func (k SortKey) Next() SortKey {
	if k == SortTitle {
		return SortYear
	}
	return SortTitle
}

// Query is the view state that drives derivation
type Query struct {
	Search string
	Sort   SortKey
	Page   int // 1-based
}

// Page is one window of the filtered, sorted list
type Page struct {
	Movies        []domain.Movie
	Number        int
	TotalPages    int
	FilteredCount int
}

// HasPrev reports whether a previous page exists
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a next page exists
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// Pipeline derives visible pages from the full list.
// A Pipeline holds a collator and case folder, so it must not be shared across goroutines.
type Pipeline struct {
	collator *collate.Collator
	folder   cases.Caser
	pageSize int
}

// NewPipeline creates a pipeline collating titles for the given BCP 47 locale.
// Unknown locales fall back to the root collation order.
func NewPipeline(locale string) *Pipeline {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Pipeline{
		collator: collate.New(tag),
		folder:   cases.Fold(),
		pageSize: PageSize,
	}
}

// WithPageSize overrides the window size; non-positive sizes are ignored
func (p *Pipeline) WithPageSize(n int) *Pipeline {
	if n > 0 {
		p.pageSize = n
	}
	return p
}

// Filter keeps movies whose title contains search, ignoring case
func (p *Pipeline) Filter(movies []domain.Movie, search string) []domain.Movie {
	needle := p.folder.String(search)

	out := make([]domain.Movie, 0, len(movies))
	for _, m := range movies {
		if strings.Contains(p.folder.String(m.Title), needle) {
			out = append(out, m)
		}
	}
	return out
}

// Sort orders movies in place. Ties keep their input order.
func (p *Pipeline) Sort(movies []domain.Movie, key SortKey) {
	switch key {
	case SortYear:
		sort.SliceStable(movies, func(i, j int) bool {
			return movies[i].Year < movies[j].Year
		})
	default:
		sort.SliceStable(movies, func(i, j int) bool {
			return p.collator.CompareString(movies[i].Title, movies[j].Title) < 0
		})
	}
}

// TotalPages returns ceil(count / page size)
func (p *Pipeline) TotalPages(count int) int {
	return (count + p.pageSize - 1) / p.pageSize
}

// Window slices the page-th window; out-of-range pages yield an empty slice
func (p *Pipeline) Window(movies []domain.Movie, page int) []domain.Movie {
	start := (page - 1) * p.pageSize
	if page < 1 || start >= len(movies) {
		return []domain.Movie{}
	}
	end := start + p.pageSize
	if end > len(movies) {
		end = len(movies)
	}
	return movies[start:end]
}

// Derive runs filter, sort and window. The input slice is never modified.
func (p *Pipeline) Derive(movies []domain.Movie, q Query) Page {
	filtered := p.Filter(movies, q.Search)
	p.Sort(filtered, q.Sort)

	return Page{
		Movies:        p.Window(filtered, q.Page),
		Number:        q.Page,
		TotalPages:    p.TotalPages(len(filtered)),
		FilteredCount: len(filtered),
	}
}

// Paginate returns target when it lies in [1, totalPages], otherwise current
func Paginate(current, target, totalPages int) int {
	if target >= 1 && target <= totalPages {
		return target
	}
	return current
}

// Clamp keeps page inside [1, max(totalPages, 1)]
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	if page < 1 {
		return 1
	}
	return page
}
