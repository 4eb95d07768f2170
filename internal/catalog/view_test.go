package catalog

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/mmcdole/marquee/internal/domain"
)

func titles(movies []domain.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

func TestDeriveScenarios(t *testing.T) {
	p := NewPipeline("en")
	list := []domain.Movie{
		{ID: "1", Title: "Zeta", Year: 2000},
		{ID: "2", Title: "Alpha", Year: 1999},
	}

	t.Run("Sort By Title", func(t *testing.T) {
		page := p.Derive(list, Query{Sort: SortTitle, Page: 1})
		if got, want := titles(page.Movies), []string{"Alpha", "Zeta"}; !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("Sort By Year", func(t *testing.T) {
		page := p.Derive(list, Query{Sort: SortYear, Page: 1})
		if page.Movies[0].Year != 1999 || page.Movies[1].Year != 2000 {
			t.Errorf("expected [1999 2000], got %v", page.Movies)
		}
	})

	t.Run("Input Untouched", func(t *testing.T) {
		p.Derive(list, Query{Sort: SortTitle, Page: 1})
		if list[0].Title != "Zeta" {
			t.Errorf("expected input order preserved, got %v", titles(list))
		}
	})
}

func TestDerivePagination(t *testing.T) {
	p := NewPipeline("en")
	var list []domain.Movie
	for i := 1; i <= 5; i++ {
		list = append(list, domain.Movie{ID: fmt.Sprint(i), Title: fmt.Sprintf("Movie %d", i), Year: 2000 + i})
	}

	page1 := p.Derive(list, Query{Sort: SortYear, Page: 1})
	if len(page1.Movies) != 4 || page1.Movies[0].ID != "1" || page1.Movies[3].ID != "4" {
		t.Errorf("expected records 1-4 on page 1, got %v", page1.Movies)
	}
	if page1.TotalPages != 2 || page1.FilteredCount != 5 {
		t.Errorf("expected 2 pages of 5, got %d pages of %d", page1.TotalPages, page1.FilteredCount)
	}
	if page1.HasPrev() || !page1.HasNext() {
		t.Error("expected only next on page 1")
	}

	page2 := p.Derive(list, Query{Sort: SortYear, Page: 2})
	if len(page2.Movies) != 1 || page2.Movies[0].ID != "5" {
		t.Errorf("expected record 5 on page 2, got %v", page2.Movies)
	}
	if !page2.HasPrev() || page2.HasNext() {
		t.Error("expected only prev on page 2")
	}

	if got := Paginate(2, 3, page2.TotalPages); got != 2 {
		t.Errorf("expected page 3 request to be ignored, got %d", got)
	}

	if page3 := p.Derive(list, Query{Sort: SortYear, Page: 3}); len(page3.Movies) != 0 {
		t.Errorf("expected empty window past the end, got %v", page3.Movies)
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name                   string
		current, target, total int
		want                   int
	}{
		{"Within Range", 1, 2, 3, 2},
		{"Last Page", 1, 3, 3, 3},
		{"Zero", 2, 0, 3, 2},
		{"Negative", 2, -1, 3, 2},
		{"Past End", 2, 4, 3, 2},
		{"No Pages", 1, 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Paginate(tt.current, tt.target, tt.total); got != tt.want {
				t.Errorf("Paginate(%d, %d, %d) = %d, want %d", tt.current, tt.target, tt.total, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 2); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := Clamp(0, 2); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := Clamp(3, 0); got != 1 {
		t.Errorf("expected 1 with no pages, got %d", got)
	}
}

func TestFilter(t *testing.T) {
	p := NewPipeline("en")
	list := []domain.Movie{
		{ID: "1", Title: "The Matrix"},
		{ID: "2", Title: "Matrix Reloaded"},
		{ID: "3", Title: "Heat"},
		{ID: "4", Title: "STRASSE"},
	}

	tests := []struct {
		search string
		want   []string
	}{
		{"", []string{"The Matrix", "Matrix Reloaded", "Heat", "STRASSE"}},
		{"matrix", []string{"The Matrix", "Matrix Reloaded"}},
		{"MATRIX", []string{"The Matrix", "Matrix Reloaded"}},
		{"eat", []string{"Heat"}},
		{"trix re", []string{"Matrix Reloaded"}},
		{"strasse", []string{"STRASSE"}},
		{"nope", []string{}},
	}

	for _, tt := range tests {
		got := titles(p.Filter(list, tt.search))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Filter(%q) = %v, want %v", tt.search, got, tt.want)
		}
	}
}

func TestFilterOnlyMatches(t *testing.T) {
	p := NewPipeline("en")
	list := []domain.Movie{
		{Title: "Alien"}, {Title: "Aliens"}, {Title: "Blade Runner"},
		{Title: "alien³"}, {Title: "Arrival"}, {Title: "Predator"},
	}

	for _, s := range []string{"a", "LI", "ien", "run", "x", ""} {
		page := p.Derive(list, Query{Search: s, Sort: SortTitle, Page: 1})
		for _, m := range page.Movies {
			if !strings.Contains(strings.ToLower(m.Title), strings.ToLower(s)) {
				t.Errorf("search %q returned non-matching %q", s, m.Title)
			}
		}
	}
}

func TestSortStable(t *testing.T) {
	p := NewPipeline("en")

	t.Run("Year Ties Keep Order", func(t *testing.T) {
		list := []domain.Movie{
			{ID: "a", Title: "B", Year: 2001},
			{ID: "b", Title: "A", Year: 1990},
			{ID: "c", Title: "C", Year: 2001},
			{ID: "d", Title: "D", Year: 1990},
		}
		p.Sort(list, SortYear)

		var ids []string
		for _, m := range list {
			ids = append(ids, m.ID)
		}
		if want := []string{"b", "d", "a", "c"}; !reflect.DeepEqual(ids, want) {
			t.Errorf("expected %v, got %v", want, ids)
		}
	})

	t.Run("Title Ties Keep Order", func(t *testing.T) {
		list := []domain.Movie{
			{ID: "x", Title: "Heat", Year: 1995},
			{ID: "y", Title: "Alien", Year: 1979},
			{ID: "z", Title: "Heat", Year: 1986},
		}
		p.Sort(list, SortTitle)

		if list[0].ID != "y" || list[1].ID != "x" || list[2].ID != "z" {
			t.Errorf("expected y, x, z, got %v", list)
		}
	})

	t.Run("Title Non-Decreasing", func(t *testing.T) {
		list := []domain.Movie{
			{Title: "zulu"}, {Title: "Échappée"}, {Title: "alpha"}, {Title: "Bravo"}, {Title: "eclipse"},
		}
		p.Sort(list, SortTitle)

		for i := 1; i < len(list); i++ {
			if p.collator.CompareString(list[i-1].Title, list[i].Title) > 0 {
				t.Errorf("order broken at %d: %q before %q", i, list[i-1].Title, list[i].Title)
			}
		}
		if list[0].Title != "alpha" || list[len(list)-1].Title != "zulu" {
			t.Errorf("expected alpha..zulu, got %v", titles(list))
		}
	})
}

func TestLocaleCollation(t *testing.T) {
	list := []domain.Movie{{Title: "Ödland"}, {Title: "Zorro"}, {Title: "Oben"}}

	en := NewPipeline("en")
	sorted := append([]domain.Movie(nil), list...)
	en.Sort(sorted, SortTitle)
	if got := titles(sorted); !reflect.DeepEqual(got, []string{"Oben", "Ödland", "Zorro"}) {
		t.Errorf("expected accent to sort with base letter in en, got %v", got)
	}

	sv := NewPipeline("sv")
	sorted = append([]domain.Movie(nil), list...)
	sv.Sort(sorted, SortTitle)
	if got := titles(sorted); !reflect.DeepEqual(got, []string{"Oben", "Zorro", "Ödland"}) {
		t.Errorf("expected Ö after Z in sv, got %v", got)
	}

	if bad := NewPipeline("not a locale!"); bad == nil {
		t.Error("expected fallback pipeline for invalid locale")
	}
}

func TestDeriveIdempotent(t *testing.T) {
	p := NewPipeline("en")
	list := []domain.Movie{
		{ID: "1", Title: "Heat", Year: 1995},
		{ID: "2", Title: "heat", Year: 1986},
		{ID: "3", Title: "Alien", Year: 1979},
		{ID: "4", Title: "Aliens", Year: 1986},
		{ID: "5", Title: "Arrival", Year: 2016},
	}
	q := Query{Search: "a", Sort: SortYear, Page: 1}

	first := p.Derive(list, q)
	second := p.Derive(list, q)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical pages, got %v and %v", first, second)
	}
}

func TestSortKey(t *testing.T) {
	if SortTitle.Next() != SortYear || SortYear.Next() != SortTitle {
		t.Error("expected sort keys to cycle")
	}
	if SortTitle.String() != "Title" || SortYear.String() != "Year" {
		t.Errorf("unexpected names %q %q", SortTitle, SortYear)
	}
}

func TestWithPageSize(t *testing.T) {
	var list []domain.Movie
	for i := 0; i < 7; i++ {
		list = append(list, domain.Movie{Title: fmt.Sprintf("M%d", i)})
	}

	p := NewPipeline("en").WithPageSize(3)
	if page := p.Derive(list, Query{Page: 3}); page.TotalPages != 3 || len(page.Movies) != 1 {
		t.Errorf("expected 3 pages with 1 movie on the last, got %d pages, %d movies", page.TotalPages, len(page.Movies))
	}

	if p := NewPipeline("en").WithPageSize(0); p.TotalPages(5) != 2 {
		t.Errorf("expected default page size kept for 0, got %d pages", p.TotalPages(5))
	}
}
