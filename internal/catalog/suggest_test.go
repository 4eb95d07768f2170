package catalog

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mmcdole/marquee/internal/domain"
)

func TestSuggest(t *testing.T) {
	movies := []domain.Movie{
		{ID: "1", Title: "The Matrix"},
		{ID: "2", Title: "Heat"},
		{ID: "3", Title: "Alien"},
	}

	t.Run("Subsequence Match", func(t *testing.T) {
		got := Suggest(movies, "MTRX")
		if len(got) != 1 || got[0].Movie.ID != "1" {
			t.Fatalf("expected The Matrix, got %v", got)
		}
		if len(got[0].MatchedIndexes) != 4 {
			t.Errorf("expected 4 matched indexes, got %v", got[0].MatchedIndexes)
		}
	})

	t.Run("Highlight Offsets Follow The Title", func(t *testing.T) {
		title := "İstanbul Express"
		got := Suggest([]domain.Movie{{ID: "4", Title: title}}, "xprs")
		if len(got) != 1 {
			t.Fatalf("expected one suggestion, got %v", got)
		}

		var matched strings.Builder
		for _, i := range got[0].MatchedIndexes {
			r, _ := utf8.DecodeRuneInString(title[i:])
			matched.WriteRune(r)
		}
		if matched.String() != "xprs" {
			t.Errorf("expected offsets to mark %q, marked %q", "xprs", matched.String())
		}
	})

	t.Run("Typo Fallback", func(t *testing.T) {
		got := Suggest(movies, "haet")
		if len(got) != 1 || got[0].Movie.ID != "2" {
			t.Fatalf("expected Heat, got %v", got)
		}
		if got[0].MatchedIndexes != nil {
			t.Errorf("expected no highlight for typo match, got %v", got[0].MatchedIndexes)
		}
	})

	t.Run("Nothing Close", func(t *testing.T) {
		if got := Suggest(movies, "qqqqqqqq"); len(got) != 0 {
			t.Errorf("expected no suggestions, got %v", got)
		}
	})

	t.Run("Empty Search", func(t *testing.T) {
		if got := Suggest(movies, "  "); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("Capped", func(t *testing.T) {
		many := []domain.Movie{
			{Title: "Alien"}, {Title: "Aliens"}, {Title: "Alien 3"}, {Title: "Alien Resurrection"}, {Title: "Alien Covenant"},
		}
		if got := Suggest(many, "aln"); len(got) != maxSuggestions {
			t.Errorf("expected %d suggestions, got %d", maxSuggestions, len(got))
		}
	})
}
