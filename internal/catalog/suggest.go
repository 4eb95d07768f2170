package catalog

import (
	"sort"
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/sahilm/fuzzy"
)

// maxSuggestions caps the "did you mean" list
const maxSuggestions = 3

// Suggestion is a near-miss title offered when a search matches nothing
type Suggestion struct {
	Movie          domain.Movie
	MatchedIndexes []int // Byte positions in Movie.Title that matched (for highlighting)
}

// titleIndex implements sahilm/fuzzy.Source over the original titles.
// fuzzy matches case-insensitively, so its byte offsets stay valid for
// highlighting; lowerTitles only feed the edit distance fallback.
type titleIndex struct {
	movies      []domain.Movie
	lowerTitles []string
}

// String returns the title at index i (implements fuzzy.Source)
func (idx *titleIndex) String(i int) string { return idx.movies[i].Title }

// Len returns the number of titles (implements fuzzy.Source)
func (idx *titleIndex) Len() int { return len(idx.movies) }

// Suggest returns up to three titles that loosely resemble search.
// Subsequence matches come first; if there are none, titles within a small
// edit distance are offered instead.
func Suggest(movies []domain.Movie, search string) []Suggestion {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" || len(movies) == 0 {
		return nil
	}

	idx := &titleIndex{movies: movies, lowerTitles: make([]string, len(movies))}
	for i, m := range movies {
		idx.lowerTitles[i] = strings.ToLower(m.Title)
	}

	var out []Suggestion
	for _, match := range fuzzy.FindFrom(search, idx) {
		out = append(out, Suggestion{Movie: movies[match.Index], MatchedIndexes: match.MatchedIndexes})
		if len(out) == maxSuggestions {
			return out
		}
	}
	if len(out) > 0 {
		return out
	}

	return typoSuggestions(idx, search)
}

// typoSuggestions ranks titles by Levenshtein distance, keeping close ones
func typoSuggestions(idx *titleIndex, search string) []Suggestion {
	type scored struct {
		index    int
		distance int
	}

	limit := len(search)/3 + 1
	var candidates []scored
	for i, title := range idx.lowerTitles {
		d := lfuzzy.LevenshteinDistance(search, title)
		if d <= limit {
			candidates = append(candidates, scored{index: i, distance: d})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	var out []Suggestion
	for _, c := range candidates {
		out = append(out, Suggestion{Movie: idx.movies[c.index]})
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
