package domain

import "fmt"

// Release year bounds accepted by the catalog form
const (
	MinYear = 1880
	MaxYear = 2099
)

// Movie is a single catalog record
type Movie struct {
	ID        string `json:"id"`        // Server-assigned opaque identifier
	Title     string `json:"title"`     // Display title
	Year      int    `json:"year"`      // Release year
	PosterURL string `json:"posterUrl"` // Poster image URL
}

// DisplayTitle returns "Title (Year)", or just the title when the year is unknown
func (m Movie) DisplayTitle() string {
	if m.Year > 0 {
		return fmt.Sprintf("%s (%d)", m.Title, m.Year)
	}
	return m.Title
}

// Session identifies the signed-in user
type Session struct {
	Token    string `json:"token"`    // Bearer token for API calls
	UserID   string `json:"userId"`   // User identifier
	Username string `json:"username"` // Display username
}

// Present reports whether the session carries credentials
func (s *Session) Present() bool {
	return s != nil && s.Token != ""
}
