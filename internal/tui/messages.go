package tui

import (
	"github.com/mmcdole/marquee/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// MoviesLoadedMsg signals that the fetch-all completed
type MoviesLoadedMsg struct {
	Movies []domain.Movie
}

// MovieSavedMsg signals that a create or update was accepted
type MovieSavedMsg struct {
	Movie  domain.Movie
	Update bool
}

// MovieDeletedMsg signals that a delete was accepted
type MovieDeletedMsg struct {
	ID    string
	Title string
}

// LoginResultMsg carries the outcome of a login attempt
type LoginResultMsg struct {
	Session *domain.Session
	Error   error
}

// LogoutCompleteMsg signals that the session was cleared
type LogoutCompleteMsg struct {
	Error error
}

// NavigateMsg asks the router to switch routes
type NavigateMsg struct {
	Route Route
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
