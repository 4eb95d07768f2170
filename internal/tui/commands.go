package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/domain"
)

// Command factories for async operations

const (
	ctxLoadMovies  = "loading movies"
	ctxSaveMovie   = "saving movie"
	ctxDeleteMovie = "deleting movie"
)

// LoadMoviesCmd fetches the whole catalog
func LoadMoviesCmd(svc *catalog.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		movies, err := svc.FetchAll(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: ctxLoadMovies}
		}
		return MoviesLoadedMsg{Movies: movies}
	}
}

// SubmitMovieCmd sends a create or an update for a submitted draft
func SubmitMovieCmd(svc *catalog.Service, sub catalog.Submission) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		movie, err := svc.Submit(ctx, sub)
		if err != nil {
			return ErrMsg{Err: err, Context: ctxSaveMovie}
		}
		return MovieSavedMsg{Movie: *movie, Update: sub.Update}
	}
}

// DeleteMovieCmd deletes a movie by ID
func DeleteMovieCmd(svc *catalog.Service, movie domain.Movie) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := svc.Delete(ctx, movie.ID); err != nil {
			return ErrMsg{Err: err, Context: ctxDeleteMovie}
		}
		return MovieDeletedMsg{ID: movie.ID, Title: movie.Title}
	}
}

// LoginCmd exchanges credentials for a session
func LoginCmd(auth domain.AuthRepository, username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		session, err := auth.Login(ctx, username, password)
		return LoginResultMsg{Session: session, Error: err}
	}
}

// LogoutCmd drops the session and cached catalog, then signals completion
func LogoutCmd(store domain.Store, sessions SessionPersister) tea.Cmd {
	return func() tea.Msg {
		store.ClearSession()
		store.InvalidateAll()

		if sessions != nil {
			if err := sessions.ClearSession(); err != nil {
				return LogoutCompleteMsg{Error: err}
			}
		}
		return LogoutCompleteMsg{}
	}
}

// NavigateCmd asks the router for a route change
func NavigateCmd(route Route) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: route}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
