package domain

import "context"

// MovieRepository is the remote record store (implemented by the movie API client)
type MovieRepository interface {
	// ListMovies returns every movie in the catalog
	ListMovies(ctx context.Context) ([]Movie, error)

	// CreateMovie stores a new movie; the ID of the argument is ignored
	CreateMovie(ctx context.Context, movie Movie) (*Movie, error)

	// UpdateMovie replaces the movie with the same ID
	UpdateMovie(ctx context.Context, movie Movie) (*Movie, error)

	// DeleteMovie removes the movie with the given ID
	DeleteMovie(ctx context.Context, id string) error
}

// AuthRepository exchanges credentials for a session
type AuthRepository interface {
	Login(ctx context.Context, username, password string) (*Session, error)
}
