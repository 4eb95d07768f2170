package domain

// Store holds the shared catalog snapshot and the session value.
// Views read from it; only command results write to it.
type Store interface {
	// === Movies ===
	GetMovies() ([]Movie, bool)
	ReplaceMovies(movies []Movie) error // Wholesale replacement after fetch-all
	UpsertMovie(movie Movie) error      // Last write wins, keyed by ID
	RemoveMovie(id string) error

	// === Session ===
	GetSession() (Session, bool)
	SaveSession(session Session)
	ClearSession()

	// === Invalidation ===
	InvalidateAll()

	Close() error
}
