package catalog

import (
	"context"
	"log/slog"

	"github.com/mmcdole/marquee/internal/domain"
)

// Service is the remote record store: it issues commands to the movie API
// and folds their results into the shared snapshot.
type Service struct {
	client domain.MovieRepository
	store  domain.Store
	logger *slog.Logger
}

// NewService creates a new catalog service.
func NewService(client domain.MovieRepository, store domain.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, store: store, logger: logger}
}

// Movies returns the current snapshot. Never blocks on network.
func (s *Service) Movies() ([]domain.Movie, bool) {
	return s.store.GetMovies()
}

// FetchAll loads every movie and replaces the snapshot wholesale.
// On failure the previous snapshot is kept.
func (s *Service) FetchAll(ctx context.Context) ([]domain.Movie, error) {
	movies, err := s.client.ListMovies(ctx)
	if err != nil {
		s.logger.Error("failed to fetch movies", "error", err)
		return nil, err
	}
	if err := s.store.ReplaceMovies(movies); err != nil {
		s.logger.Error("failed to save movies", "error", err)
	}
	s.logger.Debug("fetched movies", "count", len(movies))
	return movies, nil
}

// Create adds a movie and appends the server's copy to the snapshot.
func (s *Service) Create(ctx context.Context, movie domain.Movie) (*domain.Movie, error) {
	created, err := s.client.CreateMovie(ctx, movie)
	if err != nil {
		s.logger.Error("failed to create movie", "error", err, "title", movie.Title)
		return nil, err
	}
	if err := s.store.UpsertMovie(*created); err != nil {
		s.logger.Error("failed to save movie", "error", err, "movieID", created.ID)
	}
	s.logger.Debug("created movie", "movieID", created.ID)
	return created, nil
}

// Update replaces a movie; the server's copy replaces the snapshot entry.
func (s *Service) Update(ctx context.Context, movie domain.Movie) (*domain.Movie, error) {
	updated, err := s.client.UpdateMovie(ctx, movie)
	if err != nil {
		s.logger.Error("failed to update movie", "error", err, "movieID", movie.ID)
		return nil, err
	}
	if err := s.store.UpsertMovie(*updated); err != nil {
		s.logger.Error("failed to save movie", "error", err, "movieID", updated.ID)
	}
	s.logger.Debug("updated movie", "movieID", updated.ID)
	return updated, nil
}

// Delete removes a movie remotely, then from the snapshot.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteMovie(ctx, id); err != nil {
		s.logger.Error("failed to delete movie", "error", err, "movieID", id)
		return err
	}
	if err := s.store.RemoveMovie(id); err != nil {
		s.logger.Error("failed to remove movie", "error", err, "movieID", id)
	}
	s.logger.Debug("deleted movie", "movieID", id)
	return nil
}

// Submit dispatches a form submission as a create or an update.
func (s *Service) Submit(ctx context.Context, sub Submission) (*domain.Movie, error) {
	if sub.Update {
		return s.Update(ctx, sub.Movie)
	}
	return s.Create(ctx, sub.Movie)
}
