package movieapi

import (
	"github.com/mmcdole/marquee/internal/domain"
)

// MapMovie converts a wire record to a domain movie
func MapMovie(dto MovieDTO) domain.Movie {
	return domain.Movie{
		ID:        dto.ID,
		Title:     dto.Title,
		Year:      dto.Year,
		PosterURL: dto.Poster,
	}
}

// MapMovies converts a slice of wire records
func MapMovies(dtos []MovieDTO) []domain.Movie {
	movies := make([]domain.Movie, 0, len(dtos))
	for _, dto := range dtos {
		movies = append(movies, MapMovie(dto))
	}
	return movies
}

// ToDTO converts a domain movie to its wire form
func ToDTO(m domain.Movie) MovieDTO {
	return MovieDTO{
		ID:     m.ID,
		Title:  m.Title,
		Year:   m.Year,
		Poster: m.PosterURL,
	}
}

// MapSession converts a login response to a session
func MapSession(resp LoginResponse) *domain.Session {
	return &domain.Session{
		Token:    resp.Token,
		UserID:   resp.User.ID,
		Username: resp.User.Username,
	}
}
