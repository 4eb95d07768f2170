package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrMovieNotFound indicates the requested movie does not exist
	ErrMovieNotFound = errors.New("movie not found")

	// ErrServerOffline indicates the movie API is unreachable
	ErrServerOffline = errors.New("movie API is unreachable")

	// ErrAuthFailed indicates the credentials or token were rejected
	ErrAuthFailed = errors.New("authentication failed")

	// ErrNotAuthenticated indicates a protected operation was attempted without a session
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidMovie indicates a draft failed form validation
	ErrInvalidMovie = errors.New("invalid movie")
)
