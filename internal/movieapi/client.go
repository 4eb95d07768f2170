package movieapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/marquee/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Marquee/1.0"
)

// Client implements domain.MovieRepository and domain.AuthRepository
// against the movie catalog REST API
type Client struct {
	baseURL    string
	mu         sync.RWMutex
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new movie API client. The token may be empty until login.
func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// SetToken replaces the bearer token used for subsequent requests
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// doRequest performs an authenticated HTTP request with an optional JSON body
func (c *Client) doRequest(ctx context.Context, method, path string, in interface{}) ([]byte, error) {
	reqURL := c.baseURL + path

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("api request", "method", method, "url", reqURL, "requestID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "error", err, "requestID", requestID)
		return nil, domain.ErrServerOffline
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, domain.ErrAuthFailed
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrMovieNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Error("api request error", "status", resp.StatusCode, "body", string(respBody), "requestID", requestID)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, errorMessage(respBody))
	}

	return respBody, nil
}

// errorMessage extracts the API's error message, falling back to the raw body
func errorMessage(body []byte) string {
	var e ErrorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(string(body))
}

func (c *Client) decode(body []byte, out interface{}) error {
	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// ListMovies returns every movie in the catalog
func (c *Client) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/movies", nil)
	if err != nil {
		return nil, err
	}

	var dtos []MovieDTO
	if err := c.decode(body, &dtos); err != nil {
		return nil, err
	}

	return MapMovies(dtos), nil
}

// CreateMovie posts a new movie and returns the stored record
func (c *Client) CreateMovie(ctx context.Context, movie domain.Movie) (*domain.Movie, error) {
	dto := ToDTO(movie)
	dto.ID = ""

	body, err := c.doRequest(ctx, http.MethodPost, "/movies", dto)
	if err != nil {
		return nil, err
	}

	var created MovieDTO
	if err := c.decode(body, &created); err != nil {
		return nil, err
	}

	m := MapMovie(created)
	return &m, nil
}

// UpdateMovie replaces the movie keyed by movie.ID
func (c *Client) UpdateMovie(ctx context.Context, movie domain.Movie) (*domain.Movie, error) {
	if movie.ID == "" {
		return nil, fmt.Errorf("update requires a movie id: %w", domain.ErrMovieNotFound)
	}

	path := "/movies/" + url.PathEscape(movie.ID)
	body, err := c.doRequest(ctx, http.MethodPut, path, ToDTO(movie))
	if err != nil {
		return nil, err
	}

	var updated MovieDTO
	if err := c.decode(body, &updated); err != nil {
		return nil, err
	}

	m := MapMovie(updated)
	return &m, nil
}

// DeleteMovie removes the movie with the given ID
func (c *Client) DeleteMovie(ctx context.Context, id string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, "/movies/"+url.PathEscape(id), nil)
	return err
}

// Login exchanges credentials for a session and adopts its token
func (c *Client) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/auth/login", LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var resp LoginResponse
	if err := c.decode(body, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, domain.ErrAuthFailed
	}

	c.SetToken(resp.Token)
	return MapSession(resp), nil
}
