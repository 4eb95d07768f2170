package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var bucketCatalog = []byte("catalog")

const keyMovies = "movies"

// CatalogStore implements domain.Store.
// The movie list lives in memory and is optionally mirrored to BoltDB;
// the session never leaves memory.
type CatalogStore struct {
	db *bolt.DB
	mu sync.RWMutex

	movies  []domain.Movie
	loaded  bool
	session *domain.Session
}

// NewCatalogStore opens a store. An empty baseCacheDir keeps everything in memory.
func NewCatalogStore(baseCacheDir, serverURL string) (*CatalogStore, error) {
	if baseCacheDir == "" {
		return &CatalogStore{}, nil
	}

	dir := baseCacheDir
	if serverURL != "" {
		dir = filepath.Join(baseCacheDir, hashServerURL(serverURL))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "marquee.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCatalog)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &CatalogStore{db: db}
	s.loadSnapshot()
	return s, nil
}

func hashServerURL(serverURL string) string {
	normalized := strings.TrimRight(strings.ToLower(serverURL), "/")
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

// loadSnapshot seeds the memory list from the last persisted fetch
func (s *CatalogStore) loadSnapshot() {
	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketCatalog).Get([]byte(keyMovies)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if data == nil {
		return
	}

	var movies []domain.Movie
	if json.Unmarshal(data, &movies) == nil {
		s.movies = movies
		s.loaded = true
	}
}

func (s *CatalogStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// persist writes the current list to BoltDB. Caller holds s.mu.
func (s *CatalogStore) persist() error {
	if s.db == nil {
		return nil // Memory-only mode
	}

	data, err := json.Marshal(s.movies)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCatalog).Put([]byte(keyMovies), data)
	})
}

// === Movies ===

// GetMovies returns a copy of the snapshot and whether a fetch has populated it
func (s *CatalogStore) GetMovies() ([]domain.Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Movie, len(s.movies))
	copy(out, s.movies)
	return out, s.loaded
}

func (s *CatalogStore) ReplaceMovies(movies []domain.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.movies = make([]domain.Movie, len(movies))
	copy(s.movies, movies)
	s.loaded = true
	return s.persist()
}

// UpsertMovie replaces the movie with the same ID in place, or appends it
func (s *CatalogStore) UpsertMovie(movie domain.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.movies {
		if s.movies[i].ID == movie.ID {
			s.movies[i] = movie
			return s.persist()
		}
	}
	s.movies = append(s.movies, movie)
	return s.persist()
}

func (s *CatalogStore) RemoveMovie(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.movies[:0]
	for _, m := range s.movies {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.movies = kept
	return s.persist()
}

// === Session ===

func (s *CatalogStore) GetSession() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.session.Present() {
		return domain.Session{}, false
	}
	return *s.session, true
}

func (s *CatalogStore) SaveSession(session domain.Session) {
	s.mu.Lock()
	s.session = &session
	s.mu.Unlock()
}

func (s *CatalogStore) ClearSession() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
}

// === Invalidation ===

// InvalidateAll drops the snapshot from memory and disk
func (s *CatalogStore) InvalidateAll() {
	s.mu.Lock()
	s.movies = nil
	s.loaded = false
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCatalog).Delete([]byte(keyMovies))
	})
}
