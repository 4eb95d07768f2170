package store

import (
	"testing"

	"github.com/mmcdole/marquee/internal/domain"
)

func sampleMovies() []domain.Movie {
	return []domain.Movie{
		{ID: "1", Title: "Zeta", Year: 2000, PosterURL: "http://img/z.png"},
		{ID: "2", Title: "Alpha", Year: 1999, PosterURL: "http://img/a.png"},
	}
}

func TestCatalogStoreMemory(t *testing.T) {
	t.Run("Empty Until Loaded", func(t *testing.T) {
		s, err := NewCatalogStore("", "")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		movies, ok := s.GetMovies()
		if ok || len(movies) != 0 {
			t.Errorf("expected empty unloaded store, got %v (loaded=%v)", movies, ok)
		}
	})

	t.Run("Replace Is Wholesale", func(t *testing.T) {
		s, _ := NewCatalogStore("", "")
		s.ReplaceMovies(sampleMovies())
		s.ReplaceMovies([]domain.Movie{{ID: "3", Title: "Gamma", Year: 2010}})

		movies, ok := s.GetMovies()
		if !ok {
			t.Fatal("expected store to be loaded")
		}
		if len(movies) != 1 || movies[0].ID != "3" {
			t.Errorf("expected only Gamma, got %v", movies)
		}
	})

	t.Run("Upsert Replaces In Place", func(t *testing.T) {
		s, _ := NewCatalogStore("", "")
		s.ReplaceMovies(sampleMovies())
		s.UpsertMovie(domain.Movie{ID: "1", Title: "Zeta Prime", Year: 2001})

		movies, _ := s.GetMovies()
		if len(movies) != 2 {
			t.Fatalf("expected 2 movies, got %d", len(movies))
		}
		if movies[0].Title != "Zeta Prime" || movies[0].Year != 2001 {
			t.Errorf("expected replaced record at index 0, got %+v", movies[0])
		}
	})

	t.Run("Upsert Appends Unknown ID", func(t *testing.T) {
		s, _ := NewCatalogStore("", "")
		s.ReplaceMovies(sampleMovies())
		s.UpsertMovie(domain.Movie{ID: "9", Title: "New"})

		movies, _ := s.GetMovies()
		if len(movies) != 3 || movies[2].ID != "9" {
			t.Errorf("expected appended record, got %v", movies)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		s, _ := NewCatalogStore("", "")
		s.ReplaceMovies(sampleMovies())
		s.RemoveMovie("1")
		s.RemoveMovie("missing")

		movies, _ := s.GetMovies()
		if len(movies) != 1 || movies[0].ID != "2" {
			t.Errorf("expected only Alpha, got %v", movies)
		}
	})

	t.Run("GetMovies Returns Copy", func(t *testing.T) {
		s, _ := NewCatalogStore("", "")
		s.ReplaceMovies(sampleMovies())

		movies, _ := s.GetMovies()
		movies[0].Title = "mutated"

		again, _ := s.GetMovies()
		if again[0].Title != "Zeta" {
			t.Errorf("expected snapshot to be unaffected, got %q", again[0].Title)
		}
	})

	t.Run("Session", func(t *testing.T) {
		s, _ := NewCatalogStore("", "")
		if _, ok := s.GetSession(); ok {
			t.Fatal("expected no session initially")
		}

		s.SaveSession(domain.Session{Token: "t", Username: "ana"})
		sess, ok := s.GetSession()
		if !ok || sess.Username != "ana" {
			t.Errorf("expected ana session, got %+v (ok=%v)", sess, ok)
		}

		s.SaveSession(domain.Session{Username: "tokenless"})
		if _, ok := s.GetSession(); ok {
			t.Error("expected session without token to be absent")
		}

		s.SaveSession(domain.Session{Token: "t"})
		s.ClearSession()
		if _, ok := s.GetSession(); ok {
			t.Error("expected cleared session")
		}
	})
}

func TestCatalogStoreBolt(t *testing.T) {
	dir := t.TempDir()

	s, err := NewCatalogStore(dir, "http://API.test/")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := s.ReplaceMovies(sampleMovies()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	s.SaveSession(domain.Session{Token: "secret"})
	if err := s.Close(); err != nil {
		t.Fatalf("expected no error on close, got %v", err)
	}

	reopened, err := NewCatalogStore(dir, "http://api.test")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer reopened.Close()

	movies, ok := reopened.GetMovies()
	if !ok || len(movies) != 2 {
		t.Fatalf("expected persisted snapshot, got %v (loaded=%v)", movies, ok)
	}
	if _, ok := reopened.GetSession(); ok {
		t.Error("expected session to stay in memory only")
	}

	reopened.InvalidateAll()
	if movies, ok := reopened.GetMovies(); ok || len(movies) != 0 {
		t.Errorf("expected invalidated snapshot, got %v", movies)
	}
}
