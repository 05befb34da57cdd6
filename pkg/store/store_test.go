package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/leminhohoho/movie-lens/api/pkg/config"
	"github.com/leminhohoho/movie-lens/api/pkg/models"
	"github.com/leminhohoho/movie-lens/api/pkg/query"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := config.DBConfig{
		Driver: config.DriverSQLite,
		DbPath: filepath.Join(t.TempDir(), "movies.db"),
	}

	s, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), false)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func ptr[T any](v T) *T { return &v }

func seedMovies(t *testing.T, s *Store, n int, directorID, genreID func(i int) *int64) []models.Movie {
	t.Helper()

	movies := make([]models.Movie, 0, n)
	for i := 1; i <= n; i++ {
		m := models.Movie{Title: ptr(fmt.Sprintf("movie %d", i))}
		if directorID != nil {
			m.DirectorID = directorID(i)
		}
		if genreID != nil {
			m.GenreID = genreID(i)
		}
		if err := s.CreateMovie(context.Background(), &m); err != nil {
			t.Fatal(err)
		}
		movies = append(movies, m)
	}

	return movies
}

func TestMovieRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	in := models.MovieInput{
		Title:       ptr("Heat"),
		Description: ptr("LA crime saga"),
		Trailer:     ptr("https://example.com/heat"),
		Year:        ptr(1995),
		Rating:      ptr(8.3),
		GenreID:     ptr(int64(4)),
		DirectorID:  ptr(int64(7)),
	}
	movie := in.Movie()

	if err := s.CreateMovie(ctx, &movie); err != nil {
		t.Fatal(err)
	}

	if movie.ID == 0 {
		t.Fatal("id was not assigned")
	}

	got, err := s.GetMovie(ctx, movie.ID)
	if err != nil {
		t.Fatal(err)
	}

	if *got.Title != "Heat" || *got.Description != "LA crime saga" || *got.Trailer != "https://example.com/heat" ||
		*got.Year != 1995 || *got.Rating != 8.3 || *got.GenreID != 4 || *got.DirectorID != 7 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestCreateLeavesOmittedFieldsNull(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	movie := models.MovieInput{Title: ptr("Alien")}.Movie()
	if err := s.CreateMovie(ctx, &movie); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetMovie(ctx, movie.ID)
	if err != nil {
		t.Fatal(err)
	}

	if got.Year != nil || got.Rating != nil || got.DirectorID != nil || got.Description != nil {
		t.Fatalf("expected null attributes, got %+v", got)
	}
}

func TestReplaceMovieNullsMissingFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	movie := models.MovieInput{Title: ptr("Heat"), Year: ptr(1995), Rating: ptr(8.3), DirectorID: ptr(int64(2))}.Movie()
	if err := s.CreateMovie(ctx, &movie); err != nil {
		t.Fatal(err)
	}

	if err := s.ReplaceMovie(ctx, movie.ID, models.MovieInput{Title: ptr("Heat (1995)")}); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetMovie(ctx, movie.ID)
	if err != nil {
		t.Fatal(err)
	}

	if got.Title == nil || *got.Title != "Heat (1995)" {
		t.Fatalf("title = %v", got.Title)
	}

	if got.Year != nil || got.Rating != nil || got.DirectorID != nil {
		t.Fatalf("fields missing from the replacement were kept: %+v", got)
	}
}

func TestPatchMovieKeepsMissingFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	movie := models.MovieInput{Title: ptr("Heat"), Year: ptr(1995), Rating: ptr(8.3)}.Movie()
	if err := s.CreateMovie(ctx, &movie); err != nil {
		t.Fatal(err)
	}

	patch := models.MoviePatch{
		Rating: models.Field[float64]{Value: ptr(9.0), Set: true},
		Year:   models.Field[int]{Set: true},
	}
	if err := s.PatchMovie(ctx, movie.ID, patch); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetMovie(ctx, movie.ID)
	if err != nil {
		t.Fatal(err)
	}

	if got.Title == nil || *got.Title != "Heat" {
		t.Fatalf("title changed: %v", got.Title)
	}

	if got.Rating == nil || *got.Rating != 9.0 {
		t.Fatalf("rating = %v, want 9", got.Rating)
	}

	if got.Year != nil {
		t.Fatalf("year = %v, want explicit null", *got.Year)
	}
}

func TestEmptyPatchIsNoop(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	movie := models.MovieInput{Title: ptr("Heat")}.Movie()
	if err := s.CreateMovie(ctx, &movie); err != nil {
		t.Fatal(err)
	}

	if err := s.PatchMovie(ctx, movie.ID, models.MoviePatch{}); err != nil {
		t.Fatal(err)
	}

	if err := s.PatchMovie(ctx, movie.ID+100, models.MoviePatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("patch of a missing movie: got %v, want ErrNotFound", err)
	}
}

func TestMissingMovie(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.GetMovie(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get: got %v, want ErrNotFound", err)
	}

	if err := s.ReplaceMovie(ctx, 42, models.MovieInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("replace: got %v, want ErrNotFound", err)
	}

	if err := s.DeleteMovie(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete: got %v, want ErrNotFound", err)
	}
}

func TestDeleteThenGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	movies := seedMovies(t, s, 1, nil, nil)

	if err := s.DeleteMovie(ctx, movies[0].ID); err != nil {
		t.Fatal(err)
	}

	if _, err := s.GetMovie(ctx, movies[0].ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestIDsAreNotReused(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	movies := seedMovies(t, s, 2, nil, nil)
	if err := s.DeleteMovie(ctx, movies[1].ID); err != nil {
		t.Fatal(err)
	}

	next := seedMovies(t, s, 1, nil, nil)
	if next[0].ID <= movies[1].ID {
		t.Fatalf("id %d reused after deleting %d", next[0].ID, movies[1].ID)
	}
}

func TestListMoviesPagination(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	movies := seedMovies(t, s, 15, nil, nil)

	page1, err := s.ListMovies(ctx, query.MovieQuery{Page: 1})
	if err != nil {
		t.Fatal(err)
	}

	if len(page1) != 10 || page1[0].ID != movies[0].ID || page1[9].ID != movies[9].ID {
		t.Fatalf("page 1 returned %d movies", len(page1))
	}

	page2, err := s.ListMovies(ctx, query.MovieQuery{Page: 2})
	if err != nil {
		t.Fatal(err)
	}

	if len(page2) != 5 {
		t.Fatalf("page 2 returned %d movies, want 5", len(page2))
	}

	for i, m := range page2 {
		if m.ID != movies[10+i].ID {
			t.Fatalf("page 2 row %d is movie %d, want %d", i, m.ID, movies[10+i].ID)
		}
	}

	page3, err := s.ListMovies(ctx, query.MovieQuery{Page: 3})
	if err != nil {
		t.Fatal(err)
	}

	if len(page3) != 0 {
		t.Fatalf("page 3 returned %d movies, want none", len(page3))
	}

	all, err := s.ListMovies(ctx, query.MovieQuery{})
	if err != nil {
		t.Fatal(err)
	}

	if len(all) != 15 {
		t.Fatalf("unbounded list returned %d movies, want 15", len(all))
	}
}

func TestListMoviesFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Directors alternate 1,2; genres cycle 1,2,3.
	seedMovies(t, s, 30,
		func(i int) *int64 { return ptr(int64(i%2 + 1)) },
		func(i int) *int64 { return ptr(int64(i%3 + 1)) },
	)

	both, err := s.ListMovies(ctx, query.MovieQuery{DirectorID: ptr(int64(1)), GenreID: ptr(int64(1)), Page: 1})
	if err != nil {
		t.Fatal(err)
	}

	if len(both) != 5 {
		t.Fatalf("director 1 + genre 1 returned %d movies, want 5", len(both))
	}

	for _, m := range both {
		if *m.DirectorID != 1 || *m.GenreID != 1 {
			t.Fatalf("movie %d does not match both filters", m.ID)
		}
	}

	byDirector, err := s.ListMovies(ctx, query.MovieQuery{DirectorID: ptr(int64(2)), Page: 2})
	if err != nil {
		t.Fatal(err)
	}

	if len(byDirector) != 5 {
		t.Fatalf("director 2 page 2 returned %d movies, want 5", len(byDirector))
	}

	byGenre, err := s.ListMovies(ctx, query.MovieQuery{GenreID: ptr(int64(3)), Page: 1})
	if err != nil {
		t.Fatal(err)
	}

	if len(byGenre) != 10 {
		t.Fatalf("genre 3 page 1 returned %d movies, want 10", len(byGenre))
	}

	for i := 1; i < len(byGenre); i++ {
		if byGenre[i-1].ID >= byGenre[i].ID {
			t.Fatal("movies are not in ascending id order")
		}
	}
}

func TestDirectorLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	d := models.Director{Name: ptr("Nolan")}
	if err := s.CreateDirector(ctx, &d); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetDirector(ctx, d.ID)
	if err != nil {
		t.Fatal(err)
	}

	if *got.Name != "Nolan" {
		t.Fatalf("name = %q", *got.Name)
	}

	if err := s.ReplaceDirector(ctx, d.ID, models.NameInput{}); err != nil {
		t.Fatal(err)
	}

	got, err = s.GetDirector(ctx, d.ID)
	if err != nil {
		t.Fatal(err)
	}

	if got.Name != nil {
		t.Fatalf("name = %q, want null after replace without name", *got.Name)
	}

	all, err := s.ListDirectors(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if len(all) != 1 {
		t.Fatalf("list returned %d directors", len(all))
	}

	if err := s.DeleteDirector(ctx, d.ID); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteDirector(ctx, d.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestGenreLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	g := models.Genre{Name: ptr("Drama")}
	if err := s.CreateGenre(ctx, &g); err != nil {
		t.Fatal(err)
	}

	if err := s.ReplaceGenre(ctx, g.ID, models.NameInput{Name: ptr("Thriller")}); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetGenre(ctx, g.ID)
	if err != nil {
		t.Fatal(err)
	}

	if *got.Name != "Thriller" {
		t.Fatalf("name = %q", *got.Name)
	}

	if err := s.ReplaceGenre(ctx, g.ID+1, models.NameInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("replace missing genre: got %v, want ErrNotFound", err)
	}

	if err := s.DeleteGenre(ctx, g.ID); err != nil {
		t.Fatal(err)
	}

	genres, err := s.ListGenres(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if len(genres) != 0 {
		t.Fatalf("list returned %d genres after delete", len(genres))
	}
}

func TestDeletingDirectorLeavesMovieReference(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	d := models.Director{Name: ptr("Mann")}
	if err := s.CreateDirector(ctx, &d); err != nil {
		t.Fatal(err)
	}

	movie := models.MovieInput{Title: ptr("Heat"), DirectorID: ptr(d.ID)}.Movie()
	if err := s.CreateMovie(ctx, &movie); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteDirector(ctx, d.ID); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetMovie(ctx, movie.ID)
	if err != nil {
		t.Fatal(err)
	}

	if got.DirectorID == nil || *got.DirectorID != d.ID {
		t.Fatalf("director_id = %v, want dangling %d", got.DirectorID, d.ID)
	}
}

func TestMovieMayReferenceUnknownGenre(t *testing.T) {
	s := newTestStore(t)

	movie := models.MovieInput{Title: ptr("Heat"), GenreID: ptr(int64(999))}.Movie()
	if err := s.CreateMovie(context.Background(), &movie); err != nil {
		t.Fatalf("unknown genre id was rejected: %v", err)
	}
}
