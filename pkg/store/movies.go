package store

import (
	"context"

	"github.com/leminhohoho/movie-lens/api/pkg/models"
	"github.com/leminhohoho/movie-lens/api/pkg/query"
)

// CreateMovie inserts movie and sets its id.
func (s *Store) CreateMovie(ctx context.Context, movie *models.Movie) error {
	if err := create(ctx, s.db, movie); err != nil {
		return err
	}

	s.logger.Info("new movie added to db", "movie_id", movie.ID)

	return nil
}

func (s *Store) GetMovie(ctx context.Context, id int64) (*models.Movie, error) {
	return get[models.Movie](ctx, s.db, id)
}

// ListMovies returns the movies selected by q in ascending id order.
func (s *Store) ListMovies(ctx context.Context, q query.MovieQuery) ([]models.Movie, error) {
	return list[models.Movie](ctx, s.db, q.Scopes()...)
}

// ReplaceMovie overwrites every mutable attribute of the movie. Attributes
// the input leaves nil become null.
func (s *Store) ReplaceMovie(ctx context.Context, id int64, in models.MovieInput) error {
	if err := update[models.Movie](ctx, s.db, id, in.Columns()); err != nil {
		return err
	}

	s.logger.Info("movie replaced", "movie_id", id)

	return nil
}

// PatchMovie writes only the attributes present in the patch.
func (s *Store) PatchMovie(ctx context.Context, id int64, patch models.MoviePatch) error {
	cols := patch.Columns()

	if err := update[models.Movie](ctx, s.db, id, cols); err != nil {
		return err
	}

	s.logger.Info("movie patched", "movie_id", id, "columns", len(cols))

	return nil
}

func (s *Store) DeleteMovie(ctx context.Context, id int64) error {
	if err := remove[models.Movie](ctx, s.db, id); err != nil {
		return err
	}

	s.logger.Info("movie deleted", "movie_id", id)

	return nil
}
