package store

import (
	"context"

	"github.com/leminhohoho/movie-lens/api/pkg/models"
)

func (s *Store) CreateDirector(ctx context.Context, d *models.Director) error {
	if err := create(ctx, s.db, d); err != nil {
		return err
	}

	s.logger.Info("new director added to db", "director_id", d.ID)

	return nil
}

func (s *Store) GetDirector(ctx context.Context, id int64) (*models.Director, error) {
	return get[models.Director](ctx, s.db, id)
}

func (s *Store) ListDirectors(ctx context.Context) ([]models.Director, error) {
	return list[models.Director](ctx, s.db)
}

func (s *Store) ReplaceDirector(ctx context.Context, id int64, in models.NameInput) error {
	return update[models.Director](ctx, s.db, id, in.Columns())
}

// DeleteDirector removes the director. Movies pointing at it keep their
// director_id.
func (s *Store) DeleteDirector(ctx context.Context, id int64) error {
	if err := remove[models.Director](ctx, s.db, id); err != nil {
		return err
	}

	s.logger.Info("director deleted", "director_id", id)

	return nil
}

func (s *Store) CreateGenre(ctx context.Context, g *models.Genre) error {
	if err := create(ctx, s.db, g); err != nil {
		return err
	}

	s.logger.Info("new genre added to db", "genre_id", g.ID)

	return nil
}

func (s *Store) GetGenre(ctx context.Context, id int64) (*models.Genre, error) {
	return get[models.Genre](ctx, s.db, id)
}

func (s *Store) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return list[models.Genre](ctx, s.db)
}

func (s *Store) ReplaceGenre(ctx context.Context, id int64, in models.NameInput) error {
	return update[models.Genre](ctx, s.db, id, in.Columns())
}

// DeleteGenre removes the genre. Movies pointing at it keep their genre_id.
func (s *Store) DeleteGenre(ctx context.Context, id int64) error {
	if err := remove[models.Genre](ctx, s.db, id); err != nil {
		return err
	}

	s.logger.Info("genre deleted", "genre_id", id)

	return nil
}
