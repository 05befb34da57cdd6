package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/leminhohoho/movie-lens/api/pkg/config"
	"github.com/leminhohoho/movie-lens/api/pkg/logger"
	"github.com/leminhohoho/movie-lens/api/pkg/models"
)

// ErrNotFound is returned when no row has the requested id.
var ErrNotFound = errors.New("not found")

// Store owns the movie, director and genre tables. It is safe for use by
// concurrent requests; isolation is whatever the database provides.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

// Open connects to the configured database and creates missing tables.
func Open(cfg config.DBConfig, l *slog.Logger, debug bool) (*Store, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DbPath)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(l, debug),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	if cfg.Driver == config.DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite allows a single writer; queue requests in the pool instead of
		// failing with "database is locked".
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	l.Debug("store opened", "driver", cfg.Driver)

	return New(db, l), nil
}

// New wraps an already opened connection.
func New(db *gorm.DB, l *slog.Logger) *Store {
	return &Store{db: db, logger: l}
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func create[T any](ctx context.Context, db *gorm.DB, row *T) error {
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("insert %s: %w", tableOf[T](db), err)
	}
	return nil
}

func get[T any](ctx context.Context, db *gorm.DB, id int64) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, wrap(err, "select", tableOf[T](db), id)
	}
	return &row, nil
}

func list[T any](ctx context.Context, db *gorm.DB, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	rows := []T{}
	if err := db.WithContext(ctx).Scopes(scopes...).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", tableOf[T](db), err)
	}
	return rows, nil
}

// update writes cols to the row with the given id. Columns not named in cols
// keep their value; a nil value stores NULL.
func update[T any](ctx context.Context, db *gorm.DB, id int64, cols map[string]any) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row T
		if err := tx.First(&row, id).Error; err != nil {
			return err
		}

		if len(cols) == 0 {
			return nil
		}

		return tx.Model(&row).Updates(cols).Error
	})
	if err != nil {
		return wrap(err, "update", tableOf[T](db), id)
	}
	return nil
}

func remove[T any](ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return wrap(res.Error, "delete", tableOf[T](db), id)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %s %d: %w", tableOf[T](db), id, ErrNotFound)
	}

	return nil
}

func wrap(err error, op, table string, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %s %d: %w", op, table, id, ErrNotFound)
	}
	return fmt.Errorf("%s %s %d: %w", op, table, id, err)
}

func tableOf[T any](db *gorm.DB) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(T)); err != nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return stmt.Schema.Table
}
