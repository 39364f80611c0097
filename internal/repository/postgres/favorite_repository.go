package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/museums-api/internal/domain/repository"
	"github.com/museums-api/internal/pkg/errors"
)

type favoriteRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFavoriteRepository(db *DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Add идемпотентен через ON CONFLICT DO NOTHING.
func (r *favoriteRepository) Add(ctx context.Context, museumID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO favorites (museum_id) VALUES ($1) ON CONFLICT (museum_id) DO NOTHING`,
		museumID,
	)
	if err != nil {
		r.logger.Error("Failed to add favorite", zap.String("museum_id", museumID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

// Remove идемпотентен: ноль удалённых строк не ошибка.
func (r *favoriteRepository) Remove(ctx context.Context, museumID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE museum_id = $1`,
		museumID,
	)
	if err != nil {
		r.logger.Error("Failed to remove favorite", zap.String("museum_id", museumID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, museumID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM favorites WHERE museum_id = $1)`,
		museumID,
	)
	if err != nil {
		r.logger.Error("Failed to check favorite", zap.String("museum_id", museumID), zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	return exists, nil
}

func (r *favoriteRepository) List(ctx context.Context) ([]string, error) {
	ids := make([]string, 0)
	err := r.db.SelectContext(ctx, &ids,
		`SELECT museum_id FROM favorites ORDER BY created_at, museum_id`)
	if err != nil {
		r.logger.Error("Failed to list favorites", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return ids, nil
}
