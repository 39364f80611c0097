package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/museums-api/internal/domain"
	"github.com/museums-api/internal/domain/repository"
	"github.com/museums-api/internal/pkg/errors"
)

const tourColumns = `id, kind, name, description, duration, distance, color, museum_ids, created_at`

type tourRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTourRepository(db *DB) repository.TourRepository {
	return &tourRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *tourRepository) ListPredefined(ctx context.Context) ([]domain.Tour, error) {
	// position сохраняет авторский порядок сидов.
	query := `SELECT ` + tourColumns + ` FROM tours WHERE kind = $1 ORDER BY position, id`
	return r.queryTours(ctx, query, domain.TourKindPredefined)
}

func (r *tourRepository) ListCustom(ctx context.Context) ([]domain.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours WHERE kind = $1 ORDER BY created_at, id`
	return r.queryTours(ctx, query, domain.TourKindCustom)
}

func (r *tourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours WHERE id = $1`

	t, err := scanTour(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrTourNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get tour by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return t, nil
}

func (r *tourRepository) InsertCustom(ctx context.Context, t *domain.Tour) error {
	query := `
		INSERT INTO tours (id, kind, name, description, duration, distance, color, museum_ids, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID, domain.TourKindCustom, t.Name, t.Description,
		t.Duration, t.Distance, t.Color, pq.Array(t.MuseumIDs), t.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert custom tour", zap.String("id", t.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *tourRepository) DeleteCustom(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tours WHERE id = $1 AND kind = $2`,
		id, domain.TourKindCustom,
	)
	if err != nil {
		r.logger.Error("Failed to delete custom tour", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrTourNotFound
	}

	return nil
}

// SetPredefined атомарно заменяет набор предустановленных туров.
func (r *tourRepository) SetPredefined(ctx context.Context, tours []domain.Tour) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin tx", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM tours WHERE kind = $1`, domain.TourKindPredefined,
	); err != nil {
		r.logger.Error("Failed to clear predefined tours", zap.Error(err))
		return errors.ErrDatabaseError
	}

	query := `
		INSERT INTO tours (id, kind, name, description, duration, distance, color, museum_ids, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for i, t := range tours {
		if _, err := tx.ExecContext(ctx, query,
			t.ID, domain.TourKindPredefined, t.Name, t.Description,
			t.Duration, t.Distance, t.Color, pq.Array(t.MuseumIDs), i,
		); err != nil {
			r.logger.Error("Failed to insert predefined tour", zap.String("id", t.ID), zap.Error(err))
			return errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit predefined tours", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *tourRepository) queryTours(ctx context.Context, query string, args ...interface{}) ([]domain.Tour, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query tours", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	tours := make([]domain.Tour, 0)
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			r.logger.Error("Failed to scan tour row", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		tours = append(tours, *t)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Tour rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return tours, nil
}

func scanTour(row rowScanner) (*domain.Tour, error) {
	var (
		t   domain.Tour
		ids pq.StringArray
	)

	err := row.Scan(
		&t.ID, &t.Kind, &t.Name, &t.Description,
		&t.Duration, &t.Distance, &t.Color, &ids, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.MuseumIDs = []string(ids)

	return &t, nil
}
