package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/museums-api/internal/domain"
	"github.com/museums-api/internal/domain/repository"
	"github.com/museums-api/internal/pkg/errors"
)

const museumColumns = `
	id, name, description, short_description, address,
	latitude, longitude, image_url, category, free_entry,
	opening_hours, website, phone, transport, nearby_eateries,
	featured, rating, created_at
`

type museumRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewMuseumRepository(db *DB) repository.MuseumRepository {
	return &museumRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// List фильтрует на стороне БД; ORDER BY created_at, id даёт стабильный
// порядок между вызовами.
func (r *museumRepository) List(ctx context.Context, filter domain.MuseumFilter) ([]domain.Museum, error) {
	query := `SELECT ` + museumColumns + ` FROM museums`

	var (
		conditions []string
		args       []interface{}
	)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern)
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR short_description ILIKE $%d OR description ILIKE $%d)", n, n, n,
		))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.FreeOnly {
		conditions = append(conditions, "free_entry")
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at, id"

	return r.queryMuseums(ctx, query, args...)
}

func (r *museumRepository) GetByID(ctx context.Context, id string) (*domain.Museum, error) {
	query := `SELECT ` + museumColumns + ` FROM museums WHERE id = $1`

	m, err := scanMuseum(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrMuseumNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get museum by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return m, nil
}

func (r *museumRepository) Featured(ctx context.Context) ([]domain.Museum, error) {
	query := `SELECT ` + museumColumns + ` FROM museums WHERE featured ORDER BY created_at, id`
	return r.queryMuseums(ctx, query)
}

func (r *museumRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.SelectContext(ctx, &categories,
		`SELECT DISTINCT category FROM museums ORDER BY category`)
	if err != nil {
		r.logger.Error("Failed to list categories", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return categories, nil
}

func (r *museumRepository) Insert(ctx context.Context, m *domain.Museum) error {
	transportJSON, err := json.Marshal(m.Transport)
	if err != nil {
		return fmt.Errorf("marshal transport: %w", err)
	}
	eateriesJSON, err := json.Marshal(m.NearbyEateries)
	if err != nil {
		return fmt.Errorf("marshal nearby_eateries: %w", err)
	}

	query := `
		INSERT INTO museums (
			id, name, description, short_description, address,
			latitude, longitude, image_url, category, free_entry,
			opening_hours, website, phone, transport, nearby_eateries,
			featured, rating, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18
		)
	`

	_, err = r.db.ExecContext(ctx, query,
		m.ID, m.Name, m.Description, m.ShortDescription, m.Address,
		m.Latitude, m.Longitude, m.ImageURL, m.Category, m.FreeEntry,
		m.OpeningHours, m.Website, m.Phone, transportJSON, eateriesJSON,
		m.Featured, m.Rating, m.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert museum", zap.String("id", m.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *museumRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT count(*) FROM museums`); err != nil {
		r.logger.Error("Failed to count museums", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return count, nil
}

func (r *museumRepository) queryMuseums(ctx context.Context, query string, args ...interface{}) ([]domain.Museum, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query museums", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	museums := make([]domain.Museum, 0)
	for rows.Next() {
		m, err := scanMuseum(rows)
		if err != nil {
			r.logger.Error("Failed to scan museum row", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		museums = append(museums, *m)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Museum rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return museums, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMuseum(row rowScanner) (*domain.Museum, error) {
	var (
		m            domain.Museum
		transportRaw []byte
		eateriesRaw  []byte
	)

	err := row.Scan(
		&m.ID, &m.Name, &m.Description, &m.ShortDescription, &m.Address,
		&m.Latitude, &m.Longitude, &m.ImageURL, &m.Category, &m.FreeEntry,
		&m.OpeningHours, &m.Website, &m.Phone, &transportRaw, &eateriesRaw,
		&m.Featured, &m.Rating, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.Transport = make([]domain.TransportLink, 0)
	if len(transportRaw) > 0 {
		if err := json.Unmarshal(transportRaw, &m.Transport); err != nil {
			return nil, fmt.Errorf("unmarshal transport: %w", err)
		}
	}

	m.NearbyEateries = make([]domain.NearbyEatery, 0)
	if len(eateriesRaw) > 0 {
		if err := json.Unmarshal(eateriesRaw, &m.NearbyEateries); err != nil {
			return nil, fmt.Errorf("unmarshal nearby_eateries: %w", err)
		}
	}

	return &m, nil
}
