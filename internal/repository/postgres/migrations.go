package postgres

import (
	"context"
	"fmt"
)

// Migrate создаёт схему при старте. Сервис - единственный владелец этих
// таблиц, поэтому достаточно идемпотентного bootstrap без версионирования.
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS museums (
			id                text PRIMARY KEY,
			name              text NOT NULL,
			description       text NOT NULL,
			short_description text NOT NULL,
			address           text NOT NULL,
			latitude          double precision NOT NULL,
			longitude         double precision NOT NULL,
			image_url         text NOT NULL,
			category          text NOT NULL,
			free_entry        boolean NOT NULL,
			opening_hours     text NOT NULL,
			website           text,
			phone             text,
			transport         jsonb NOT NULL DEFAULT '[]',
			nearby_eateries   jsonb NOT NULL DEFAULT '[]',
			featured          boolean NOT NULL DEFAULT false,
			rating            double precision NOT NULL,
			created_at        timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_museums_category ON museums (category)`,
		`CREATE INDEX IF NOT EXISTS idx_museums_featured ON museums (featured) WHERE featured`,
		`CREATE TABLE IF NOT EXISTS favorites (
			museum_id  text PRIMARY KEY REFERENCES museums (id),
			created_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS tours (
			id          text PRIMARY KEY,
			kind        text NOT NULL CHECK (kind IN ('predefined', 'custom')),
			name        text NOT NULL,
			description text NOT NULL DEFAULT '',
			duration    text NOT NULL DEFAULT '',
			distance    text NOT NULL DEFAULT '',
			color       text NOT NULL DEFAULT '',
			museum_ids  text[] NOT NULL,
			position    integer NOT NULL DEFAULT 0,
			created_at  timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tours_kind ON tours (kind)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	db.logger.Info("Database schema ready")
	return nil
}
