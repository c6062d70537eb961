package repository

import (
	"context"
	"fmt"

	"cinerank-auth/pkg/database"

	"go.uber.org/zap"
)

// SchemaRepository creates the tables this service owns. Ensure is idempotent
// and safe to call any number of times.
type SchemaRepository interface {
	Ensure(ctx context.Context) error
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS otps (
		id BIGSERIAL PRIMARY KEY,
		target TEXT NOT NULL,
		code TEXT NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		consumed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_otps_target ON otps(target)`,
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT,
		email TEXT UNIQUE,
		phone TEXT,
		username TEXT UNIQUE,
		age_category TEXT,
		genres JSONB NOT NULL DEFAULT '[]'::jsonb,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

type schemaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSchemaRepository(db database.PgxIface, log *zap.Logger) SchemaRepository {
	return &schemaRepository{
		db:  db,
		log: log.With(zap.String("repository", "schema")),
	}
}

func (r *schemaRepository) Ensure(ctx context.Context) error {
	for i, stmt := range schemaStatements {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			r.log.Debug("Schema statement failed", zap.Error(err), zap.Int("statement", i))
			return fmt.Errorf("ensure schema statement %d: %w", i, err)
		}
	}
	return nil
}
