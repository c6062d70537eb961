package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cinerank-auth/internal/data/entity"
	"cinerank-auth/pkg/database"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type UserRepository interface {
	// Upsert inserts user or fully replaces the row with the same ID, and
	// returns the stored row.
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, name, email, phone, username, age_category, genres, updated_at`

func (ur *userRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (id, name, email, phone, username, age_category, genres, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			username = EXCLUDED.username,
			age_category = EXCLUDED.age_category,
			genres = EXCLUDED.genres,
			updated_at = NOW()
		RETURNING ` + userColumns

	genres := user.Genres
	if genres == nil {
		genres = []string{}
	}
	genresJSON, err := json.Marshal(genres)
	if err != nil {
		return nil, fmt.Errorf("encode genres for user %s: %w", user.ID, err)
	}

	stored, err := scanUser(ur.db.QueryRow(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Phone,
		user.Username,
		user.AgeCategory,
		string(genresJSON),
	))

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			field := conflictField(pgErr)
			ur.log.Warn("User upsert hit unique constraint",
				zap.String("user_id", user.ID),
				zap.String("constraint", pgErr.ConstraintName),
			)
			return nil, fmt.Errorf("upsert user %s: %s already in use: %w", user.ID, field, entity.ErrConflict)
		}

		ur.log.Error("Failed to upsert user",
			zap.Error(err),
			zap.String("user_id", user.ID),
		)
		return nil, fmt.Errorf("upsert user %s: %w", user.ID, err)
	}

	return stored, nil
}

func (ur *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return ur.findOne(ctx, "id", id)
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return ur.findOne(ctx, "email", email)
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return ur.findOne(ctx, "username", username)
}

// findOne looks a user up by one of the indexed columns. column is never
// caller supplied.
func (ur *userRepository) findOne(ctx context.Context, column, value string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = $1 LIMIT 1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, value))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by "+column,
			zap.Error(err),
			zap.String(column, value),
		)
		return nil, fmt.Errorf("find user by %s %s: %w", column, value, err)
	}

	return user, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		user       entity.User
		genresJSON []byte
	)

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Username,
		&user.AgeCategory,
		&genresJSON,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Genres = []string{}
	if len(genresJSON) > 0 {
		if err := json.Unmarshal(genresJSON, &user.Genres); err != nil {
			return nil, fmt.Errorf("decode genres for user %s: %w", user.ID, err)
		}
	}

	return &user, nil
}

func conflictField(pgErr *pgconn.PgError) string {
	switch {
	case strings.Contains(pgErr.ConstraintName, "username"):
		return "username"
	case strings.Contains(pgErr.ConstraintName, "email"):
		return "email"
	default:
		return "value"
	}
}
