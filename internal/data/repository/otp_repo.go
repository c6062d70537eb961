package repository

import (
	"context"
	"errors"
	"fmt"

	"cinerank-auth/internal/data/entity"
	"cinerank-auth/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OTPRepository interface {
	// Replace drops the unconsumed codes of otp.Target and stores otp,
	// filling in its ID and CreatedAt.
	Replace(ctx context.Context, otp *entity.OTP) error
	FindLatest(ctx context.Context, target string) (*entity.OTP, error)
	// Consume flips consumed from false to true. It reports false when the
	// row was already consumed (or is gone), which callers treat as replay.
	Consume(ctx context.Context, id int64) (bool, error)
}

// rowQuerier is implemented by both the pool and pgx.Tx.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

const deleteUnconsumedOTPQuery = `
	DELETE FROM otps
	WHERE target = $1 AND consumed = FALSE
`

const insertOTPQuery = `
	INSERT INTO otps (target, code, expires_at, consumed)
	VALUES ($1, $2, $3, FALSE)
	RETURNING id, created_at
`

func (r *otpRepository) Replace(ctx context.Context, otp *entity.OTP) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin OTP transaction", zap.Error(err), zap.String("target", otp.Target))
		return fmt.Errorf("begin replace OTP for %s: %w", otp.Target, err)
	}

	if _, err := tx.Exec(ctx, deleteUnconsumedOTPQuery, otp.Target); err != nil {
		// Clearing stale codes is best-effort: the newest row wins on verify.
		r.log.Warn("Failed to clear previous OTPs", zap.Error(err), zap.String("target", otp.Target))
		r.rollback(ctx, tx, otp.Target)
		return r.insert(ctx, r.db, otp)
	}

	if err := r.insert(ctx, tx, otp); err != nil {
		r.rollback(ctx, tx, otp.Target)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit OTP", zap.Error(err), zap.String("target", otp.Target))
		return fmt.Errorf("commit OTP for %s: %w", otp.Target, err)
	}

	return nil
}

func (r *otpRepository) insert(ctx context.Context, q rowQuerier, otp *entity.OTP) error {
	err := q.QueryRow(ctx, insertOTPQuery,
		otp.Target,
		otp.Code,
		otp.ExpiresAt,
	).Scan(&otp.ID, &otp.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create OTP",
			zap.Error(err),
			zap.String("target", otp.Target),
		)
		return fmt.Errorf("create OTP for %s: %w", otp.Target, err)
	}

	otp.Consumed = false
	return nil
}

func (r *otpRepository) rollback(ctx context.Context, tx pgx.Tx, target string) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		r.log.Warn("Failed to roll back OTP transaction", zap.Error(err), zap.String("target", target))
	}
}

func (r *otpRepository) FindLatest(ctx context.Context, target string) (*entity.OTP, error) {
	query := `
		SELECT id, target, code, expires_at, consumed, created_at
		FROM otps
		WHERE target = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var otp entity.OTP
	err := r.db.QueryRow(ctx, query, target).Scan(
		&otp.ID,
		&otp.Target,
		&otp.Code,
		&otp.ExpiresAt,
		&otp.Consumed,
		&otp.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find latest OTP",
			zap.Error(err),
			zap.String("target", target),
		)
		return nil, fmt.Errorf("find latest OTP for %s: %w", target, err)
	}

	return &otp, nil
}

func (r *otpRepository) Consume(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE otps
		SET consumed = TRUE
		WHERE id = $1 AND consumed = FALSE
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to consume OTP",
			zap.Error(err),
			zap.Int64("otp_id", id),
		)
		return false, fmt.Errorf("consume OTP %d: %w", id, err)
	}

	return result.RowsAffected() == 1, nil
}
