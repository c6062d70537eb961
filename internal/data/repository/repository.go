package repository

import (
	"cinerank-auth/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	DB     database.PgxIface
	Schema SchemaRepository
	OTP    OTPRepository
	User   UserRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		DB:     db,
		Schema: NewSchemaRepository(db, log),
		OTP:    NewOTPRepository(db, log),
		User:   NewUserRepository(db, log),
	}
}
