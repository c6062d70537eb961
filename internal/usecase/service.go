package usecase

import (
	"cinerank-auth/internal/data/repository"
	"cinerank-auth/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	OTP  OTPService
	User UserService
}

func NewService(repo *repository.Repository, sender CodeSender, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		OTP:  NewOTPService(repo.OTP, sender, config, log),
		User: NewUserService(repo.User, log),
	}
}
