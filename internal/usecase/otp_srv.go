package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"cinerank-auth/internal/data/entity"
	"cinerank-auth/internal/data/repository"
	"cinerank-auth/internal/dto/request"
	"cinerank-auth/internal/dto/response"
	"cinerank-auth/pkg/notify"
	"cinerank-auth/pkg/utils"

	"go.uber.org/zap"
)

type OTPService interface {
	Request(ctx context.Context, req *request.RequestOTP) (*response.OTPResponse, error)
	Verify(ctx context.Context, req *request.VerifyOTP) (*response.OTPResponse, error)
}

// CodeSender delivers an issued code out of band. Delivery is best-effort.
type CodeSender interface {
	SendCode(ctx context.Context, target, code string, validity time.Duration) error
}

type otpService struct {
	repo          repository.OTPRepository
	sender        CodeSender
	validity      time.Duration
	notifyTimeout time.Duration
	exposeCode    bool
	now           func() time.Time
	log           *zap.Logger
}

func NewOTPService(
	repo repository.OTPRepository,
	sender CodeSender,
	config *utils.Config,
	log *zap.Logger,
) OTPService {
	validity := entity.OTPValidity
	if config.OTP.ExpiryMinutes > 0 {
		validity = time.Duration(config.OTP.ExpiryMinutes) * time.Minute
	}

	notifyTimeout := config.OTP.NotifyTimeout
	if notifyTimeout <= 0 {
		notifyTimeout = 10 * time.Second
	}

	return &otpService{
		repo:          repo,
		sender:        sender,
		validity:      validity,
		notifyTimeout: notifyTimeout,
		exposeCode:    !config.IsProduction(),
		now:           time.Now,
		log:           log.With(zap.String("service", "otp")),
	}
}

func (s *otpService) Request(ctx context.Context, req *request.RequestOTP) (*response.OTPResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("OTP request validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Generate code
	code, err := utils.GenerateOTP()
	if err != nil {
		s.log.Error("Failed to generate OTP", zap.Error(err))
		return nil, fmt.Errorf("generate OTP: %w", err)
	}

	// 3. Replace any live code for the target
	otp := &entity.OTP{
		Target:    req.Target,
		Code:      code,
		ExpiresAt: s.now().Add(s.validity),
	}
	if err := s.repo.Replace(ctx, otp); err != nil {
		return nil, fmt.Errorf("store OTP for %s: %w", req.Target, err)
	}

	// 4. Deliver, never fatal
	s.deliver(ctx, otp)

	s.log.Info("OTP issued",
		zap.String("target", otp.Target),
		zap.Int64("otp_id", otp.ID),
		zap.Time("expires_at", otp.ExpiresAt),
	)

	resp := &response.OTPResponse{OK: true}
	if s.exposeCode {
		s.log.Debug("OTP code (non-production)", zap.String("target", otp.Target), zap.String("code", code))
		resp.DevCode = code
	}
	return resp, nil
}

func (s *otpService) deliver(ctx context.Context, otp *entity.OTP) {
	if s.sender == nil {
		return
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()

	err := s.sender.SendCode(sendCtx, otp.Target, otp.Code, s.validity)
	switch {
	case err == nil:
		s.log.Info("OTP delivered", zap.String("target", otp.Target))
	case errors.Is(err, notify.ErrNoChannel):
		s.log.Debug("No delivery channel for target", zap.String("target", otp.Target))
	default:
		s.log.Warn("OTP delivery failed", zap.Error(err), zap.String("target", otp.Target))
	}
}

func (s *otpService) Verify(ctx context.Context, req *request.VerifyOTP) (*response.OTPResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("OTP verify validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Newest row for the target decides
	otp, err := s.repo.FindLatest(ctx, req.Target)
	if err != nil {
		return nil, fmt.Errorf("load OTP for %s: %w", req.Target, err)
	}

	switch {
	case otp == nil:
		return nil, s.reject(req.Target, entity.ErrOTPNotRequested)
	case otp.Consumed:
		return nil, s.reject(req.Target, entity.ErrOTPAlreadyUsed)
	case otp.ExpiredAt(s.now()):
		return nil, s.reject(req.Target, entity.ErrOTPExpired)
	case subtle.ConstantTimeCompare([]byte(otp.Code), []byte(strings.TrimSpace(req.Code))) != 1:
		return nil, s.reject(req.Target, entity.ErrOTPInvalid)
	}

	// 3. Consume; losing the race means the row was used or replaced meanwhile
	consumed, err := s.repo.Consume(ctx, otp.ID)
	if err != nil {
		return nil, fmt.Errorf("consume OTP for %s: %w", req.Target, err)
	}
	if !consumed {
		return nil, s.reject(req.Target, s.lostConsume(ctx, req.Target, otp.ID))
	}

	s.log.Info("OTP verified", zap.String("target", req.Target), zap.Int64("otp_id", otp.ID))
	return &response.OTPResponse{OK: true}, nil
}

// lostConsume explains a zero-row consume. A newer row for the target means
// the checked code was superseded, so it no longer matches.
func (s *otpService) lostConsume(ctx context.Context, target string, id int64) error {
	latest, err := s.repo.FindLatest(ctx, target)
	if err != nil {
		s.log.Warn("Failed to re-read OTP after lost consume", zap.Error(err), zap.String("target", target))
		return entity.ErrOTPAlreadyUsed
	}
	if latest != nil && latest.ID != id {
		return entity.ErrOTPInvalid
	}
	return entity.ErrOTPAlreadyUsed
}

func (s *otpService) reject(target string, reason error) error {
	s.log.Warn("OTP verification rejected", zap.String("target", target), zap.String("reason", reason.Error()))
	return fmt.Errorf("verify OTP for %s: %w", target, reason)
}
