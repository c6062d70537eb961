package usecase

import (
	"context"
	"fmt"
	"strings"

	"cinerank-auth/internal/data/entity"
	"cinerank-auth/internal/data/repository"
	"cinerank-auth/internal/dto/request"
	"cinerank-auth/internal/dto/response"
	"cinerank-auth/pkg/utils"

	"go.uber.org/zap"
)

const defaultDisplayName = "Guest"

type UserService interface {
	Upsert(ctx context.Context, req *request.UpsertUserRequest) (*response.UserResponse, error)
	// Lookup returns nil without error when nothing matches.
	Lookup(ctx context.Context, key request.LookupUser) (*response.UserResponse, error)
	SignIn(ctx context.Context, req *request.SignInRequest) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	newGuest func() string
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		newGuest: func() string { return entity.GuestPrefix + utils.GenerateUUIDString() },
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) Upsert(ctx context.Context, req *request.UpsertUserRequest) (*response.UserResponse, error) {
	req.ID = strings.TrimSpace(req.ID)
	req.Profile.Trim()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Upsert validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	return us.store(ctx, req.Profile.ToEntity(req.ID))
}

func (us *userService) SignIn(ctx context.Context, req *request.SignInRequest) (*response.UserResponse, error) {
	req.ID = strings.TrimSpace(req.ID)
	req.Profile.Trim()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Sign-in validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	if req.Name == "" {
		req.Name = defaultDisplayName
	}

	return us.store(ctx, req.Profile.ToEntity(us.chooseID(req)))
}

// chooseID keeps an explicit id, otherwise prefers email, then phone, then
// username, and finally mints a guest id.
func (us *userService) chooseID(req *request.SignInRequest) string {
	switch {
	case req.ID != "":
		return req.ID
	case req.Email != "":
		return entity.EmailTarget(req.Email)
	case entity.PhoneTarget(req.Phone) != "":
		return entity.PhoneTarget(req.Phone)
	case req.Username != "":
		return req.Username
	default:
		return us.newGuest()
	}
}

func (us *userService) store(ctx context.Context, user *entity.User) (*response.UserResponse, error) {
	stored, err := us.userRepo.Upsert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	us.log.Info("User upserted",
		zap.String("user_id", stored.ID),
		zap.Int("genres", len(stored.Genres)),
	)
	return response.UserToResponse(stored), nil
}

func (us *userService) Lookup(ctx context.Context, key request.LookupUser) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(key); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	var (
		user *entity.User
		err  error
	)
	switch key.Field {
	case request.LookupByID:
		user, err = us.userRepo.FindByID(ctx, key.Value)
	case request.LookupByUsername:
		user, err = us.userRepo.FindByUsername(ctx, key.Value)
	case request.LookupByEmail:
		user, err = us.userRepo.FindByEmail(ctx, entity.EmailTarget(key.Value))
	default:
		return nil, fmt.Errorf("%w: unsupported lookup field %q", entity.ErrValidation, key.Field)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user by %s: %w", key.Field, err)
	}
	if user == nil {
		us.log.Debug("User not found", zap.String("field", string(key.Field)), zap.String("value", key.Value))
		return nil, nil
	}

	return response.UserToResponse(user), nil
}
