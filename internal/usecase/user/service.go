package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/PratikPaudel/nwcs-inventory/internal/config"
	domainUser "github.com/PratikPaudel/nwcs-inventory/internal/domain/user"
	"github.com/PratikPaudel/nwcs-inventory/internal/logger"
	appErrors "github.com/PratikPaudel/nwcs-inventory/pkg/errors"
	"github.com/PratikPaudel/nwcs-inventory/pkg/utils"
)

// Service implements portal account registration and login. Portal users are
// the actors behind every history entry; device users never log in.
type Service struct {
	userRepo domainUser.Repository
	jwtCfg   config.JWTConfig
}

// NewService creates a new user service
func NewService(userRepo domainUser.Repository, jwtCfg config.JWTConfig) *Service {
	return &Service{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
	}
}

// Register creates a portal account and returns a signed token pair
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.NewAppError("WEAK_PASSWORD", err.Error(), err)
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, domainUser.ErrUserAlreadyExists
	} else if !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &domainUser.User{
		Username:       req.Username,
		Email:          req.Email,
		PasswordHashed: hashed,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		IsActive:       true,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("User registered",
		zap.String("user_id", u.ID.String()),
		zap.String("event", "user_registered"),
	)

	return s.issueTokens(u)
}

// Login verifies credentials and returns a signed token pair. Wrong email
// and wrong password produce the same error.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, appErrors.NewAppError("INVALID_CREDENTIALS", "Invalid email or password", nil)
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, appErrors.NewAppError("ACCOUNT_DISABLED", "Account is disabled", nil)
	}

	if !utils.CheckPassword(u.PasswordHashed, req.Password) {
		return nil, appErrors.NewAppError("INVALID_CREDENTIALS", "Invalid email or password", nil)
	}

	logger.Info("User logged in",
		zap.String("user_id", u.ID.String()),
		zap.String("event", "user_logged_in"),
	)

	return s.issueTokens(u)
}

// GetProfile returns the account behind an authenticated request
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := ToUserResponse(u)
	return &resp, nil
}

func (s *Service) issueTokens(u *domainUser.User) (*AuthResponse, error) {
	pair, err := utils.GenerateTokenPair(u.ID, u.Email, u.IsAdmin, s.jwtCfg.Secret, s.jwtCfg.ExpiryHours, s.jwtCfg.RefreshExpiryHours)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &AuthResponse{
		User:         ToUserResponse(u),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	}, nil
}
