package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error)
	Profile(ctx context.Context, username string) (*response.ProfileResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error) {
	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to find user")
	}

	// Same message for unknown user and wrong password.
	if user == nil {
		s.log.Warn("User not found for login", zap.String("username", req.Username))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("username", req.Username))
		return nil, fmt.Errorf("invalid credentials")
	}

	expiry := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	token, expiresAt, err := utils.GenerateToken(user.Username, string(user.Role), s.config.JWT.Secret, expiry)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to issue token")
	}

	s.log.Info("User logged in",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
		zap.Time("expires_at", expiresAt),
	)

	return &response.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *authService) Profile(ctx context.Context, username string) (*response.ProfileResponse, error) {
	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to load profile")
	}

	// The token can outlive the account.
	if user == nil {
		return nil, fmt.Errorf("invalid user")
	}

	profile := response.UserToProfile(user)
	return &profile, nil
}
