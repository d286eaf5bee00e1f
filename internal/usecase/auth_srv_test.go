package usecase

import (
	"context"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/memory"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture(t *testing.T) (AuthService, *repository.Repository, *utils.Config) {
	t.Helper()

	repo := memory.NewRepository(zap.NewNop())
	config := &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "auth-service-test-secret",
			ExpiryHours: 1,
		},
	}

	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	require.NoError(t, repo.User.Create(context.Background(), &entity.User{
		Username:     "reich",
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}))

	return NewAuthService(repo, config, zap.NewNop()), repo, config
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, _, config := newAuthFixture(t)

	token, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "reich",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	claims, err := utils.ParseToken(token.AccessToken, config.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "reich", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "reich",
		Password: "wrong",
	})
	assert.ErrorContains(t, err, "invalid credentials")
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "nobody",
		Password: "correct-horse",
	})

	// Same message as a bad password: no user enumeration.
	assert.ErrorContains(t, err, "invalid credentials")
}

func TestProfileStripsPasswordHash(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	profile, err := svc.Profile(context.Background(), "reich")
	require.NoError(t, err)
	assert.Equal(t, "reich", profile.Username)
	assert.Equal(t, "admin", profile.Role)
	assert.NotZero(t, profile.ID)
}

func TestProfileUnknownUser(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Profile(context.Background(), "nobody")
	assert.ErrorContains(t, err, "invalid user")
}
