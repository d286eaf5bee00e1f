package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ProfileResponse mirrors the stored user minus the password hash.
type ProfileResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func UserToProfile(user *entity.User) ProfileResponse {
	return ProfileResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}
}
