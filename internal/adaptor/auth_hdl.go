package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	config  *utils.Config
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, config *utils.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		config:  config,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /api/token: exchanges credentials for a bearer
// token and also sets it as an httponly cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseUnprocessable(w, "Validation failed", validationErrors)
		return
	}

	token, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if strings.Contains(err.Error(), "invalid credentials") {
			utils.ResponseUnauthorized(w, "Incorrect username or password")
			return
		}
		h.log.Error("Login failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token.AccessToken,
		Path:     "/",
		Expires:  token.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	utils.ResponseSuccess(w, "Login successful", token)
}

// Profile handles GET /api/profile (authenticated)
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.Profile(r.Context(), username)
	if err != nil {
		if strings.Contains(err.Error(), "invalid user") {
			utils.ResponseUnauthorized(w, "Invalid user")
			return
		}
		h.log.Error("Failed to load profile", zap.Error(err), zap.String("username", username))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// Dashboard handles GET /api/dashboard (admin only)
func (h *AuthHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.Profile(r.Context(), username)
	if err != nil {
		h.log.Error("Failed to load dashboard user", zap.Error(err), zap.String("username", username))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("Welcome to the admin dashboard, %s!", username), profile)
}
