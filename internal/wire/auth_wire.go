package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(config.JWT, log)
	admin := middleware.Admin(log)

	// Public
	r.Post("/api/token", authHandler.Login)

	// Identity gated
	r.With(auth).Get("/api/profile", authHandler.Profile)
	r.With(auth, admin).Get("/api/dashboard", authHandler.Dashboard)
}
