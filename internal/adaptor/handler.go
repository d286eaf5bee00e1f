package adaptor

import (
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	Movie *MovieHandler
	File  *FileHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, config, log),
		Movie: NewMovieHandler(service.Movie, log),
		File:  NewFileHandler(config.Files, log),
	}
}
