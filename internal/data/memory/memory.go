// Package memory provides in-memory implementations of the repository
// interfaces so the service can run and be tested without a database.
package memory

import (
	"movie-catalog/internal/data/repository"

	"go.uber.org/zap"
)

// NewRepository wires the in-memory implementations behind the same
// Repository the postgres variant fills.
func NewRepository(log *zap.Logger) *repository.Repository {
	return &repository.Repository{
		Movie: NewMovieStore(log),
		User:  NewUserStore(log),
	}
}
