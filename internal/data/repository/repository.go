package repository

import (
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

// Repository groups the storage interfaces. The postgres and in-memory
// implementations are interchangeable behind it.
type Repository struct {
	Movie MovieRepository
	User  UserRepository
}

// NewRepository wires the postgres-backed implementations.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMovieRepository(db, log),
		User:  NewUserRepository(db, log),
	}
}
