package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(config.JWT, log)
	admin := middleware.Admin(log)

	// Public routes: anyone can browse the catalog
	r.Get("/api/movies", movieHandler.GetMovies)
	r.Get("/api/movies/by_category", movieHandler.FilterMovies)
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)

	// Write operations are admin only
	r.With(auth, admin).Post("/api/movies", movieHandler.CreateMovie)
	r.With(auth, admin).Put("/api/movies/{id}", movieHandler.UpdateMovie)
	r.With(auth, admin).Delete("/api/movies/{id}", movieHandler.DeleteMovie)
}
