package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"go.uber.org/zap"
)

const defaultRating = 5.0

type MovieService interface {
	GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error)
	FilterMovies(ctx context.Context, filter repository.MovieFilter) ([]response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieCreateRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID int64) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	// A window past the end of the collection is an empty page, not
	// an error.
	movies, err := s.repo.Movie.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("size", req.Size),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	total, err := s.repo.Movie.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count movies", zap.Error(err))
		return nil, fmt.Errorf("count movies: %w", err)
	}

	s.log.Debug("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("size", limit),
	)

	return response.NewPaginatedResponse(response.MoviesToResponse(movies), req.Page, limit, total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) FilterMovies(ctx context.Context, filter repository.MovieFilter) ([]response.MovieResponse, error) {
	if filter.Empty() {
		return nil, fmt.Errorf("invalid filter: at least one of category or year is required")
	}

	movies, err := s.repo.Movie.FindByFilter(ctx, filter)
	if err != nil {
		s.log.Error("Failed to filter movies",
			zap.Error(err),
			zap.Stringp("category", filter.Category),
			zap.Intp("year", filter.Year),
		)
		return nil, fmt.Errorf("filter movies: %w", err)
	}

	if len(movies) == 0 {
		return nil, fmt.Errorf("no movies found matching the given criteria")
	}

	s.log.Debug("Movies filtered",
		zap.Int("count", len(movies)),
		zap.Stringp("category", filter.Category),
		zap.Intp("year", filter.Year),
	)

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieCreateRequest) (*response.MovieResponse, error) {
	now := time.Now()
	movie := &entity.Movie{
		Title:     req.Title,
		Overview:  req.Overview,
		Year:      req.Year,
		Rating:    defaultRating,
		Category:  entity.DefaultCategory,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req.Rating != nil {
		movie.Rating = *req.Rating
	}
	if req.Category != nil {
		movie.Category = *req.Category
	}

	// The store assigns movie.ID.
	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	// Explicit merge over the fixed field set: only fields present in
	// the payload change, everything else keeps its stored value.
	updated := false

	if req.Title != nil {
		movie.Title = *req.Title
		updated = true
	}
	if req.Overview != nil {
		movie.Overview = *req.Overview
		updated = true
	}
	if req.Year != nil {
		movie.Year = *req.Year
		updated = true
	}
	if req.Rating != nil {
		movie.Rating = *req.Rating
		updated = true
	}
	if req.Category != nil {
		movie.Category = *req.Category
		updated = true
	}

	if updated {
		movie.UpdatedAt = time.Now()
		if err := s.repo.Movie.Update(ctx, movie); err != nil {
			s.log.Error("Failed to update movie",
				zap.Error(err),
				zap.Int64("movie_id", movieID),
			)
			return nil, fmt.Errorf("update movie: %w", err)
		}
	}

	s.log.Info("Movie updated",
		zap.Int64("movie_id", movieID),
		zap.String("title", movie.Title),
		zap.Bool("was_updated", updated),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID int64) error {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return fmt.Errorf("movie not found")
	}

	if err := s.repo.Movie.Delete(ctx, movieID); err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted",
		zap.Int64("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	return nil
}
