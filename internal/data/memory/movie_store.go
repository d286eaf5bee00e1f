package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"

	"go.uber.org/zap"
)

// MovieStore keeps movies in insertion order. Ids increase
// monotonically and are never reused after a delete.
type MovieStore struct {
	mu     sync.Mutex
	movies []*entity.Movie
	nextID int64
	log    *zap.Logger
}

var _ repository.MovieRepository = (*MovieStore)(nil)

func NewMovieStore(log *zap.Logger) *MovieStore {
	return &MovieStore{
		nextID: 1,
		log:    log.With(zap.String("repository", "movie_memory")),
	}
}

func (s *MovieStore) Create(ctx context.Context, movie *entity.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	movie.ID = s.nextID
	s.nextID++

	stored := *movie
	s.movies = append(s.movies, &stored)

	return nil
}

func (s *MovieStore) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.movies {
		if m.ID == id {
			found := *m
			return &found, nil
		}
	}

	return nil, nil
}

func (s *MovieStore) FindAll(ctx context.Context, limit, offset int) ([]*entity.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.movies) {
		return nil, nil
	}

	end := offset + limit
	if limit <= 0 || end > len(s.movies) {
		end = len(s.movies)
	}

	return copyMovies(s.movies[offset:end]), nil
}

func (s *MovieStore) CountAll(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int64(len(s.movies)), nil
}

func (s *MovieStore) FindByFilter(ctx context.Context, filter repository.MovieFilter) ([]*entity.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []*entity.Movie
	for _, m := range s.movies {
		if filter.Category != nil &&
			!strings.Contains(strings.ToLower(m.Category), strings.ToLower(*filter.Category)) {
			continue
		}
		if filter.Year != nil && m.Year != *filter.Year {
			continue
		}
		matches = append(matches, m)
	}

	return copyMovies(matches), nil
}

func (s *MovieStore) Update(ctx context.Context, movie *entity.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.movies {
		if m.ID == movie.ID {
			stored := *movie
			s.movies[i] = &stored
			return nil
		}
	}

	return fmt.Errorf("movie not found")
}

func (s *MovieStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.movies {
		if m.ID == id {
			s.movies = append(s.movies[:i], s.movies[i+1:]...)
			s.log.Info("Movie deleted", zap.Int64("movie_id", id))
			return nil
		}
	}

	return fmt.Errorf("movie not found")
}

// copyMovies snapshots entities so callers never alias stored state.
func copyMovies(src []*entity.Movie) []*entity.Movie {
	if len(src) == 0 {
		return nil
	}
	out := make([]*entity.Movie, len(src))
	for i, m := range src {
		c := *m
		out[i] = &c
	}
	return out
}
