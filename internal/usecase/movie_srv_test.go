package usecase

import (
	"context"
	"testing"

	"movie-catalog/internal/data/memory"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMovieService(t *testing.T) MovieService {
	t.Helper()
	return NewMovieService(memory.NewRepository(zap.NewNop()), zap.NewNop())
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func createMovie(t *testing.T, svc MovieService, title, category string, year int) response.MovieResponse {
	t.Helper()
	created, err := svc.CreateMovie(context.Background(), &request.MovieCreateRequest{
		Title:    title,
		Overview: "An overview long enough for validation.",
		Year:     year,
		Rating:   floatPtr(7.0),
		Category: strPtr(category),
	})
	require.NoError(t, err)
	return *created
}

func TestCreateMovieAssignsIDAndIsRetrievable(t *testing.T) {
	svc := newMovieService(t)
	ctx := context.Background()

	created, err := svc.CreateMovie(ctx, &request.MovieCreateRequest{
		Title:    "Interstellar",
		Overview: "A team travels through a wormhole in space.",
		Year:     2014,
		Rating:   floatPtr(8.6),
		Category: strPtr("Sci-Fi drama"),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetMovieByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Interstellar", got.Title)
	assert.Equal(t, "A team travels through a wormhole in space.", got.Overview)
	assert.Equal(t, 2014, got.Year)
	assert.Equal(t, 8.6, got.Rating)
	assert.Equal(t, "Sci-Fi drama", got.Category)
}

func TestCreateMovieAppliesDefaults(t *testing.T) {
	svc := newMovieService(t)

	created, err := svc.CreateMovie(context.Background(), &request.MovieCreateRequest{
		Title:    "Interstellar",
		Overview: "A team travels through a wormhole in space.",
		Year:     2014,
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, created.Rating)
	assert.Equal(t, "No category", created.Category)
}

func TestGetMovieByIDNotFound(t *testing.T) {
	svc := newMovieService(t)

	_, err := svc.GetMovieByID(context.Background(), 42)
	assert.ErrorContains(t, err, "not found")
}

func TestUpdateMovieAppliesOnlyProvidedFields(t *testing.T) {
	svc := newMovieService(t)
	ctx := context.Background()

	created := createMovie(t, svc, "Interstellar", "Sci-Fi drama", 2014)

	updated, err := svc.UpdateMovie(ctx, created.ID, &request.MovieUpdateRequest{
		Rating: floatPtr(9.0),
	})
	require.NoError(t, err)

	assert.Equal(t, 9.0, updated.Rating)
	assert.Equal(t, "Interstellar", updated.Title)
	assert.Equal(t, created.Overview, updated.Overview)
	assert.Equal(t, created.Year, updated.Year)
	assert.Equal(t, created.Category, updated.Category)

	// And the change is persisted
	got, err := svc.GetMovieByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 9.0, got.Rating)
}

func TestUpdateMovieEmptyPayloadChangesNothing(t *testing.T) {
	svc := newMovieService(t)
	ctx := context.Background()

	created := createMovie(t, svc, "Interstellar", "Sci-Fi drama", 2014)

	updated, err := svc.UpdateMovie(ctx, created.ID, &request.MovieUpdateRequest{})
	require.NoError(t, err)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Rating, updated.Rating)
}

func TestUpdateMovieNotFound(t *testing.T) {
	svc := newMovieService(t)

	_, err := svc.UpdateMovie(context.Background(), 42, &request.MovieUpdateRequest{
		Title: strPtr("Ghost"),
	})
	assert.ErrorContains(t, err, "not found")
}

func TestDeleteMovieThenGetReturnsNotFound(t *testing.T) {
	svc := newMovieService(t)
	ctx := context.Background()

	created := createMovie(t, svc, "Interstellar", "Sci-Fi drama", 2014)

	require.NoError(t, svc.DeleteMovie(ctx, created.ID))

	_, err := svc.GetMovieByID(ctx, created.ID)
	assert.ErrorContains(t, err, "not found")

	// Deleting again also fails
	assert.ErrorContains(t, svc.DeleteMovie(ctx, created.ID), "not found")
}

func TestListCountsAfterCreatesAndDeletes(t *testing.T) {
	svc := newMovieService(t)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 5; i++ {
		created := createMovie(t, svc, "Movie", "Action film", 2000+i)
		ids = append(ids, created.ID)
	}

	require.NoError(t, svc.DeleteMovie(ctx, ids[0]))
	require.NoError(t, svc.DeleteMovie(ctx, ids[3]))

	list, err := svc.GetMovies(ctx, &request.PaginatedRequest{Page: 1, Size: 100})
	require.NoError(t, err)
	assert.Len(t, list.Data, 3)
	assert.Equal(t, int64(3), list.Pagination.Total)
}

func TestGetMoviesPaginationReconstructsList(t *testing.T) {
	svc := newMovieService(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		createMovie(t, svc, "Movie", "Action film", 2000+i)
	}

	full, err := svc.GetMovies(ctx, &request.PaginatedRequest{Page: 1, Size: 100})
	require.NoError(t, err)
	require.Len(t, full.Data, 7)

	var combined []response.MovieResponse
	for page := 1; ; page++ {
		chunk, err := svc.GetMovies(ctx, &request.PaginatedRequest{Page: page, Size: 3})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(chunk.Data), 3)
		if len(chunk.Data) == 0 {
			break
		}
		combined = append(combined, chunk.Data...)
	}

	assert.Equal(t, full.Data, combined)
}

func TestGetMoviesPageBeyondEndIsEmpty(t *testing.T) {
	svc := newMovieService(t)
	ctx := context.Background()

	createMovie(t, svc, "Only one", "Action film", 2000)

	page, err := svc.GetMovies(ctx, &request.PaginatedRequest{Page: 5, Size: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(1), page.Pagination.Total)
}

func TestFilterMovies(t *testing.T) {
	svc := newMovieService(t)
	ctx := context.Background()

	createMovie(t, svc, "Mad Max", "Action film", 2015)
	createMovie(t, svc, "Superbad", "Comedy film", 2007)

	matches, err := svc.FilterMovies(ctx, repository.MovieFilter{Category: strPtr("act")})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Mad Max", matches[0].Title)
}

func TestFilterMoviesRequiresCriteria(t *testing.T) {
	svc := newMovieService(t)

	_, err := svc.FilterMovies(context.Background(), repository.MovieFilter{})
	assert.ErrorContains(t, err, "invalid filter")
}

func TestFilterMoviesNoMatch(t *testing.T) {
	svc := newMovieService(t)
	ctx := context.Background()

	createMovie(t, svc, "Mad Max", "Action film", 2015)

	_, err := svc.FilterMovies(ctx, repository.MovieFilter{Year: intPtr(1999)})
	assert.ErrorContains(t, err, "no movies found")
}
