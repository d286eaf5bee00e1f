package memory

import (
	"context"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *MovieStore {
	t.Helper()
	return NewMovieStore(zap.NewNop())
}

func addMovie(t *testing.T, store *MovieStore, title, category string, year int) *entity.Movie {
	t.Helper()
	movie := &entity.Movie{
		Title:     title,
		Overview:  "An overview long enough to be plausible.",
		Year:      year,
		Rating:    7.5,
		Category:  category,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, store.Create(context.Background(), movie))
	return movie
}

func TestMovieStoreAssignsIncreasingIDs(t *testing.T) {
	store := newTestStore(t)

	first := addMovie(t, store, "First", "Action film", 2000)
	second := addMovie(t, store, "Second", "Comedy film", 2001)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestMovieStoreNeverReusesIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	addMovie(t, store, "First", "Action film", 2000)
	second := addMovie(t, store, "Second", "Comedy film", 2001)

	require.NoError(t, store.Delete(ctx, second.ID))

	third := addMovie(t, store, "Third", "Drama film", 2002)
	assert.Equal(t, int64(3), third.ID)
}

func TestMovieStoreFindByIDMissing(t *testing.T) {
	store := newTestStore(t)

	movie, err := store.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, movie)
}

func TestMovieStoreReturnsSnapshots(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := addMovie(t, store, "Original", "Action film", 2000)

	got, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	got.Title = "Mutated by caller"

	again, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Title)
}

func TestMovieStorePreservesInsertionOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	addMovie(t, store, "A", "Action film", 2000)
	addMovie(t, store, "B", "Comedy film", 2001)
	addMovie(t, store, "C", "Drama film", 2002)

	movies, err := store.FindAll(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, movies, 3)
	assert.Equal(t, "A", movies[0].Title)
	assert.Equal(t, "B", movies[1].Title)
	assert.Equal(t, "C", movies[2].Title)

	// Delete in the middle does not reorder the rest.
	require.NoError(t, store.Delete(ctx, movies[1].ID))

	movies, err = store.FindAll(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "A", movies[0].Title)
	assert.Equal(t, "C", movies[1].Title)
}

func TestMovieStoreFindAllWindow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C", "D", "E"} {
		addMovie(t, store, title, "Action film", 2000)
	}

	page, err := store.FindAll(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "C", page[0].Title)
	assert.Equal(t, "D", page[1].Title)

	// Last partial page
	page, err = store.FindAll(ctx, 2, 4)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "E", page[0].Title)

	// Offset beyond the end is empty, not an error.
	page, err = store.FindAll(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestMovieStoreFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	addMovie(t, store, "Mad Max", "Action film", 2015)
	addMovie(t, store, "Superbad", "Comedy film", 2007)
	addMovie(t, store, "John Wick", "Action thriller", 2014)

	// Case-insensitive substring on category
	category := "act"
	matches, err := store.FindByFilter(ctx, repository.MovieFilter{Category: &category})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Mad Max", matches[0].Title)
	assert.Equal(t, "John Wick", matches[1].Title)

	// Exact year
	year := 2007
	matches, err = store.FindByFilter(ctx, repository.MovieFilter{Year: &year})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Superbad", matches[0].Title)

	// Both criteria must hold
	year = 2015
	matches, err = store.FindByFilter(ctx, repository.MovieFilter{Category: &category, Year: &year})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Mad Max", matches[0].Title)

	// No match is an empty result at this layer
	year = 1999
	matches, err = store.FindByFilter(ctx, repository.MovieFilter{Year: &year})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMovieStoreUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := addMovie(t, store, "Before", "Action film", 2000)

	created.Title = "After"
	require.NoError(t, store.Update(ctx, created))

	got, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)

	missing := &entity.Movie{ID: 999, Title: "Ghost"}
	err = store.Update(ctx, missing)
	assert.ErrorContains(t, err, "not found")
}

func TestMovieStoreDeleteMissing(t *testing.T) {
	store := newTestStore(t)

	err := store.Delete(context.Background(), 999)
	assert.ErrorContains(t, err, "not found")
}

func TestUserStore(t *testing.T) {
	store := NewUserStore(zap.NewNop())
	ctx := context.Background()

	user := &entity.User{
		Username:     "reich",
		PasswordHash: "hash",
		Role:         entity.RoleUser,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, store.Create(ctx, user))
	assert.Equal(t, int64(1), user.ID)

	// Usernames are unique
	dup := &entity.User{Username: "reich"}
	assert.ErrorContains(t, store.Create(ctx, dup), "already exists")

	found, err := store.FindByUsername(ctx, "reich")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entity.RoleUser, found.Role)

	missing, err := store.FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
