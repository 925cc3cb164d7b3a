package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/topmovies/internal/model"
	"github.com/user/topmovies/internal/repository"
)

func newTestCatalog(t *testing.T) *CatalogService {
	t.Helper()
	db, err := repository.InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return NewCatalogService(repository.NewMovieRepository(db))
}

func addMovie(t *testing.T, svc *CatalogService, title string, rating float64) *model.Movie {
	t.Helper()
	movie, err := svc.CreateFromDetails(&model.MovieDetails{
		OriginalTitle: title,
		ReleaseYear:   "2010",
		Overview:      "剧情简介",
		PosterURL:     "https://image.tmdb.org/t/p/w500/poster.jpg",
	})
	require.NoError(t, err)
	if rating != 0 {
		require.NoError(t, svc.UpdateRatingReview(movie.ID, rating, "短评"))
	}
	return movie
}

func TestListRankedAssignsPermutation(t *testing.T) {
	svc := newTestCatalog(t)

	addMovie(t, svc, "Mid", 7.3)
	addMovie(t, svc, "Top", 9.6)
	addMovie(t, svc, "Low", 3.1)
	addMovie(t, svc, "High", 8.8)

	movies, err := svc.ListRanked()
	require.NoError(t, err)
	require.Len(t, movies, 4)

	// 升序排列，名次正好是 1..N 的排列
	seen := make(map[int]bool)
	for i, m := range movies {
		assert.Equal(t, i+1, m.Ranking)
		seen[m.Ranking] = true
	}
	assert.Len(t, seen, 4)

	// 评分最高的拿 N，最低的拿 1
	assert.Equal(t, "Low", movies[0].Title)
	assert.Equal(t, 1, movies[0].Ranking)
	assert.Equal(t, "Top", movies[3].Title)
	assert.Equal(t, 4, movies[3].Ranking)
}

func TestListRankedTiesKeepInsertionOrder(t *testing.T) {
	svc := newTestCatalog(t)

	first := addMovie(t, svc, "First", 7.0)
	second := addMovie(t, svc, "Second", 7.0)

	movies, err := svc.ListRanked()
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, first.ID, movies[0].ID)
	assert.Equal(t, second.ID, movies[1].ID)
}

func TestListRankedDoesNotPersistRanking(t *testing.T) {
	svc := newTestCatalog(t)

	movie := addMovie(t, svc, "Inception", 8.8)

	_, err := svc.ListRanked()
	require.NoError(t, err)

	// 名次只是视图字段，读榜单不会写回数据库
	got, err := svc.Get(movie.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Ranking)
}

func TestCreateFromDetailsDefaults(t *testing.T) {
	svc := newTestCatalog(t)

	movie, err := svc.CreateFromDetails(&model.MovieDetails{
		OriginalTitle: "Inception",
		ReleaseYear:   "2010",
		Overview:      "A thief who steals corporate secrets...",
		PosterURL:     "https://image.tmdb.org/t/p/w500/inception.jpg",
	})
	require.NoError(t, err)

	got, err := svc.Get(movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inception", got.Title)
	assert.Equal(t, 2010, got.Year)
	assert.Equal(t, 0.0, got.Rating)
	assert.Equal(t, 0, got.Ranking)
	assert.Equal(t, "None", got.Review)
	assert.Equal(t, "A thief who steals corporate secrets...", got.Description)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/inception.jpg", got.ImgURL)
}

func TestCreateFromDetailsDuplicateTitle(t *testing.T) {
	svc := newTestCatalog(t)

	addMovie(t, svc, "Inception", 0)

	_, err := svc.CreateFromDetails(&model.MovieDetails{
		OriginalTitle: "Inception",
		ReleaseYear:   "2010",
		Overview:      "剧情简介",
		PosterURL:     "https://image.tmdb.org/t/p/w500/poster.jpg",
	})
	assert.ErrorIs(t, err, model.ErrDuplicateTitle)

	movies, err := svc.ListRanked()
	require.NoError(t, err)
	assert.Len(t, movies, 1)
}

func TestUpdateRatingReviewOnlyTouchesRatingAndReview(t *testing.T) {
	svc := newTestCatalog(t)

	movie := addMovie(t, svc, "Inception", 0)
	require.NoError(t, svc.UpdateRatingReview(movie.ID, 8.5, "Great"))

	got, err := svc.Get(movie.ID)
	require.NoError(t, err)
	assert.Equal(t, 8.5, got.Rating)
	assert.Equal(t, "Great", got.Review)
	assert.Equal(t, movie.Title, got.Title)
	assert.Equal(t, movie.Year, got.Year)
	assert.Equal(t, movie.Description, got.Description)
	assert.Equal(t, movie.ImgURL, got.ImgURL)
}

func TestDeleteThenGetNotFound(t *testing.T) {
	svc := newTestCatalog(t)

	movie := addMovie(t, svc, "Inception", 8.8)
	require.NoError(t, svc.Delete(movie.ID))

	_, err := svc.Get(movie.ID)
	assert.ErrorIs(t, err, model.ErrMovieNotFound)

	assert.ErrorIs(t, svc.Delete(movie.ID), model.ErrMovieNotFound)
}
