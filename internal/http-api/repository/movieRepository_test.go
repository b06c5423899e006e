package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"moviezone/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// These tests run the real catalog queries against Postgres. They are
// skipped unless TEST_DATABASE_URL points at a scratch database.
func catalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Movie{},
		&models.Wishlist{},
		&models.Review{},
	))

	// wipe in dependency order so reruns start clean
	for _, table := range []string{"wishlists", "reviews", "movies", "users"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}
	return db
}

func seedCatalogUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Email: username + "@example.com", Password: "hash"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedCatalogMovie(t *testing.T, db *gorm.DB, title, description string) *models.Movie {
	t.Helper()
	m := &models.Movie{Title: title, Description: description, ReleaseDate: time.Now().AddDate(-1, 0, 0)}
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedCatalogReview(t *testing.T, db *gorm.DB, userID string, movieID int64, rating int, createdAt time.Time) {
	t.Helper()
	r := &models.Review{MovieID: movieID, UserID: userID, ReviewText: "seed", Rating: rating, CreatedAt: createdAt}
	require.NoError(t, db.Create(r).Error)
}

func seedCatalogWishlist(t *testing.T, db *gorm.DB, userID string, movieID int64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Wishlist{UserID: userID, MovieID: movieID}).Error)
}

func TestMovieRepository_TopRatedExcludesSparselyReviewed(t *testing.T) {
	db := catalogTestDB(t)
	repo := NewMovieRepository(db)
	user := seedCatalogUser(t, db, "catalog_rater")
	now := time.Now()

	reviewed := seedCatalogMovie(t, db, "Well Reviewed", "three reviews")
	for _, rating := range []int{8, 9, 10} {
		seedCatalogReview(t, db, user.ID, reviewed.ID, rating, now)
	}

	// two reviews keep a movie out of top-rated even with a perfect average
	sparse := seedCatalogMovie(t, db, "Sparse", "two reviews")
	seedCatalogReview(t, db, user.ID, sparse.ID, 10, now)
	seedCatalogReview(t, db, user.ID, sparse.ID, 10, now)

	seedCatalogMovie(t, db, "Unreviewed", "no reviews")

	list, err := repo.List(context.Background(), FilterTopRated, "")

	assert.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, reviewed.ID, list[0].ID)
	assert.Equal(t, int64(3), list[0].ReviewCount)
	assert.Equal(t, 9.0, list[0].AverageRating)
}

func TestMovieRepository_TrendingExclusions(t *testing.T) {
	db := catalogTestDB(t)
	repo := NewMovieRepository(db)
	user := seedCatalogUser(t, db, "catalog_watcher")

	// an old review alone is not trending activity
	stale := seedCatalogMovie(t, db, "Stale", "old review only")
	seedCatalogReview(t, db, user.ID, stale.ID, 7, time.Now().Add(-2*TrendingWindow))

	wishlisted := seedCatalogMovie(t, db, "Wishlisted", "wishlist only")
	seedCatalogWishlist(t, db, user.ID, wishlisted.ID)

	active := seedCatalogMovie(t, db, "Active", "recent review")
	seedCatalogReview(t, db, user.ID, active.ID, 9, time.Now())

	seedCatalogMovie(t, db, "Quiet", "no activity at all")

	list, err := repo.List(context.Background(), FilterTrending, "")

	assert.NoError(t, err)
	require.Len(t, list, 2)
	// recent reviews rank above wishlist-only activity
	assert.Equal(t, active.ID, list[0].ID)
	assert.Equal(t, wishlisted.ID, list[1].ID)
}

func TestMovieRepository_SearchNarrowsBeforeFilter(t *testing.T) {
	db := catalogTestDB(t)
	repo := NewMovieRepository(db)
	user := seedCatalogUser(t, db, "catalog_searcher")
	now := time.Now()

	match := seedCatalogMovie(t, db, "Alien", "space horror")
	for _, rating := range []int{9, 9, 8} {
		seedCatalogReview(t, db, user.ID, match.ID, rating, now)
	}

	// matches the search but fails the review threshold
	sequel := seedCatalogMovie(t, db, "Aliens", "more space horror")
	seedCatalogReview(t, db, user.ID, sequel.ID, 10, now)

	// passes the threshold but not the search
	other := seedCatalogMovie(t, db, "Heat", "crime")
	for _, rating := range []int{9, 9, 9} {
		seedCatalogReview(t, db, user.ID, other.ID, rating, now)
	}

	list, err := repo.List(context.Background(), FilterTopRated, "alien")

	assert.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, match.ID, list[0].ID)
}

func TestMovieRepository_CategoryCounts(t *testing.T) {
	db := catalogTestDB(t)
	repo := NewMovieRepository(db)
	user := seedCatalogUser(t, db, "catalog_counter")
	now := time.Now()

	// trending and top-rated
	hot := seedCatalogMovie(t, db, "Hot", "busy")
	for _, rating := range []int{7, 8, 9} {
		seedCatalogReview(t, db, user.ID, hot.ID, rating, now)
	}

	// trending only
	saved := seedCatalogMovie(t, db, "Saved", "wishlisted")
	seedCatalogWishlist(t, db, user.ID, saved.ID)

	// neither
	seedCatalogMovie(t, db, "Idle", "nothing")

	counts, err := repo.CategoryCounts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(2), counts.Trending)
	assert.Equal(t, int64(1), counts.TopRated)
	assert.Equal(t, int64(3), counts.Latest)
	assert.Equal(t, int64(3), counts.All)
}
