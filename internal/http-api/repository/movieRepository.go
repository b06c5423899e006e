package repository

import (
	"context"
	"fmt"
	"time"

	"moviezone/internal/http-api/models"

	"gorm.io/gorm"
)

// CatalogFilter selects one of the derived movie rankings.
type CatalogFilter string

const (
	FilterNone     CatalogFilter = ""
	FilterTrending CatalogFilter = "trending"
	FilterTopRated CatalogFilter = "top-rated"
	FilterLatest   CatalogFilter = "latest"
)

// TrendingWindow is the activity window for the trending ranking.
const TrendingWindow = 30 * 24 * time.Hour

// TopRatedMinReviews: movies with fewer reviews never appear in the
// top-rated ranking, regardless of their average.
const TopRatedMinReviews = 3

// CategoryCounts holds independent per-bucket counts; buckets overlap.
type CategoryCounts struct {
	Trending int64 `json:"trending"`
	TopRated int64 `json:"top-rated"`
	Latest   int64 `json:"latest"`
	All      int64 `json:"all"`
}

type MovieRepository interface {
	List(ctx context.Context, filter CatalogFilter, search string) ([]models.Movie, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	Create(ctx context.Context, m *models.Movie) error
	Update(ctx context.Context, m *models.Movie) error
	Delete(ctx context.Context, id int64) error
	CategoryCounts(ctx context.Context) (*CategoryCounts, error)
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

// movieRow is the scan target for the annotated list query.
type movieRow struct {
	ID            int64
	Title         string
	Description   string
	ReleaseDate   time.Time
	ImageURL      *string
	CreatedAt     time.Time
	AvgRating     float64
	ReviewCount   int64
	WishlistCount int64
	RecentReviews int64
}

func (row movieRow) toModel() models.Movie {
	return models.Movie{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		ReleaseDate:   row.ReleaseDate,
		ImageURL:      row.ImageURL,
		CreatedAt:     row.CreatedAt,
		AverageRating: row.AvgRating,
		ReviewCount:   row.ReviewCount,
		WishlistCount: row.WishlistCount,
	}
}

const trendingHaving = "COUNT(DISTINCT CASE WHEN reviews.created_at >= ? THEN reviews.id END) > 0 OR COUNT(DISTINCT wishlists.id) > 0"

// annotated builds the base query joining reviews and wishlists and
// computing the derived per-movie aggregates in one pass.
func (r *movieRepository) annotated(ctx context.Context, cutoff time.Time) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("movies").
		Select(`movies.id, movies.title, movies.description, movies.release_date, movies.image_url, movies.created_at,
			ROUND(COALESCE(AVG(reviews.rating), 0)::numeric, 1) AS avg_rating,
			COUNT(DISTINCT reviews.id) AS review_count,
			COUNT(DISTINCT wishlists.id) AS wishlist_count,
			COUNT(DISTINCT CASE WHEN reviews.created_at >= ? THEN reviews.id END) AS recent_reviews`, cutoff).
		Joins("LEFT JOIN reviews ON reviews.movie_id = movies.id").
		Joins("LEFT JOIN wishlists ON wishlists.movie_id = movies.id").
		Group("movies.id")
}

// List applies the optional search term first, then the category
// filter, and returns movies annotated with their derived stats.
func (r *movieRepository) List(ctx context.Context, filter CatalogFilter, search string) ([]models.Movie, error) {
	cutoff := time.Now().Add(-TrendingWindow)
	q := r.annotated(ctx, cutoff)

	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("movies.title ILIKE ? OR movies.description ILIKE ?", pattern, pattern)
	}

	switch filter {
	case FilterTrending:
		q = q.Having(trendingHaving, cutoff).
			Order("recent_reviews DESC, wishlist_count DESC")
	case FilterTopRated:
		q = q.Having("COUNT(DISTINCT reviews.id) >= ?", TopRatedMinReviews).
			Order("avg_rating DESC, review_count DESC")
	case FilterLatest:
		q = q.Order("movies.created_at DESC")
	default:
		q = q.Order("movies.release_date DESC")
	}

	var rows []movieRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	list := make([]models.Movie, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toModel())
	}
	return list, nil
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	if err := r.loadStats(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// loadStats fills the derived attributes of a single movie.
func (r *movieRepository) loadStats(ctx context.Context, m *models.Movie) error {
	var stats struct {
		AvgRating   float64
		ReviewCount int64
	}
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("ROUND(COALESCE(AVG(rating), 0)::numeric, 1) AS avg_rating, COUNT(*) AS review_count").
		Where("movie_id = ?", m.ID).
		Scan(&stats).Error
	if err != nil {
		return fmt.Errorf("movie review stats: %w", err)
	}

	var wishlists int64
	err = r.db.WithContext(ctx).Model(&models.Wishlist{}).
		Where("movie_id = ?", m.ID).
		Count(&wishlists).Error
	if err != nil {
		return fmt.Errorf("movie wishlist count: %w", err)
	}

	m.AverageRating = stats.AvgRating
	m.ReviewCount = stats.ReviewCount
	m.WishlistCount = wishlists
	return nil
}

func (r *movieRepository) Create(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	return nil
}

func (r *movieRepository) Update(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Movie{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete movie: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CategoryCounts computes the four bucket sizes independently; they
// are not a partition (latest and all are always the full catalog).
func (r *movieRepository) CategoryCounts(ctx context.Context) (*CategoryCounts, error) {
	cutoff := time.Now().Add(-TrendingWindow)
	counts := &CategoryCounts{}

	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM (
			SELECT movies.id
			FROM movies
			LEFT JOIN reviews ON reviews.movie_id = movies.id
			LEFT JOIN wishlists ON wishlists.movie_id = movies.id
			GROUP BY movies.id
			HAVING COUNT(DISTINCT CASE WHEN reviews.created_at >= ? THEN reviews.id END) > 0
				OR COUNT(DISTINCT wishlists.id) > 0
		) trending`, cutoff).Scan(&counts.Trending).Error
	if err != nil {
		return nil, fmt.Errorf("trending count: %w", err)
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM (
			SELECT movie_id
			FROM reviews
			GROUP BY movie_id
			HAVING COUNT(*) >= ?
		) top_rated`, TopRatedMinReviews).Scan(&counts.TopRated).Error
	if err != nil {
		return nil, fmt.Errorf("top-rated count: %w", err)
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Movie{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("movie count: %w", err)
	}
	counts.Latest = total
	counts.All = total

	return counts, nil
}
