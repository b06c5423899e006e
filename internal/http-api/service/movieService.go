package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"moviezone/internal/cache"
	"moviezone/internal/config"
	"moviezone/internal/http-api/models"
	"moviezone/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrMovieNotFound = errors.New("movie not found")

const categoriesCacheKey = "movies:categories"

type MovieService interface {
	List(ctx context.Context, filter repository.CatalogFilter, search string) ([]models.Movie, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	Create(ctx context.Context, m *models.Movie) error
	Update(ctx context.Context, m *models.Movie) error
	Delete(ctx context.Context, id int64) error
	Categories(ctx context.Context) (*repository.CategoryCounts, error)
}

type movieService struct {
	repo     repository.MovieRepository
	cache    cache.Store // nil disables caching
	cacheTTL time.Duration
	logger   *slog.Logger
}

func NewMovieService(repo repository.MovieRepository, store cache.Store, cfg *config.Config, logger *slog.Logger) MovieService {
	if logger == nil {
		logger = slog.Default()
	}
	return &movieService{
		repo:     repo,
		cache:    store,
		cacheTTL: time.Duration(cfg.CacheTTL) * time.Second,
		logger:   logger,
	}
}

func (s *movieService) List(ctx context.Context, filter repository.CatalogFilter, search string) ([]models.Movie, error) {
	return s.repo.List(ctx, filter, search)
}

func (s *movieService) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *movieService) Create(ctx context.Context, m *models.Movie) error {
	if err := s.repo.Create(ctx, m); err != nil {
		return err
	}
	s.invalidateCategories(ctx)
	return nil
}

func (s *movieService) Update(ctx context.Context, m *models.Movie) error {
	if _, err := s.GetByID(ctx, m.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, m)
}

func (s *movieService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		return err
	}
	s.invalidateCategories(ctx)
	return nil
}

// Categories serves the bucket counts through the cache; redis errors
// degrade to a direct query.
func (s *movieService) Categories(ctx context.Context) (*repository.CategoryCounts, error) {
	if s.cache != nil {
		var cached repository.CategoryCounts
		hit, err := s.cache.GetJSON(ctx, categoriesCacheKey, &cached)
		if err != nil {
			s.logger.Warn("categories cache read failed", "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	counts, err := s.repo.CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, categoriesCacheKey, counts, s.cacheTTL); err != nil {
			s.logger.Warn("categories cache write failed", "error", err)
		}
	}
	return counts, nil
}

func (s *movieService) invalidateCategories(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, categoriesCacheKey); err != nil {
		s.logger.Warn("categories cache invalidation failed", "error", err)
	}
}
