package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"moviezone/internal/config"
	"moviezone/internal/http-api/models"
	"moviezone/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockMovieRepository mocks the MovieRepository interface
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) List(ctx context.Context, filter repository.CatalogFilter, search string) ([]models.Movie, error) {
	args := m.Called(ctx, filter, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *models.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *models.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMovieRepository) CategoryCounts(ctx context.Context) (*repository.CategoryCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CategoryCounts), args.Error(1)
}

// MockCacheStore mocks the cache.Store interface
type MockCacheStore struct {
	mock.Mock
}

func (m *MockCacheStore) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheStore) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func movieTestConfig() *config.Config {
	return &config.Config{CacheTTL: 300}
}

func TestMovieList_PassesFilterAndSearch(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	svc := NewMovieService(mockRepo, nil, movieTestConfig(), nil)

	movies := []models.Movie{{ID: 1, Title: "Inception"}}
	mockRepo.On("List", mock.Anything, repository.FilterTrending, "incep").Return(movies, nil)

	got, err := svc.List(context.Background(), repository.FilterTrending, "incep")

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Inception", got[0].Title)
	mockRepo.AssertExpectations(t)
}

func TestMovieGetByID_NotFound(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	svc := NewMovieService(mockRepo, nil, movieTestConfig(), nil)

	mockRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	got, err := svc.GetByID(context.Background(), 42)

	assert.Nil(t, got)
	assert.Equal(t, ErrMovieNotFound, err)
	mockRepo.AssertExpectations(t)
}

func TestMovieDelete_NotFound(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	svc := NewMovieService(mockRepo, nil, movieTestConfig(), nil)

	mockRepo.On("Delete", mock.Anything, int64(42)).Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 42)

	assert.Equal(t, ErrMovieNotFound, err)
	mockRepo.AssertExpectations(t)
}

func TestMovieCreate_InvalidatesCategoriesCache(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	mockCache := new(MockCacheStore)
	svc := NewMovieService(mockRepo, mockCache, movieTestConfig(), nil)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Movie")).Return(nil)
	mockCache.On("Delete", mock.Anything, "movies:categories").Return(nil)

	err := svc.Create(context.Background(), &models.Movie{Title: "Dune"})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestCategories_CacheHit(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	mockCache := new(MockCacheStore)
	svc := NewMovieService(mockRepo, mockCache, movieTestConfig(), nil)

	mockCache.On("GetJSON", mock.Anything, "movies:categories", mock.Anything).Run(func(args mock.Arguments) {
		dest := args.Get(2).(*repository.CategoryCounts)
		dest.Trending = 3
		dest.All = 10
	}).Return(true, nil)

	counts, err := svc.Categories(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), counts.Trending)
	assert.Equal(t, int64(10), counts.All)
	mockRepo.AssertNotCalled(t, "CategoryCounts", mock.Anything)
	mockCache.AssertExpectations(t)
}

func TestCategories_CacheMissFillsCache(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	mockCache := new(MockCacheStore)
	svc := NewMovieService(mockRepo, mockCache, movieTestConfig(), nil)

	counts := &repository.CategoryCounts{Trending: 2, TopRated: 1, Latest: 5, All: 5}
	mockCache.On("GetJSON", mock.Anything, "movies:categories", mock.Anything).Return(false, nil)
	mockRepo.On("CategoryCounts", mock.Anything).Return(counts, nil)
	mockCache.On("SetJSON", mock.Anything, "movies:categories", counts, 300*time.Second).Return(nil)

	got, err := svc.Categories(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, counts, got)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestCategories_CacheErrorDegradesToQuery(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	mockCache := new(MockCacheStore)
	svc := NewMovieService(mockRepo, mockCache, movieTestConfig(), nil)

	counts := &repository.CategoryCounts{All: 7}
	mockCache.On("GetJSON", mock.Anything, "movies:categories", mock.Anything).Return(false, errors.New("redis down"))
	mockRepo.On("CategoryCounts", mock.Anything).Return(counts, nil)
	mockCache.On("SetJSON", mock.Anything, "movies:categories", counts, mock.Anything).Return(errors.New("redis down"))

	got, err := svc.Categories(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), got.All)
	mockRepo.AssertExpectations(t)
}

func TestCategories_NoCacheConfigured(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	svc := NewMovieService(mockRepo, nil, movieTestConfig(), nil)

	counts := &repository.CategoryCounts{All: 4}
	mockRepo.On("CategoryCounts", mock.Anything).Return(counts, nil)

	got, err := svc.Categories(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(4), got.All)
	mockRepo.AssertExpectations(t)
}
