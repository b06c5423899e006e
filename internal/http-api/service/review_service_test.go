package service

import (
	"context"
	"testing"

	"moviezone/internal/http-api/models"
	"moviezone/internal/sentiment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByMovie(ctx context.Context, movieID int64) ([]models.Review, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListAll(ctx context.Context) ([]models.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func newTestReviewService(repo *MockReviewRepository, movieRepo *MockMovieRepository) ReviewService {
	// keyword-only scorer keeps the tests deterministic
	return NewReviewService(repo, movieRepo, sentiment.NewScorer(nil, nil))
}

func TestReviewCreate_Success(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	mockMovieRepo := new(MockMovieRepository)
	svc := newTestReviewService(mockRepo, mockMovieRepo)

	mockMovieRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Movie{ID: 1}, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).Return(nil)

	created, err := svc.Create(context.Background(), "user-id", 1, "An excellent and amazing film, loved it", 9)

	assert.NoError(t, err)
	assert.Equal(t, 9, created.Review.Rating)
	assert.GreaterOrEqual(t, created.SentimentScore, 7)
	assert.Contains(t, []string{"Positive", "Very Positive"}, created.SentimentLabel)
	mockRepo.AssertExpectations(t)
	mockMovieRepo.AssertExpectations(t)
}

func TestReviewCreate_RatingBoundsAccepted(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	mockMovieRepo := new(MockMovieRepository)
	svc := newTestReviewService(mockRepo, mockMovieRepo)

	mockMovieRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Movie{ID: 1}, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).Return(nil)

	for _, rating := range []int{1, 10} {
		created, err := svc.Create(context.Background(), "user-id", 1, "text", rating)
		assert.NoError(t, err)
		assert.Equal(t, rating, created.Review.Rating)
	}
}

func TestReviewCreate_RatingOutOfRange(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	mockMovieRepo := new(MockMovieRepository)
	svc := newTestReviewService(mockRepo, mockMovieRepo)

	for _, rating := range []int{0, 11, -5} {
		created, err := svc.Create(context.Background(), "user-id", 1, "text", rating)
		assert.Nil(t, created)
		assert.Equal(t, ErrRatingOutOfRange, err)
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewCreate_MovieMissing(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	mockMovieRepo := new(MockMovieRepository)
	svc := newTestReviewService(mockRepo, mockMovieRepo)

	mockMovieRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	created, err := svc.Create(context.Background(), "user-id", 99, "text", 5)

	assert.Nil(t, created)
	assert.Equal(t, ErrMovieNotFound, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewCreate_NegativeTextScoresLow(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	mockMovieRepo := new(MockMovieRepository)
	svc := newTestReviewService(mockRepo, mockMovieRepo)

	mockMovieRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Movie{ID: 1}, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).Return(nil)

	created, err := svc.Create(context.Background(), "user-id", 1, "A terrible, awful waste of time", 2)

	assert.NoError(t, err)
	assert.LessOrEqual(t, created.SentimentScore, 4)
	mockRepo.AssertExpectations(t)
}

func TestReviewListByMovie(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	mockMovieRepo := new(MockMovieRepository)
	svc := newTestReviewService(mockRepo, mockMovieRepo)

	reviews := []models.Review{{ID: 1, MovieID: 3, Rating: 8}}
	mockRepo.On("ListByMovie", mock.Anything, int64(3)).Return(reviews, nil)

	got, err := svc.ListByMovie(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	mockRepo.AssertExpectations(t)
}
