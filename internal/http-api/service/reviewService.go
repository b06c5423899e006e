package service

import (
	"context"
	"errors"

	"moviezone/internal/http-api/models"
	"moviezone/internal/http-api/repository"
	"moviezone/internal/sentiment"

	"gorm.io/gorm"
)

var ErrRatingOutOfRange = errors.New("rating should be between 1 and 10")

// ReviewWithSentiment is a created review together with the sentiment
// estimate of its text.
type ReviewWithSentiment struct {
	Review         *models.Review
	SentimentScore int
	SentimentLabel string
}

type ReviewService interface {
	// Create attributes the review to userID and scores its text.
	Create(ctx context.Context, userID string, movieID int64, text string, rating int) (*ReviewWithSentiment, error)
	GetByID(ctx context.Context, reviewID int64) (*models.Review, error)
	ListByMovie(ctx context.Context, movieID int64) ([]models.Review, error)
	ListAll(ctx context.Context) ([]models.Review, error)
}

type reviewService struct {
	repo      repository.ReviewRepository
	movieRepo repository.MovieRepository
	scorer    *sentiment.Scorer
}

func NewReviewService(repo repository.ReviewRepository, movieRepo repository.MovieRepository, scorer *sentiment.Scorer) ReviewService {
	return &reviewService{repo: repo, movieRepo: movieRepo, scorer: scorer}
}

func (s *reviewService) Create(ctx context.Context, userID string, movieID int64, text string, rating int) (*ReviewWithSentiment, error) {
	if rating < 1 || rating > 10 {
		return nil, ErrRatingOutOfRange
	}

	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	review := &models.Review{
		UserID:     userID,
		MovieID:    movieID,
		ReviewText: text,
		Rating:     rating,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	// Score never fails: every scorer failure degrades to a fallback.
	score := s.scorer.Score(ctx, text)

	return &ReviewWithSentiment{
		Review:         review,
		SentimentScore: score,
		SentimentLabel: sentiment.Label(score),
	}, nil
}

func (s *reviewService) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	return s.repo.GetByID(ctx, reviewID)
}

func (s *reviewService) ListByMovie(ctx context.Context, movieID int64) ([]models.Review, error) {
	return s.repo.ListByMovie(ctx, movieID)
}

func (s *reviewService) ListAll(ctx context.Context) ([]models.Review, error) {
	return s.repo.ListAll(ctx)
}
