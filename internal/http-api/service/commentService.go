package service

import (
	"context"
	"errors"

	"moviezone/internal/http-api/models"
	"moviezone/internal/http-api/repository"

	"gorm.io/gorm"
)

type CommentService interface {
	// Create always attributes the comment to userID, never to a
	// client-supplied identity.
	Create(ctx context.Context, userID string, movieID int64, text string) (*models.Comment, error)
	ListByMovie(ctx context.Context, movieID int64) ([]models.Comment, error)
	ListAll(ctx context.Context) ([]models.Comment, error)
}

type commentService struct {
	repo      repository.CommentRepository
	movieRepo repository.MovieRepository
}

func NewCommentService(repo repository.CommentRepository, movieRepo repository.MovieRepository) CommentService {
	return &commentService{repo: repo, movieRepo: movieRepo}
}

func (s *commentService) Create(ctx context.Context, userID string, movieID int64, text string) (*models.Comment, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		UserID:      userID,
		MovieID:     movieID,
		CommentText: text,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ListByMovie(ctx context.Context, movieID int64) ([]models.Comment, error) {
	return s.repo.ListByMovie(ctx, movieID)
}

func (s *commentService) ListAll(ctx context.Context) ([]models.Comment, error) {
	return s.repo.ListAll(ctx)
}
