package service

import (
	"context"
	"errors"

	"moviezone/internal/http-api/models"
	"moviezone/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrAlreadyWishlisted    = errors.New("movie is already in your wishlist")
	ErrWishlistEntryMissing = errors.New("movie not found in wishlist")
)

type WishlistService interface {
	List(ctx context.Context, userID string) ([]models.Wishlist, error)
	Add(ctx context.Context, userID string, movieID int64) (*models.Wishlist, error)
	RemoveByMovie(ctx context.Context, userID string, movieID int64) error
}

type wishlistService struct {
	repo      repository.WishlistRepository
	movieRepo repository.MovieRepository
}

func NewWishlistService(repo repository.WishlistRepository, movieRepo repository.MovieRepository) WishlistService {
	return &wishlistService{repo: repo, movieRepo: movieRepo}
}

func (s *wishlistService) List(ctx context.Context, userID string) ([]models.Wishlist, error) {
	return s.repo.List(ctx, userID)
}

// Add wishlists a movie for the user. The duplicate check is advisory;
// the unique index catches the race and both paths surface
// ErrAlreadyWishlisted.
func (s *wishlistService) Add(ctx context.Context, userID string, movieID int64) (*models.Wishlist, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyWishlisted
	}

	entry := &models.Wishlist{UserID: userID, MovieID: movieID}
	if err := s.repo.Add(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrAlreadyWishlisted
		}
		return nil, err
	}
	return entry, nil
}

func (s *wishlistService) RemoveByMovie(ctx context.Context, userID string, movieID int64) error {
	err := s.repo.RemoveByMovie(ctx, userID, movieID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrWishlistEntryMissing
	}
	return err
}
