package repository

import (
	"context"
	"errors"
	"fmt"

	"moviezone/internal/http-api/models"

	"gorm.io/gorm"
)

// ErrDuplicateEntry is returned when the (user, movie) unique index
// rejects a second wishlist entry for the same pair.
var ErrDuplicateEntry = errors.New("wishlist entry already exists")

type WishlistRepository interface {
	Add(ctx context.Context, entry *models.Wishlist) error
	RemoveByMovie(ctx context.Context, userID string, movieID int64) error
	List(ctx context.Context, userID string) ([]models.Wishlist, error)
	Exists(ctx context.Context, userID string, movieID int64) (bool, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

// Add inserts a wishlist entry. Concurrent duplicate adds race on the
// unique index; the losing insert comes back as ErrDuplicateEntry.
func (r *wishlistRepository) Add(ctx context.Context, entry *models.Wishlist) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("add to wishlist: %w", err)
	}
	return nil
}

// RemoveByMovie deletes the requesting user's entry for a movie.
// Returns gorm.ErrRecordNotFound when no entry matches.
func (r *wishlistRepository) RemoveByMovie(ctx context.Context, userID string, movieID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&models.Wishlist{})

	if result.Error != nil {
		return fmt.Errorf("remove from wishlist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *wishlistRepository) List(ctx context.Context, userID string) ([]models.Wishlist, error) {
	var list []models.Wishlist
	if err := r.db.WithContext(ctx).
		Preload("Movie").
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return list, nil
}

func (r *wishlistRepository) Exists(ctx context.Context, userID string, movieID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Wishlist{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
