package repository

import (
	"moviezone/internal/http-api/models"

	"gorm.io/gorm"
)

// PasswordResetRepository handles database operations for password reset tokens
type PasswordResetRepository interface {
	Create(token *models.PasswordResetToken) error
	FindByUserAndToken(userID, tokenString string) (*models.PasswordResetToken, error)
	MarkUsed(tokenID string) error
	InvalidateAllForUser(userID string) error
	DeleteExpired() error
}

type passwordResetRepository struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (r *passwordResetRepository) Create(token *models.PasswordResetToken) error {
	return r.db.Create(token).Error
}

func (r *passwordResetRepository) FindByUserAndToken(userID, tokenString string) (*models.PasswordResetToken, error) {
	var token models.PasswordResetToken
	if err := r.db.Where("user_id = ? AND token = ?", userID, tokenString).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *passwordResetRepository) MarkUsed(tokenID string) error {
	return r.db.Model(&models.PasswordResetToken{}).Where("id = ?", tokenID).Update("used", true).Error
}

// InvalidateAllForUser marks every outstanding token of a user as used.
// Called when the password changes so stale reset links stop working.
func (r *passwordResetRepository) InvalidateAllForUser(userID string) error {
	return r.db.Model(&models.PasswordResetToken{}).Where("user_id = ? AND used = false", userID).Update("used", true).Error
}

// DeleteExpired removes expired rows; run before issuing a new token.
func (r *passwordResetRepository) DeleteExpired() error {
	return r.db.Where("expires_at < CURRENT_TIMESTAMP").Delete(&models.PasswordResetToken{}).Error
}
