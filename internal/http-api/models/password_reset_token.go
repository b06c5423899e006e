package models

import "time"

// PasswordResetToken is single-use: it is marked used after a
// successful reset, and every outstanding token for a user is
// invalidated when that user's password changes.
type PasswordResetToken struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Used      bool      `gorm:"default:false" json:"used"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}
