package models

import "time"

// Wishlist is a (user, movie) pair; a user can wishlist a movie at most
// once, enforced by the composite unique index.
type Wishlist struct {
	ID      int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID  string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_wishlists_user_movie"`
	MovieID int64     `json:"movie_id" gorm:"not null;uniqueIndex:idx_wishlists_user_movie"`
	AddedAt time.Time `json:"added_at" gorm:"autoCreateTime"`

	// Associations
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie *Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Wishlist) TableName() string {
	return "wishlists"
}
