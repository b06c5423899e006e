package models

import "time"

type Movie struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null;type:text"`
	ReleaseDate time.Time `json:"release_date" gorm:"not null"`
	ImageURL    *string   `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Derived from related reviews/wishlists on read, never stored.
	AverageRating float64 `json:"average_rating" gorm:"-"`
	ReviewCount   int64   `json:"review_count" gorm:"-"`
	WishlistCount int64   `json:"wishlist_count" gorm:"-"`
}

func (Movie) TableName() string {
	return "movies"
}
