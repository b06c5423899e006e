package models

import "time"

type Comment struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      string    `json:"user_id" gorm:"type:uuid;not null;index"`
	MovieID     int64     `json:"movie_id" gorm:"not null;index"`
	CommentText string    `json:"comment_text" gorm:"not null;type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie *Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}
