package dto

import (
	"time"

	"moviezone/internal/http-api/models"
)

// CreateCommentDTO used for POST /api/comments
type CreateCommentDTO struct {
	MovieID     int64  `json:"movie_id" binding:"required"`
	CommentText string `json:"comment_text" binding:"required"`
}

// CommentResponse DTO for responses
type CommentResponse struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	MovieID     int64     `json:"movie_id"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromCommentToResponse(c models.Comment) CommentResponse {
	resp := CommentResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		MovieID:     c.MovieID,
		CommentText: c.CommentText,
		CreatedAt:   c.CreatedAt,
	}
	if c.User != nil {
		resp.Username = c.User.Username
	}
	return resp
}
