package dto

import (
	"time"

	"moviezone/internal/http-api/models"
)

// CreateReviewDTO used for POST /api/reviews
type CreateReviewDTO struct {
	MovieID    int64  `json:"movie_id" binding:"required"`
	ReviewText string `json:"review_text" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=10"`
}

// ReviewResponse DTO for responses
type ReviewResponse struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	Username   string    `json:"username,omitempty"`
	MovieID    int64     `json:"movie_id"`
	ReviewText string    `json:"review_text"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreatedReviewResponse additionally carries the sentiment estimate of
// the review text, computed once at creation time.
type CreatedReviewResponse struct {
	ReviewResponse
	SentimentScore int    `json:"sentiment_score"`
	SentimentLabel string `json:"sentiment_label"`
}

func FromReviewToResponse(r models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		MovieID:    r.MovieID,
		ReviewText: r.ReviewText,
		Rating:     r.Rating,
		CreatedAt:  r.CreatedAt,
	}
	if r.User != nil {
		resp.Username = r.User.Username
	}
	return resp
}
