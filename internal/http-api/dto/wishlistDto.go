package dto

import (
	"time"

	"moviezone/internal/http-api/models"
)

// AddWishlistDTO used for POST /api/wishlist
type AddWishlistDTO struct {
	MovieID int64 `json:"movie_id" binding:"required"`
}

// WishlistResponse DTO for responses
type WishlistResponse struct {
	ID      int64          `json:"id"`
	UserID  string         `json:"user_id"`
	MovieID int64          `json:"movie_id"`
	AddedAt time.Time      `json:"added_at"`
	Movie   *MovieResponse `json:"movie,omitempty"`
}

func FromWishlistToResponse(w models.Wishlist) WishlistResponse {
	resp := WishlistResponse{
		ID:      w.ID,
		UserID:  w.UserID,
		MovieID: w.MovieID,
		AddedAt: w.AddedAt,
	}
	if w.Movie != nil {
		movie := FromMovieToResponse(*w.Movie)
		resp.Movie = &movie
	}
	return resp
}
