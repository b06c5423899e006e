package dto

import (
	"time"

	"moviezone/internal/http-api/models"
)

const releaseDateLayout = "2006-01-02"

// CreateMovieDTO used for POST /api/movies
type CreateMovieDTO struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	ReleaseDate string  `json:"release_date" binding:"required,datetime=2006-01-02"`
	ImageURL    *string `json:"image,omitempty"`
}

// UpdateMovieDTO used for PUT/PATCH /api/movies/:id (partial updates allowed)
type UpdateMovieDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ReleaseDate *string `json:"release_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	ImageURL    *string `json:"image,omitempty"`
}

// MovieResponse DTO for responses, including the derived stats
type MovieResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ReleaseDate   string    `json:"release_date"`
	ImageURL      *string   `json:"image,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int64     `json:"review_count"`
	WishlistCount int64     `json:"wishlist_count"`
}

// Converters
func (d CreateMovieDTO) ToModel() models.Movie {
	// release_date format already validated by the binding tag
	release, _ := time.Parse(releaseDateLayout, d.ReleaseDate)
	return models.Movie{
		Title:       d.Title,
		Description: d.Description,
		ReleaseDate: release,
		ImageURL:    d.ImageURL,
	}
}

func (d UpdateMovieDTO) ApplyTo(m *models.Movie) {
	if d.Title != nil {
		m.Title = *d.Title
	}
	if d.Description != nil {
		m.Description = *d.Description
	}
	if d.ReleaseDate != nil {
		if release, err := time.Parse(releaseDateLayout, *d.ReleaseDate); err == nil {
			m.ReleaseDate = release
		}
	}
	if d.ImageURL != nil {
		m.ImageURL = d.ImageURL
	}
}

func FromMovieToResponse(m models.Movie) MovieResponse {
	return MovieResponse{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		ReleaseDate:   m.ReleaseDate.Format(releaseDateLayout),
		ImageURL:      m.ImageURL,
		CreatedAt:     m.CreatedAt,
		AverageRating: m.AverageRating,
		ReviewCount:   m.ReviewCount,
		WishlistCount: m.WishlistCount,
	}
}
