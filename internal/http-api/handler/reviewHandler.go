package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"moviezone/internal/http-api/dto"
	"moviezone/internal/http-api/middleware"
	"moviezone/internal/http-api/models"
	"moviezone/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	svc         service.ReviewService
	authService service.AuthService
}

func NewReviewHandler(svc service.ReviewService, authService service.AuthService) *ReviewHandler {
	return &ReviewHandler{svc: svc, authService: authService}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.ListAll)
	rg.GET("/:movie_id/movie_reviews", h.ListByMovie)
	rg.POST("/", middleware.AuthMiddleware(h.authService), h.Create)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var in dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// scoring may call a remote provider, give it more room than CRUD
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	created, err := h.svc.Create(ctx, userID, in.MovieID, in.ReviewText, in.Rating)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, dto.CreatedReviewResponse{
			ReviewResponse: dto.FromReviewToResponse(*created.Review),
			SentimentScore: created.SentimentScore,
			SentimentLabel: created.SentimentLabel,
		})
	case errors.Is(err, service.ErrRatingOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *ReviewHandler) ListByMovie(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.ListByMovie(ctx, movieID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, dto.FromReviewToResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  resp,
		"total": len(resp),
	})
}

// ListAll returns every review, or a single movie's reviews when the
// movie_id query parameter is present.
func (h *ReviewHandler) ListAll(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var list []models.Review
	var err error
	if movieIDStr := c.Query("movie_id"); movieIDStr != "" {
		movieID, parseErr := strconv.ParseInt(movieIDStr, 10, 64)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie_id"})
			return
		}
		list, err = h.svc.ListByMovie(ctx, movieID)
	} else {
		list, err = h.svc.ListAll(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, dto.FromReviewToResponse(r))
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  resp,
		"total": len(resp),
	})
}
