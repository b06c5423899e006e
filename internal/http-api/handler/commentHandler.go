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

type CommentHandler struct {
	svc         service.CommentService
	authService service.AuthService
}

func NewCommentHandler(svc service.CommentService, authService service.AuthService) *CommentHandler {
	return &CommentHandler{svc: svc, authService: authService}
}

func (h *CommentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.ListAll)
	rg.GET("/:movie_id/movie_comments", h.ListByMovie)
	rg.POST("/", middleware.AuthMiddleware(h.authService), h.Create)
}

func (h *CommentHandler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var in dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	comment, err := h.svc.Create(ctx, userID, in.MovieID, in.CommentText)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.FromCommentToResponse(*comment))
}

func (h *CommentHandler) ListByMovie(c *gin.Context) {
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

	resp := make([]dto.CommentResponse, 0, len(list))
	for _, cm := range list {
		resp = append(resp, dto.FromCommentToResponse(cm))
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  resp,
		"total": len(resp),
	})
}

// ListAll returns every comment, or a single movie's comments when the
// movie_id query parameter is present.
func (h *CommentHandler) ListAll(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var list []models.Comment
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

	resp := make([]dto.CommentResponse, 0, len(list))
	for _, cm := range list {
		resp = append(resp, dto.FromCommentToResponse(cm))
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  resp,
		"total": len(resp),
	})
}
