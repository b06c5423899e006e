package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"moviezone/internal/http-api/dto"
	"moviezone/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	svc service.WishlistService
}

func NewWishlistHandler(svc service.WishlistService) *WishlistHandler {
	return &WishlistHandler{svc: svc}
}

// RegisterRoutes expects the group to already carry AuthMiddleware.
func (h *WishlistHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.POST("/", h.Add)
	rg.DELETE("/:movie_id", h.Remove)
}

func (h *WishlistHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.List(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.WishlistResponse, 0, len(list))
	for _, w := range list {
		resp = append(resp, dto.FromWishlistToResponse(w))
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  resp,
		"total": len(resp),
	})
}

func (h *WishlistHandler) Add(c *gin.Context) {
	userID := c.GetString("userID")

	var in dto.AddWishlistDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entry, err := h.svc.Add(ctx, userID, in.MovieID)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, dto.FromWishlistToResponse(*entry))
	case errors.Is(err, service.ErrAlreadyWishlisted):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Remove deletes the caller's wishlist entry for a movie.
func (h *WishlistHandler) Remove(c *gin.Context) {
	userID := c.GetString("userID")

	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.RemoveByMovie(ctx, userID, movieID); err != nil {
		if errors.Is(err, service.ErrWishlistEntryMissing) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
