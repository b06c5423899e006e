package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"moviezone/internal/http-api/dto"
	"moviezone/internal/http-api/middleware"
	"moviezone/internal/http-api/repository"
	"moviezone/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	svc         service.MovieService
	authService service.AuthService
}

func NewMovieHandler(svc service.MovieService, authService service.AuthService) *MovieHandler {
	return &MovieHandler{svc: svc, authService: authService}
}

func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Public routes
	rg.GET("/", h.List)
	rg.GET("/categories", h.Categories)
	rg.GET("/:movie_id", h.Get)

	// Admin-only routes
	auth := middleware.AuthMiddleware(h.authService)
	rg.POST("/", auth, middleware.RequireAdmin(), h.Create)
	rg.PUT("/:movie_id", auth, middleware.RequireAdmin(), h.Update)
	rg.PATCH("/:movie_id", auth, middleware.RequireAdmin(), h.Update)
	rg.DELETE("/:movie_id", auth, middleware.RequireAdmin(), h.Delete)
}

// parseFilter maps the ?filter= query parameter to a catalog ranking.
// Unknown values fall back to the default ordering.
func parseFilter(raw string) repository.CatalogFilter {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trending":
		return repository.FilterTrending
	case "top-rated":
		return repository.FilterTopRated
	case "latest":
		return repository.FilterLatest
	default:
		return repository.FilterNone
	}
}

func (h *MovieHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	filter := parseFilter(c.Query("filter"))
	search := strings.TrimSpace(c.Query("search"))

	list, err := h.svc.List(ctx, filter, search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.MovieResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.FromMovieToResponse(m))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  resp,
		"total": len(resp),
	})
}

func (h *MovieHandler) Categories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	counts, err := h.svc.Categories(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *MovieHandler) Get(c *gin.Context) {
	idStr := c.Param("movie_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	m, err := h.svc.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		return
	}
	c.JSON(http.StatusOK, dto.FromMovieToResponse(*m))
}

func (h *MovieHandler) Create(c *gin.Context) {
	var in dto.CreateMovieDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	model := in.ToModel()
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Create(ctx, &model); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.FromMovieToResponse(model))
}

// Update serves both PUT and PATCH. Only the fields present in the
// payload are changed.
func (h *MovieHandler) Update(c *gin.Context) {
	idStr := c.Param("movie_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var in dto.UpdateMovieDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	current, err := h.svc.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		return
	}

	in.ApplyTo(current)
	if err := h.svc.Update(ctx, current); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.svc.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromMovieToResponse(*updated))
}

func (h *MovieHandler) Delete(c *gin.Context) {
	idStr := c.Param("movie_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
