package handler

import (
	"context"
	"errors"
	"net/http"

	"geopindrop/internal/geocoder"
	"geopindrop/internal/models"

	"github.com/gin-gonic/gin"
)

// SuggestHandler handles address autocomplete requests
type SuggestHandler struct {
	service SuggestService
}

// Service interface for dependency injection
type SuggestService interface {
	Suggest(ctx context.Context, query string) ([]models.Suggestion, error)
}

// NewSuggestHandler creates a new suggest handler
func NewSuggestHandler(svc SuggestService) *SuggestHandler {
	return &SuggestHandler{service: svc}
}

// Suggest handles GET /api/suggest requests
//
//	@Summary		Autocomplete addresses
//	@Description	Returns up to five candidate matches for a partial address
//	@Tags			suggest
//	@Produce		json
//	@Param			q	query		string	true	"Partial address, at least 3 characters"
//	@Success		200	{array}		models.Suggestion
//	@Failure		400	{object}	map[string]string
//	@Failure		502	{object}	map[string]string
//	@Router			/api/suggest [get]
func (h *SuggestHandler) Suggest(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	suggestions, err := h.service.Suggest(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, geocoder.ErrQueryTooShort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "query too short"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "geocoding service unavailable"})
		return
	}

	c.JSON(http.StatusOK, suggestions)
}
