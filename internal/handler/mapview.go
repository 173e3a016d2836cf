package handler

import (
	"net/http"

	"geopindrop/internal/mapview"

	"github.com/gin-gonic/gin"
)

// MapHandler serves the derived map view state
type MapHandler struct {
	service PinService
}

// NewMapHandler creates a new map view handler
func NewMapHandler(svc PinService) *MapHandler {
	return &MapHandler{service: svc}
}

// View handles GET /api/map requests
//
//	@Summary		Map view state
//	@Description	Returns markers plus either a center/zoom or a bounding box to fit
//	@Tags			map
//	@Produce		json
//	@Success		200	{object}	mapview.View
//	@Failure		500	{object}	map[string]string
//	@Router			/api/map [get]
func (h *MapHandler) View(c *gin.Context) {
	pins, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, mapview.Render(pins))
}
