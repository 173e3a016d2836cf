package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"geopindrop/internal/models"
	"geopindrop/internal/service"

	"github.com/gin-gonic/gin"
)

// PinHandler handles pin lifecycle requests
type PinHandler struct {
	service PinService
}

// Service interface for dependency injection
type PinService interface {
	Create(ctx context.Context, input service.CreatePinInput) (service.CreatePinResult, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.Pin, error)
}

// CreatePinRequest is the JSON body for creating a pin.
type CreatePinRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Info    string `json:"info"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// NewPinHandler creates a new pin handler
func NewPinHandler(svc PinService) *PinHandler {
	return &PinHandler{service: svc}
}

// Create handles POST /api/pins requests
//
//	@Summary		Add a pin
//	@Description	Resolves the address through the geocoder and stores the pin
//	@Tags			pins
//	@Accept			json
//	@Produce		json
//	@Param			pin	body		CreatePinRequest	true	"Pin fields"
//	@Success		201	{object}	service.CreatePinResult
//	@Failure		400	{object}	map[string]string
//	@Failure		422	{object}	map[string]string
//	@Failure		502	{object}	map[string]string
//	@Router			/api/pins [post]
func (h *PinHandler) Create(c *gin.Context) {
	var req CreatePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.Create(c.Request.Context(), service.CreatePinInput{
		Name:    req.Name,
		Surname: req.Surname,
		Info:    req.Info,
		Address: req.Address,
		City:    req.City,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, surname, address and city are required"})
		case errors.Is(err, service.ErrAddressNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "address not found, please check the address and city"})
		case errors.Is(err, service.ErrPersistence):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "geocoding service unavailable"})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Delete handles DELETE /api/pins/:id requests
//
//	@Summary		Delete a pin
//	@Tags			pins
//	@Produce		json
//	@Param			id	path		int	true	"Pin ID"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/api/pins/{id} [delete]
func (h *PinHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pin id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pin id"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "pin not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "pin deleted"})
}

// List handles GET /api/pins requests
//
//	@Summary		List pins
//	@Description	Returns all pins, newest first
//	@Tags			pins
//	@Produce		json
//	@Success		200	{array}		models.Pin
//	@Failure		500	{object}	map[string]string
//	@Router			/api/pins [get]
func (h *PinHandler) List(c *gin.Context) {
	pins, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if pins == nil {
		pins = []models.Pin{}
	}

	c.JSON(http.StatusOK, pins)
}
