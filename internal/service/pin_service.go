package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"geopindrop/internal/geocoder"
	"geopindrop/internal/models"
)

// Typed operation failures. Handlers map these to HTTP statuses; anything
// else is an internal fault.
var (
	// ErrValidation means a required input field was empty.
	ErrValidation = errors.New("service: required fields missing")
	// ErrAddressNotFound means the geocoder had no match for the address,
	// a correctable user error rather than a system fault.
	ErrAddressNotFound = errors.New("service: address not found")
	// ErrInvalidID means the pin id is not a positive integer.
	ErrInvalidID = errors.New("service: invalid pin id")
	// ErrNotFound means no pin with the given id exists.
	ErrNotFound = errors.New("service: pin not found")
	// ErrPersistence means the storage layer failed.
	ErrPersistence = errors.New("service: persistence failure")
)

// CreatePinInput carries the form fields for a new pin. Info is optional.
type CreatePinInput struct {
	Name    string
	Surname string
	Info    string
	Address string
	City    string
}

// CreatePinResult is the caller-facing outcome of a successful create.
type CreatePinResult struct {
	ID        int64  `json:"id"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// PinRepository interface for dependency injection
type PinRepository interface {
	Insert(ctx context.Context, pin models.Pin) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]models.Pin, error)
}

// Resolver resolves a full address to its single best coordinate match.
type Resolver interface {
	Resolve(ctx context.Context, address string) (geocoder.Result, error)
}

// PinService orchestrates the pin lifecycle: geocode-then-persist on create,
// delete by id, list newest first. It holds no state between calls.
type PinService struct {
	repo PinRepository
	geo  Resolver
}

// NewPinService creates a new pin service.
func NewPinService(repo PinRepository, geo Resolver) *PinService {
	return &PinService{repo: repo, geo: geo}
}

// Create validates the input, resolves "address, city" through the geocoder
// and persists the pin with the resolved coordinates. Persistence is only
// attempted after a successful resolve, so a failed create never leaves a
// partial record behind.
func (s *PinService) Create(ctx context.Context, input CreatePinInput) (CreatePinResult, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Surname = strings.TrimSpace(input.Surname)
	input.Info = strings.TrimSpace(input.Info)
	input.Address = strings.TrimSpace(input.Address)
	input.City = strings.TrimSpace(input.City)

	if input.Name == "" || input.Surname == "" || input.Address == "" || input.City == "" {
		return CreatePinResult{}, ErrValidation
	}

	result, err := s.geo.Resolve(ctx, input.Address+", "+input.City)
	if err != nil {
		if errors.Is(err, geocoder.ErrNoMatch) {
			return CreatePinResult{}, ErrAddressNotFound
		}
		return CreatePinResult{}, fmt.Errorf("service: failed to resolve address: %w", err)
	}

	id, err := s.repo.Insert(ctx, models.Pin{
		Name:      input.Name,
		Surname:   input.Surname,
		Info:      input.Info,
		Address:   input.Address,
		City:      input.City,
		Latitude:  result.Lat,
		Longitude: result.Lon,
	})
	if err != nil {
		return CreatePinResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return CreatePinResult{ID: id, Latitude: result.Lat, Longitude: result.Lon}, nil
}

// Delete removes the pin with the given id. Deleting an unknown id is
// reported as ErrNotFound and leaves the store unchanged.
func (s *PinService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if removed == 0 {
		return ErrNotFound
	}

	return nil
}

// List returns all pins, newest first.
func (s *PinService) List(ctx context.Context) ([]models.Pin, error) {
	pins, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return pins, nil
}
