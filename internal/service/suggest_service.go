package service

import (
	"context"
	"errors"
	"fmt"

	"geopindrop/internal/geocoder"
	"geopindrop/internal/models"
)

// suggestionLimit caps how many candidates a single autocomplete lookup asks
// the provider for.
const suggestionLimit = 5

// Searcher returns candidate matches for a partial address.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]models.Suggestion, error)
}

// SuggestService is a thin pass-through from a partial address to ranked
// provider suggestions.
type SuggestService struct {
	geo Searcher
}

// NewSuggestService creates a new suggest service.
func NewSuggestService(geo Searcher) *SuggestService {
	return &SuggestService{geo: geo}
}

// Suggest returns up to five candidate matches for the partial query.
// An empty result set from the provider is normal and yields an empty
// slice, not an error. Too-short queries and upstream failures propagate.
func (s *SuggestService) Suggest(ctx context.Context, query string) ([]models.Suggestion, error) {
	suggestions, err := s.geo.Search(ctx, query, suggestionLimit)
	if err != nil {
		if errors.Is(err, geocoder.ErrNoMatch) {
			return []models.Suggestion{}, nil
		}
		return nil, fmt.Errorf("service: failed to fetch suggestions: %w", err)
	}

	return suggestions, nil
}
