package service

import (
	"context"
	"testing"

	"geopindrop/internal/geocoder"
	"geopindrop/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSearcher is a mock implementation of the Searcher interface
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, query string, limit int) ([]models.Suggestion, error) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]models.Suggestion), args.Error(1)
}

func TestSuggestService_Suggest(t *testing.T) {
	tests := []struct {
		name            string
		query           string
		mockSuggestions []models.Suggestion
		mockError       error
		expected        []models.Suggestion
		expectedError   error
	}{
		{
			name:  "successful lookup with results",
			query: "Via Rom",
			mockSuggestions: []models.Suggestion{
				{Label: "Via Roma, Milan", Lat: "45.4642", Lon: "9.1900"},
				{Label: "Via Roma, Turin", Lat: "45.0703", Lon: "7.6869"},
			},
			expected: []models.Suggestion{
				{Label: "Via Roma, Milan", Lat: "45.4642", Lon: "9.1900"},
				{Label: "Via Roma, Turin", Lat: "45.0703", Lon: "7.6869"},
			},
		},
		{
			name:      "no match is an empty list, not an error",
			query:     "zzz_no_such_place",
			mockError: geocoder.ErrNoMatch,
			expected:  []models.Suggestion{},
		},
		{
			name:          "too-short query propagates",
			query:         "ab",
			mockError:     geocoder.ErrQueryTooShort,
			expectedError: geocoder.ErrQueryTooShort,
		},
		{
			name:          "upstream failure propagates",
			query:         "Via Rom",
			mockError:     geocoder.ErrUpstream,
			expectedError: geocoder.ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockGeo := new(MockSearcher)
			mockGeo.On("Search", mock.Anything, tt.query, 5).Return(tt.mockSuggestions, tt.mockError)
			svc := NewSuggestService(mockGeo)

			// Execute
			result, err := svc.Suggest(context.Background(), tt.query)

			// Assert
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
			mockGeo.AssertExpectations(t)
		})
	}
}
