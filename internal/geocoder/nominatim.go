package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"geopindrop/internal/models"

	"github.com/rs/zerolog"
)

// Sentinel errors surfaced to callers. The provider is best-effort: a failed
// call is reported immediately, no retry is attempted.
var (
	// ErrQueryTooShort is returned before any network call when the query is
	// under the minimum length. Keeps every keystroke from hitting the provider.
	ErrQueryTooShort = errors.New("geocoder: query too short")
	// ErrNoMatch means the provider answered but returned nothing usable.
	ErrNoMatch = errors.New("geocoder: no match found")
	// ErrUpstream covers network failures and non-200 provider responses.
	ErrUpstream = errors.New("geocoder: upstream unavailable")
)

const (
	minQueryLen    = 3
	requestTimeout = 10 * time.Second

	defaultBaseURL   = "https://nominatim.openstreetmap.org/search"
	defaultUserAgent = "geopindrop/1.0"
)

// HTTPClient is the subset of http.Client the geocoder needs. It exists so
// tests can swap in a double.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Result is a single candidate match from the provider. Lat and Lon are the
// decimal strings the provider returned, not parsed values.
type Result struct {
	DisplayName string
	Street      string
	HouseNumber string
	City        string
	Lat         string
	Lon         string
}

// nominatimItem mirrors one element of the provider's JSON array response.
type nominatimItem struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Address     struct {
		Road        string `json:"road"`
		HouseNumber string `json:"house_number"`
		City        string `json:"city"`
		Town        string `json:"town"`
	} `json:"address"`
}

// Client talks to a Nominatim-compatible search endpoint.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	userAgent  string
	log        zerolog.Logger
}

// NewClient creates a geocoder client against the given base URL. Empty
// baseURL or userAgent fall back to the public Nominatim endpoint and the
// default identifying tag.
func NewClient(baseURL, userAgent string, log zerolog.Logger) *Client {
	return NewClientWithHTTP(&http.Client{Timeout: requestTimeout}, baseURL, userAgent, log)
}

// NewClientWithHTTP creates a client with a custom HTTP client, used by tests.
func NewClientWithHTTP(httpClient HTTPClient, baseURL, userAgent string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		log:        log,
	}
}

// Search returns up to limit candidate matches for a partial address,
// including decomposed address components for form pre-fill.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]models.Suggestion, error) {
	items, err := c.search(ctx, query, limit, true)
	if err != nil {
		return nil, err
	}

	suggestions := make([]models.Suggestion, 0, len(items))
	for _, item := range items {
		city := item.Address.City
		if city == "" {
			city = item.Address.Town
		}
		suggestions = append(suggestions, models.Suggestion{
			Label:       item.DisplayName,
			Value:       item.DisplayName,
			Street:      item.Address.Road,
			HouseNumber: item.Address.HouseNumber,
			City:        city,
			Lat:         item.Lat,
			Lon:         item.Lon,
		})
	}

	return suggestions, nil
}

// Resolve returns the single best match for a full address, used when
// committing a record.
func (c *Client) Resolve(ctx context.Context, address string) (Result, error) {
	items, err := c.search(ctx, address, 1, false)
	if err != nil {
		return Result{}, err
	}

	first := items[0]
	city := first.Address.City
	if city == "" {
		city = first.Address.Town
	}

	return Result{
		DisplayName: first.DisplayName,
		Street:      first.Address.Road,
		HouseNumber: first.Address.HouseNumber,
		City:        city,
		Lat:         first.Lat,
		Lon:         first.Lon,
	}, nil
}

// search performs one provider request. It never returns an empty slice
// without an error.
func (c *Client) search(ctx context.Context, query string, limit int, addressDetails bool) ([]nominatimItem, error) {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < minQueryLen {
		return nil, ErrQueryTooShort
	}

	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("geocoder: invalid base URL: %w", err)
	}

	params := reqURL.Query()
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	if addressDetails {
		params.Set("addressdetails", "1")
	}
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocoder: failed to create request: %w", err)
	}
	// Nominatim usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("query", query).Msg("geocoding request failed")
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.Error().Int("status", resp.StatusCode).Str("query", query).Msg("geocoding provider returned an error")
		return nil, fmt.Errorf("%w: provider returned status %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	var items []nominatimItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: failed to decode provider response: %w", ErrUpstream, err)
	}

	// Entries without coordinates are unusable, drop them rather than fail.
	usable := items[:0]
	for _, item := range items {
		if item.Lat == "" || item.Lon == "" {
			continue
		}
		usable = append(usable, item)
	}

	if len(usable) == 0 {
		c.log.Debug().Str("query", query).Msg("geocoding returned no usable results")
		return nil, ErrNoMatch
	}

	return usable, nil
}
