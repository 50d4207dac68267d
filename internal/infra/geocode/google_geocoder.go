// Package geocode implements address resolution against the Google
// Geocoding API.
package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"tradie/config"
	"tradie/internal/domain/service"
	"tradie/internal/errors"

	"github.com/paulmach/orb"
)

const (
	defaultEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultTimeout  = 5 * time.Second

	// maxResponseBytes bounds how much of the provider response is read.
	maxResponseBytes = 1 << 20
)

// ErrNoResults is returned when the provider recognises the query but has
// no candidate location for it.
var ErrNoResults = errors.New("geocoding returned no results")

type googleGeocoder struct {
	client   *http.Client
	endpoint string
	apiKey   string
	country  string
}

// New creates a Geocoder backed by the Google Geocoding API. Each call is a
// single round-trip; retry policy is left to the caller.
func New(cfg *config.Config) service.Geocoder {
	endpoint := defaultEndpoint
	timeout := defaultTimeout
	apiKey := ""
	country := ""

	if cfg != nil && cfg.Geocoding != nil {
		if cfg.Geocoding.Endpoint != "" {
			endpoint = cfg.Geocoding.Endpoint
		}
		if cfg.Geocoding.Timeout > 0 {
			timeout = cfg.Geocoding.Timeout
		}
		apiKey = cfg.Geocoding.APIKey
		country = cfg.Geocoding.Country
	}

	return &googleGeocoder{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		apiKey:   apiKey,
		country:  country,
	}
}

// geocodeResponse mirrors the subset of the provider payload we consume.
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves the address line into a lon/lat point, appending the
// configured country so partial addresses still resolve within the locale.
// Only the first candidate is used.
func (g *googleGeocoder) Geocode(ctx context.Context, address string) (orb.Point, error) {
	query := address
	if g.country != "" {
		query += ", " + g.country
	}

	params := url.Values{}
	params.Set("address", query)
	if g.apiKey != "" {
		params.Set("key", g.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "failed to build geocoding request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, errors.Errorf("geocoding provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "failed to read geocoding response")
	}

	var payload geocodeResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return orb.Point{}, errors.Wrap(err, "failed to decode geocoding response")
	}

	switch payload.Status {
	case "OK":
		// fall through to result handling
	case "ZERO_RESULTS":
		return orb.Point{}, ErrNoResults
	default:
		return orb.Point{}, errors.Errorf("geocoding provider returned status %q", payload.Status)
	}

	if len(payload.Results) == 0 {
		return orb.Point{}, ErrNoResults
	}

	location := payload.Results[0].Geometry.Location

	return orb.Point{location.Lng, location.Lat}, nil
}
