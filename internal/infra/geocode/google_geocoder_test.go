package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tradie/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(endpoint string) *config.Config {
	cfg := &config.Config{}
	cfg.Geocoding = &config.GeocodingConfig{
		APIKey:   "test-key",
		Endpoint: endpoint,
		Country:  "New Zealand",
		Timeout:  2 * time.Second,
	}

	return cfg
}

func TestGeocodeAppendsCountryAndParsesFirstResult(t *testing.T) {
	var gotAddress string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAddress = r.URL.Query().Get("address")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"geometry": {"location": {"lat": -36.8485, "lng": 174.7633}}},
				{"geometry": {"location": {"lat": -41.2866, "lng": 174.7756}}}
			]
		}`))
	}))
	defer server.Close()

	geocoder := New(newTestConfig(server.URL))

	point, err := geocoder.Geocode(context.Background(), "1 Queen Street, Auckland CBD, Auckland")
	require.NoError(t, err)

	assert.Equal(t, "1 Queen Street, Auckland CBD, Auckland, New Zealand", gotAddress)
	assert.InDelta(t, 174.7633, point.Lon(), 1e-9)
	assert.InDelta(t, -36.8485, point.Lat(), 1e-9)
}

func TestGeocodeZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	geocoder := New(newTestConfig(server.URL))

	_, err := geocoder.Geocode(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestGeocodeProviderErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "OVER_QUERY_LIMIT", "results": []}`))
	}))
	defer server.Close()

	geocoder := New(newTestConfig(server.URL))

	_, err := geocoder.Geocode(context.Background(), "1 Queen Street")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoResults)
	assert.Contains(t, err.Error(), "OVER_QUERY_LIMIT")
}

func TestGeocodeHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	geocoder := New(newTestConfig(server.URL))

	_, err := geocoder.Geocode(context.Background(), "1 Queen Street")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
