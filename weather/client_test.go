package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderSelection(t *testing.T) {
	assert.Equal(t, ProviderOpenMeteo, NewClient("").Provider())
	assert.Equal(t, ProviderOpenWeatherMap, NewClient("key-123").Provider())
}

func TestOpenMeteoFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("current_weather"))
		assert.Equal(t, "52.52", r.URL.Query().Get("latitude"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"current_weather": {"temperature": 18.3, "weathercode": 2},
			"daily": {
				"temperature_2m_max": [20.0, 22.0, 24.0],
				"temperature_2m_min": [10.0, 12.0, 14.0]
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient("")
	c.openMeteoBase = srv.URL

	rep, err := c.CurrentAndForecast(context.Background(), 52.52, 13.405)
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenMeteo, rep.Provider)
	assert.Contains(t, rep.Payload, "current_weather")

	require.NotNil(t, rep.Summary)
	assert.Equal(t, 10.0, rep.Summary.MinC)
	assert.Equal(t, 24.0, rep.Summary.MaxC)
	assert.Equal(t, 17.0, rep.Summary.MeanC)
}

func TestOpenWeatherMapFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/data/2.5/weather":
			w.Write([]byte(`{"main": {"temp": 19.4}, "weather": [{"main": "Clouds"}]}`))
		case "/data/2.5/forecast":
			w.Write([]byte(`{"list": [
				{"main": {"temp": 16.0}},
				{"main": {"temp": 18.0}},
				{"main": {"temp": 20.0}}
			]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient("secret")
	c.openWeatherMapBase = srv.URL

	rep, err := c.CurrentAndForecast(context.Background(), 40.0, -74.0)
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenWeatherMap, rep.Provider)
	assert.Contains(t, rep.Payload, "current")
	assert.Contains(t, rep.Payload, "forecast")

	require.NotNil(t, rep.Summary)
	assert.Equal(t, 16.0, rep.Summary.MinC)
	assert.Equal(t, 18.0, rep.Summary.MeanC)
	assert.Equal(t, 20.0, rep.Summary.MaxC)
}

func TestUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("")
	c.openMeteoBase = srv.URL

	_, err := c.CurrentAndForecast(context.Background(), 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-2xx")
}

func TestTruncatedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Announce more bytes than we send so the client sees a short read.
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Length", "500")
		w.Write([]byte(`{"current_weather":`))
	}))
	defer srv.Close()

	c := NewClient("")
	c.openMeteoBase = srv.URL

	_, err := c.CurrentAndForecast(context.Background(), 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read response")
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Nil(t, summarize(nil))
}
