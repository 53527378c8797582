// Package weather proxies the two upstream forecast providers the mobile
// app understands. Open-Meteo needs no credentials; an OpenWeatherMap API
// key, when configured, takes precedence. The provider tag travels with
// every report so callers can branch on the payload schema.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

// Provider names, also used as the schema discriminator in responses.
const (
	ProviderOpenMeteo      = "open-meteo"
	ProviderOpenWeatherMap = "openweathermap"
)

const (
	defaultOpenMeteoBase      = "https://api.open-meteo.com"
	defaultOpenWeatherMapBase = "https://api.openweathermap.org"
)

// Summary aggregates the forecast temperatures regardless of provider
// schema, so the UI has one stable block to render.
type Summary struct {
	MinC  float64 `json:"minC"`
	MeanC float64 `json:"meanC"`
	MaxC  float64 `json:"maxC"`
}

// Report is one provider response plus derived fields.
type Report struct {
	Provider string         `json:"provider"`
	Payload  map[string]any `json:"payload"`
	Summary  *Summary       `json:"summary,omitempty"`
}

// Client fetches current conditions and forecast from the selected
// provider.
type Client struct {
	http           *http.Client
	openWeatherKey string

	// Overridable for tests.
	openMeteoBase      string
	openWeatherMapBase string
}

// NewClient builds a weather client. A non-empty OpenWeatherMap key
// selects that provider; otherwise Open-Meteo is used.
func NewClient(openWeatherKey string) *Client {
	return &Client{
		http:           &http.Client{Timeout: 15 * time.Second},
		openWeatherKey: openWeatherKey,

		openMeteoBase:      defaultOpenMeteoBase,
		openWeatherMapBase: defaultOpenWeatherMapBase,
	}
}

// Provider reports which upstream the client will call.
func (c *Client) Provider() string {
	if c.openWeatherKey != "" {
		return ProviderOpenWeatherMap
	}
	return ProviderOpenMeteo
}

// CurrentAndForecast fetches current conditions plus the daily forecast
// for the coordinates.
func (c *Client) CurrentAndForecast(ctx context.Context, lat, lon float64) (*Report, error) {
	if c.Provider() == ProviderOpenWeatherMap {
		return c.fetchOpenWeatherMap(ctx, lat, lon)
	}
	return c.fetchOpenMeteo(ctx, lat, lon)
}

// fetchOpenMeteo does a single call: current weather plus daily min/max
// temperatures.
func (c *Client) fetchOpenMeteo(ctx context.Context, lat, lon float64) (*Report, error) {
	q := url.Values{}
	q.Set("latitude", formatCoord(lat))
	q.Set("longitude", formatCoord(lon))
	q.Set("current_weather", "true")
	q.Set("daily", "temperature_2m_max,temperature_2m_min,weathercode")
	q.Set("timezone", "auto")

	payload, err := c.getJSON(ctx, c.openMeteoBase+"/v1/forecast?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("open-meteo fetch: %w", err)
	}

	rep := &Report{Provider: ProviderOpenMeteo, Payload: payload}
	if daily, ok := payload["daily"].(map[string]any); ok {
		temps := append(floatSlice(daily["temperature_2m_max"]), floatSlice(daily["temperature_2m_min"])...)
		rep.Summary = summarize(temps)
	}
	return rep, nil
}

// fetchOpenWeatherMap fetches current conditions and the 5-day forecast
// concurrently and merges them into one payload.
func (c *Client) fetchOpenWeatherMap(ctx context.Context, lat, lon float64) (*Report, error) {
	q := url.Values{}
	q.Set("lat", formatCoord(lat))
	q.Set("lon", formatCoord(lon))
	q.Set("units", "metric")
	q.Set("appid", c.openWeatherKey)

	var current, forecast map[string]any
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = c.getJSON(gctx, c.openWeatherMapBase+"/data/2.5/weather?"+q.Encode())
		if err != nil {
			return fmt.Errorf("openweathermap current: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		forecast, err = c.getJSON(gctx, c.openWeatherMapBase+"/data/2.5/forecast?"+q.Encode())
		if err != nil {
			return fmt.Errorf("openweathermap forecast: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{
		Provider: ProviderOpenWeatherMap,
		Payload:  map[string]any{"current": current, "forecast": forecast},
	}

	var temps []float64
	if list, ok := forecast["list"].([]any); ok {
		for _, item := range list {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			main, ok := m["main"].(map[string]any)
			if !ok {
				continue
			}
			if t, ok := main["temp"].(float64); ok {
				temps = append(temps, t)
			}
		}
	}
	rep.Summary = summarize(temps)
	return rep, nil
}

// getJSON issues a GET and decodes the body, wrapping non-2xx statuses.
func (c *Client) getJSON(ctx context.Context, rawURL string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upstream non-2xx: %s", resp.Status)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// summarize reduces forecast temperatures to min/mean/max. Nil when there
// is nothing to aggregate.
func summarize(temps []float64) *Summary {
	if len(temps) == 0 {
		return nil
	}
	minC, err1 := stats.Min(temps)
	meanC, err2 := stats.Mean(temps)
	maxC, err3 := stats.Max(temps)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil
	}
	return &Summary{
		MinC:  minC,
		MeanC: roundTenth(meanC),
		MaxC:  maxC,
	}
}

func roundTenth(v float64) float64 {
	r, err := stats.Round(v, 1)
	if err != nil {
		return v
	}
	return r
}

func floatSlice(v any) []float64 {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]float64, 0, len(arr))
	for _, x := range arr {
		if f, ok := x.(float64); ok {
			out = append(out, f)
		}
	}
	return out
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
