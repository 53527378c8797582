package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// handleWeather proxies the configured upstream provider. The response
// carries the provider tag so clients can branch on the payload schema.
func (a *App) handleWeather(w http.ResponseWriter, r *http.Request) {
	lat, err1 := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, err2 := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err1 != nil || err2 != nil {
		http.Error(w, "lat and lon are required", http.StatusBadRequest)
		return
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		http.Error(w, "coordinates out of range", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	rep, err := a.weather.CurrentAndForecast(ctx, lat, lon)
	if err != nil {
		a.log.Warn("weather fetch failed", zap.Error(err))
		http.Error(w, "weather upstream unavailable", http.StatusBadGateway)
		return
	}
	_ = json.NewEncoder(w).Encode(rep)
}
