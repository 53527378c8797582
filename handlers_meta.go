package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleListCrops returns the supported crops in stable order.
func (a *App) handleListCrops(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_ = json.NewEncoder(w).Encode(a.registry.Crops())
}

func (a *App) handleListSoilTypes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_ = json.NewEncoder(w).Encode(a.registry.SoilTypes())
}

func (a *App) handleListSeverityLevels(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_ = json.NewEncoder(w).Encode(a.registry.SeverityLevels())
}

// handleListDiseases returns the disease classes for a crop. Unknown crop
// ids get the registry's fallback catalog, never a 404.
func (a *App) handleListDiseases(w http.ResponseWriter, r *http.Request) {
	cropID := chi.URLParam(r, "id")
	_ = json.NewEncoder(w).Encode(a.registry.DiseasesFor(cropID))
}
