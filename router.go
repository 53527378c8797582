package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	httpSwagger "github.com/swaggo/http-swagger"
)

// routes wires middlewares and endpoints. Adjust CORS for your frontend hosts.
func (a *App) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(a.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000", "https://*.run.app"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=60")
		w.Write(openapiYAML)
	})

	r.Mount("/swagger", httpSwagger.Handler(
		httpSwagger.URL("/api/openapi.yaml"),
	))

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", a.handleRegister)
		api.Post("/auth/login", a.handleLogin)

		api.Route("/meta", func(mr chi.Router) {
			mr.Get("/crops", a.handleListCrops)
			mr.Get("/soil-types", a.handleListSoilTypes)
			mr.Get("/severity-levels", a.handleListSeverityLevels)
			mr.Get("/crops/{id}/diseases", a.handleListDiseases)
		})

		api.Get("/weather", a.handleWeather)
		api.Get("/images/{id}", a.handleGetImage)

		// Anonymous use degrades to ephemeral, unsaved results.
		api.Group(func(or chi.Router) {
			or.Use(a.optionalAuthMiddleware)
			or.Post("/diagnoses", a.handleCreateDiagnosis)
			or.Post("/chat/messages", a.handleSendChatMessage)
		})

		api.Group(func(pr chi.Router) {
			pr.Use(a.authMiddleware)
			pr.Get("/me", a.handleMe)

			pr.Get("/diagnoses", a.handleListDiagnoses)
			pr.Get("/diagnoses/{id}", a.handleGetDiagnosis)

			pr.Get("/chat/messages", a.handleListChatMessages)

			pr.Post("/images", a.handleUploadImage)
		})
	})

	return r
}
