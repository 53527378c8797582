package main

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	Port           string
	OpenWeatherKey string

	// MockDelays toggles the artificial analysis/chat latency. On by
	// default; tests and local tooling turn it off.
	MockDelays bool
}

func mustConfig() Config {
	// Best-effort .env load for local development.
	_ = godotenv.Load()

	cfg := Config{
		MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGO_DB", "krushidoctor"),
		JWTSecret:      getenv("JWT_SECRET", "change_me"),
		Port:           getenv("PORT", "8080"),
		OpenWeatherKey: getenv("OPENWEATHERMAP_API_KEY", ""),
		MockDelays:     getenv("MOCK_DELAYS", "on") != "off",
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
