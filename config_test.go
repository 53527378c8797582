package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("OPENWEATHERMAP_API_KEY", "")
	t.Setenv("MOCK_DELAYS", "")

	cfg := mustConfig()
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "krushidoctor", cfg.MongoDB)
	assert.Equal(t, "change_me", cfg.JWTSecret)
	assert.Empty(t, cfg.OpenWeatherKey)
	assert.True(t, cfg.MockDelays)
}

func TestConfigOverrides(t *testing.T) {
	t.Setenv("MONGO_DB", "krushi_test")
	t.Setenv("OPENWEATHERMAP_API_KEY", "owm-key")
	t.Setenv("MOCK_DELAYS", "off")

	cfg := mustConfig()
	assert.Equal(t, "krushi_test", cfg.MongoDB)
	assert.Equal(t, "owm-key", cfg.OpenWeatherKey)
	assert.False(t, cfg.MockDelays)
}
