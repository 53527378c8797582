package present

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"krushidoctor/models"
	"krushidoctor/taxonomy"
)

func TestView(t *testing.T) {
	reg := taxonomy.NewRegistry()

	t.Run("known crop and severity", func(t *testing.T) {
		d := &models.Diagnosis{
			Crop:       "tomato",
			Disease:    "Healthy",
			Severity:   "healthy",
			Confidence: 0.9123,
		}
		v := View(reg, d)
		assert.Equal(t, "Tomato", v.CropName)
		assert.Equal(t, "🍅", v.CropIcon)
		assert.Equal(t, "Healthy", v.SeverityLabel)
		assert.Equal(t, "success", v.SeverityColor)
		assert.Equal(t, 91, v.ConfidencePct)
		assert.True(t, v.IsHealthy)
	})

	t.Run("unknown crop falls back to raw id", func(t *testing.T) {
		d := &models.Diagnosis{
			Crop:       "unknown-xyz",
			Disease:    "Late Blight",
			Severity:   "high",
			Confidence: 0.7,
		}
		v := View(reg, d)
		assert.Equal(t, "unknown-xyz", v.CropName)
		assert.Empty(t, v.CropIcon)
		assert.Equal(t, "High", v.SeverityLabel)
		assert.Equal(t, "destructive", v.SeverityColor)
		assert.Equal(t, 70, v.ConfidencePct)
		assert.False(t, v.IsHealthy)
	})

	t.Run("unknown severity falls back to raw string", func(t *testing.T) {
		d := &models.Diagnosis{Crop: "apple", Severity: "catastrophic", Confidence: 0.5}
		v := View(reg, d)
		assert.Equal(t, "catastrophic", v.SeverityLabel)
		assert.Empty(t, v.SeverityColor)
		assert.False(t, v.IsHealthy)
	})

	t.Run("confidence rounds half up", func(t *testing.T) {
		d := &models.Diagnosis{Crop: "apple", Severity: "low", Confidence: 0.895}
		assert.Equal(t, 90, View(reg, d).ConfidencePct)
	})

	t.Run("idempotent", func(t *testing.T) {
		d := &models.Diagnosis{Crop: "rice", Disease: "Brown Spot", Severity: "medium", Confidence: 0.8123}
		assert.Equal(t, View(reg, d), View(reg, d))
	})
}
