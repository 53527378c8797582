package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryReferenceData(t *testing.T) {
	reg := NewRegistry()

	t.Run("crop list is fixed and ordered", func(t *testing.T) {
		crops := reg.Crops()
		require.Len(t, crops, 16)
		assert.Equal(t, "apple", crops[0].ID)
		assert.Equal(t, "cassava", crops[15].ID)
		for _, c := range crops {
			assert.NotEmpty(t, c.Name, "crop %s has no display name", c.ID)
			assert.NotEmpty(t, c.Icon, "crop %s has no icon", c.ID)
		}
	})

	t.Run("soil types", func(t *testing.T) {
		assert.Equal(t, []string{"Clay", "Sandy", "Loamy", "Silty", "Peaty", "Chalky", "Saline"}, reg.SoilTypes())
	})

	t.Run("severity levels ordered healthy to severe", func(t *testing.T) {
		levels := reg.SeverityLevels()
		require.Len(t, levels, 5)
		ids := make([]string, len(levels))
		for i, s := range levels {
			ids[i] = s.ID
		}
		assert.Equal(t, []string{"healthy", "low", "medium", "high", "severe"}, ids)
		assert.Equal(t, "success", levels[0].Color)
	})
}

func TestDiseasesFor(t *testing.T) {
	reg := NewRegistry()

	t.Run("known crops end with the healthy sentinel", func(t *testing.T) {
		for _, c := range reg.Crops() {
			d := reg.DiseasesFor(c.ID)
			require.NotEmpty(t, d, "crop %s", c.ID)
			assert.Equal(t, HealthySentinel, d[len(d)-1], "crop %s", c.ID)
		}
	})

	t.Run("unknown crop falls back to default catalog", func(t *testing.T) {
		assert.Equal(t, []string{"Unknown Disease", "Healthy"}, reg.DiseasesFor("dragonfruit"))
		assert.Equal(t, []string{"Unknown Disease", "Healthy"}, reg.DiseasesFor(""))
	})

	t.Run("tomato has the full class list", func(t *testing.T) {
		assert.Len(t, reg.DiseasesFor("tomato"), 9)
	})
}

func TestFind(t *testing.T) {
	reg := NewRegistry()

	c, ok := reg.Find("tomato")
	require.True(t, ok)
	assert.Equal(t, "Tomato", c.Name)

	_, ok = reg.Find("unknown-xyz")
	assert.False(t, ok)

	s, ok := reg.FindSeverity("severe")
	require.True(t, ok)
	assert.Equal(t, "destructive", s.Color)

	_, ok = reg.FindSeverity("critical")
	assert.False(t, ok)
}

func TestTreatmentFor(t *testing.T) {
	reg := NewRegistry()

	t.Run("known disease", func(t *testing.T) {
		tr := reg.TreatmentFor("Late Blight")
		assert.Equal(t, "Metalaxyl or Ridomil fungicide", tr.Chemical)
		assert.Equal(t, "Remove infected plants, use resistant varieties", tr.Organic)
	})

	t.Run("cataloged disease without a treatment entry falls back", func(t *testing.T) {
		assert.Equal(t, GenericTreatment, reg.TreatmentFor("Powdery Mildew"))
	})

	t.Run("unknown disease falls back", func(t *testing.T) {
		assert.Equal(t, GenericTreatment, reg.TreatmentFor("Stem Wobble"))
	})
}
