// Package present maps stored diagnosis records to display views. The
// mapping is pure and total: registry misses degrade to the raw stored
// strings so a render never fails on legacy data.
package present

import (
	"math"

	"krushidoctor/models"
	"krushidoctor/taxonomy"
)

// DiagnosisView carries the display fields for one diagnosis record.
type DiagnosisView struct {
	CropName      string `json:"cropName"`
	CropIcon      string `json:"cropIcon,omitempty"`
	Disease       string `json:"disease"`
	SeverityLabel string `json:"severityLabel"`
	SeverityColor string `json:"severityColor"`
	ConfidencePct int    `json:"confidencePct"`
	IsHealthy     bool   `json:"isHealthy"`
}

// View resolves display fields for a record via the registry. Unknown crop
// or severity ids fall back to the stored strings.
func View(reg *taxonomy.Registry, d *models.Diagnosis) DiagnosisView {
	v := DiagnosisView{
		CropName:      d.Crop,
		Disease:       d.Disease,
		SeverityLabel: d.Severity,
		ConfidencePct: int(math.Round(d.Confidence * 100)),
		IsHealthy:     d.Severity == taxonomy.SeverityHealthy,
	}
	if c, ok := reg.Find(d.Crop); ok {
		v.CropName = c.Name
		v.CropIcon = c.Icon
	}
	if s, ok := reg.FindSeverity(d.Severity); ok {
		v.SeverityLabel = s.Label
		v.SeverityColor = s.Color
	}
	return v
}
