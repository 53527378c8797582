// Package diagnosis produces analysis results for crop photos.
//
// The current implementation is a mock that draws a plausible result from
// the disease catalog; it stands in for a real inference backend. Callers
// depend on the Analyzer interface so the mock can be swapped out without
// touching the HTTP layer.
package diagnosis

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"krushidoctor/taxonomy"
)

// Treatment pairs a chemical and an organic remedy.
type Treatment struct {
	Chemical string `json:"chemical"`
	Organic  string `json:"organic"`
}

// Result is one analysis outcome. It is ephemeral: the handler persists a
// derived record and the Result itself is not retained.
type Result struct {
	Disease        string    `json:"disease"`
	Confidence     float64   `json:"confidence"`
	Severity       string    `json:"severity"`
	Explanation    string    `json:"explanation"`
	Treatment      Treatment `json:"treatment"`
	PreventionTips []string  `json:"preventionTips"`
}

// Analyzer classifies a crop photo. Image content is opaque to the caller;
// the mock implementation never inspects it.
type Analyzer interface {
	Analyze(ctx context.Context, cropID, imageRef string) (Result, error)
}

// MockAnalyzer fakes inference with randomized draws from the taxonomy
// catalog. It holds no mutable state, so a single instance is safe for
// concurrent use.
type MockAnalyzer struct {
	reg         *taxonomy.Registry
	delayFloor  time.Duration
	delayJitter time.Duration
}

// Option configures a MockAnalyzer.
type Option func(*MockAnalyzer)

// WithDelay overrides the simulated inference latency. WithDelay(0, 0)
// disables it, which tests rely on.
func WithDelay(floor, jitter time.Duration) Option {
	return func(a *MockAnalyzer) {
		a.delayFloor = floor
		a.delayJitter = jitter
	}
}

// NewMockAnalyzer builds a mock analyzer over the given registry. By
// default each call sleeps 1500ms plus up to 1000ms of jitter to emulate
// inference cost.
func NewMockAnalyzer(reg *taxonomy.Registry, opts ...Option) *MockAnalyzer {
	a := &MockAnalyzer{
		reg:         reg,
		delayFloor:  1500 * time.Millisecond,
		delayJitter: 1000 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var preventionTips = []string{
	"Ensure proper plant spacing for air circulation",
	"Water at the base of plants, not on leaves",
	"Remove and destroy infected plant material",
	"Rotate crops each season",
	"Use disease-resistant varieties when available",
}

// Analyze picks a disease for the crop at random and fills in confidence,
// severity, treatment and explanation. Unknown crop ids are handled by the
// registry's fallback catalog; Analyze never fails except on context
// cancellation during the simulated delay.
func (a *MockAnalyzer) Analyze(ctx context.Context, cropID, imageRef string) (Result, error) {
	if err := a.sleep(ctx); err != nil {
		return Result{}, err
	}

	diseases := a.reg.DiseasesFor(cropID)
	disease := diseases[rand.IntN(len(diseases))]
	healthy := disease == taxonomy.HealthySentinel

	var confidence float64
	if healthy {
		confidence = 0.85 + rand.Float64()*0.14
	} else {
		confidence = 0.65 + rand.Float64()*0.30
	}
	confidence = math.Round(confidence*10000) / 10000

	severity := taxonomy.SeverityHealthy
	if !healthy {
		nonHealthy := []string{
			taxonomy.SeverityLow,
			taxonomy.SeverityMedium,
			taxonomy.SeverityHigh,
			taxonomy.SeveritySevere,
		}
		severity = nonHealthy[rand.IntN(len(nonHealthy))]
	}

	tr := a.reg.TreatmentFor(disease)

	explanation := fmt.Sprintf("The %s plant appears healthy with no visible signs of disease. Continue regular monitoring and maintenance.", cropID)
	if !healthy {
		explanation = fmt.Sprintf("Detected %s on your %s plant. This condition is typically caused by fungal infection due to high humidity and poor air circulation. Early intervention is recommended.", disease, cropID)
	}

	return Result{
		Disease:        disease,
		Confidence:     confidence,
		Severity:       severity,
		Explanation:    explanation,
		Treatment:      Treatment{Chemical: tr.Chemical, Organic: tr.Organic},
		PreventionTips: preventionTips,
	}, nil
}

// sleep waits out the simulated inference latency, honoring cancellation.
func (a *MockAnalyzer) sleep(ctx context.Context) error {
	d := a.delayFloor
	if a.delayJitter > 0 {
		d += time.Duration(rand.Int64N(int64(a.delayJitter)))
	}
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
