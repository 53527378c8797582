// Package taxonomy holds the static reference data the rest of the service
// keys on: supported crops, soil types, severity levels, the per-crop disease
// catalog and the disease treatment table. All of it is fixed at process
// start; the Registry is read-only after NewRegistry returns.
package taxonomy

// Crop describes one supported plant species.
type Crop struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Severity is an ordinal band describing disease impact.
type Severity struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Severity ids, ordered from healthy to severe.
const (
	SeverityHealthy = "healthy"
	SeverityLow     = "low"
	SeverityMedium  = "medium"
	SeverityHigh    = "high"
	SeveritySevere  = "severe"
)

// HealthySentinel is the catalog entry that marks a disease-free result.
const HealthySentinel = "Healthy"

// Treatment pairs a chemical and an organic remedy for one disease.
type Treatment struct {
	Chemical string `json:"chemical"`
	Organic  string `json:"organic"`
}

// Registry provides lookups over the static reference data.
type Registry struct {
	crops      []Crop
	cropsByID  map[string]Crop
	soils      []string
	severities []Severity
	sevByID    map[string]Severity
	diseases   map[string][]string
	treatments map[string]Treatment
}

// NewRegistry builds the registry from the dataset-aligned reference tables.
func NewRegistry() *Registry {
	r := &Registry{
		crops: []Crop{
			{ID: "apple", Name: "Apple", Icon: "🍎"},
			{ID: "blueberry", Name: "Blueberry", Icon: "🫐"},
			{ID: "cherry", Name: "Cherry", Icon: "🍒"},
			{ID: "corn", Name: "Corn (Maize)", Icon: "🌽"},
			{ID: "grape", Name: "Grape", Icon: "🍇"},
			{ID: "orange", Name: "Orange", Icon: "🍊"},
			{ID: "peach", Name: "Peach", Icon: "🍑"},
			{ID: "pepper", Name: "Bell Pepper", Icon: "🫑"},
			{ID: "potato", Name: "Potato", Icon: "🥔"},
			{ID: "raspberry", Name: "Raspberry", Icon: "🫐"},
			{ID: "soybean", Name: "Soybean", Icon: "🫘"},
			{ID: "squash", Name: "Squash", Icon: "🎃"},
			{ID: "strawberry", Name: "Strawberry", Icon: "🍓"},
			{ID: "tomato", Name: "Tomato", Icon: "🍅"},
			{ID: "rice", Name: "Rice", Icon: "🌾"},
			{ID: "cassava", Name: "Cassava", Icon: "🥔"},
		},
		soils: []string{"Clay", "Sandy", "Loamy", "Silty", "Peaty", "Chalky", "Saline"},
		severities: []Severity{
			{ID: SeverityHealthy, Label: "Healthy", Color: "success"},
			{ID: SeverityLow, Label: "Low", Color: "warning"},
			{ID: SeverityMedium, Label: "Medium", Color: "warning"},
			{ID: SeverityHigh, Label: "High", Color: "destructive"},
			{ID: SeveritySevere, Label: "Severe", Color: "destructive"},
		},
		diseases: map[string][]string{
			"apple":      {"Apple Scab", "Black Rot", "Cedar Apple Rust", "Healthy"},
			"corn":       {"Cercospora Leaf Spot", "Common Rust", "Northern Leaf Blight", "Healthy"},
			"grape":      {"Black Rot", "Esca", "Leaf Blight", "Healthy"},
			"tomato":     {"Bacterial Spot", "Early Blight", "Late Blight", "Leaf Mold", "Septoria Leaf Spot", "Target Spot", "Yellow Leaf Curl Virus", "Mosaic Virus", "Healthy"},
			"potato":     {"Early Blight", "Late Blight", "Healthy"},
			"pepper":     {"Bacterial Spot", "Healthy"},
			"strawberry": {"Leaf Scorch", "Healthy"},
			"cherry":     {"Powdery Mildew", "Healthy"},
			"peach":      {"Bacterial Spot", "Healthy"},
			"rice":       {"Brown Spot", "Leaf Blast", "Healthy"},
			"cassava":    {"Bacterial Blight", "Brown Streak", "Green Mottle", "Mosaic Disease", "Healthy"},
		},
		treatments: map[string]Treatment{
			"Apple Scab": {
				Chemical: "Apply Captan or Myclobutanil fungicide",
				Organic:  "Neem oil spray, remove fallen leaves",
			},
			"Black Rot": {
				Chemical: "Mancozeb or Copper-based fungicide",
				Organic:  "Prune infected areas, improve air circulation",
			},
			"Early Blight": {
				Chemical: "Chlorothalonil or Azoxystrobin spray",
				Organic:  "Copper sulfate, crop rotation",
			},
			"Late Blight": {
				Chemical: "Metalaxyl or Ridomil fungicide",
				Organic:  "Remove infected plants, use resistant varieties",
			},
			"Bacterial Spot": {
				Chemical: "Copper hydroxide spray",
				Organic:  "Hot water seed treatment, avoid overhead irrigation",
			},
		},
	}

	r.cropsByID = make(map[string]Crop, len(r.crops))
	for _, c := range r.crops {
		r.cropsByID[c.ID] = c
	}
	r.sevByID = make(map[string]Severity, len(r.severities))
	for _, s := range r.severities {
		r.sevByID[s.ID] = s
	}
	return r
}

// Crops returns the supported crops in stable dataset order.
func (r *Registry) Crops() []Crop { return r.crops }

// SoilTypes returns the supported soil types in stable order.
func (r *Registry) SoilTypes() []string { return r.soils }

// SeverityLevels returns the five severity bands, ordered from healthy
// to severe.
func (r *Registry) SeverityLevels() []Severity { return r.severities }

// Find looks up a crop descriptor by id. Absence is a normal outcome
// (historical records may reference renamed or retired crop ids).
func (r *Registry) Find(cropID string) (Crop, bool) {
	c, ok := r.cropsByID[cropID]
	return c, ok
}

// FindSeverity looks up a severity band by id.
func (r *Registry) FindSeverity(id string) (Severity, bool) {
	s, ok := r.sevByID[id]
	return s, ok
}

// DiseasesFor returns the disease classes for a crop. Unknown crop ids get
// a two-entry fallback catalog rather than an error, so callers never have
// to special-case legacy ids.
func (r *Registry) DiseasesFor(cropID string) []string {
	if d, ok := r.diseases[cropID]; ok {
		return d
	}
	return []string{"Unknown Disease", HealthySentinel}
}

// GenericTreatment is returned for diseases with no entry in the
// treatment table.
var GenericTreatment = Treatment{
	Chemical: "Consult local agricultural extension for specific treatment",
	Organic:  "Improve plant spacing, ensure proper drainage",
}

// TreatmentFor returns the remedy pair for a disease, falling back to
// GenericTreatment when the disease has no dedicated entry. The treatment
// table is independent of the disease catalog on purpose: a cataloged
// disease without a treatment entry still resolves safely.
func (r *Registry) TreatmentFor(disease string) Treatment {
	if t, ok := r.treatments[disease]; ok {
		return t
	}
	return GenericTreatment
}
