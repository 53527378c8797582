package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Diagnosis is one persisted analysis outcome plus the contextual metadata
// the farmer supplied with the photo. Records are immutable once written.
type Diagnosis struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId"        json:"userId"`

	Crop    string `bson:"crop"              json:"crop"`
	Variety string `bson:"variety,omitempty" json:"variety,omitempty"`

	Disease    string  `bson:"disease"    json:"disease"`
	Severity   string  `bson:"severity"   json:"severity"` // healthy | low | medium | high | severe
	Confidence float64 `bson:"confidence" json:"confidence"`

	Explanation       string   `bson:"explanation,omitempty"       json:"explanation,omitempty"`
	TreatmentChemical string   `bson:"treatmentChemical,omitempty" json:"treatmentChemical,omitempty"`
	TreatmentOrganic  string   `bson:"treatmentOrganic,omitempty"  json:"treatmentOrganic,omitempty"`
	PreventionTips    []string `bson:"preventionTips,omitempty"    json:"preventionTips,omitempty"`

	ImageURL string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`

	// Optional context from the detection form.
	SoilType     string     `bson:"soilType,omitempty"     json:"soilType,omitempty"`
	SoilPH       *float64   `bson:"soilPh,omitempty"       json:"soilPh,omitempty"`
	PlantingDate *time.Time `bson:"plantingDate,omitempty" json:"plantingDate,omitempty"`
	PreviousCrop string     `bson:"previousCrop,omitempty" json:"previousCrop,omitempty"`

	// Location is omitted entirely when the client could not provide one.
	Latitude  *float64 `bson:"latitude,omitempty"  json:"latitude,omitempty"`
	Longitude *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
