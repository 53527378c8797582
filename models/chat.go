package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one stored chat turn, optionally tied to a diagnosis.
type ChatMessage struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"         json:"id"`
	UserID      primitive.ObjectID  `bson:"userId"                json:"userId"`
	DiagnosisID *primitive.ObjectID `bson:"diagnosisId,omitempty" json:"diagnosisId,omitempty"`
	Role        string              `bson:"role"                  json:"role"` // user | assistant
	Content     string              `bson:"content"               json:"content"`
	CreatedAt   time.Time           `bson:"createdAt"             json:"createdAt"`
}
