package main

import (
	"krushidoctor/models"
	"krushidoctor/present"
)

// Request/response DTOs. Keep them minimal and explicit.

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResp struct {
	Token string `json:"token"`
}

type createDiagnosisReq struct {
	Crop     string `json:"crop"`
	Variety  string `json:"variety,omitempty"`
	ImageURL string `json:"imageUrl"`

	SoilType     string   `json:"soilType,omitempty"`
	SoilPH       *float64 `json:"soilPh,omitempty"`
	PlantingDate string   `json:"plantingDate,omitempty"` // YYYY-MM-DD
	PreviousCrop string   `json:"previousCrop,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// diagnosisResp returns the record alongside its display view. Saved is
// false for anonymous requests and when persistence failed; the analysis
// itself is never lost.
type diagnosisResp struct {
	Diagnosis models.Diagnosis      `json:"diagnosis"`
	View      present.DiagnosisView `json:"view"`
	Saved     bool                  `json:"saved"`
	SaveError string                `json:"saveError,omitempty"`
}

type chatSendReq struct {
	Message     string `json:"message"`
	DiagnosisID string `json:"diagnosisId,omitempty"`
}

type chatSendResp struct {
	Reply models.ChatMessage `json:"reply"`
	Saved bool               `json:"saved"`
}

type chatHistoryResp struct {
	Messages []models.ChatMessage `json:"messages"`
	Welcome  string               `json:"welcome,omitempty"`
}

type uploadResp struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
