package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"krushidoctor/models"
	"krushidoctor/present"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// handleCreateDiagnosis validates the submission, runs the analyzer and
// persists the record for signed-in users. Anonymous requests get an
// ephemeral, unsaved result. A persistence failure does not lose the
// analysis: the result is still returned, flagged unsaved.
func (a *App) handleCreateDiagnosis(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)

	var req createDiagnosisReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	// Input validation happens before the analyzer runs; the analyzer
	// itself accepts anything.
	if strings.TrimSpace(req.Crop) == "" {
		http.Error(w, "crop is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		http.Error(w, "image is required", http.StatusBadRequest)
		return
	}

	// Budget covers the simulated inference delay plus the insert.
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	res, err := a.analyzer.Analyze(ctx, req.Crop, req.ImageURL)
	if err != nil {
		http.Error(w, "analysis canceled", http.StatusServiceUnavailable)
		return
	}

	d := models.Diagnosis{
		UserID:            uid,
		Crop:              req.Crop,
		Variety:           req.Variety,
		Disease:           res.Disease,
		Severity:          res.Severity,
		Confidence:        res.Confidence,
		Explanation:       res.Explanation,
		TreatmentChemical: res.Treatment.Chemical,
		TreatmentOrganic:  res.Treatment.Organic,
		PreventionTips:    res.PreventionTips,
		ImageURL:          req.ImageURL,
		SoilType:          req.SoilType,
		SoilPH:            req.SoilPH,
		PreviousCrop:      req.PreviousCrop,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		CreatedAt:         time.Now(),
	}
	if req.PlantingDate != "" {
		if pd, err := time.Parse("2006-01-02", req.PlantingDate); err == nil {
			d.PlantingDate = &pd
		}
	}

	resp := diagnosisResp{Diagnosis: d, View: present.View(a.registry, &d)}

	if uid == primitive.NilObjectID {
		// Not signed in: ephemeral result only.
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	ins, err := a.diagnoses.InsertOne(ctx, &d)
	if err != nil {
		a.log.Warn("diagnosis insert failed", zap.Error(err))
		resp.SaveError = "could not save diagnosis"
		_ = json.NewEncoder(w).Encode(resp)
		return
	}
	d.ID = ins.InsertedID.(primitive.ObjectID)
	resp.Diagnosis = d
	resp.Saved = true
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(resp)
}

// handleListDiagnoses returns the current user's history, newest first.
func (a *App) handleListDiagnoses(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	limit := int64(50)
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	cur, err := a.diagnoses.Find(ctx, bson.M{"userId": uid},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit))
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer cur.Close(ctx)

	out := []models.Diagnosis{}
	if err := cur.All(ctx, &out); err != nil {
		http.Error(w, "decode error", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleGetDiagnosis returns one record with its display view.
func (a *App) handleGetDiagnosis(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)
	idStr := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var d models.Diagnosis
	if err := a.diagnoses.FindOne(ctx, bson.M{"_id": oid, "userId": uid}).Decode(&d); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(diagnosisResp{
		Diagnosis: d,
		View:      present.View(a.registry, &d),
		Saved:     true,
	})
}
