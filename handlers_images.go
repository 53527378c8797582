package main

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const maxImageBytes = 10 << 20 // 10 MiB

// handleUploadImage stores a crop photo in GridFS and returns the public
// URL the diagnosis submission references.
func (a *App) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		http.Error(w, "image too large or bad multipart body", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	name := uid.Hex() + "/" + uuid.NewString() + filepath.Ext(header.Filename)
	meta := bson.M{
		"ownerId":     uid,
		"contentType": header.Header.Get("Content-Type"),
		"uploadedAt":  time.Now(),
	}

	_ = a.images.SetWriteDeadline(time.Now().Add(20 * time.Second))
	fileID, err := a.images.UploadFromStream(name, file, options.GridFSUpload().SetMetadata(meta))
	if err != nil {
		a.log.Warn("image upload failed", zap.Error(err))
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(uploadResp{
		ID:  fileID.Hex(),
		URL: "/api/images/" + fileID.Hex(),
	})
}

// handleGetImage streams a stored photo back out of GridFS.
func (a *App) handleGetImage(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	_ = a.images.SetReadDeadline(time.Now().Add(20 * time.Second))
	stream, err := a.images.OpenDownloadStream(oid)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	defer stream.Close()

	ct := "application/octet-stream"
	var meta struct {
		ContentType string `bson:"contentType"`
	}
	if raw := stream.GetFile().Metadata; raw != nil {
		if err := bson.Unmarshal(raw, &meta); err == nil && meta.ContentType != "" {
			ct = meta.ContentType
		}
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Cache-Control", "public, max-age=86400")

	if _, err := io.Copy(w, stream); err != nil {
		a.log.Warn("image stream failed", zap.Error(err))
	}
}
