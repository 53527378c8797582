package main

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"

	"krushidoctor/chat"
	"krushidoctor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// handleSendChatMessage stores the user's message (when signed in), picks
// the scripted reply and stores that too. The typing delay is presentation
// only; reply selection happens before it so cancellation cannot change
// the answer.
func (a *App) handleSendChatMessage(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)

	var req chatSendReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	var diagID *primitive.ObjectID
	if req.DiagnosisID != "" {
		oid, err := primitive.ObjectIDFromHex(req.DiagnosisID)
		if err != nil {
			http.Error(w, "bad diagnosis id", http.StatusBadRequest)
			return
		}
		diagID = &oid
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	signedIn := uid != primitive.NilObjectID
	if signedIn {
		userMsg := models.ChatMessage{
			UserID:      uid,
			DiagnosisID: diagID,
			Role:        models.RoleUser,
			Content:     req.Message,
			CreatedAt:   time.Now(),
		}
		if _, err := a.chats.InsertOne(ctx, &userMsg); err != nil {
			a.log.Warn("chat insert failed", zap.Error(err))
		}
	}

	reply := a.responder.Reply(req.Message)

	if err := a.typingDelay(ctx); err != nil {
		http.Error(w, "canceled", http.StatusServiceUnavailable)
		return
	}

	assistantMsg := models.ChatMessage{
		UserID:      uid,
		DiagnosisID: diagID,
		Role:        models.RoleAssistant,
		Content:     reply,
		CreatedAt:   time.Now(),
	}
	saved := false
	if signedIn {
		if ins, err := a.chats.InsertOne(ctx, &assistantMsg); err != nil {
			a.log.Warn("chat insert failed", zap.Error(err))
		} else {
			assistantMsg.ID = ins.InsertedID.(primitive.ObjectID)
			saved = true
		}
	}

	_ = json.NewEncoder(w).Encode(chatSendResp{Reply: assistantMsg, Saved: saved})
}

// handleListChatMessages replays the user's chat, oldest first, optionally
// scoped to one diagnosis. Empty history ships the welcome greeting.
func (a *App) handleListChatMessages(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	filter := bson.M{"userId": uid}
	if s := r.URL.Query().Get("diagnosis"); s != "" {
		oid, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			http.Error(w, "bad diagnosis id", http.StatusBadRequest)
			return
		}
		filter["diagnosisId"] = oid
	}

	limit := int64(100)
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	cur, err := a.chats.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}).SetLimit(limit))
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer cur.Close(ctx)

	out := []models.ChatMessage{}
	if err := cur.All(ctx, &out); err != nil {
		http.Error(w, "decode error", http.StatusInternalServerError)
		return
	}

	resp := chatHistoryResp{Messages: out}
	if len(out) == 0 {
		resp.Welcome = chat.WelcomeMessage
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// typingDelay simulates the assistant composing a reply.
func (a *App) typingDelay(ctx context.Context) error {
	d := a.chatDelayFloor
	if a.chatDelayJitter > 0 {
		d += time.Duration(rand.Int64N(int64(a.chatDelayJitter)))
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
