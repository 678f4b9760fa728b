package assistant

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"gemtrade/dashboard"
	"gemtrade/logger"
	"gemtrade/respond"
)

// ChatRequest is the body of /api/assistant/chat.
type ChatRequest struct {
	Message string `json:"message"`
	History []Turn `json:"history"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatHandler answers a question against the current dashboard figures.
func ChatHandler(db *sqlx.DB, client *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !respond.Method(w, r, http.MethodPost) {
			return
		}
		if !client.Enabled() {
			respond.Error(w, "assistant is not configured: set GEMINI_API_KEY", http.StatusServiceUnavailable)
			return
		}

		var req ChatRequest
		if !respond.Decode(w, r, &req) {
			return
		}
		req.Message = strings.TrimSpace(req.Message)
		if req.Message == "" {
			respond.Error(w, "message is required", http.StatusBadRequest)
			return
		}

		d, err := dashboard.Build(db, time.Now())
		if err != nil {
			respond.StoreError(w, "assistant context", err)
			return
		}
		businessContext := BuildContext(d.Snapshot(), d.Overview, d.Insights)

		reply, err := client.Chat(r.Context(), businessContext, req.History, req.Message)
		if err != nil {
			if errors.Is(err, ErrNotConfigured) {
				respond.Error(w, err.Error(), http.StatusServiceUnavailable)
				return
			}
			logger.Error("assistant chat failed", "error", err)
			respond.Error(w, "assistant is unavailable right now", http.StatusBadGateway)
			return
		}
		respond.JSON(w, http.StatusOK, ChatResponse{Reply: reply})
	}
}
