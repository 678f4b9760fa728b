// Package respond holds the JSON helpers shared by the HTTP handlers.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gemtrade/database"
	"gemtrade/logger"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", "error", err)
	}
}

// Error writes {"message": message}.
func Error(w http.ResponseWriter, message string, status int) {
	JSON(w, status, map[string]string{"message": message})
}

// Message writes a success {"message": message}.
func Message(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, map[string]string{"message": message})
}

// StoreError maps a store failure to 404 or 500 and logs the latter.
func StoreError(w http.ResponseWriter, what string, err error) {
	if errors.Is(err, database.ErrNotFound) {
		Error(w, what+" not found", http.StatusNotFound)
		return
	}
	logger.Error("store operation failed", "resource", what, "error", err)
	Error(w, "failed to process "+what, http.StatusInternalServerError)
}

// Decode reads a JSON body into v and reports a 400 on failure.
func Decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// PathID returns the path segment after prefix, or writes a 400.
func PathID(w http.ResponseWriter, r *http.Request, prefix string) (string, bool) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/")
	if id == "" {
		Error(w, "id is required", http.StatusBadRequest)
		return "", false
	}
	return id, true
}

// Method rejects requests whose method is not one of allowed.
func Method(w http.ResponseWriter, r *http.Request, allowed ...string) bool {
	for _, m := range allowed {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}
