package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	// Handle nil payload
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

// RespondError writes a JSON error body. Every non-2xx response carries a
// stable "message" field that clients and tests assert against.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, map[string]string{"message": message})
}

// ParseID extracts the numeric id from the request path. An id that is not a
// positive integer identifies no resource, so it is answered with 404 and the
// given message without ever reaching storage. The service layer applies the
// same rule to ids it receives directly.
func ParseID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, notFound string) (int64, bool) {
	pathValueID := r.PathValue("id")
	id, err := strconv.ParseInt(pathValueID, 10, 64)
	if err != nil || id <= 0 {
		RespondError(w, logger, http.StatusNotFound, notFound)
		return 0, false
	}
	return id, true
}
