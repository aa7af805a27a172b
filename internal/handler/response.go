package handler

// RESPONSE HELPERS:
// Every endpoint answers JSON with the same charset, and every error has
// the same shape:
//
//	{"error": "Content is required"}
//
// so the frontend can always read response.error on a non-2xx status.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sakif/confession-wall/internal/apperror"
)

const contentTypeJSON = "application/json; charset=UTF-8"

// Client-facing messages. Clients match on these strings; do not reword them.
const (
	msgInternal         = "An internal error occurred"
	msgNotFound         = "Not found"
	msgMethodNotAllowed = "Method not allowed"
	msgUnavailable      = "Data store unavailable"
	msgInvalidJSON      = "Invalid JSON body"
	msgMissingID        = "Missing confession ID"
	msgInvalidID        = "Invalid ID format"
	msgAdviceCreated    = "Advice created successfully"
	msgConfessionCreate = "Confession created successfully"
	msgLikeAdded        = "Like added successfully"
)

// ErrorResponse is the error body returned by all API endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of successful writes that return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// writeJSON sends a JSON response with the given status code.
// Headers must be set before WriteHeader; anything set afterwards is ignored.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent — all we can do is log.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeError maps a domain error to the appropriate HTTP status code and sends it.
//
// The service layer never knows about status codes; this is the single
// place where apperror kinds become 400/404/409/500. Storage errors and
// unknown errors both become a generic 500 — the raw message may contain
// SQL or file paths and is only ever logged.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch {
		case errors.Is(err, apperror.ErrValidation):
			writeErrorMessage(w, http.StatusBadRequest, appErr.Message)
			return
		case errors.Is(err, apperror.ErrNotFound):
			writeErrorMessage(w, http.StatusNotFound, appErr.Message)
			return
		case errors.Is(err, apperror.ErrConflict):
			writeErrorMessage(w, http.StatusConflict, appErr.Message)
			return
		}
	}

	writeErrorMessage(w, http.StatusInternalServerError, msgInternal)
}

// NotFound answers requests for routes that do not exist.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeErrorMessage(w, http.StatusNotFound, msgNotFound)
}

// MethodNotAllowed answers requests whose path exists but not for that method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeErrorMessage(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}

// parseID parses a post id the way clients have always sent it: a signed
// 32-bit decimal integer. Anything else is reported as msgInvalidID.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, apperror.ValidationFailed("id", msgInvalidID)
	}
	return id, nil
}
