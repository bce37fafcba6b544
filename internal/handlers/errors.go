package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/services"
)

// ErrorResponse is the machine-readable error body shared by all endpoints.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`

	// Offending field for validation errors
	Field string `json:"field,omitempty"`
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}

// writeServiceError maps service-level errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	if ve, ok := services.AsValidationError(err); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: ve.Reason, Field: ve.Field})
		return
	}

	switch {
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrInvalidImage):
		writeError(w, http.StatusBadRequest, "Uploaded payload is not a decodable image")
	case errors.Is(err, services.ErrUpstreamUnavailable):
		writeError(w, http.StatusBadGateway, "Upstream service unavailable")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
