package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/reeltaste/reeltaste-engine/pkg/apperrors"
)

// ErrorResponse writes a JSON error response and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// ServiceError maps service-layer errors to HTTP responses. Unexpected
// errors are logged server-side and surfaced as a generic 500; the client
// never sees internal error text.
func ServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		ErrorResponse(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, apperrors.ErrEmailTaken):
		ErrorResponse(w, http.StatusConflict, "email already registered")
	case errors.Is(err, apperrors.ErrNotFound):
		ErrorResponse(w, http.StatusNotFound, "not found")
	case errors.Is(err, apperrors.ErrConflict):
		ErrorResponse(w, http.StatusConflict, "conflict")
	default:
		logger.Error("request failed", zap.Error(err))
		ErrorResponse(w, http.StatusInternalServerError, "internal server error")
	}
}
