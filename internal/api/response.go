package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("response encoding failed", "error", err)
	}
}

// respondError translates the service error taxonomy onto HTTP status
// codes. Anything unrecognized is a 500 with a generic body; the real
// error goes to the log, not the client.
func respondError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Message, Field: ve.Field})
	case errors.Is(err, domain.ErrUnauthenticated):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
	case errors.Is(err, domain.ErrForbidden):
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "permission denied"})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "resource not found"})
	default:
		logger.Error("request failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// decodeJSON reads a request body into dst, rejecting malformed or
// unknown-field payloads as validation errors.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid request body")
	}
	return nil
}
