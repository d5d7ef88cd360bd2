package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/rs/zerolog/log"
)

// Envelope is the response shape shared by every endpoint:
// {"message": ..., "data": ..., "pagination": ..., "error": ...}
type Envelope struct {
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      string      `json:"error,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func writeJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respond(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, Envelope{Message: message, Data: data})
}

func respondPaginated(w http.ResponseWriter, message string, data interface{}, p Pagination) {
	writeJSON(w, http.StatusOK, Envelope{Message: message, Data: data, Pagination: &p})
}

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is logged server-side and surfaced as an opaque 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *models.ValidationError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, Envelope{Error: verr.Error()})
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusNotFound, Envelope{Error: "resource not found"})
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrNotVerified):
		writeJSON(w, http.StatusUnauthorized, Envelope{Error: err.Error()})
	case errors.Is(err, models.ErrCodeInvalid),
		errors.Is(err, models.ErrDuplicateAccount),
		errors.Is(err, models.ErrConflict):
		writeJSON(w, http.StatusBadRequest, Envelope{Error: err.Error()})
	default:
		log.Error().Err(err).Str("request_id", requestIDFrom(r.Context())).
			Str("path", r.URL.Path).Msg("internal error")
		writeJSON(w, http.StatusInternalServerError, Envelope{Error: "internal server error"})
	}
}
