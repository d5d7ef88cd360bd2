package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raushankrgupta/portfolio-backend/models"
)

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"validation", models.Invalid("email", "is required"), http.StatusBadRequest, "email: is required"},
		{"not found", models.ErrNotFound, http.StatusNotFound, "resource not found"},
		{"bad credentials", models.ErrInvalidCredentials, http.StatusUnauthorized, models.ErrInvalidCredentials.Error()},
		{"not verified", models.ErrNotVerified, http.StatusUnauthorized, models.ErrNotVerified.Error()},
		{"bad code", models.ErrCodeInvalid, http.StatusBadRequest, models.ErrCodeInvalid.Error()},
		{"duplicate account", models.ErrDuplicateAccount, http.StatusBadRequest, models.ErrDuplicateAccount.Error()},
		{"conflict", models.ErrConflict, http.StatusBadRequest, models.ErrConflict.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			respondError(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var env Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.Equal(t, tt.wantBody, env.Error)
		})
	}
}

// Unexpected errors come back opaque; internals never leak to the client.
func TestRespondError_InternalIsOpaque(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	respondError(rec, req, errors.New("mongo: connection refused at 10.0.0.3:27017"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "internal server error", env.Error)
	assert.NotContains(t, rec.Body.String(), "mongo")
}

func TestRespondPaginated(t *testing.T) {
	rec := httptest.NewRecorder()
	respondPaginated(rec, "messages fetched", []string{"a", "b"}, Pagination{
		Page: 2, Limit: 20, Total: 45, TotalPages: totalPages(45, 20),
	})

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.Page)
	assert.Equal(t, int64(45), env.Pagination.Total)
	assert.Equal(t, 3, env.Pagination.TotalPages)
}
