package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/utils"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth(t *testing.T) {
	tokens, err := utils.NewTokenManager("test-secret")
	require.NoError(t, err)

	adminToken, err := tokens.Generate("66b1f0c2a1b2c3d4e5f60718", models.RoleAdmin, time.Hour)
	require.NoError(t, err)
	userToken, err := tokens.Generate("66b1f0c2a1b2c3d4e5f60719", models.RoleUser, time.Hour)
	require.NoError(t, err)
	expiredToken, err := tokens.Generate("66b1f0c2a1b2c3d4e5f60718", models.RoleAdmin, -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name        string
		requireRole models.Role
		authHeader  string
		wantStatus  int
	}{
		{"admin token on admin route", models.RoleAdmin, "Bearer " + adminToken, http.StatusOK},
		{"user token on admin route", models.RoleAdmin, "Bearer " + userToken, http.StatusUnauthorized},
		{"any role admits user", "", "Bearer " + userToken, http.StatusOK},
		{"any role admits admin", "", "Bearer " + adminToken, http.StatusOK},
		{"missing header", models.RoleAdmin, "", http.StatusUnauthorized},
		{"malformed header", models.RoleAdmin, "Token abc", http.StatusUnauthorized},
		{"garbage token", models.RoleAdmin, "Bearer not-a-jwt", http.StatusUnauthorized},
		{"expired token", models.RoleAdmin, "Bearer " + expiredToken, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/about", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			Auth(tokens, tt.requireRole)(okHandler()).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuth_StashesClaims(t *testing.T) {
	tokens, err := utils.NewTokenManager("test-secret")
	require.NoError(t, err)
	token, err := tokens.Generate("66b1f0c2a1b2c3d4e5f60718", models.RoleUser, time.Hour)
	require.NoError(t, err)

	var got *utils.SessionClaims
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = claimsFrom(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	Auth(tokens, "")(inner).ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, "66b1f0c2a1b2c3d4e5f60718", got.Subject)
	assert.Equal(t, models.RoleUser, got.Role)
}

func TestRequestID(t *testing.T) {
	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		var inCtx string
		RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inCtx = requestIDFrom(r.Context())
		})).ServeHTTP(rec, req)

		assert.NotEmpty(t, inCtx)
		assert.Equal(t, inCtx, rec.Header().Get(requestIDHeader))
	})

	t.Run("propagated when supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestIDHeader, "fixed-id")
		rec := httptest.NewRecorder()

		RequestID(okHandler()).ServeHTTP(rec, req)
		assert.Equal(t, "fixed-id", rec.Header().Get(requestIDHeader))
	})
}

func TestCORS_Preflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/about", nil)
	rec := httptest.NewRecorder()

	called := false
	CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
