package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageParams(t *testing.T) {
	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, 20},
		{"?page=3&limit=50", 3, 50},
		{"?page=0&limit=0", 1, 20},
		{"?page=-2&limit=1000", 1, 20},
		{"?page=abc&limit=xyz", 1, 20},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/contact"+tt.query, nil)
		page, limit := pageParams(req)
		assert.Equal(t, tt.wantPage, page, tt.query)
		assert.Equal(t, tt.wantLimit, limit, tt.query)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 20))
	assert.Equal(t, 1, totalPages(20, 20))
	assert.Equal(t, 3, totalPages(45, 20))
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("start_date", "2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDate("start_date", "2024-06-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = parseDate("start_date", "15/06/2024")
	assert.Error(t, err)
}
