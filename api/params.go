package api

import (
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/raushankrgupta/portfolio-backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxUploadSize caps multipart request bodies at 10 MB.
const maxUploadSize = 10 << 20

const dateLayout = "2006-01-02"

func urlID(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, models.Invalid("id", "must be a valid object id")
	}
	return id, nil
}

func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	return int(math.Ceil(float64(total) / float64(limit)))
}

// parseDate accepts "2006-01-02" and falls back to RFC3339.
func parseDate(field, s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, models.Invalid(field, "must be a date in YYYY-MM-DD form")
	}
	return t, nil
}

// optFormValue reports a multipart form field only when the client actually
// sent it, so updates can tell "absent" from "empty".
func optFormValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	if vals, ok := r.MultipartForm.Value[key]; ok && len(vals) > 0 {
		return &vals[0]
	}
	return nil
}

// formFile returns the first uploaded file under key, or nil when absent.
func formFile(r *http.Request, key string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	if files := r.MultipartForm.File[key]; len(files) > 0 {
		return files[0]
	}
	return nil
}
