package api

import (
	"net/http"

	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/services"
	"github.com/raushankrgupta/portfolio-backend/utils"
)

type AboutHandler struct {
	svc   *services.AboutService
	files *utils.FileStore
}

func NewAboutHandler(svc *services.AboutService, files *utils.FileStore) *AboutHandler {
	return &AboutHandler{svc: svc, files: files}
}

func (h *AboutHandler) Get(w http.ResponseWriter, r *http.Request) {
	about, err := h.svc.Get(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "OK", about)
}

// Update accepts multipart form data; "photo" and "cv" file parts replace
// the stored assets.
func (h *AboutHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, r, models.Invalid("body", "must be multipart form data"))
		return
	}

	upd := models.AboutUpdate{
		Name:     optFormValue(r, "name"),
		Headline: optFormValue(r, "headline"),
		Bio:      optFormValue(r, "bio"),
		Email:    optFormValue(r, "email"),
		Phone:    optFormValue(r, "phone"),
		Address:  optFormValue(r, "address"),
	}

	if fh := formFile(r, "photo"); fh != nil {
		path, err := h.files.Save("about", fh)
		if err != nil {
			respondError(w, r, err)
			return
		}
		upd.PhotoPath = &path
	}
	if fh := formFile(r, "cv"); fh != nil {
		path, err := h.files.Save("about", fh)
		if err != nil {
			respondError(w, r, err)
			return
		}
		upd.CVPath = &path
	}

	about, err := h.svc.Update(r.Context(), upd)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Profile updated successfully", about)
}
