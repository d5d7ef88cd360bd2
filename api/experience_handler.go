package api

import (
	"net/http"

	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/services"
	"github.com/raushankrgupta/portfolio-backend/utils"
)

type ExperienceHandler struct {
	svc   *services.ExperienceService
	files *utils.FileStore
}

func NewExperienceHandler(svc *services.ExperienceService, files *utils.FileStore) *ExperienceHandler {
	return &ExperienceHandler{svc: svc, files: files}
}

func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "OK", entries)
}

// Create accepts multipart form data; "logo" is the optional company logo.
// An empty or absent end_date marks the role as current.
func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, r, models.Invalid("body", "must be multipart form data"))
		return
	}

	exp := models.Experience{
		Company:     r.FormValue("company"),
		Role:        r.FormValue("role"),
		Location:    r.FormValue("location"),
		Description: r.FormValue("description"),
	}

	if v := r.FormValue("start_date"); v != "" {
		start, err := parseDate("start_date", v)
		if err != nil {
			respondError(w, r, err)
			return
		}
		exp.StartDate = start
	}
	if v := r.FormValue("end_date"); v != "" {
		end, err := parseDate("end_date", v)
		if err != nil {
			respondError(w, r, err)
			return
		}
		exp.EndDate = &end
	}

	if fh := formFile(r, "logo"); fh != nil {
		path, err := h.files.Save("experience", fh)
		if err != nil {
			respondError(w, r, err)
			return
		}
		exp.LogoPath = path
	}

	if err := h.svc.Create(r.Context(), &exp); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Experience created successfully", exp)
}

// Update applies only the fields present in the form. Sending end_date as
// an empty string clears it, marking the role current again.
func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, r, models.Invalid("body", "must be multipart form data"))
		return
	}

	upd := models.ExperienceUpdate{
		Company:     optFormValue(r, "company"),
		Role:        optFormValue(r, "role"),
		Location:    optFormValue(r, "location"),
		Description: optFormValue(r, "description"),
	}

	if v := optFormValue(r, "start_date"); v != nil {
		start, err := parseDate("start_date", *v)
		if err != nil {
			respondError(w, r, err)
			return
		}
		upd.StartDate = &start
	}
	if v := optFormValue(r, "end_date"); v != nil {
		if *v == "" {
			upd.ClearEndDate = true
		} else {
			end, err := parseDate("end_date", *v)
			if err != nil {
				respondError(w, r, err)
				return
			}
			upd.EndDate = &end
		}
	}

	if fh := formFile(r, "logo"); fh != nil {
		path, err := h.files.Save("experience", fh)
		if err != nil {
			respondError(w, r, err)
			return
		}
		upd.LogoPath = &path
	}

	if err := h.svc.Update(r.Context(), id, upd); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Experience updated successfully", nil)
}

func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Experience deleted successfully", nil)
}
