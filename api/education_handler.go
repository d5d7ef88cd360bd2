package api

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/services"
)

type EducationHandler struct {
	svc *services.EducationService
}

func NewEducationHandler(svc *services.EducationService) *EducationHandler {
	return &EducationHandler{svc: svc}
}

func (h *EducationHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "OK", entries)
}

type educationRequest struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	Grade     string `json:"grade"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (h *EducationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req educationRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, models.Invalid("body", "must be valid JSON"))
		return
	}

	edu := models.Education{
		School: req.School,
		Degree: req.Degree,
		Field:  req.Field,
		Grade:  req.Grade,
	}
	if req.StartDate != "" {
		start, err := parseDate("start_date", req.StartDate)
		if err != nil {
			respondError(w, r, err)
			return
		}
		edu.StartDate = start
	}
	if req.EndDate != "" {
		end, err := parseDate("end_date", req.EndDate)
		if err != nil {
			respondError(w, r, err)
			return
		}
		edu.EndDate = &end
	}

	if err := h.svc.Create(r.Context(), &edu); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Education created successfully", edu)
}

type educationUpdateRequest struct {
	School    *string `json:"school"`
	Degree    *string `json:"degree"`
	Field     *string `json:"field"`
	Grade     *string `json:"grade"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// Update applies only the fields present in the body; "end_date": "" clears
// the end date, marking the entry ongoing again.
func (h *EducationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req educationUpdateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, models.Invalid("body", "must be valid JSON"))
		return
	}

	upd := models.EducationUpdate{
		School: req.School,
		Degree: req.Degree,
		Field:  req.Field,
		Grade:  req.Grade,
	}
	if req.StartDate != nil {
		start, err := parseDate("start_date", *req.StartDate)
		if err != nil {
			respondError(w, r, err)
			return
		}
		upd.StartDate = &start
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			upd.ClearEndDate = true
		} else {
			end, err := parseDate("end_date", *req.EndDate)
			if err != nil {
				respondError(w, r, err)
				return
			}
			upd.EndDate = &end
		}
	}

	if err := h.svc.Update(r.Context(), id, upd); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Education updated successfully", nil)
}

func (h *EducationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Education deleted successfully", nil)
}
