package api

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/services"
)

type TermsHandler struct {
	svc *services.TermsService
}

func NewTermsHandler(svc *services.TermsService) *TermsHandler {
	return &TermsHandler{svc: svc}
}

func (h *TermsHandler) List(w http.ResponseWriter, r *http.Request) {
	sections, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "OK", sections)
}

type termSectionRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Order int    `json:"order"`
}

func (h *TermsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req termSectionRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, models.Invalid("body", "must be valid JSON"))
		return
	}

	sec := models.TermSection{Title: req.Title, Body: req.Body, Order: req.Order}
	if err := h.svc.Create(r.Context(), &sec); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Term section created successfully", sec)
}

type termSectionUpdateRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
	Order *int    `json:"order"`
}

func (h *TermsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req termSectionUpdateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, models.Invalid("body", "must be valid JSON"))
		return
	}

	upd := models.TermSectionUpdate{Title: req.Title, Body: req.Body, Order: req.Order}
	if err := h.svc.Update(r.Context(), id, upd); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Term section updated successfully", nil)
}

func (h *TermsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Term section deleted successfully", nil)
}

// Reorder applies a whole new ordering in one atomic batch.
func (h *TermsHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var orders []models.TermOrder
	if err := render.DecodeJSON(r.Body, &orders); err != nil {
		respondError(w, r, models.Invalid("body", "must be a JSON array of {id, order}"))
		return
	}

	if err := h.svc.Reorder(r.Context(), orders); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Term sections reordered successfully", nil)
}
