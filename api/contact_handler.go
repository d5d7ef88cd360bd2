package api

import (
	"net/http"

	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/services"
)

type ContactHandler struct {
	svc *services.ContactService
}

func NewContactHandler(svc *services.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit is the public contact form: multipart, with optional "attachments"
// file parts.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, r, models.Invalid("body", "must be multipart form data"))
		return
	}

	msg := models.ContactMessage{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Subject: r.FormValue("subject"),
		Message: r.FormValue("message"),
	}

	var files = r.MultipartForm.File["attachments"]
	if err := h.svc.Submit(r.Context(), &msg, files); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Message sent successfully", nil)
}

// List is the admin inbox, newest first, paginated.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	msgs, total, err := h.svc.List(r.Context(), page, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondPaginated(w, "OK", msgs, Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages(total, limit),
	})
}

func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.svc.MarkRead(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Message marked as read", nil)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Message deleted successfully", nil)
}
