package api

import (
	"net/http"
	"strconv"

	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/services"
	"github.com/raushankrgupta/portfolio-backend/utils"
)

type SocialHandler struct {
	svc   *services.SocialService
	files *utils.FileStore
}

func NewSocialHandler(svc *services.SocialService, files *utils.FileStore) *SocialHandler {
	return &SocialHandler{svc: svc, files: files}
}

func (h *SocialHandler) List(w http.ResponseWriter, r *http.Request) {
	links, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "OK", links)
}

func (h *SocialHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, r, models.Invalid("body", "must be multipart form data"))
		return
	}

	order, _ := strconv.Atoi(r.FormValue("order"))
	link := models.SocialLink{
		Platform: r.FormValue("platform"),
		URL:      r.FormValue("url"),
		Order:    order,
	}
	if fh := formFile(r, "icon"); fh != nil {
		path, err := h.files.Save("social", fh)
		if err != nil {
			respondError(w, r, err)
			return
		}
		link.IconPath = path
	}

	if err := h.svc.Create(r.Context(), &link); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Social link created successfully", link)
}

func (h *SocialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, r, models.Invalid("body", "must be multipart form data"))
		return
	}

	upd := models.SocialLinkUpdate{
		Platform: optFormValue(r, "platform"),
		URL:      optFormValue(r, "url"),
	}
	if v := optFormValue(r, "order"); v != nil {
		order, err := strconv.Atoi(*v)
		if err != nil {
			respondError(w, r, models.Invalid("order", "must be an integer"))
			return
		}
		upd.Order = &order
	}
	if fh := formFile(r, "icon"); fh != nil {
		path, err := h.files.Save("social", fh)
		if err != nil {
			respondError(w, r, err)
			return
		}
		upd.IconPath = &path
	}

	if err := h.svc.Update(r.Context(), id, upd); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Social link updated successfully", nil)
}

func (h *SocialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Social link deleted successfully", nil)
}
