package api

import (
	"encoding/json"
	"net/http"

	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/services"
	"github.com/raushankrgupta/portfolio-backend/utils"
)

type TeamHandler struct {
	svc   *services.TeamService
	files *utils.FileStore
}

func NewTeamHandler(svc *services.TeamService, files *utils.FileStore) *TeamHandler {
	return &TeamHandler{svc: svc, files: files}
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "OK", members)
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	member, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "OK", member)
}

// parseSocials decodes the optional "socials" form field, a JSON object of
// platform -> url.
func parseSocials(raw string) (map[string]string, error) {
	if raw == "" {
		return nil, nil
	}
	var socials map[string]string
	if err := json.Unmarshal([]byte(raw), &socials); err != nil {
		return nil, models.Invalid("socials", "must be a JSON object of platform to url")
	}
	return socials, nil
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, r, models.Invalid("body", "must be multipart form data"))
		return
	}

	socials, err := parseSocials(r.FormValue("socials"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	member := models.TeamMember{
		Name:    r.FormValue("name"),
		Role:    r.FormValue("role"),
		Bio:     r.FormValue("bio"),
		Socials: socials,
	}
	if fh := formFile(r, "photo"); fh != nil {
		path, err := h.files.Save("team", fh)
		if err != nil {
			respondError(w, r, err)
			return
		}
		member.PhotoPath = path
	}

	if err := h.svc.Create(r.Context(), &member); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Team member created successfully", member)
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, r, models.Invalid("body", "must be multipart form data"))
		return
	}

	upd := models.TeamMemberUpdate{
		Name: optFormValue(r, "name"),
		Role: optFormValue(r, "role"),
		Bio:  optFormValue(r, "bio"),
	}
	if v := optFormValue(r, "socials"); v != nil {
		socials, err := parseSocials(*v)
		if err != nil {
			respondError(w, r, err)
			return
		}
		upd.Socials = &socials
	}
	if fh := formFile(r, "photo"); fh != nil {
		path, err := h.files.Save("team", fh)
		if err != nil {
			respondError(w, r, err)
			return
		}
		upd.PhotoPath = &path
	}

	if err := h.svc.Update(r.Context(), id, upd); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Team member updated successfully", nil)
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Team member deleted successfully", nil)
}
