package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/services"
	"github.com/raushankrgupta/portfolio-backend/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SkillsHandler struct {
	svc   *services.SkillService
	files *utils.FileStore
}

func NewSkillsHandler(svc *services.SkillService, files *utils.FileStore) *SkillsHandler {
	return &SkillsHandler{svc: svc, files: files}
}

// ListGrouped is the public listing: categories in order, skills inside.
func (h *SkillsHandler) ListGrouped(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListGrouped(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "OK", cats)
}

type skillCategoryRequest struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

func (h *SkillsHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req skillCategoryRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, models.Invalid("body", "must be valid JSON"))
		return
	}

	cat := models.SkillCategory{Name: req.Name, Order: req.Order}
	if err := h.svc.CreateCategory(r.Context(), &cat); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Skill category created successfully", cat)
}

type skillCategoryUpdateRequest struct {
	Name  *string `json:"name"`
	Order *int    `json:"order"`
}

func (h *SkillsHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req skillCategoryUpdateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, models.Invalid("body", "must be valid JSON"))
		return
	}

	upd := models.SkillCategoryUpdate{Name: req.Name, Order: req.Order}
	if err := h.svc.UpdateCategory(r.Context(), id, upd); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Skill category updated successfully", nil)
}

func (h *SkillsHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Skill category deleted successfully", nil)
}

func (h *SkillsHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, r, models.Invalid("body", "must be multipart form data"))
		return
	}

	categoryID, err := primitive.ObjectIDFromHex(r.FormValue("category_id"))
	if err != nil {
		respondError(w, r, models.Invalid("category_id", "must be a valid object id"))
		return
	}
	level, _ := strconv.Atoi(r.FormValue("level"))

	skill := models.Skill{
		CategoryID: categoryID,
		Name:       r.FormValue("name"),
		Level:      level,
	}
	if fh := formFile(r, "icon"); fh != nil {
		path, err := h.files.Save("skills", fh)
		if err != nil {
			respondError(w, r, err)
			return
		}
		skill.IconPath = path
	}

	if err := h.svc.CreateSkill(r.Context(), &skill); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Skill created successfully", skill)
}

func (h *SkillsHandler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, r, models.Invalid("body", "must be multipart form data"))
		return
	}

	upd := models.SkillUpdate{Name: optFormValue(r, "name")}
	if v := optFormValue(r, "category_id"); v != nil {
		categoryID, err := primitive.ObjectIDFromHex(*v)
		if err != nil {
			respondError(w, r, models.Invalid("category_id", "must be a valid object id"))
			return
		}
		upd.CategoryID = &categoryID
	}
	if v := optFormValue(r, "level"); v != nil {
		level, err := strconv.Atoi(*v)
		if err != nil {
			respondError(w, r, models.Invalid("level", "must be an integer"))
			return
		}
		upd.Level = &level
	}
	if fh := formFile(r, "icon"); fh != nil {
		path, err := h.files.Save("skills", fh)
		if err != nil {
			respondError(w, r, err)
			return
		}
		upd.IconPath = &path
	}

	if err := h.svc.UpdateSkill(r.Context(), id, upd); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Skill updated successfully", nil)
}

func (h *SkillsHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.svc.DeleteSkill(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Skill deleted successfully", nil)
}
