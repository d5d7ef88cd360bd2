package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/services"
	"github.com/raushankrgupta/portfolio-backend/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectsHandler struct {
	svc   *services.ProjectService
	files *utils.FileStore
}

func NewProjectsHandler(svc *services.ProjectService, files *utils.FileStore) *ProjectsHandler {
	return &ProjectsHandler{svc: svc, files: files}
}

func (h *ProjectsHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "OK", cats)
}

type projectCategoryRequest struct {
	Name string `json:"name"`
}

func (h *ProjectsHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req projectCategoryRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, models.Invalid("body", "must be valid JSON"))
		return
	}

	cat := models.ProjectCategory{Name: req.Name}
	if err := h.svc.CreateCategory(r.Context(), &cat); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Project category created successfully", cat)
}

func (h *ProjectsHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req struct {
		Name *string `json:"name"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, models.Invalid("body", "must be valid JSON"))
		return
	}

	if err := h.svc.UpdateCategory(r.Context(), id, models.ProjectCategoryUpdate{Name: req.Name}); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Project category updated successfully", nil)
}

func (h *ProjectsHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Project category deleted successfully", nil)
}

// List optionally filters by ?category=<id>.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	var categoryID *primitive.ObjectID
	if v := r.URL.Query().Get("category"); v != "" {
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			respondError(w, r, models.Invalid("category", "must be a valid object id"))
			return
		}
		categoryID = &id
	}

	projects, err := h.svc.List(r.Context(), categoryID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "OK", projects)
}

func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "OK", p)
}

// splitList parses a comma-separated form value.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseMemberIDs(raw string) ([]primitive.ObjectID, error) {
	var ids []primitive.ObjectID
	for _, s := range splitList(raw) {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return nil, models.Invalid("member_ids", "must be a comma-separated list of object ids")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Create accepts multipart form data. "images" may repeat; member_ids and
// tech_stack are comma-separated.
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, r, models.Invalid("body", "must be multipart form data"))
		return
	}

	p := models.Project{
		Title:       r.FormValue("title"),
		Summary:     r.FormValue("summary"),
		Description: r.FormValue("description"),
		TechStack:   splitList(r.FormValue("tech_stack")),
		LiveURL:     r.FormValue("live_url"),
		RepoURL:     r.FormValue("repo_url"),
	}

	if v := r.FormValue("category_id"); v != "" {
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			respondError(w, r, models.Invalid("category_id", "must be a valid object id"))
			return
		}
		p.CategoryID = id
	}

	memberIDs, err := parseMemberIDs(r.FormValue("member_ids"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	p.MemberIDs = memberIDs

	if v := r.FormValue("start_date"); v != "" {
		start, err := parseDate("start_date", v)
		if err != nil {
			respondError(w, r, err)
			return
		}
		p.StartDate = start
	}
	if v := r.FormValue("end_date"); v != "" {
		end, err := parseDate("end_date", v)
		if err != nil {
			respondError(w, r, err)
			return
		}
		p.EndDate = &end
	}

	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["images"] {
			path, err := h.files.Save("projects", fh)
			if err != nil {
				respondError(w, r, err)
				return
			}
			p.ImagePaths = append(p.ImagePaths, path)
		}
	}

	if err := h.svc.Create(r.Context(), &p); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Project created successfully", p)
}

// Update applies only the fields present in the form. Uploading "images"
// replaces the whole image set; end_date as an empty string clears it.
func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, r, models.Invalid("body", "must be multipart form data"))
		return
	}

	upd := models.ProjectUpdate{
		Title:       optFormValue(r, "title"),
		Summary:     optFormValue(r, "summary"),
		Description: optFormValue(r, "description"),
		LiveURL:     optFormValue(r, "live_url"),
		RepoURL:     optFormValue(r, "repo_url"),
	}

	if v := optFormValue(r, "tech_stack"); v != nil {
		stack := splitList(*v)
		upd.TechStack = &stack
	}
	if v := optFormValue(r, "category_id"); v != nil {
		categoryID, err := primitive.ObjectIDFromHex(*v)
		if err != nil {
			respondError(w, r, models.Invalid("category_id", "must be a valid object id"))
			return
		}
		upd.CategoryID = &categoryID
	}
	if v := optFormValue(r, "member_ids"); v != nil {
		memberIDs, err := parseMemberIDs(*v)
		if err != nil {
			respondError(w, r, err)
			return
		}
		upd.MemberIDs = &memberIDs
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

	if r.MultipartForm != nil && len(r.MultipartForm.File["images"]) > 0 {
		var paths []string
		for _, fh := range r.MultipartForm.File["images"] {
			path, err := h.files.Save("projects", fh)
			if err != nil {
				respondError(w, r, err)
				return
			}
			paths = append(paths, path)
		}
		upd.ImagePaths = &paths
	}

	if err := h.svc.Update(r.Context(), id, upd); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Project updated successfully", nil)
}

func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Project deleted successfully", nil)
}
