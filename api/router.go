package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/utils"
)

// RouterDeps bundles everything the route table needs.
type RouterDeps struct {
	Tokens *utils.TokenManager

	Auth       *AuthHandler
	About      *AboutHandler
	Social     *SocialHandler
	Skills     *SkillsHandler
	Experience *ExperienceHandler
	Education  *EducationHandler
	Team       *TeamHandler
	Projects   *ProjectsHandler
	Terms      *TermsHandler
	Contact    *ContactHandler

	// UploadDir is served read-only under /uploads/.
	UploadDir string
}

// NewRouter builds the full route table: public reads, the two auth flows,
// and admin-guarded mutations.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(HTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	admin := Auth(d.Tokens, models.RoleAdmin)
	anyAccount := Auth(d.Tokens, "")

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", d.Auth.Signup)
			r.Post("/verify-otp", d.Auth.VerifyOTP)
			r.Post("/resend-otp", d.Auth.ResendOTP)
			r.Post("/login", d.Auth.Login(models.RoleUser))
			r.Post("/forgot-password", d.Auth.ForgotPassword(models.RoleUser))
			r.Post("/reset-password", d.Auth.ResetPassword(models.RoleUser))

			r.Post("/admin/login", d.Auth.Login(models.RoleAdmin))
			r.Post("/admin/forgot-password", d.Auth.ForgotPassword(models.RoleAdmin))
			r.Post("/admin/reset-password", d.Auth.ResetPassword(models.RoleAdmin))

			r.With(anyAccount).Get("/me", d.Auth.Me)
		})

		r.Get("/about", d.About.Get)
		r.With(admin).Put("/about", d.About.Update)

		r.Get("/social-links", d.Social.List)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Post("/social-links", d.Social.Create)
			r.Put("/social-links/{id}", d.Social.Update)
			r.Delete("/social-links/{id}", d.Social.Delete)
		})

		r.Get("/skills", d.Skills.ListGrouped)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Post("/skill-categories", d.Skills.CreateCategory)
			r.Put("/skill-categories/{id}", d.Skills.UpdateCategory)
			r.Delete("/skill-categories/{id}", d.Skills.DeleteCategory)
			r.Post("/skills", d.Skills.CreateSkill)
			r.Put("/skills/{id}", d.Skills.UpdateSkill)
			r.Delete("/skills/{id}", d.Skills.DeleteSkill)
		})

		r.Get("/experience", d.Experience.List)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Post("/experience", d.Experience.Create)
			r.Put("/experience/{id}", d.Experience.Update)
			r.Delete("/experience/{id}", d.Experience.Delete)
		})

		r.Get("/education", d.Education.List)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Post("/education", d.Education.Create)
			r.Put("/education/{id}", d.Education.Update)
			r.Delete("/education/{id}", d.Education.Delete)
		})

		r.Get("/team", d.Team.List)
		r.Get("/team/{id}", d.Team.Get)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Post("/team", d.Team.Create)
			r.Put("/team/{id}", d.Team.Update)
			r.Delete("/team/{id}", d.Team.Delete)
		})

		r.Get("/project-categories", d.Projects.ListCategories)
		r.Get("/projects", d.Projects.List)
		r.Get("/projects/{id}", d.Projects.Get)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Post("/project-categories", d.Projects.CreateCategory)
			r.Put("/project-categories/{id}", d.Projects.UpdateCategory)
			r.Delete("/project-categories/{id}", d.Projects.DeleteCategory)
			r.Post("/projects", d.Projects.Create)
			r.Put("/projects/{id}", d.Projects.Update)
			r.Delete("/projects/{id}", d.Projects.Delete)
		})

		r.Get("/terms", d.Terms.List)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Post("/terms", d.Terms.Create)
			r.Put("/terms/reorder", d.Terms.Reorder)
			r.Put("/terms/{id}", d.Terms.Update)
			r.Delete("/terms/{id}", d.Terms.Delete)
		})

		r.Post("/contact", d.Contact.Submit)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Get("/contact", d.Contact.List)
			r.Patch("/contact/{id}/read", d.Contact.MarkRead)
			r.Delete("/contact/{id}", d.Contact.Delete)
		})
	})

	// Uploaded assets; paths stored in the DB resolve here via BaseURL.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(d.UploadDir)))
	r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		fileServer.ServeHTTP(w, r)
	})

	return r
}
