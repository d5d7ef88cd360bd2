package api

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHandler serves both authentication flows; the admin routes bind the
// same handlers with RoleAdmin.
type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, models.Invalid("body", "must be valid JSON"))
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, r, models.Invalid("body", "name, email and password are required"))
		return
	}

	acc, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated,
		"Registered successfully. Please verify your email using the OTP sent.", acc)
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, models.Invalid("body", "must be valid JSON"))
		return
	}
	if req.Email == "" || req.OTP == "" {
		respondError(w, r, models.Invalid("body", "email and otp are required"))
		return
	}

	if err := h.svc.VerifyEmail(r.Context(), req.Email, req.OTP); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Email verified successfully. You can now log in.", nil)
}

func (h *AuthHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, models.Invalid("body", "must be valid JSON"))
		return
	}
	if req.Email == "" {
		respondError(w, r, models.Invalid("email", "is required"))
		return
	}

	if err := h.svc.ResendOTP(r.Context(), req.Email); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "A new OTP has been sent to your email.", nil)
}

// Login authenticates the role's account and returns the session token.
func (h *AuthHandler) Login(role models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			respondError(w, r, models.Invalid("body", "must be valid JSON"))
			return
		}
		if req.Email == "" || req.Password == "" {
			respondError(w, r, models.Invalid("body", "email and password are required"))
			return
		}

		token, acc, err := h.svc.Login(r.Context(), role, req.Email, req.Password)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respond(w, http.StatusOK, "Login successful", map[string]interface{}{
			"token":   token,
			"account": acc,
		})
	}
}

// ForgotPassword always reports success; whether the email maps to an
// account is not revealed.
func (h *AuthHandler) ForgotPassword(role models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req emailRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			respondError(w, r, models.Invalid("body", "must be valid JSON"))
			return
		}
		if req.Email == "" {
			respondError(w, r, models.Invalid("email", "is required"))
			return
		}

		if err := h.svc.ForgotPassword(r.Context(), role, req.Email); err != nil {
			respondError(w, r, err)
			return
		}
		respond(w, http.StatusOK,
			"If an account exists for that email, a reset code has been sent.", nil)
	}
}

func (h *AuthHandler) ResetPassword(role models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resetPasswordRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			respondError(w, r, models.Invalid("body", "must be valid JSON"))
			return
		}
		if req.Email == "" || req.OTP == "" || req.NewPassword == "" {
			respondError(w, r, models.Invalid("body", "email, otp and new_password are required"))
			return
		}

		if err := h.svc.ResetPassword(r.Context(), role, req.Email, req.OTP, req.NewPassword); err != nil {
			respondError(w, r, err)
			return
		}
		respond(w, http.StatusOK,
			"Password reset successfully. Please log in with your new password.", nil)
	}
}

// Me returns the account behind the presented session token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, Envelope{Error: "unauthorized"})
		return
	}
	id, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, Envelope{Error: "unauthorized"})
		return
	}

	acc, err := h.svc.GetAccount(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "OK", acc)
}
