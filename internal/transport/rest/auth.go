package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taskmate/taskmate-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Signup(ctx context.Context, input auth.SignupInput) (*auth.AuthResult, error)
	Signin(ctx context.Context, input auth.SigninInput) (*auth.AuthResult, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Signup(r.Context(), auth.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: result.BearerToken})
}

// Signin handles POST /auth/signin.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Signin(r.Context(), auth.SigninInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: result.BearerToken})
}
