package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taskmate/taskmate-backend/internal/domain"
	"github.com/taskmate/taskmate-backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	ChangePassword(ctx context.Context, userID int64, input user.ChangePasswordInput) error
}

// UserHandler serves user REST endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Get handles GET /users/{id}. The response is a projection carrying only
// the id and email, never the password hash or role.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*u))
}

// ChangePassword handles PUT /users. The target user is always the caller.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.ChangePassword(r.Context(), identity.UserID, user.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
