package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// adminUserService defines the role-change operation needed by AdminHandler.
type adminUserService interface {
	ChangeUserRole(ctx context.Context, userID int64, roleName string) error
}

// adminCommentService defines the forced-deletion operation needed by
// AdminHandler.
type adminCommentService interface {
	DeleteComment(ctx context.Context, commentID int64) error
}

// AdminHandler serves admin REST endpoints. Role enforcement and access
// logging happen in middleware, not here.
type AdminHandler struct {
	users    adminUserService
	comments adminCommentService
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users adminUserService, comments adminCommentService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		users:    users,
		comments: comments,
		log:      logger.With("handler", "admin"),
	}
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

// ChangeUserRole handles PATCH /admin/users/{id}.
func (h *AdminHandler) ChangeUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req changeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.users.ChangeUserRole(r.Context(), id, req.Role); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DeleteComment handles DELETE /admin/comments/{id}. Deleting an absent
// comment still returns 200.
func (h *AdminHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := h.comments.DeleteComment(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
