package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

// managerService defines the minimal interface needed by ManagerHandler.
type managerService interface {
	SaveManager(ctx context.Context, requesterID, todoID, targetUserID int64) (*domain.ManagerWithUser, error)
	GetManagers(ctx context.Context, todoID int64) ([]domain.ManagerWithUser, error)
	DeleteManager(ctx context.Context, requesterID, todoID, managerID int64) error
}

// ManagerHandler serves manager assignment REST endpoints.
type ManagerHandler struct {
	svc managerService
	log *slog.Logger
}

// NewManagerHandler creates a ManagerHandler.
func NewManagerHandler(svc managerService, logger *slog.Logger) *ManagerHandler {
	return &ManagerHandler{svc: svc, log: logger.With("handler", "manager")}
}

type saveManagerRequest struct {
	UserID int64 `json:"userId"`
}

type managerResponse struct {
	ID        int64        `json:"id"`
	TodoID    int64        `json:"todoId"`
	User      userResponse `json:"user"`
	CreatedAt time.Time    `json:"createdAt"`
}

func toManagerResponse(m domain.ManagerWithUser) managerResponse {
	return managerResponse{
		ID:        m.ID,
		TodoID:    m.TodoID,
		User:      toUserResponse(m.User),
		CreatedAt: m.CreatedAt,
	}
}

// Create handles POST /todos/{id}/managers. Only the todo's owner may
// assign managers.
func (h *ManagerHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	todoID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid todo id")
		return
	}

	var req saveManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.SaveManager(r.Context(), identity.UserID, todoID, req.UserID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toManagerResponse(*created))
}

// List handles GET /todos/{id}/managers.
func (h *ManagerHandler) List(w http.ResponseWriter, r *http.Request) {
	todoID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid todo id")
		return
	}

	managers, err := h.svc.GetManagers(r.Context(), todoID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]managerResponse, 0, len(managers))
	for _, m := range managers {
		items = append(items, toManagerResponse(m))
	}

	writeJSON(w, http.StatusOK, items)
}

// Delete handles DELETE /todos/{id}/managers/{managerId}.
func (h *ManagerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	todoID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid todo id")
		return
	}
	managerID, err := pathID(r, "managerId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid manager id")
		return
	}

	if err := h.svc.DeleteManager(r.Context(), identity.UserID, todoID, managerID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
