package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

// commentService defines the minimal interface needed by CommentHandler.
type commentService interface {
	SaveComment(ctx context.Context, userID, todoID int64, contents string) (*domain.Comment, error)
	GetComments(ctx context.Context, todoID int64) ([]domain.CommentWithUser, error)
}

// CommentHandler serves comment REST endpoints.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

type saveCommentRequest struct {
	Contents string `json:"contents"`
}

type commentResponse struct {
	ID         int64         `json:"id"`
	Contents   string        `json:"contents"`
	TodoID     int64         `json:"todoId"`
	UserID     int64         `json:"userId"`
	User       *userResponse `json:"user,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	ModifiedAt time.Time     `json:"modifiedAt"`
}

func toCommentResponse(c domain.Comment) commentResponse {
	return commentResponse{
		ID:         c.ID,
		Contents:   c.Contents,
		TodoID:     c.TodoID,
		UserID:     c.UserID,
		CreatedAt:  c.CreatedAt,
		ModifiedAt: c.ModifiedAt,
	}
}

func toCommentWithUserResponse(c domain.CommentWithUser) commentResponse {
	resp := toCommentResponse(c.Comment)
	u := toUserResponse(c.User)
	resp.User = &u
	return resp
}

// Create handles POST /todos/{id}/comments. Only the todo's managers may
// comment.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	todoID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid todo id")
		return
	}

	var req saveCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.SaveComment(r.Context(), identity.UserID, todoID, req.Contents)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentResponse(*created))
}

// List handles GET /todos/{id}/comments. An unknown todo yields an empty
// list, not an error.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	todoID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid todo id")
		return
	}

	comments, err := h.svc.GetComments(r.Context(), todoID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		items = append(items, toCommentWithUserResponse(c))
	}

	writeJSON(w, http.StatusOK, items)
}
