package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/taskmate/taskmate-backend/internal/domain"
	"github.com/taskmate/taskmate-backend/internal/service/todo"
)

// todoService defines the minimal interface needed by TodoHandler.
type todoService interface {
	SaveTodo(ctx context.Context, userID int64, input todo.SaveTodoInput) (*domain.Todo, error)
	GetTodos(ctx context.Context, page, size int) (*todo.TodoPage, error)
	GetTodo(ctx context.Context, id int64) (*domain.TodoWithUser, error)
}

// TodoHandler serves todo REST endpoints.
type TodoHandler struct {
	svc todoService
	log *slog.Logger
}

// NewTodoHandler creates a TodoHandler.
func NewTodoHandler(svc todoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, log: logger.With("handler", "todo")}
}

type saveTodoRequest struct {
	Title    string `json:"title"`
	Contents string `json:"contents"`
}

type todoResponse struct {
	ID         int64         `json:"id"`
	Title      string        `json:"title"`
	Contents   string        `json:"contents"`
	Weather    string        `json:"weather"`
	UserID     int64         `json:"userId"`
	User       *userResponse `json:"user,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	ModifiedAt time.Time     `json:"modifiedAt"`
}

type todoPageResponse struct {
	Items []todoResponse `json:"items"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	Total int64          `json:"total"`
}

func toTodoResponse(t domain.Todo) todoResponse {
	return todoResponse{
		ID:         t.ID,
		Title:      t.Title,
		Contents:   t.Contents,
		Weather:    t.Weather,
		UserID:     t.UserID,
		CreatedAt:  t.CreatedAt,
		ModifiedAt: t.ModifiedAt,
	}
}

func toTodoWithUserResponse(t domain.TodoWithUser) todoResponse {
	resp := toTodoResponse(t.Todo)
	u := toUserResponse(t.User)
	resp.User = &u
	return resp
}

// Create handles POST /todos.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req saveTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.SaveTodo(r.Context(), identity.UserID, todo.SaveTodoInput{
		Title:    req.Title,
		Contents: req.Contents,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodoResponse(*created))
}

// List handles GET /todos?page=1&size=10.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page")
	size := queryInt(r, "size")

	result, err := h.svc.GetTodos(r.Context(), page, size)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]todoResponse, 0, len(result.Items))
	for _, t := range result.Items {
		items = append(items, toTodoWithUserResponse(t))
	}

	writeJSON(w, http.StatusOK, todoPageResponse{
		Items: items,
		Page:  result.Page,
		Size:  result.Size,
		Total: result.Total,
	})
}

// Get handles GET /todos/{id}.
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid todo id")
		return
	}

	t, err := h.svc.GetTodo(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodoWithUserResponse(*t))
}

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed. The service applies its own defaults for non-positive values.
func queryInt(r *http.Request, name string) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
