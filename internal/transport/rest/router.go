package rest

import (
	"net/http"

	"github.com/taskmate/taskmate-backend/internal/transport/middleware"
)

// RouterDeps carries the handlers and the admin middleware chain used to
// build the route table.
type RouterDeps struct {
	Auth    *AuthHandler
	User    *UserHandler
	Todo    *TodoHandler
	Manager *ManagerHandler
	Comment *CommentHandler
	Admin   *AdminHandler
	Health  *HealthHandler

	// AdminChain guards /admin/* routes: role check plus access logging.
	AdminChain middleware.Middleware
}

// NewRouter builds the route table. Cross-cutting middleware (request id,
// logging, recovery, CORS, token decoding) is layered on top by the caller.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/signup", deps.Auth.Signup)
	mux.HandleFunc("POST /auth/signin", deps.Auth.Signin)

	mux.HandleFunc("GET /users/{id}", deps.User.Get)
	mux.HandleFunc("PUT /users", deps.User.ChangePassword)

	mux.HandleFunc("POST /todos", deps.Todo.Create)
	mux.HandleFunc("GET /todos", deps.Todo.List)
	mux.HandleFunc("GET /todos/{id}", deps.Todo.Get)

	mux.HandleFunc("POST /todos/{id}/managers", deps.Manager.Create)
	mux.HandleFunc("GET /todos/{id}/managers", deps.Manager.List)
	mux.HandleFunc("DELETE /todos/{id}/managers/{managerId}", deps.Manager.Delete)

	mux.HandleFunc("POST /todos/{id}/comments", deps.Comment.Create)
	mux.HandleFunc("GET /todos/{id}/comments", deps.Comment.List)

	mux.Handle("PATCH /admin/users/{id}", deps.AdminChain(http.HandlerFunc(deps.Admin.ChangeUserRole)))
	mux.Handle("DELETE /admin/comments/{id}", deps.AdminChain(http.HandlerFunc(deps.Admin.DeleteComment)))

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	return mux
}
