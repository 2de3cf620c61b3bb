package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/taskmate/taskmate-backend/internal/domain"
	"github.com/taskmate/taskmate-backend/pkg/ctxutil"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps a service error to an HTTP response. Rule violations keep
// their fixed user-facing message; everything else is logged and hidden
// behind a generic 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAuth):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrServer):
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathID parses the named path segment as an int64 id.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

// requireIdentity extracts the authenticated identity or writes a 401.
func requireIdentity(w http.ResponseWriter, r *http.Request) (ctxutil.Identity, bool) {
	identity, ok := ctxutil.IdentityFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
	}
	return identity, ok
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email}
}
