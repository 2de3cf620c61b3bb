package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/taskmate/taskmate-backend/internal/domain"
	"github.com/taskmate/taskmate-backend/pkg/ctxutil"
)

// accessLogRepo persists admin API access records.
type accessLogRepo interface {
	Create(ctx context.Context, entry domain.AdminAccessLog) error
}

// RequireAdmin returns middleware that rejects requests without an
// authenticated identity (401) or with a non-admin role (403).
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.IdentityFromCtx(r.Context()); !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !ctxutil.IsAdminCtx(r.Context()) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminAudit returns middleware that records every admin API access: the
// caller's user id, request time, and path before the handler runs, and the
// elapsed duration after. The after-step runs on every exit path, success or
// failure, and the record is additionally persisted best-effort.
func AdminAudit(logger *slog.Logger, repo accessLogRepo) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, _ := ctxutil.IdentityFromCtx(r.Context())
			start := time.Now()

			logger.InfoContext(r.Context(), "admin api access",
				slog.Int64("user_id", identity.UserID),
				slog.Time("accessed_at", start),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			defer func() {
				duration := time.Since(start)
				logger.InfoContext(r.Context(), "admin api access complete",
					slog.Int64("user_id", identity.UserID),
					slog.String("path", r.URL.Path),
					slog.Int("status", sw.status),
					slog.Duration("duration", duration),
				)

				// Persist even if the client has gone away.
				entry := domain.AdminAccessLog{
					UserID:     identity.UserID,
					Method:     r.Method,
					Path:       r.URL.Path,
					Status:     sw.status,
					Duration:   duration,
					AccessedAt: start,
				}
				if err := repo.Create(context.WithoutCancel(r.Context()), entry); err != nil {
					logger.ErrorContext(r.Context(), "persist admin access log failed",
						slog.Any("error", err))
				}
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
