// Package ctxutil carries the per-request identity and request id through
// context. The identity is populated exactly once per request by the auth
// middleware and is read-only everywhere else.
package ctxutil

import "context"

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	requestIDKey ctxKey = "request_id"
)

// Identity is the authenticated caller decoded from the bearer token.
type Identity struct {
	UserID int64
	Email  string
	Role   string
}

// WithIdentity stores the authenticated identity in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromCtx extracts the identity from the context.
// Returns false if the request is anonymous.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || id.UserID == 0 {
		return Identity{}, false
	}
	return id, true
}

// UserIDFromCtx extracts just the user id from the context.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := IdentityFromCtx(ctx)
	if !ok {
		return 0, false
	}
	return id.UserID, true
}

// IsAdminCtx reports whether the context identity holds the ADMIN role.
func IsAdminCtx(ctx context.Context) bool {
	id, ok := IdentityFromCtx(ctx)
	return ok && id.Role == "ADMIN"
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
