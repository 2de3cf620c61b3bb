package domain

import "errors"

// Sentinel errors used across all layers.
var (
	// ErrNotFound is returned by repositories when a row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by repositories on unique violations.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidRequest covers validation failures, missing entities and
	// authorization denials. The boundary maps it to HTTP 400.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrAuth is wrong credentials at sign-in. Mapped to HTTP 401,
	// deliberately distinct from ErrInvalidRequest.
	ErrAuth = errors.New("authentication failed")
	// ErrForbidden is a role check failure at the transport boundary
	// (non-admin calling an admin endpoint). Mapped to HTTP 403.
	ErrForbidden = errors.New("forbidden")
	// ErrServer marks failures of external collaborators surfaced as 500
	// with a fixed message.
	ErrServer = errors.New("server error")
)

// InvalidRequestError carries a fixed user-facing rule-violation message.
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string { return e.Message }

func (e *InvalidRequestError) Unwrap() error { return ErrInvalidRequest }

// NewInvalidRequest creates an InvalidRequestError with the given message.
func NewInvalidRequest(message string) *InvalidRequestError {
	return &InvalidRequestError{Message: message}
}

// AuthenticationError carries the sign-in failure message.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

func (e *AuthenticationError) Unwrap() error { return ErrAuth }

// NewAuthError creates an AuthenticationError with the given message.
func NewAuthError(message string) *AuthenticationError {
	return &AuthenticationError{Message: message}
}

// ServerError carries a fixed message for an external collaborator failure.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string { return e.Message }

func (e *ServerError) Unwrap() error { return ErrServer }

// NewServerError creates a ServerError with the given message.
func NewServerError(message string) *ServerError {
	return &ServerError{Message: message}
}
