package auth

// AuthResult is returned from signup and signin operations.
type AuthResult struct {
	BearerToken string
}
