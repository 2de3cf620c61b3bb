package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskmate/taskmate-backend/pkg/ctxutil"
)

// JWTManager handles access token generation and validation. The token is
// the sole carrier of the authenticated identity: user id (subject), email
// and role travel as claims.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims extends standard JWT claims with the user's email and role.
type accessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// GenerateAccessToken creates a signed HS256 JWT with the user id as subject
// and email/role as custom claims.
func (m *JWTManager) GenerateAccessToken(userID int64, email string, role string) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: email,
		Role:  role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token.
// Returns the decoded identity if valid.
func (m *JWTManager) ValidateAccessToken(tokenString string) (ctxutil.Identity, error) {
	if tokenString == "" {
		return ctxutil.Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		return ctxutil.Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return ctxutil.Identity{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return ctxutil.Identity{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return ctxutil.Identity{}, fmt.Errorf("invalid subject: %w", err)
	}

	return ctxutil.Identity{
		UserID: userID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
