package firebase

import (
	"context"
	"errors"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

var (
	ErrNoAuthHeader      = errors.New("Unauthorized: No authorization header")
	ErrInvalidAuthHeader = errors.New("Invalid authorization format. Use: Bearer <token>")
	ErrEmptyToken        = errors.New("Token is empty")
	ErrInvalidToken      = errors.New("Invalid or expired token")
)

//go:generate mockery --name TokenVerifier --output ./mocks
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header.
func BearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrNoAuthHeader
	}

	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if idToken == "" {
		return "", ErrEmptyToken
	}

	return idToken, nil
}

// VerifyIDToken verifies the request bearer token against the identity provider.
// The underlying verification error is not returned to callers.
func VerifyIDToken(ctx *gin.Context, verifier TokenVerifier) (*auth.Token, error) {
	idToken, err := BearerToken(ctx.Request.Header.Get("Authorization"))
	if err != nil {
		return nil, err
	}

	token, err := verifier.VerifyIDToken(ctx, idToken)
	if err != nil || token == nil {
		return nil, ErrInvalidToken
	}

	return token, nil
}

// Email returns the lower cased email claim of the token, if any.
func Email(token *auth.Token) string {
	if email, ok := token.Claims["email"].(string); ok {
		return strings.ToLower(email)
	}

	return ""
}
