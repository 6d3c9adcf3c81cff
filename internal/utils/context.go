// Package utils provides small helpers shared by the sandbox transport and
// the CLI: typed context keys, JSON responses and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// TokenCtxKey holds the ddauth_token of the current request.
	TokenCtxKey = contextKey("token")

	// LoginCtxKey holds the login the request token was issued to.
	LoginCtxKey = contextKey("login")
)

// GetTokenFromContext retrieves the request token. ok is false when the
// value is missing, empty or not a string.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok && token != ""
}

// GetLoginFromContext retrieves the authenticated login.
//
// Example usage:
//
//	login, ok := utils.GetLoginFromContext(ctx)
//	if !ok {
//	    // handle anonymous request
//	}
func GetLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(LoginCtxKey).(string)
	return login, ok
}
