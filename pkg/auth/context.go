package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const adminKey contextKey = "admin"

// ErrUnauthorized is returned when an operation requires the admin credential
// and the request context does not carry it.
var ErrUnauthorized = errors.New("Unauthorized: Admin access required") //nolint:staticcheck // client-facing message

// WithAdmin marks ctx as authenticated with the admin credential.
// Used by RequireAdminKey after the header check succeeds.
func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminKey, true)
}

// IsAdmin reports whether ctx carries the admin credential.
func IsAdmin(ctx context.Context) bool {
	ok, _ := ctx.Value(adminKey).(bool)
	return ok
}

// RequireAdmin returns ErrUnauthorized unless ctx carries the admin credential.
func RequireAdmin(ctx context.Context) error {
	if !IsAdmin(ctx) {
		return ErrUnauthorized
	}
	return nil
}
