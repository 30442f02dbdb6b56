// Package utils provides small helpers shared by the transport packages:
// the typed context key for the authenticated user, JSON response writing,
// JWT minting and validation, the resty client constructor and trace id
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that they never collide
// with string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the auth middleware stores the chat
// user id as an int64.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the user id stored by [WithUserID]. ok is
// false when the value is missing or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
