package auth

import (
	"context"
	"fmt"
)

type ctxKey int

const userCtxKey ctxKey = iota + 1

// ContextWithUser returns a new context carrying the authenticated
// user's ID.
//
//nolint:ireturn //This function needs to return a context.
func ContextWithUser(baseCtx context.Context, userID string) context.Context {
	return context.WithValue(baseCtx, userCtxKey, userID)
}

// UserFromContext extracts the authenticated user's ID, failing when the
// request never passed the session middleware.
func UserFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(userCtxKey)
	if val == nil {
		return "", fmt.Errorf("no user ID in context")
	}

	userID, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("user ID is not a string: %T", val)
	}
	return userID, nil
}
