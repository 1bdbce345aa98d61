// Package identity carries the acting user of a request. There is no
// authentication: every request acts as one configured user.
package identity

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
)

var ErrMissingIdentity = errors.New("no acting user in context")

type userIDKey struct{}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

func UserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}

// Require returns the acting user or ErrMissingIdentity.
func Require(ctx context.Context) (int64, error) {
	userID, ok := UserID(ctx)
	if !ok {
		return 0, ErrMissingIdentity
	}
	return userID, nil
}

// Middleware makes userID the acting user of every operation.
func Middleware(userID int64) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithValue(ctx, userIDKey{}, userID))
	}
}
