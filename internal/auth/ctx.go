package auth

import (
	"context"

	"taskboard/internal/store"
)

var callerCtxKey = &contextKey{"caller"}

type contextKey struct {
	name string
}

// WithCaller sets the resolved caller in the given context
func WithCaller(ctx context.Context, user *store.User) context.Context {
	return context.WithValue(ctx, callerCtxKey, user)
}

// CallerFromContext finds the resolved caller from the context.
func CallerFromContext(ctx context.Context) (*store.User, bool) {
	raw, ok := ctx.Value(callerCtxKey).(*store.User)
	return raw, ok
}
