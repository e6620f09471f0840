package auth

import (
	"context"
)

var identityCtxKey = &contextKey{"identity"}
var stateCtxKey = &contextKey{"state"}

type contextKey struct {
	name string
}

// WithIdentityContext sets the Identity in the given context
func WithIdentityContext(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, identity)
}

// IdentityFromContext finds the identity from the context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	raw, ok := ctx.Value(identityCtxKey).(Identity)
	return raw, ok
}

// WithStateContext sets the session State in the given context
func WithStateContext(ctx context.Context, state State) context.Context {
	return context.WithValue(ctx, stateCtxKey, state)
}

// StateFromContext extracts the session State from the context, an
// unauthenticated one when absent.
func StateFromContext(ctx context.Context) State {
	if state, ok := ctx.Value(stateCtxKey).(State); ok {
		return state
	}
	return UnauthenticatedState()
}

// IsAdminFromContext is a convenience check against the context's session.
func IsAdminFromContext(ctx context.Context) bool {
	if state, ok := ctx.Value(stateCtxKey).(State); ok {
		return state.IsAdmin()
	}
	identity, ok := IdentityFromContext(ctx)
	return ok && identity.Role.IsAdmin()
}
