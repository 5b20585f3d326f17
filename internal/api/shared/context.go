package shared

import "context"

type usernameKey struct{}

type requestIDKey struct{}

// WithUsername returns a context carrying the authenticated username. Set
// by the auth middleware after token validation.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey{}, username)
}

// UsernameFromContext returns the authenticated username, or "" when the
// request carries no valid identity.
func UsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey{}).(string)
	return username
}

// WithRequestID returns a context carrying the per-request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the per-request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
