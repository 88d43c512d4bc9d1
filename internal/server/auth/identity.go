package auth

import "context"

// Identity is the verified payload of a token: who is making the request.
type Identity struct {
	Username string
}

type ctxKey struct{}

// WithIdentity returns a child context carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFromContext returns the identity attached by the authentication
// layer, or nil when the request is anonymous.
func IdentityFromContext(ctx context.Context) *Identity {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	if !ok {
		return nil
	}
	return &id
}
