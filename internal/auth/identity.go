// Package auth carries the authenticated caller through a request context.
package auth

import "context"

// Identity is the caller resolved from a session token.
type Identity struct {
	UserID string
	OrgID  string
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the identity stored by WithIdentity. ok is false when
// none is present or it carries no organization.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.OrgID == "" {
		return Identity{}, false
	}
	return id, true
}
