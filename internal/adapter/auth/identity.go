// Package auth carries the verified caller identity through the request
// context and resolves it for the services.
package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey struct{}

// Identity is the verified token subject plus its raw claims.
type Identity struct {
	Subject string
	Claims  jwt.MapClaims
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(contextKey{}).(Identity)
	if !ok || identity.Subject == "" {
		return Identity{}, false
	}
	return identity, true
}
