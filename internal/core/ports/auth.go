package ports

import "context"

// AuthResolver reads the identity the authentication middleware bound to the
// request context.
type AuthResolver interface {
	CurrentUserID(ctx context.Context) (string, error)
	Claim(ctx context.Context, name string) (any, bool)
}
