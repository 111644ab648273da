package auth

import (
	"context"

	"github.com/iain-kirkham/Mental-Health-App/internal/core/domain"
	"github.com/iain-kirkham/Mental-Health-App/internal/core/ports"
)

// ContextResolver implements ports.AuthResolver on top of the identity placed
// in the context by the authentication middleware.
type ContextResolver struct{}

func NewContextResolver() *ContextResolver {
	return &ContextResolver{}
}

func (ContextResolver) CurrentUserID(ctx context.Context) (string, error) {
	identity, ok := IdentityFrom(ctx)
	if !ok {
		return "", domain.ErrAuthenticationMissing
	}
	return identity.Subject, nil
}

func (ContextResolver) Claim(ctx context.Context, name string) (any, bool) {
	identity, ok := IdentityFrom(ctx)
	if !ok {
		return nil, false
	}
	value, ok := identity.Claims[name]
	return value, ok
}

// Email returns the "email" claim, or "" when the token does not carry one.
func (r ContextResolver) Email(ctx context.Context) string {
	value, ok := r.Claim(ctx, "email")
	if !ok {
		return ""
	}
	email, _ := value.(string)
	return email
}

var _ ports.AuthResolver = (*ContextResolver)(nil)
