package middleware

import (
	"context"

	"github.com/LLEndaya/LeaseUp/internal/models"
)

type contextKey string

const ContextKeyPrincipal = contextKey("principal")

func WithPrincipal(ctx context.Context, p *models.Principal) context.Context {
	return context.WithValue(ctx, ContextKeyPrincipal, p)
}

// PrincipalFrom returns the restored principal or nil for anonymous requests.
func PrincipalFrom(ctx context.Context) *models.Principal {
	p, _ := ctx.Value(ContextKeyPrincipal).(*models.Principal)
	return p
}
