package middleware

import (
	"context"

	pkgAuth "github.com/nutriapp/nutriapp-backend/pkg/auth"
)

type contextKey string

const ctxClaims contextKey = "auth_claims"

// ClaimsFromContext returns the verified token claims seeded by the Auth
// middleware, or nil outside a protected route.
func ClaimsFromContext(ctx context.Context) *pkgAuth.Claims {
	if ctx == nil {
		return nil
	}
	if claims, ok := ctx.Value(ctxClaims).(*pkgAuth.Claims); ok {
		return claims
	}
	return nil
}

// UserIDFromContext returns the authenticated user id, or 0 when absent.
func UserIDFromContext(ctx context.Context) int64 {
	if claims := ClaimsFromContext(ctx); claims != nil {
		return claims.UserID
	}
	return 0
}

// WithClaims injects verified claims into the context.
func WithClaims(ctx context.Context, claims *pkgAuth.Claims) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxClaims, claims)
}
