package auth

import (
	"context"

	"github.com/baharkarakas/storefront-backend/internal/models"
)

// Identity is the verified subject of a request.
type Identity struct {
	UserID string
	Role   models.Role
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
