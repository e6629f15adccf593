package gateway

import (
	"context"

	"github.com/oksasatya/identity-api/internal/domain/entity"
)

// Principal is the identity extracted from a verified access token.
type Principal struct {
	InternalID string
	Username   string
	Roles      []entity.Role
}

// TokenValidator verifies a raw bearer token and extracts the caller.
type TokenValidator interface {
	Validate(ctx context.Context, rawToken string) (Principal, error)
}
