package token

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/oksasatya/identity-api/internal/domain/entity"
	"github.com/oksasatya/identity-api/internal/domain/gateway"
)

var errInvalidToken = errors.New("invalid token")

// OIDCValidator verifies provider-issued access tokens against the issuer's
// JWKS. Cognito access tokens carry no audience claim, so the client id
// check is skipped and the issuer check does the work.
type OIDCValidator struct {
	verifier *oidc.IDTokenVerifier
}

// NewOIDCValidator discovers the issuer's keys. The issuer URL is the
// Cognito user-pool endpoint, e.g.
// https://cognito-idp.<region>.amazonaws.com/<pool-id>.
func NewOIDCValidator(ctx context.Context, issuer string) (*OIDCValidator, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}
	verifier := provider.Verifier(&oidc.Config{SkipClientIDCheck: true})
	return &OIDCValidator{verifier: verifier}, nil
}

type accessClaims struct {
	InternalID string   `json:"internalId"`
	Username   string   `json:"username"`
	Groups     []string `json:"cognito:groups"`
}

func (v *OIDCValidator) Validate(ctx context.Context, rawToken string) (gateway.Principal, error) {
	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return gateway.Principal{}, errInvalidToken
	}

	var claims accessClaims
	if err := idToken.Claims(&claims); err != nil {
		return gateway.Principal{}, errInvalidToken
	}
	if claims.InternalID == "" {
		return gateway.Principal{}, errInvalidToken
	}

	roles := make([]entity.Role, 0, len(claims.Groups))
	for _, g := range claims.Groups {
		roles = append(roles, entity.Role(g))
	}
	return gateway.Principal{
		InternalID: claims.InternalID,
		Username:   claims.Username,
		Roles:      roles,
	}, nil
}

var _ gateway.TokenValidator = (*OIDCValidator)(nil)
