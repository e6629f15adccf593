package gateway

import "context"

// TokenPair holds the credentials issued by the identity provider.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthGateway is the opaque identity-provider contract. The provider owns
// credentials; this service never stores a password.
type AuthGateway interface {
	// AuthenticateUser exchanges email/password for provider-issued tokens.
	AuthenticateUser(ctx context.Context, email, password string) (TokenPair, error)
	// RegisterUser creates the identity at the provider, tagged with our
	// internal id, and returns the provider-side external id.
	RegisterUser(ctx context.Context, email, password, internalID string) (string, error)
	// AddUserToRole assigns a role (provider group) to the identity.
	AddUserToRole(ctx context.Context, username, roleName string) error
	// RemoveUser deletes the provider-side identity. Used as the registration
	// saga's compensation.
	RemoveUser(ctx context.Context, externalID string) error
	// RemoveUserFromRole revokes a role assignment. Declared for symmetry;
	// no current flow calls it.
	RemoveUserFromRole(ctx context.Context, username, roleName string) error
}
