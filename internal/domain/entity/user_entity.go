package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User is the aggregate root for the identity domain.
// ID and Email are immutable after creation; credentials live in the
// external identity provider, never here.
type User struct {
	ID          string
	Name        string
	Email       string
	Role        Role
	IsOnboarded bool
	ExternalID  string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

// NewUser creates an in-memory user with defaults applied: generated uuid,
// role "user" when unspecified, not onboarded.
func NewUser(email, name string, role Role) *User {
	if !role.Valid() {
		role = RoleUser
	}
	return &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// MarkOnboarded flips the onboarding flag. Idempotent; always touches UpdatedAt.
func (u *User) MarkOnboarded() {
	u.IsOnboarded = true
	u.touch()
}

// SetExternalID records the identity-provider id, set once right after
// provider registration succeeds.
func (u *User) SetExternalID(externalID string) {
	u.ExternalID = externalID
	u.touch()
}

func (u *User) touch() {
	now := time.Now().UTC()
	u.UpdatedAt = &now
}
