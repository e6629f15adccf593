package builder

import "github.com/oksasatya/identity-api/internal/domain/entity"

// UserUpdate assembles a partial account update over a base snapshot. It
// tracks what changed and what that implies: supplying a display name for the
// first time counts as completing onboarding, while role changes stay gated
// behind the caller's edit-role permission.
type UserUpdate struct {
	base                entity.User
	name                *string
	role                *entity.Role
	shouldMarkOnboarded bool
}

// NewUserUpdate starts a builder over a copy of the given snapshot. The
// snapshot itself is never mutated.
func NewUserUpdate(base entity.User) *UserUpdate {
	return &UserUpdate{base: base}
}

// WithName stages a new display name. Empty names are ignored; a non-empty
// name also flags the user as onboarded.
func (b *UserUpdate) WithName(name string) *UserUpdate {
	if name != "" {
		b.name = &name
		b.shouldMarkOnboarded = true
	}
	return b
}

// WithRole stages a role change only when a role was supplied and the caller
// may edit roles. Anything else is a no-op.
func (b *UserUpdate) WithRole(role entity.Role, canEditRole bool) *UserUpdate {
	if role != "" && canEditRole {
		r := role
		b.role = &r
	}
	return b
}

// Build merges the staged fields into a fresh user value and reports whether
// the edit should also mark the user as onboarded.
func (b *UserUpdate) Build() (*entity.User, bool) {
	user := b.base
	if b.name != nil {
		user.Name = *b.name
	}
	if b.role != nil {
		user.Role = *b.role
	}
	return &user, b.shouldMarkOnboarded
}
