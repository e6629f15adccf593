package service

import "errors"

// Permission failures surfaced by account edits. Handlers map these to 403.
var (
	ErrCannotEditOthers    = errors.New("you do not have permission to edit other users")
	ErrOnlyAdminsEditRoles = errors.New("only admins can modify roles")
)

// EditPermissionInput carries the three facts the edit check depends on.
type EditPermissionInput struct {
	IsAdmin       bool
	IsEditingSelf bool
	HasRoleChange bool
}

// ValidateEditPermissions decides whether an account edit is allowed.
// Checked in order, first violation wins: editing someone else requires
// admin; changing a role requires admin even when editing yourself.
func ValidateEditPermissions(in EditPermissionInput) error {
	if !in.IsEditingSelf && !CanUserEditOtherUsers(in.IsAdmin) {
		return ErrCannotEditOthers
	}
	if in.HasRoleChange && !CanUserEditRoles(in.IsAdmin) {
		return ErrOnlyAdminsEditRoles
	}
	return nil
}

// CanUserEditOtherUsers reports whether a caller may edit accounts other
// than their own.
func CanUserEditOtherUsers(isAdmin bool) bool { return isAdmin }

// CanUserEditRoles reports whether a caller may change roles.
func CanUserEditRoles(isAdmin bool) bool { return isAdmin }
