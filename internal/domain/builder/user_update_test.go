package builder

import (
	"testing"

	"github.com/oksasatya/identity-api/internal/domain/entity"
)

func baseUser() entity.User {
	return entity.User{
		ID:    "u-1",
		Email: "a@x.com",
		Role:  entity.RoleUser,
	}
}

func TestWithNameEmptyLeavesStateUnchanged(t *testing.T) {
	user, mark := NewUserUpdate(baseUser()).WithName("").Build()
	if mark {
		t.Fatal("empty name must not flag onboarding")
	}
	if user.Name != "" {
		t.Fatalf("name must stay unset, got %q", user.Name)
	}
}

func TestWithNameStagesAndFlagsOnboarding(t *testing.T) {
	user, mark := NewUserUpdate(baseUser()).WithName("Ana").Build()
	if !mark {
		t.Fatal("non-empty name must flag onboarding")
	}
	if user.Name != "Ana" {
		t.Fatalf("expected staged name, got %q", user.Name)
	}
}

func TestWithRoleGatedByPermission(t *testing.T) {
	user, _ := NewUserUpdate(baseUser()).WithRole(entity.RoleAdmin, false).Build()
	if user.Role != entity.RoleUser {
		t.Fatalf("role must not change without permission, got %q", user.Role)
	}

	user, _ = NewUserUpdate(baseUser()).WithRole(entity.RoleAdmin, true).Build()
	if user.Role != entity.RoleAdmin {
		t.Fatalf("expected staged role, got %q", user.Role)
	}

	// permission alone does nothing without a role
	user, _ = NewUserUpdate(baseUser()).WithRole("", true).Build()
	if user.Role != entity.RoleUser {
		t.Fatalf("missing role must be a no-op, got %q", user.Role)
	}
}

func TestBuildDoesNotMutateBase(t *testing.T) {
	base := baseUser()
	_, _ = NewUserUpdate(base).WithName("Ana").WithRole(entity.RoleAdmin, true).Build()
	if base.Name != "" || base.Role != entity.RoleUser {
		t.Fatalf("base snapshot mutated: %+v", base)
	}
}

func TestChainKeepsUnstagedFields(t *testing.T) {
	base := baseUser()
	base.IsOnboarded = true
	user, _ := NewUserUpdate(base).WithName("Ana").Build()
	if user.ID != base.ID || user.Email != base.Email || !user.IsOnboarded {
		t.Fatalf("unstaged fields must carry over, got %+v", user)
	}
}
