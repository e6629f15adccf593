package entity

import "testing"

func TestNewUserDefaults(t *testing.T) {
	u := NewUser("a@x.com", "", "")
	if u.ID == "" {
		t.Fatal("expected generated id")
	}
	if u.Role != RoleUser {
		t.Fatalf("expected default role %q, got %q", RoleUser, u.Role)
	}
	if u.IsOnboarded {
		t.Fatal("new user must not be onboarded")
	}
	if u.UpdatedAt != nil {
		t.Fatal("new user must not have an update timestamp")
	}
	if u.CreatedAt.IsZero() {
		t.Fatal("expected creation timestamp")
	}
}

func TestNewUserKeepsValidRole(t *testing.T) {
	u := NewUser("a@x.com", "Ana", RoleAdmin)
	if u.Role != RoleAdmin {
		t.Fatalf("expected admin role, got %q", u.Role)
	}
	if !u.IsAdmin() {
		t.Fatal("IsAdmin should be true for admin role")
	}
}

func TestNewUserRejectsUnknownRole(t *testing.T) {
	u := NewUser("a@x.com", "Ana", Role("superuser"))
	if u.Role != RoleUser {
		t.Fatalf("unknown role must fall back to %q, got %q", RoleUser, u.Role)
	}
}

func TestMarkOnboardedTouches(t *testing.T) {
	u := NewUser("a@x.com", "", "")
	u.MarkOnboarded()
	if !u.IsOnboarded {
		t.Fatal("expected onboarded flag set")
	}
	if u.UpdatedAt == nil {
		t.Fatal("MarkOnboarded must touch UpdatedAt")
	}
	first := *u.UpdatedAt

	// idempotent: flag stays true, timestamp refreshes
	u.MarkOnboarded()
	if !u.IsOnboarded {
		t.Fatal("onboarded flag must stay true")
	}
	if u.UpdatedAt.Before(first) {
		t.Fatal("UpdatedAt must not go backwards")
	}
}

func TestSetExternalID(t *testing.T) {
	u := NewUser("a@x.com", "", "")
	u.SetExternalID("E1")
	if u.ExternalID != "E1" {
		t.Fatalf("expected external id E1, got %q", u.ExternalID)
	}
	if u.UpdatedAt == nil {
		t.Fatal("SetExternalID must touch UpdatedAt")
	}
}
