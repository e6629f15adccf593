package application

import (
	"context"
	"errors"
	"testing"

	"github.com/oksasatya/identity-api/internal/domain/entity"
	"github.com/oksasatya/identity-api/internal/domain/repository"
	"github.com/oksasatya/identity-api/internal/domain/service"
)

func seededService() (*UserService, *fakeRepo) {
	repo := newFakeRepo()
	repo.byID["u-1"] = &entity.User{ID: "u-1", Email: "a@x.com", Role: entity.RoleUser}
	repo.byID["u-2"] = &entity.User{ID: "u-2", Name: "Beni", Email: "b@x.com", Role: entity.RoleUser, IsOnboarded: true}
	return NewUserService(repo, nil, nil, nil), repo
}

func TestEditAccountAdminChangesOtherUsersRole(t *testing.T) {
	svc, repo := seededService()

	out, err := svc.EditAccount(context.Background(), EditAccountInput{
		UserID:           "u-2",
		CurrentUserID:    "admin-1",
		CurrentUserRoles: []entity.Role{entity.RoleAdmin},
		Role:             entity.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("EditAccount error: %v", err)
	}
	if out.Role != entity.RoleAdmin {
		t.Fatalf("expected role admin, got %q", out.Role)
	}
	if len(repo.updated) != 1 || repo.updated[0].Role != entity.RoleAdmin {
		t.Fatalf("expected persisted role change, got %+v", repo.updated)
	}
}

func TestEditAccountNonAdminRoleChangeOnSelfRejected(t *testing.T) {
	svc, repo := seededService()

	_, err := svc.EditAccount(context.Background(), EditAccountInput{
		CurrentUserID:    "u-1",
		CurrentUserRoles: []entity.Role{entity.RoleUser},
		Role:             entity.RoleAdmin,
	})
	if !errors.Is(err, service.ErrOnlyAdminsEditRoles) {
		t.Fatalf("expected role permission error, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Fatal("rejected edit must not persist anything")
	}
}

func TestEditAccountNonAdminEditingOtherRejected(t *testing.T) {
	svc, _ := seededService()

	_, err := svc.EditAccount(context.Background(), EditAccountInput{
		UserID:           "u-2",
		CurrentUserID:    "u-1",
		CurrentUserRoles: []entity.Role{entity.RoleUser},
		Name:             "Eve",
	})
	if !errors.Is(err, service.ErrCannotEditOthers) {
		t.Fatalf("expected edit-others permission error, got %v", err)
	}
}

func TestEditAccountMissingTargetID(t *testing.T) {
	svc, _ := seededService()

	_, err := svc.EditAccount(context.Background(), EditAccountInput{
		CurrentUserRoles: []entity.Role{entity.RoleAdmin},
		Name:             "Ana",
	})
	if !errors.Is(err, ErrUserIDRequired) {
		t.Fatalf("expected ErrUserIDRequired, got %v", err)
	}
}

func TestEditAccountUnknownTarget(t *testing.T) {
	svc, _ := seededService()

	_, err := svc.EditAccount(context.Background(), EditAccountInput{
		UserID:           "u-404",
		CurrentUserID:    "admin-1",
		CurrentUserRoles: []entity.Role{entity.RoleAdmin},
		Name:             "Ana",
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestEditAccountNameMarksOnboarded(t *testing.T) {
	svc, repo := seededService()

	out, err := svc.EditAccount(context.Background(), EditAccountInput{
		CurrentUserID:    "u-1",
		CurrentUserRoles: []entity.Role{entity.RoleUser},
		Name:             "Ana",
	})
	if err != nil {
		t.Fatalf("EditAccount error: %v", err)
	}
	if !out.IsOnboarded || out.Name != "Ana" {
		t.Fatalf("expected onboarded profile with new name, got %+v", out)
	}
	u := repo.updated[0]
	if !u.IsOnboarded || u.UpdatedAt == nil {
		t.Fatalf("expected persisted onboarding with touched timestamp, got %+v", u)
	}
}

func TestEditAccountNameFallsBackToExisting(t *testing.T) {
	svc, _ := seededService()

	out, err := svc.EditAccount(context.Background(), EditAccountInput{
		UserID:           "u-2",
		CurrentUserID:    "admin-1",
		CurrentUserRoles: []entity.Role{entity.RoleAdmin},
		Role:             entity.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("EditAccount error: %v", err)
	}
	if out.Name != "Beni" {
		t.Fatalf("expected pre-edit name fallback, got %q", out.Name)
	}
}

func TestGetMe(t *testing.T) {
	svc, _ := seededService()

	p, err := svc.GetMe(context.Background(), "u-2")
	if err != nil {
		t.Fatalf("GetMe error: %v", err)
	}
	if p.ID != "u-2" || p.Email != "b@x.com" || !p.IsOnboarded {
		t.Fatalf("unexpected profile %+v", p)
	}

	if _, err := svc.GetMe(context.Background(), "nope"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSearchUsersPassThrough(t *testing.T) {
	svc, repo := seededService()
	repo.searchUsers = []entity.User{*repo.byID["u-2"]}
	repo.searchMeta = repository.Meta{Total: 1, ItemsPerPage: 10, TotalPages: 1, Page: 1}

	users, meta, err := svc.SearchUsers(context.Background(), repository.SearchFilter{Email: "b@x.com", Page: 1, ItemsPerPage: 10})
	if err != nil {
		t.Fatalf("SearchUsers error: %v", err)
	}
	if len(users) != 1 || users[0].ID != "u-2" {
		t.Fatalf("unexpected users %+v", users)
	}
	if meta.Total != 1 || meta.TotalPages != 1 {
		t.Fatalf("unexpected meta %+v", meta)
	}
	if repo.lastFilter.Email != "b@x.com" {
		t.Fatalf("filter not passed through, got %+v", repo.lastFilter)
	}
}
