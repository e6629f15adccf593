package application

import (
	"context"
	"errors"
	"testing"

	"github.com/oksasatya/identity-api/internal/domain/entity"
)

func TestSigninOrRegisterNewUser(t *testing.T) {
	repo := newFakeRepo()
	gw := &fakeGateway{externalID: "E1"}
	svc := NewAuthService(repo, gw, nil, nil, nil)

	out, err := svc.SigninOrRegister(context.Background(), SigninInput{
		Email:    "a@x.com",
		Password: "Password123!",
		Role:     entity.RoleUser,
	})
	if err != nil {
		t.Fatalf("SigninOrRegister error: %v", err)
	}
	if out.IsOnboarded {
		t.Fatal("fresh registration must not be onboarded")
	}
	if !out.IsNewUser {
		t.Fatal("expected IsNewUser for a fresh registration")
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		t.Fatal("expected provider tokens")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 local create, got %d", len(repo.created))
	}
	created := repo.created[0]
	if created.ExternalID != "E1" {
		t.Fatalf("expected external id E1, got %q", created.ExternalID)
	}
	if created.Role != entity.RoleUser {
		t.Fatalf("expected role user, got %q", created.Role)
	}
	if len(gw.roleCalls) != 1 || gw.roleCalls[0].username != "a@x.com" || gw.roleCalls[0].roleName != "user" {
		t.Fatalf("unexpected role assignment calls %+v", gw.roleCalls)
	}
	if len(gw.removedIDs) != 0 {
		t.Fatalf("no compensation must run on success, got %v", gw.removedIDs)
	}
}

func TestSigninOrRegisterPersistenceFailureCompensates(t *testing.T) {
	repo := newFakeRepo()
	dbFail := errors.New("DB_FAIL")
	repo.createErr = dbFail
	gw := &fakeGateway{externalID: "E1"}
	svc := NewAuthService(repo, gw, nil, nil, nil)

	_, err := svc.SigninOrRegister(context.Background(), SigninInput{Email: "a@x.com", Password: "Password123!"})
	if !errors.Is(err, dbFail) {
		t.Fatalf("expected DB_FAIL, got %v", err)
	}
	if len(gw.removedIDs) != 1 || gw.removedIDs[0] != "E1" {
		t.Fatalf("expected provider delete for E1, got %v", gw.removedIDs)
	}
}

func TestSigninOrRegisterRoleFailureCompensatesBeforeCreate(t *testing.T) {
	repo := newFakeRepo()
	roleFail := errors.New("ROLE_FAIL")
	gw := &fakeGateway{externalID: "E1", addRoleErr: roleFail}
	svc := NewAuthService(repo, gw, nil, nil, nil)

	_, err := svc.SigninOrRegister(context.Background(), SigninInput{Email: "a@x.com", Password: "Password123!"})
	if !errors.Is(err, roleFail) {
		t.Fatalf("expected ROLE_FAIL, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatal("local create must not happen after role failure")
	}
	if len(gw.removedIDs) != 1 || gw.removedIDs[0] != "E1" {
		t.Fatalf("expected provider delete for E1, got %v", gw.removedIDs)
	}
}

func TestSigninOrRegisterCompensationFailureKeepsOriginalError(t *testing.T) {
	repo := newFakeRepo()
	dbFail := errors.New("DB_FAIL")
	repo.createErr = dbFail
	gw := &fakeGateway{externalID: "E1", removeErr: errors.New("provider delete failed")}
	svc := NewAuthService(repo, gw, nil, nil, nil)

	_, err := svc.SigninOrRegister(context.Background(), SigninInput{Email: "a@x.com", Password: "Password123!"})
	if !errors.Is(err, dbFail) {
		t.Fatalf("caller must see the root cause, got %v", err)
	}
}

func TestSigninOrRegisterExistingUser(t *testing.T) {
	repo := newFakeRepo()
	repo.byEmail["a@x.com"] = &entity.User{ID: "u-1", Email: "a@x.com", Role: entity.RoleUser, IsOnboarded: true}
	gw := &fakeGateway{externalID: "E1"}
	svc := NewAuthService(repo, gw, nil, nil, nil)

	out, err := svc.SigninOrRegister(context.Background(), SigninInput{Email: "a@x.com", Password: "Password123!"})
	if err != nil {
		t.Fatalf("SigninOrRegister error: %v", err)
	}
	if !out.IsOnboarded {
		t.Fatal("expected onboarded flag from the existing user")
	}
	if out.IsNewUser {
		t.Fatal("existing user must not be flagged new")
	}
	if gw.registerCall != 0 || len(gw.roleCalls) != 0 || len(repo.created) != 0 {
		t.Fatal("existing user sign-in must only authenticate")
	}
	if gw.authCalls != 1 {
		t.Fatalf("expected one authenticate call, got %d", gw.authCalls)
	}
}

func TestSigninOrRegisterAuthFailureAfterRegisterDoesNotRollBack(t *testing.T) {
	repo := newFakeRepo()
	gw := &fakeGateway{externalID: "E1"}
	svc := NewAuthService(repo, gw, nil, nil, nil)

	// authenticate only fails after the saga resolved
	authFail := errors.New("AUTH_FAIL")
	gw.authErr = authFail

	_, err := svc.SigninOrRegister(context.Background(), SigninInput{Email: "a@x.com", Password: "Password123!"})
	if !errors.Is(err, authFail) {
		t.Fatalf("expected AUTH_FAIL, got %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatal("account must survive an authentication failure")
	}
	if len(gw.removedIDs) != 0 {
		t.Fatalf("authentication failure must not trigger compensation, got %v", gw.removedIDs)
	}
}
