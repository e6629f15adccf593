package application

import (
	"context"

	"github.com/oksasatya/identity-api/internal/domain/entity"
	"github.com/oksasatya/identity-api/internal/domain/gateway"
	"github.com/oksasatya/identity-api/internal/domain/repository"
)

type fakeRepo struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User

	createErr error
	updateErr error

	created []*entity.User
	updated []*entity.User

	searchUsers []entity.User
	searchMeta  repository.Meta
	lastFilter  repository.SearchFilter
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byEmail: map[string]*entity.User{},
		byID:    map[string]*entity.User{},
	}
}

func (f *fakeRepo) Create(ctx context.Context, u *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *u
	f.created = append(f.created, &cp)
	f.byID[u.ID] = &cp
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, u *entity.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *u
	f.updated = append(f.updated, &cp)
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeRepo) FindByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.ExternalID == externalID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Search(ctx context.Context, filter repository.SearchFilter) ([]entity.User, repository.Meta, error) {
	f.lastFilter = filter
	return f.searchUsers, f.searchMeta, nil
}

type roleCall struct {
	username string
	roleName string
}

type fakeGateway struct {
	externalID string

	registerErr error
	addRoleErr  error
	authErr     error
	removeErr   error

	authCalls    int
	registerCall int
	roleCalls    []roleCall
	removedIDs   []string
}

func (f *fakeGateway) AuthenticateUser(ctx context.Context, email, password string) (gateway.TokenPair, error) {
	f.authCalls++
	if f.authErr != nil {
		return gateway.TokenPair{}, f.authErr
	}
	return gateway.TokenPair{AccessToken: "access-" + email, RefreshToken: "refresh-" + email}, nil
}

func (f *fakeGateway) RegisterUser(ctx context.Context, email, password, internalID string) (string, error) {
	f.registerCall++
	if f.registerErr != nil {
		return "", f.registerErr
	}
	return f.externalID, nil
}

func (f *fakeGateway) AddUserToRole(ctx context.Context, username, roleName string) error {
	f.roleCalls = append(f.roleCalls, roleCall{username: username, roleName: roleName})
	return f.addRoleErr
}

func (f *fakeGateway) RemoveUser(ctx context.Context, externalID string) error {
	f.removedIDs = append(f.removedIDs, externalID)
	return f.removeErr
}

func (f *fakeGateway) RemoveUserFromRole(ctx context.Context, username, roleName string) error {
	return nil
}
