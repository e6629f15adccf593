package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/identity-api/internal/domain/builder"
	"github.com/oksasatya/identity-api/internal/domain/entity"
	"github.com/oksasatya/identity-api/internal/domain/repository"
	"github.com/oksasatya/identity-api/internal/domain/service"
	"github.com/oksasatya/identity-api/pkg/helpers"
)

const profileCacheTTL = 5 * time.Minute

func profileKey(userID string) string {
	return "user:profile:" + userID
}

// UserService covers profile retrieval, account edits, and admin search.
type UserService struct {
	Repo    repository.UserRepository
	Redis   *redis.Client
	Logger  *logrus.Logger
	Indexer *UserIndexer
}

func NewUserService(repo repository.UserRepository, rdb *redis.Client, logger *logrus.Logger, indexer *UserIndexer) *UserService {
	return &UserService{Repo: repo, Redis: rdb, Logger: logger, Indexer: indexer}
}

// Profile is the user projection returned to callers.
type Profile struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        entity.Role `json:"role"`
	IsOnboarded bool        `json:"isOnboarded"`
}

func toProfile(u *entity.User) Profile {
	return Profile{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		IsOnboarded: u.IsOnboarded,
	}
}

// GetMe loads the caller's own profile, read-through cached in Redis.
func (s *UserService) GetMe(ctx context.Context, userID string) (Profile, error) {
	if s.Redis != nil {
		var cached Profile
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, profileKey(userID), &cached); err == nil && ok {
			return cached, nil
		}
	}

	u, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	if u == nil {
		return Profile{}, ErrUserNotFound
	}

	p := toProfile(u)
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, profileKey(userID), p, profileCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("profile cache write failed")
		}
	}
	return p, nil
}

type EditAccountInput struct {
	UserID           string
	CurrentUserID    string
	CurrentUserRoles []entity.Role
	Name             string
	Role             entity.Role
}

// EditAccount applies a partial account update after the permission check.
// Non-admins may only edit themselves and never roles; supplying a display
// name marks the user as onboarded. The builder re-checks the role gate even
// though the permission check already rejected non-admin role changes.
func (s *UserService) EditAccount(ctx context.Context, in EditAccountInput) (Profile, error) {
	isAdmin := hasRole(in.CurrentUserRoles, entity.RoleAdmin)
	targetID := in.UserID
	if targetID == "" {
		targetID = in.CurrentUserID
	}

	if err := service.ValidateEditPermissions(service.EditPermissionInput{
		IsAdmin:       isAdmin,
		IsEditingSelf: targetID == in.CurrentUserID,
		HasRoleChange: in.Role != "",
	}); err != nil {
		return Profile{}, err
	}

	if targetID == "" {
		return Profile{}, ErrUserIDRequired
	}

	base, err := s.Repo.FindByID(ctx, targetID)
	if err != nil {
		return Profile{}, err
	}
	if base == nil {
		return Profile{}, ErrUserNotFound
	}

	user, shouldMarkOnboarded := builder.NewUserUpdate(*base).
		WithName(in.Name).
		WithRole(in.Role, isAdmin).
		Build()

	if shouldMarkOnboarded {
		user.MarkOnboarded()
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		return Profile{}, err
	}

	s.afterEdit(ctx, user)
	return toProfile(user), nil
}

// afterEdit drops the stale profile cache and reindexes; both best effort.
func (s *UserService) afterEdit(ctx context.Context, u *entity.User) {
	if s.Redis != nil {
		if err := helpers.RedisDel(ctx, s.Redis, profileKey(u.ID)); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("profile cache invalidation failed")
		}
	}
	if s.Indexer != nil {
		s.Indexer.Index(ctx, u)
	}
}

// SearchUsers is a structured query over Postgres with pagination.
func (s *UserService) SearchUsers(ctx context.Context, filter repository.SearchFilter) ([]Profile, repository.Meta, error) {
	users, meta, err := s.Repo.Search(ctx, filter)
	if err != nil {
		return nil, repository.Meta{}, err
	}
	out := make([]Profile, 0, len(users))
	for i := range users {
		out = append(out, toProfile(&users[i]))
	}
	return out, meta, nil
}

// QueryUsers is a free-text lookup against the search index.
func (s *UserService) QueryUsers(ctx context.Context, q string, size int) ([]map[string]any, error) {
	return s.Indexer.Query(ctx, q, size)
}

func hasRole(roles []entity.Role, want entity.Role) bool {
	for _, r := range roles {
		if r == want {
			return true
		}
	}
	return false
}
