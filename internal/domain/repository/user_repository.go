package repository

import (
	"context"

	"github.com/oksasatya/identity-api/internal/domain/entity"
)

// SearchFilter narrows a user search. Zero values mean "no filter";
// IsOnboarded uses a pointer so false can be filtered on explicitly.
type SearchFilter struct {
	ID           string
	Name         string
	Email        string
	Role         entity.Role
	IsOnboarded  *bool
	Page         int
	ItemsPerPage int
}

// Meta describes a search result page.
type Meta struct {
	Total        int `json:"total"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalPages   int `json:"totalPages"`
	Page         int `json:"page"`
}

// UserRepository defines persistence operations for User entities.
// Implementations return (nil, nil) when a lookup finds nothing.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByExternalID(ctx context.Context, externalID string) (*entity.User, error)
	Search(ctx context.Context, filter SearchFilter) ([]entity.User, Meta, error)
}
