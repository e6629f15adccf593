package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/identity-api/internal/domain/entity"
	"github.com/oksasatya/identity-api/internal/domain/repository"
)

var errNoRowsUpdated = errors.New("no rows updated")

const userColumns = "id, name, email, role, is_onboarded, external_id, created_at, updated_at, deleted_at"

// UserRepository is the pgx-backed persistence layer for users. Soft-deleted
// rows are invisible to every lookup.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, name, email, role, is_onboarded, external_id, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, NULLIF($6, ''), $7, $8)
	`, u.ID, u.Name, u.Email, u.Role, u.IsOnboarded, u.ExternalID, u.CreatedAt, u.UpdatedAt)
	return err
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	now := time.Now().UTC()
	u.UpdatedAt = &now

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET name = NULLIF($1, ''), role = $2, is_onboarded = $3, external_id = NULLIF($4, ''), updated_at = $5
		WHERE id = $6 AND deleted_at IS NULL
	`, u.Name, u.Role, u.IsOnboarded, u.ExternalID, u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNoRowsUpdated
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "email = $1", email)
}

func (r *UserRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	return r.findOne(ctx, "external_id = $1", externalID)
}

func (r *UserRepository) findOne(ctx context.Context, cond string, arg any) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM users WHERE %s AND deleted_at IS NULL
	`, userColumns, cond), arg)

	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Search(ctx context.Context, filter repository.SearchFilter) ([]entity.User, repository.Meta, error) {
	conds := []string{"deleted_at IS NULL"}
	args := []any{}

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.ID != "" {
		add("id = $%d", filter.ID)
	}
	if filter.Name != "" {
		add("name = $%d", filter.Name)
	}
	if filter.Email != "" {
		add("email = $%d", filter.Email)
	}
	if filter.Role != "" {
		add("role = $%d", filter.Role)
	}
	if filter.IsOnboarded != nil {
		add("is_onboarded = $%d", *filter.IsOnboarded)
	}
	where := strings.Join(conds, " AND ")

	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.ItemsPerPage
	if perPage < 1 {
		perPage = 10
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM users WHERE "+where, args...).Scan(&total); err != nil {
		return nil, repository.Meta{}, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM users WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, userColumns, where, len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, query, append(args, perPage, perPage*(page-1))...)
	if err != nil {
		return nil, repository.Meta{}, err
	}
	defer rows.Close()

	users := make([]entity.User, 0, perPage)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, repository.Meta{}, err
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Meta{}, err
	}

	meta := repository.Meta{
		Total:        total,
		ItemsPerPage: perPage,
		TotalPages:   (total + perPage - 1) / perPage,
		Page:         page,
	}
	return users, meta, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var name, externalID *string
	if err := row.Scan(&u.ID, &name, &u.Email, &u.Role, &u.IsOnboarded, &externalID,
		&u.CreatedAt, &u.UpdatedAt, &u.DeletedAt); err != nil {
		return nil, err
	}
	if name != nil {
		u.Name = *name
	}
	if externalID != nil {
		u.ExternalID = *externalID
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
