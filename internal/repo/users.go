package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var userColumns = []string{
	"email", "run", "first_name", "last_name", "password_hash",
	"address", "phone", "role", "created_at",
}

type userRepo struct {
	postgresRepo
}

func NewUserRepo(db *sqlx.DB) *userRepo {
	return &userRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *userRepo) UserByEmail(ctx context.Context, email string) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		MustSql()

	var u User
	err := r.getContext(ctx, &u, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, entities.Dependency("failed to get user", err)
	}
	return UserToEntity(u), nil
}

// ListUsers returns one page of users ordered by creation time and the total count.
func (r *userRepo) ListUsers(ctx context.Context, limit, offset uint64) ([]entities.User, int, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		OrderBy("created_at", "email").
		Limit(limit).
		Offset(offset).
		MustSql()

	var rows []User
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, entities.Dependency("failed to select users", err)
	}

	query, args = r.qb.Select("count(*)").From("users").MustSql()
	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return nil, 0, entities.Dependency("failed to count users", err)
	}

	users := make([]entities.User, 0, len(rows))
	for _, u := range rows {
		users = append(users, UserToEntity(u))
	}
	return users, total, nil
}

func (r *userRepo) CreateUser(ctx context.Context, u entities.User) error {
	query, args := r.qb.Insert("users").
		Columns(userColumns...).
		Values(
			u.Email, nullString(u.Run), u.FirstName, u.LastName, u.PasswordHash,
			nullString(u.Address), nullString(u.Phone), string(u.Role), u.CreatedAt,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return entities.ErrEmailTaken
	}
	if err != nil {
		return entities.Dependency("failed to insert user", err)
	}
	return nil
}

// UpdateUser overwrites every mutable column of the user identified by email.
func (r *userRepo) UpdateUser(ctx context.Context, u entities.User) error {
	query, args := r.qb.Update("users").
		SetMap(map[string]any{
			"run":           nullString(u.Run),
			"first_name":    u.FirstName,
			"last_name":     u.LastName,
			"password_hash": u.PasswordHash,
			"address":       nullString(u.Address),
			"phone":         nullString(u.Phone),
			"role":          string(u.Role),
		}).
		Where(sq.Eq{"email": u.Email}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return entities.Dependency("failed to update user", err)
	}
	if err := affectedOne(res, entities.ErrUserNotFound); err != nil {
		return entities.Dependency("failed to update user", err)
	}
	return nil
}

// DeleteUser removes the user; its orders go with it through ON DELETE CASCADE.
func (r *userRepo) DeleteUser(ctx context.Context, email string) error {
	query, args := r.qb.Delete("users").Where(sq.Eq{"email": email}).MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return entities.Dependency("failed to delete user", err)
	}
	if err := affectedOne(res, entities.ErrUserNotFound); err != nil {
		return entities.Dependency("failed to delete user", err)
	}
	return nil
}
