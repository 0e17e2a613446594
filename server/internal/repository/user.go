package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/shareit-lab/shareit-service/server/internal/errs"
	"github.com/shareit-lab/shareit-service/server/internal/model"
)

// email uniqueness is case-insensitive: a unique index on lower(email)
// raises unique_violation which is mapped to ErrEmailExists here.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *repository) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	q, args, err := qb.Insert(usersTableName).
		Columns("name", "email").
		Values(req.Name, req.Email).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.User{}, errs.ErrEmailExists
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) UpdateUser(ctx context.Context, userID int64, req model.UpdateUserRequest) (model.User, error) {
	if req == (model.UpdateUserRequest{}) {
		return r.GetUser(ctx, userID)
	}
	q := qb.Update(usersTableName).
		Where(sq.Eq{"id": userID}).
		Suffix("returning *")
	if req.Name != nil {
		q = q.Set("name", *req.Name)
	}
	if req.Email != nil {
		q = q.Set("email", *req.Email)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return model.User{}, errs.ErrEmailExists
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) GetUser(ctx context.Context, userID int64) (model.User, error) {
	q, args, err := qb.Select("id", "name", "email").
		From(usersTableName).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) ListUsers(ctx context.Context) ([]model.User, error) {
	q, args, err := qb.Select("id", "name", "email").
		From(usersTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0)
	if err := r.db.SelectContext(ctx, &users, q, args...); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) DeleteUser(ctx context.Context, userID int64) error {
	q, args, err := qb.Delete(usersTableName).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}
