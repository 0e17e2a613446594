package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/shareit-lab/shareit-service/server/internal/errs"
	"github.com/shareit-lab/shareit-service/server/internal/model"
)

func (r *repository) CreateRequest(ctx context.Context, requestorID int64, description string) (model.ItemRequest, error) {
	q, args, err := qb.Insert(requestsTableName).
		Columns("description", "requestor_id").
		Values(description, requestorID).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.ItemRequest{}, err
	}
	var req model.ItemRequest
	if err := r.db.GetContext(ctx, &req, q, args...); err != nil {
		return model.ItemRequest{}, err
	}
	return req, nil
}

func (r *repository) ListOwnRequests(ctx context.Context, requestorID int64) ([]model.ItemRequest, error) {
	q, args, err := qb.Select("id", "description", "requestor_id", "created").
		From(requestsTableName).
		Where(sq.Eq{"requestor_id": requestorID}).
		OrderBy("created desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	reqs := make([]model.ItemRequest, 0)
	if err := r.db.SelectContext(ctx, &reqs, q, args...); err != nil {
		return nil, err
	}
	return reqs, nil
}

// ListOtherRequests skips exactly `from` records and takes `size`, so
// arbitrary offsets are honored.
func (r *repository) ListOtherRequests(ctx context.Context, requestorID int64, from, size int) ([]model.ItemRequest, error) {
	q := qb.Select("id", "description", "requestor_id", "created").
		From(requestsTableName).
		Where(sq.NotEq{"requestor_id": requestorID}).
		OrderBy("created desc")

	if size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64(from))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	reqs := make([]model.ItemRequest, 0)
	if err := r.db.SelectContext(ctx, &reqs, query, args...); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *repository) GetRequest(ctx context.Context, requestID int64) (model.ItemRequest, error) {
	q, args, err := qb.Select("id", "description", "requestor_id", "created").
		From(requestsTableName).
		Where(sq.Eq{"id": requestID}).
		ToSql()
	if err != nil {
		return model.ItemRequest{}, err
	}
	var req model.ItemRequest
	if err := r.db.GetContext(ctx, &req, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ItemRequest{}, errs.ErrRequestNotFound
		}
		return model.ItemRequest{}, err
	}
	return req, nil
}
