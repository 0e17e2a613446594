package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/shareit-lab/shareit-service/server/internal/errs"
	"github.com/shareit-lab/shareit-service/server/internal/model"
)

func (r *repository) CreateItem(ctx context.Context, ownerID int64, req model.CreateItemRequest) (model.Item, error) {
	q, args, err := qb.Insert(itemsTableName).
		Columns("name", "description", "available", "owner_id", "request_id").
		Values(req.Name, req.Description, *req.Available, ownerID, req.RequestID).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Item{}, err
	}
	var item model.Item
	if err := r.db.GetContext(ctx, &item, q, args...); err != nil {
		return model.Item{}, err
	}
	return item, nil
}

func (r *repository) UpdateItem(ctx context.Context, itemID int64, req model.UpdateItemRequest) (model.Item, error) {
	if req == (model.UpdateItemRequest{}) {
		return r.GetItem(ctx, itemID)
	}
	q := qb.Update(itemsTableName).
		Where(sq.Eq{"id": itemID}).
		Suffix("returning *")
	if req.Name != nil {
		q = q.Set("name", *req.Name)
	}
	if req.Description != nil {
		q = q.Set("description", *req.Description)
	}
	if req.Available != nil {
		q = q.Set("available", *req.Available)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.Item{}, err
	}
	var item model.Item
	if err := r.db.GetContext(ctx, &item, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, errs.ErrItemNotFound
		}
		return model.Item{}, err
	}
	return item, nil
}

func (r *repository) GetItem(ctx context.Context, itemID int64) (model.Item, error) {
	q, args, err := qb.Select("id", "name", "description", "available", "owner_id", "request_id").
		From(itemsTableName).
		Where(sq.Eq{"id": itemID}).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}
	var item model.Item
	if err := r.db.GetContext(ctx, &item, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, errs.ErrItemNotFound
		}
		return model.Item{}, err
	}
	return item, nil
}

func (r *repository) ListItemsByOwner(ctx context.Context, ownerID int64) ([]model.Item, error) {
	q, args, err := qb.Select("id", "name", "description", "available", "owner_id", "request_id").
		From(itemsTableName).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Item, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) SearchItems(ctx context.Context, text string) ([]model.Item, error) {
	pattern := fmt.Sprint("%", text, "%")
	q, args, err := qb.Select("id", "name", "description", "available", "owner_id", "request_id").
		From(itemsTableName).
		Where(sq.Eq{"available": true}).
		Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Item, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ItemsByRequest(ctx context.Context, requestID int64) ([]model.Item, error) {
	q, args, err := qb.Select("id", "name", "description", "available", "owner_id", "request_id").
		From(itemsTableName).
		Where(sq.Eq{"request_id": requestID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Item, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateComment(ctx context.Context, authorID, itemID int64, text string) (model.Comment, error) {
	q, args, err := qb.Insert(commentsTableName).
		Columns("text", "item_id", "author_id").
		Values(text, itemID, authorID).
		Suffix("returning id, text, item_id, author_id, created").
		ToSql()
	if err != nil {
		return model.Comment{}, err
	}
	var comment model.Comment
	if err := r.db.GetContext(ctx, &comment, q, args...); err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

func (r *repository) ListComments(ctx context.Context, itemID int64) ([]model.Comment, error) {
	q, args, err := qb.Select("c.id", "c.text", "c.item_id", "c.author_id", "u.name as author_name", "c.created").
		From(commentsTableName + " c").
		Join(fmt.Sprintf("%s u on u.id = c.author_id", usersTableName)).
		Where(sq.Eq{"c.item_id": itemID}).
		OrderBy("c.created desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	comments := make([]model.Comment, 0)
	if err := r.db.SelectContext(ctx, &comments, q, args...); err != nil {
		return nil, err
	}
	return comments, nil
}
