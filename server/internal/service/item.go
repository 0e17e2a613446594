package service

import (
	"context"
	"strings"

	"github.com/shareit-lab/shareit-service/server/internal/errs"
	"github.com/shareit-lab/shareit-service/server/internal/model"
)

func (s *Service) CreateItem(ctx context.Context, ownerID int64, req model.CreateItemRequest) (model.Item, error) {
	if _, err := s.repo.GetUser(ctx, ownerID); err != nil {
		return model.Item{}, err
	}
	if req.RequestID != nil {
		if _, err := s.repo.GetRequest(ctx, *req.RequestID); err != nil {
			return model.Item{}, err
		}
	}
	return s.repo.CreateItem(ctx, ownerID, req)
}

func (s *Service) UpdateItem(ctx context.Context, callerID, itemID int64, req model.UpdateItemRequest) (model.Item, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return model.Item{}, err
	}
	if item.OwnerID != callerID {
		return model.Item{}, errs.ErrAccessDenied
	}
	// a patch with nothing set is a no-op, not an error
	if req == (model.UpdateItemRequest{}) {
		return item, nil
	}
	return s.repo.UpdateItem(ctx, itemID, req)
}

// GetItem enriches the item with comments; the owner additionally sees
// the last and next approved bookings.
func (s *Service) GetItem(ctx context.Context, callerID, itemID int64) (model.ItemView, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return model.ItemView{}, err
	}
	return s.itemView(ctx, item, item.OwnerID == callerID)
}

func (s *Service) ListItemsByOwner(ctx context.Context, ownerID int64) ([]model.ItemView, error) {
	items, err := s.repo.ListItemsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	views := make([]model.ItemView, 0, len(items))
	for _, item := range items {
		view, err := s.itemView(ctx, item, true)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *Service) itemView(ctx context.Context, item model.Item, asOwner bool) (model.ItemView, error) {
	view := model.ItemView{Item: item}

	if asOwner {
		now := s.now()
		last, err := s.repo.LastBooking(ctx, item.ID, now)
		if err != nil {
			return model.ItemView{}, err
		}
		next, err := s.repo.NextBooking(ctx, item.ID, now)
		if err != nil {
			return model.ItemView{}, err
		}
		view.LastBooking = last
		view.NextBooking = next
	}

	comments, err := s.repo.ListComments(ctx, item.ID)
	if err != nil {
		return model.ItemView{}, err
	}
	view.Comments = make([]model.CommentView, 0, len(comments))
	for _, c := range comments {
		view.Comments = append(view.Comments, c.View())
	}
	return view, nil
}

// SearchItems returns available items whose name or description contains
// the text, case-insensitively. Blank text means an empty result, not
// everything.
func (s *Service) SearchItems(ctx context.Context, text string) ([]model.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []model.Item{}, nil
	}
	return s.repo.SearchItems(ctx, text)
}

// AddComment requires the author to have a booking for the item that
// already ended.
func (s *Service) AddComment(ctx context.Context, authorID, itemID int64, req model.CreateCommentRequest) (model.CommentView, error) {
	author, err := s.repo.GetUser(ctx, authorID)
	if err != nil {
		return model.CommentView{}, err
	}
	if _, err := s.repo.GetItem(ctx, itemID); err != nil {
		return model.CommentView{}, err
	}
	ok, err := s.repo.HasPastBooking(ctx, authorID, itemID, s.now())
	if err != nil {
		return model.CommentView{}, err
	}
	if !ok {
		return model.CommentView{}, errs.ErrNoPastBooking
	}

	comment, err := s.repo.CreateComment(ctx, authorID, itemID, req.Text)
	if err != nil {
		return model.CommentView{}, err
	}
	comment.AuthorName = author.Name
	return comment.View(), nil
}
