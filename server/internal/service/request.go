package service

import (
	"context"

	"github.com/shareit-lab/shareit-service/server/internal/model"
)

func (s *Service) CreateRequest(ctx context.Context, requestorID int64, req model.CreateItemRequestRequest) (model.ItemRequestView, error) {
	if _, err := s.repo.GetUser(ctx, requestorID); err != nil {
		return model.ItemRequestView{}, err
	}
	created, err := s.repo.CreateRequest(ctx, requestorID, req.Description)
	if err != nil {
		return model.ItemRequestView{}, err
	}
	return model.ItemRequestView{ItemRequest: created, Items: []model.Item{}}, nil
}

func (s *Service) GetOwnRequests(ctx context.Context, requestorID int64) ([]model.ItemRequestView, error) {
	if _, err := s.repo.GetUser(ctx, requestorID); err != nil {
		return nil, err
	}
	reqs, err := s.repo.ListOwnRequests(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	return s.requestViews(ctx, reqs)
}

// GetOtherRequests pages through requests made by everyone but the
// caller, newest first.
func (s *Service) GetOtherRequests(ctx context.Context, callerID int64, from, size int) ([]model.ItemRequestView, error) {
	if _, err := s.repo.GetUser(ctx, callerID); err != nil {
		return nil, err
	}
	reqs, err := s.repo.ListOtherRequests(ctx, callerID, from, size)
	if err != nil {
		return nil, err
	}
	return s.requestViews(ctx, reqs)
}

func (s *Service) GetRequest(ctx context.Context, callerID, requestID int64) (model.ItemRequestView, error) {
	if _, err := s.repo.GetUser(ctx, callerID); err != nil {
		return model.ItemRequestView{}, err
	}
	req, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return model.ItemRequestView{}, err
	}
	views, err := s.requestViews(ctx, []model.ItemRequest{req})
	if err != nil {
		return model.ItemRequestView{}, err
	}
	return views[0], nil
}

// requestViews annotates each request with the items created to fulfill
// it, discovered by the item's back-reference.
func (s *Service) requestViews(ctx context.Context, reqs []model.ItemRequest) ([]model.ItemRequestView, error) {
	views := make([]model.ItemRequestView, 0, len(reqs))
	for _, req := range reqs {
		items, err := s.repo.ItemsByRequest(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, model.ItemRequestView{ItemRequest: req, Items: items})
	}
	return views, nil
}
