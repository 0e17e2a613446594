package service

import (
	"context"

	"github.com/shareit-lab/shareit-service/server/internal/model"
)

func (s *Service) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	return s.repo.CreateUser(ctx, req)
}

func (s *Service) UpdateUser(ctx context.Context, userID int64, req model.UpdateUserRequest) (model.User, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.User{}, err
	}
	// a patch with nothing set is a no-op, not an error
	if req == (model.UpdateUserRequest{}) {
		return user, nil
	}
	return s.repo.UpdateUser(ctx, userID, req)
}

func (s *Service) GetUser(ctx context.Context, userID int64) (model.User, error) {
	return s.repo.GetUser(ctx, userID)
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) DeleteUser(ctx context.Context, userID int64) error {
	return s.repo.DeleteUser(ctx, userID)
}
