package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shareit-lab/shareit-service/server/internal/errs"
	"github.com/shareit-lab/shareit-service/server/internal/model"
)

func TestService_CreateRequest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	s, repo := newTestService(t)
	repo.EXPECT().GetUser(ctx, int64(3)).Return(model.User{ID: 3}, nil)
	repo.EXPECT().CreateRequest(ctx, int64(3), "need a drill").
		Return(model.ItemRequest{ID: 11, Description: "need a drill", RequestorID: 3, Created: testNow}, nil)

	view, err := s.CreateRequest(ctx, 3, model.CreateItemRequestRequest{Description: "need a drill"})
	require.NoError(t, err)
	require.Equal(t, int64(11), view.ID)
	require.NotNil(t, view.Items)
	require.Empty(t, view.Items)
}

func TestService_GetOwnRequests(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	s, repo := newTestService(t)
	repo.EXPECT().GetUser(ctx, int64(3)).Return(model.User{ID: 3}, nil)
	repo.EXPECT().ListOwnRequests(ctx, int64(3)).
		Return([]model.ItemRequest{{ID: 11, Description: "need a drill", RequestorID: 3, Created: testNow}}, nil)
	repo.EXPECT().ItemsByRequest(ctx, int64(11)).
		Return([]model.Item{{ID: 2, Name: "drill", Available: true, OwnerID: 7}}, nil)

	views, err := s.GetOwnRequests(ctx, 3)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Items, 1)
	require.Equal(t, int64(2), views[0].Items[0].ID)
}

func TestService_GetOtherRequests(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("paging args reach repository unchanged", func(t *testing.T) {
		t.Parallel()
		s, repo := newTestService(t)
		repo.EXPECT().GetUser(ctx, int64(3)).Return(model.User{ID: 3}, nil)
		repo.EXPECT().ListOtherRequests(ctx, int64(3), 10, 5).Return([]model.ItemRequest{}, nil)

		views, err := s.GetOtherRequests(ctx, 3, 10, 5)
		require.NoError(t, err)
		require.Empty(t, views)
	})

	t.Run("unknown caller", func(t *testing.T) {
		t.Parallel()
		s, repo := newTestService(t)
		repo.EXPECT().GetUser(ctx, int64(99)).Return(model.User{}, errs.ErrUserNotFound)

		_, err := s.GetOtherRequests(ctx, 99, 0, 10)
		require.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestService_GetRequest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("ok. any known user may read", func(t *testing.T) {
		t.Parallel()
		s, repo := newTestService(t)
		repo.EXPECT().GetUser(ctx, int64(5)).Return(model.User{ID: 5}, nil)
		repo.EXPECT().GetRequest(ctx, int64(11)).
			Return(model.ItemRequest{ID: 11, Description: "need a drill", RequestorID: 3, Created: testNow}, nil)
		repo.EXPECT().ItemsByRequest(ctx, int64(11)).Return([]model.Item{}, nil)

		view, err := s.GetRequest(ctx, 5, 11)
		require.NoError(t, err)
		require.Equal(t, int64(11), view.ID)
	})

	t.Run("err. not found", func(t *testing.T) {
		t.Parallel()
		s, repo := newTestService(t)
		repo.EXPECT().GetUser(ctx, int64(5)).Return(model.User{ID: 5}, nil)
		repo.EXPECT().GetRequest(ctx, int64(99)).Return(model.ItemRequest{}, errs.ErrRequestNotFound)

		_, err := s.GetRequest(ctx, 5, 99)
		require.ErrorIs(t, err, errs.ErrRequestNotFound)
	})
}
