package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shareit-lab/shareit-service/server/internal/errs"
	"github.com/shareit-lab/shareit-service/server/internal/model"
)

func TestService_SearchItems(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("blank text short-circuits to empty", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestService(t)

		items, err := s.SearchItems(ctx, "   ")
		require.NoError(t, err)
		require.NotNil(t, items)
		require.Empty(t, items)
	})

	t.Run("text goes to repository", func(t *testing.T) {
		t.Parallel()
		s, repo := newTestService(t)
		repo.EXPECT().SearchItems(ctx, "drill").
			Return([]model.Item{{ID: 2, Name: "drill", Available: true, OwnerID: 7}}, nil)

		items, err := s.SearchItems(ctx, "drill")
		require.NoError(t, err)
		require.Len(t, items, 1)
	})
}

func TestService_AddComment(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		req = model.CreateCommentRequest{Text: "worked great"}
	)

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		s, repo := newTestService(t)
		repo.EXPECT().GetUser(ctx, int64(3)).Return(model.User{ID: 3, Name: "alice"}, nil)
		repo.EXPECT().GetItem(ctx, int64(2)).Return(model.Item{ID: 2, OwnerID: 7}, nil)
		repo.EXPECT().HasPastBooking(ctx, int64(3), int64(2), testNow).Return(true, nil)
		repo.EXPECT().CreateComment(ctx, int64(3), int64(2), "worked great").
			Return(model.Comment{ID: 1, Text: "worked great", ItemID: 2, AuthorID: 3, Created: testNow}, nil)

		view, err := s.AddComment(ctx, 3, 2, req)
		require.NoError(t, err)
		require.Equal(t, "alice", view.AuthorName)
		require.Equal(t, "worked great", view.Text)
	})

	t.Run("err. never completed a booking", func(t *testing.T) {
		t.Parallel()
		s, repo := newTestService(t)
		repo.EXPECT().GetUser(ctx, int64(3)).Return(model.User{ID: 3, Name: "alice"}, nil)
		repo.EXPECT().GetItem(ctx, int64(2)).Return(model.Item{ID: 2, OwnerID: 7}, nil)
		repo.EXPECT().HasPastBooking(ctx, int64(3), int64(2), testNow).Return(false, nil)

		_, err := s.AddComment(ctx, 3, 2, req)
		require.ErrorIs(t, err, errs.ErrNoPastBooking)
	})

	t.Run("err. unknown item", func(t *testing.T) {
		t.Parallel()
		s, repo := newTestService(t)
		repo.EXPECT().GetUser(ctx, int64(3)).Return(model.User{ID: 3}, nil)
		repo.EXPECT().GetItem(ctx, int64(99)).Return(model.Item{}, errs.ErrItemNotFound)

		_, err := s.AddComment(ctx, 3, 99, req)
		require.ErrorIs(t, err, errs.ErrItemNotFound)
	})
}

func TestService_GetItem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	item := model.Item{ID: 2, Name: "drill", Available: true, OwnerID: 7}

	t.Run("owner sees last and next bookings", func(t *testing.T) {
		t.Parallel()
		s, repo := newTestService(t)
		last := &model.BookingShort{ID: 1, BookerID: 3, Start: testNow.Add(-48 * time.Hour), End: testNow.Add(-24 * time.Hour)}
		next := &model.BookingShort{ID: 4, BookerID: 5, Start: testNow.Add(24 * time.Hour), End: testNow.Add(48 * time.Hour)}

		repo.EXPECT().GetItem(ctx, int64(2)).Return(item, nil)
		repo.EXPECT().LastBooking(ctx, int64(2), testNow).Return(last, nil)
		repo.EXPECT().NextBooking(ctx, int64(2), testNow).Return(next, nil)
		repo.EXPECT().ListComments(ctx, int64(2)).Return([]model.Comment{}, nil)

		view, err := s.GetItem(ctx, 7, 2)
		require.NoError(t, err)
		require.Equal(t, last, view.LastBooking)
		require.Equal(t, next, view.NextBooking)
	})

	t.Run("non-owner gets no booking attachments", func(t *testing.T) {
		t.Parallel()
		s, repo := newTestService(t)
		repo.EXPECT().GetItem(ctx, int64(2)).Return(item, nil)
		repo.EXPECT().ListComments(ctx, int64(2)).
			Return([]model.Comment{
				{ID: 1, Text: "worked great", ItemID: 2, AuthorID: 3, AuthorName: "alice", Created: testNow},
			}, nil)

		view, err := s.GetItem(ctx, 3, 2)
		require.NoError(t, err)
		require.Nil(t, view.LastBooking)
		require.Nil(t, view.NextBooking)
		require.Len(t, view.Comments, 1)
		require.Equal(t, "alice", view.Comments[0].AuthorName)
	})
}

func TestService_UpdateItem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	name := "hammer drill"

	t.Run("only the owner may patch", func(t *testing.T) {
		t.Parallel()
		s, repo := newTestService(t)
		repo.EXPECT().GetItem(ctx, int64(2)).Return(model.Item{ID: 2, OwnerID: 7}, nil)

		_, err := s.UpdateItem(ctx, 3, 2, model.UpdateItemRequest{Name: &name})
		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		s, repo := newTestService(t)
		req := model.UpdateItemRequest{Name: &name}
		repo.EXPECT().GetItem(ctx, int64(2)).Return(model.Item{ID: 2, Name: "drill", OwnerID: 7}, nil)
		repo.EXPECT().UpdateItem(ctx, int64(2), req).
			Return(model.Item{ID: 2, Name: name, OwnerID: 7}, nil)

		item, err := s.UpdateItem(ctx, 7, 2, req)
		require.NoError(t, err)
		require.Equal(t, name, item.Name)
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		t.Parallel()
		s, repo := newTestService(t)
		current := model.Item{ID: 2, Name: "drill", Description: "cordless", Available: true, OwnerID: 7}
		repo.EXPECT().GetItem(ctx, int64(2)).Return(current, nil)

		item, err := s.UpdateItem(ctx, 7, 2, model.UpdateItemRequest{})
		require.NoError(t, err)
		require.Equal(t, current, item)
	})
}

func TestService_CreateItem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	available := true

	t.Run("request back-reference must exist", func(t *testing.T) {
		t.Parallel()
		s, repo := newTestService(t)
		reqID := int64(11)
		repo.EXPECT().GetUser(ctx, int64(7)).Return(model.User{ID: 7}, nil)
		repo.EXPECT().GetRequest(ctx, int64(11)).Return(model.ItemRequest{}, errs.ErrRequestNotFound)

		_, err := s.CreateItem(ctx, 7, model.CreateItemRequest{
			Name: "drill", Description: "cordless", Available: &available, RequestID: &reqID,
		})
		require.ErrorIs(t, err, errs.ErrRequestNotFound)
	})

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		s, repo := newTestService(t)
		req := model.CreateItemRequest{Name: "drill", Description: "cordless", Available: &available}
		repo.EXPECT().GetUser(ctx, int64(7)).Return(model.User{ID: 7}, nil)
		repo.EXPECT().CreateItem(ctx, int64(7), req).
			Return(model.Item{ID: 2, Name: "drill", Description: "cordless", Available: true, OwnerID: 7}, nil)

		item, err := s.CreateItem(ctx, 7, req)
		require.NoError(t, err)
		require.Equal(t, int64(2), item.ID)
	})
}
