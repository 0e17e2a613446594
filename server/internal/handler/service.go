package handler

import (
	"context"

	"github.com/shareit-lab/shareit-service/server/internal/model"
	"github.com/shareit-lab/shareit-service/server/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type ShareItService interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	UpdateUser(ctx context.Context, userID int64, req model.UpdateUserRequest) (model.User, error)
	GetUser(ctx context.Context, userID int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, userID int64) error

	CreateItem(ctx context.Context, ownerID int64, req model.CreateItemRequest) (model.Item, error)
	UpdateItem(ctx context.Context, callerID, itemID int64, req model.UpdateItemRequest) (model.Item, error)
	GetItem(ctx context.Context, callerID, itemID int64) (model.ItemView, error)
	ListItemsByOwner(ctx context.Context, ownerID int64) ([]model.ItemView, error)
	SearchItems(ctx context.Context, text string) ([]model.Item, error)
	AddComment(ctx context.Context, authorID, itemID int64, req model.CreateCommentRequest) (model.CommentView, error)

	CreateBooking(ctx context.Context, bookerID int64, req model.CreateBookingRequest) (model.BookingView, error)
	DecideBooking(ctx context.Context, ownerID, bookingID int64, approved bool) (model.BookingView, error)
	GetBooking(ctx context.Context, callerID, bookingID int64) (model.BookingView, error)
	ListBookingsByBooker(ctx context.Context, bookerID int64, state string) ([]model.BookingView, error)
	ListBookingsByOwner(ctx context.Context, ownerID int64, state string) ([]model.BookingView, error)

	CreateRequest(ctx context.Context, requestorID int64, req model.CreateItemRequestRequest) (model.ItemRequestView, error)
	GetOwnRequests(ctx context.Context, requestorID int64) ([]model.ItemRequestView, error)
	GetOtherRequests(ctx context.Context, callerID int64, from, size int) ([]model.ItemRequestView, error)
	GetRequest(ctx context.Context, callerID, requestID int64) (model.ItemRequestView, error)
}

var _ ShareItService = (*service.Service)(nil)
