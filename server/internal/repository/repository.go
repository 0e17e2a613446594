package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/shareit-lab/shareit-service/server/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	UpdateUser(ctx context.Context, userID int64, req model.UpdateUserRequest) (model.User, error)
	GetUser(ctx context.Context, userID int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, userID int64) error

	CreateItem(ctx context.Context, ownerID int64, req model.CreateItemRequest) (model.Item, error)
	UpdateItem(ctx context.Context, itemID int64, req model.UpdateItemRequest) (model.Item, error)
	GetItem(ctx context.Context, itemID int64) (model.Item, error)
	ListItemsByOwner(ctx context.Context, ownerID int64) ([]model.Item, error)
	SearchItems(ctx context.Context, text string) ([]model.Item, error)
	ItemsByRequest(ctx context.Context, requestID int64) ([]model.Item, error)

	CreateBooking(ctx context.Context, bookerID int64, req model.CreateBookingRequest) (model.Booking, error)
	DecideBooking(ctx context.Context, bookingID int64, status model.BookingStatus) (model.Booking, error)
	GetBooking(ctx context.Context, bookingID int64) (model.Booking, error)
	ListBookingsByBooker(ctx context.Context, bookerID int64, state model.State, now time.Time) ([]model.Booking, error)
	ListBookingsByOwner(ctx context.Context, ownerID int64, state model.State, now time.Time) ([]model.Booking, error)
	LastBooking(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error)
	NextBooking(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error)
	HasPastBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
	HasApprovedOverlap(ctx context.Context, itemID int64, start, end time.Time) (bool, error)

	CreateComment(ctx context.Context, authorID, itemID int64, text string) (model.Comment, error)
	ListComments(ctx context.Context, itemID int64) ([]model.Comment, error)

	CreateRequest(ctx context.Context, requestorID int64, description string) (model.ItemRequest, error)
	ListOwnRequests(ctx context.Context, requestorID int64) ([]model.ItemRequest, error)
	ListOtherRequests(ctx context.Context, requestorID int64, from, size int) ([]model.ItemRequest, error)
	GetRequest(ctx context.Context, requestID int64) (model.ItemRequest, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName    = `users`
	itemsTableName    = `items`
	bookingsTableName = `bookings`
	commentsTableName = `comments`
	requestsTableName = `requests`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
