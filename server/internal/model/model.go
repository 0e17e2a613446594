package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shareit-lab/shareit-service/server/internal/errs"
)

type User struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

type Item struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Available   bool   `json:"available" db:"available"`
	OwnerID     int64  `json:"ownerId" db:"owner_id"`
	RequestID   *int64 `json:"requestId,omitempty" db:"request_id"`
}

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// Booking is the flat row shape: item name and owner id are joined in
// by the repository so access checks need no extra lookups.
type Booking struct {
	ID       int64         `db:"id"`
	Start    time.Time     `db:"start_date"`
	End      time.Time     `db:"end_date"`
	Status   BookingStatus `db:"status"`
	ItemID   int64         `db:"item_id"`
	ItemName string        `db:"item_name"`
	OwnerID  int64         `db:"owner_id"`
	BookerID int64         `db:"booker_id"`
}

type ItemShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UserShort struct {
	ID int64 `json:"id"`
}

type BookingView struct {
	ID     int64         `json:"id"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Status BookingStatus `json:"status"`
	Item   ItemShort     `json:"item"`
	Booker UserShort     `json:"booker"`
}

func (b Booking) View() BookingView {
	return BookingView{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
		Item:   ItemShort{ID: b.ItemID, Name: b.ItemName},
		Booker: UserShort{ID: b.BookerID},
	}
}

func BookingViews(bookings []Booking) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, b.View())
	}
	return views
}

// BookingShort is the owner-facing last/next booking attachment on an item.
type BookingShort struct {
	ID       int64     `json:"id" db:"id"`
	BookerID int64     `json:"bookerId" db:"booker_id"`
	Start    time.Time `json:"start" db:"start_date"`
	End      time.Time `json:"end" db:"end_date"`
}

type Comment struct {
	ID         int64     `db:"id"`
	Text       string    `db:"text"`
	ItemID     int64     `db:"item_id"`
	AuthorID   int64     `db:"author_id"`
	AuthorName string    `db:"author_name"`
	Created    time.Time `db:"created"`
}

type CommentView struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func (c Comment) View() CommentView {
	return CommentView{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    c.Created,
	}
}

type ItemView struct {
	Item
	LastBooking *BookingShort `json:"lastBooking"`
	NextBooking *BookingShort `json:"nextBooking"`
	Comments    []CommentView `json:"comments"`
}

type ItemRequest struct {
	ID          int64     `json:"id" db:"id"`
	Description string    `json:"description" db:"description"`
	RequestorID int64     `json:"-" db:"requestor_id"`
	Created     time.Time `json:"created" db:"created"`
}

type ItemRequestView struct {
	ItemRequest
	Items []Item `json:"items"`
}

// State is a time-relative booking query bucket.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState matches case-insensitively; the empty string means ALL.
func ParseState(s string) (State, error) {
	if s == "" {
		return StateAll, nil
	}
	switch st := State(strings.ToUpper(s)); st {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrUnknownState, s)
	}
}

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId"`
}

// UpdateItemRequest is a partial patch: nil means leave unchanged.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" validate:"required"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type CreateItemRequestRequest struct {
	Description string `json:"description" validate:"required"`
}
