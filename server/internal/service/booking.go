package service

import (
	"context"

	"github.com/shareit-lab/shareit-service/server/internal/errs"
	"github.com/shareit-lab/shareit-service/server/internal/model"
)

// CreateBooking opens a booking in WAITING. Checks run in order:
// existence, authorization, business rules, so a failed call never
// leaves partial state behind.
func (s *Service) CreateBooking(ctx context.Context, bookerID int64, req model.CreateBookingRequest) (model.BookingView, error) {
	if _, err := s.repo.GetUser(ctx, bookerID); err != nil {
		return model.BookingView{}, err
	}
	item, err := s.repo.GetItem(ctx, req.ItemID)
	if err != nil {
		return model.BookingView{}, err
	}
	if !item.Available {
		return model.BookingView{}, errs.ErrItemUnavailable
	}
	if item.OwnerID == bookerID {
		return model.BookingView{}, errs.ErrOwnBooking
	}
	overlaps, err := s.repo.HasApprovedOverlap(ctx, req.ItemID, req.Start, req.End)
	if err != nil {
		return model.BookingView{}, err
	}
	if overlaps {
		return model.BookingView{}, errs.ErrBookingOverlap
	}

	booking, err := s.repo.CreateBooking(ctx, bookerID, req)
	if err != nil {
		return model.BookingView{}, err
	}
	s.pub.BookingStatusChanged(booking)
	return booking.View(), nil
}

// DecideBooking is the only transition out of WAITING: the owner either
// approves or rejects, once.
func (s *Service) DecideBooking(ctx context.Context, ownerID, bookingID int64, approved bool) (model.BookingView, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return model.BookingView{}, err
	}
	if booking.OwnerID != ownerID {
		return model.BookingView{}, errs.ErrAccessDenied
	}
	if booking.Status != model.StatusWaiting {
		return model.BookingView{}, errs.ErrAlreadyDecided
	}

	status := model.StatusRejected
	if approved {
		status = model.StatusApproved
	}
	decided, err := s.repo.DecideBooking(ctx, bookingID, status)
	if err != nil {
		return model.BookingView{}, err
	}
	s.pub.BookingStatusChanged(decided)
	return decided.View(), nil
}

// GetBooking is visible to the item owner and the booker only.
func (s *Service) GetBooking(ctx context.Context, callerID, bookingID int64) (model.BookingView, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return model.BookingView{}, err
	}
	if booking.OwnerID != callerID && booking.BookerID != callerID {
		return model.BookingView{}, errs.ErrAccessDenied
	}
	return booking.View(), nil
}

func (s *Service) ListBookingsByBooker(ctx context.Context, bookerID int64, state string) ([]model.BookingView, error) {
	st, err := model.ParseState(state)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetUser(ctx, bookerID); err != nil {
		return nil, err
	}
	bookings, err := s.repo.ListBookingsByBooker(ctx, bookerID, st, s.now())
	if err != nil {
		return nil, err
	}
	return model.BookingViews(bookings), nil
}

func (s *Service) ListBookingsByOwner(ctx context.Context, ownerID int64, state string) ([]model.BookingView, error) {
	st, err := model.ParseState(state)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}
	bookings, err := s.repo.ListBookingsByOwner(ctx, ownerID, st, s.now())
	if err != nil {
		return nil, err
	}
	return model.BookingViews(bookings), nil
}
