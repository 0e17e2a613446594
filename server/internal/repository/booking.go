package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/shareit-lab/shareit-service/server/internal/errs"
	"github.com/shareit-lab/shareit-service/server/internal/model"
)

// bookingSelect joins the item in so every booking row carries the item
// name and owner id needed for access checks and response shaping.
func bookingSelect() sq.SelectBuilder {
	return qb.Select(
		"b.id", "b.start_date", "b.end_date", "b.status",
		"b.item_id", "i.name as item_name", "i.owner_id", "b.booker_id").
		From(bookingsTableName + " b").
		Join(fmt.Sprintf("%s i on i.id = b.item_id", itemsTableName))
}

func (r *repository) CreateBooking(ctx context.Context, bookerID int64, req model.CreateBookingRequest) (model.Booking, error) {
	q, args, err := qb.Insert(bookingsTableName).
		Columns("start_date", "end_date", "item_id", "booker_id", "status").
		Values(req.Start, req.End, req.ItemID, bookerID, model.StatusWaiting).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var id int64
	if err := r.db.GetContext(ctx, &id, q, args...); err != nil {
		r.log.Error("CreateBooking", zap.String("q", q), zap.Any("args", args))
		return model.Booking{}, err
	}
	return r.GetBooking(ctx, id)
}

// DecideBooking is a conditional update: only a WAITING booking can be
// decided, so two concurrent deciders cannot both win.
func (r *repository) DecideBooking(ctx context.Context, bookingID int64, status model.BookingStatus) (model.Booking, error) {
	q, args, err := qb.Update(bookingsTableName).
		Set("status", status).
		Where(sq.Eq{"id": bookingID, "status": model.StatusWaiting}).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var id int64
	if err := r.db.GetContext(ctx, &id, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrAlreadyDecided
		}
		return model.Booking{}, err
	}
	return r.GetBooking(ctx, id)
}

func (r *repository) GetBooking(ctx context.Context, bookingID int64) (model.Booking, error) {
	q, args, err := bookingSelect().
		Where(sq.Eq{"b.id": bookingID}).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var booking model.Booking
	if err := r.db.GetContext(ctx, &booking, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrBookingNotFound
		}
		return model.Booking{}, err
	}
	return booking, nil
}

func stateFilter(q sq.SelectBuilder, state model.State, now time.Time) sq.SelectBuilder {
	switch state {
	case model.StateCurrent:
		q = q.Where(sq.LtOrEq{"b.start_date": now}).Where(sq.GtOrEq{"b.end_date": now})
	case model.StatePast:
		q = q.Where(sq.Lt{"b.end_date": now})
	case model.StateFuture:
		q = q.Where(sq.Gt{"b.start_date": now})
	case model.StateWaiting:
		q = q.Where(sq.Eq{"b.status": model.StatusWaiting})
	case model.StateRejected:
		q = q.Where(sq.Eq{"b.status": model.StatusRejected})
	}
	return q
}

// bookingsByBookerQuery and bookingsByOwnerQuery carry the full bucket
// semantics: the state predicate plus start-descending order.
func bookingsByBookerQuery(bookerID int64, state model.State, now time.Time) sq.SelectBuilder {
	return stateFilter(bookingSelect().Where(sq.Eq{"b.booker_id": bookerID}), state, now).
		OrderBy("b.start_date desc")
}

func bookingsByOwnerQuery(ownerID int64, state model.State, now time.Time) sq.SelectBuilder {
	return stateFilter(bookingSelect().Where(sq.Eq{"i.owner_id": ownerID}), state, now).
		OrderBy("b.start_date desc")
}

func (r *repository) listBookings(ctx context.Context, q sq.SelectBuilder) ([]model.Booking, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	bookings := make([]model.Booking, 0)
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) ListBookingsByBooker(ctx context.Context, bookerID int64, state model.State, now time.Time) ([]model.Booking, error) {
	return r.listBookings(ctx, bookingsByBookerQuery(bookerID, state, now))
}

func (r *repository) ListBookingsByOwner(ctx context.Context, ownerID int64, state model.State, now time.Time) ([]model.Booking, error) {
	return r.listBookings(ctx, bookingsByOwnerQuery(ownerID, state, now))
}

// last/next lookups consider approved bookings only.
func lastBookingQuery(itemID int64, now time.Time) sq.SelectBuilder {
	return qb.Select("id", "booker_id", "start_date", "end_date").
		From(bookingsTableName).
		Where(sq.Eq{"item_id": itemID, "status": model.StatusApproved}).
		Where(sq.Lt{"end_date": now}).
		OrderBy("end_date desc").
		Limit(1)
}

func nextBookingQuery(itemID int64, now time.Time) sq.SelectBuilder {
	return qb.Select("id", "booker_id", "start_date", "end_date").
		From(bookingsTableName).
		Where(sq.Eq{"item_id": itemID, "status": model.StatusApproved}).
		Where(sq.Gt{"start_date": now}).
		OrderBy("start_date asc").
		Limit(1)
}

// LastBooking returns the most recent approved booking that ended before
// now, or nil when the item has none.
func (r *repository) LastBooking(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error) {
	q, args, err := lastBookingQuery(itemID, now).ToSql()
	if err != nil {
		return nil, err
	}
	var short model.BookingShort
	if err := r.db.GetContext(ctx, &short, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &short, nil
}

// NextBooking returns the earliest approved booking starting after now.
func (r *repository) NextBooking(ctx context.Context, itemID int64, now time.Time) (*model.BookingShort, error) {
	q, args, err := nextBookingQuery(itemID, now).ToSql()
	if err != nil {
		return nil, err
	}
	var short model.BookingShort
	if err := r.db.GetContext(ctx, &short, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &short, nil
}

// the comment gate is status-blind: any booking that already ended
// qualifies, approved or not.
const hasPastBookingQuery = `
	select exists(
		select 1 from bookings
		where booker_id = $1 and item_id = $2 and end_date < $3
	)`

// inclusive on both bounds: touching periods count as overlap.
const hasApprovedOverlapQuery = `
	select exists(
		select 1 from bookings
		where item_id = $1 and status = 'APPROVED'
		  and start_date <= $3 and end_date >= $2
	)`

func (r *repository) HasPastBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, hasPastBookingQuery, bookerID, itemID, now).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *repository) HasApprovedOverlap(ctx context.Context, itemID int64, start, end time.Time) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, hasApprovedOverlapQuery, itemID, start, end).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
