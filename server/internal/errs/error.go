package errs

import (
	"errors"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("request not found")

	ErrAccessDenied = errors.New("access denied")
	ErrOwnBooking   = errors.New("owner cannot book own item")

	ErrItemUnavailable = errors.New("item not available")
	ErrUnknownState    = errors.New("unknown state")
	ErrNoPastBooking   = errors.New("no completed booking for this item")

	ErrEmailExists    = errors.New("email already in use")
	ErrAlreadyDecided = errors.New("booking already decided")
	ErrBookingOverlap = errors.New("item already booked for this period")
)
