package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTripNotFound           = errors.New("trip not found")
	ErrTripNotBookable        = errors.New("trip is not open for booking")
	ErrConcurrentModification = errors.New("seat state was modified concurrently, retry the operation")

	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrNotOwner         = errors.New("booking belongs to another user")

	ErrEmptySeatSelection = errors.New("no seats selected")
	ErrInvalidID          = errors.New("invalid id")

	ErrMissingPassengerName  = errors.New("passenger name is required")
	ErrInvalidPassengerEmail = errors.New("passenger email is invalid")
	ErrInvalidPassengerPhone = errors.New("passenger phone is invalid")
)

// SeatsUnavailableError reports exactly which requested seats were not
// free, so the caller can re-render seat selection without losing the
// rest of the request.
type SeatsUnavailableError struct {
	Seats []string
}

func (e *SeatsUnavailableError) Error() string {
	return fmt.Sprintf("seats %s are not available", strings.Join(e.Seats, ", "))
}

// UnknownSeatError reports labels that are not part of the trip's seat
// set at all.
type UnknownSeatError struct {
	Seats []string
}

func (e *UnknownSeatError) Error() string {
	return fmt.Sprintf("seats %s do not exist on this trip", strings.Join(e.Seats, ", "))
}

// DuplicateSeatError reports a label that appears more than once in a
// request.
type DuplicateSeatError struct {
	Seat string
}

func (e *DuplicateSeatError) Error() string {
	return fmt.Sprintf("seat %s is selected more than once", e.Seat)
}
