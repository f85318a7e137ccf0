package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/grbus/seatcore/internal/core/domain"
)

// TripRepository is the storage contract for trip seat-state. Seat
// mutation goes exclusively through LoadSeatState followed by
// CompareAndSwapSeatState conditioned on the loaded version; the
// repository must never expose a blind write path for seat sets.
type TripRepository interface {
	CreateTrip(ctx context.Context, trip *domain.Trip) error
	GetTrip(ctx context.Context, tripID uuid.UUID) (*domain.Trip, error)
	LoadTripMeta(ctx context.Context, tripID uuid.UUID) (domain.TripMeta, error)
	LoadSeatState(ctx context.Context, tripID uuid.UUID) (domain.SeatState, error)

	// CompareAndSwapSeatState writes next iff the stored version still
	// equals expectedVersion. It returns false (and no error) when the
	// version moved, so callers can reload and retry.
	CompareAndSwapSeatState(ctx context.Context, tripID uuid.UUID, expectedVersion int64, next domain.SeatState) (bool, error)
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) error
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, status domain.PaymentStatus, paymentRef string) error
	SetTicketRef(ctx context.Context, bookingID uuid.UUID, ticketRef string) error

	// ListStalePending returns confirmed bookings still pending payment
	// that were created before the cutoff.
	ListStalePending(ctx context.Context, before time.Time, limit int) ([]*domain.Booking, error)

	// ListCancelledSince returns bookings cancelled after the given
	// time, for idempotent seat-release repair.
	ListCancelledSince(ctx context.Context, since time.Time) ([]*domain.Booking, error)
}
