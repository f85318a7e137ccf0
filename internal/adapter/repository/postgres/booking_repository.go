package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/grbus/seatcore/internal/core/domain"
)

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `
	id, booking_id, user_id, trip_id, passenger_name, passenger_email,
	passenger_phone, seats, total_fare, payment_status, booking_status,
	payment_order_id, payment_ref, ticket_ref, created_at
`

func (r *BookingRepository) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	query := `
	INSERT INTO bookings (` + bookingColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.BookingID,
		booking.UserID,
		booking.TripID,
		booking.PassengerName,
		booking.PassengerEmail,
		booking.PassengerPhone,
		pq.Array(booking.Seats),
		booking.TotalFare,
		booking.PaymentStatus,
		booking.BookingStatus,
		booking.PaymentOrderID,
		booking.PaymentRef,
		booking.TicketRef,
		booking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := r.scanBooking(r.db.QueryRowContext(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

func (r *BookingRepository) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error {
	query := `
	UPDATE bookings
	SET booking_status = $1,
		cancelled_at = CASE WHEN $1 = 'cancelled' THEN NOW() ELSE cancelled_at END
	WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, bookingID)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, status domain.PaymentStatus, paymentRef string) error {
	query := `
	UPDATE bookings
	SET payment_status = $1,
		payment_ref = COALESCE(NULLIF($2, ''), payment_ref)
	WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, paymentRef, bookingID)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) SetTicketRef(ctx context.Context, bookingID uuid.UUID, ticketRef string) error {
	query := `UPDATE bookings SET ticket_ref = $1 WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, ticketRef, bookingID)
	if err != nil {
		return fmt.Errorf("failed to set ticket ref: %w", err)
	}

	return nil
}

func (r *BookingRepository) ListStalePending(ctx context.Context, before time.Time, limit int) ([]*domain.Booking, error) {
	query := `
	SELECT ` + bookingColumns + `
	FROM bookings
	WHERE booking_status = 'confirmed' AND payment_status = 'pending' AND created_at < $1
	ORDER BY created_at
	LIMIT $2
	`

	return r.queryBookings(ctx, query, before, limit)
}

func (r *BookingRepository) ListCancelledSince(ctx context.Context, since time.Time) ([]*domain.Booking, error) {
	query := `
	SELECT ` + bookingColumns + `
	FROM bookings
	WHERE booking_status = 'cancelled' AND cancelled_at >= $1
	ORDER BY cancelled_at
	`

	return r.queryBookings(ctx, query, since)
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *BookingRepository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var seats pq.StringArray
	var orderID, paymentRef, ticketRef sql.NullString

	err := row.Scan(
		&booking.ID,
		&booking.BookingID,
		&booking.UserID,
		&booking.TripID,
		&booking.PassengerName,
		&booking.PassengerEmail,
		&booking.PassengerPhone,
		&seats,
		&booking.TotalFare,
		&booking.PaymentStatus,
		&booking.BookingStatus,
		&orderID,
		&paymentRef,
		&ticketRef,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Seats = seats
	booking.PaymentOrderID = orderID.String
	booking.PaymentRef = paymentRef.String
	booking.TicketRef = ticketRef.String

	return &booking, nil
}
