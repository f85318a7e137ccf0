package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/grbus/seatcore/internal/core/domain"
)

// TripRepository persists trips with their seat partition. Seat sets
// live in text[] columns guarded by the seat_version column; every
// seat write is conditioned on the version the caller read.
type TripRepository struct {
	db *sqlx.DB
}

func NewTripRepository(db *sqlx.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) CreateTrip(ctx context.Context, trip *domain.Trip) error {
	query := `
	INSERT INTO trips (
		id, route_id, bus_id, date, start_time, end_time, fare, status,
		total_seats, available_seats, booked_seats, seat_version, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(ctx, query,
		trip.ID,
		trip.RouteID,
		trip.BusID,
		trip.Date,
		trip.StartTime,
		trip.EndTime,
		trip.Fare,
		trip.Status,
		trip.TotalSeats,
		pq.Array(trip.AvailableSeats),
		pq.Array(trip.BookedSeats),
		trip.SeatVersion,
		trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	return nil
}

func (r *TripRepository) GetTrip(ctx context.Context, tripID uuid.UUID) (*domain.Trip, error) {
	query := `
	SELECT id, route_id, bus_id, date, start_time, end_time, fare, status,
		total_seats, available_seats, booked_seats, seat_version, created_at
	FROM trips
	WHERE id = $1
	`

	var trip domain.Trip
	var available, booked pq.StringArray

	err := r.db.QueryRowContext(ctx, query, tripID).Scan(
		&trip.ID,
		&trip.RouteID,
		&trip.BusID,
		&trip.Date,
		&trip.StartTime,
		&trip.EndTime,
		&trip.Fare,
		&trip.Status,
		&trip.TotalSeats,
		&available,
		&booked,
		&trip.SeatVersion,
		&trip.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	trip.AvailableSeats = available
	trip.BookedSeats = booked

	return &trip, nil
}

func (r *TripRepository) LoadTripMeta(ctx context.Context, tripID uuid.UUID) (domain.TripMeta, error) {
	query := `SELECT fare, status, total_seats FROM trips WHERE id = $1`

	var meta domain.TripMeta
	err := r.db.QueryRowContext(ctx, query, tripID).Scan(&meta.Fare, &meta.Status, &meta.TotalSeats)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.TripMeta{}, domain.ErrTripNotFound
		}
		return domain.TripMeta{}, fmt.Errorf("failed to load trip meta: %w", err)
	}

	return meta, nil
}

func (r *TripRepository) LoadSeatState(ctx context.Context, tripID uuid.UUID) (domain.SeatState, error) {
	query := `SELECT available_seats, booked_seats, seat_version FROM trips WHERE id = $1`

	var available, booked pq.StringArray
	var version int64

	err := r.db.QueryRowContext(ctx, query, tripID).Scan(&available, &booked, &version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SeatState{}, domain.ErrTripNotFound
		}
		return domain.SeatState{}, fmt.Errorf("failed to load seat state: %w", err)
	}

	return domain.SeatState{
		Available: available,
		Booked:    booked,
		Version:   version,
	}, nil
}

// CompareAndSwapSeatState writes the new seat partition iff the stored
// version is still expectedVersion. Zero rows affected means another
// writer won the race; the caller reloads and retries.
func (r *TripRepository) CompareAndSwapSeatState(ctx context.Context, tripID uuid.UUID, expectedVersion int64, next domain.SeatState) (bool, error) {
	query := `
	UPDATE trips
	SET available_seats = $1,
		booked_seats = $2,
		seat_version = seat_version + 1
	WHERE id = $3 AND seat_version = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		pq.Array(next.Available),
		pq.Array(next.Booked),
		tripID,
		expectedVersion,
	)
	if err != nil {
		return false, fmt.Errorf("failed to swap seat state: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}
