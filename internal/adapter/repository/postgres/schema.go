package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS trips (
	id UUID PRIMARY KEY,
	route_id UUID NOT NULL,
	bus_id UUID NOT NULL,
	date TIMESTAMPTZ NOT NULL,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	fare NUMERIC NOT NULL,
	status TEXT NOT NULL DEFAULT 'scheduled',
	total_seats INT NOT NULL,
	available_seats TEXT[] NOT NULL DEFAULT '{}',
	booked_seats TEXT[] NOT NULL DEFAULT '{}',
	seat_version BIGINT NOT NULL DEFAULT 1,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_trips_date_route ON trips (date, route_id);

CREATE TABLE IF NOT EXISTS bookings (
	id UUID PRIMARY KEY,
	booking_id TEXT NOT NULL UNIQUE,
	user_id UUID NOT NULL,
	trip_id UUID NOT NULL REFERENCES trips (id),
	passenger_name TEXT NOT NULL,
	passenger_email TEXT NOT NULL,
	passenger_phone TEXT NOT NULL,
	seats TEXT[] NOT NULL,
	total_fare NUMERIC NOT NULL,
	payment_status TEXT NOT NULL DEFAULT 'pending',
	booking_status TEXT NOT NULL DEFAULT 'confirmed',
	payment_order_id TEXT,
	payment_ref TEXT,
	ticket_ref TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	cancelled_at TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_bookings_user_created ON bookings (user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_bookings_trip ON bookings (trip_id);
CREATE INDEX IF NOT EXISTS idx_bookings_pending ON bookings (created_at) WHERE booking_status = 'confirmed' AND payment_status = 'pending';
`

// InitSchema creates the tables and indexes if they do not exist yet.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}
