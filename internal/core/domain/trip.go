package domain

import (
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type TripStatus string

const (
	TripScheduled  TripStatus = "scheduled"
	TripInProgress TripStatus = "in-progress"
	TripCompleted  TripStatus = "completed"
	TripCancelled  TripStatus = "cancelled"
)

// Bookable reports whether seat mutation is still allowed for a trip
// in this status.
func (s TripStatus) Bookable() bool {
	return s == TripScheduled || s == TripInProgress
}

type Trip struct {
	ID             uuid.UUID
	RouteID        uuid.UUID
	BusID          uuid.UUID
	Date           time.Time
	StartTime      string
	EndTime        string
	Fare           float64
	Status         TripStatus
	TotalSeats     int
	AvailableSeats []string
	BookedSeats    []string
	SeatVersion    int64
	CreatedAt      time.Time
}

// TripMeta is the subset of trip attributes the booking core needs
// outside of seat state.
type TripMeta struct {
	Fare       float64
	Status     TripStatus
	TotalSeats int
}

// SeatState is the atomic unit of seat mutation: the full
// available/booked partition of a trip's seats plus the version the
// compare-and-swap write is conditioned on.
type SeatState struct {
	Available []string
	Booked    []string
	Version   int64
}

// Reservation confirms a successful Reserve and records the version
// the winning write produced.
type Reservation struct {
	TripID  uuid.UUID
	Seats   []string
	Version int64
}

// GenerateSeatLabels produces the seat labels for a bus with the given
// capacity: "1".."totalSeats".
func GenerateSeatLabels(totalSeats int) []string {
	labels := make([]string, 0, totalSeats)
	for i := 1; i <= totalSeats; i++ {
		labels = append(labels, strconv.Itoa(i))
	}
	return labels
}

// SortSeatLabels orders seat labels numerically for display. Labels
// that are not numeric sort after numeric ones, lexicographically.
func SortSeatLabels(labels []string) {
	sort.Slice(labels, func(i, j int) bool {
		a, aerr := strconv.Atoi(labels[i])
		b, berr := strconv.Atoi(labels[j])
		if aerr == nil && berr == nil {
			return a < b
		}
		if aerr == nil {
			return true
		}
		if berr == nil {
			return false
		}
		return labels[i] < labels[j]
	})
}
