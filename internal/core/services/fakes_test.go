package services_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/grbus/seatcore/internal/core/domain"
)

// fakeTripRepo is an in-memory TripRepository with real
// compare-and-swap semantics, so concurrency behavior can be driven
// without a database. forcedConflicts makes the next N CAS attempts
// lose, simulating writers racing on other connections.
type fakeTripRepo struct {
	mu              sync.Mutex
	trips           map[uuid.UUID]*domain.Trip
	forcedConflicts int
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: make(map[uuid.UUID]*domain.Trip)}
}

func (r *fakeTripRepo) seedTrip(status domain.TripStatus, fare float64, seats ...string) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	r.trips[id] = &domain.Trip{
		ID:             id,
		Fare:           fare,
		Status:         status,
		TotalSeats:     len(seats),
		AvailableSeats: append([]string{}, seats...),
		BookedSeats:    []string{},
		SeatVersion:    1,
	}
	return id
}

func (r *fakeTripRepo) CreateTrip(_ context.Context, trip *domain.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *trip
	r.trips[trip.ID] = &copied
	return nil
}

func (r *fakeTripRepo) GetTrip(_ context.Context, tripID uuid.UUID) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip, ok := r.trips[tripID]
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	copied := *trip
	copied.AvailableSeats = append([]string{}, trip.AvailableSeats...)
	copied.BookedSeats = append([]string{}, trip.BookedSeats...)
	return &copied, nil
}

func (r *fakeTripRepo) LoadTripMeta(_ context.Context, tripID uuid.UUID) (domain.TripMeta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip, ok := r.trips[tripID]
	if !ok {
		return domain.TripMeta{}, domain.ErrTripNotFound
	}
	return domain.TripMeta{Fare: trip.Fare, Status: trip.Status, TotalSeats: trip.TotalSeats}, nil
}

func (r *fakeTripRepo) LoadSeatState(_ context.Context, tripID uuid.UUID) (domain.SeatState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip, ok := r.trips[tripID]
	if !ok {
		return domain.SeatState{}, domain.ErrTripNotFound
	}
	return domain.SeatState{
		Available: append([]string{}, trip.AvailableSeats...),
		Booked:    append([]string{}, trip.BookedSeats...),
		Version:   trip.SeatVersion,
	}, nil
}

func (r *fakeTripRepo) CompareAndSwapSeatState(_ context.Context, tripID uuid.UUID, expectedVersion int64, next domain.SeatState) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip, ok := r.trips[tripID]
	if !ok {
		return false, nil
	}
	if r.forcedConflicts > 0 {
		r.forcedConflicts--
		trip.SeatVersion++
		return false, nil
	}
	if trip.SeatVersion != expectedVersion {
		return false, nil
	}

	trip.AvailableSeats = append([]string{}, next.Available...)
	trip.BookedSeats = append([]string{}, next.Booked...)
	trip.SeatVersion++
	return true, nil
}

func (r *fakeTripRepo) seatState(tripID uuid.UUID) domain.SeatState {
	state, _ := r.LoadSeatState(context.Background(), tripID)
	return state
}
