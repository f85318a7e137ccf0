package services

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/grbus/seatcore/internal/core/domain"
	"github.com/grbus/seatcore/internal/core/ports"
)

const defaultMaxRetries = 3

// SeatInventory owns the authoritative seat state for trips. All seat
// mutation funnels through Reserve and Release, which serialize at the
// storage layer via compare-and-swap on the trip's seat version.
type SeatInventory struct {
	trips      ports.TripRepository
	cache      ports.SnapshotCache
	maxRetries int
	log        *logrus.Logger
}

// NewSeatInventory builds a SeatInventory. cache may be nil; Snapshot
// then always reads storage directly. maxRetries <= 0 falls back to
// the default budget of 3 attempts.
func NewSeatInventory(trips ports.TripRepository, cache ports.SnapshotCache, maxRetries int, log *logrus.Logger) *SeatInventory {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &SeatInventory{
		trips:      trips,
		cache:      cache,
		maxRetries: maxRetries,
		log:        log,
	}
}

// Reserve atomically moves the given seat labels from the trip's
// available set to its booked set. Either every requested seat is
// reserved or none is; concurrent reservers racing for overlapping
// seats cannot both succeed.
func (s *SeatInventory) Reserve(ctx context.Context, tripID uuid.UUID, seats []string) (*domain.Reservation, error) {
	if err := validateSeatSelection(seats); err != nil {
		return nil, err
	}

	meta, err := s.trips.LoadTripMeta(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !meta.Status.Bookable() {
		return nil, domain.ErrTripNotBookable
	}

	bo := casBackoff()
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		state, err := s.trips.LoadSeatState(ctx, tripID)
		if err != nil {
			return nil, err
		}

		available := toSet(state.Available)
		var taken []string
		for _, seat := range seats {
			if !available[seat] {
				taken = append(taken, seat)
			}
		}
		if len(taken) > 0 {
			domain.SortSeatLabels(taken)
			return nil, &domain.SeatsUnavailableError{Seats: taken}
		}

		next := domain.SeatState{
			Available: subtract(state.Available, seats),
			Booked:    append(append([]string{}, state.Booked...), seats...),
			Version:   state.Version + 1,
		}

		ok, err := s.trips.CompareAndSwapSeatState(ctx, tripID, state.Version, next)
		if err != nil {
			return nil, err
		}
		if ok {
			s.invalidate(ctx, tripID)
			return &domain.Reservation{TripID: tripID, Seats: seats, Version: next.Version}, nil
		}

		s.log.WithFields(logrus.Fields{
			"trip_id": tripID,
			"attempt": attempt,
		}).Debug("seat reservation lost version race, retrying")

		if err := sleepBackoff(ctx, bo); err != nil {
			return nil, err
		}
	}

	return nil, domain.ErrConcurrentModification
}

// Release atomically returns the given seat labels to the trip's
// available set. It is idempotent per label: a label that is already
// available is left alone, but a label outside the trip's total seat
// set is an error.
func (s *SeatInventory) Release(ctx context.Context, tripID uuid.UUID, seats []string) error {
	if err := validateSeatSelection(seats); err != nil {
		return err
	}

	bo := casBackoff()
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		state, err := s.trips.LoadSeatState(ctx, tripID)
		if err != nil {
			return err
		}

		available := toSet(state.Available)
		booked := toSet(state.Booked)

		var unknown, toRelease []string
		for _, seat := range seats {
			switch {
			case booked[seat]:
				toRelease = append(toRelease, seat)
			case available[seat]:
				// already released, no-op for this label
			default:
				unknown = append(unknown, seat)
			}
		}
		if len(unknown) > 0 {
			domain.SortSeatLabels(unknown)
			return &domain.UnknownSeatError{Seats: unknown}
		}
		if len(toRelease) == 0 {
			return nil
		}

		next := domain.SeatState{
			Available: append(append([]string{}, state.Available...), toRelease...),
			Booked:    subtract(state.Booked, toRelease),
			Version:   state.Version + 1,
		}

		ok, err := s.trips.CompareAndSwapSeatState(ctx, tripID, state.Version, next)
		if err != nil {
			return err
		}
		if ok {
			s.invalidate(ctx, tripID)
			return nil
		}

		s.log.WithFields(logrus.Fields{
			"trip_id": tripID,
			"attempt": attempt,
		}).Debug("seat release lost version race, retrying")

		if err := sleepBackoff(ctx, bo); err != nil {
			return err
		}
	}

	return domain.ErrConcurrentModification
}

// Snapshot returns the trip's seat partition for display. The result
// may lag concurrent writes and must not be used as the basis for a
// subsequent Reserve.
func (s *SeatInventory) Snapshot(ctx context.Context, tripID uuid.UUID) (available, booked []string, totalSeats int, err error) {
	meta, err := s.trips.LoadTripMeta(ctx, tripID)
	if err != nil {
		return nil, nil, 0, err
	}

	if s.cache != nil {
		if state, hit, cerr := s.cache.GetSeatState(ctx, tripID); cerr == nil && hit {
			return sorted(state.Available), sorted(state.Booked), meta.TotalSeats, nil
		} else if cerr != nil {
			s.log.WithError(cerr).WithField("trip_id", tripID).Warn("seat snapshot cache read failed")
		}
	}

	state, err := s.trips.LoadSeatState(ctx, tripID)
	if err != nil {
		return nil, nil, 0, err
	}

	if s.cache != nil {
		if cerr := s.cache.SetSeatState(ctx, tripID, state); cerr != nil {
			s.log.WithError(cerr).WithField("trip_id", tripID).Warn("seat snapshot cache write failed")
		}
	}

	return sorted(state.Available), sorted(state.Booked), meta.TotalSeats, nil
}

func (s *SeatInventory) invalidate(ctx context.Context, tripID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, tripID); err != nil {
		s.log.WithError(err).WithField("trip_id", tripID).Warn("seat snapshot cache invalidation failed")
	}
}

func validateSeatSelection(seats []string) error {
	if len(seats) == 0 {
		return domain.ErrEmptySeatSelection
	}
	seen := make(map[string]bool, len(seats))
	for _, seat := range seats {
		if seen[seat] {
			return &domain.DuplicateSeatError{Seat: seat}
		}
		seen[seat] = true
	}
	return nil
}

func casBackoff() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 10 * time.Millisecond
	bo.MaxInterval = 100 * time.Millisecond
	bo.RandomizationFactor = 0.5
	return bo
}

func sleepBackoff(ctx context.Context, bo backoff.BackOff) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(bo.NextBackOff()):
		return nil
	}
}

func toSet(labels []string) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[l] = true
	}
	return set
}

func subtract(labels, remove []string) []string {
	drop := toSet(remove)
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if !drop[l] {
			out = append(out, l)
		}
	}
	return out
}

func sorted(labels []string) []string {
	out := append([]string{}, labels...)
	domain.SortSeatLabels(out)
	return out
}
