package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/grbus/seatcore/internal/core/domain"
	"github.com/grbus/seatcore/internal/core/ports"
)

type ScheduleTripRequest struct {
	RouteID    string  `json:"route_id"`
	BusID      string  `json:"bus_id"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Fare       float64 `json:"fare"`
	TotalSeats int     `json:"total_seats"`
}

type ScheduleTripResponse struct {
	TripID         string   `json:"trip_id"`
	AvailableSeats []string `json:"available_seats"`
	Status         string   `json:"status"`
}

// TripService handles trip scheduling. A new trip starts with every
// seat available and an empty booked set.
type TripService struct {
	trips ports.TripRepository
	log   *logrus.Logger
}

func NewTripService(trips ports.TripRepository, log *logrus.Logger) *TripService {
	return &TripService{trips: trips, log: log}
}

func (s *TripService) ScheduleTrip(ctx context.Context, req ScheduleTripRequest) (*ScheduleTripResponse, error) {
	routeID, err := uuid.Parse(req.RouteID)
	if err != nil {
		return nil, fmt.Errorf("%w: route id %q", domain.ErrInvalidID, req.RouteID)
	}
	busID, err := uuid.Parse(req.BusID)
	if err != nil {
		return nil, fmt.Errorf("%w: bus id %q", domain.ErrInvalidID, req.BusID)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}
	if req.Fare <= 0 {
		return nil, errors.New("fare must be positive")
	}
	if req.TotalSeats <= 0 {
		return nil, errors.New("total seats must be positive")
	}
	if req.StartTime == "" || req.EndTime == "" {
		return nil, errors.New("start and end time are required")
	}

	trip := &domain.Trip{
		ID:             uuid.New(),
		RouteID:        routeID,
		BusID:          busID,
		Date:           date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Fare:           req.Fare,
		Status:         domain.TripScheduled,
		TotalSeats:     req.TotalSeats,
		AvailableSeats: domain.GenerateSeatLabels(req.TotalSeats),
		BookedSeats:    []string{},
		SeatVersion:    1,
		CreatedAt:      time.Now(),
	}

	if err := s.trips.CreateTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"trip_id":     trip.ID,
		"total_seats": trip.TotalSeats,
	}).Info("trip scheduled")

	return &ScheduleTripResponse{
		TripID:         trip.ID.String(),
		AvailableSeats: trip.AvailableSeats,
		Status:         string(trip.Status),
	}, nil
}

func (s *TripService) GetTrip(ctx context.Context, tripID uuid.UUID) (*domain.Trip, error) {
	return s.trips.GetTrip(ctx, tripID)
}
