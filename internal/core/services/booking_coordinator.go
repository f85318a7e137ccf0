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

type seatInventory interface {
	Reserve(ctx context.Context, tripID uuid.UUID, seats []string) (*domain.Reservation, error)
	Release(ctx context.Context, tripID uuid.UUID, seats []string) error
}

type CreateBookingRequest struct {
	UserID         string   `json:"user_id"`
	TripID         string   `json:"trip_id"`
	PassengerName  string   `json:"passenger_name"`
	PassengerEmail string   `json:"passenger_email"`
	PassengerPhone string   `json:"passenger_phone"`
	Seats          []string `json:"seats"`
}

type CreateBookingResponse struct {
	ID            string   `json:"id"`
	BookingID     string   `json:"booking_id"`
	TripID        string   `json:"trip_id"`
	Seats         []string `json:"seats"`
	TotalFare     float64  `json:"total_fare"`
	PaymentStatus string   `json:"payment_status"`
	TicketRef     string   `json:"ticket_ref,omitempty"`
}

// BookingCoordinator sequences the create/pay/confirm and
// cancel/refund workflows. Seat state and booking state form the core
// transaction; refunds, notifications and ticket artifacts are a
// best-effort side-effect phase that never rolls the core back.
type BookingCoordinator struct {
	inventory    seatInventory
	trips        ports.TripRepository
	bookings     ports.BookingRepository
	payments     ports.PaymentGateway
	notifier     ports.NotificationSender
	artifacts    ports.TicketArtifactGenerator
	releaseQueue ports.ReleaseQueue
	log          *logrus.Logger
}

func NewBookingCoordinator(
	inventory seatInventory,
	trips ports.TripRepository,
	bookings ports.BookingRepository,
	payments ports.PaymentGateway,
	notifier ports.NotificationSender,
	artifacts ports.TicketArtifactGenerator,
	releaseQueue ports.ReleaseQueue,
	log *logrus.Logger,
) *BookingCoordinator {
	return &BookingCoordinator{
		inventory:    inventory,
		trips:        trips,
		bookings:     bookings,
		payments:     payments,
		notifier:     notifier,
		artifacts:    artifacts,
		releaseQueue: releaseQueue,
		log:          log,
	}
}

// CreateBooking reserves the requested seats and persists the booking
// in confirmed/pending-payment state. If persistence fails after the
// seats were reserved, the reservation is compensated with an
// immediate release so no seat is held against nothing.
func (c *BookingCoordinator) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: user id %q", domain.ErrInvalidID, req.UserID)
	}
	tripID, err := uuid.Parse(req.TripID)
	if err != nil {
		return nil, fmt.Errorf("%w: trip id %q", domain.ErrInvalidID, req.TripID)
	}

	passenger := domain.Passenger{
		Name:  req.PassengerName,
		Email: req.PassengerEmail,
		Phone: req.PassengerPhone,
	}
	if err := passenger.Validate(); err != nil {
		return nil, err
	}

	meta, err := c.trips.LoadTripMeta(ctx, tripID)
	if err != nil {
		return nil, err
	}

	reservation, err := c.inventory.Reserve(ctx, tripID, req.Seats)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:             uuid.New(),
		BookingID:      domain.NewBookingID(),
		UserID:         userID,
		TripID:         tripID,
		PassengerName:  passenger.Name,
		PassengerEmail: passenger.Email,
		PassengerPhone: passenger.Phone,
		Seats:          reservation.Seats,
		TotalFare:      meta.Fare * float64(len(reservation.Seats)),
		PaymentStatus:  domain.PaymentPending,
		BookingStatus:  domain.BookingConfirmed,
		CreatedAt:      time.Now(),
	}

	if err := c.bookings.CreateBooking(ctx, booking); err != nil {
		c.compensateReserve(ctx, tripID, reservation.Seats)
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	// Side-effect phase; nothing below may fail the booking.
	if c.artifacts != nil {
		if ref, aerr := c.artifacts.Generate(ctx, booking); aerr != nil {
			c.log.WithError(aerr).WithField("booking_id", booking.BookingID).Warn("ticket artifact generation failed")
		} else if serr := c.bookings.SetTicketRef(ctx, booking.ID, ref); serr != nil {
			c.log.WithError(serr).WithField("booking_id", booking.BookingID).Warn("failed to store ticket artifact reference")
		} else {
			booking.TicketRef = ref
		}
	}

	return &CreateBookingResponse{
		ID:            booking.ID.String(),
		BookingID:     booking.BookingID,
		TripID:        booking.TripID.String(),
		Seats:         booking.Seats,
		TotalFare:     booking.TotalFare,
		PaymentStatus: string(booking.PaymentStatus),
		TicketRef:     booking.TicketRef,
	}, nil
}

// compensateReserve undoes a reservation whose booking could not be
// persisted. If the release itself fails, the task is handed to the
// retry queue so the seats are not leaked.
func (c *BookingCoordinator) compensateReserve(ctx context.Context, tripID uuid.UUID, seats []string) {
	err := c.inventory.Release(ctx, tripID, seats)
	if err == nil {
		return
	}
	c.log.WithError(err).WithFields(logrus.Fields{
		"trip_id": tripID,
		"seats":   seats,
	}).Error("compensating seat release failed")
	c.enqueueRelease(ctx, tripID, seats)
}

// CancelBooking marks the booking cancelled, releases its seats back
// to the trip and attempts a refund when payment had succeeded. The
// status write is the commit point: once it is durable, release and
// refund failures are repaired asynchronously and never surface to the
// caller.
func (c *BookingCoordinator) CancelBooking(ctx context.Context, bookingID uuid.UUID, actorUserID uuid.UUID, actor domain.Actor) (float64, error) {
	booking, err := c.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return 0, err
	}
	if booking.BookingStatus == domain.BookingCancelled {
		return 0, domain.ErrAlreadyCancelled
	}
	if actor != domain.ActorAdmin && booking.UserID != actorUserID {
		return 0, domain.ErrNotOwner
	}

	if err := c.bookings.UpdateBookingStatus(ctx, bookingID, domain.BookingCancelled); err != nil {
		return 0, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if err := c.inventory.Release(ctx, booking.TripID, booking.Seats); err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{
			"booking_id": booking.BookingID,
			"trip_id":    booking.TripID,
			"seats":      booking.Seats,
		}).Error("seat release failed after cancellation, queueing retry")
		c.enqueueRelease(ctx, booking.TripID, booking.Seats)
	}

	var refundAmount float64
	if booking.PaymentStatus == domain.PaymentSuccess && booking.PaymentRef != "" {
		if err := c.payments.InitiateRefund(ctx, booking.PaymentRef, booking.TotalFare); err != nil {
			// Refund becomes a manual follow-up; payment status stays
			// success so the case remains visible.
			c.log.WithError(err).WithField("booking_id", booking.BookingID).Error("refund initiation failed")
		} else if err := c.bookings.UpdatePaymentStatus(ctx, bookingID, domain.PaymentRefunded, booking.PaymentRef); err != nil {
			c.log.WithError(err).WithField("booking_id", booking.BookingID).Error("failed to record refund")
			refundAmount = booking.TotalFare
		} else {
			refundAmount = booking.TotalFare
		}
	}

	if c.notifier != nil {
		if err := c.notifier.SendCancellation(ctx, booking, refundAmount); err != nil {
			c.log.WithError(err).WithField("booking_id", booking.BookingID).Warn("cancellation notification failed")
		}
	}

	return refundAmount, nil
}

// ConfirmPayment records a successful payment for the booking and
// sends the confirmation notification best-effort.
func (c *BookingCoordinator) ConfirmPayment(ctx context.Context, bookingID uuid.UUID, paymentRef string) error {
	booking, err := c.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.BookingStatus == domain.BookingCancelled {
		return domain.ErrAlreadyCancelled
	}

	if err := c.bookings.UpdatePaymentStatus(ctx, bookingID, domain.PaymentSuccess, paymentRef); err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}
	booking.PaymentStatus = domain.PaymentSuccess
	booking.PaymentRef = paymentRef

	if c.notifier != nil {
		if err := c.notifier.SendBookingConfirmation(ctx, booking); err != nil {
			c.log.WithError(err).WithField("booking_id", booking.BookingID).Warn("confirmation notification failed")
		}
	}
	return nil
}

// FailPayment records a failed payment attempt. Seats stay held so the
// user can retry payment; stale pending bookings are expired by the
// repair worker.
func (c *BookingCoordinator) FailPayment(ctx context.Context, bookingID uuid.UUID, paymentRef string) error {
	booking, err := c.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.BookingStatus == domain.BookingCancelled {
		return domain.ErrAlreadyCancelled
	}
	if err := c.bookings.UpdatePaymentStatus(ctx, bookingID, domain.PaymentFailed, paymentRef); err != nil {
		return fmt.Errorf("failed to record payment failure: %w", err)
	}
	return nil
}

func (c *BookingCoordinator) enqueueRelease(ctx context.Context, tripID uuid.UUID, seats []string) {
	if c.releaseQueue == nil {
		return
	}
	task := ports.ReleaseTask{TripID: tripID, Seats: seats}
	if err := c.releaseQueue.EnqueueRelease(ctx, task); err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{
			"trip_id": tripID,
			"seats":   seats,
		}).Error("failed to enqueue seat release retry")
	}
}

// IsConflict reports whether the error is one of the recoverable
// conflict kinds a client may retry after re-selecting seats.
func IsConflict(err error) bool {
	var unavailable *domain.SeatsUnavailableError
	return errors.As(err, &unavailable) || errors.Is(err, domain.ErrConcurrentModification)
}
