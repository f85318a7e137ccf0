package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/grbus/seatcore/internal/core/domain"
	"github.com/grbus/seatcore/internal/core/ports/mocks"
	"github.com/grbus/seatcore/internal/core/services"
)

type coordinatorFixture struct {
	repo        *fakeTripRepo
	inventory   *services.SeatInventory
	bookings    *mocks.BookingRepository
	payments    *mocks.PaymentGateway
	notifier    *mocks.NotificationSender
	artifacts   *mocks.TicketArtifactGenerator
	queue       *mocks.ReleaseQueue
	coordinator *services.BookingCoordinator
}

func newCoordinatorFixture(t *testing.T) *coordinatorFixture {
	repo := newFakeTripRepo()
	inventory := services.NewSeatInventory(repo, nil, 3, testLogger())

	f := &coordinatorFixture{
		repo:      repo,
		inventory: inventory,
		bookings:  mocks.NewBookingRepository(t),
		payments:  mocks.NewPaymentGateway(t),
		notifier:  mocks.NewNotificationSender(t),
		artifacts: mocks.NewTicketArtifactGenerator(t),
		queue:     mocks.NewReleaseQueue(t),
	}
	f.coordinator = services.NewBookingCoordinator(
		inventory, repo, f.bookings, f.payments, f.notifier, f.artifacts, f.queue, testLogger(),
	)
	return f
}

func validCreateRequest(tripID uuid.UUID, seats ...string) services.CreateBookingRequest {
	return services.CreateBookingRequest{
		UserID:         uuid.New().String(),
		TripID:         tripID.String(),
		PassengerName:  "Asha Verma",
		PassengerEmail: "asha@example.com",
		PassengerPhone: "9876543210",
		Seats:          seats,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	f := newCoordinatorFixture(t)
	tripID := f.repo.seedTrip(domain.TripScheduled, 450, "1", "2", "3")
	ctx := context.Background()

	var persisted *domain.Booking
	f.bookings.On("CreateBooking", ctx, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) { persisted = args.Get(1).(*domain.Booking) }).
		Return(nil)
	f.artifacts.On("Generate", ctx, mock.AnythingOfType("*domain.Booking")).Return("ticket-ref", nil)
	f.bookings.On("SetTicketRef", ctx, mock.AnythingOfType("uuid.UUID"), "ticket-ref").Return(nil)

	resp, err := f.coordinator.CreateBooking(ctx, validCreateRequest(tripID, "1", "2"))

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 900.0, resp.TotalFare)
	assert.Equal(t, string(domain.PaymentPending), resp.PaymentStatus)
	assert.Equal(t, "ticket-ref", resp.TicketRef)

	require.NotNil(t, persisted)
	assert.Equal(t, domain.BookingConfirmed, persisted.BookingStatus)
	assert.Regexp(t, `^GR[0-9A-Z]+$`, persisted.BookingID)

	state := f.repo.seatState(tripID)
	assert.ElementsMatch(t, []string{"3"}, state.Available)
	assert.ElementsMatch(t, []string{"1", "2"}, state.Booked)
}

func TestCreateBooking_SeatsTaken_NoBookingPersisted(t *testing.T) {
	f := newCoordinatorFixture(t)
	tripID := f.repo.seedTrip(domain.TripScheduled, 450, "1", "2")
	ctx := context.Background()

	f.bookings.On("CreateBooking", ctx, mock.Anything).Return(nil).Once()
	f.artifacts.On("Generate", ctx, mock.Anything).Return("ref", nil).Once()
	f.bookings.On("SetTicketRef", ctx, mock.Anything, "ref").Return(nil).Once()
	_, err := f.coordinator.CreateBooking(ctx, validCreateRequest(tripID, "1"))
	require.NoError(t, err)

	_, err = f.coordinator.CreateBooking(ctx, validCreateRequest(tripID, "1", "2"))

	var unavailable *domain.SeatsUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, []string{"1"}, unavailable.Seats)
	// only the one successful CreateBooking call is allowed by the mock
}

func TestCreateBooking_PersistFails_SeatsReleased(t *testing.T) {
	f := newCoordinatorFixture(t)
	tripID := f.repo.seedTrip(domain.TripScheduled, 450, "1", "2", "3")
	ctx := context.Background()

	f.bookings.On("CreateBooking", ctx, mock.Anything).Return(errors.New("insert failed"))

	_, err := f.coordinator.CreateBooking(ctx, validCreateRequest(tripID, "2", "3"))

	require.Error(t, err)

	// compensating release: no seat leak
	available, _, _, serr := f.inventory.Snapshot(ctx, tripID)
	require.NoError(t, serr)
	assert.Equal(t, []string{"1", "2", "3"}, available)
}

func TestCreateBooking_ArtifactFailureIsNonFatal(t *testing.T) {
	f := newCoordinatorFixture(t)
	tripID := f.repo.seedTrip(domain.TripScheduled, 450, "1")
	ctx := context.Background()

	f.bookings.On("CreateBooking", ctx, mock.Anything).Return(nil)
	f.artifacts.On("Generate", ctx, mock.Anything).Return("", errors.New("qr encoder broken"))

	resp, err := f.coordinator.CreateBooking(ctx, validCreateRequest(tripID, "1"))

	require.NoError(t, err)
	assert.Empty(t, resp.TicketRef)
}

func TestCreateBooking_InvalidPassenger(t *testing.T) {
	f := newCoordinatorFixture(t)
	tripID := f.repo.seedTrip(domain.TripScheduled, 450, "1")

	req := validCreateRequest(tripID, "1")
	req.PassengerEmail = "not-an-email"

	_, err := f.coordinator.CreateBooking(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrInvalidPassengerEmail)
	// no storage interaction happened: seats untouched
	assert.ElementsMatch(t, []string{"1"}, f.repo.seatState(tripID).Available)
}

func seededBooking(tripID, userID uuid.UUID, seats []string) *domain.Booking {
	return &domain.Booking{
		ID:             uuid.New(),
		BookingID:      domain.NewBookingID(),
		UserID:         userID,
		TripID:         tripID,
		PassengerName:  "Asha Verma",
		PassengerEmail: "asha@example.com",
		PassengerPhone: "9876543210",
		Seats:          seats,
		TotalFare:      900,
		PaymentStatus:  domain.PaymentPending,
		BookingStatus:  domain.BookingConfirmed,
	}
}

func TestCancelBooking_ReleasesSeats(t *testing.T) {
	f := newCoordinatorFixture(t)
	tripID := f.repo.seedTrip(domain.TripScheduled, 450, "1", "2", "3", "4", "5")
	ctx := context.Background()
	userID := uuid.New()

	_, err := f.inventory.Reserve(ctx, tripID, []string{"4", "5"})
	require.NoError(t, err)

	booking := seededBooking(tripID, userID, []string{"4", "5"})
	f.bookings.On("GetBooking", ctx, booking.ID).Return(booking, nil)
	f.bookings.On("UpdateBookingStatus", ctx, booking.ID, domain.BookingCancelled).Return(nil)
	f.notifier.On("SendCancellation", ctx, booking, 0.0).Return(nil)

	refund, err := f.coordinator.CancelBooking(ctx, booking.ID, userID, domain.ActorUser)

	require.NoError(t, err)
	assert.Equal(t, 0.0, refund)

	state := f.repo.seatState(tripID)
	assert.ElementsMatch(t, []string{"1", "2", "3", "4", "5"}, state.Available)
	assert.Empty(t, state.Booked)
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	f := newCoordinatorFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	booking := seededBooking(uuid.New(), userID, []string{"1"})
	booking.BookingStatus = domain.BookingCancelled
	f.bookings.On("GetBooking", ctx, booking.ID).Return(booking, nil)

	_, err := f.coordinator.CancelBooking(ctx, booking.ID, userID, domain.ActorUser)

	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestCancelBooking_NotOwner(t *testing.T) {
	f := newCoordinatorFixture(t)
	ctx := context.Background()

	booking := seededBooking(uuid.New(), uuid.New(), []string{"1"})
	f.bookings.On("GetBooking", ctx, booking.ID).Return(booking, nil)

	_, err := f.coordinator.CancelBooking(ctx, booking.ID, uuid.New(), domain.ActorUser)

	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestCancelBooking_AdminBypassesOwnership(t *testing.T) {
	f := newCoordinatorFixture(t)
	tripID := f.repo.seedTrip(domain.TripScheduled, 450, "1", "2")
	ctx := context.Background()

	_, err := f.inventory.Reserve(ctx, tripID, []string{"1"})
	require.NoError(t, err)

	booking := seededBooking(tripID, uuid.New(), []string{"1"})
	f.bookings.On("GetBooking", ctx, booking.ID).Return(booking, nil)
	f.bookings.On("UpdateBookingStatus", ctx, booking.ID, domain.BookingCancelled).Return(nil)
	f.notifier.On("SendCancellation", ctx, booking, 0.0).Return(nil)

	_, err = f.coordinator.CancelBooking(ctx, booking.ID, uuid.New(), domain.ActorAdmin)

	assert.NoError(t, err)
}

func TestCancelBooking_RefundsSuccessfulPayment(t *testing.T) {
	f := newCoordinatorFixture(t)
	tripID := f.repo.seedTrip(domain.TripScheduled, 450, "1", "2")
	ctx := context.Background()
	userID := uuid.New()

	_, err := f.inventory.Reserve(ctx, tripID, []string{"1"})
	require.NoError(t, err)

	booking := seededBooking(tripID, userID, []string{"1"})
	booking.PaymentStatus = domain.PaymentSuccess
	booking.PaymentRef = "pay_123"
	booking.TotalFare = 450

	f.bookings.On("GetBooking", ctx, booking.ID).Return(booking, nil)
	f.bookings.On("UpdateBookingStatus", ctx, booking.ID, domain.BookingCancelled).Return(nil)
	f.payments.On("InitiateRefund", ctx, "pay_123", 450.0).Return(nil)
	f.bookings.On("UpdatePaymentStatus", ctx, booking.ID, domain.PaymentRefunded, "pay_123").Return(nil)
	f.notifier.On("SendCancellation", ctx, booking, 450.0).Return(nil)

	refund, err := f.coordinator.CancelBooking(ctx, booking.ID, userID, domain.ActorUser)

	require.NoError(t, err)
	assert.Equal(t, 450.0, refund)
}

func TestCancelBooking_RefundFailureIsNonFatal(t *testing.T) {
	f := newCoordinatorFixture(t)
	tripID := f.repo.seedTrip(domain.TripScheduled, 450, "1")
	ctx := context.Background()
	userID := uuid.New()

	_, err := f.inventory.Reserve(ctx, tripID, []string{"1"})
	require.NoError(t, err)

	booking := seededBooking(tripID, userID, []string{"1"})
	booking.PaymentStatus = domain.PaymentSuccess
	booking.PaymentRef = "pay_123"

	f.bookings.On("GetBooking", ctx, booking.ID).Return(booking, nil)
	f.bookings.On("UpdateBookingStatus", ctx, booking.ID, domain.BookingCancelled).Return(nil)
	f.payments.On("InitiateRefund", ctx, "pay_123", booking.TotalFare).Return(errors.New("gateway down"))
	f.notifier.On("SendCancellation", ctx, booking, 0.0).Return(nil)

	refund, err := f.coordinator.CancelBooking(ctx, booking.ID, userID, domain.ActorUser)

	require.NoError(t, err, "refund failure must not fail the cancellation")
	assert.Equal(t, 0.0, refund)
}

func TestCancelBooking_ReleaseFailureQueuesRetry(t *testing.T) {
	f := newCoordinatorFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	// trip does not exist in the repo, so Release will fail
	booking := seededBooking(uuid.New(), userID, []string{"1"})
	f.bookings.On("GetBooking", ctx, booking.ID).Return(booking, nil)
	f.bookings.On("UpdateBookingStatus", ctx, booking.ID, domain.BookingCancelled).Return(nil)
	f.queue.On("EnqueueRelease", ctx, mock.AnythingOfType("ports.ReleaseTask")).Return(nil)
	f.notifier.On("SendCancellation", ctx, booking, 0.0).Return(nil)

	_, err := f.coordinator.CancelBooking(ctx, booking.ID, userID, domain.ActorUser)

	assert.NoError(t, err, "cancellation succeeds even when release must be retried")
}

func TestConfirmPayment_SendsConfirmation(t *testing.T) {
	f := newCoordinatorFixture(t)
	ctx := context.Background()

	booking := seededBooking(uuid.New(), uuid.New(), []string{"1"})
	f.bookings.On("GetBooking", ctx, booking.ID).Return(booking, nil)
	f.bookings.On("UpdatePaymentStatus", ctx, booking.ID, domain.PaymentSuccess, "pay_987").Return(nil)
	f.notifier.On("SendBookingConfirmation", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

	err := f.coordinator.ConfirmPayment(ctx, booking.ID, "pay_987")

	assert.NoError(t, err)
}

func TestFailPayment_KeepsSeatsHeld(t *testing.T) {
	f := newCoordinatorFixture(t)
	tripID := f.repo.seedTrip(domain.TripScheduled, 450, "1", "2")
	ctx := context.Background()

	_, err := f.inventory.Reserve(ctx, tripID, []string{"1"})
	require.NoError(t, err)

	booking := seededBooking(tripID, uuid.New(), []string{"1"})
	f.bookings.On("GetBooking", ctx, booking.ID).Return(booking, nil)
	f.bookings.On("UpdatePaymentStatus", ctx, booking.ID, domain.PaymentFailed, "pay_bad").Return(nil)

	require.NoError(t, f.coordinator.FailPayment(ctx, booking.ID, "pay_bad"))

	// seats stay booked: payment may be retried
	state := f.repo.seatState(tripID)
	assert.ElementsMatch(t, []string{"1"}, state.Booked)
}
