package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/grbus/seatcore/internal/core/domain"
)

// PaymentGateway is the host-provided payment integration. Order
// creation and signature verification happen outside the core; the
// coordinator only needs to initiate refunds.
type PaymentGateway interface {
	InitiateRefund(ctx context.Context, paymentRef string, amount float64) error
}

// NotificationSender delivers booking messages. Failures are logged by
// the caller and never propagated as booking failures.
type NotificationSender interface {
	SendBookingConfirmation(ctx context.Context, booking *domain.Booking) error
	SendCancellation(ctx context.Context, booking *domain.Booking, refundAmount float64) error
}

// TicketArtifactGenerator produces a scannable ticket artifact from
// booking metadata. Failure is non-fatal; the artifact can be
// regenerated later.
type TicketArtifactGenerator interface {
	Generate(ctx context.Context, booking *domain.Booking) (string, error)
}

// SnapshotCache is an optional read cache for seat-state snapshots.
// Reserve/Release never read through it; they only invalidate.
type SnapshotCache interface {
	GetSeatState(ctx context.Context, tripID uuid.UUID) (domain.SeatState, bool, error)
	SetSeatState(ctx context.Context, tripID uuid.UUID, state domain.SeatState) error
	Invalidate(ctx context.Context, tripID uuid.UUID) error
}

// ReleaseTask is a seat release that could not be applied inline and
// must be retried by the repair worker.
type ReleaseTask struct {
	TripID uuid.UUID `json:"trip_id"`
	Seats  []string  `json:"seats"`
}

// ReleaseQueue is a durable retry queue for failed seat releases.
type ReleaseQueue interface {
	EnqueueRelease(ctx context.Context, task ReleaseTask) error

	// DequeueRelease pops the next task, or returns nil when the queue
	// is empty.
	DequeueRelease(ctx context.Context) (*ReleaseTask, error)
}
