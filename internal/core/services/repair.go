package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/grbus/seatcore/internal/core/domain"
	"github.com/grbus/seatcore/internal/core/ports"
)

const stalePendingBatch = 100

// RepairWorker closes the gaps the synchronous workflows may leave
// behind: seat releases that failed after a cancellation was already
// committed, and confirmed bookings whose payment never arrived.
// Every repair action is idempotent, so overlapping runs are safe.
type RepairWorker struct {
	inventory seatInventory
	bookings  ports.BookingRepository
	queue     ports.ReleaseQueue
	interval  time.Duration
	lookback  time.Duration

	// holdTTL bounds how long a pending-payment booking may hold its
	// seats. Zero disables expiry entirely, matching systems that keep
	// seats held until the user cancels.
	holdTTL time.Duration

	log *logrus.Logger
}

func NewRepairWorker(
	inventory seatInventory,
	bookings ports.BookingRepository,
	queue ports.ReleaseQueue,
	interval, lookback, holdTTL time.Duration,
	log *logrus.Logger,
) *RepairWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	if lookback <= 0 {
		lookback = time.Hour
	}
	return &RepairWorker{
		inventory: inventory,
		bookings:  bookings,
		queue:     queue,
		interval:  interval,
		lookback:  lookback,
		holdTTL:   holdTTL,
		log:       log,
	}
}

// Run blocks until ctx is cancelled, ticking at the configured
// interval.
func (w *RepairWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.WithField("interval", w.interval).Info("repair worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info("repair worker stopped")
			return
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick performs one repair pass.
func (w *RepairWorker) Tick(ctx context.Context) {
	w.drainReleaseQueue(ctx)
	w.reconcileCancelled(ctx)
	w.expireStalePending(ctx)
}

func (w *RepairWorker) drainReleaseQueue(ctx context.Context) {
	if w.queue == nil {
		return
	}
	for {
		task, err := w.queue.DequeueRelease(ctx)
		if err != nil {
			w.log.WithError(err).Error("failed to read release retry queue")
			return
		}
		if task == nil {
			return
		}

		if err := w.release(ctx, task.TripID, task.Seats); err != nil {
			w.log.WithError(err).WithFields(logrus.Fields{
				"trip_id": task.TripID,
				"seats":   task.Seats,
			}).Error("queued seat release failed, re-queueing")
			if qerr := w.queue.EnqueueRelease(ctx, *task); qerr != nil {
				w.log.WithError(qerr).Error("failed to re-queue seat release")
			}
			return
		}
	}
}

// reconcileCancelled re-releases seats of recently cancelled bookings.
// Most are already released; Release treats those labels as no-ops.
func (w *RepairWorker) reconcileCancelled(ctx context.Context) {
	cancelled, err := w.bookings.ListCancelledSince(ctx, time.Now().Add(-w.lookback))
	if err != nil {
		w.log.WithError(err).Error("failed to list cancelled bookings")
		return
	}

	for _, booking := range cancelled {
		if err := w.release(ctx, booking.TripID, booking.Seats); err != nil {
			w.log.WithError(err).WithField("booking_id", booking.BookingID).Error("seat release reconciliation failed")
		}
	}
}

func (w *RepairWorker) expireStalePending(ctx context.Context) {
	if w.holdTTL <= 0 {
		return
	}

	stale, err := w.bookings.ListStalePending(ctx, time.Now().Add(-w.holdTTL), stalePendingBatch)
	if err != nil {
		w.log.WithError(err).Error("failed to list stale pending bookings")
		return
	}
	if len(stale) == 0 {
		return
	}

	w.log.WithField("count", len(stale)).Info("expiring stale pending bookings")

	for _, booking := range stale {
		if err := w.bookings.UpdateBookingStatus(ctx, booking.ID, domain.BookingCancelled); err != nil {
			w.log.WithError(err).WithField("booking_id", booking.BookingID).Error("failed to expire booking")
			continue
		}
		if err := w.release(ctx, booking.TripID, booking.Seats); err != nil {
			w.log.WithError(err).WithField("booking_id", booking.BookingID).Error("failed to release seats of expired booking")
			if w.queue != nil {
				task := ports.ReleaseTask{TripID: booking.TripID, Seats: booking.Seats}
				if qerr := w.queue.EnqueueRelease(ctx, task); qerr != nil {
					w.log.WithError(qerr).Error("failed to queue release of expired booking")
				}
			}
			continue
		}
		w.log.WithFields(logrus.Fields{
			"booking_id": booking.BookingID,
			"seats":      booking.Seats,
		}).Info("expired pending booking, seats released")
	}
}

// release wraps inventory.Release, tolerating trips that disappeared
// since the booking was made.
func (w *RepairWorker) release(ctx context.Context, tripID uuid.UUID, seats []string) error {
	err := w.inventory.Release(ctx, tripID, seats)
	if errors.Is(err, domain.ErrTripNotFound) {
		return nil
	}
	return err
}
