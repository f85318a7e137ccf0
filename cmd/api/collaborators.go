package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/grbus/seatcore/internal/core/domain"
)

// Payment and notification integrations are host concerns; the
// defaults below only log so the service runs without them configured.

type noopPaymentGateway struct {
	log *logrus.Logger
}

func (g noopPaymentGateway) InitiateRefund(_ context.Context, paymentRef string, amount float64) error {
	g.log.WithFields(logrus.Fields{
		"payment_ref": paymentRef,
		"amount":      amount,
	}).Info("refund requested (no payment gateway configured)")
	return nil
}

type noopNotifier struct {
	log *logrus.Logger
}

func (n noopNotifier) SendBookingConfirmation(_ context.Context, booking *domain.Booking) error {
	n.log.WithField("booking_id", booking.BookingID).Info("booking confirmation (no notifier configured)")
	return nil
}

func (n noopNotifier) SendCancellation(_ context.Context, booking *domain.Booking, refundAmount float64) error {
	n.log.WithFields(logrus.Fields{
		"booking_id":    booking.BookingID,
		"refund_amount": refundAmount,
	}).Info("cancellation notice (no notifier configured)")
	return nil
}
