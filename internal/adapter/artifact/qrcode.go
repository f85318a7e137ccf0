package artifact

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/grbus/seatcore/internal/core/domain"
)

// QRGenerator renders the booking's scannable ticket payload as a QR
// PNG data URL.
type QRGenerator struct {
	size int
}

func NewQRGenerator() *QRGenerator {
	return &QRGenerator{size: 300}
}

type ticketPayload struct {
	BookingID     string   `json:"bookingId"`
	TripID        string   `json:"tripId"`
	Seats         []string `json:"seats"`
	PassengerName string   `json:"passengerName"`
}

func (g *QRGenerator) Generate(_ context.Context, booking *domain.Booking) (string, error) {
	payload, err := json.Marshal(ticketPayload{
		BookingID:     booking.BookingID,
		TripID:        booking.TripID.String(),
		Seats:         booking.Seats,
		PassengerName: booking.PassengerName,
	})
	if err != nil {
		return "", err
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, g.size)
	if err != nil {
		return "", fmt.Errorf("failed to encode ticket QR: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
