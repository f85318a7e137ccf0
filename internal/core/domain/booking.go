package domain

import (
	"crypto/rand"
	"encoding/binary"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentSuccess  PaymentStatus = "success"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Actor identifies who is performing a booking operation. Admin actors
// bypass the ownership check on cancellation.
type Actor string

const (
	ActorUser  Actor = "user"
	ActorAdmin Actor = "admin"
)

type Booking struct {
	ID             uuid.UUID
	BookingID      string
	UserID         uuid.UUID
	TripID         uuid.UUID
	PassengerName  string
	PassengerEmail string
	PassengerPhone string
	Seats          []string
	TotalFare      float64
	PaymentStatus  PaymentStatus
	BookingStatus  BookingStatus
	PaymentOrderID string
	PaymentRef     string
	TicketRef      string
	CreatedAt      time.Time
}

// Passenger holds the contact fields captured at booking time.
type Passenger struct {
	Name  string
	Email string
	Phone string
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// Validate checks that all contact fields are present and well-formed.
func (p Passenger) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrMissingPassengerName
	}
	if !emailPattern.MatchString(p.Email) {
		return ErrInvalidPassengerEmail
	}
	if !phonePattern.MatchString(p.Phone) {
		return ErrInvalidPassengerPhone
	}
	return nil
}

// NewBookingID generates a human-readable, collision-resistant booking
// id: "GR" followed by a base36 timestamp and a base36 random suffix.
func NewBookingID() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing means the process is in deeper trouble
		// than a booking id collision.
		binary.BigEndian.PutUint64(buf[:], uint64(time.Now().UnixNano()))
	}
	const base36Space = 36 * 36 * 36 * 36 * 36 * 36
	suffix := strconv.FormatUint(binary.BigEndian.Uint64(buf[:])%base36Space, 36)
	for len(suffix) < 6 {
		suffix = "0" + suffix
	}
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return strings.ToUpper("GR" + ts + suffix)
}
