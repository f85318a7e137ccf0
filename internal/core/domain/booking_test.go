package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grbus/seatcore/internal/core/domain"
)

func TestNewBookingID_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := domain.NewBookingID()
		assert.Regexp(t, `^GR[0-9A-Z]{8,}$`, id)
		assert.False(t, seen[id], "booking ids must not repeat: %s", id)
		seen[id] = true
	}
}

func TestPassengerValidate(t *testing.T) {
	valid := domain.Passenger{
		Name:  "Asha Verma",
		Email: "asha@example.com",
		Phone: "9876543210",
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name      string
		passenger domain.Passenger
		want      error
	}{
		{"missing name", domain.Passenger{Email: valid.Email, Phone: valid.Phone}, domain.ErrMissingPassengerName},
		{"blank name", domain.Passenger{Name: "   ", Email: valid.Email, Phone: valid.Phone}, domain.ErrMissingPassengerName},
		{"bad email", domain.Passenger{Name: valid.Name, Email: "asha@", Phone: valid.Phone}, domain.ErrInvalidPassengerEmail},
		{"bad phone", domain.Passenger{Name: valid.Name, Email: valid.Email, Phone: "12345"}, domain.ErrInvalidPassengerPhone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.passenger.Validate(), tc.want)
		})
	}
}
