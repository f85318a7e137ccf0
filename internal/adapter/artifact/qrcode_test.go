package artifact_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grbus/seatcore/internal/adapter/artifact"
	"github.com/grbus/seatcore/internal/core/domain"
)

func TestQRGenerator_ProducesDataURL(t *testing.T) {
	gen := artifact.NewQRGenerator()

	booking := &domain.Booking{
		ID:            uuid.New(),
		BookingID:     "GRTEST123",
		TripID:        uuid.New(),
		PassengerName: "Asha Verma",
		Seats:         []string{"4", "5"},
	}

	ref, err := gen.Generate(context.Background(), booking)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "data:image/png;base64,"))
	assert.Greater(t, len(ref), len("data:image/png;base64,"))
}
