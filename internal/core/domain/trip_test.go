package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grbus/seatcore/internal/core/domain"
)

func TestGenerateSeatLabels(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, domain.GenerateSeatLabels(3))
	assert.Empty(t, domain.GenerateSeatLabels(0))
}

func TestSortSeatLabels_Numeric(t *testing.T) {
	labels := []string{"10", "2", "1", "21", "3"}
	domain.SortSeatLabels(labels)
	assert.Equal(t, []string{"1", "2", "3", "10", "21"}, labels)
}

func TestTripStatusBookable(t *testing.T) {
	assert.True(t, domain.TripScheduled.Bookable())
	assert.True(t, domain.TripInProgress.Bookable())
	assert.False(t, domain.TripCompleted.Bookable())
	assert.False(t, domain.TripCancelled.Bookable())
}
