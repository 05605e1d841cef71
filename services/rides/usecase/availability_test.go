package usecase

import (
	"testing"

	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestComputeAvailability_DerivesFromConfirmedSeats(t *testing.T) {
	ride := &models.Ride{SeatsTotal: 3, Status: models.RideStatusOpen}

	avail, status := computeAvailability(ride, 0)
	assert.Equal(t, 3, avail)
	assert.Equal(t, models.RideStatusOpen, status)

	avail, status = computeAvailability(ride, 2)
	assert.Equal(t, 1, avail)
	assert.Equal(t, models.RideStatusOpen, status)

	avail, status = computeAvailability(ride, 3)
	assert.Equal(t, 0, avail)
	assert.Equal(t, models.RideStatusFull, status)
}

func TestComputeAvailability_ClampsToBounds(t *testing.T) {
	ride := &models.Ride{SeatsTotal: 3, Status: models.RideStatusOpen}

	// Confirmed seats above total clamp to zero rather than going negative.
	avail, status := computeAvailability(ride, 5)
	assert.Equal(t, 0, avail)
	assert.Equal(t, models.RideStatusFull, status)

	avail, _ = computeAvailability(ride, -1)
	assert.Equal(t, 3, avail)
}

func TestComputeAvailability_TerminalStatusPreserved(t *testing.T) {
	for _, terminal := range []models.RideStatus{
		models.RideStatusCancelled,
		models.RideStatusCompleted,
		models.RideStatusExpired,
	} {
		ride := &models.Ride{SeatsTotal: 3, Status: terminal}
		avail, status := computeAvailability(ride, 3)
		assert.Equal(t, 0, avail)
		assert.Equal(t, terminal, status)
	}
}

func TestComputeAvailability_FullFlipsBackToOpen(t *testing.T) {
	// A full ride whose paid booking was cancelled reopens on recalculation.
	ride := &models.Ride{SeatsTotal: 2, SeatsAvailable: 0, Status: models.RideStatusFull}

	avail, status := computeAvailability(ride, 1)
	assert.Equal(t, 1, avail)
	assert.Equal(t, models.RideStatusOpen, status)
}
