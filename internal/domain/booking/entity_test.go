//go:build unit

package booking_test

import (
	"testing"
	"time"

	"fitbooking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	bookedAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := booking.NewBooking(1, "Asha Rao", "asha@example.com", bookedAt)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, int64(1), actual.ClassID())
		assert.Equal(t, "Asha Rao", actual.ClientName())
		assert.Equal(t, "asha@example.com", actual.ClientEmail())
		assert.Equal(t, bookedAt, actual.BookingTime())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.True(t, actual.IsConfirmed())
	})

	t.Run("normalizes email to lowercase", func(t *testing.T) {
		actual, err := booking.NewBooking(1, "Asha Rao", "  Asha@Example.COM ", bookedAt)
		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", actual.ClientEmail())
	})

	t.Run("each booking gets a distinct id", func(t *testing.T) {
		first, err := booking.NewBooking(1, "Asha", "asha@example.com", bookedAt)
		require.NoError(t, err)
		second, err := booking.NewBooking(1, "Asha", "asha@example.com", bookedAt)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID(), second.ID())
	})

	tests := []struct {
		name        string
		classID     int64
		clientName  string
		clientEmail string
		errIs       error
	}{
		{"zero class id", 0, "Asha", "asha@example.com", booking.ErrInvalidClassID},
		{"negative class id", -3, "Asha", "asha@example.com", booking.ErrInvalidClassID},
		{"empty client name", 1, "", "asha@example.com", booking.ErrEmptyClientName},
		{"whitespace client name", 1, "   ", "asha@example.com", booking.ErrEmptyClientName},
		{"empty email", 1, "Asha", "", booking.ErrInvalidEmail},
		{"malformed email", 1, "Asha", "not-an-email", booking.ErrInvalidEmail},
		{"email missing domain", 1, "Asha", "asha@", booking.ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := booking.NewBooking(tt.classID, tt.clientName, tt.clientEmail, bookedAt)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestBooking_Cancel(t *testing.T) {
	bookedAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	b, err := booking.NewBooking(1, "Asha", "asha@example.com", bookedAt)
	require.NoError(t, err)

	require.NoError(t, b.Cancel())
	assert.Equal(t, booking.StatusCancelled, b.Status())
	assert.False(t, b.IsConfirmed())

	assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCancelled)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "asha@example.com", booking.NormalizeEmail(" ASHA@Example.Com "))
	assert.Equal(t, "", booking.NormalizeEmail("   "))
}
