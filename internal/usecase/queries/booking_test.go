//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"fitbooking/internal/pkg/timezone"
	"fitbooking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingReadStore struct {
	rows      []*queries.BookingRow
	lastEmail string
}

func (s *fakeBookingReadStore) FindByEmail(_ context.Context, email string) ([]*queries.BookingRow, error) {
	s.lastEmail = email
	matched := make([]*queries.BookingRow, 0, len(s.rows))
	for _, row := range s.rows {
		if row.ClientEmail == email {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

func TestBookingQueries_ListByEmail(t *testing.T) {
	scheduled := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	store := &fakeBookingReadStore{rows: []*queries.BookingRow{
		{
			ID:               uuid.New(),
			ClassID:          1,
			ClientName:       "Asha Rao",
			ClientEmail:      "asha@example.com",
			BookingTime:      queryNow,
			Status:           "confirmed",
			ClassName:        "Morning Yoga",
			Instructor:       "Priya Sharma",
			ClassScheduledAt: scheduled,
		},
		{
			ID:               uuid.New(),
			ClassID:          2,
			ClientName:       "Someone Else",
			ClientEmail:      "other@example.com",
			BookingTime:      queryNow,
			Status:           "confirmed",
			ClassName:        "HIIT Blast",
			Instructor:       "Rahul Verma",
			ClassScheduledAt: scheduled,
		},
	}}
	q := queries.NewBookingQueries(store)

	views, err := q.ListByEmail(context.Background(), " ASHA@Example.com ", "Asia/Kolkata")
	require.NoError(t, err)

	// Lookup uses the normalized address.
	assert.Equal(t, "asha@example.com", store.lastEmail)

	require.Len(t, views, 1)
	view := views[0]
	assert.Equal(t, "Morning Yoga", view.ClassName)
	assert.Equal(t, "confirmed", view.Status)
	assert.Equal(t, "Asia/Kolkata", view.Timezone)
	assert.Equal(t, "Asia/Kolkata", view.ClassScheduled.Location().String())
	assert.True(t, view.ClassScheduled.Equal(scheduled))
}

func TestBookingQueries_ListByEmail_UnknownTimezone(t *testing.T) {
	q := queries.NewBookingQueries(&fakeBookingReadStore{})

	_, err := q.ListByEmail(context.Background(), "asha@example.com", "Nowhere/Nothing")
	assert.ErrorIs(t, err, timezone.ErrUnknownTimezone)
}

func TestBookingQueries_ListByEmail_NoBookings(t *testing.T) {
	q := queries.NewBookingQueries(&fakeBookingReadStore{})

	views, err := q.ListByEmail(context.Background(), "asha@example.com", "UTC")
	require.NoError(t, err)
	assert.Empty(t, views)
}
