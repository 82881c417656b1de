package queries

import (
	"context"
	"time"

	"fitbooking/internal/domain/booking"
	"fitbooking/internal/pkg/timezone"

	"github.com/google/uuid"
)

type BookingRow struct {
	ID               uuid.UUID
	ClassID          int64
	ClientName       string
	ClientEmail      string
	BookingTime      time.Time
	Status           string
	ClassName        string
	Instructor       string
	ClassScheduledAt time.Time
}

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	ClassID        int64     `json:"class_id"`
	ClientName     string    `json:"client_name"`
	ClientEmail    string    `json:"client_email"`
	BookingTime    time.Time `json:"booking_time"`
	Status         string    `json:"status"`
	ClassName      string    `json:"class_name"`
	Instructor     string    `json:"instructor"`
	ClassScheduled time.Time `json:"class_scheduled_local"`
	Timezone       string    `json:"timezone"`
}

type BookingReadStore interface {
	FindByEmail(ctx context.Context, email string) ([]*BookingRow, error)
}

type BookingQueries interface {
	ListByEmail(ctx context.Context, email, tz string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) ListByEmail(ctx context.Context, email, tz string) ([]*BookingView, error) {
	if err := timezone.Validate(tz); err != nil {
		return nil, err
	}

	rows, err := q.store.FindByEmail(ctx, booking.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	views := make([]*BookingView, 0, len(rows))
	for _, row := range rows {
		local, err := timezone.ToLocal(row.ClassScheduledAt, tz)
		if err != nil {
			return nil, err
		}
		views = append(views, &BookingView{
			ID:             row.ID,
			ClassID:        row.ClassID,
			ClientName:     row.ClientName,
			ClientEmail:    row.ClientEmail,
			BookingTime:    row.BookingTime,
			Status:         row.Status,
			ClassName:      row.ClassName,
			Instructor:     row.Instructor,
			ClassScheduled: local,
			Timezone:       tz,
		})
	}
	return views, nil
}
