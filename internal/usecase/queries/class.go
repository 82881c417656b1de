package queries

import (
	"context"
	"time"

	"fitbooking/internal/infra"
	"fitbooking/internal/pkg/clock"
	"fitbooking/internal/pkg/errs"
	"fitbooking/internal/pkg/timezone"
)

var ErrClassNotFound = errs.New("class not found")

// ClassRow is what the read store returns: stored values, instants in UTC.
type ClassRow struct {
	ID             int64
	Name           string
	Instructor     string
	ScheduledAt    time.Time
	TotalSlots     int32
	AvailableSlots int32
}

// ClassView is the display shape: the scheduled instant rendered in the
// caller's requested zone.
type ClassView struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Instructor     string    `json:"instructor"`
	ScheduledLocal time.Time `json:"scheduled_local"`
	Timezone       string    `json:"timezone"`
	TotalSlots     int32     `json:"total_slots"`
	AvailableSlots int32     `json:"available_slots"`
}

type AvailabilityView struct {
	ClassID        int64  `json:"class_id"`
	ClassName      string `json:"class_name"`
	TotalSlots     int32  `json:"total_slots"`
	AvailableSlots int32  `json:"available_slots"`
	BookedSlots    int32  `json:"booked_slots"`
	IsAvailable    bool   `json:"is_available"`
}

type ClassReadStore interface {
	FindUpcoming(ctx context.Context, now time.Time) ([]*ClassRow, error)
	FindByID(ctx context.Context, id int64) (*ClassRow, error)
}

type ClassQueries interface {
	ListUpcoming(ctx context.Context, tz string) ([]*ClassView, error)
	GetByID(ctx context.Context, id int64, tz string) (*ClassView, error)
	GetAvailability(ctx context.Context, id int64) (*AvailabilityView, error)
}

type classQueriesImpl struct {
	store ClassReadStore
	clock clock.Clock
}

func NewClassQueries(store ClassReadStore, clock clock.Clock) ClassQueries {
	return &classQueriesImpl{store: store, clock: clock}
}

func (q *classQueriesImpl) ListUpcoming(ctx context.Context, tz string) ([]*ClassView, error) {
	if err := timezone.Validate(tz); err != nil {
		return nil, err
	}

	rows, err := q.store.FindUpcoming(ctx, q.clock.Now())
	if err != nil {
		return nil, err
	}

	views := make([]*ClassView, 0, len(rows))
	for _, row := range rows {
		view, err := toClassView(row, tz)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (q *classQueriesImpl) GetByID(ctx context.Context, id int64, tz string) (*ClassView, error) {
	if err := timezone.Validate(tz); err != nil {
		return nil, err
	}

	row, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return toClassView(row, tz)
}

func (q *classQueriesImpl) GetAvailability(ctx context.Context, id int64) (*AvailabilityView, error) {
	row, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	return &AvailabilityView{
		ClassID:        row.ID,
		ClassName:      row.Name,
		TotalSlots:     row.TotalSlots,
		AvailableSlots: row.AvailableSlots,
		BookedSlots:    row.TotalSlots - row.AvailableSlots,
		IsAvailable:    row.AvailableSlots > 0,
	}, nil
}

func toClassView(row *ClassRow, tz string) (*ClassView, error) {
	local, err := timezone.ToLocal(row.ScheduledAt, tz)
	if err != nil {
		return nil, err
	}
	return &ClassView{
		ID:             row.ID,
		Name:           row.Name,
		Instructor:     row.Instructor,
		ScheduledLocal: local,
		Timezone:       tz,
		TotalSlots:     row.TotalSlots,
		AvailableSlots: row.AvailableSlots,
	}, nil
}
