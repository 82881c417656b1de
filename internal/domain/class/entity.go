package class

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName        = errors.New("class name is required")
	ErrEmptyInstructor  = errors.New("instructor name is required")
	ErrNonPositiveSlots = errors.New("total slots must be positive")
	ErrSlotsOutOfRange  = errors.New("available slots must be between 0 and total slots")
	ErrZeroScheduledAt  = errors.New("scheduled time is required")
)

// Offering is a scheduled fitness class with slot-limited capacity.
// AvailableSlots is the single piece of shared mutable state in the system;
// outside of reconstruction it only changes through the store's atomic
// conditional decrement, never through this type.
type Offering struct {
	id             int64
	name           string
	instructor     string
	scheduledAt    time.Time
	totalSlots     int32
	availableSlots int32
}

func NewOffering(id int64, name, instructor string, scheduledAt time.Time, totalSlots, availableSlots int32) (*Offering, error) {
	name = strings.TrimSpace(name)
	instructor = strings.TrimSpace(instructor)

	if name == "" {
		return nil, ErrEmptyName
	}
	if instructor == "" {
		return nil, ErrEmptyInstructor
	}
	if scheduledAt.IsZero() {
		return nil, ErrZeroScheduledAt
	}
	if totalSlots <= 0 {
		return nil, ErrNonPositiveSlots
	}
	if availableSlots < 0 || availableSlots > totalSlots {
		return nil, ErrSlotsOutOfRange
	}

	return &Offering{
		id:             id,
		name:           name,
		instructor:     instructor,
		scheduledAt:    scheduledAt.UTC(),
		totalSlots:     totalSlots,
		availableSlots: availableSlots,
	}, nil
}

// HasStarted reports whether the class has begun or concluded at the given
// instant. Comparison is between absolute instants only.
func (o *Offering) HasStarted(now time.Time) bool {
	return !o.scheduledAt.After(now)
}

func (o *Offering) IsFull() bool {
	return o.availableSlots <= 0
}

func (o *Offering) BookedSlots() int32 {
	return o.totalSlots - o.availableSlots
}

func (o *Offering) ID() int64              { return o.id }
func (o *Offering) Name() string           { return o.name }
func (o *Offering) Instructor() string     { return o.instructor }
func (o *Offering) ScheduledAt() time.Time { return o.scheduledAt }
func (o *Offering) TotalSlots() int32      { return o.totalSlots }
func (o *Offering) AvailableSlots() int32  { return o.availableSlots }
