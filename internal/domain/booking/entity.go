package booking

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyClientName  = errors.New("client name is required")
	ErrInvalidEmail     = errors.New("client email is not a valid address")
	ErrInvalidClassID   = errors.New("class id must be positive")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking records one confirmed (or later cancelled) claim of a class slot.
// The (class id, lowercased email) pair is the duplicate-detection key while
// the booking is confirmed.
type Booking struct {
	id          uuid.UUID
	classID     int64
	clientName  string
	clientEmail string
	bookingTime time.Time
	status      Status
}

func NewBooking(classID int64, clientName, clientEmail string, bookingTime time.Time) (*Booking, error) {
	clientName = strings.TrimSpace(clientName)
	clientEmail = NormalizeEmail(clientEmail)

	if classID <= 0 {
		return nil, ErrInvalidClassID
	}
	if clientName == "" {
		return nil, ErrEmptyClientName
	}
	if _, err := mail.ParseAddress(clientEmail); err != nil {
		return nil, ErrInvalidEmail
	}

	return &Booking{
		id:          uuid.New(),
		classID:     classID,
		clientName:  clientName,
		clientEmail: clientEmail,
		bookingTime: bookingTime.UTC(),
		status:      StatusConfirmed,
	}, nil
}

func Reconstruct(id uuid.UUID, classID int64, clientName, clientEmail string, bookingTime time.Time, status Status) *Booking {
	return &Booking{
		id:          id,
		classID:     classID,
		clientName:  clientName,
		clientEmail: clientEmail,
		bookingTime: bookingTime,
		status:      status,
	}
}

// NormalizeEmail lowercases and trims an address so duplicate detection is
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) ClassID() int64         { return b.classID }
func (b *Booking) ClientName() string     { return b.clientName }
func (b *Booking) ClientEmail() string    { return b.clientEmail }
func (b *Booking) BookingTime() time.Time { return b.bookingTime }
func (b *Booking) Status() Status         { return b.status }
