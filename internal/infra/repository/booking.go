package repository

import (
	"context"
	"time"

	"fitbooking/internal/domain/booking"
	"fitbooking/internal/infra"
	"fitbooking/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (id, class_id, client_name, client_email, booking_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		b.ID(), b.ClassID(), b.ClientName(), b.ClientEmail(), b.BookingTime(), string(b.Status()))
	if err != nil {
		return uuid.Nil, infra.ClassifyPgError(err, "failed to insert booking")
	}
	return b.ID(), nil
}

func (r *BookingRepository) HasConfirmed(ctx context.Context, classID int64, email string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE class_id = $1 AND lower(client_email) = lower($2) AND status = 'confirmed'
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, classID, email).Scan(&exists); err != nil {
		return false, infra.ClassifyPgError(err, "failed to check existing booking")
	}
	return exists, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, class_id, client_name, client_email, booking_time, status
		FROM bookings
		WHERE id = $1`

	var (
		bookingID   uuid.UUID
		classID     int64
		clientName  string
		clientEmail string
		bookingTime time.Time
		status      string
	)
	err := r.db.QueryRow(ctx, query, id).
		Scan(&bookingID, &classID, &clientName, &clientEmail, &bookingTime, &status)
	if err != nil {
		return nil, infra.ClassifyPgError(err, "failed to find booking by id")
	}

	return booking.Reconstruct(bookingID, classID, clientName, clientEmail, bookingTime, booking.Status(status)), nil
}

func (r *BookingRepository) MarkCancelled(ctx context.Context, id uuid.UUID, email string) (bool, error) {
	const query = `
		UPDATE bookings
		SET status = 'cancelled'
		WHERE id = $1 AND lower(client_email) = lower($2) AND status = 'confirmed'`

	tag, err := r.db.Exec(ctx, query, id, email)
	if err != nil {
		return false, infra.ClassifyPgError(err, "failed to cancel booking")
	}
	return tag.RowsAffected() > 0, nil
}
