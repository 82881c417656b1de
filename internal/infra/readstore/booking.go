package readstore

import (
	"context"

	"fitbooking/internal/infra"
	"fitbooking/internal/infra/db"
	"fitbooking/internal/usecase/queries"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByEmail(ctx context.Context, email string) ([]*queries.BookingRow, error) {
	const query = `
		SELECT b.id, b.class_id, b.client_name, b.client_email, b.booking_time, b.status,
		       c.name, c.instructor, c.scheduled_at
		FROM bookings b
		JOIN classes c ON c.id = b.class_id
		WHERE lower(b.client_email) = lower($1)
		ORDER BY b.booking_time DESC`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, infra.ClassifyPgError(err, "failed to list bookings by email")
	}
	defer rows.Close()

	var result []*queries.BookingRow
	for rows.Next() {
		var row queries.BookingRow
		if err := rows.Scan(
			&row.ID, &row.ClassID, &row.ClientName, &row.ClientEmail, &row.BookingTime, &row.Status,
			&row.ClassName, &row.Instructor, &row.ClassScheduledAt,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking row", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate booking rows", err)
	}
	return result, nil
}
