package readstore

import (
	"context"
	"time"

	"fitbooking/internal/infra"
	"fitbooking/internal/infra/db"
	"fitbooking/internal/usecase/queries"
)

// ClassReadStore serves display queries. Values it returns may be stale the
// moment they are read; nothing here gates a booking decision.
type ClassReadStore struct {
	db db.DBTX
}

func NewClassReadStore(dbtx db.DBTX) *ClassReadStore {
	return &ClassReadStore{db: dbtx}
}

func (r *ClassReadStore) FindUpcoming(ctx context.Context, now time.Time) ([]*queries.ClassRow, error) {
	const query = `
		SELECT id, name, instructor, scheduled_at, total_slots, available_slots
		FROM classes
		WHERE scheduled_at > $1
		ORDER BY scheduled_at ASC`

	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, infra.ClassifyPgError(err, "failed to list upcoming classes")
	}
	defer rows.Close()

	var result []*queries.ClassRow
	for rows.Next() {
		var row queries.ClassRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Instructor, &row.ScheduledAt, &row.TotalSlots, &row.AvailableSlots); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan class row", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate class rows", err)
	}
	return result, nil
}

func (r *ClassReadStore) FindByID(ctx context.Context, id int64) (*queries.ClassRow, error) {
	const query = `
		SELECT id, name, instructor, scheduled_at, total_slots, available_slots
		FROM classes
		WHERE id = $1`

	var row queries.ClassRow
	err := r.db.QueryRow(ctx, query, id).
		Scan(&row.ID, &row.Name, &row.Instructor, &row.ScheduledAt, &row.TotalSlots, &row.AvailableSlots)
	if err != nil {
		return nil, infra.ClassifyPgError(err, "failed to find class by id")
	}
	return &row, nil
}
