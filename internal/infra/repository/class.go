package repository

import (
	"context"
	"time"

	"fitbooking/internal/domain/class"
	"fitbooking/internal/infra"
	"fitbooking/internal/infra/db"
)

type ClassRepository struct {
	db db.DBTX
}

func NewClassRepository(dbtx db.DBTX) *ClassRepository {
	return &ClassRepository{db: dbtx}
}

func (r *ClassRepository) FindByID(ctx context.Context, id int64) (*class.Offering, error) {
	const query = `
		SELECT id, name, instructor, scheduled_at, total_slots, available_slots
		FROM classes
		WHERE id = $1`

	var (
		classID        int64
		name           string
		instructor     string
		scheduledAt    time.Time
		totalSlots     int32
		availableSlots int32
	)
	err := r.db.QueryRow(ctx, query, id).
		Scan(&classID, &name, &instructor, &scheduledAt, &totalSlots, &availableSlots)
	if err != nil {
		return nil, infra.ClassifyPgError(err, "failed to find class by id")
	}

	offering, err := class.NewOffering(classID, name, instructor, scheduledAt, totalSlots, availableSlots)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored class violates invariants", err)
	}
	return offering, nil
}

// DecrementSlot is a single conditional update; the capacity check and the
// decrement execute as one statement so two concurrent bookings can never
// both consume the last slot.
func (r *ClassRepository) DecrementSlot(ctx context.Context, id int64) (bool, error) {
	const query = `
		UPDATE classes
		SET available_slots = available_slots - 1
		WHERE id = $1 AND available_slots > 0`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, infra.ClassifyPgError(err, "failed to decrement slot")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ClassRepository) RestoreSlot(ctx context.Context, id int64) (bool, error) {
	const query = `
		UPDATE classes
		SET available_slots = available_slots + 1
		WHERE id = $1 AND available_slots < total_slots`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, infra.ClassifyPgError(err, "failed to restore slot")
	}
	return tag.RowsAffected() > 0, nil
}
