// Package commands holds the write-side use cases. AttemptBooking is the
// booking decision engine: it applies every business invariant and the slot
// decrement inside one unit of work, so no rejection or crash can leave a
// consumed slot without a booking row or vice versa.
package commands

import (
	"context"
	"errors"
	"log/slog"

	"fitbooking/internal/domain/booking"
	"fitbooking/internal/infra"
	"fitbooking/internal/pkg/clock"
	"fitbooking/internal/pkg/errs"
	"fitbooking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Business rejections are expected outcomes, surfaced as typed errors and
// never logged at error level. ErrStorageFailure is the single opaque
// verdict for everything unexpected.
var (
	ErrClassNotFound    = errs.New("class not found")
	ErrClassInPast      = errs.New("class has already started")
	ErrClassFull        = errs.New("class is fully booked")
	ErrDuplicateBooking = errs.New("email already has a confirmed booking for this class")
	ErrInvalidBooking   = errs.New("invalid booking request")
	ErrBookingNotOwned  = errs.New("booking not found or not owned by this email")
	ErrStorageFailure   = errs.New("storage failure")
)

type AttemptBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	AttemptBooking(ctx context.Context, classID int64, clientName, clientEmail string) (*AttemptBookingResult, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, clientEmail string) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

// AttemptBooking runs the decision procedure of the booking engine:
//
//  1. class lookup            -> ErrClassNotFound
//  2. scheduled_at vs now     -> ErrClassInPast
//  3. confirmed-booking check -> ErrDuplicateBooking
//  4. atomic slot decrement   -> ErrClassFull when no row was affected
//  5. insert booking row
//
// The duplicate check deliberately precedes the capacity check: a returning
// caller is told "you already have a spot" even when the class has since
// filled. All five steps share one transaction; any rejection or failure
// rolls the whole unit back.
func (c *bookingCommandsImpl) AttemptBooking(ctx context.Context, classID int64, clientName, clientEmail string) (*AttemptBookingResult, error) {
	now := c.clock.Now()

	entity, err := booking.NewBooking(classID, clientName, clientEmail, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cls, err := tx.Classes().FindByID(ctx, classID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrClassNotFound
			}
			return err
		}

		if cls.HasStarted(now) {
			return ErrClassInPast
		}

		exists, err := tx.Bookings().HasConfirmed(ctx, classID, entity.ClientEmail())
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateBooking
		}

		decremented, err := tx.Classes().DecrementSlot(ctx, classID)
		if err != nil {
			return err
		}
		if !decremented {
			return ErrClassFull
		}

		id, err := tx.Bookings().Create(ctx, entity)
		if err != nil {
			// The partial unique index fires when two transactions race on
			// the same email; report it as the duplicate it is.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateBooking
			}
			return err
		}

		bookingID = id
		return nil
	})
	if err != nil {
		return nil, c.classifyBookingErr(err, classID)
	}

	return &AttemptBookingResult{BookingID: bookingID}, nil
}

// CancelBooking transitions a confirmed booking to cancelled and restores
// the freed slot, in the same transaction. Succeeds only when the booking
// exists, is confirmed, and belongs to the caller's email.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, clientEmail string) error {
	email := booking.NormalizeEmail(clientEmail)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotOwned
			}
			return err
		}

		cancelled, err := tx.Bookings().MarkCancelled(ctx, bookingID, email)
		if err != nil {
			return err
		}
		if !cancelled {
			return ErrBookingNotOwned
		}

		// Freed capacity goes back to the pool. The guard against exceeding
		// total_slots makes a double restore impossible even if the schema
		// check were missing.
		if _, err := tx.Classes().RestoreSlot(ctx, existing.ClassID()); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotOwned) {
			return err
		}
		slog.Error("cancel booking transaction failed", "booking_id", bookingID, "error", err.Error())
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (c *bookingCommandsImpl) classifyBookingErr(err error, classID int64) error {
	switch {
	case errors.Is(err, ErrClassNotFound),
		errors.Is(err, ErrClassInPast),
		errors.Is(err, ErrClassFull),
		errors.Is(err, ErrDuplicateBooking):
		return err
	default:
		slog.Error("booking transaction failed", "class_id", classID, "error", err.Error())
		return errs.Mark(err, ErrStorageFailure)
	}
}
