package shared

import (
	"context"

	"fitbooking/internal/domain/booking"
	"fitbooking/internal/domain/class"
	"fitbooking/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork is the all-or-nothing boundary the booking engine runs its
// decision procedure inside. Every invocation of Within either commits all
// store operations issued through the Tx or rolls back all of them.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failure.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Classes() ClassRepository
	Bookings() BookingRepository
	DB() db.DBTX
}

type ClassRepository interface {
	FindByID(ctx context.Context, id int64) (*class.Offering, error)
	// DecrementSlot atomically reduces available_slots by one only if a slot
	// remains at the instant the statement runs, reporting whether it did.
	// This is the sole serialization point for concurrent bookings of the
	// same class.
	DecrementSlot(ctx context.Context, id int64) (bool, error)
	// RestoreSlot is the guarded inverse used by cancellation; it never
	// pushes available_slots above total_slots.
	RestoreSlot(ctx context.Context, id int64) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	HasConfirmed(ctx context.Context, classID int64, email string) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// MarkCancelled flips status confirmed -> cancelled only when the row
	// exists, is confirmed, and belongs to email; reports whether it did.
	MarkCancelled(ctx context.Context, id uuid.UUID, email string) (bool, error)
}
