package booking

import (
	"context"

	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type ListFilter struct {
	MemberID     uint
	ConsultantID uint
	Status       string
}

// Repository is the booking side of the persistence gateway. Getters return
// (nil, nil) when the row does not exist.
type Repository interface {
	// WithinTx runs fn against a repository bound to one transaction.
	// A non-nil error from fn rolls everything back.
	WithinTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Consultant / Slot / Member --------
	GetConsultant(
		ctx context.Context,
		id uint,
	) (*models.Consultant, error)

	GetConsultantByUser(
		ctx context.Context,
		userID uint,
	) (*models.Consultant, error)

	// LockConsultant reads the consultant row FOR UPDATE, serializing
	// bookings against the same consultant.
	LockConsultant(
		ctx context.Context,
		id uint,
	) (*models.Consultant, error)

	GetSlot(
		ctx context.Context,
		id uint,
	) (*models.Slot, error)

	// LockMember reads the member's user row FOR UPDATE, serializing the
	// active-booking count for that member.
	LockMember(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Booking (reads) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListMemberBookings(
		ctx context.Context,
		memberID uint,
		statuses []string,
	) ([]models.Booking, error)

	ListSlotBookings(
		ctx context.Context,
		consultantID uint,
		slotID uint,
		date string,
		statuses []string,
	) ([]models.Booking, error)

	ListBookings(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Booking, error)

	// -------- Booking (writes) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBookingColumns(
		ctx context.Context,
		id uint,
		columns map[string]any,
	) error

	// DeleteBooking reports whether a row was removed.
	DeleteBooking(
		ctx context.Context,
		id uint,
	) (bool, error)
}

// Locker guards the check-then-insert window across processes. Acquire
// blocks until the key is held or ctx ends.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
