package consultant

import (
	"context"

	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

// Repository is the consultant side of the persistence gateway. Getters
// return (nil, nil) when the row does not exist.
type Repository interface {
	WithinTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Consultant --------
	GetConsultant(
		ctx context.Context,
		id uint,
	) (*models.Consultant, error)

	GetConsultantByUser(
		ctx context.Context,
		userID uint,
	) (*models.Consultant, error)

	// LockConsultant reads the consultant with a row lock held until the
	// transaction ends. Booking creation takes the same lock.
	LockConsultant(
		ctx context.Context,
		id uint,
	) (*models.Consultant, error)

	ListConsultants(
		ctx context.Context,
	) ([]models.Consultant, error)

	CreateConsultant(
		ctx context.Context,
		c *models.Consultant,
	) error

	DeleteConsultant(
		ctx context.Context,
		id uint,
	) error

	// -------- User / Profile --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	SetUserRole(
		ctx context.Context,
		userID uint,
		role string,
	) error

	SetUserStatus(
		ctx context.Context,
		userID uint,
		status string,
	) error

	DeleteProfile(
		ctx context.Context,
		userID uint,
	) error

	DeleteUser(
		ctx context.Context,
		userID uint,
	) error

	// -------- Bookings owned by the consultant --------
	ListConsultantBookings(
		ctx context.Context,
		consultantID uint,
	) ([]models.Booking, error)

	// SetBookingsStatus bulk-updates the given bookings and returns the
	// number of rows changed.
	SetBookingsStatus(
		ctx context.Context,
		ids []uint,
		status string,
	) (int64, error)

	// -------- Schedule --------
	GetSlot(
		ctx context.Context,
		id uint,
	) (*models.Slot, error)

	CreateSlot(
		ctx context.Context,
		s *models.Slot,
	) error

	HasSlotAssignment(
		ctx context.Context,
		consultantID uint,
		slotID uint,
		weekday int,
	) (bool, error)

	CreateSlotAssignment(
		ctx context.Context,
		cs *models.ConsultantSlot,
	) error

	ListSlotAssignments(
		ctx context.Context,
		consultantID uint,
	) ([]models.ConsultantSlot, error)

	DeleteSlotAssignments(
		ctx context.Context,
		consultantID uint,
	) error
}
