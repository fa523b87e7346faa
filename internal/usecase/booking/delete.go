package booking

import (
	"context"

	"github.com/BruksfildServices01/counsel-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
)

// DeleteBooking removes the row whatever its status. It is the admin
// escape hatch, not a cancellation.
type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	actorID uint,
	bookingID uint,
) error {

	removed, err := uc.repo.DeleteBooking(ctx, bookingID)
	if err != nil {
		return httperr.ErrOperationFailed(err)
	}
	if !removed {
		return httperr.ErrNotFound("booking_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &bookingID,
	})

	return nil
}
