package consultant

import (
	"context"

	"github.com/BruksfildServices01/counsel-scheduler/internal/audit"
	"github.com/BruksfildServices01/counsel-scheduler/internal/domain/booking"
	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

// DeleteConsultant removes a consultant with no booking history, or
// deactivates one that has any: open bookings are cancelled, completed
// ones stay, and the user is set inactive.
type DeleteConsultant struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteConsultant(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteConsultant {
	return &DeleteConsultant{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteConsultant) Execute(
	ctx context.Context,
	actorID uint,
	consultantID uint,
) (*domain.DeletionResult, error) {

	var result domain.DeletionResult

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		// holds off booking creation for this consultant until commit
		c, err := tx.LockConsultant(ctx, consultantID)
		if err != nil {
			return err
		}
		if c == nil {
			return httperr.ErrNotFound("consultant_not_found")
		}

		bookings, err := tx.ListConsultantBookings(ctx, consultantID)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// No history: remove everything, leaves first
		// --------------------------------------------------
		if len(bookings) == 0 {
			if err := tx.DeleteSlotAssignments(ctx, consultantID); err != nil {
				return err
			}
			if err := tx.DeleteConsultant(ctx, consultantID); err != nil {
				return err
			}
			if err := tx.DeleteProfile(ctx, c.UserID); err != nil {
				return err
			}
			if err := tx.DeleteUser(ctx, c.UserID); err != nil {
				return err
			}

			result = domain.DeletionResult{Outcome: domain.CompletelyDeleted}
			return nil
		}

		// --------------------------------------------------
		// History: cancel open bookings, deactivate the user
		// --------------------------------------------------
		toCancel, completed := domain.Partition(bookings)

		cancelled, err := tx.SetBookingsStatus(ctx, toCancel, string(booking.StatusCancelled))
		if err != nil {
			return err
		}

		if err := tx.SetUserStatus(ctx, c.UserID, models.UserStatusInactive); err != nil {
			return err
		}

		result = domain.DeletionResult{
			Outcome:        domain.DeactivatedWithCascade,
			CancelledCount: int(cancelled),
			CompletedCount: completed,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "consultant_" + string(result.Outcome),
		Entity:   "consultant",
		EntityID: &consultantID,
		Metadata: result,
	})

	return &result, nil
}
