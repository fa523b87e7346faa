package booking

import (
	"context"

	"github.com/BruksfildServices01/counsel-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type UpdateBookingInput struct {
	BookingID uint
	Actor     Actor
	Patch     domain.Patch
}

type UpdateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) (*models.Booking, error) {

	patch := in.Patch

	// --------------------------------------------------
	// Field formats
	// --------------------------------------------------
	if patch.Date != nil {
		date, err := domain.ParseDate(*patch.Date)
		if err != nil {
			return nil, err
		}
		patch.Date = &date
	}

	if patch.Status != nil {
		if _, err := domain.ParseStatus(*patch.Status); err != nil {
			return nil, err
		}
	}

	var updated *models.Booking

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		current, err := tx.GetBooking(ctx, in.BookingID)
		if err != nil {
			return err
		}
		if current == nil {
			return httperr.ErrNotFound("booking_not_found")
		}

		if err := uc.authorize(ctx, tx, in.Actor, current); err != nil {
			return err
		}

		// --------------------------------------------------
		// Foreign keys
		// --------------------------------------------------
		if patch.ConsultantID != nil {
			c, err := tx.GetConsultant(ctx, *patch.ConsultantID)
			if err != nil {
				return err
			}
			if c == nil {
				return domain.ConsultantNotFound.Err()
			}
		}

		if patch.SlotID != nil {
			s, err := tx.GetSlot(ctx, *patch.SlotID)
			if err != nil {
				return err
			}
			if s == nil {
				return domain.SlotNotFound.Err()
			}
		}

		// --------------------------------------------------
		// Status edge
		// --------------------------------------------------
		if patch.Status != nil {
			if err := domain.CanTransition(domain.Status(current.Status), domain.Status(*patch.Status)); err != nil {
				return err
			}
		}

		// --------------------------------------------------
		// Moving an active booking must not take a held slot
		// --------------------------------------------------
		merged := patch.Apply(*current)
		if patch.Moves(*current) && domain.Status(merged.Status).IsActive() {
			if err := checkMove(ctx, tx, merged); err != nil {
				return err
			}
		}

		if !patch.IsEmpty() {
			if err := tx.UpdateBookingColumns(ctx, current.ID, patch.Columns()); err != nil {
				if httperr.IsUniqueViolation(err, domain.ActiveSlotIndex) {
					return domain.SlotTaken.Err()
				}
				return err
			}
		}

		updated, err = tx.GetBooking(ctx, current.ID)
		return err
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.Actor.UserID,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &updated.ID,
		Metadata: patch.Columns(),
	})

	return updated, nil
}

// authorize lets admins through and restricts consultants to their own
// bookings.
func (uc *UpdateBooking) authorize(
	ctx context.Context,
	tx domain.Repository,
	actor Actor,
	b *models.Booking,
) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.Role != models.RoleConsultant {
		return httperr.ErrUnauthorized("not_booking_owner")
	}

	own, err := tx.GetConsultantByUser(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if own == nil || own.ID != b.ConsultantID {
		return httperr.ErrUnauthorized("not_booking_owner")
	}
	return nil
}

func checkMove(
	ctx context.Context,
	tx domain.Repository,
	merged models.Booking,
) error {

	consultant, err := tx.LockConsultant(ctx, merged.ConsultantID)
	if err != nil {
		return err
	}
	slot, err := tx.GetSlot(ctx, merged.SlotID)
	if err != nil {
		return err
	}

	taken, err := tx.ListSlotBookings(
		ctx,
		merged.ConsultantID,
		merged.SlotID,
		merged.Date,
		domain.ActiveStatusStrings(),
	)
	if err != nil {
		return err
	}

	req := domain.Request{
		ConsultantID: merged.ConsultantID,
		SlotID:       merged.SlotID,
		Date:         merged.Date,
		MemberID:     merged.MemberID,
	}
	facts := domain.Facts{
		Consultant:      consultant,
		Slot:            slot,
		SlotBookings:    taken,
		IgnoreBookingID: merged.ID,
	}

	return domain.CanMove(req, facts).Err()
}
