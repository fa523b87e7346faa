package booking

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/counsel-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
	"github.com/BruksfildServices01/counsel-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	MemberID     uint
	ConsultantID uint
	SlotID       uint
	Date         string
	Notes        string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	locker domain.Locker
	clock  *timezone.Clock
	audit  *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	locker domain.Locker,
	clock *timezone.Clock,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		locker: locker,
		clock:  clock,
		audit:  audit,
	}
}

func slotLockKey(consultantID, slotID uint, date string) string {
	return fmt.Sprintf("booking:slot:%d:%d:%s", consultantID, slotID, date)
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Date
	// --------------------------------------------------
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if date < uc.clock.Today() {
		return nil, httperr.ErrValidation("date_in_past")
	}

	req := domain.Request{
		ConsultantID: in.ConsultantID,
		SlotID:       in.SlotID,
		Date:         date,
		MemberID:     in.MemberID,
	}

	// --------------------------------------------------
	// 2. Cross-process slot lock
	// --------------------------------------------------
	release, err := uc.locker.Acquire(ctx, slotLockKey(in.ConsultantID, in.SlotID, date))
	if err != nil {
		return nil, err
	}
	defer release()

	// --------------------------------------------------
	// 3. Rules + insert, one transaction
	// --------------------------------------------------
	var created models.Booking

	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		facts, err := loadFacts(ctx, tx, req)
		if err != nil {
			return err
		}

		if d := domain.CanBook(req, facts); !d.Allowed {
			return d.Err()
		}

		b := models.Booking{
			ConsultantID: in.ConsultantID,
			MemberID:     in.MemberID,
			SlotID:       in.SlotID,
			Date:         date,
			Status:       string(domain.InitialStatus()),
			Notes:        in.Notes,
			MeetingLink:  facts.Consultant.MeetingLink,
		}

		if err := tx.CreateBooking(ctx, &b); err != nil {
			if httperr.IsUniqueViolation(err, domain.ActiveSlotIndex) {
				return domain.SlotTaken.Err()
			}
			return err
		}

		created = b
		return nil
	})

	if err != nil {
		if httperr.IsKind(err, httperr.KindConflict) {
			uc.audit.Dispatch(audit.Event{
				ActorID: &in.MemberID,
				Action:  "booking_conflict",
				Entity:  "booking",
				Metadata: map[string]any{
					"consultant_id": in.ConsultantID,
					"slot_id":       in.SlotID,
					"date":          date,
					"reason":        err.Error(),
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 4. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.MemberID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &created.ID,
	})

	return &created, nil
}

// loadFacts reads what CanBook needs. The consultant and member rows are
// locked in that order, so concurrent creates for the same consultant or
// the same member queue behind each other.
func loadFacts(
	ctx context.Context,
	tx domain.Repository,
	req domain.Request,
) (domain.Facts, error) {

	var facts domain.Facts

	consultant, err := tx.LockConsultant(ctx, req.ConsultantID)
	if err != nil {
		return facts, err
	}
	facts.Consultant = consultant

	slot, err := tx.GetSlot(ctx, req.SlotID)
	if err != nil {
		return facts, err
	}
	facts.Slot = slot

	if consultant == nil || slot == nil {
		return facts, nil
	}

	member, err := tx.LockMember(ctx, req.MemberID)
	if err != nil {
		return facts, err
	}
	if member == nil {
		return facts, httperr.ErrNotFound("member_not_found")
	}

	active := domain.ActiveStatusStrings()

	facts.MemberBookings, err = tx.ListMemberBookings(ctx, req.MemberID, active)
	if err != nil {
		return facts, err
	}

	facts.SlotBookings, err = tx.ListSlotBookings(ctx, req.ConsultantID, req.SlotID, req.Date, active)
	if err != nil {
		return facts, err
	}

	return facts, nil
}
