package booking

import (
	"context"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
)

type CheckAvailabilityInput struct {
	MemberID     uint
	ConsultantID uint
	SlotID       uint
	Date         string
}

// CheckAvailability evaluates the booking rules without writing anything.
type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in CheckAvailabilityInput,
) (domain.Decision, error) {

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return domain.Decision{}, err
	}

	req := domain.Request{
		ConsultantID: in.ConsultantID,
		SlotID:       in.SlotID,
		Date:         date,
		MemberID:     in.MemberID,
	}

	var facts domain.Facts

	if facts.Consultant, err = uc.repo.GetConsultant(ctx, in.ConsultantID); err != nil {
		return domain.Decision{}, httperr.ErrOperationFailed(err)
	}
	if facts.Slot, err = uc.repo.GetSlot(ctx, in.SlotID); err != nil {
		return domain.Decision{}, httperr.ErrOperationFailed(err)
	}

	active := domain.ActiveStatusStrings()

	if facts.MemberBookings, err = uc.repo.ListMemberBookings(ctx, in.MemberID, active); err != nil {
		return domain.Decision{}, httperr.ErrOperationFailed(err)
	}
	if facts.SlotBookings, err = uc.repo.ListSlotBookings(ctx, in.ConsultantID, in.SlotID, date, active); err != nil {
		return domain.Decision{}, httperr.ErrOperationFailed(err)
	}

	return domain.CanBook(req, facts), nil
}
