package consultant

import (
	"context"

	"github.com/BruksfildServices01/counsel-scheduler/internal/domain/booking"
	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

// ======================================================
// CREATE SLOT
// ======================================================

type CreateSlot struct {
	repo domain.Repository
}

func NewCreateSlot(repo domain.Repository) *CreateSlot {
	return &CreateSlot{repo: repo}
}

func (uc *CreateSlot) Execute(
	ctx context.Context,
	start string,
	end string,
) (*models.Slot, error) {

	if err := booking.ValidateTimeRange(start, end); err != nil {
		return nil, err
	}

	s := models.Slot{StartTime: start, EndTime: end}
	if err := uc.repo.CreateSlot(ctx, &s); err != nil {
		return nil, httperr.ErrOperationFailed(err)
	}
	return &s, nil
}

// ======================================================
// ASSIGN SLOT
// ======================================================

type AssignSlotInput struct {
	ActorUserID  uint
	ActorIsAdmin bool
	ConsultantID uint
	SlotID       uint
	Weekday      int
}

type AssignSlot struct {
	repo domain.Repository
}

func NewAssignSlot(repo domain.Repository) *AssignSlot {
	return &AssignSlot{repo: repo}
}

func (uc *AssignSlot) Execute(
	ctx context.Context,
	in AssignSlotInput,
) (*models.ConsultantSlot, error) {

	if in.Weekday < 0 || in.Weekday > 6 {
		return nil, httperr.ErrValidation("invalid_weekday")
	}

	var created models.ConsultantSlot

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		c, err := tx.GetConsultant(ctx, in.ConsultantID)
		if err != nil {
			return err
		}
		if c == nil {
			return httperr.ErrNotFound("consultant_not_found")
		}
		if !in.ActorIsAdmin && c.UserID != in.ActorUserID {
			return httperr.ErrUnauthorized("not_consultant_owner")
		}

		s, err := tx.GetSlot(ctx, in.SlotID)
		if err != nil {
			return err
		}
		if s == nil {
			return httperr.ErrNotFound("slot_not_found")
		}

		dup, err := tx.HasSlotAssignment(ctx, in.ConsultantID, in.SlotID, in.Weekday)
		if err != nil {
			return err
		}
		if dup {
			return httperr.ErrConflict("slot_already_assigned")
		}

		cs := models.ConsultantSlot{
			ConsultantID: in.ConsultantID,
			SlotID:       in.SlotID,
			Weekday:      in.Weekday,
		}
		if err := tx.CreateSlotAssignment(ctx, &cs); err != nil {
			if httperr.IsUniqueViolation(err, "") {
				return httperr.ErrConflict("slot_already_assigned")
			}
			return err
		}

		cs.Slot = *s
		created = cs
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ======================================================
// LIST
// ======================================================

type ConsultantSchedule struct {
	models.Consultant
	Slots []models.ConsultantSlot `json:"slots"`
}

type ListConsultants struct {
	repo domain.Repository
}

func NewListConsultants(repo domain.Repository) *ListConsultants {
	return &ListConsultants{repo: repo}
}

func (uc *ListConsultants) Execute(ctx context.Context) ([]ConsultantSchedule, error) {
	consultants, err := uc.repo.ListConsultants(ctx)
	if err != nil {
		return nil, httperr.ErrOperationFailed(err)
	}

	out := make([]ConsultantSchedule, 0, len(consultants))
	for _, c := range consultants {
		slots, err := uc.repo.ListSlotAssignments(ctx, c.ID)
		if err != nil {
			return nil, httperr.ErrOperationFailed(err)
		}
		out = append(out, ConsultantSchedule{Consultant: c, Slots: slots})
	}
	return out, nil
}
