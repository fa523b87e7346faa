package booking

import (
	"context"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type ListBookingsInput struct {
	Actor        Actor
	Status       string
	MemberID     uint
	ConsultantID uint
}

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute scopes the listing to the caller: members see their own
// bookings, consultants the ones they provide, admins filter freely.
func (uc *ListBookings) Execute(
	ctx context.Context,
	in ListBookingsInput,
) ([]models.Booking, error) {

	if in.Status != "" {
		if _, err := domain.ParseStatus(in.Status); err != nil {
			return nil, err
		}
	}

	filter := domain.ListFilter{Status: in.Status}

	switch in.Actor.Role {
	case models.RoleAdmin:
		filter.MemberID = in.MemberID
		filter.ConsultantID = in.ConsultantID
	case models.RoleConsultant:
		c, err := uc.repo.GetConsultantByUser(ctx, in.Actor.UserID)
		if err != nil {
			return nil, httperr.ErrOperationFailed(err)
		}
		if c == nil {
			return nil, domain.ConsultantNotFound.Err()
		}
		filter.ConsultantID = c.ID
	default:
		filter.MemberID = in.Actor.UserID
	}

	out, err := uc.repo.ListBookings(ctx, filter)
	if err != nil {
		return nil, httperr.ErrOperationFailed(err)
	}
	return out, nil
}
