package consultant

import (
	"context"

	"github.com/BruksfildServices01/counsel-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type CreateConsultantInput struct {
	ActorID       uint
	UserID        uint
	MeetingLink   string
	Certification string
	Speciality    string
}

// CreateConsultant promotes an existing active user to consultant.
type CreateConsultant struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateConsultant(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateConsultant {
	return &CreateConsultant{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateConsultant) Execute(
	ctx context.Context,
	in CreateConsultantInput,
) (*models.Consultant, error) {

	var created models.Consultant

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		u, err := tx.GetUser(ctx, in.UserID)
		if err != nil {
			return err
		}
		if u == nil || u.Status != models.UserStatusActive {
			return httperr.ErrNotFound("user_not_found")
		}

		existing, err := tx.GetConsultantByUser(ctx, in.UserID)
		if err != nil {
			return err
		}
		if existing != nil {
			return httperr.ErrConflict("user_already_consultant")
		}

		c := models.Consultant{
			UserID:        in.UserID,
			MeetingLink:   in.MeetingLink,
			Certification: in.Certification,
			Speciality:    in.Speciality,
		}
		if err := tx.CreateConsultant(ctx, &c); err != nil {
			if httperr.IsUniqueViolation(err, "") {
				return httperr.ErrConflict("user_already_consultant")
			}
			return err
		}

		if err := tx.SetUserRole(ctx, in.UserID, models.RoleConsultant); err != nil {
			return err
		}

		created = c
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ActorID,
		Action:   "consultant_created",
		Entity:   "consultant",
		EntityID: &created.ID,
	})

	return &created, nil
}
