package survey

import (
	"context"

	"github.com/BruksfildServices01/counsel-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/survey"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type CreateSurveyInput struct {
	ActorID   uint
	ProgramID uint
	Type      string
	Questions []domain.Draft
}

// CreateSurvey stores a survey whose questions all start at version 1.
type CreateSurvey struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateSurvey(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateSurvey {
	return &CreateSurvey{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateSurvey) Execute(
	ctx context.Context,
	in CreateSurveyInput,
) (*models.Survey, error) {

	if err := domain.ValidateDrafts(in.Questions); err != nil {
		return nil, err
	}

	var created models.Survey

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		p, err := tx.GetProgram(ctx, in.ProgramID)
		if err != nil {
			return err
		}
		if p == nil {
			return httperr.ErrNotFound("program_not_found")
		}

		s := models.Survey{
			ProgramID: in.ProgramID,
			Type:      in.Type,
			Questions: domain.Initial(in.Questions).Stored(),
		}
		if err := tx.CreateSurvey(ctx, &s); err != nil {
			return err
		}

		created = s
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ActorID,
		Action:   "survey_created",
		Entity:   "survey",
		EntityID: &created.ID,
	})

	return &created, nil
}
