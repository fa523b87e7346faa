package survey

import (
	"context"

	"github.com/BruksfildServices01/counsel-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/survey"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type ReviseSurveyInput struct {
	ActorID   uint
	SurveyID  uint
	Questions []domain.Draft
}

// ReviseSurvey replaces a survey's question list with a new revision.
// Nothing is ever removed: edited and dropped questions are retired.
type ReviseSurvey struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReviseSurvey(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ReviseSurvey {
	return &ReviseSurvey{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ReviseSurvey) Execute(
	ctx context.Context,
	in ReviseSurveyInput,
) (*models.Survey, error) {

	if err := domain.ValidateDrafts(in.Questions); err != nil {
		return nil, err
	}

	var revised models.Survey

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		s, err := tx.LockSurvey(ctx, in.SurveyID)
		if err != nil {
			return err
		}
		if s == nil {
			return httperr.ErrNotFound("survey_not_found")
		}

		next := domain.Revise(domain.FromStored(s.Questions), in.Questions).Stored()

		if err := tx.SaveQuestions(ctx, s.ID, next); err != nil {
			return err
		}

		s.Questions = next
		revised = *s
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ActorID,
		Action:   "survey_revised",
		Entity:   "survey",
		EntityID: &revised.ID,
		Metadata: map[string]any{"questions": len(revised.Questions)},
	})

	return &revised, nil
}
