package survey

import (
	"context"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/survey"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type GetSurvey struct {
	repo domain.Repository
}

func NewGetSurvey(repo domain.Repository) *GetSurvey {
	return &GetSurvey{repo: repo}
}

// Execute returns the survey with active questions only, unless
// includeDeleted asks for the full history.
func (uc *GetSurvey) Execute(
	ctx context.Context,
	surveyID uint,
	includeDeleted bool,
) (*models.Survey, error) {

	s, err := uc.repo.GetSurvey(ctx, surveyID)
	if err != nil {
		return nil, httperr.ErrOperationFailed(err)
	}
	if s == nil {
		return nil, httperr.ErrNotFound("survey_not_found")
	}

	if !includeDeleted {
		s.Questions = domain.FromStored(s.Questions).Visible()
	}
	return s, nil
}
