package survey

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/survey"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type SubmitResponseInput struct {
	SurveyID uint
	UserID   uint
	Role     string
	Answers  []models.Answer
}

type SubmitResponse struct {
	repo domain.Repository
	now  func() time.Time
}

func NewSubmitResponse(repo domain.Repository) *SubmitResponse {
	return &SubmitResponse{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *SubmitResponse) Execute(
	ctx context.Context,
	in SubmitResponseInput,
) (*models.SurveyResponse, error) {

	if in.Role != models.RoleMember {
		return nil, httperr.ErrUnauthorized("only_members")
	}

	s, err := uc.repo.GetSurvey(ctx, in.SurveyID)
	if err != nil {
		return nil, httperr.ErrOperationFailed(err)
	}
	if s == nil {
		return nil, httperr.ErrNotFound("survey_not_found")
	}

	if err := domain.ValidateAnswers(domain.FromStored(s.Questions), in.Answers); err != nil {
		return nil, err
	}

	r := models.SurveyResponse{
		SurveyID:    s.ID,
		UserID:      in.UserID,
		Answers:     in.Answers,
		SubmittedAt: uc.now().UTC(),
	}
	if err := uc.repo.CreateResponse(ctx, &r); err != nil {
		return nil, httperr.ErrOperationFailed(err)
	}
	return &r, nil
}
