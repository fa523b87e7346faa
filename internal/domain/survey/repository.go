package survey

import (
	"context"

	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

// Repository is the survey side of the persistence gateway. Getters return
// (nil, nil) when the row does not exist.
type Repository interface {
	WithinTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Program --------
	GetProgram(
		ctx context.Context,
		id uint,
	) (*models.Program, error)

	ProgramTitleExists(
		ctx context.Context,
		title string,
	) (bool, error)

	CreateProgram(
		ctx context.Context,
		p *models.Program,
	) error

	// -------- Survey --------
	GetSurvey(
		ctx context.Context,
		id uint,
	) (*models.Survey, error)

	// LockSurvey reads the survey FOR UPDATE so concurrent revisions apply
	// one after the other.
	LockSurvey(
		ctx context.Context,
		id uint,
	) (*models.Survey, error)

	CreateSurvey(
		ctx context.Context,
		s *models.Survey,
	) error

	SaveQuestions(
		ctx context.Context,
		surveyID uint,
		questions []models.Question,
	) error

	// -------- Responses --------
	CreateResponse(
		ctx context.Context,
		r *models.SurveyResponse,
	) error
}
