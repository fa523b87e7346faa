package repository

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/survey"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type SurveyGormRepository struct {
	db *gorm.DB
}

func NewSurveyGormRepository(db *gorm.DB) *SurveyGormRepository {
	return &SurveyGormRepository{db: db}
}

func (r *SurveyGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return withinTx(ctx, r.db, func(tx *gorm.DB) error {
		return fn(&SurveyGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Program
// --------------------------------------------------

func (r *SurveyGormRepository) GetProgram(
	ctx context.Context,
	id uint,
) (*models.Program, error) {

	var p models.Program
	ok, err := first(r.db.WithContext(ctx).Where("id = ?", id), &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (r *SurveyGormRepository) ProgramTitleExists(
	ctx context.Context,
	title string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Program{}).
		Where("LOWER(title) = LOWER(?)", title).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SurveyGormRepository) CreateProgram(
	ctx context.Context,
	p *models.Program,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// --------------------------------------------------
// Survey
// --------------------------------------------------

func (r *SurveyGormRepository) GetSurvey(
	ctx context.Context,
	id uint,
) (*models.Survey, error) {

	var s models.Survey
	ok, err := first(r.db.WithContext(ctx).Where("id = ?", id), &s)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

func (r *SurveyGormRepository) LockSurvey(
	ctx context.Context,
	id uint,
) (*models.Survey, error) {

	var s models.Survey
	ok, err := first(
		r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id),
		&s,
	)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

func (r *SurveyGormRepository) CreateSurvey(
	ctx context.Context,
	s *models.Survey,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SurveyGormRepository) SaveQuestions(
	ctx context.Context,
	surveyID uint,
	questions []models.Question,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Survey{}).
		Where("id = ?", surveyID).
		Update("questions", datatypes.JSONSlice[models.Question](questions)).Error
}

// --------------------------------------------------
// Responses
// --------------------------------------------------

func (r *SurveyGormRepository) CreateResponse(
	ctx context.Context,
	resp *models.SurveyResponse,
) error {
	return r.db.WithContext(ctx).Create(resp).Error
}

// Compile-time check
var _ domain.Repository = (*SurveyGormRepository)(nil)
