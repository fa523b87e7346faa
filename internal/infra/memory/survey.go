package memory

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/counsel-scheduler/internal/domain/survey"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

type SurveyRepository struct {
	s    *Store
	inTx bool
}

func NewSurveyRepository(s *Store) *SurveyRepository {
	return &SurveyRepository{s: s}
}

func (r *SurveyRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.s.run(ctx, r.inTx, func() error {
		return fn(&SurveyRepository{s: r.s, inTx: true})
	})
}

func (r *SurveyRepository) GetProgram(_ context.Context, id uint) (*models.Program, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p, ok := r.s.data.programs[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *SurveyRepository) ProgramTitleExists(_ context.Context, title string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.data.programs {
		if strings.EqualFold(p.Title, title) {
			return true, nil
		}
	}
	return false, nil
}

func (r *SurveyRepository) CreateProgram(_ context.Context, p *models.Program) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.data.next("programs")
	p.CreatedAt = r.s.now()
	r.s.data.programs[p.ID] = *p
	return nil
}

func (r *SurveyRepository) GetSurvey(_ context.Context, id uint) (*models.Survey, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sv, ok := r.s.data.surveys[id]
	if !ok {
		return nil, nil
	}
	sv.Questions = append(sv.Questions[:0:0], sv.Questions...)
	return &sv, nil
}

func (r *SurveyRepository) LockSurvey(ctx context.Context, id uint) (*models.Survey, error) {
	return r.GetSurvey(ctx, id)
}

func (r *SurveyRepository) CreateSurvey(_ context.Context, sv *models.Survey) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sv.ID = r.s.data.next("surveys")
	sv.CreatedAt = r.s.now()
	r.s.data.surveys[sv.ID] = *sv
	return nil
}

func (r *SurveyRepository) SaveQuestions(_ context.Context, surveyID uint, questions []models.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sv, ok := r.s.data.surveys[surveyID]
	if !ok {
		return nil
	}
	sv.Questions = append(sv.Questions[:0:0], questions...)
	sv.UpdatedAt = r.s.now()
	r.s.data.surveys[surveyID] = sv
	return nil
}

func (r *SurveyRepository) CreateResponse(_ context.Context, resp *models.SurveyResponse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	resp.ID = r.s.data.next("responses")
	r.s.data.responses[resp.ID] = *resp
	return nil
}

var _ domain.Repository = (*SurveyRepository)(nil)
