package survey

import (
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

// ValidateAnswers checks a submission against the current set: every
// answer must point at an active question and every required active
// question needs a non-empty answer.
func ValidateAnswers(set QuestionSet, answers []models.Answer) error {
	given := make(map[int]string, len(answers))
	for _, a := range answers {
		e, ok := set.Find(a.QuestionID)
		if !ok {
			return httperr.ErrValidation("unknown_question")
		}
		if _, retired := e.(Retired); retired {
			return httperr.ErrValidation("unknown_question")
		}
		given[a.QuestionID] = a.Answer
	}

	for _, q := range set.Visible() {
		if q.Required && given[q.ID] == "" {
			return httperr.ErrValidation("missing_required_answer")
		}
	}
	return nil
}
