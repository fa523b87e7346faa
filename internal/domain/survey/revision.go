package survey

import (
	"strings"

	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

// ValidateDrafts rejects drafts without text.
func ValidateDrafts(drafts []Draft) error {
	for _, d := range drafts {
		if strings.TrimSpace(d.Text) == "" {
			return httperr.ErrValidation("empty_question_text")
		}
	}
	return nil
}

// Revise computes the next stored question set. Nothing is ever removed:
// edited questions are retired and re-issued under a fresh id, questions
// missing from proposed are retired in place.
func Revise(existing QuestionSet, proposed []Draft) QuestionSet {
	index := make(map[int]int, len(existing))
	for i, e := range existing {
		index[e.Question().ID] = i
	}

	used := make(map[int]bool, len(existing)+len(proposed))
	for _, e := range existing {
		used[e.Question().ID] = true
	}

	// fresh ids count up from the highest existing id, skipping taken ones
	next := existing.MaxID()
	allocate := func() int {
		next++
		for used[next] {
			next++
		}
		used[next] = true
		return next
	}

	out := make(QuestionSet, len(existing))
	copy(out, existing)

	matched := make(map[int]bool, len(existing))
	var appended QuestionSet

	for _, d := range proposed {
		if i, ok := index[d.ID]; ok && d.ID > 0 && !matched[d.ID] {
			matched[d.ID] = true
			old := existing[i].Question()

			if d.sameContent(old) {
				out[i] = Active{Q: old}
				continue
			}

			id := allocate()
			orig := old.ID
			version := max(old.Version, 1) + 1
			out[i] = Retired{Q: old, SupersededBy: id}
			appended = append(appended, Active{Q: models.Question{
				ID:         id,
				Text:       d.Text,
				Options:    d.Options,
				Type:       d.Type,
				Required:   d.Required,
				Version:    version,
				OriginalID: &orig,
			}})
			continue
		}

		id := d.ID
		if id <= 0 || used[id] {
			id = allocate()
		}
		used[id] = true
		appended = append(appended, Active{Q: models.Question{
			ID:       id,
			Text:     d.Text,
			Options:  d.Options,
			Type:     d.Type,
			Required: d.Required,
			Version:  1,
		}})
	}

	for i, e := range existing {
		q := e.Question()
		if matched[q.ID] {
			continue
		}
		if r, ok := e.(Retired); ok {
			out[i] = r
			continue
		}
		out[i] = Retired{Q: q}
	}

	return append(out, appended...)
}

// Initial builds a first version of a question set from drafts, numbering
// from 1 and reallocating duplicate or missing ids.
func Initial(drafts []Draft) QuestionSet {
	return Revise(nil, drafts)
}
