package survey

import (
	"slices"

	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

// Entry is one question in a stored set: either Active or Retired.
type Entry interface {
	Question() models.Question
	isEntry()
}

type Active struct {
	Q models.Question
}

// Retired keeps a question resolvable for old responses. SupersededBy is
// the id of the question that replaced it, zero when it was just removed.
type Retired struct {
	Q            models.Question
	SupersededBy int
}

func (a Active) Question() models.Question {
	q := a.Q
	q.Deleted = false
	return q
}

func (r Retired) Question() models.Question {
	q := r.Q
	q.Deleted = true
	return q
}

func (Active) isEntry()  {}
func (Retired) isEntry() {}

type QuestionSet []Entry

// FromStored lifts the flat stored list into a QuestionSet, recovering
// SupersededBy links from original_id.
func FromStored(qs []models.Question) QuestionSet {
	successor := make(map[int]int)
	for _, q := range qs {
		if q.OriginalID != nil {
			successor[*q.OriginalID] = q.ID
		}
	}

	set := make(QuestionSet, 0, len(qs))
	for _, q := range qs {
		if q.Deleted {
			set = append(set, Retired{Q: q, SupersededBy: successor[q.ID]})
			continue
		}
		set = append(set, Active{Q: q})
	}
	return set
}

// Stored flattens the set for persistence, active and retired alike.
func (s QuestionSet) Stored() []models.Question {
	out := make([]models.Question, 0, len(s))
	for _, e := range s {
		out = append(out, e.Question())
	}
	return out
}

// Visible is the read-side filter: active questions only.
func (s QuestionSet) Visible() []models.Question {
	out := make([]models.Question, 0, len(s))
	for _, e := range s {
		if a, ok := e.(Active); ok {
			out = append(out, a.Question())
		}
	}
	return out
}

func (s QuestionSet) Find(id int) (Entry, bool) {
	for _, e := range s {
		if e.Question().ID == id {
			return e, true
		}
	}
	return nil, false
}

func (s QuestionSet) MaxID() int {
	highest := 0
	for _, e := range s {
		if id := e.Question().ID; id > highest {
			highest = id
		}
	}
	return highest
}

// Draft is a proposed question. ID zero means new.
type Draft struct {
	ID       int      `json:"id"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
}

func (d Draft) sameContent(q models.Question) bool {
	return d.Text == q.Text &&
		d.Type == q.Type &&
		d.Required == q.Required &&
		slices.Equal(normalize(d.Options), normalize(q.Options))
}

func normalize(opts []string) []string {
	if len(opts) == 0 {
		return nil
	}
	return opts
}
