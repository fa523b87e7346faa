package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

func intPtr(v int) *int { return &v }

func TestReviseEditedQuestionIsReissued(t *testing.T) {
	existing := FromStored([]models.Question{
		{ID: 1, Text: "Q1", Version: 1},
	})

	out := Revise(existing, []Draft{{ID: 1, Text: "Q1-edited"}}).Stored()

	require.Len(t, out, 2)
	assert.Equal(t, models.Question{ID: 1, Text: "Q1", Version: 1, Deleted: true}, out[0])
	assert.Equal(t, models.Question{ID: 2, Text: "Q1-edited", Version: 2, OriginalID: intPtr(1)}, out[1])
}

func TestReviseUnchangedQuestionIsKept(t *testing.T) {
	existing := FromStored([]models.Question{
		{ID: 1, Text: "Q1", Options: []string{"a", "b"}, Type: "choice", Required: true, Version: 1},
	})

	out := Revise(existing, []Draft{
		{ID: 1, Text: "Q1", Options: []string{"a", "b"}, Type: "choice", Required: true},
	}).Stored()

	require.Len(t, out, 1)
	assert.False(t, out[0].Deleted)
	assert.Equal(t, 1, out[0].Version)
}

func TestReviseReactivatesRetiredQuestion(t *testing.T) {
	existing := FromStored([]models.Question{
		{ID: 1, Text: "Q1", Version: 1, Deleted: true},
	})

	out := Revise(existing, []Draft{{ID: 1, Text: "Q1"}})

	require.Len(t, out, 1)
	_, active := out[0].(Active)
	assert.True(t, active)
}

func TestReviseRetiresMissingQuestions(t *testing.T) {
	existing := FromStored([]models.Question{
		{ID: 1, Text: "A", Version: 1},
		{ID: 2, Text: "B", Version: 1},
	})

	out := Revise(existing, []Draft{{ID: 2, Text: "B"}}).Stored()

	require.Len(t, out, 2)
	assert.True(t, out[0].Deleted)
	assert.False(t, out[1].Deleted)
	assert.Len(t, Revise(existing, nil).Visible(), 0)
	assert.Len(t, Revise(existing, nil).Stored(), 2)
}

func TestReviseAllocatesFreshIDs(t *testing.T) {
	existing := FromStored([]models.Question{
		{ID: 1, Text: "A", Version: 1},
		{ID: 2, Text: "B", Version: 1},
	})

	out := Revise(existing, []Draft{
		{ID: 1, Text: "A"},
		{ID: 2, Text: "B"},
		{ID: 2, Text: "C"},
		{ID: 0, Text: "D"},
		{ID: 10, Text: "E"},
	}).Stored()

	ids := make([]int, 0, len(out))
	for _, q := range out {
		ids = append(ids, q.ID)
		assert.False(t, q.Deleted, q.Text)
	}

	// 10 is free and kept; collisions and zero ids count up from the
	// highest existing id
	assert.Equal(t, []int{1, 2, 3, 4, 10}, ids)
	assert.Equal(t, "C", out[2].Text)
	assert.Equal(t, 1, out[2].Version)
}

func TestReviseFreshIDIgnoresProposedIDs(t *testing.T) {
	existing := FromStored([]models.Question{{ID: 1, Text: "Q1", Version: 1}})

	out := Revise(existing, []Draft{
		{ID: 1, Text: "Q1 edited"},
		{ID: 5, Text: "new"},
	}).Stored()

	require.Len(t, out, 3)
	assert.True(t, out[0].Deleted)
	assert.Equal(t, 2, out[1].ID)
	assert.Equal(t, "Q1 edited", out[1].Text)
	assert.Equal(t, 5, out[2].ID)
}

func TestReviseFreshIDSkipsTakenIDs(t *testing.T) {
	existing := FromStored([]models.Question{{ID: 1, Text: "Q1", Version: 1}})

	out := Revise(existing, []Draft{
		{ID: 2, Text: "new"},
		{ID: 1, Text: "Q1 edited"},
	}).Stored()

	require.Len(t, out, 3)
	assert.Equal(t, 2, out[1].ID)
	assert.Equal(t, "new", out[1].Text)
	assert.Equal(t, 3, out[2].ID)
	assert.Equal(t, "Q1 edited", out[2].Text)
}

func TestReviseEditsTwice(t *testing.T) {
	set := Initial([]Draft{{Text: "Q1"}})
	set = Revise(set, []Draft{{ID: 1, Text: "Q1 v2"}})
	set = Revise(FromStored(set.Stored()), []Draft{{ID: 2, Text: "Q1 v3"}})

	out := set.Stored()
	require.Len(t, out, 3)
	assert.Equal(t, 3, out[2].ID)
	assert.Equal(t, 3, out[2].Version)
	assert.Equal(t, intPtr(2), out[2].OriginalID)

	e, ok := set.Find(2)
	require.True(t, ok)
	r, retired := e.(Retired)
	require.True(t, retired)
	assert.Equal(t, 3, r.SupersededBy)
}

func TestInitial(t *testing.T) {
	out := Initial([]Draft{{Text: "a"}, {Text: "b", Required: true}}).Stored()

	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].ID)
	assert.Equal(t, 2, out[1].ID)
	assert.Equal(t, 1, out[1].Version)
	assert.True(t, out[1].Required)
}

func TestFromStoredRecoversSuccessor(t *testing.T) {
	set := FromStored([]models.Question{
		{ID: 1, Text: "old", Deleted: true, Version: 1},
		{ID: 2, Text: "new", Version: 2, OriginalID: intPtr(1)},
		{ID: 3, Text: "dropped", Deleted: true, Version: 1},
	})

	r, ok := set[0].(Retired)
	require.True(t, ok)
	assert.Equal(t, 2, r.SupersededBy)

	r, ok = set[2].(Retired)
	require.True(t, ok)
	assert.Zero(t, r.SupersededBy)

	assert.Len(t, set.Visible(), 1)
	assert.Equal(t, 3, set.MaxID())
}

func TestValidateDrafts(t *testing.T) {
	assert.NoError(t, ValidateDrafts([]Draft{{Text: "ok"}}))
	assert.True(t, httperr.IsBusiness(ValidateDrafts([]Draft{{Text: "  "}}), "empty_question_text"))
}
