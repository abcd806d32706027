package scoring

import (
	"testing"

	"career-compass/internal/domain"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func testCatalog() map[string]*domain.Question {
	return map[string]*domain.Question{
		"q1": {
			ID:   "q1",
			Text: "When faced with a complex problem, I am most likely to:",
			Options: []domain.Option{
				{Text: "A", Weight: 10, Tags: []string{"logical-thinking"}},
				{Text: "B", Weight: 8, Tags: []string{"creativity"}},
			},
		},
		"q2": {
			ID:   "q2",
			Text: "Which of the following activities do you enjoy the most?",
			Options: []domain.Option{
				{Text: "C", Weight: 5, Tags: []string{"creativity", "arts-interest"}},
				{Text: "D", Weight: 0, Tags: []string{"teamwork"}},
			},
		},
	}
}

func TestAggregate_AccumulatesWeightsAndCounts(t *testing.T) {
	catalog := testCatalog()
	responses := []Response{
		{QuestionID: "q1", SelectedOption: strPtr("B")},
		{QuestionID: "q2", SelectedOption: strPtr("C")},
	}

	accum, records := Aggregate(catalog, responses)

	assert.Len(t, records, 2)
	assert.Equal(t, Accumulator{TotalWeight: 13, ContributingCount: 2}, accum["creativity"])
	assert.Equal(t, Accumulator{TotalWeight: 5, ContributingCount: 1}, accum["arts-interest"])
	assert.NotContains(t, accum, "logical-thinking")
}

func TestAggregate_SkippedResponsesContributeNothing(t *testing.T) {
	catalog := testCatalog()
	responses := []Response{
		{QuestionID: "q1", SelectedOption: nil},
		{QuestionID: "q2", SelectedOption: nil},
	}

	accum, records := Aggregate(catalog, responses)

	assert.Empty(t, accum)
	assert.Empty(t, records)
}

func TestAggregate_UnknownQuestionIgnored(t *testing.T) {
	accum, records := Aggregate(testCatalog(), []Response{
		{QuestionID: "missing", SelectedOption: strPtr("A")},
	})

	assert.Empty(t, accum)
	assert.Empty(t, records)
}

func TestAggregate_UnmatchedOptionTextIgnored(t *testing.T) {
	accum, records := Aggregate(testCatalog(), []Response{
		{QuestionID: "q1", SelectedOption: strPtr("no such option")},
	})

	assert.Empty(t, accum)
	assert.Empty(t, records)
}

func TestAggregate_ZeroWeightDefaultsToOne(t *testing.T) {
	accum, _ := Aggregate(testCatalog(), []Response{
		{QuestionID: "q2", SelectedOption: strPtr("D")},
	})

	assert.Equal(t, Accumulator{TotalWeight: 1, ContributingCount: 1}, accum["teamwork"])
}

func TestAggregate_RecordsSnapshotSelectedOption(t *testing.T) {
	_, records := Aggregate(testCatalog(), []Response{
		{QuestionID: "q1", SelectedOption: strPtr("A"), ResponseTimeSec: 12},
	})

	assert.Len(t, records, 1)
	assert.Equal(t, "q1", records[0].QuestionID)
	assert.Equal(t, "A", records[0].OptionText)
	assert.Equal(t, float64(10), records[0].OptionWeight)
	assert.Equal(t, []string{"logical-thinking"}, records[0].OptionTags)
	assert.Equal(t, 12, records[0].ResponseTimeSec)
	assert.False(t, records[0].WasSkipped)
}
