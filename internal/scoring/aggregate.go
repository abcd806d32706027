package scoring

import "career-compass/internal/domain"

// Response is one (question, selected option) pair from a submission.
// A nil SelectedOption marks the response as skipped.
type Response struct {
	QuestionID      string
	SelectedOption  *string
	ResponseTimeSec int
}

// Accumulator collects the raw contributions for one tag across a
// submission: the summed option weights and how many answers contributed.
type Accumulator struct {
	TotalWeight       float64
	ContributingCount int
}

// TagAccumulator maps tag name to its raw accumulator. It is built fresh
// per scoring run and never persisted.
type TagAccumulator map[string]Accumulator

// Aggregate folds responses into per-tag accumulators against the resolved
// question catalog. Skipped responses, responses referencing unknown
// questions, and option texts with no exact match contribute nothing; an
// incomplete quiz is not an error. The returned records snapshot each
// matched option for the result's audit trail.
func Aggregate(catalog map[string]*domain.Question, responses []Response) (TagAccumulator, []domain.ResponseRecord) {
	accum := make(TagAccumulator)
	records := make([]domain.ResponseRecord, 0, len(responses))

	for _, response := range responses {
		if response.SelectedOption == nil {
			continue
		}
		question, ok := catalog[response.QuestionID]
		if !ok {
			continue
		}
		option := question.FindOption(*response.SelectedOption)
		if option == nil {
			continue
		}

		weight := option.Weight
		if weight == 0 {
			weight = 1
		}
		for _, tag := range option.Tags {
			entry := accum[tag]
			entry.TotalWeight += weight
			entry.ContributingCount++
			accum[tag] = entry
		}

		records = append(records, domain.ResponseRecord{
			QuestionID:      response.QuestionID,
			OptionText:      option.Text,
			OptionWeight:    weight,
			OptionTags:      append([]string(nil), option.Tags...),
			ResponseTimeSec: response.ResponseTimeSec,
		})
	}

	return accum, records
}
