package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"career-compass/internal/domain"
)

// jsonValue marshals v into the string form stored in a CLOB column.
// A nil value is stored as the given empty literal so columns never hold
// the SQL string "null".
func jsonValue(v interface{}, emptyLiteral string) (driver.Value, error) {
	if v == nil {
		return emptyLiteral, nil
	}
	jsonData, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// jsonScan unmarshals a CLOB column value into dest. NULL, empty strings
// and a literal "null" all leave dest at its zero value.
func jsonScan(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("jsonScan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		return nil
	}
	return json.Unmarshal(bytesToParse, dest)
}

// StringSlice stores a string array as a JSON CLOB.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return jsonValue([]string(s), "[]")
}

func (s *StringSlice) Scan(value interface{}) error {
	*s = StringSlice{}
	return jsonScan(value, s)
}

// OptionSlice stores question options as a JSON CLOB.
type OptionSlice []Option

// Option mirrors domain.Option in its stored JSON form.
type Option struct {
	Text   string   `json:"text"`
	Weight float64  `json:"weight"`
	Tags   []string `json:"tags"`
}

func (s OptionSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return jsonValue([]Option(s), "[]")
}

func (s *OptionSlice) Scan(value interface{}) error {
	*s = OptionSlice{}
	return jsonScan(value, s)
}

// TagScoreSlice stores normalized tag scores as a JSON CLOB.
type TagScoreSlice []domain.TagScore

func (s TagScoreSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return jsonValue([]domain.TagScore(s), "[]")
}

func (s *TagScoreSlice) Scan(value interface{}) error {
	*s = TagScoreSlice{}
	return jsonScan(value, s)
}

// StreamRecommendationSlice stores ranked streams as a JSON CLOB.
type StreamRecommendationSlice []domain.StreamRecommendation

func (s StreamRecommendationSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return jsonValue([]domain.StreamRecommendation(s), "[]")
}

func (s *StreamRecommendationSlice) Scan(value interface{}) error {
	*s = StreamRecommendationSlice{}
	return jsonScan(value, s)
}

// CareerCompatibilitySlice stores ranked career fields as a JSON CLOB.
type CareerCompatibilitySlice []domain.CareerCompatibility

func (s CareerCompatibilitySlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return jsonValue([]domain.CareerCompatibility(s), "[]")
}

func (s *CareerCompatibilitySlice) Scan(value interface{}) error {
	*s = CareerCompatibilitySlice{}
	return jsonScan(value, s)
}

// InsightsJSON stores the qualitative insights block as a JSON CLOB.
type InsightsJSON domain.Insights

func (i InsightsJSON) Value() (driver.Value, error) {
	return jsonValue(domain.Insights(i), "{}")
}

func (i *InsightsJSON) Scan(value interface{}) error {
	*i = InsightsJSON{}
	return jsonScan(value, i)
}

// ResponseRecordSlice stores the response audit trail as a JSON CLOB.
type ResponseRecordSlice []domain.ResponseRecord

func (s ResponseRecordSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return jsonValue([]domain.ResponseRecord(s), "[]")
}

func (s *ResponseRecordSlice) Scan(value interface{}) error {
	*s = ResponseRecordSlice{}
	return jsonScan(value, s)
}

// InterestTagSlice stores denormalized interest tags as a JSON CLOB.
type InterestTagSlice []domain.InterestTag

func (s InterestTagSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return jsonValue([]domain.InterestTag(s), "[]")
}

func (s *InterestTagSlice) Scan(value interface{}) error {
	*s = InterestTagSlice{}
	return jsonScan(value, s)
}

// CourseRecommendationSlice stores denormalized course suggestions as a JSON CLOB.
type CourseRecommendationSlice []domain.CourseRecommendation

func (s CourseRecommendationSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return jsonValue([]domain.CourseRecommendation(s), "[]")
}

func (s *CourseRecommendationSlice) Scan(value interface{}) error {
	*s = CourseRecommendationSlice{}
	return jsonScan(value, s)
}

// CareerPathSlice stores denormalized career path suggestions as a JSON CLOB.
type CareerPathSlice []domain.CareerPathRecommendation

func (s CareerPathSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return jsonValue([]domain.CareerPathRecommendation(s), "[]")
}

func (s *CareerPathSlice) Scan(value interface{}) error {
	*s = CareerPathSlice{}
	return jsonScan(value, s)
}
