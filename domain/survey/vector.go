package survey

import (
	"selfchart/domain/core"
)

// QuestionCount is the fixed length of the survey.
const QuestionCount = 100

const (
	// MinAnswer and MaxAnswer bound the Likert scale.
	MinAnswer = 1
	MaxAnswer = 5

	// MidpointAnswer is what callers substitute for unanswered questions
	// before validation. The validator itself never defaults anything.
	MidpointAnswer = 3
)

// ResponseVector is a validated, ordered sequence of exactly 100 Likert
// answers. Position is meaningful: the 1-based question id decides which
// trait bucket an answer feeds.
type ResponseVector []int

// Validate checks a raw answer slice and returns it as a ResponseVector.
// It fails with core.ErrWrongLength when the length is not 100 and with
// core.ErrOutOfRange when any value falls outside [1,5]. Pure, no defaulting.
func Validate(responses []int) (ResponseVector, error) {
	if len(responses) != QuestionCount {
		return nil, core.NewWrongLengthError(len(responses))
	}
	for i, v := range responses {
		if v < MinAnswer || v > MaxAnswer {
			return nil, core.NewOutOfRangeError(i+1, v)
		}
	}
	vec := make(ResponseVector, QuestionCount)
	copy(vec, responses)
	return vec, nil
}

// Answer returns the answer for a 1-based question id.
func (v ResponseVector) Answer(questionID int) int {
	return v[questionID-1]
}

// FillDefaults pads a sparse answer map (question id -> answer) into a full
// raw slice with the midpoint substituted for missing questions. This is the
// UI-layer defaulting step; the output still goes through Validate.
func FillDefaults(answers map[int]int) []int {
	raw := make([]int, QuestionCount)
	for i := range raw {
		if v, ok := answers[i+1]; ok {
			raw[i] = v
		} else {
			raw[i] = MidpointAnswer
		}
	}
	return raw
}
