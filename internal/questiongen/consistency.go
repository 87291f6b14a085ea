package questiongen

import "fmt"

// ConsistencyValidator checks the model's self-assessed difficulty against
// the requested rubric level. A drift of one level is tolerated; models are
// noisy graders of their own output.
type ConsistencyValidator struct{}

func (v *ConsistencyValidator) Name() string { return "consistency" }

func (v *ConsistencyValidator) Validate(q *Question, input GenerateInput) *ValidationError {
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("self-assessed difficulty %d outside 1-5", q.Difficulty),
			Retryable: true,
		}
	}

	drift := q.Difficulty - input.Level.Number
	if drift < 0 {
		drift = -drift
	}
	if drift > 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message: fmt.Sprintf("self-assessed difficulty %d too far from requested level %d",
				q.Difficulty, input.Level.Number),
			Retryable: true,
		}
	}
	return nil
}
