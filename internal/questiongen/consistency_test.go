package questiongen

import (
	"testing"

	"github.com/abhisek/logiq/internal/rubric"
)

func inputAtLevel(n int) GenerateInput {
	return GenerateInput{Level: rubric.Level{Number: n}}
}

func TestConsistency_ExactMatch(t *testing.T) {
	v := &ConsistencyValidator{}
	q := validQuestion()
	q.Difficulty = 3
	if err := v.Validate(q, inputAtLevel(3)); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestConsistency_OneLevelDriftAllowed(t *testing.T) {
	v := &ConsistencyValidator{}
	for _, diff := range []int{2, 4} {
		q := validQuestion()
		q.Difficulty = diff
		if err := v.Validate(q, inputAtLevel(3)); err != nil {
			t.Errorf("difficulty %d vs level 3: expected nil, got %v", diff, err)
		}
	}
}

func TestConsistency_TooFarOff(t *testing.T) {
	v := &ConsistencyValidator{}
	for _, diff := range []int{1, 5} {
		q := validQuestion()
		q.Difficulty = diff
		err := v.Validate(q, inputAtLevel(3))
		if err == nil {
			t.Fatalf("difficulty %d vs level 3: expected error", diff)
		}
		if err.Validator != "consistency" {
			t.Errorf("expected validator %q, got %q", "consistency", err.Validator)
		}
		if !err.Retryable {
			t.Error("expected retryable")
		}
	}
}

func TestConsistency_DifficultyOutOfRange(t *testing.T) {
	v := &ConsistencyValidator{}
	for _, diff := range []int{0, 6, -2} {
		q := validQuestion()
		q.Difficulty = diff
		if err := v.Validate(q, inputAtLevel(1)); err == nil {
			t.Errorf("difficulty %d: expected error", diff)
		}
	}
}
