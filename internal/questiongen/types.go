package questiongen

import "github.com/abhisek/logiq/internal/rubric"

// Option is one answer choice of a multiple-choice question.
type Option struct {
	// Text is the choice shown to the reader.
	Text string

	// Correct marks the single right choice.
	Correct bool
}

// Question is a generated multiple-choice question ready for display.
type Question struct {
	// Text is the question stem. Plain text, self-contained, answerable
	// from the source document alone.
	Text string

	// Options are the answer choices. Exactly one carries Correct = true.
	Options []Option

	// Explanation is a brief justification of the correct answer, shown
	// after the reader answers.
	Explanation string

	// Difficulty is the LLM's self-assessed difficulty (1-5) of the
	// question it produced. Checked against the requested level.
	Difficulty int

	// Level is the rubric level the question was requested at.
	Level int

	// Profile is the effective skill profile the question was generated
	// with: the level's base profile merged with any caller override.
	Profile rubric.SkillProfile
}

// CorrectIndex returns the index of the correct option, or -1 if none or
// more than one option is marked correct.
func (q *Question) CorrectIndex() int {
	idx := -1
	for i, opt := range q.Options {
		if opt.Correct {
			if idx != -1 {
				return -1
			}
			idx = i
		}
	}
	return idx
}

// GenerateInput holds all context needed to generate one question.
type GenerateInput struct {
	// DocExcerpt is the source document text the question must be built
	// from, already truncated to the prompt budget.
	DocExcerpt string

	// DocTitle names the source document in the prompt.
	DocTitle string

	// Level is the rubric level to target, including its description,
	// skill profile, and example instruction.
	Level rubric.Level

	// Profile is the effective skill profile after merging any caller
	// override onto the level's base profile.
	Profile rubric.SkillProfile

	// Extra is an optional free-form caller instruction, e.g.
	// "focus on chapter 2" or "use real-world scenarios".
	Extra string

	// PriorQuestions contains the stems of questions already generated in
	// this run. Used for deduplication in the prompt.
	PriorQuestions []string
}
