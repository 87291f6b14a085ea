package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert question setter creating multiple-choice questions from a given document.

Rules:
- The question must be answerable using ONLY the document content provided. Do not use outside knowledge.
- Generate exactly one question with exactly 4 options where exactly one is correct.
- Distractors must be plausible and reflect likely misunderstandings of the document, not random values.
- The question stem must be clear and self-contained.
- Target the requested difficulty level and its skill profile. Higher memory weight means more recall; higher reasoning weight means more inference; higher numerical weight means more calculation; higher language weight means more interpretation of wording.
- The explanation should briefly justify the correct answer with reference to the document.
- Assess the difficulty of the question you produced on the same 1-5 scale and report it honestly.
- Do not repeat any question from the "already generated" list.`

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Document: %s\n", input.DocTitle)
	b.WriteString("Document content (may be truncated):\n\n")
	b.WriteString(input.DocExcerpt)

	fmt.Fprintf(&b, "\n\nTarget difficulty level: %d (%s)\n", input.Level.Number, input.Level.Name)
	fmt.Fprintf(&b, "Level description: %s\n", input.Level.Description)
	if input.Level.ExampleInstruction != "" {
		fmt.Fprintf(&b, "Example instruction for this level: %s\n", input.Level.ExampleInstruction)
	}

	fmt.Fprintf(&b, "Skill profile (0.0-1.0): %s\n", input.Profile)

	if input.Extra != "" {
		fmt.Fprintf(&b, "\nAdditional instruction: %s\n", input.Extra)
	}

	b.WriteString("\nAlready generated in this run:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}
