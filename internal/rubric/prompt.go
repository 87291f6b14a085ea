package rubric

import (
	"fmt"
	"strings"
)

const systemPromptTemplate = `You are an expert teacher and assessment designer.
Your task is to define a RELATIVE difficulty rubric with 5 levels (1 = easiest, 5 = hardest) for multiple-choice questions generated ONLY from the given document content.

Constraints:
- Difficulty levels are RELATIVE within this document, not absolute exam standards.
- Each level must specify the approximate load on four skills: memory, reasoning, numerical, language. Each between 0.0 and 1.0.
- Level descriptions must be distinct: a reader should be able to tell any two levels apart.

Subject-specific hints:
%s`

// buildSystemPrompt assembles the rubric system prompt for a subject.
func buildSystemPrompt(subject Subject) string {
	return fmt.Sprintf(systemPromptTemplate, subject.Hint())
}

// buildUserMessage assembles the rubric user message from a document
// excerpt. The excerpt is already truncated by the caller.
func buildUserMessage(excerpt, docTitle string) string {
	var b strings.Builder

	b.WriteString("Here is a preview of the document content (may be truncated):\n\n")
	b.WriteString(excerpt)
	b.WriteString("\n\nDocument title: ")
	b.WriteString(docTitle)

	b.WriteString(`

Your task:
Define RELATIVE difficulty levels 1..5 for MCQs generated ONLY from this document. Difficulty is local to this document.

For each level include:
- level: integer 1..5
- name: short title
- description: what makes this level hard or easy
- skill_profile: relative load from 0.0 to 1.0 across memory, reasoning, numerical, language
- example_instruction: natural-language hint for generating a question at this level`)

	return b.String()
}
