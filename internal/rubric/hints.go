package rubric

// Subject selects a subject-specific difficulty hint for rubric building.
type Subject string

const (
	SubjectPhysics   Subject = "physics"
	SubjectMath      Subject = "math"
	SubjectChemistry Subject = "chemistry"
	SubjectBiology   Subject = "biology"
	SubjectHistory   Subject = "history"
	SubjectEnglish   Subject = "english"
	SubjectGeneric   Subject = "generic"
)

// ParseSubject maps user input to a known subject, falling back to generic.
func ParseSubject(s string) Subject {
	switch Subject(s) {
	case SubjectPhysics, SubjectMath, SubjectChemistry, SubjectBiology,
		SubjectHistory, SubjectEnglish, SubjectGeneric:
		return Subject(s)
	default:
		return SubjectGeneric
	}
}

// subjectHints tells the rubric model what tends to make questions harder
// in each subject. Injected into the system prompt.
var subjectHints = map[Subject]string{
	SubjectPhysics: `Difficulty usually increases with:
- more steps of reasoning
- combining multiple concepts or chapters
- more symbolic/numerical manipulation
- subtle conceptual traps or edge cases`,
	SubjectMath: `Difficulty usually increases with:
- more algebraic / symbolic steps
- non-obvious transformations or tricks
- mixing multiple topics (e.g., algebra + geometry)`,
	SubjectChemistry: `Difficulty usually increases with:
- multiple-step reasoning over reactions or concepts
- quantitative reasoning and conceptual integration`,
	SubjectBiology: `Difficulty usually increases with:
- multi-layered mechanisms, pathways, or interactions
- applying concepts to new or unfamiliar contexts`,
	SubjectHistory: `Difficulty usually increases with:
- deeper causal reasoning between events
- comparing perspectives or ideologies
- inferring motives, bias, or implications`,
	SubjectEnglish: `Difficulty usually increases with:
- more inference and interpretation
- subtle use of tone, theme, or literary devices
- ambiguous or closely related answer options`,
	SubjectGeneric: `Difficulty usually increases with:
- more reasoning and abstraction
- less direct recall
- more complex language or structure`,
}

// Hint returns the difficulty hint for a subject, falling back to generic.
func (s Subject) Hint() string {
	if h, ok := subjectHints[s]; ok {
		return h
	}
	return subjectHints[SubjectGeneric]
}
