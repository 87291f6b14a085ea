package quiz

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/logiq/internal/engine"
	"github.com/abhisek/logiq/internal/questiongen"
	"github.com/abhisek/logiq/internal/rubric"
)

func engineRequest() engine.Request {
	return engine.Request{Path: "/tmp/doc.pdf", Level: 2}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func quizQuestion(stem string, correct int) *questiongen.Question {
	opts := make([]questiongen.Option, 4)
	for i := range opts {
		opts[i] = questiongen.Option{Text: stem + string(rune('a'+i)), Correct: i == correct}
	}
	return &questiongen.Question{
		Text:        stem,
		Options:     opts,
		Explanation: "explanation for " + stem,
		Difficulty:  2,
		Level:       2,
		Profile:     rubric.SkillProfile{Memory: 0.6, Reasoning: 0.4},
	}
}

func readyModel(t *testing.T, questions ...*questiongen.Question) Model {
	t.Helper()
	m := New(nil, engineRequest(), len(questions))
	next, _ := m.Update(questionsReadyMsg{questions: questions})
	model := next.(Model)
	if model.phase != phaseAnswering {
		t.Fatalf("phase = %d, want answering", model.phase)
	}
	return model
}

func TestQuestionsReadyStartsAnswering(t *testing.T) {
	m := readyModel(t, quizQuestion("q1", 0), quizQuestion("q2", 1))
	if m.mc.Question != "q1" {
		t.Errorf("first question = %q", m.mc.Question)
	}
	if len(m.mc.Options) != 4 {
		t.Errorf("options = %d, want 4", len(m.mc.Options))
	}
}

func TestGenerationFailureShowsError(t *testing.T) {
	m := New(nil, engineRequest(), 2)
	next, _ := m.Update(questionsReadyMsg{err: errors.New("provider down")})
	model := next.(Model)
	if model.phase != phaseError {
		t.Errorf("phase = %d, want error", model.phase)
	}
}

func TestCorrectAnswerScores(t *testing.T) {
	m := readyModel(t, quizQuestion("q1", 0))

	// Option 0 is preselected; enter submits it.
	next, _ := m.Update(specialKey(tea.KeyEnter))
	model := next.(Model)
	if model.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", model.phase)
	}
	if model.score != 1 {
		t.Errorf("score = %d, want 1", model.score)
	}
}

func TestWrongAnswerDoesNotScore(t *testing.T) {
	m := readyModel(t, quizQuestion("q1", 0))

	next, _ := m.Update(keyPress('j')) // move to option 1
	next, _ = next.(Model).Update(specialKey(tea.KeyEnter))
	model := next.(Model)
	if model.score != 0 {
		t.Errorf("score = %d, want 0", model.score)
	}
}

func TestFeedbackAdvancesToNextQuestion(t *testing.T) {
	m := readyModel(t, quizQuestion("q1", 0), quizQuestion("q2", 1))

	next, _ := m.Update(specialKey(tea.KeyEnter)) // answer q1
	next, _ = next.(Model).Update(keyPress(' '))  // dismiss feedback
	model := next.(Model)

	if model.phase != phaseAnswering {
		t.Fatalf("phase = %d, want answering", model.phase)
	}
	if model.mc.Question != "q2" {
		t.Errorf("question = %q, want q2", model.mc.Question)
	}
}

func TestLastQuestionLeadsToSummary(t *testing.T) {
	m := readyModel(t, quizQuestion("q1", 0))

	next, _ := m.Update(specialKey(tea.KeyEnter))
	next, _ = next.(Model).Update(keyPress(' '))
	model := next.(Model)

	if model.phase != phaseSummary {
		t.Fatalf("phase = %d, want summary", model.phase)
	}
	correct, total := model.Score()
	if correct != 1 || total != 1 {
		t.Errorf("Score() = %d/%d, want 1/1", correct, total)
	}

	// Any key on the summary quits.
	_, cmd := model.Update(keyPress(' '))
	if cmd == nil {
		t.Error("expected quit command from summary")
	}
}
