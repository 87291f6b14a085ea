package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/logiq/internal/document"
	"github.com/abhisek/logiq/internal/questiongen"
	"github.com/abhisek/logiq/internal/rubric"
)

// stubExtractor returns a fixed document and counts calls.
type stubExtractor struct {
	doc   *document.Document
	err   error
	calls int
}

func (s *stubExtractor) Extract(_ context.Context, path string) (*document.Document, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	d := *s.doc
	d.Path = path
	return &d, nil
}

// stubBuilder returns a fixed rubric and counts calls.
type stubBuilder struct {
	rubric *rubric.Rubric
	err    error
	calls  int
}

func (s *stubBuilder) Build(_ context.Context, _ *document.Document, _ rubric.Subject) (*rubric.Rubric, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.rubric, nil
}

// scriptedGenerator returns canned results in FIFO order and records inputs.
type scriptedGenerator struct {
	results []result
	inputs  []questiongen.GenerateInput
}

type result struct {
	q   *questiongen.Question
	err error
}

func (s *scriptedGenerator) Generate(_ context.Context, input questiongen.GenerateInput) (*questiongen.Question, error) {
	s.inputs = append(s.inputs, input)
	if len(s.results) == 0 {
		return nil, errors.New("script exhausted")
	}
	r := s.results[0]
	s.results = s.results[1:]
	if r.q == nil {
		return nil, r.err
	}
	// Stamp the effective profile like the real generator does.
	q := *r.q
	q.Profile = input.Profile
	return &q, r.err
}

func testRubric() *rubric.Rubric {
	r := &rubric.Rubric{Subject: rubric.SubjectPhysics, DocTitle: "motion.pdf"}
	for i := 0; i < rubric.LevelCount; i++ {
		r.Levels[i] = rubric.Level{
			Number:      i + 1,
			Name:        fmt.Sprintf("L%d", i+1),
			Description: fmt.Sprintf("level %d work", i+1),
			Profile:     rubric.SkillProfile{Memory: 0.5, Reasoning: float64(i+1) * 0.15},
		}
	}
	return r
}

func question(stem string) *questiongen.Question {
	return &questiongen.Question{
		Text: stem,
		Options: []questiongen.Option{
			{Text: "a", Correct: true}, {Text: "b"}, {Text: "c"}, {Text: "d"},
		},
		Explanation: "because",
		Difficulty:  3,
		Level:       3,
	}
}

func newTestEngine(gen *scriptedGenerator) (*Engine, *stubExtractor, *stubBuilder) {
	ext := &stubExtractor{doc: &document.Document{Title: "motion.pdf", Pages: []string{"Newton's laws."}}}
	b := &stubBuilder{rubric: testRubric()}
	return New(ext, b, gen, DefaultConfig()), ext, b
}

func baseRequest() Request {
	return Request{Path: "/tmp/motion.pdf", Level: 3, Subject: rubric.SubjectPhysics}
}

func TestGenerateQuestion(t *testing.T) {
	gen := &scriptedGenerator{results: []result{{q: question("q1")}}}
	e, _, _ := newTestEngine(gen)

	q, err := e.GenerateQuestion(context.Background(), baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "q1" {
		t.Errorf("Text = %q", q.Text)
	}

	input := gen.inputs[0]
	if input.Level.Number != 3 {
		t.Errorf("Level.Number = %d, want 3", input.Level.Number)
	}
	if !strings.Contains(input.DocExcerpt, "Newton's laws") {
		t.Errorf("DocExcerpt = %q", input.DocExcerpt)
	}
}

func TestGenerateQuestion_SkillOverride(t *testing.T) {
	gen := &scriptedGenerator{results: []result{{q: question("q1")}}}
	e, _, _ := newTestEngine(gen)

	req := baseRequest()
	req.SkillOverride = &rubric.SkillProfile{Numerical: 0.9}

	q, err := e.GenerateQuestion(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := gen.inputs[0].Profile
	if p.Numerical != 0.9 {
		t.Errorf("Numerical = %v, want override 0.9", p.Numerical)
	}
	if p.Memory != 0.5 {
		t.Errorf("Memory = %v, want base 0.5 kept", p.Memory)
	}
	if q.Profile != p {
		t.Errorf("question Profile = %+v, want effective profile %+v", q.Profile, p)
	}
}

func TestGenerateQuestion_BadLevel(t *testing.T) {
	gen := &scriptedGenerator{}
	e, _, _ := newTestEngine(gen)

	req := baseRequest()
	req.Level = 7
	if _, err := e.GenerateQuestion(context.Background(), req); err == nil {
		t.Fatal("expected error for out-of-range level")
	}
	if len(gen.inputs) != 0 {
		t.Error("generator should not be called for a bad level")
	}
}

func TestGenerateQuestion_RetryableRegenerated(t *testing.T) {
	verr := &questiongen.ValidationError{Validator: "consistency", Message: "off by two", Retryable: true}
	gen := &scriptedGenerator{results: []result{{err: verr}, {q: question("q1")}}}
	e, _, _ := newTestEngine(gen)

	q, err := e.GenerateQuestion(context.Background(), baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "q1" {
		t.Errorf("Text = %q", q.Text)
	}
	if len(gen.inputs) != 2 {
		t.Errorf("generator called %d times, want 2", len(gen.inputs))
	}
}

func TestGenerateQuestion_RegenerationBound(t *testing.T) {
	verr := &questiongen.ValidationError{Validator: "structural", Message: "no correct option", Retryable: true}
	gen := &scriptedGenerator{results: []result{{err: verr}, {err: verr}, {err: verr}, {err: verr}}}
	e, _, _ := newTestEngine(gen)

	_, err := e.GenerateQuestion(context.Background(), baseRequest())
	if err == nil {
		t.Fatal("expected error after exhausting regenerations")
	}
	var got *questiongen.ValidationError
	if !errors.As(err, &got) {
		t.Errorf("expected wrapped *ValidationError, got %v", err)
	}
	// DefaultConfig allows the initial attempt plus 2 regenerations.
	if len(gen.inputs) != 3 {
		t.Errorf("generator called %d times, want 3", len(gen.inputs))
	}
}

func TestGenerateQuestion_NonRetryableSurfacedImmediately(t *testing.T) {
	verr := &questiongen.ValidationError{Validator: "structural", Message: "bad", Retryable: false}
	gen := &scriptedGenerator{results: []result{{err: verr}, {q: question("q1")}}}
	e, _, _ := newTestEngine(gen)

	if _, err := e.GenerateQuestion(context.Background(), baseRequest()); err == nil {
		t.Fatal("expected error")
	}
	if len(gen.inputs) != 1 {
		t.Errorf("generator called %d times, want 1", len(gen.inputs))
	}
}

func TestRubricCached(t *testing.T) {
	gen := &scriptedGenerator{results: []result{{q: question("q1")}, {q: question("q2")}}}
	e, ext, b := newTestEngine(gen)

	ctx := context.Background()
	if _, err := e.GenerateQuestion(ctx, baseRequest()); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := e.GenerateQuestion(ctx, baseRequest()); err != nil {
		t.Fatalf("second call: %v", err)
	}

	if b.calls != 1 {
		t.Errorf("builder called %d times, want 1", b.calls)
	}
	if ext.calls != 1 {
		t.Errorf("extractor called %d times, want 1", ext.calls)
	}

	// A different subject is a different cache key.
	req := baseRequest()
	req.Subject = rubric.SubjectGeneric
	gen.results = append(gen.results, result{q: question("q3")})
	if _, err := e.GenerateQuestion(ctx, req); err != nil {
		t.Fatalf("third call: %v", err)
	}
	if b.calls != 2 {
		t.Errorf("builder called %d times after subject change, want 2", b.calls)
	}
}

func TestRubricFailureNotCached(t *testing.T) {
	gen := &scriptedGenerator{results: []result{{q: question("q1")}}}
	ext := &stubExtractor{doc: &document.Document{Title: "motion.pdf", Pages: []string{"text"}}}
	b := &stubBuilder{err: &rubric.GenerationError{DocTitle: "motion.pdf", Err: errors.New("boom")}}
	e := New(ext, b, gen, DefaultConfig())

	ctx := context.Background()
	if _, err := e.GenerateQuestion(ctx, baseRequest()); err == nil {
		t.Fatal("expected rubric failure")
	}

	b.err = nil
	b.rubric = testRubric()
	if _, err := e.GenerateQuestion(ctx, baseRequest()); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if b.calls != 2 {
		t.Errorf("builder called %d times, want 2 (failure not cached)", b.calls)
	}
}

func TestGenerateBatch(t *testing.T) {
	gen := &scriptedGenerator{results: []result{
		{q: question("q1")},
		{q: question("q1")}, // duplicate stem, skipped
		{q: question("q2")},
		{q: question("q3")},
	}}
	e, _, _ := newTestEngine(gen)

	qs, err := e.GenerateBatch(context.Background(), baseRequest(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("got %d questions, want 3", len(qs))
	}
	stems := map[string]bool{}
	for _, q := range qs {
		if stems[q.Text] {
			t.Errorf("duplicate stem in batch: %q", q.Text)
		}
		stems[q.Text] = true
	}

	// Later prompts carry earlier stems for dedup.
	last := gen.inputs[len(gen.inputs)-1]
	if len(last.PriorQuestions) == 0 {
		t.Error("expected prior stems in later generation inputs")
	}
}

func TestGenerateBatch_AttemptCap(t *testing.T) {
	// Every attempt returns the same stem: only one unique question is
	// possible and the cap must stop the loop.
	var results []result
	for i := 0; i < 50; i++ {
		results = append(results, result{q: question("same")})
	}
	gen := &scriptedGenerator{results: results}
	e, _, _ := newTestEngine(gen)

	qs, err := e.GenerateBatch(context.Background(), baseRequest(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Errorf("got %d questions, want 1", len(qs))
	}
	// Cap is count × MaxAttemptsFactor = 12 engine-level attempts.
	if len(gen.inputs) > 12 {
		t.Errorf("generator called %d times, cap is 12", len(gen.inputs))
	}
}

func TestGenerateBatch_AllAttemptsFail(t *testing.T) {
	verr := &questiongen.ValidationError{Validator: "structural", Message: "bad", Retryable: false}
	var results []result
	for i := 0; i < 20; i++ {
		results = append(results, result{err: verr})
	}
	gen := &scriptedGenerator{results: results}
	e, _, _ := newTestEngine(gen)

	qs, err := e.GenerateBatch(context.Background(), baseRequest(), 2)
	if err == nil {
		t.Fatal("expected error when nothing could be generated")
	}
	if len(qs) != 0 {
		t.Errorf("got %d questions, want 0", len(qs))
	}
}

func TestGenerateBatch_ProviderFailureStopsEarly(t *testing.T) {
	gen := &scriptedGenerator{results: []result{
		{q: question("q1")},
		{err: errors.New("connection refused")},
	}}
	e, _, _ := newTestEngine(gen)

	qs, err := e.GenerateBatch(context.Background(), baseRequest(), 3)
	if err == nil {
		t.Fatal("expected provider error to surface")
	}
	if len(qs) != 1 {
		t.Errorf("got %d questions before failure, want 1", len(qs))
	}
	if len(gen.inputs) != 2 {
		t.Errorf("generator called %d times, want 2 (no retry on provider failure)", len(gen.inputs))
	}
}

func TestGenerateBatch_InvalidCount(t *testing.T) {
	gen := &scriptedGenerator{}
	e, _, _ := newTestEngine(gen)
	if _, err := e.GenerateBatch(context.Background(), baseRequest(), 0); err == nil {
		t.Fatal("expected error for count 0")
	}
}

func TestDocumentFailureSurfaced(t *testing.T) {
	ext := &stubExtractor{err: &document.ReadError{Path: "/tmp/missing.pdf", Err: errors.New("no such file")}}
	e := New(ext, &stubBuilder{rubric: testRubric()}, &scriptedGenerator{}, DefaultConfig())

	_, err := e.GenerateQuestion(context.Background(), baseRequest())
	var rerr *document.ReadError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *document.ReadError, got %v", err)
	}
}
