// Package engine orchestrates the document → rubric → question pipeline
// and owns the per-process rubric cache.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/logiq/internal/document"
	"github.com/abhisek/logiq/internal/llm"
	"github.com/abhisek/logiq/internal/questiongen"
	"github.com/abhisek/logiq/internal/rubric"
)

// RubricBuilder derives a difficulty rubric for a document.
type RubricBuilder interface {
	Build(ctx context.Context, doc *document.Document, subject rubric.Subject) (*rubric.Rubric, error)
}

// Config tunes the engine.
type Config struct {
	// MaxDocChars caps the document excerpt sent with each question prompt.
	MaxDocChars int

	// MaxRegenerations bounds retries after a retryable validation failure
	// on a single question.
	MaxRegenerations int

	// MaxAttemptsFactor bounds batch generation: a batch of N questions
	// gets at most N × MaxAttemptsFactor generation attempts.
	MaxAttemptsFactor int
}

// DefaultConfig returns the standard engine settings.
func DefaultConfig() Config {
	return Config{
		MaxDocChars:       4000,
		MaxRegenerations:  2,
		MaxAttemptsFactor: 3,
	}
}

// Request describes one question to generate.
type Request struct {
	// Path is the source document file.
	Path string

	// Level is the target rubric level, 1-5.
	Level int

	// Subject selects the rubric's subject hint.
	Subject rubric.Subject

	// SkillOverride optionally replaces the positive weights of the
	// level's base profile. Nil means use the level profile as-is.
	SkillOverride *rubric.SkillProfile

	// Extra is an optional free-form instruction passed to the generator.
	Extra string
}

// Engine wires the extractor, rubric builder, and question generator
// together and caches rubrics for the life of the process.
type Engine struct {
	extractor document.Extractor
	builder   RubricBuilder
	generator questiongen.Generator
	config    Config

	mu      sync.Mutex
	rubrics map[rubricKey]*cacheEntry
}

type rubricKey struct {
	path    string
	subject rubric.Subject
}

// cacheEntry keeps the document alongside its rubric so repeat requests
// skip extraction too.
type cacheEntry struct {
	doc    *document.Document
	rubric *rubric.Rubric
}

// New creates an Engine.
func New(extractor document.Extractor, builder RubricBuilder, generator questiongen.Generator, cfg Config) *Engine {
	return &Engine{
		extractor: extractor,
		builder:   builder,
		generator: generator,
		config:    cfg,
		rubrics:   make(map[rubricKey]*cacheEntry),
	}
}

// Rubric returns the cached rubric for a document and subject, building it
// on first use. Failures are not cached; the next call retries.
func (e *Engine) Rubric(ctx context.Context, path string, subject rubric.Subject) (*rubric.Rubric, error) {
	entry, err := e.load(ctx, path, subject)
	if err != nil {
		return nil, err
	}
	return entry.rubric, nil
}

func (e *Engine) load(ctx context.Context, path string, subject rubric.Subject) (*cacheEntry, error) {
	key := rubricKey{path: path, subject: subject}

	e.mu.Lock()
	entry, ok := e.rubrics[key]
	e.mu.Unlock()
	if ok {
		return entry, nil
	}

	doc, err := e.extractor.Extract(ctx, path)
	if err != nil {
		return nil, err
	}

	r, err := e.builder.Build(ctx, doc, subject)
	if err != nil {
		return nil, err
	}

	entry = &cacheEntry{doc: doc, rubric: r}
	e.mu.Lock()
	e.rubrics[key] = entry
	e.mu.Unlock()
	return entry, nil
}

// GenerateQuestion produces one validated question for the request.
// Retryable validation failures trigger bounded regeneration; the last
// failure is surfaced when the bound is exhausted.
func (e *Engine) GenerateQuestion(ctx context.Context, req Request) (*questiongen.Question, error) {
	ctx = llm.WithRunID(ctx, uuid.NewString())
	return e.generateOne(ctx, req, nil)
}

func (e *Engine) generateOne(ctx context.Context, req Request, prior []string) (*questiongen.Question, error) {
	entry, err := e.load(ctx, req.Path, req.Subject)
	if err != nil {
		return nil, err
	}

	level, err := entry.rubric.Level(req.Level)
	if err != nil {
		return nil, err
	}

	input := questiongen.GenerateInput{
		DocExcerpt:     entry.doc.Excerpt(e.config.MaxDocChars),
		DocTitle:       entry.doc.Title,
		Level:          level,
		Profile:        rubric.Merge(level.Profile, req.SkillOverride),
		Extra:          req.Extra,
		PriorQuestions: prior,
	}

	var lastErr error
	for attempt := 0; attempt <= e.config.MaxRegenerations; attempt++ {
		q, err := e.generator.Generate(ctx, input)
		if err == nil {
			return q, nil
		}
		lastErr = err

		var verr *questiongen.ValidationError
		if !errors.As(err, &verr) || !verr.Retryable {
			return nil, err
		}
	}
	return nil, fmt.Errorf("question rejected after %d attempts: %w",
		e.config.MaxRegenerations+1, lastErr)
}

// GenerateBatch produces up to count validated questions with distinct
// stems. Failed attempts and duplicate stems are skipped; generation stops
// once count questions are collected or the attempt cap is hit. Fewer than
// count questions is not an error, but zero is.
func (e *Engine) GenerateBatch(ctx context.Context, req Request, count int) ([]*questiongen.Question, error) {
	if count < 1 {
		return nil, fmt.Errorf("count %d must be positive", count)
	}

	ctx = llm.WithRunID(ctx, uuid.NewString())

	// Fail fast on document or rubric problems before burning attempts.
	if _, err := e.load(ctx, req.Path, req.Subject); err != nil {
		return nil, err
	}

	var (
		questions []*questiongen.Question
		stems     []string
		seen      = make(map[string]bool)
		lastErr   error
	)

	maxAttempts := count * e.config.MaxAttemptsFactor
	for attempt := 0; attempt < maxAttempts && len(questions) < count; attempt++ {
		q, err := e.generateOne(ctx, req, stems)
		if err != nil {
			lastErr = err
			var verr *questiongen.ValidationError
			if errors.As(err, &verr) {
				continue
			}
			// Provider, document, and rubric failures will not improve
			// with another attempt.
			return questions, err
		}
		if seen[q.Text] {
			continue
		}
		seen[q.Text] = true
		stems = append(stems, q.Text)
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		if lastErr != nil {
			return nil, fmt.Errorf("no questions generated in %d attempts: %w", maxAttempts, lastErr)
		}
		return nil, fmt.Errorf("no questions generated in %d attempts", maxAttempts)
	}
	return questions, nil
}
