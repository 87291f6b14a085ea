package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func event(purpose, model string, in, out int, success bool) LLMRequestEventData {
	return LLMRequestEventData{
		Provider:     "groq",
		Model:        model,
		Purpose:      purpose,
		RunID:        "run-1",
		InputTokens:  in,
		OutputTokens: out,
		LatencyMs:    120,
		Success:      success,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, event("rubric", "llama-3.1-8b-instant", 900, 400, true)))
	require.NoError(t, repo.AppendLLMRequest(ctx, event("question-gen", "llama-3.1-8b-instant", 1200, 300, true)))

	failed := event("question-gen", "llama-3.1-8b-instant", 0, 0, false)
	failed.ErrorMessage = "rate limited"
	failed.RunID = "run-2"
	require.NoError(t, repo.AppendLLMRequest(ctx, failed))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 3)

	// Newest first.
	assert.False(t, events[0].Success)
	assert.Equal(t, "rate limited", events[0].ErrorMessage)
	assert.Equal(t, "rubric", events[2].Purpose)
	assert.Equal(t, 900, events[2].InputTokens)
	assert.False(t, events[2].Timestamp.IsZero())
}

func TestQueryFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, event("rubric", "m", 1, 1, true)))
	require.NoError(t, repo.AppendLLMRequest(ctx, event("question-gen", "m", 1, 1, true)))
	require.NoError(t, repo.AppendLLMRequest(ctx, event("question-gen", "m", 1, 1, true)))

	byPurpose, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "question-gen"})
	require.NoError(t, err)
	assert.Len(t, byPurpose, 2)

	byRun, err := repo.QueryLLMEvents(ctx, QueryOpts{RunID: "run-1"})
	require.NoError(t, err)
	assert.Len(t, byRun, 3)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, event("rubric", "m", 100, 50, true)))
	require.NoError(t, repo.AppendLLMRequest(ctx, event("question-gen", "m", 200, 80, true)))
	require.NoError(t, repo.AppendLLMRequest(ctx, event("question-gen", "m", 300, 120, true)))

	usage, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, usage, 2)

	// Ordered by purpose name.
	assert.Equal(t, "question-gen", usage[0].Purpose)
	assert.Equal(t, 2, usage[0].Calls)
	assert.Equal(t, 500, usage[0].InputTokens)
	assert.Equal(t, 200, usage[0].OutputTokens)

	assert.Equal(t, "rubric", usage[1].Purpose)
	assert.Equal(t, 1, usage[1].Calls)
}

func TestUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, event("rubric", "llama-3.1-8b-instant", 100, 50, true)))
	require.NoError(t, repo.AppendLLMRequest(ctx, event("question-gen", "gpt-4o-mini", 200, 80, true)))

	usage, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, usage, 2)

	assert.Equal(t, "gpt-4o-mini", usage[0].Model)
	assert.Equal(t, "llama-3.1-8b-instant", usage[1].Model)
	assert.Equal(t, 150, usage[1].InputTokens+usage[1].OutputTokens)
}

func TestNoBodiesStored(t *testing.T) {
	// The schema has no request/response body columns; generated questions
	// never reach the database.
	s := openTestStore(t)
	rows, err := s.DB().Query(`SELECT name FROM pragma_table_info('llm_request_events')`)
	require.NoError(t, err)
	defer rows.Close()

	for rows.Next() {
		var col string
		require.NoError(t, rows.Scan(&col))
		assert.NotContains(t, col, "body")
		assert.NotContains(t, col, "request_")
		assert.NotContains(t, col, "response_")
	}
	require.NoError(t, rows.Err())
}
