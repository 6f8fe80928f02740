package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/types"
)

type stubProvider struct {
	results map[string][]types.SearchResult
	errs    map[string]error
	calls   []string
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Search(ctx context.Context, query string, params Params) ([]types.SearchResult, error) {
	s.calls = append(s.calls, query)
	if err := s.errs[query]; err != nil {
		return nil, err
	}
	return s.results[query], nil
}

func newTestExecutor(p Provider) (*Executor, *int) {
	e := NewExecutor(p, zap.NewNop())
	sleeps := 0
	e.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps++
		return nil
	}
	return e, &sleeps
}

func TestDefaultParams(t *testing.T) {
	params := DefaultParams()
	assert.Equal(t, "advanced", params.Depth)
	assert.Equal(t, 5, params.MaxResults)
	assert.True(t, params.IncludeAnswer)
	assert.True(t, params.IncludeRawContent)
}

func TestExecutor_Execute_AnnotatesProvenance(t *testing.T) {
	stub := &stubProvider{
		results: map[string][]types.SearchResult{
			"query one": {
				{Title: "A", URL: "https://a.example"},
				{Title: "B", URL: "https://b.example"},
			},
			"query two": {
				{Title: "C", URL: "https://c.example"},
			},
		},
	}
	e, sleeps := newTestExecutor(stub)

	results, err := e.Execute(context.Background(), []string{"query one", "query two"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, []string{"query one", "query two"}, stub.calls)

	assert.Equal(t, "A", results[0].Title)
	assert.Equal(t, "query one", results[0].SourceQuery)
	assert.Equal(t, 1, results[0].SourceIndex)
	assert.Equal(t, "query one", results[1].SourceQuery)
	assert.Equal(t, 1, results[1].SourceIndex)
	assert.Equal(t, "C", results[2].Title)
	assert.Equal(t, "query two", results[2].SourceQuery)
	assert.Equal(t, 2, results[2].SourceIndex)

	// One pause after each successful query, the last included.
	assert.Equal(t, 2, *sleeps)
}

func TestExecutor_Execute_SkipsFailedQueries(t *testing.T) {
	stub := &stubProvider{
		results: map[string][]types.SearchResult{
			"good query": {{Title: "A", URL: "https://a.example"}},
		},
		errs: map[string]error{
			"bad query": errors.New("rate limited"),
		},
	}
	e, sleeps := newTestExecutor(stub)

	results, err := e.Execute(context.Background(), []string{"bad query", "good query"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "good query", results[0].SourceQuery)
	assert.Equal(t, 2, results[0].SourceIndex)
	assert.Equal(t, 1, *sleeps)
}

func TestExecutor_Execute_AllQueriesFail(t *testing.T) {
	stub := &stubProvider{
		errs: map[string]error{
			"one": errors.New("boom"),
			"two": errors.New("boom"),
		},
	}
	e, sleeps := newTestExecutor(stub)

	results, err := e.Execute(context.Background(), []string{"one", "two"})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, *sleeps)
}

func TestExecutor_Execute_NoQueries(t *testing.T) {
	stub := &stubProvider{}
	e, _ := newTestExecutor(stub)

	results, err := e.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, stub.calls)
}

func TestExecutor_Execute_KeepsDuplicateResults(t *testing.T) {
	dup := types.SearchResult{Title: "Same Profile", URL: "https://upwork.com/freelancers/same"}
	stub := &stubProvider{
		results: map[string][]types.SearchResult{
			"one": {dup},
			"two": {dup},
		},
	}
	e, _ := newTestExecutor(stub)

	results, err := e.Execute(context.Background(), []string{"one", "two"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].SourceIndex)
	assert.Equal(t, 2, results[1].SourceIndex)
}

func TestExecutor_Execute_CancelledBeforeStart(t *testing.T) {
	stub := &stubProvider{
		results: map[string][]types.SearchResult{
			"one": {{Title: "A"}},
		},
	}
	e, _ := newTestExecutor(stub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := e.Execute(ctx, []string{"one"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
	assert.Empty(t, stub.calls)
}

func TestExecutor_Execute_CancelledMidBatch(t *testing.T) {
	stub := &stubProvider{
		results: map[string][]types.SearchResult{
			"one": {{Title: "A"}},
			"two": {{Title: "B"}},
		},
	}
	e := NewExecutor(stub, zap.NewNop())
	e.sleep = func(ctx context.Context, d time.Duration) error {
		return context.Canceled
	}

	results, err := e.Execute(context.Background(), []string{"one", "two"})
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	assert.Equal(t, "A", results[0].Title)
	assert.Equal(t, []string{"one"}, stub.calls)
}

func TestSleepContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := sleepContext(ctx, time.Hour)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}
