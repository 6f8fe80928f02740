package pipeline

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-scout/internal/search"
	"github.com/jonathan/talent-scout/internal/types"
)

type stubProvider struct {
	mu      sync.Mutex
	results []types.SearchResult
	err     error
	calls   int
	queries []string
	params  []search.Params

	// failAfterFirst makes every call after the first return an error, so
	// batch runs stay fast while still exercising the skip path.
	failAfterFirst bool
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Search(_ context.Context, query string, params search.Params) ([]types.SearchResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.queries = append(p.queries, query)
	p.params = append(p.params, params)
	if p.err != nil {
		return nil, p.err
	}
	if p.failAfterFirst && p.calls > 1 {
		return nil, errors.New("quota exhausted")
	}
	out := make([]types.SearchResult, len(p.results))
	copy(out, p.results)
	return out, nil
}

func TestFindTalent_RanksAndTruncates(t *testing.T) {
	provider := &stubProvider{
		failAfterFirst: true,
		results: []types.SearchResult{
			{
				Title:   "Ava Patel - Senior React Developer",
				URL:     "https://www.upwork.com/freelancers/ava",
				Content: "React and Node.js expert with 9 years of experience. Rated 4.9 stars. $85/hour.",
			},
			{
				Title:   "Bo Zhang | Junior Developer",
				URL:     "https://example.com/bo",
				Content: "Knows Python.",
			},
			{
				Title:   "Cara Diaz - Full Stack Lead",
				URL:     "https://www.linkedin.com/in/cara",
				Content: "React, Node.js, MongoDB, Express and JavaScript veteran. 12 years of experience. 5 stars. Full stack delivery.",
			},
		},
	}

	var events []ProgressEvent
	runner := NewRunner(Options{
		Provider:   provider,
		OnProgress: func(e ProgressEvent) { events = append(events, e) },
	})

	shortlist, err := runner.FindTalent(context.Background(), "Find me 2 senior React and Node.js developers", types.SearchIntent{IsTalentRequest: true})
	require.NoError(t, err)
	require.Len(t, shortlist, 2)

	// Cara has the lowest risk and broadest skill set, Ava comes second
	assert.Equal(t, "Cara Diaz", shortlist[0].Name)
	assert.Equal(t, "Ava Patel", shortlist[1].Name)
	assert.InDelta(t, 2.0, shortlist[0].MatchScore, 0.001)
	assert.InDelta(t, 2.8, shortlist[1].MatchScore, 0.001)
	assert.Equal(t, 1, shortlist[0].RiskScore)
	assert.Equal(t, 2, shortlist[1].RiskScore)

	// All surviving results came from the first query
	assert.Equal(t, 1, shortlist[0].SourceIndex)
	assert.NotEmpty(t, shortlist[0].SourceQuery)

	steps := make([]string, 0, len(events))
	for _, e := range events {
		steps = append(steps, e.Step)
		assert.Equal(t, CategorySourcing, e.Category)
	}
	assert.Equal(t, []string{StepRequirements, StepQueries, StepSearch, StepProfiles, StepShortlist}, steps)
}

func TestFindTalent_EmptyProviderReturnsEmptyShortlist(t *testing.T) {
	provider := &stubProvider{failAfterFirst: true}
	runner := NewRunner(Options{Provider: provider})

	shortlist, err := runner.FindTalent(context.Background(), "find python developers", types.SearchIntent{})
	require.NoError(t, err)
	assert.Empty(t, shortlist)
}

func TestFindTalent_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := &stubProvider{failAfterFirst: true}
	runner := NewRunner(Options{Provider: provider})

	shortlist, err := runner.FindTalent(ctx, "find react developers", types.SearchIntent{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, shortlist)
	assert.Zero(t, provider.calls)
}

func TestFindTalent_EnrichesFromProfilePages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><main>9 years of experience building with MongoDB. Rated 4.8 stars. $70/hour.</main></body></html>`))
	}))
	defer server.Close()

	provider := &stubProvider{
		failAfterFirst: true,
		results: []types.SearchResult{
			{Title: "Jane Smith - Developer", URL: server.URL, Content: "React developer"},
		},
	}

	var events []ProgressEvent
	runner := NewRunner(Options{
		Provider:       provider,
		EnrichProfiles: true,
		OnProgress:     func(e ProgressEvent) { events = append(events, e) },
	})

	shortlist, err := runner.FindTalent(context.Background(), "find 1 react developer", types.SearchIntent{})
	require.NoError(t, err)
	require.Len(t, shortlist, 1)

	// Fields only present on the fetched page prove enrichment ran
	assert.Equal(t, "9 years", shortlist[0].Experience)
	assert.Equal(t, "4.8/5", shortlist[0].Rating)
	assert.Equal(t, "$70/hour", shortlist[0].HourlyRate)
	assert.Contains(t, shortlist[0].Skills, "MongoDB")

	steps := make([]string, 0, len(events))
	for _, e := range events {
		steps = append(steps, e.Step)
	}
	assert.Contains(t, steps, StepEnrichment)
}

func TestShortlistEntries_AssignsRanks(t *testing.T) {
	entries := shortlistEntries([]types.CandidateProfile{
		{Name: "First", Skills: []string{"React"}, RiskScore: 1, MatchScore: 1.5},
		{Name: "Second", Skills: []string{"Python"}, RiskScore: 2, MatchScore: 2.5},
	})

	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "First", entries[0].Name)
	assert.NotNil(t, entries[0].Profile)
}
