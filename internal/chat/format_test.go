package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-scout/internal/types"
)

func TestFormatResults_Empty(t *testing.T) {
	a := NewAssistant(&fakeLLM{}, &fakeAnalyzer{}, &fakeSearcher{}, nil)

	message, err := a.FormatResults(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, noResultsMessage, message)
}

func TestFormatResults_ModelPath(t *testing.T) {
	model := &fakeLLM{response: "nicely formatted"}
	a := NewAssistant(model, &fakeAnalyzer{}, &fakeSearcher{}, nil)

	results := []types.CandidateProfile{
		{Name: "Jane Smith", Skills: []string{"React"}, Experience: "5 years", Rating: "4.5/5", RiskScore: 2},
	}

	message, err := a.FormatResults(context.Background(), results)
	require.NoError(t, err)
	assert.Equal(t, "nicely formatted", message)

	require.Len(t, model.history, 1)
	assert.Contains(t, model.history[0].Content, "Jane Smith")
	assert.Contains(t, model.history[0].Content, `"risk_score": 2`)
	assert.Contains(t, model.system, "talent acquisition specialist")
}

func TestFormatResults_FallbackTemplate(t *testing.T) {
	model := &fakeLLM{err: errors.New("model unavailable")}
	a := NewAssistant(model, &fakeAnalyzer{}, &fakeSearcher{}, nil)

	results := []types.CandidateProfile{
		{
			Name:       "Jane Smith",
			Skills:     []string{"React", "Node.js", "Python", "AWS", "Docker", "TypeScript"},
			Experience: "5 years",
			RiskScore:  2,
			ProfileURL: "https://upwork.com/freelancers/jane",
		},
		{
			Name:       "John Doe",
			Skills:     []string{"Python"},
			Experience: "Not specified",
			RiskScore:  4,
		},
	}

	message, err := a.FormatResults(context.Background(), results)
	require.NoError(t, err)

	assert.Contains(t, message, "✅ Great! I found 2 talented candidates for you:")
	assert.Contains(t, message, "1. **Jane Smith**")
	assert.Contains(t, message, "💼 Skills: React, Node.js, Python, AWS, Docker")
	assert.NotContains(t, message, "TypeScript")
	assert.Contains(t, message, "⭐ Experience: 5 years")
	assert.Contains(t, message, "📊 Risk Score: 2/5")
	assert.Contains(t, message, "🔗 Profile: https://upwork.com/freelancers/jane")
	assert.Contains(t, message, "2. **John Doe**")
	assert.Contains(t, message, "Would you like me to provide more details about any of these candidates or search for additional talent?")
}

func TestFormatResults_FallbackShowsAtMostFive(t *testing.T) {
	model := &fakeLLM{err: errors.New("model unavailable")}
	a := NewAssistant(model, &fakeAnalyzer{}, &fakeSearcher{}, nil)

	results := make([]types.CandidateProfile, 7)
	for i := range results {
		results[i] = types.CandidateProfile{Name: "Candidate", RiskScore: 3}
	}

	message, err := a.FormatResults(context.Background(), results)
	require.NoError(t, err)

	assert.Contains(t, message, "I found 7 talented candidates")
	assert.Contains(t, message, "5. **Candidate**")
	assert.NotContains(t, message, "6. **Candidate**")
}
