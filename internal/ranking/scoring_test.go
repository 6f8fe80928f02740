package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-scout/internal/types"
)

func TestScoreRisk_SourcingStrongCandidate(t *testing.T) {
	p := &types.CandidateProfile{
		Name:       "Jane Smith",
		Skills:     []string{"React", "Node.js", "MongoDB", "Express", "AWS", "Docker", "TypeScript"},
		Experience: "9 years",
		Rating:     "4.9/5",
		ProfileURL: "https://upwork.com/freelancers/jane",
	}

	// 3.0 - 1 (broad skills) - 0.5 (platform) - 0.5 (rated) = 1.0
	score := ScoreRisk(p, SourcingScoring())
	assert.Equal(t, 1, score)
}

func TestScoreRisk_SourcingDefaults(t *testing.T) {
	p := &types.CandidateProfile{
		Name:       "Unknown",
		Experience: "Not specified",
		Rating:     "Not specified",
	}

	// 3.0 + 1 (no experience listed) = 4.0
	score := ScoreRisk(p, SourcingScoring())
	assert.Equal(t, 4, score)
}

func TestScoreRisk_SourcingTruncatesFraction(t *testing.T) {
	p := &types.CandidateProfile{
		Skills:     []string{"React"},
		Experience: "3 years",
		Rating:     "4.5/5",
	}

	// 3.0 - 0.5 (rated) = 2.5, truncated to 2
	score := ScoreRisk(p, SourcingScoring())
	assert.Equal(t, 2, score)
}

func TestScoreRisk_ScreeningDefaults(t *testing.T) {
	p := &types.CandidateProfile{
		Name:       "Unknown",
		Experience: "Unknown",
		Rating:     "Not specified",
	}

	// 3.0 + 1 (thin skills) + 0.5 (unknown experience) = 4.5, rounds to even 4
	score := ScoreRisk(p, ScreeningScoring())
	assert.Equal(t, 4, score)
}

func TestScoreRisk_ScreeningStrongCandidate(t *testing.T) {
	p := &types.CandidateProfile{
		Skills:     []string{"MongoDB", "Express", "React", "Node", "AI", "Machine Learning", "NLP"},
		Experience: "6 years",
		Rating:     "4.8/5",
	}

	// 3.0 - 1 (deep skills) - 1 (ai/ml) - 0.5 (rating) - 0.5 (seasoned) = 0.0, clamped to 1
	score := ScoreRisk(p, ScreeningScoring())
	assert.Equal(t, 1, score)
}

func TestScoreRisk_ScreeningRoundsHalfToEven(t *testing.T) {
	// 3.0 - 1 (six skills) + 0.5 (unknown rating) = 2.5, rounds to even 2
	low := &types.CandidateProfile{
		Skills:     []string{"React", "Node", "Express", "MongoDB", "JavaScript", "Full Stack"},
		Experience: "some experience",
		Rating:     "Unknown",
	}
	assert.Equal(t, 2, ScoreRisk(low, ScreeningScoring()))

	// 3.0 + 0.5 (unknown rating) = 3.5, rounds to even 4
	mid := &types.CandidateProfile{
		Skills:     []string{"React", "Node", "Express"},
		Experience: "some experience",
		Rating:     "Unknown",
	}
	assert.Equal(t, 4, ScoreRisk(mid, ScreeningScoring()))
}

func TestScoreRisk_AlwaysWithinBounds(t *testing.T) {
	profiles := []*types.CandidateProfile{
		{},
		{Experience: "Not specified", Rating: "Not specified"},
		{Experience: "Unknown", Rating: "Unknown"},
		{
			Skills:     []string{"A", "B", "C", "D", "E", "F", "G", "AI", "Machine Learning"},
			Experience: "9 years",
			Rating:     "5.0/5",
			ProfileURL: "https://linkedin.com/in/someone",
		},
	}

	for _, cfg := range []ScoreConfig{SourcingScoring(), ScreeningScoring()} {
		for _, p := range profiles {
			score := ScoreRisk(p, cfg)
			assert.GreaterOrEqual(t, score, MinRiskScore)
			assert.LessOrEqual(t, score, MaxRiskScore)
		}
	}
}

func TestRiskLabel(t *testing.T) {
	tests := []struct {
		score int
		label string
	}{
		{1, "Very Low Risk"},
		{2, "Low Risk"},
		{3, "Medium Risk"},
		{4, "High Risk"},
		{5, "Very High Risk"},
		{0, "Unknown Risk"},
		{9, "Unknown Risk"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.label, RiskLabel(tt.score))
	}
}
