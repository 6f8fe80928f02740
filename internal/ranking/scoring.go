// Package ranking scores candidate risk and orders shortlists.
package ranking

import (
	"math"
	"strings"

	"github.com/jonathan/talent-scout/internal/types"
)

// Risk scores run from 1 (safest hire) to 5 (riskiest).
const (
	MinRiskScore = 1
	MaxRiskScore = 5

	baseRiskScore = 3.0
)

// RoundingMode selects how a fractional risk score collapses to an int.
type RoundingMode int

const (
	// RoundTruncate drops the fractional part.
	RoundTruncate RoundingMode = iota
	// RoundNearestEven rounds half values to the nearest even integer.
	RoundNearestEven
)

type adjustment struct {
	name    string
	delta   float64
	applies func(p *types.CandidateProfile) bool
}

// ScoreConfig holds the adjustment rules applied on top of the base risk
// score. Build one with SourcingScoring or ScreeningScoring.
type ScoreConfig struct {
	adjustments []adjustment
	rounding    RoundingMode
}

// SourcingScoring rewards marketplace presence: broad skill lists, profiles
// hosted on known freelance platforms and any visible rating lower the risk;
// missing experience raises it.
func SourcingScoring() ScoreConfig {
	return ScoreConfig{
		rounding: RoundTruncate,
		adjustments: []adjustment{
			{
				name:  "broad skill set",
				delta: -1,
				applies: func(p *types.CandidateProfile) bool {
					return len(p.Skills) >= 5
				},
			},
			{
				name:  "known platform",
				delta: -0.5,
				applies: func(p *types.CandidateProfile) bool {
					return strings.Contains(p.ProfileURL, "upwork.com") ||
						strings.Contains(p.ProfileURL, "linkedin.com")
				},
			},
			{
				name:  "rated",
				delta: -0.5,
				applies: func(p *types.CandidateProfile) bool {
					return p.Rating != "" && p.Rating != "Not specified"
				},
			},
			{
				name:  "no experience listed",
				delta: 1,
				applies: func(p *types.CandidateProfile) bool {
					return p.Experience == "Not specified"
				},
			},
		},
	}
}

// ScreeningScoring rewards stack depth: many skills, AI/ML coverage, high
// ratings and seasoned experience lower the risk; thin or unknown profiles
// raise it.
func ScreeningScoring() ScoreConfig {
	return ScoreConfig{
		rounding: RoundNearestEven,
		adjustments: []adjustment{
			{
				name:  "deep skill set",
				delta: -1,
				applies: func(p *types.CandidateProfile) bool {
					return len(p.Skills) >= 6
				},
			},
			{
				name:  "ai/ml coverage",
				delta: -1,
				applies: func(p *types.CandidateProfile) bool {
					for _, s := range p.Skills {
						if s == "AI" || s == "Machine Learning" {
							return true
						}
					}
					return false
				},
			},
			{
				name:  "high rating",
				delta: -0.5,
				applies: func(p *types.CandidateProfile) bool {
					return strings.HasPrefix(p.Rating, "4") || strings.HasPrefix(p.Rating, "5")
				},
			},
			{
				name:  "seasoned",
				delta: -0.5,
				applies: func(p *types.CandidateProfile) bool {
					return strings.ContainsAny(p.Experience, "3456789")
				},
			},
			{
				name:  "thin skill set",
				delta: 1,
				applies: func(p *types.CandidateProfile) bool {
					return len(p.Skills) < 3
				},
			},
			{
				name:  "unknown fields",
				delta: 0.5,
				applies: func(p *types.CandidateProfile) bool {
					return p.Experience == "Unknown" || p.Rating == "Unknown"
				},
			},
		},
	}
}

// ScoreRisk applies the config's adjustments to the base score and collapses
// the result to an int clamped to [MinRiskScore, MaxRiskScore].
func ScoreRisk(p *types.CandidateProfile, cfg ScoreConfig) int {
	score := baseRiskScore
	for _, adj := range cfg.adjustments {
		if adj.applies(p) {
			score += adj.delta
		}
	}

	var rounded int
	switch cfg.rounding {
	case RoundNearestEven:
		rounded = int(math.RoundToEven(score))
	default:
		rounded = int(score)
	}

	if rounded < MinRiskScore {
		return MinRiskScore
	}
	if rounded > MaxRiskScore {
		return MaxRiskScore
	}
	return rounded
}

// RiskLabel maps a risk score to its display label.
func RiskLabel(score int) string {
	switch score {
	case 1:
		return "Very Low Risk"
	case 2:
		return "Low Risk"
	case 3:
		return "Medium Risk"
	case 4:
		return "High Risk"
	case 5:
		return "Very High Risk"
	default:
		return "Unknown Risk"
	}
}
