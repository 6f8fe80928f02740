package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/talent-scout/internal/types"
)

// Weights for the match score components. Lower scores rank higher: risk,
// missing required skills and a thin skill list all push a candidate down.
const (
	riskWeight     = 0.4
	skillGapWeight = 0.4
	breadthWeight  = 0.2

	scoreCeiling = 5.0
)

// RankByMatchScore orders candidates by a weighted match score (ascending,
// best first) and truncates to the requested quantity. Ties keep their input
// order. The returned slice is a copy with MatchScore filled in.
func RankByMatchScore(candidates []types.CandidateProfile, req types.RequirementSet) []types.CandidateProfile {
	ranked := make([]types.CandidateProfile, len(candidates))
	copy(ranked, candidates)

	required := make(map[string]bool, len(req.Skills))
	for _, skill := range req.Skills {
		required[strings.ToLower(skill)] = true
	}

	for i := range ranked {
		ranked[i].MatchScore = computeMatchScore(&ranked[i], required)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore < ranked[j].MatchScore
	})

	limit := req.Quantity
	if limit <= 0 || limit > len(ranked) {
		limit = len(ranked)
	}
	return ranked[:limit]
}

func computeMatchScore(p *types.CandidateProfile, required map[string]bool) float64 {
	overlap := 0
	for _, skill := range p.Skills {
		if required[strings.ToLower(skill)] {
			overlap++
		}
	}

	risk := p.RiskScore
	if risk == 0 {
		risk = 3
	}

	skillGap := math.Max(0, scoreCeiling-float64(overlap))
	breadthGap := math.Max(0, scoreCeiling-float64(len(p.Skills))/2)

	return float64(risk)*riskWeight +
		skillGap*skillGapWeight +
		breadthGap*breadthWeight
}

// RankByRiskThenBreadth orders candidates by risk score ascending, breaking
// ties with the larger skill list, and truncates to limit. Remaining ties
// keep their input order.
func RankByRiskThenBreadth(candidates []types.CandidateProfile, limit int) []types.CandidateProfile {
	ranked := make([]types.CandidateProfile, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].RiskScore != ranked[j].RiskScore {
			return ranked[i].RiskScore < ranked[j].RiskScore
		}
		return len(ranked[i].Skills) > len(ranked[j].Skills)
	})

	if limit <= 0 || limit > len(ranked) {
		limit = len(ranked)
	}
	return ranked[:limit]
}
