package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/db"
	"github.com/jonathan/talent-scout/internal/ranking"
	"github.com/jonathan/talent-scout/internal/search"
	"github.com/jonathan/talent-scout/internal/types"
)

// Screening vocabulary for the fixed MERN + AI hunt flow.
var (
	mernKeywords      = []string{"MongoDB", "Express.js", "React", "Node.js"}
	aiKeywords        = []string{"Machine Learning", "AI", "Artificial Intelligence", "Deep Learning", "TensorFlow", "PyTorch"}
	qualityIndicators = []string{"top rated", "expert level", "5 stars", "certified", "experienced"}
)

// huntQueries are the candidate screening queries. The first is the most
// comprehensive and is the one actually searched.
var huntQueries = []string{
	"MERN stack developer MongoDB Express React Node.js AI machine learning site:upwork.com/freelancers",
	"full stack developer React Node.js MongoDB artificial intelligence top rated site:upwork.com",
	"JavaScript developer React Express MongoDB AI deep learning expert site:upwork.com/freelancers",
	"MERN developer artificial intelligence machine learning certified site:upwork.com",
	"full stack JavaScript MongoDB React Node Express AI developer site:upwork.com/freelancers",
}

// huntShortlistSize caps both how many search hits are risk-assessed and how
// many candidates the hunt shortlist holds.
const huntShortlistSize = 5

// HuntReport is the outcome of the one-shot MERN + AI screening flow.
type HuntReport struct {
	RunID       string                   `json:"run_id,omitempty"`
	Query       string                   `json:"query"`
	Keywords    []string                 `json:"keywords"`
	ResultCount int                      `json:"result_count"`
	Candidates  []types.CandidateProfile `json:"candidates"`
	Summary     string                   `json:"summary,omitempty"`
}

// HuntMERNAI runs the fixed screening flow: one comprehensive query against
// the provider, risk assessment of the first five hits, and a shortlist
// ordered by risk then skill breadth. Candidates never carry match scores
// here; screening ranks purely on risk.
func (r *Runner) HuntMERNAI(ctx context.Context) (*HuntReport, error) {
	query := huntQueries[0]
	keywords := make([]string, 0, len(mernKeywords)+len(aiKeywords)+len(qualityIndicators))
	keywords = append(keywords, mernKeywords...)
	keywords = append(keywords, aiKeywords...)
	keywords = append(keywords, qualityIndicators...)

	r.log.Info("refined screening query", zap.String("query", query))
	r.emit(StepQueries, CategoryScreening,
		fmt.Sprintf("Search query refined: %s", query), uuid.Nil, keywords)

	skills := make([]string, 0, len(mernKeywords)+len(aiKeywords))
	skills = append(skills, mernKeywords...)
	skills = append(skills, aiKeywords...)

	var runID uuid.UUID
	if r.database != nil {
		var err error
		runID, err = r.database.CreateRun(ctx, query, skills, "", huntShortlistSize)
		if err != nil {
			r.log.Warn("failed to create database run", zap.Error(err))
		}
	}

	results, err := r.provider.Search(ctx, query, search.ScreeningParams())
	if err != nil {
		if r.database != nil && runID != uuid.Nil {
			_ = r.database.CompleteRun(ctx, runID, db.RunStatusFailed)
		}
		r.log.Warn("screening search failed", zap.Error(err))
		return nil, fmt.Errorf("screening search failed: %w", err)
	}
	r.emit(StepSearch, CategoryScreening,
		fmt.Sprintf("Found %d developer profiles from web search", len(results)), runID, nil)

	report := &HuntReport{
		Query:       query,
		Keywords:    keywords,
		ResultCount: len(results),
	}
	if runID != uuid.Nil {
		report.RunID = runID.String()
	}

	if len(results) > huntShortlistSize {
		results = results[:huntShortlistSize]
	}
	for i := range results {
		results[i].SourceQuery = query
		results[i].SourceIndex = 1
	}

	candidates := r.screening.ExtractAll(results)
	r.emit(StepProfiles, CategoryScreening,
		fmt.Sprintf("Completed risk assessment for %d developers", len(candidates)), runID, nil)

	shortlist := ranking.RankByRiskThenBreadth(candidates, huntShortlistSize)
	report.Candidates = shortlist
	if len(shortlist) > 0 {
		report.Summary = fmt.Sprintf(
			"Analysis complete! Found %d qualified MERN + AI developers. Best candidate: %s with %s rating.",
			len(shortlist), shortlist[0].Name, shortlist[0].RiskLevel)
	}
	r.emit(StepShortlist, CategoryScreening, report.Summary, runID, shortlist)

	if r.database != nil && runID != uuid.Nil {
		_ = r.database.UpdateRunCounts(ctx, runID, 1, report.ResultCount, len(candidates))
		if err := r.database.SaveShortlist(ctx, runID, shortlistEntries(shortlist)); err != nil {
			r.log.Warn("failed to save shortlist", zap.Error(err))
		}
		_ = r.database.CompleteRun(ctx, runID, db.RunStatusCompleted)
	}

	return report, nil
}
