// Package pipeline orchestrates talent sourcing and screening runs.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-scout/internal/db"
	"github.com/jonathan/talent-scout/internal/fetch"
	"github.com/jonathan/talent-scout/internal/profiles"
	"github.com/jonathan/talent-scout/internal/queries"
	"github.com/jonathan/talent-scout/internal/ranking"
	"github.com/jonathan/talent-scout/internal/requirements"
	"github.com/jonathan/talent-scout/internal/search"
	"github.com/jonathan/talent-scout/internal/types"
)

// ProgressEvent represents a progress update during a run
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when run progress occurs
type ProgressCallback func(event ProgressEvent)

// Step names reported through progress events
const (
	StepRequirements = "requirements"
	StepQueries      = "queries"
	StepSearch       = "search"
	StepEnrichment   = "enrichment"
	StepProfiles     = "profiles"
	StepShortlist    = "shortlist"
)

// Event categories
const (
	CategorySourcing  = "sourcing"
	CategoryScreening = "screening"
)

// enrichLimit is the number of concurrent profile page fetches.
const enrichLimit = 3

// maxEnrichmentRunes caps how much fetched page text is appended to a
// search result before extraction.
const maxEnrichmentRunes = 8000

// Options holds configuration for building a Runner
type Options struct {
	Provider       search.Provider
	Database       *db.DB // optional, nil disables persistence
	EnrichProfiles bool   // fetch profile pages for richer extraction input
	UseBrowser     bool   // render short pages in a headless browser during enrichment
	OnProgress     ProgressCallback
	Logger         *zap.Logger
}

// Runner executes sourcing and screening runs against one search provider.
// It satisfies the chat assistant's TalentSearcher.
type Runner struct {
	provider   search.Provider
	executor   *search.Executor
	sourcing   *profiles.Extractor
	screening  *profiles.Extractor
	database   *db.DB
	enrich     bool
	useBrowser bool
	onProgress ProgressCallback
	log        *zap.Logger
}

// NewRunner builds a runner from options. A nil logger is replaced with a nop.
func NewRunner(opts Options) *Runner {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		provider:   opts.Provider,
		executor:   search.NewExecutor(opts.Provider, log),
		sourcing:   profiles.NewExtractor(profiles.SourcingConfig(), log),
		screening:  profiles.NewExtractor(profiles.ScreeningConfig(), log),
		database:   opts.Database,
		enrich:     opts.EnrichProfiles,
		useBrowser: opts.UseBrowser,
		onProgress: opts.OnProgress,
		log:        log,
	}
}

// emit calls the progress callback if configured
func (r *Runner) emit(step, category, message string, runID uuid.UUID, content any) {
	if r.onProgress == nil {
		return
	}
	event := ProgressEvent{
		Step:     step,
		Category: category,
		Message:  message,
		Content:  content,
	}
	if runID != uuid.Nil {
		event.RunID = runID.String()
	}
	r.onProgress(event)
}

// FindTalent runs the full sourcing flow for one request: requirement
// extraction, query generation, sequential web search, optional profile
// page enrichment, profile extraction and match ranking. The returned
// shortlist holds at most the requested quantity of candidates. An empty
// shortlist is not an error; the only error condition is cancellation.
func (r *Runner) FindTalent(ctx context.Context, request string, intent types.SearchIntent) ([]types.CandidateProfile, error) {
	req := requirements.Extract(request)
	r.log.Info("extracted requirements",
		zap.Strings("skills", req.Skills),
		zap.String("seniority", string(req.Seniority)),
		zap.Int("quantity", req.Quantity),
		zap.String("urgency", intent.Urgency),
	)
	r.emit(StepRequirements, CategorySourcing,
		fmt.Sprintf("Extracted %d required skills, quantity %d", len(req.Skills), req.Quantity), uuid.Nil, req)

	var runID uuid.UUID
	if r.database != nil {
		var err error
		runID, err = r.database.CreateRun(ctx, request, req.Skills, string(req.Seniority), req.Quantity)
		if err != nil {
			r.log.Warn("failed to create database run", zap.Error(err))
		}
	}

	searchQueries := queries.Generate(req)
	r.emit(StepQueries, CategorySourcing,
		fmt.Sprintf("Generated %d search queries", len(searchQueries)), runID, searchQueries)

	results, err := r.executor.Execute(ctx, searchQueries)
	if err != nil {
		if r.database != nil && runID != uuid.Nil {
			_ = r.database.CompleteRun(ctx, runID, db.RunStatusFailed)
		}
		return nil, fmt.Errorf("search execution failed: %w", err)
	}
	r.emit(StepSearch, CategorySourcing,
		fmt.Sprintf("Collected %d search results", len(results)), runID, nil)

	if r.enrich && len(results) > 0 {
		enriched := r.enrichResults(ctx, results)
		r.emit(StepEnrichment, CategorySourcing,
			fmt.Sprintf("Enriched %d of %d profiles from their pages", enriched, len(results)), runID, nil)
	}

	candidates := r.sourcing.ExtractAll(results)
	r.emit(StepProfiles, CategorySourcing,
		fmt.Sprintf("Extracted %d candidate profiles", len(candidates)), runID, nil)

	shortlist := ranking.RankByMatchScore(candidates, req)
	r.emit(StepShortlist, CategorySourcing,
		fmt.Sprintf("Ranked %d candidates by match score", len(shortlist)), runID, shortlist)

	if r.database != nil && runID != uuid.Nil {
		_ = r.database.UpdateRunCounts(ctx, runID, len(searchQueries), len(results), len(candidates))
		if err := r.database.SaveShortlist(ctx, runID, shortlistEntries(shortlist)); err != nil {
			r.log.Warn("failed to save shortlist", zap.Error(err))
		}
		_ = r.database.CompleteRun(ctx, runID, db.RunStatusCompleted)
	}

	return shortlist, nil
}

// enrichResults fetches each result's profile page concurrently and appends
// the page text to the result content. Failures leave the original content
// untouched. Returns how many results were enriched.
func (r *Runner) enrichResults(ctx context.Context, results []types.SearchResult) int {
	var g errgroup.Group
	g.SetLimit(enrichLimit)

	enriched := make([]bool, len(results))
	for i := range results {
		i := i
		g.Go(func() error {
			enriched[i] = r.enrichOne(ctx, &results[i])
			return nil
		})
	}
	_ = g.Wait()

	count := 0
	for _, ok := range enriched {
		if ok {
			count++
		}
	}
	return count
}

// enrichOne fetches one profile page and appends its main text to the
// result content.
func (r *Runner) enrichOne(ctx context.Context, result *types.SearchResult) bool {
	if result.URL == "" {
		return false
	}

	platform := fetch.DetectPlatform(result.URL)
	fetched, err := fetch.URL(ctx, result.URL, nil)
	if err != nil {
		r.log.Debug("profile page fetch failed",
			zap.String("url", result.URL), zap.Error(err))
		return false
	}

	text, err := fetch.ExtractMainText(fetched.HTML,
		fetch.PlatformContentSelectors(platform),
		fetch.PlatformNoiseSelectors(platform)...)
	if err != nil {
		r.log.Debug("profile page parse failed",
			zap.String("url", result.URL), zap.Error(err))
		return false
	}

	if r.useBrowser && fetch.ShouldUseBrowser(text) {
		rendered, rerr := fetch.WithBrowser(ctx, result.URL, fetch.DefaultTimeout, false)
		if rerr != nil {
			r.log.Debug("browser rendering failed",
				zap.String("url", result.URL), zap.Error(rerr))
		} else {
			rtext, terr := fetch.ExtractMainText(rendered,
				fetch.PlatformContentSelectors(platform),
				fetch.PlatformNoiseSelectors(platform)...)
			if terr == nil && len(rtext) > len(text) {
				text = rtext
			}
		}
	}

	if text == "" {
		return false
	}
	if runes := []rune(text); len(runes) > maxEnrichmentRunes {
		text = string(runes[:maxEnrichmentRunes])
	}
	result.Content = result.Content + "\n" + text
	return true
}

// shortlistEntries converts ranked candidates to shortlist rows, keeping
// slice order as rank order.
func shortlistEntries(candidates []types.CandidateProfile) []db.ShortlistEntry {
	entries := make([]db.ShortlistEntry, 0, len(candidates))
	for i, c := range candidates {
		entries = append(entries, db.ShortlistEntry{
			Rank:       i + 1,
			Name:       c.Name,
			Skills:     db.StringArray(c.Skills),
			RiskScore:  c.RiskScore,
			MatchScore: c.MatchScore,
			ProfileURL: c.ProfileURL,
			Profile:    c,
		})
	}
	return entries
}
