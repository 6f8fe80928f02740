// Package profiles turns raw search results into structured candidate
// profiles using pattern matching over titles and page content.
package profiles

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/ranking"
	"github.com/jonathan/talent-scout/internal/types"
)

// summaryLimit caps the profile summary in runes.
const summaryLimit = 200

var (
	namePattern   = regexp.MustCompile(`^([A-Za-z\s]+?)(?:\s*[-–|]|\s*\d|\s*$)`)
	expPattern    = regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?(?:experience|exp)`)
	ratingPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:stars?|rating|/5)`)
	ratePattern   = regexp.MustCompile(`\$(\d+)(?:\.\d+)?/(?:hour|hr)`)
)

// Extractor builds candidate profiles from search results according to a
// preset Config. The same result always yields the same profile.
type Extractor struct {
	cfg Config
	log *zap.Logger
}

// NewExtractor creates an extractor for the given preset.
func NewExtractor(cfg Config, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{cfg: cfg, log: log}
}

// ExtractAll converts each search result into a profile. Results are
// processed positionally: duplicates produce independent profiles.
func (e *Extractor) ExtractAll(results []types.SearchResult) []types.CandidateProfile {
	profiles := make([]types.CandidateProfile, 0, len(results))
	for i, result := range results {
		e.log.Debug("extracting profile",
			zap.Int("index", i+1),
			zap.Int("total", len(results)),
			zap.String("url", result.URL))
		profiles = append(profiles, e.Extract(result))
	}
	e.log.Info("extracted profiles", zap.Int("count", len(profiles)))
	return profiles
}

// Extract builds one profile from one search result.
func (e *Extractor) Extract(result types.SearchResult) types.CandidateProfile {
	p := types.CandidateProfile{
		Name:        e.cfg.defaultName,
		Headline:    result.Title,
		Purpose:     "Software development professional",
		Seniority:   types.SeniorityMid,
		Experience:  e.cfg.experienceSentinel,
		Rating:      e.cfg.ratingSentinel,
		HourlyRate:  e.cfg.rateSentinel,
		ProfileURL:  result.URL,
		SourceQuery: result.SourceQuery,
		SourceIndex: result.SourceIndex,
	}

	if m := namePattern.FindStringSubmatch(result.Title); m != nil {
		p.Name = strings.TrimSpace(m[1])
	}

	text := strings.ToLower(result.Title + " " + result.Content)
	for _, label := range e.cfg.vocabulary {
		if strings.Contains(text, strings.ToLower(label)) {
			p.Skills = append(p.Skills, label)
		}
	}

	content := strings.ToLower(result.Content)
	if m := expPattern.FindStringSubmatch(content); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			p.Experience = fmt.Sprintf("%d years", years)
			p.ExperienceYears = years
			p.Seniority = seniorityFromYears(years)
		}
	}
	if m := ratingPattern.FindStringSubmatch(content); m != nil {
		p.Rating = m[1] + "/5"
	}
	if m := ratePattern.FindStringSubmatch(content); m != nil {
		p.HourlyRate = "$" + m[1] + "/hour"
	}

	p.Strengths = e.cfg.strengths(p.Skills, text, result.URL)
	p.RiskScore = ranking.ScoreRisk(&p, e.cfg.risk)
	p.RiskLevel = ranking.RiskLabel(p.RiskScore)
	p.Summary = summarize(result.Content)

	return p
}

func seniorityFromYears(years int) types.Seniority {
	switch {
	case years < 2:
		return types.SeniorityJunior
	case years < 5:
		return types.SeniorityMid
	case years < 8:
		return types.SenioritySenior
	default:
		return types.SeniorityLead
	}
}

func summarize(content string) string {
	runes := []rune(content)
	if len(runes) > summaryLimit {
		return string(runes[:summaryLimit]) + "..."
	}
	return content
}
