// Package types provides type definitions for structured data used throughout the talent-scout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Seniority represents a candidate seniority level, ordered from Junior to Principal.
type Seniority string

const (
	SeniorityJunior    Seniority = "Junior"
	SeniorityMid       Seniority = "Mid"
	SenioritySenior    Seniority = "Senior"
	SeniorityLead      Seniority = "Lead"
	SeniorityPrincipal Seniority = "Principal"
)

// ParseSeniority maps a free-form label onto a Seniority level. The second
// return is false when the label matches no level.
func ParseSeniority(s string) (Seniority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "junior":
		return SeniorityJunior, true
	case "mid":
		return SeniorityMid, true
	case "senior":
		return SenioritySenior, true
	case "lead":
		return SeniorityLead, true
	case "principal":
		return SeniorityPrincipal, true
	}
	return "", false
}

// RequirementSet represents the structured hiring requirements inferred from a
// natural-language request.
type RequirementSet struct {
	Skills          []string  `json:"skills"`
	Seniority       Seniority `json:"seniority"`
	Quantity        int       `json:"quantity"`
	OriginalRequest string    `json:"original_request"`
}

// SearchResult represents one web search hit. SourceQuery and SourceIndex are
// provenance fields attached by the search executor, not by providers;
// SourceIndex is the 1-based position of the originating query.
type SearchResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Content     string `json:"content"`
	SourceQuery string `json:"source_query,omitempty"`
	SourceIndex int    `json:"source_index,omitempty"`
}

// CandidateProfile represents a candidate extracted from a single search
// result. Profiles are positional: two identical results produce two
// independent profiles.
type CandidateProfile struct {
	Name            string    `json:"name"`
	Headline        string    `json:"headline,omitempty"`
	Purpose         string    `json:"purpose"`
	Seniority       Seniority `json:"seniority"`
	Skills          []string  `json:"skills"`
	Experience      string    `json:"experience"`
	ExperienceYears int       `json:"experience_years,omitempty"`
	Rating          string    `json:"rating"`
	HourlyRate      string    `json:"hourly_rate"`
	RiskScore       int       `json:"risk_score"`
	RiskLevel       string    `json:"risk_level"`
	Strengths       []string  `json:"strengths,omitempty"`
	MatchScore      float64   `json:"match_score,omitempty"`
	Summary         string    `json:"summary,omitempty"`
	ProfileURL      string    `json:"profile_url,omitempty"`
	SourceQuery     string    `json:"source_query,omitempty"`
	SourceIndex     int       `json:"source_index,omitempty"`
}

// SearchIntent represents the classified intent of a chat message. Zero
// values mean the field was not specified by the user.
type SearchIntent struct {
	IsTalentRequest        bool     `json:"is_talent_request"`
	Skills                 []string `json:"skills"`
	Seniority              string   `json:"seniority,omitempty"`
	Quantity               int      `json:"quantity,omitempty"`
	PlatformPreference     string   `json:"platform_preference,omitempty"`
	Urgency                string   `json:"urgency"`
	AdditionalRequirements string   `json:"additional_requirements,omitempty"`
}
