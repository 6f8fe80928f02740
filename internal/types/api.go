// Package types provides type definitions for structured data used throughout the talent-scout system.
package types

import "github.com/go-playground/validator/v10"

// ChatRequest represents a message sent to the conversational assistant.
type ChatRequest struct {
	Message   string `json:"message" validate:"required,min=1"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse represents the assistant's reply to a chat request.
type ChatResponse struct {
	Response            string `json:"response"`
	SearchPerformed     bool   `json:"search_performed"`
	TalentCount         int    `json:"talent_count,omitempty"`
	SearchSummary       string `json:"search_summary,omitempty"`
	ConversationContext string `json:"conversation_context,omitempty"`
	SessionID           string `json:"session_id"`
}

// ExplainTermRequest represents a request to explain a technical term in
// plain language.
type ExplainTermRequest struct {
	Term    string `json:"term" validate:"required,min=1"`
	Context string `json:"context,omitempty"`
}

// ExplainTermResponse represents the explanation for a term.
type ExplainTermResponse struct {
	Term        string `json:"term"`
	Explanation string `json:"explanation"`
	Cached      bool   `json:"cached"`
}

// CacheStatsResponse represents the explanation cache contents.
type CacheStatsResponse struct {
	TotalCachedTerms int      `json:"total_cached_terms"`
	CachedTerms      []string `json:"cached_terms"`
}

// TokenRequest represents an API token request.
type TokenRequest struct {
	Password string `json:"password" validate:"required"`
}

// TokenResponse represents an issued API token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ExplainTermRequest using the validator.
func (r *ExplainTermRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TokenRequest using the validator.
func (r *TokenRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
