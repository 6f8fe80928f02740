package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/db"
	"github.com/jonathan/talent-scout/internal/pipeline"
	"github.com/jonathan/talent-scout/internal/types"
)

// defaultSessionID identifies the single shared conversation. Session IDs are
// echoed back so clients can keep their own bookkeeping.
const defaultSessionID = "default"

// serviceName is reported on the root and health endpoints.
const serviceName = "AI Talent Tools API"

// serviceVersion is the API version reported on the root endpoint.
const serviceVersion = "2.0.0"

// ServiceInfo describes the API on the root endpoint
type ServiceInfo struct {
	Message      string            `json:"message"`
	Description  string            `json:"description"`
	Version      string            `json:"version"`
	Capabilities []string          `json:"capabilities"`
	Endpoints    map[string]string `json:"endpoints"`
}

// HealthResponse represents the response for /health
type HealthResponse struct {
	Status           string `json:"status"`
	Service          string `json:"service"`
	GeminiConfigured bool   `json:"gemini_configured"`
	SearchConfigured bool   `json:"search_configured"`
}

// ResetResponse represents the response for /reset-conversation
type ResetResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// SummaryResponse represents the response for /conversation-summary
type SummaryResponse struct {
	Success bool   `json:"success"`
	Summary string `json:"summary"`
}

// SearchListResponse represents the response for /searches
type SearchListResponse struct {
	Success  bool             `json:"success"`
	Count    int              `json:"count"`
	Searches []db.SourcingRun `json:"searches"`
}

// SearchDetailResponse represents the response for /searches/{id}
type SearchDetailResponse struct {
	Run       *db.SourcingRun     `json:"run"`
	Shortlist []db.ShortlistEntry `json:"shortlist"`
}

// handleRoot returns the service card
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	endpoints := map[string]string{
		"talent_api":     "/api/v1",
		"simplifier_api": "/simplifier",
		"health":         "/health",
	}
	if s.authHandler != nil {
		endpoints["auth"] = "/auth/token"
	}

	s.jsonResponse(w, http.StatusOK, ServiceInfo{
		Message:     serviceName,
		Description: "API for AI-powered talent hunting and technical term simplification",
		Version:     serviceVersion,
		Capabilities: []string{
			"Natural language talent search",
			"Multi-platform sourcing (Upwork, LinkedIn, Fiverr)",
			"AI-powered candidate evaluation",
			"Conversational interface",
			"Risk assessment and ranking",
			"Technical term simplification",
		},
		Endpoints: endpoints,
	})
}

// handleHealth returns service health and which external keys are configured
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:           "healthy",
		Service:          serviceName,
		GeminiConfigured: s.geminiConfigured,
		SearchConfigured: s.searchConfigured,
	})
}

// handleChat processes one conversational message
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.SessionID == "" {
		req.SessionID = defaultSessionID
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			s.log.Error("chat handler panicked", zap.Any("panic", rec))
			s.jsonResponse(w, http.StatusInternalServerError, map[string]any{
				"error":      "Internal server error",
				"message":    fmt.Sprint(rec),
				"session_id": req.SessionID,
			})
		}
	}()

	result := s.assistant.Chat(r.Context(), req.Message)

	s.jsonResponse(w, http.StatusOK, types.ChatResponse{
		Response:            result.Message,
		SearchPerformed:     result.SearchPerformed,
		TalentCount:         len(result.TalentResults),
		SearchSummary:       result.SearchSummary,
		ConversationContext: result.ConversationContext,
		SessionID:           req.SessionID,
	})
}

// handleResetConversation clears the assistant's conversation history
func (s *Server) handleResetConversation(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		sessionID = defaultSessionID
	}

	s.assistant.Reset()

	s.jsonResponse(w, http.StatusOK, ResetResponse{
		Success:   true,
		Message:   "Conversation history reset successfully",
		SessionID: sessionID,
	})
}

// handleConversationSummary returns a short description of the conversation so far
func (s *Server) handleConversationSummary(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, SummaryResponse{
		Success: true,
		Summary: s.assistant.Summary(),
	})
}

// handleRecentSearches lists recent sourcing runs, newest first
func (s *Server) handleRecentSearches(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	filters := db.RunFilters{
		Query:  r.URL.Query().Get("q"),
		Status: r.URL.Query().Get("status"),
		Limit:  limit,
	}

	runs, err := s.database.ListRunsFiltered(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, SearchListResponse{
		Success:  true,
		Count:    len(runs),
		Searches: runs,
	})
}

// handleSearchDetail returns one sourcing run with its shortlist
func (s *Server) handleSearchDetail(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID format")
		return
	}

	run, err := s.database.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "Run not found")
		return
	}

	shortlist, err := s.database.GetShortlist(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, SearchDetailResponse{
		Run:       run,
		Shortlist: shortlist,
	})
}

// handleSearchDelete removes one sourcing run and its shortlist
func (s *Server) handleSearchDelete(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID format")
		return
	}

	run, err := s.database.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "Run not found")
		return
	}

	if err := s.database.DeleteRun(r.Context(), runID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Search run deleted",
		"run_id":  runID.String(),
	})
}

// handleExplainTerm explains a technical term in plain language
func (s *Server) handleExplainTerm(w http.ResponseWriter, r *http.Request) {
	var req types.ExplainTermRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	term := strings.TrimSpace(req.Term)
	if term == "" {
		s.errorResponse(w, http.StatusBadRequest, "Term cannot be empty")
		return
	}

	explanation, cached, err := s.simplifier.Explain(r.Context(), term, strings.TrimSpace(req.Context))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate explanation: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.ExplainTermResponse{
		Term:        term,
		Explanation: explanation,
		Cached:      cached,
	})
}

// handleCacheStats reports the explanation cache contents
func (s *Server) handleCacheStats(w http.ResponseWriter, _ *http.Request) {
	total, terms := s.simplifier.Stats()
	s.jsonResponse(w, http.StatusOK, types.CacheStatsResponse{
		TotalCachedTerms: total,
		CachedTerms:      terms,
	})
}

// handleCacheClear empties the explanation cache
func (s *Server) handleCacheClear(w http.ResponseWriter, _ *http.Request) {
	removed := s.simplifier.Clear()
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Cache cleared. %d terms removed.", removed),
		"status":  "success",
	})
}

// handleHunt runs the one-shot MERN + AI screening flow
func (s *Server) handleHunt(w http.ResponseWriter, r *http.Request) {
	opts := s.pipeline
	opts.OnProgress = nil
	runner := pipeline.NewRunner(opts)

	report, err := runner.HuntMERNAI(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Hunt failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleHuntStream runs the screening flow and streams progress via SSE
func (s *Server) handleHuntStream(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.log.Info("starting streaming screening run")

	opts := s.pipeline
	opts.OnProgress = func(event pipeline.ProgressEvent) {
		if err := sse.WriteStep(event); err != nil {
			s.log.Warn("failed to write SSE event", zap.Error(err))
		}
	}
	runner := pipeline.NewRunner(opts)

	// Run synchronously, blocking until the screening completes
	report, err := runner.HuntMERNAI(r.Context())
	if err != nil {
		s.log.Error("screening run failed", zap.Error(err))
		sse.WriteError(err.Error())
		return
	}

	if err := sse.WriteResult(report); err != nil {
		s.log.Warn("failed to write SSE result", zap.Error(err))
	}
	sse.WriteComplete(report.RunID, "completed")
	s.log.Info("streaming screening run completed")
}
