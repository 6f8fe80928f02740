// Package server provides the HTTP REST API for the talent sourcing assistant.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/chat"
	"github.com/jonathan/talent-scout/internal/config"
	"github.com/jonathan/talent-scout/internal/db"
	"github.com/jonathan/talent-scout/internal/pipeline"
	"github.com/jonathan/talent-scout/internal/server/middleware"
	"github.com/jonathan/talent-scout/internal/server/ratelimit"
)

// ChatAssistant is the conversational surface exposed on /api/v1.
type ChatAssistant interface {
	Chat(ctx context.Context, message string) chat.Result
	Reset()
	Summary() string
}

// TermSimplifier is the explanation surface exposed on /simplifier.
type TermSimplifier interface {
	Explain(ctx context.Context, term, usageContext string) (string, bool, error)
	Stats() (int, []string)
	Clear() int
}

// Server represents the HTTP server
type Server struct {
	httpServer       *http.Server
	assistant        ChatAssistant
	simplifier       TermSimplifier
	database         *db.DB
	pipeline         pipeline.Options
	rateLimiter      *ratelimit.Limiter
	jwtService       *JWTService
	authHandler      *AuthHandler
	geminiConfigured bool
	searchConfigured bool
	log              *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port             int
	Assistant        ChatAssistant
	Simplifier       TermSimplifier
	Database         *db.DB           // optional, nil disables search history endpoints
	Pipeline         pipeline.Options // per-request runners for the hunt endpoints
	GeminiConfigured bool
	SearchConfigured bool
	Logger           *zap.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Assistant == nil {
		return nil, fmt.Errorf("chat assistant is required")
	}
	if cfg.Simplifier == nil {
		return nil, fmt.Errorf("term simplifier is required")
	}
	if cfg.Pipeline.Provider == nil {
		return nil, fmt.Errorf("search provider is required")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		assistant:        cfg.Assistant,
		simplifier:       cfg.Simplifier,
		database:         cfg.Database,
		pipeline:         cfg.Pipeline,
		geminiConfigured: cfg.GeminiConfigured,
		searchConfigured: cfg.SearchConfigured,
		log:              log,
	}

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Token auth is enabled only when a JWT secret is configured
	if config.AuthEnabled() {
		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		passwordConfig, err := config.NewPasswordConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create password config: %w", err)
		}
		s.jwtService = NewJWTService(jwtConfig)
		s.authHandler = NewAuthHandler(passwordConfig, s.jwtService, log)
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Talent API endpoints (token-gated when auth is enabled)
	api := http.NewServeMux()
	api.HandleFunc("POST /api/v1/chat", s.handleChat)
	api.HandleFunc("POST /api/v1/reset-conversation", s.handleResetConversation)
	api.HandleFunc("GET /api/v1/conversation-summary", s.handleConversationSummary)
	api.HandleFunc("POST /api/v1/hunt", s.handleHunt)
	api.HandleFunc("POST /api/v1/hunt/stream", s.handleHuntStream)
	if s.database != nil {
		api.HandleFunc("GET /api/v1/searches", s.handleRecentSearches)
		api.HandleFunc("GET /api/v1/searches/{id}", s.handleSearchDetail)
		api.HandleFunc("DELETE /api/v1/searches/{id}", s.handleSearchDelete)
	}

	var apiHandler http.Handler = api
	if s.jwtService != nil {
		apiHandler = middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(apiHandler)
	}
	mux.Handle("/api/v1/", apiHandler)

	// Term simplifier endpoints
	mux.HandleFunc("POST /simplifier/explain", s.handleExplainTerm)
	mux.HandleFunc("GET /simplifier/cache/stats", s.handleCacheStats)
	mux.HandleFunc("DELETE /simplifier/cache/clear", s.handleCacheClear)

	// Token issuance
	if s.authHandler != nil {
		mux.HandleFunc("POST /auth/token", s.handleToken)
	}

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for screening runs
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if s.database != nil {
		s.database.Close()
	}
	s.log.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.rateLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		// Extract client identifier (IP address)
		clientID := s.extractClientID(r)

		// Check rate limit
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			// Set rate limit headers
			s.setRateLimitHeaders(w, info)
			// Return 429 Too Many Requests
			s.rateLimitResponse(w, info)
			return
		}

		// Set rate limit headers for successful requests
		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.log.Info("request started",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
		)
		next.ServeHTTP(w, r)
		s.log.Info("request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// handleToken issues API tokens.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Token(w, r)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; a deployment behind a trusted
// proxy would read X-Forwarded-For instead.
func (s *Server) extractClientID(r *http.Request) string {
	// Get IP from RemoteAddr (format: "IP:port")
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.log.Warn("rate limit exceeded",
		zap.Int("limit", info.Limit),
		zap.Int("remaining", info.Remaining),
		zap.Time("reset_at", info.ResetTime),
	)

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
