// Package simplifier explains technical terms in plain language, caching
// explanations in memory.
package simplifier

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/llm"
	"github.com/jonathan/talent-scout/internal/prompts"
)

// ErrEmptyTerm is returned when the term is blank after trimming.
var ErrEmptyTerm = errors.New("term cannot be empty")

const explanationFallback = "Sorry, I couldn't explain that term right now."

// knownTechnicalTerms backs IsTechnicalTerm for words too short for the
// length heuristic.
var knownTechnicalTerms = []string{
	"api", "rest", "json", "http", "url", "html", "css", "javascript",
	"python", "database", "sql", "server", "client", "backend", "frontend",
	"framework", "library", "function", "variable", "algorithm", "data structure",
	"cloud", "hosting", "deployment", "container", "docker", "kubernetes",
	"microservice", "authentication", "authorization", "encryption", "api key",
	"endpoint", "request", "response", "status code", "header", "payload",
	"git", "repository", "commit", "branch", "merge", "pull request",
	"compiler", "interpreter", "runtime", "debugging", "testing", "unit test",
	"integration test", "continuous integration", "continuous deployment",
	"agile", "scrum", "waterfall", "sprint", "backlog", "user story",
	"bandwidth", "latency", "throughput", "cache", "memory", "cpu", "gpu",
	"thread", "process", "asynchronous", "synchronous", "concurrency",
	"ajax", "xml", "yaml", "markdown", "regex", "expression", "statement",
}

// Service generates and caches plain-language explanations. The cache is
// keyed by the trimmed, lowercased term. Safe for concurrent use.
type Service struct {
	llm   llm.Client
	log   *zap.Logger
	known map[string]bool

	mu    sync.RWMutex
	cache map[string]string
}

// NewService creates a simplifier backed by the given model client.
func NewService(client llm.Client, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	known := make(map[string]bool, len(knownTechnicalTerms))
	for _, t := range knownTechnicalTerms {
		known[t] = true
	}
	return &Service{
		llm:   client,
		log:   log,
		known: known,
		cache: make(map[string]string),
	}
}

// Explain returns a plain-language explanation of term, with cached reporting
// whether it came from the cache. An optional usage context refines the
// prompt. Model failures yield a fixed apology that is never cached.
func (s *Service) Explain(ctx context.Context, term, usageContext string) (explanation string, cached bool, err error) {
	key := strings.ToLower(strings.TrimSpace(term))
	if key == "" {
		return "", false, ErrEmptyTerm
	}

	s.mu.RLock()
	hit, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		s.log.Info("cache hit", zap.String("term", key))
		return hit, true, nil
	}

	s.log.Info("generating explanation", zap.String("term", key))
	prompt, err := s.buildPrompt(key, usageContext)
	if err != nil {
		s.log.Error("simplifier prompt unavailable", zap.Error(err))
		return explanationFallback, false, nil
	}
	system, err := prompts.Get("simplifier.json", "system")
	if err != nil {
		s.log.Error("simplifier prompt unavailable", zap.Error(err))
		return explanationFallback, false, nil
	}

	reply, err := s.llm.GenerateChat(ctx, system, []llm.Message{
		{Role: llm.RoleUser, Content: prompt},
	}, llm.TierLite)
	if err != nil {
		s.log.Error("explanation failed", zap.String("term", key), zap.Error(err))
		return explanationFallback, false, nil
	}

	explanation = strings.TrimSpace(reply)
	s.mu.Lock()
	s.cache[key] = explanation
	s.mu.Unlock()

	return explanation, false, nil
}

func (s *Service) buildPrompt(term, usageContext string) (string, error) {
	if usageContext == "" {
		return prompts.FormatPrompt("simplifier.json", "explain", map[string]string{
			"Term": term,
		})
	}
	return prompts.FormatPrompt("simplifier.json", "explain_with_context", map[string]string{
		"Term":    term,
		"Context": usageContext,
	})
}

// IsTechnicalTerm reports whether a word likely needs explaining. Known terms
// always qualify; otherwise anything longer than four characters does.
func (s *Service) IsTechnicalTerm(term string) bool {
	key := strings.ToLower(strings.TrimSpace(term))
	if s.known[key] {
		return true
	}
	if utf8.RuneCountInString(key) <= 4 {
		return false
	}
	return true
}

// Stats returns the cache size and the sorted list of cached terms.
func (s *Service) Stats() (int, []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	terms := make([]string, 0, len(s.cache))
	for term := range s.cache {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return len(s.cache), terms
}

// Clear empties the cache and returns how many terms were removed.
func (s *Service) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.cache)
	s.cache = make(map[string]string)
	return removed
}
