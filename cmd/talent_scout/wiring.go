package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/config"
	"github.com/jonathan/talent-scout/internal/db"
	"github.com/jonathan/talent-scout/internal/llm"
	"github.com/jonathan/talent-scout/internal/search"
)

// loadConfigFile loads the JSON config file when a path is given; an empty
// path yields a zero config. Callers apply flag overrides, then environment
// values and defaults, before validating.
func loadConfigFile(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}
	loaded, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return *loaded, nil
}

// buildLLMClient returns a Gemini client, or the disabled client when no API
// key is configured so intent analysis, chat and formatting run on their
// fallback paths.
func buildLLMClient(ctx context.Context, cfg config.Config, log *zap.Logger) (llm.Client, error) {
	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY not set, LLM features disabled")
		return llm.NewDisabled(), nil
	}
	return llm.NewClient(ctx, nil, cfg.GeminiAPIKey)
}

// buildProvider constructs the configured search provider. Tavily accepts an
// empty key; its calls then fail per query and searches surface no results,
// which is the unconfigured-search serve mode.
func buildProvider(ctx context.Context, cfg config.Config, log *zap.Logger) (search.Provider, error) {
	switch cfg.SearchProvider {
	case config.ProviderGoogle:
		provider, err := search.NewGoogleProvider(ctx, cfg.GoogleSearchKey, cfg.GoogleSearchCX)
		if err != nil {
			return nil, fmt.Errorf("failed to create search provider: %w", err)
		}
		return provider, nil
	default:
		if cfg.TavilyAPIKey == "" {
			log.Warn("TAVILY_API_KEY not set, searches will return no results")
		}
		return search.NewTavilyProvider(cfg.TavilyAPIKey), nil
	}
}

// buildDatabase connects when a database URL is configured. Connection
// failures are logged and persistence stays off; the pipeline runs stateless.
func buildDatabase(ctx context.Context, cfg config.Config, log *zap.Logger) *db.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Warn("database connection failed, continuing without persistence", zap.Error(err))
		return nil
	}
	log.Info("run persistence enabled")
	return database
}

// searchConfigured reports whether the configured provider has the
// credentials it needs.
func searchConfigured(cfg config.Config) bool {
	if cfg.SearchProvider == config.ProviderGoogle {
		return cfg.GoogleSearchKey != "" && cfg.GoogleSearchCX != ""
	}
	return cfg.TavilyAPIKey != ""
}
