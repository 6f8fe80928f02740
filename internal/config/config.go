// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Known search provider names.
const (
	ProviderTavily = "tavily"
	ProviderGoogle = "google"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// Providers
	GeminiAPIKey    string `json:"gemini_api_key,omitempty"`        // Gemini API key
	TavilyAPIKey    string `json:"tavily_api_key,omitempty"`        // Tavily search API key
	GoogleSearchKey string `json:"google_search_api_key,omitempty"` // Google Custom Search API key
	GoogleSearchCX  string `json:"google_search_cx,omitempty"`      // Google Custom Search engine ID
	SearchProvider  string `json:"search_provider,omitempty"`       // "tavily" (default) or "google"

	// Search behavior
	MaxResults int  `json:"max_results,omitempty"` // Per-query result cap
	FetchPages bool `json:"fetch_pages,omitempty"` // Fetch pages when results carry no content
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA profile pages

	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (optional)

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`   // Print detailed progress information
	Debug    bool `json:"debug,omitempty"`     // Debug-level logging
	JSONLogs bool `json:"json_logs,omitempty"` // JSON log encoding
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.SearchProvider {
	case "", ProviderTavily, ProviderGoogle:
	default:
		return fmt.Errorf("config error: unknown search_provider %q (expected %q or %q)", c.SearchProvider, ProviderTavily, ProviderGoogle)
	}

	if c.SearchProvider == ProviderGoogle && (c.GoogleSearchKey == "" || c.GoogleSearchCX == "") {
		return fmt.Errorf("config error: search_provider %q requires both google_search_api_key and google_search_cx", ProviderGoogle)
	}

	if c.MaxResults < 0 {
		return fmt.Errorf("config error: 'max_results' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	return nil
}

// ApplyEnv fills provider secrets from environment variables when the
// corresponding fields are empty. File and flag values win over env.
func (c *Config) ApplyEnv() {
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.TavilyAPIKey == "" {
		c.TavilyAPIKey = os.Getenv("TAVILY_API_KEY")
	}
	if c.GoogleSearchKey == "" {
		c.GoogleSearchKey = os.Getenv("GOOGLE_SEARCH_API_KEY")
	}
	if c.GoogleSearchCX == "" {
		c.GoogleSearchCX = os.Getenv("GOOGLE_SEARCH_CX")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.TavilyAPIKey == "" {
		result.TavilyAPIKey = defaults.TavilyAPIKey
	}
	if result.GoogleSearchKey == "" {
		result.GoogleSearchKey = defaults.GoogleSearchKey
	}
	if result.GoogleSearchCX == "" {
		result.GoogleSearchCX = defaults.GoogleSearchCX
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Provider name: default to Tavily
	if result.SearchProvider == "" {
		if defaults.SearchProvider != "" {
			result.SearchProvider = defaults.SearchProvider
		} else {
			result.SearchProvider = ProviderTavily
		}
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxResults == 0 {
		if defaults.MaxResults > 0 {
			result.MaxResults = defaults.MaxResults
		} else {
			result.MaxResults = 5 // Default per-query result cap
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
