// Package search executes talent queries against web search providers.
package search

import (
	"context"

	"github.com/jonathan/talent-scout/internal/types"
)

// Params control a single provider call.
type Params struct {
	Depth             string
	MaxResults        int
	IncludeAnswer     bool
	IncludeRawContent bool
}

// DefaultParams returns the provider parameters used by the conversational
// sourcing path.
func DefaultParams() Params {
	return Params{
		Depth:             "advanced",
		MaxResults:        5,
		IncludeAnswer:     true,
		IncludeRawContent: true,
	}
}

// ScreeningParams returns the provider parameters used by the one-shot
// screening path, which issues a single query and wants a wider net.
func ScreeningParams() Params {
	return Params{
		Depth:             "advanced",
		MaxResults:        10,
		IncludeAnswer:     true,
		IncludeRawContent: true,
	}
}

// Provider is a web search backend. Implementations return their results in
// provider order and never annotate provenance; the executor owns that.
type Provider interface {
	// Name identifies the provider in logs and health output
	Name() string
	// Search runs one query and maps the provider response onto SearchResults
	Search(ctx context.Context, query string, params Params) ([]types.SearchResult, error)
}
