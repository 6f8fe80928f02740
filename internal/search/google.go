package search

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/jonathan/talent-scout/internal/types"
)

// GoogleProvider searches the web through the Google Custom Search API.
type GoogleProvider struct {
	svc *customsearch.Service
	cx  string
}

// NewGoogleProvider creates a Custom Search backed provider.
func NewGoogleProvider(ctx context.Context, apiKey string, cx string) (*GoogleProvider, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &GoogleProvider{
		svc: svc,
		cx:  cx,
	}, nil
}

// Name identifies the provider.
func (p *GoogleProvider) Name() string {
	return "google"
}

// Search runs one query against Custom Search. Depth and raw content
// options have no Custom Search equivalent and are ignored.
func (p *GoogleProvider) Search(ctx context.Context, query string, params Params) ([]types.SearchResult, error) {
	call := p.svc.Cse.List().Cx(p.cx).Q(query).Context(ctx)
	if params.MaxResults > 0 {
		call = call.Num(int64(params.MaxResults))
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("google search failed: %w", err)
	}

	var results []types.SearchResult
	for _, item := range resp.Items {
		results = append(results, types.SearchResult{
			Title:   item.Title,
			URL:     item.Link,
			Content: item.Snippet,
		})
	}

	return results, nil
}
