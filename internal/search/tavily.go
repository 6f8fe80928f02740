package search

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/jonathan/talent-scout/internal/types"
)

const tavilyEndpoint = "https://api.tavily.com/search"

// TavilyProvider searches the web through the Tavily REST API.
type TavilyProvider struct {
	client   *resty.Client
	apiKey   string
	endpoint string
}

// NewTavilyProvider creates a Tavily-backed search provider.
func NewTavilyProvider(apiKey string) *TavilyProvider {
	return &TavilyProvider{
		client:   resty.New(),
		apiKey:   apiKey,
		endpoint: tavilyEndpoint,
	}
}

// Name identifies the provider.
func (p *TavilyProvider) Name() string {
	return "tavily"
}

// Search runs one query against Tavily and maps the response results.
func (p *TavilyProvider) Search(ctx context.Context, query string, params Params) ([]types.SearchResult, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"api_key":             p.apiKey,
			"query":               query,
			"search_depth":        params.Depth,
			"max_results":         params.MaxResults,
			"include_answer":      params.IncludeAnswer,
			"include_raw_content": params.IncludeRawContent,
		}).
		Post(p.endpoint)
	if err != nil {
		return nil, fmt.Errorf("tavily request failed: %w", err)
	}

	body := resp.String()
	if resp.IsError() {
		detail := gjson.Get(body, "error").String()
		if detail == "" {
			detail = resp.Status()
		}
		return nil, fmt.Errorf("tavily search failed: %s", detail)
	}

	var results []types.SearchResult
	gjson.Get(body, "results").ForEach(func(_, item gjson.Result) bool {
		results = append(results, types.SearchResult{
			Title:   item.Get("title").String(),
			URL:     item.Get("url").String(),
			Content: item.Get("content").String(),
		})
		return true
	})

	return results, nil
}
