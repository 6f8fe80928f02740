package search

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/types"
)

// queryDelay is the pause between successive provider queries.
const queryDelay = 1 * time.Second

// Executor runs a batch of queries sequentially against one provider.
// Failed queries are logged and skipped; successful ones are annotated
// with their source query and 1-based query index before collection.
type Executor struct {
	provider Provider
	params   Params
	delay    time.Duration
	log      *zap.Logger
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewExecutor creates an executor with default search parameters.
func NewExecutor(provider Provider, log *zap.Logger) *Executor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{
		provider: provider,
		params:   DefaultParams(),
		delay:    queryDelay,
		log:      log,
		sleep:    sleepContext,
	}
}

// Execute runs all queries in order and returns the combined results.
// A query failure does not abort the batch. Context cancellation does,
// returning whatever was collected so far along with the context error.
func (e *Executor) Execute(ctx context.Context, queries []string) ([]types.SearchResult, error) {
	var all []types.SearchResult
	for i, query := range queries {
		if err := ctx.Err(); err != nil {
			return all, err
		}

		e.log.Info("executing search query",
			zap.Int("index", i+1),
			zap.Int("total", len(queries)),
			zap.String("query", query))

		results, err := e.provider.Search(ctx, query, e.params)
		if err != nil {
			e.log.Warn("search query failed",
				zap.String("query", query),
				zap.Error(err))
			continue
		}

		for j := range results {
			results[j].SourceQuery = query
			results[j].SourceIndex = i + 1
		}
		all = append(all, results...)

		e.log.Debug("search query returned",
			zap.String("query", query),
			zap.Int("results", len(results)))

		if err := e.sleep(ctx, e.delay); err != nil {
			return all, err
		}
	}
	return all, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
