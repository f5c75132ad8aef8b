// Package slog provides logging decorators for camdict services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/is3ka1/camdict"
)

// Ensure LoggingFetcher implements camdict.Fetcher.
var _ camdict.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging of each request.
type LoggingFetcher struct {
	next   camdict.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next camdict.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, word string) (resp *camdict.Response, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"word", word,
			"duration", time.Since(begin),
		}
		if resp != nil {
			attrs = append(attrs,
				"url", resp.URL,
				"status", resp.StatusCode,
				"bytes", len(resp.Body),
			)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		f.logger.DebugContext(ctx, "fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, word)
}
