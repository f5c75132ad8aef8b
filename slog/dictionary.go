package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/is3ka1/camdict"
)

// Ensure LoggingDictionary implements camdict.Dictionary.
var _ camdict.Dictionary = (*LoggingDictionary)(nil)

// LoggingDictionary wraps a Dictionary with logging of each lookup.
type LoggingDictionary struct {
	next   camdict.Dictionary
	logger *slog.Logger
}

// NewLoggingDictionary creates a new LoggingDictionary.
func NewLoggingDictionary(next camdict.Dictionary, logger *slog.Logger) *LoggingDictionary {
	return &LoggingDictionary{next: next, logger: logger}
}

// Query delegates to the wrapped dictionary and logs the outcome.
func (d *LoggingDictionary) Query(ctx context.Context, word string) (result *camdict.QueryResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			d.logger.WarnContext(ctx, "query failed",
				"word", word,
				"code", camdict.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		attrs := []any{
			"word", word,
			"duration", time.Since(begin),
		}
		switch {
		case result == nil:
		case result.Entry != nil:
			attrs = append(attrs, "category", string(result.Category), "entries", len(result.Entry.Entries))
		case result.Suggestion != nil:
			attrs = append(attrs, "category", string(result.Category), "recommendations", len(result.Suggestion.Recommendations))
		}
		d.logger.InfoContext(ctx, "query", attrs...)
	}(time.Now())
	return d.next.Query(ctx, word)
}
