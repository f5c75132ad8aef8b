// Package lookup coordinates fetching, classifying and parsing of
// dictionary pages.
package lookup

import (
	"context"
	"fmt"
	"strings"

	"github.com/is3ka1/camdict"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of words QueryAll looks up at once.
const DefaultConcurrency = 3

var _ camdict.Dictionary = (*Service)(nil)

// Service looks up words: it fetches the page, classifies the resolved URL
// and hands the body to the matching parser.
type Service struct {
	Fetcher     camdict.Fetcher
	Entries     camdict.EntryParser
	Suggestions camdict.SuggestionParser
}

// Query looks up a single word. Classification errors are returned as is and
// no parser runs for them.
func (s *Service) Query(ctx context.Context, word string) (*camdict.QueryResult, error) {
	if strings.TrimSpace(word) == "" {
		return nil, camdict.Errorf(camdict.EINVALID, "word required")
	}

	resp, err := s.Fetcher.Fetch(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %q: %w", word, err)
	}

	category, err := camdict.Classify(resp.URL)
	if err != nil {
		return nil, err
	}

	result := &camdict.QueryResult{Word: word, Category: category}
	switch category {
	case camdict.CategoryEntry:
		result.Entry, err = s.Entries.ParseEntry(resp.Body)
	case camdict.CategorySuggestion:
		result.Suggestion, err = s.Suggestions.ParseSuggestion(resp.Body, resp.Success())
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Outcome is the result of looking up one word in a batch.
type Outcome struct {
	Word   string
	Result *camdict.QueryResult
	Err    error
}

// QueryAll looks up words concurrently, at most concurrency at a time, and
// returns one Outcome per word in input order. A failing word does not stop
// the others.
func QueryAll(ctx context.Context, dict camdict.Dictionary, words []string, concurrency int) []Outcome {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	outcomes := make([]Outcome, len(words))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, word := range words {
		g.Go(func() error {
			result, err := dict.Query(ctx, word)
			outcomes[i] = Outcome{Word: word, Result: result, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}
