package camdict

import (
	"context"
	"net/http"
)

// Response is a fetched lookup page after redirects have been followed.
type Response struct {
	// URL is the final URL the request resolved to.
	URL        string
	StatusCode int
	Body       string
}

// Success reports whether the response carried a 2xx status.
func (r *Response) Success() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Fetcher retrieves the lookup page for a word.
// Non-2xx responses are returned as a Response, not as an error.
type Fetcher interface {
	Fetch(ctx context.Context, word string) (*Response, error)
}

// QueryResult is the outcome of a lookup. Exactly one of Entry and
// Suggestion is set, as indicated by Category.
type QueryResult struct {
	Word       string          `json:"word"`
	Category   Category        `json:"category"`
	Entry      *EntryPage      `json:"entry,omitempty"`
	Suggestion *SuggestionPage `json:"suggestion,omitempty"`
}

// Dictionary looks up words.
type Dictionary interface {
	// Query fetches the page for word, classifies it and parses it.
	// Returns EMALFORMEDURL or EUNEXPECTEDCATEGORY if the page cannot be classified.
	Query(ctx context.Context, word string) (*QueryResult, error)
}
