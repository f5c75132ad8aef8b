// Package lru provides a caching camdict.Fetcher backed by a bounded
// least-recently-used cache.
package lru

import (
	"context"

	"github.com/hashicorp/golang-lru/v2"
	"github.com/is3ka1/camdict"
)

// DefaultSize is the number of responses kept when no size is given.
const DefaultSize = 128

var _ camdict.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a camdict.Fetcher and remembers successful responses keyed
// on the exact query word. Errors and non-2xx responses are never cached.
// It is safe for concurrent use.
type Fetcher struct {
	next  camdict.Fetcher
	cache *lru.Cache[string, camdict.Response]
}

// NewFetcher creates a Fetcher holding at most size responses.
// A non-positive size uses DefaultSize.
func NewFetcher(next camdict.Fetcher, size int) (*Fetcher, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[string, camdict.Response](size)
	if err != nil {
		return nil, camdict.Errorf(camdict.EINVALID, "failed to create cache: %v", err)
	}
	return &Fetcher{next: next, cache: cache}, nil
}

// Fetch returns the cached response for word, or delegates and caches the
// result when it is a success.
func (f *Fetcher) Fetch(ctx context.Context, word string) (*camdict.Response, error) {
	if resp, ok := f.cache.Get(word); ok {
		return &resp, nil
	}

	resp, err := f.next.Fetch(ctx, word)
	if err != nil {
		return nil, err
	}
	if resp.Success() {
		f.cache.Add(word, *resp)
	}
	return resp, nil
}

// Len returns the number of cached responses.
func (f *Fetcher) Len() int {
	return f.cache.Len()
}
