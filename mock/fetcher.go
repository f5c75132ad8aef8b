package mock

import (
	"context"

	"github.com/is3ka1/camdict"
)

var _ camdict.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of camdict.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, word string) (*camdict.Response, error)
}

func (f *Fetcher) Fetch(ctx context.Context, word string) (*camdict.Response, error) {
	return f.FetchFn(ctx, word)
}
