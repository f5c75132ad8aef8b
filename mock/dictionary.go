package mock

import (
	"context"

	"github.com/is3ka1/camdict"
)

var _ camdict.Dictionary = (*Dictionary)(nil)

// Dictionary is a mock implementation of camdict.Dictionary.
type Dictionary struct {
	QueryFn func(ctx context.Context, word string) (*camdict.QueryResult, error)
}

func (d *Dictionary) Query(ctx context.Context, word string) (*camdict.QueryResult, error) {
	return d.QueryFn(ctx, word)
}
