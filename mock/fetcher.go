package mock

import (
	"context"

	"github.com/fwojciec/miner"
)

var _ miner.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of miner.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*miner.Document, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*miner.Document, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
