package extract

import (
	"context"
	"time"

	"github.com/fwojciec/miner"
)

// Ensure RetryFetcher implements miner.Fetcher at compile time.
var _ miner.Fetcher = (*RetryFetcher)(nil)

// BackoffDelays returns n retry delays doubling from one second: 1s, 2s, 4s...
// A negative n means no retries.
func BackoffDelays(n int) []time.Duration {
	n = max(n, 0)
	delays := make([]time.Duration, 0, n)
	d := time.Second
	for range n {
		delays = append(delays, d)
		d *= 2
	}
	return delays
}

// RetryFetcher retries failed fetches after each of Delays in turn.
// Invalid requests and context errors are not retried.
type RetryFetcher struct {
	Next   miner.Fetcher
	Delays []time.Duration

	// OnRetry, if set, is called before each retry with the next attempt
	// number and the error that caused it.
	OnRetry func(url string, attempt int, err error)
}

// Fetch attempts to fetch url up to len(Delays)+1 times.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (*miner.Document, error) {
	maxAttempts := len(f.Delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		doc, err := f.Next.Fetch(ctx, url)
		if err == nil {
			return doc, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || !retryable(ctx, err) {
			break
		}

		if f.OnRetry != nil {
			f.OnRetry(url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.Delays[attempt]):
		}
	}

	return nil, lastErr
}

// Close closes the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.Next.Close()
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	return miner.ErrorCode(err) != miner.EINVALID
}
