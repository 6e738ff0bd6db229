package extract_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/miner"
	"github.com/fwojciec/miner/extract"
	"github.com/fwojciec/miner/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackoffDelays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, extract.BackoffDelays(3))
	assert.Empty(t, extract.BackoffDelays(0))

	t.Run("treats negative count as no retries", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extract.BackoffDelays(-1))
	})
}

func TestRetryFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("succeeds after transient failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		next := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*miner.Document, error) {
				calls++
				if calls < 3 {
					return nil, errors.New("HTTP 503")
				}
				return &miner.Document{URL: url, Body: []byte("ok")}, nil
			},
		}
		var attempts []int
		f := &extract.RetryFetcher{
			Next:   next,
			Delays: []time.Duration{0, 0, 0},
			OnRetry: func(_ string, attempt int, _ error) {
				attempts = append(attempts, attempt)
			},
		}

		doc, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "ok", string(doc.Body))
		assert.Equal(t, 3, calls)
		assert.Equal(t, []int{2, 3}, attempts)
	})

	t.Run("returns last error when attempts run out", func(t *testing.T) {
		t.Parallel()

		calls := 0
		next := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (*miner.Document, error) {
				calls++
				return nil, errors.New("HTTP 500")
			},
		}
		f := &extract.RetryFetcher{Next: next, Delays: []time.Duration{0, 0}}

		_, err := f.Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 500")
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry invalid requests", func(t *testing.T) {
		t.Parallel()

		calls := 0
		next := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (*miner.Document, error) {
				calls++
				return nil, miner.Errorf(miner.EINVALID, "invalid URL")
			},
		}
		f := &extract.RetryFetcher{Next: next, Delays: []time.Duration{0, 0}}

		_, err := f.Fetch(context.Background(), "::")

		assert.Equal(t, miner.EINVALID, miner.ErrorCode(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		next := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (*miner.Document, error) {
				calls++
				cancel()
				return nil, errors.New("HTTP 500")
			},
		}
		f := &extract.RetryFetcher{Next: next, Delays: []time.Duration{time.Hour}}

		_, err := f.Fetch(ctx, "https://example.com")

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closed := false
		f := &extract.RetryFetcher{Next: &mock.Fetcher{CloseFn: func() error {
			closed = true
			return nil
		}}}

		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}
