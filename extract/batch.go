package extract

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/fwojciec/miner"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of documents processed at once when
// Batch.Concurrency is not set.
const DefaultConcurrency = 4

// Job is one input of a batch. Jobs with a Document are extracted directly;
// jobs without one are fetched from URL first.
type Job struct {
	URL      string
	Document *miner.Document
}

// Result holds the outcome of a single job.
type Result struct {
	URL      string
	Metadata *miner.Metadata
	Err      error
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
// It may be called from several goroutines at once.
type ProgressFunc func(event ProgressEvent)

// Batch extracts metadata from many documents concurrently. Every job owns
// its own tree and record, so jobs share nothing but the service.
type Batch struct {
	Fetcher     miner.Fetcher
	Service     miner.MetadataService
	Concurrency int
}

// Run processes jobs and returns one result per job, in job order. A failed
// job does not stop the others; only context cancellation does.
func (b *Batch) Run(ctx context.Context, jobs []Job, progress ProgressFunc) []Result {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(jobs))
	total := len(jobs)
	var completed atomic.Int64

	notify := func(event ProgressEvent) {
		if progress != nil {
			progress(event)
		}
	}

	notify(ProgressEvent{Type: ProgressStarted, Total: total})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			m, err := b.process(gctx, job)
			results[i] = Result{URL: job.URL, Metadata: m, Err: err}

			done := int(completed.Add(1))
			if err != nil {
				notify(ProgressEvent{Type: ProgressFailed, Completed: done, Total: total, URL: job.URL, Error: err})
			} else {
				notify(ProgressEvent{Type: ProgressCompleted, Completed: done, Total: total, URL: job.URL})
			}
			return nil
		})
	}
	_ = g.Wait()

	notify(ProgressEvent{Type: ProgressFinished, Completed: int(completed.Load()), Total: total})

	return results
}

func (b *Batch) process(ctx context.Context, job Job) (*miner.Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := job.Document
	if doc == nil {
		if b.Fetcher == nil {
			return nil, miner.Errorf(miner.EINVALID, "no fetcher configured for %s", job.URL)
		}
		fetched, err := b.Fetcher.Fetch(ctx, job.URL)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", job.URL, err)
		}
		doc = fetched
	}

	return b.Service.Extract(ctx, doc)
}
