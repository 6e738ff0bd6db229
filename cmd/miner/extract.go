package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/miner"
	"github.com/fwojciec/miner/extract"
)

// extractOutput is one entry of a multi-target extraction.
type extractOutput struct {
	Target   string          `json:"target"`
	ID       string          `json:"id,omitempty"`
	Metadata *miner.Metadata `json:"metadata,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	jobs, err := c.jobs(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", miner.ErrorMessage(err))
		return err
	}

	progress := func(e extract.ProgressEvent) {
		if e.Type == extract.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", e.URL, e.Error)
		}
	}

	results := deps.Batch.Run(deps.Ctx, jobs, progress)

	outputs := make([]extractOutput, len(results))
	var failed int
	for i, r := range results {
		outputs[i] = extractOutput{Target: r.URL, Metadata: r.Metadata}
		if r.Err != nil {
			failed++
			outputs[i].Error = r.Err.Error()
			continue
		}
		if c.Save {
			id, err := c.save(deps, r)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error saving %s: %s\n", r.URL, miner.ErrorMessage(err))
				return err
			}
			outputs[i].ID = id
		}
	}

	// A single successful target prints the bare record.
	if len(outputs) == 1 && failed == 0 {
		if err := encode(deps.Stdout, c.Format, outputs[0].Metadata); err != nil {
			return err
		}
		return nil
	}
	if len(outputs) > 1 {
		if err := encode(deps.Stdout, c.Format, outputs); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d targets failed", failed, len(outputs))
	}
	return nil
}

func (c *ExtractCmd) save(deps *Dependencies, r extract.Result) (string, error) {
	url := r.Metadata.URL
	if url == "" {
		url = r.URL
	}
	record := &miner.Record{
		URL:      url,
		Strategy: miner.Strategy(c.Strategy),
		Metadata: r.Metadata,
	}
	if err := deps.Records.CreateRecord(deps.Ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

// jobs turns targets into batch jobs. URLs are fetched by the batch; files
// and stdin are read up front.
func (c *ExtractCmd) jobs(stdin io.Reader) ([]extract.Job, error) {
	jobs := make([]extract.Job, 0, len(c.Targets))
	readStdin := false

	for _, target := range c.Targets {
		switch {
		case isURL(target):
			jobs = append(jobs, extract.Job{URL: target})
		case target == "-":
			if readStdin {
				return nil, miner.Errorf(miner.EINVALID, "stdin can only be read once")
			}
			readStdin = true
			body, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			jobs = append(jobs, extract.Job{URL: target, Document: &miner.Document{Body: body, Charset: c.Charset}})
		default:
			body, err := os.ReadFile(target)
			if err != nil {
				return nil, miner.Errorf(miner.EINVALID, "read %s: %v", target, err)
			}
			jobs = append(jobs, extract.Job{URL: target, Document: &miner.Document{Body: body, Charset: c.Charset}})
		}
	}

	return jobs, nil
}

func isURL(target string) bool {
	lower := strings.ToLower(target)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func hasURLTarget(targets []string) bool {
	for _, t := range targets {
		if isURL(t) {
			return true
		}
	}
	return false
}
