package main

import (
	"fmt"

	"github.com/fwojciec/miner"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := miner.RecordFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", miner.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'miner extract --save' to create one.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-11s  %s  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Strategy, r.URL, r.Metadata.Title)
	}

	return nil
}
