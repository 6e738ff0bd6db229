package main

import (
	"fmt"

	"github.com/fwojciec/miner"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	record, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		if miner.ErrorCode(err) == miner.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'miner list' to see saved records.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", miner.ErrorMessage(err))
		}
		return err
	}

	return encode(deps.Stdout, c.Format, record)
}
