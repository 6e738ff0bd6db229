package main

import (
	"fmt"

	"github.com/fwojciec/miner"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return miner.Errorf(miner.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Records.DeleteRecord(deps.Ctx, c.ID); err != nil {
		if miner.ErrorCode(err) == miner.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'miner list' to see saved records.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", miner.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted record %s\n", c.ID)
	return nil
}
