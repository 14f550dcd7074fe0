package main

import (
	"fmt"

	"github.com/doclink/doclink"
)

// Run executes the repair command.
func (c *RepairCmd) Run(deps *Dependencies) error {
	outcome, err := deps.Recoverer.Recover(deps.Ctx, c.ID, doclink.RecoveryChoice(c.Choice))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doclink.ErrorMessage(err))
		return err
	}

	switch doclink.RecoveryChoice(c.Choice) {
	case doclink.ChoiceDelete:
		fmt.Fprintf(deps.Stdout, "Bookmark %s deleted.\n", c.ID)
	case doclink.ChoiceRepair:
		fmt.Fprintf(deps.Stdout, "Bookmark %s repaired.\n", c.ID)
	}

	if outcome != nil {
		renderOutcome(deps.Stdout, outcome)
	}
	return nil
}
