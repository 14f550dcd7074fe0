package main

import (
	"fmt"

	"github.com/doclink/doclink"
	"github.com/doclink/doclink/resolve"
)

// Run executes the open command.
func (c *OpenCmd) Run(deps *Dependencies) error {
	outcome, err := deps.Resolver.Resolve(deps.Ctx, c.Link)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doclink.ErrorMessage(err))
		return err
	}

	// A bookmark open counts as usage whenever the document itself
	// resolved, anchor or not.
	if c.Bookmark != "" && (outcome.Status == doclink.StatusOpened || outcome.Status == doclink.StatusMissingAnchor) {
		if err := deps.Bookmarks.TouchBookmarkOpened(deps.Ctx, c.Bookmark); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: failed to record bookmark open: %s\n", doclink.ErrorMessage(err))
		}
	}

	renderOutcome(deps.Stdout, outcome)

	// When the open originated from a bookmark and the document is gone,
	// present the recovery offer instead of leaving the user at a dead end.
	if c.Bookmark != "" && outcome.Status == doclink.StatusMissingDocument {
		bookmark, err := deps.Bookmarks.FindBookmarkByID(deps.Ctx, c.Bookmark)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", doclink.ErrorMessage(err))
			return err
		}
		renderOffer(deps.Stdout, c.Bookmark, resolve.ProposeRecovery(bookmark, outcome))
	}

	return nil
}
