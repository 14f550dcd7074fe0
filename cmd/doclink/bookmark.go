package main

import (
	"fmt"

	"github.com/doclink/doclink"
)

// Run executes the bookmark command.
func (c *BookmarkCmd) Run(deps *Dependencies) error {
	target, err := doclink.DecodeLink(c.Link)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doclink.ErrorMessage(err))
		return err
	}

	// Only a resolvable document can be bookmarked; the title snapshot
	// is taken from the live document unless overridden.
	outcome, err := deps.Target.ResolveTarget(deps.Ctx, target, "")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doclink.ErrorMessage(err))
		return err
	}
	if outcome.Status != doclink.StatusOpened && outcome.Status != doclink.StatusMissingAnchor {
		renderOutcome(deps.Stderr, outcome)
		return doclink.Errorf(doclink.EINVALID, "link does not resolve to a document; nothing to bookmark")
	}

	title := c.Title
	if title == "" {
		title = outcome.Doc.Title
	}

	bookmark := &doclink.Bookmark{
		ProjectID:     target.ProjectID,
		CollectionID:  target.CollectionID,
		DocSlug:       target.RelativeSlug(),
		AnchorID:      target.AnchorID,
		TitleSnapshot: title,
	}
	if err := deps.Bookmarks.CreateBookmark(deps.Ctx, bookmark); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doclink.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Bookmarked %s/%s as %q (id %s)\n",
		bookmark.CollectionID, bookmark.DocSlug, bookmark.TitleSnapshot, bookmark.ID)
	return nil
}
