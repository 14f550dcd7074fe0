package main

import (
	"fmt"

	"github.com/doclink/doclink"
)

var bookmarkSortOrders = map[string]doclink.BookmarkSortOrder{
	"order":       doclink.BookmarksByOrder,
	"created":     doclink.BookmarksByCreatedAt,
	"last-opened": doclink.BookmarksByLastOpened,
	"open-count":  doclink.BookmarksByOpenCount,
}

// Run executes the bookmarks command.
func (c *BookmarksCmd) Run(deps *Dependencies) error {
	bookmarks, err := deps.Bookmarks.FindBookmarks(deps.Ctx, doclink.BookmarkFilter{
		ProjectID: &c.Project,
		SortBy:    bookmarkSortOrders[c.Sort],
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doclink.ErrorMessage(err))
		return err
	}

	if len(bookmarks) == 0 {
		fmt.Fprintln(deps.Stdout, "No bookmarks found. Use 'doclink bookmark <link>' to create one.")
		return nil
	}

	for _, b := range bookmarks {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  opened %d times\n",
			b.ID, b.Target().Encode(), b.TitleSnapshot, b.OpenCount)
	}

	return nil
}
